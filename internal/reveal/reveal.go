// Package reveal describes the entrance animations of page sections.
package reveal

import (
	"strconv"
	"time"
)

// State is a point in an entrance animation. X and Y are pixel offsets.
type State struct {
	Opacity float64
	X       float64
	Y       float64
	Scale   float64
}

// Rest is the resting state every preset animates to.
var Rest = State{Opacity: 1, Scale: 1}

// EaseOut is the CSS timing function shared by every preset.
const EaseOut = "ease-out"

// Animation is one entrance transition. OnMount animations play as soon as the
// page loads; the rest wait until the element crosses Threshold inside the
// viewport shrunk by Margin.
type Animation struct {
	Initial   State
	Final     State
	Duration  time.Duration
	Delay     time.Duration
	Ease      string // CSS timing function
	Once      bool
	OnMount   bool
	Margin    string
	Threshold float64
}

var (
	HeroText = Animation{
		Initial:  State{Opacity: 0, X: -50, Scale: 1},
		Final:    Rest,
		Duration: 800 * time.Millisecond,
		Ease:     EaseOut,
		Once:     true,
		OnMount:  true,
	}
	HeroPhoto = Animation{
		Initial:  State{Opacity: 0, X: 50, Scale: 1},
		Final:    Rest,
		Duration: 800 * time.Millisecond,
		Delay:    200 * time.Millisecond,
		Ease:     EaseOut,
		Once:     true,
		OnMount:  true,
	}
	About = Animation{
		Initial:  State{Opacity: 0, Y: 50, Scale: 1},
		Final:    Rest,
		Duration: 600 * time.Millisecond,
		Ease:     EaseOut,
		Once:     true,
		Margin:   "-100px",
	}
	Section = Animation{
		Initial:  State{Opacity: 0, Y: 50, Scale: 1},
		Final:    Rest,
		Duration: 600 * time.Millisecond,
		Ease:     EaseOut,
		Once:     true,
	}
	Contact = Animation{
		Initial:  State{Opacity: 0, Scale: 0.9},
		Final:    Rest,
		Duration: 500 * time.Millisecond,
		Ease:     EaseOut,
		Once:     true,
	}
)

// Attrs serializes the animation into data-reveal-* attributes, in a stable
// order, for the client script.
func (a Animation) Attrs() [][2]string {
	trigger := "view"
	if a.OnMount {
		trigger = "mount"
	}
	attrs := [][2]string{
		{"data-reveal", trigger},
		{"data-reveal-opacity", num(a.Initial.Opacity)},
		{"data-reveal-x", num(a.Initial.X)},
		{"data-reveal-y", num(a.Initial.Y)},
		{"data-reveal-scale", num(a.Initial.Scale)},
		{"data-reveal-duration", strconv.FormatInt(a.Duration.Milliseconds(), 10)},
		{"data-reveal-delay", strconv.FormatInt(a.Delay.Milliseconds(), 10)},
		{"data-reveal-ease", a.Ease},
		{"data-reveal-once", strconv.FormatBool(a.Once)},
		{"data-reveal-threshold", num(a.Threshold)},
	}
	if a.Margin != "" {
		attrs = append(attrs, [2]string{"data-reveal-margin", a.Margin})
	}
	return attrs
}

// InitialStyle is the inline style an element carries before it reveals, so
// the first paint already matches the animation's starting point.
func (a Animation) InitialStyle() string {
	s := a.Initial
	return "opacity:" + num(s.Opacity) +
		";transform:translate(" + num(s.X) + "px," + num(s.Y) + "px) scale(" + num(s.Scale) + ")"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

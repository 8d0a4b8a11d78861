// Package scroll styles the fixed progress bar. The browser updates its scale
// as the page scrolls.
package scroll

import (
	"fmt"
	"strconv"
)

// Transform linearly maps values from In to Out. Results are clamped to Out.
type Transform struct {
	In  [2]float64
	Out [2]float64
}

// ScaleX drives the horizontal scale of the progress bar.
var ScaleX = Transform{In: [2]float64{0, 1}, Out: [2]float64{0, 1}}

// Apply maps v through the transform.
func (t Transform) Apply(v float64) float64 {
	inSpan := t.In[1] - t.In[0]
	if inSpan == 0 {
		return t.Out[0]
	}
	frac := (v - t.In[0]) / inSpan
	out := t.Out[0] + frac*(t.Out[1]-t.Out[0])
	lo, hi := t.Out[0], t.Out[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return clamp(out, lo, hi)
}

// Bar is the fixed, full-width bar anchored to the top of the viewport.
type Bar struct {
	Height string
	Color  string
	ZIndex int
}

// DefaultBar matches the page design.
var DefaultBar = Bar{Height: "2px", Color: "var(--accent)", ZIndex: 1000}

// Style renders the inline CSS for the bar at the given progress.
func (b Bar) Style(progress float64) string {
	return fmt.Sprintf(
		"position:fixed;top:0;left:0;right:0;height:%s;background:%s;transform-origin:0%%;z-index:%d;transform:scaleX(%s)",
		b.Height, b.Color, b.ZIndex, formatScale(ScaleX.Apply(progress)),
	)
}

func formatScale(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Package scene generates the decorative starfield drawn behind the page.
package scene

import (
	"math"
	"math/rand/v2"
)

type StarsConfig struct {
	Radius     float64 `json:"radius"`
	Depth      float64 `json:"depth"`
	Count      int     `json:"count"`
	Factor     float64 `json:"factor"`
	Saturation float64 `json:"saturation"`
	Fade       bool    `json:"fade"`
	Speed      float64 `json:"speed"`
}

type SparklesConfig struct {
	Count   int     `json:"count"`
	Scale   float64 `json:"scale"`
	Size    float64 `json:"size"`
	Speed   float64 `json:"speed"`
	Opacity float64 `json:"opacity"`
	Color   string  `json:"color"`
}

// FloatConfig bobs and sways the sparkle cluster.
type FloatConfig struct {
	Speed             float64 `json:"speed"`
	RotationIntensity float64 `json:"rotationIntensity"`
	FloatIntensity    float64 `json:"floatIntensity"`
}

type Config struct {
	Background string         `json:"background"`
	Camera     [3]float64     `json:"camera"`
	Stars      StarsConfig    `json:"stars"`
	Sparkles   SparklesConfig `json:"sparkles"`
	Float      FloatConfig    `json:"float"`
}

// DefaultConfig is the scene used by the page.
func DefaultConfig() Config {
	return Config{
		Background: "#050505",
		Camera:     [3]float64{0, 0, 5},
		Stars: StarsConfig{
			Radius:     100,
			Depth:      50,
			Count:      5000,
			Factor:     4,
			Saturation: 0,
			Fade:       true,
			Speed:      1,
		},
		Sparkles: SparklesConfig{
			Count:   50,
			Scale:   10,
			Size:    2,
			Speed:   0.4,
			Opacity: 0.5,
			Color:   "#22d3ee",
		},
		Float: FloatConfig{
			Speed:             1.5,
			RotationIntensity: 0.5,
			FloatIntensity:    1,
		},
	}
}

type Vec3 [3]float64

type Star struct {
	Pos   Vec3       `json:"p"`
	Color [3]float64 `json:"c"`
	Size  float64    `json:"s"`
}

type Sparkle struct {
	Pos     Vec3    `json:"p"`
	Size    float64 `json:"s"`
	Speed   float64 `json:"v"`
	Opacity float64 `json:"o"`
	Phase   float64 `json:"ph"`
}

// Scene is a generated scene ready to be drawn.
type Scene struct {
	Seed     uint64    `json:"seed"`
	Config   Config    `json:"config"`
	Stars    []Star    `json:"stars"`
	Sparkles []Sparkle `json:"sparkles"`
	Motion   Motion    `json:"motion"`
}

// Generate builds a scene. The same config and seed always produce the same
// scene.
func Generate(cfg Config, seed uint64) Scene {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return Scene{
		Seed:     seed,
		Config:   cfg,
		Stars:    stars(cfg.Stars, rng),
		Sparkles: sparkles(cfg.Sparkles, rng),
		Motion:   cfg.Float.Motion(MotionSamples),
	}
}

// Stars sit on shells that shrink from radius+depth towards radius, one
// random step of depth/count per star.
func stars(cfg StarsConfig, rng *rand.Rand) []Star {
	if cfg.Count <= 0 {
		return nil
	}
	out := make([]Star, cfg.Count)
	r := cfg.Radius + cfg.Depth
	step := cfg.Depth / float64(cfg.Count)
	for i := range out {
		r -= step * rng.Float64()
		pos := onSphere(r, rng)
		color := hslToRGB(float64(i)/float64(cfg.Count), cfg.Saturation, 0.9)
		out[i] = Star{
			Pos:   Vec3{round3(pos[0]), round3(pos[1]), round3(pos[2])},
			Color: [3]float64{round3(color[0]), round3(color[1]), round3(color[2])},
			Size:  round3((0.5 + 0.5*rng.Float64()) * cfg.Factor),
		}
	}
	return out
}

func sparkles(cfg SparklesConfig, rng *rand.Rand) []Sparkle {
	if cfg.Count <= 0 {
		return nil
	}
	out := make([]Sparkle, cfg.Count)
	half := cfg.Scale / 2
	for i := range out {
		out[i] = Sparkle{
			Pos: Vec3{
				rng.Float64()*cfg.Scale - half,
				rng.Float64()*cfg.Scale - half,
				rng.Float64()*cfg.Scale - half,
			},
			Size:    cfg.Size * (0.5 + rng.Float64()),
			Speed:   cfg.Speed * (0.5 + rng.Float64()),
			Opacity: cfg.Opacity,
			Phase:   rng.Float64() * 2 * math.Pi,
		}
	}
	return out
}

// onSphere returns a uniformly distributed point on a sphere of radius r.
func onSphere(r float64, rng *rand.Rand) Vec3 {
	phi := math.Acos(1 - 2*rng.Float64())
	theta := 2 * math.Pi * rng.Float64()
	sinPhi := math.Sin(phi)
	return Vec3{
		r * sinPhi * math.Sin(theta),
		r * math.Cos(phi),
		r * sinPhi * math.Cos(theta),
	}
}

// round3 keeps the encoded scene small; the client cannot resolve finer
// positions anyway.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

package scene

import "math"

// Pose is the transform of the floating group at a moment in time. Rotation
// is in radians around x, y and z.
type Pose struct {
	Y        float64
	Rotation Vec3
}

// Offset returns the pose of the floating group t seconds after start. The
// motion is periodic and bounded: |Y| <= FloatIntensity/10 and each rotation
// component stays within RotationIntensity/10 radians.
func (f FloatConfig) Offset(t float64) Pose {
	phase := t * f.Speed
	return Pose{
		Y: math.Sin(phase) / 10 * f.FloatIntensity,
		Rotation: Vec3{
			math.Cos(phase/4) / 20 * 2 * f.RotationIntensity,
			math.Sin(phase/4) / 20 * 2 * f.RotationIntensity,
			math.Sin(phase/4) / 20 * 2 * f.RotationIntensity,
		},
	}
}

// MotionSamples is the number of poses a Motion holds for one period.
const MotionSamples = 240

// Motion is one period of the float animation sampled at even steps. Each pose
// is [y, rx, ry, rz]. The browser interpolates between samples, so Offset is
// the only definition of the motion.
type Motion struct {
	Period float64      `json:"period"`
	Poses  [][4]float64 `json:"poses"`
}

// Motion samples Offset over one full period. A group that does not move gets
// its resting pose and a zero period.
func (f FloatConfig) Motion(samples int) Motion {
	if f.Speed == 0 || samples < 1 {
		return Motion{Poses: [][4]float64{f.Offset(0).array()}}
	}
	period := 8 * math.Pi / math.Abs(f.Speed)
	poses := make([][4]float64, samples)
	for i := range poses {
		poses[i] = f.Offset(period * float64(i) / float64(samples)).array()
	}
	return Motion{Period: round5(period), Poses: poses}
}

func (p Pose) array() [4]float64 {
	return [4]float64{round5(p.Y), round5(p.Rotation[0]), round5(p.Rotation[1]), round5(p.Rotation[2])}
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

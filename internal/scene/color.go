package scene

import "math"

// hslToRGB converts h, s, l in [0,1] into RGB components in [0,1].
func hslToRGB(h, s, l float64) [3]float64 {
	if s == 0 {
		return [3]float64{l, l, l}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return [3]float64{
		hueToRGB(p, q, h+1.0/3),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	t -= math.Floor(t)
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	default:
		return p
	}
}

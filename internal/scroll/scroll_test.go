package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleXIsIdentityOnProgress(t *testing.T) {
	for p := 0.0; p <= 1; p += 0.0625 {
		assert.InDelta(t, p, ScaleX.Apply(p), 1e-12)
	}
	assert.Equal(t, 0.0, ScaleX.Apply(-0.2))
	assert.Equal(t, 1.0, ScaleX.Apply(1.3))
}

func TestTransformClampsAndInverts(t *testing.T) {
	fade := Transform{In: [2]float64{0, 0.5}, Out: [2]float64{1, 0}}
	assert.InDelta(t, 1.0, fade.Apply(-1), 1e-12)
	assert.InDelta(t, 0.5, fade.Apply(0.25), 1e-12)
	assert.InDelta(t, 0.0, fade.Apply(0.9), 1e-12)

	flat := Transform{In: [2]float64{1, 1}, Out: [2]float64{3, 4}}
	assert.Equal(t, 3.0, flat.Apply(7))
}

func TestBarStyle(t *testing.T) {
	style := DefaultBar.Style(0)
	assert.Contains(t, style, "position:fixed")
	assert.Contains(t, style, "height:2px")
	assert.Contains(t, style, "transform-origin:0%")
	assert.Contains(t, style, "z-index:1000")
	assert.Contains(t, style, "transform:scaleX(0)")

	assert.Contains(t, DefaultBar.Style(1), "transform:scaleX(1)")
	assert.Contains(t, DefaultBar.Style(0.5), "transform:scaleX(0.5)")
}

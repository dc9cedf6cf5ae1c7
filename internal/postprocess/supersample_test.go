package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsampleReducesToTarget(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	dst := Downsample(src, 32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), dst.Bounds())

	// The opaque center survives filtering.
	c := dst.NRGBAAt(16, 16)
	assert.Equal(t, uint8(255), c.A)
	assert.InDelta(t, 200, int(c.R), 10)
}

func TestDownsampleNoOpWhenAlreadySmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	assert.Same(t, src, Downsample(src, 32))
}

func TestDownsampleKeepsTransparentBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	src.SetNRGBA(32, 32, color.NRGBA{R: 255, A: 255})

	dst := Downsample(src, 32)
	assert.Equal(t, uint8(0), dst.NRGBAAt(0, 0).A, "far corners stay fully transparent")
}

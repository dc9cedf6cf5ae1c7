// Package raster is a software renderer for preview frames: orthographic
// orbit camera, z-buffered flat shading, sRGB pipeline with ACES tone mapping.
package raster

import (
	"image"
	"image/color"

	"lowpoly-creature/internal/mathutil"
)

// Options controls one frame render.
type Options struct {
	Size        int    // output edge in pixels (frames are square)
	Supersample int    // render at Size*Supersample, caller downsamples
	Camera      Camera // orbit angles
}

// RenderMesh renders a non-indexed triangle soup to an NRGBA image. The
// positions are the skinned world-space vertices, three per triangle; uvs are
// parallel to positions and may be empty when tex is nil. The mesh is framed
// by its view-space bounding box so the subject always fills the image.
func RenderMesh(
	positions []mathutil.Vec3,
	uvs [][2]float64,
	tex *image.NRGBA,
	base color.NRGBA,
	opts Options,
) *image.NRGBA {
	size := opts.Size
	supersample := opts.Supersample
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample

	if len(positions) < 3 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	view := opts.Camera.ViewMatrix()

	lo, hi := boundsOf(positions, view)
	center := mathutil.Vec3{
		(lo[0] + hi[0]) / 2,
		(lo[1] + hi[1]) / 2,
		(lo[2] + hi[2]) / 2,
	}
	span := hi[0] - lo[0]
	if sy := hi[1] - lo[1]; sy > span {
		span = sy
	}
	if span < 0.001 {
		span = 0.001
	}

	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span

	px, py, pz := projectVertices(positions, view, center, scale, renderSize)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	defR, defG, defB, defA := base.R, base.G, base.B, base.A
	if tex != nil {
		defR, defG, defB, defA = averageColor(tex)
	}

	triCount := len(positions) / 3
	for t := 0; t < triCount; t++ {
		vi := [3]int{t * 3, t*3 + 1, t*3 + 2}
		RasterizeTriangle(fb, px, py, pz, uvs, vi, tex, defR, defG, defB, defA, &lc)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)

	return img
}

func averageColor(tex *image.NRGBA) (uint8, uint8, uint8, uint8) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 160, 160, 170, 255
	}

	var sumR, sumG, sumB float64
	total := w * h
	stride := tex.Stride
	for y := 0; y < h; y++ {
		off := y * stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(total)
	return uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255
}

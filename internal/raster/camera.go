package raster

import (
	"math"

	"lowpoly-creature/internal/mathutil"
)

// Camera is an orthographic orbit rig around the subject. Yaw spins around
// the vertical axis, pitch tilts toward a top-down view. Angles in radians.
type Camera struct {
	Yaw   float64
	Pitch float64
}

// ViewMatrix returns the world-to-view rotation for the current orbit angles.
func (c Camera) ViewMatrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.RotX(c.Pitch), mathutil.RotY(c.Yaw))
}

// projectVertices transforms world positions into screen space. X grows right,
// Y grows down, and the returned depth grows toward the viewer so the z-buffer
// comparison stays a simple greater-than.
func projectVertices(positions []mathutil.Vec3, view mathutil.Mat3, center mathutil.Vec3, scale float64, renderSize int) (px, py, pz []float64) {
	n := len(positions)
	px = make([]float64, n)
	py = make([]float64, n)
	pz = make([]float64, n)

	half := float64(renderSize) / 2
	for i, v := range positions {
		tv := view.MulVec3(v)
		px[i] = half + (tv[0]-center[0])*scale
		py[i] = half - (tv[1]-center[1])*scale
		pz[i] = tv[2]
	}
	return px, py, pz
}

// boundsOf returns the view-space bounding box of the positions.
func boundsOf(positions []mathutil.Vec3, view mathutil.Mat3) (lo, hi mathutil.Vec3) {
	inf := math.Inf(1)
	lo = mathutil.Vec3{inf, inf, inf}
	hi = mathutil.Vec3{-inf, -inf, -inf}
	for _, v := range positions {
		tv := view.MulVec3(v)
		for k := 0; k < 3; k++ {
			if tv[k] < lo[k] {
				lo[k] = tv[k]
			}
			if tv[k] > hi[k] {
				hi[k] = tv[k]
			}
		}
	}
	return lo, hi
}

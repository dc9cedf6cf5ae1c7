package geometry

import (
	"math"

	"lowpoly-creature/internal/mathutil"
)

// DefaultUp stabilizes ring orientation along mostly-horizontal axes.
var DefaultUp = mathutil.Vec3{0, 1, 0}

// BuildRing returns sides vertices at equal angular spacing 2π/sides around
// axis, at the given radius from center. The basis comes from axis×up; when
// axis and up are near-parallel the tangent falls back to +X.
func BuildRing(center, axis mathutil.Vec3, radius float64, sides int, up mathutil.Vec3) []mathutil.Vec3 {
	tangent := axis.Cross(up)
	if tangent.LenSq() < 1e-6 {
		tangent = mathutil.Vec3{1, 0, 0}
	} else {
		tangent = tangent.Normalize()
	}
	bitangent := axis.Cross(tangent).Normalize()

	verts := make([]mathutil.Vec3, sides)
	for i := 0; i < sides; i++ {
		theta := float64(i) / float64(sides) * 2 * math.Pi
		verts[i] = center.
			AddScaled(tangent, math.Cos(theta)*radius).
			AddScaled(bitangent, math.Sin(theta)*radius)
	}
	return verts
}

// BridgeRings appends 2·sides triangle indices connecting two rings of equal
// side count, given the start offset of each ring in the vertex array. For
// segment j with k=(j+1) mod sides the two triangles are (A_j, B_j, A_k) and
// (A_k, B_j, B_k), which keeps the tube face outward when ring normals point
// away from the ring center.
func BridgeRings(ringA, ringB, sides int, indices []int) []int {
	for j := 0; j < sides; j++ {
		k := (j + 1) % sides
		a := ringA + j
		b := ringA + k
		c := ringB + j
		d := ringB + k
		indices = append(indices, a, c, b)
		indices = append(indices, b, c, d)
	}
	return indices
}

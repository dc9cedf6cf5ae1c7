package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lowpoly-creature/internal/mathutil"
)

func TestBuildRingVerticesLieOnCircle(t *testing.T) {
	center := mathutil.Vec3{1, 2, 3}
	axis := mathutil.Vec3{0, 0, 1}
	const radius = 0.75
	const sides = 8

	ring := BuildRing(center, axis, radius, sides, DefaultUp)
	require.Len(t, ring, sides)

	for i, v := range ring {
		d := v.Sub(center)
		assert.InDelta(t, radius, d.Len(), 1e-9, "vertex %d radius", i)
		assert.InDelta(t, 0, d.Dot(axis), 1e-9, "vertex %d planarity", i)
	}
}

func TestBuildRingEqualSpacing(t *testing.T) {
	center := mathutil.Vec3{}
	axis := mathutil.Vec3{0, 1, 0}.Normalize()
	const sides = 6

	ring := BuildRing(center, axis, 1.0, sides, mathutil.Vec3{0, 0, 1})

	// Chord length between adjacent vertices of a regular polygon.
	want := 2 * math.Sin(math.Pi/float64(sides))
	for i := range ring {
		next := ring[(i+1)%sides]
		assert.InDelta(t, want, ring[i].Dist(next), 1e-9, "segment %d", i)
	}
}

func TestBuildRingAxisParallelToUpFallsBack(t *testing.T) {
	// axis == up would give a zero tangent; the basis must fall back to +X.
	ring := BuildRing(mathutil.Vec3{}, mathutil.Vec3{0, 1, 0}, 1.0, 4, DefaultUp)
	for i, v := range ring {
		assert.InDelta(t, 1.0, v.Len(), 1e-9, "vertex %d", i)
		assert.InDelta(t, 0, v[1], 1e-9, "vertex %d stays in the horizontal plane", i)
	}
}

func TestBridgeRingsTriangleCount(t *testing.T) {
	const sides = 5
	indices := BridgeRings(0, sides, sides, nil)
	assert.Len(t, indices, sides*2*3)

	// Every index must reference one of the two rings.
	for _, idx := range indices {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 2*sides)
	}
}

func TestBridgeRingsWindingPattern(t *testing.T) {
	// For segment j with k=j+1: (A_j, B_j, A_k) then (A_k, B_j, B_k).
	indices := BridgeRings(0, 3, 3, nil)
	assert.Equal(t, []int{0, 3, 1, 1, 3, 4}, indices[:6])

	// Last segment wraps back to the first vertex of each ring.
	assert.Equal(t, []int{2, 5, 0, 0, 5, 3}, indices[12:18])
}

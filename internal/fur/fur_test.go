package fur

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
)

func quadHost() *geometry.Part {
	p := &geometry.Part{}
	up := mathutil.Vec3{0, 1, 0}
	p.AddVertex(mathutil.Vec3{0, 0, 0}, up, [2]float64{0, 0}, 0, 0, 1, 0)
	p.AddVertex(mathutil.Vec3{1, 0, 0}, up, [2]float64{1, 0}, 0, 0, 1, 0)
	p.AddVertex(mathutil.Vec3{1, 0, 1}, up, [2]float64{1, 1}, 0, 0, 1, 0)
	p.AddVertex(mathutil.Vec3{0, 0, 0}, up, [2]float64{0, 0}, 0, 0, 1, 0)
	p.AddVertex(mathutil.Vec3{1, 0, 1}, up, [2]float64{1, 1}, 0, 0, 1, 0)
	p.AddVertex(mathutil.Vec3{0, 0, 1}, up, [2]float64{0, 1}, 0, 0, 1, 0)
	return p
}

func TestGenerateStrandCountAndBarycentrics(t *testing.T) {
	coat, err := Generate(quadHost(), Options{StrandCount: 500}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, coat.Strands, 500)

	for i, s := range coat.Strands {
		assert.GreaterOrEqual(t, s.U, 0.0, "strand %d", i)
		assert.GreaterOrEqual(t, s.V, 0.0, "strand %d", i)
		assert.GreaterOrEqual(t, s.W, 0.0, "strand %d", i)
		assert.InDelta(t, 1.0, s.U+s.V+s.W, 1e-9, "strand %d", i)

		// Roots lie on the flat quad.
		assert.InDelta(t, 0, s.Root[1], 1e-9, "strand %d", i)
		assert.Positive(t, s.Length, "strand %d", i)

		// Rest tip sits Length along the surface normal.
		want := s.Root.AddScaled(s.Normal, s.Length)
		assert.InDelta(t, 0, want.Dist(s.Tip), 1e-9, "strand %d", i)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(quadHost(), Options{StrandCount: 50}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Generate(quadHost(), Options{StrandCount: 50}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Strands, b.Strands)
}

func TestGenerateRejectsEmptyHost(t *testing.T) {
	_, err := Generate(&geometry.Part{}, Options{}, rand.New(rand.NewSource(1)))
	assert.ErrorContains(t, err, "no triangles")
}

func TestGenerateRejectsZeroAreaHost(t *testing.T) {
	p := &geometry.Part{}
	for i := 0; i < 3; i++ {
		p.AddVertex(mathutil.Vec3{1, 1, 1}, mathutil.Vec3{0, 1, 0}, [2]float64{}, 0, 0, 1, 0)
	}
	_, err := Generate(p, Options{}, rand.New(rand.NewSource(1)))
	assert.ErrorContains(t, err, "zero surface area")
}

func TestPickTriangleWeightsByArea(t *testing.T) {
	cum := []float64{1, 3, 6}
	assert.Equal(t, 0, pickTriangle(cum, 0.5))
	assert.Equal(t, 1, pickTriangle(cum, 1.5))
	assert.Equal(t, 2, pickTriangle(cum, 5.9))
}

func TestStrandUpdateKeepsRigidLength(t *testing.T) {
	s := Strand{
		Root:   mathutil.Vec3{},
		Normal: mathutil.Vec3{0, 1, 0},
		Length: 0.1,
		Tip:    mathutil.Vec3{0, 0.1, 0},
	}
	p := DefaultParams()

	for i := 0; i < 200; i++ {
		s.Update(s.Root, s.Normal, 1.0/60, p)
		assert.InDelta(t, s.Length, s.Tip.Dist(s.Root), 1e-9, "step %d", i)
	}
}

func TestStrandDroopsUnderGravity(t *testing.T) {
	// A tilted strand settles below its rest ray once gravity and the spring
	// balance out; the rigid re-projection keeps the droop on the length sphere.
	normal := mathutil.Vec3{1, 1, 0}.Normalize()
	s := Strand{
		Root:   mathutil.Vec3{},
		Normal: normal,
		Length: 0.1,
		Tip:    normal.Scale(0.1),
	}
	restTipY := s.Tip[1]

	p := DefaultParams()
	for i := 0; i < 600; i++ {
		s.Update(s.Root, s.Normal, 1.0/60, p)
	}

	assert.Less(t, s.Tip[1], restTipY-1e-4)
	assert.InDelta(t, s.Length, s.Tip.Dist(s.Root), 1e-9)
}

func TestCoatUpdateFollowsSkinnedSurface(t *testing.T) {
	host := quadHost()
	coat, err := Generate(host, Options{StrandCount: 20}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	// Translate the only bone and step; roots must follow the moved surface.
	worlds := []mathutil.Mat4{
		mathutil.FromMat3Translation(mathutil.Mat3Identity(), mathutil.Vec3{0, 2, 0}),
	}
	bindInv := []mathutil.Mat4{mathutil.Mat4Identity()}
	coat.Update(worlds, bindInv, 1.0/60)

	for i, s := range coat.Strands {
		assert.InDelta(t, 2.0, s.Root[1], 1e-9, "strand %d", i)
		assert.InDelta(t, s.Length, s.Tip.Dist(s.Root), 1e-9, "strand %d", i)
	}
}

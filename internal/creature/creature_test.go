package creature

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultElephant(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	assert.Len(t, c.Skeleton.Bones, 36)

	// The merged mesh is flattened triangle soup.
	assert.Nil(t, c.Mesh.Indices)
	assert.Zero(t, c.Mesh.VertexCount()%3)
	assert.Positive(t, c.Mesh.TriangleCount())

	for i, w := range c.Mesh.SkinWeights {
		assert.InDelta(t, 1.0, w[0]+w[1], 1e-9, "vertex %d", i)
	}

	assert.NotNil(t, c.Behavior)
	assert.Nil(t, c.Fur)
}

func TestNewIsDeterministic(t *testing.T) {
	a, err := New(Options{VariantSeed: 3.7, Seed: 11})
	require.NoError(t, err)
	b, err := New(Options{VariantSeed: 3.7, Seed: 11})
	require.NoError(t, err)

	require.Equal(t, a.Mesh.VertexCount(), b.Mesh.VertexCount())
	assert.Equal(t, a.Mesh.Positions, b.Mesh.Positions)

	for i := 0; i < 120; i++ {
		a.Update(1.0 / 30)
		b.Update(1.0 / 30)
	}
	pa, _ := a.SkinnedMesh(nil, nil)
	pb, _ := b.SkinnedMesh(nil, nil)
	assert.Equal(t, pa, pb)
}

func TestVariantSeedChangesProportions(t *testing.T) {
	a, err := New(Options{VariantSeed: 1})
	require.NoError(t, err)
	b, err := New(Options{VariantSeed: 2})
	require.NoError(t, err)

	require.Equal(t, a.Mesh.VertexCount(), b.Mesh.VertexCount())
	assert.NotEqual(t, a.Mesh.Positions, b.Mesh.Positions)
}

func TestVariant01(t *testing.T) {
	assert.Equal(t, Variant01(12.5), Variant01(12.5))
	assert.NotEqual(t, Variant01(1), Variant01(2))

	for _, seed := range []float64{0, 1, -3.2, 1e6} {
		f := Variant01(seed)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestUpdateAnimatesMesh(t *testing.T) {
	c, err := New(Options{Seed: 5})
	require.NoError(t, err)

	before, _ := c.SkinnedMesh(nil, nil)
	for i := 0; i < 60; i++ {
		c.Update(1.0 / 30)
	}
	after, _ := c.SkinnedMesh(nil, nil)

	assert.NotEqual(t, before, after)
}

func TestNewWithFur(t *testing.T) {
	c, err := New(Options{Fur: true})
	require.NoError(t, err)
	require.NotNil(t, c.Fur)
	assert.Len(t, c.Fur.Strands, 1200)

	assert.NotPanics(t, func() {
		for i := 0; i < 10; i++ {
			c.Update(1.0 / 30)
		}
	})
}

func TestNewRejectsBadDefinition(t *testing.T) {
	def := Elephant()
	def.Torso.Bones = []string{"spine_base", "ghost"}
	_, err := New(Options{Definition: &def})
	assert.ErrorContains(t, err, "ghost")
}

func TestLoadDefinitionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creature.yaml")
	data := `
name: test-beast
bones:
  - name: spine
    parent: root
    offset: [0, 1, 0]
  - name: head
    parent: spine
    offset: [0, 0.5, 0.5]
torso:
  bones: [spine, head]
  radii: [1.0, 0.8]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	def, err := LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "test-beast", def.Name)
	require.Len(t, def.Bones, 2)
	assert.Equal(t, "spine", def.Bones[0].Name)
	assert.Equal(t, [3]float64{0, 0.5, 0.5}, def.Bones[1].Offset)
	assert.Equal(t, []float64{1.0, 0.8}, def.Torso.Radii)
}

func TestLoadDefinitionErrors(t *testing.T) {
	_, err := LoadDefinition(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "read")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x"), 0644))
	_, err = LoadDefinition(path)
	assert.ErrorContains(t, err, "no bones")
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	assert.Equal(t, uint8(0x99), m.BaseColor.R)
	assert.Equal(t, uint8(0xff), m.BaseColor.A)
	assert.Nil(t, m.Texture)
}

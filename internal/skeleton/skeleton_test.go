package skeleton

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lowpoly-creature/internal/mathutil"
)

func chainSpecs() []BoneSpec {
	return []BoneSpec{
		{Name: "base", Parent: RootParent, Offset: [3]float64{0, 1, 0}},
		{Name: "mid", Parent: "base", Offset: [3]float64{0, 0, 1}},
		{Name: "tip", Parent: "mid", Offset: [3]float64{0, 0.5, 0.5}},
	}
}

func TestNewBuildsHierarchy(t *testing.T) {
	sk, err := New(chainSpecs())
	require.NoError(t, err)
	require.Len(t, sk.Bones, 3)

	assert.Equal(t, -1, sk.Bones[0].Parent)
	assert.Equal(t, 0, sk.Bones[1].Parent)
	assert.Equal(t, 1, sk.Bones[2].Parent)
	assert.Equal(t, []int{1}, sk.Bones[0].Children)

	i, ok := sk.Index("mid")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Nil(t, sk.Bone("nope"))
}

func TestNewWorldPositionsAccumulateOffsets(t *testing.T) {
	sk, err := New(chainSpecs())
	require.NoError(t, err)

	assert.Equal(t, mathutil.Vec3{0, 1, 0}, sk.WorldPosition(0))
	assert.Equal(t, mathutil.Vec3{0, 1, 1}, sk.WorldPosition(1))
	assert.Equal(t, mathutil.Vec3{0, 1.5, 1.5}, sk.WorldPosition(2))
}

func TestNewRejectsUnknownParent(t *testing.T) {
	_, err := New([]BoneSpec{
		{Name: "a", Parent: RootParent},
		{Name: "b", Parent: "ghost"},
	})
	require.Error(t, err)

	var missing *MissingBoneError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "ghost", missing.Name)
}

func TestNewRejectsForwardReference(t *testing.T) {
	// Parent defined after the child counts as missing, which also forbids
	// cycles.
	_, err := New([]BoneSpec{
		{Name: "child", Parent: "parent"},
		{Name: "parent", Parent: RootParent},
	})
	assert.Error(t, err)
}

func TestNewRejectsDuplicatesAndEmptyNames(t *testing.T) {
	_, err := New([]BoneSpec{
		{Name: "a", Parent: RootParent},
		{Name: "a", Parent: RootParent},
	})
	assert.ErrorContains(t, err, "duplicate")

	_, err = New([]BoneSpec{{Parent: RootParent}})
	assert.ErrorContains(t, err, "no name")
}

func TestUpdateWorldMatricesPropagatesRotation(t *testing.T) {
	sk, err := New([]BoneSpec{
		{Name: "base", Parent: RootParent},
		{Name: "tip", Parent: "base", Offset: [3]float64{0, 0, 1}},
	})
	require.NoError(t, err)

	// Rotate the base 90° around Y: the child's +Z offset swings to +X.
	sk.Bones[0].Rot[1] = math.Pi / 2
	sk.UpdateWorldMatrices()

	tip := sk.WorldPosition(1)
	assert.InDelta(t, 1, tip[0], 1e-9)
	assert.InDelta(t, 0, tip[1], 1e-9)
	assert.InDelta(t, 0, tip[2], 1e-9)
}

func TestBindInverseCancelsBindPose(t *testing.T) {
	sk, err := New(chainSpecs())
	require.NoError(t, err)

	for i, world := range sk.WorldMatrices() {
		assert.True(t, mathutil.Mat4Mul(world, sk.BindInverse(i)).IsIdentity(), "bone %d", i)
	}
}

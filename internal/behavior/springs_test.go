package behavior

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lowpoly-creature/internal/skeleton"
)

func TestSpringStateConverges(t *testing.T) {
	s := SpringState{}
	const (
		target    = 1.0
		stiffness = 10.0
		damping   = 5.0
		dt        = 1.0 / 60
	)

	for i := 0; i < 600; i++ {
		s.Step(target, stiffness, damping, dt)
	}

	assert.InDelta(t, target, s.Angle, 1e-3)
	assert.InDelta(t, 0, s.Velocity, 1e-3)
}

func TestSpringStateAtRestStaysAtRest(t *testing.T) {
	s := SpringState{Angle: 0.5}
	s.Step(0.5, 10, 5, 1.0/60)
	assert.Equal(t, 0.5, s.Angle)
	assert.Equal(t, 0.0, s.Velocity)
}

func TestSpringStateOvershootsWhenUnderdamped(t *testing.T) {
	// Stiffness 10 with damping 5 is underdamped; the step response must
	// cross the target at least once.
	s := SpringState{}
	overshot := false
	for i := 0; i < 600; i++ {
		s.Step(1, 10, 5, 1.0/60)
		if s.Angle > 1 {
			overshot = true
		}
	}
	assert.True(t, overshot)
}

func trunkSkeleton(t *testing.T) (*skeleton.Skeleton, BoneMap) {
	t.Helper()
	sk, err := skeleton.New([]skeleton.BoneSpec{
		{Name: "base", Parent: skeleton.RootParent},
		{Name: "trunk1", Parent: "base", Offset: [3]float64{0, -0.5, 0}},
		{Name: "trunk2", Parent: "trunk1", Offset: [3]float64{0, -0.5, 0}},
		{Name: "ear_l", Parent: "base", Offset: [3]float64{0.5, 0, 0}},
		{Name: "ear_r", Parent: "base", Offset: [3]float64{-0.5, 0, 0}},
		{Name: "tail1", Parent: "base", Offset: [3]float64{0, 0, -0.5}},
	})
	require.NoError(t, err)
	names := BoneMap{
		Trunk:    []string{"trunk1", "trunk2"},
		EarLeft:  "ear_l",
		EarRight: "ear_r",
		Tail:     []string{"tail1"},
	}
	return sk, names
}

func TestSecondaryAddsWeightedAngles(t *testing.T) {
	sk, names := trunkSkeleton(t)
	sec := newSecondary(newRig(sk, names))

	// Drive toward a constant speed until the springs settle.
	for i := 0; i < 600; i++ {
		for _, b := range sk.Bones {
			b.Rot = [3]float64{}
		}
		sec.Apply(1.0/60, 0.35)
	}

	trunk1 := sk.Bone("trunk1").Rot[1]
	trunk2 := sk.Bone("trunk2").Rot[1]
	assert.InDelta(t, 0.35*sec.TrunkGain*trunkFollow[0], trunk1, 1e-3)
	assert.InDelta(t, 0.35*sec.TrunkGain*trunkFollow[1], trunk2, 1e-3)
	assert.Greater(t, trunk1, trunk2, "follow-through tapers base to tip")

	// Ears are mirrored.
	assert.InDelta(t, -sk.Bone("ear_l").Rot[2], sk.Bone("ear_r").Rot[2], 1e-9)

	assert.InDelta(t, 0.35*sec.TailGain*tailFollow[0], sk.Bone("tail1").Rot[1], 1e-3)
}

func TestSecondaryRelaxesWhenStopped(t *testing.T) {
	sk, names := trunkSkeleton(t)
	sec := newSecondary(newRig(sk, names))

	for i := 0; i < 120; i++ {
		sec.Apply(1.0/60, 0.35)
	}
	for i := 0; i < 600; i++ {
		sec.Apply(1.0/60, 0)
	}
	assert.InDelta(t, 0, sec.Trunk.Angle, 1e-3)
	assert.InDelta(t, 0, sec.Ears.Angle, 1e-3)
	assert.InDelta(t, 0, sec.Tail.Angle, 1e-3)
}

func TestSecondaryToleratesMissingBones(t *testing.T) {
	sk, err := skeleton.New([]skeleton.BoneSpec{{Name: "only", Parent: skeleton.RootParent}})
	require.NoError(t, err)

	sec := newSecondary(newRig(sk, BoneMap{Trunk: []string{"absent"}, EarLeft: "also_absent"}))
	assert.NotPanics(t, func() {
		sec.Apply(1.0/60, 0.35)
	})
}

func TestBehaviorUpdateIsDeterministic(t *testing.T) {
	run := func(seed int64) [3]float64 {
		sk, names := trunkSkeleton(t)
		b := New(sk, names, rand.New(rand.NewSource(seed)))
		for i := 0; i < 300; i++ {
			b.Update(1.0 / 30)
		}
		return sk.Bone("trunk1").Rot
	}

	assert.Equal(t, run(42), run(42))
}

func TestBehaviorUpdateIgnoresNonPositiveDt(t *testing.T) {
	sk, names := trunkSkeleton(t)
	b := New(sk, names, rand.New(rand.NewSource(1)))

	b.Update(0)
	b.Update(-0.1)
	assert.Equal(t, 0.0, b.Debug().Time)
	assert.Equal(t, StateIdle, b.Debug().State)
}

package behavior

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

func testLocomotion(t *testing.T, seed int64) *Locomotion {
	t.Helper()
	sk, err := skeleton.New(nil)
	require.NoError(t, err)
	r := newRig(sk, BoneMap{})
	return newLocomotion(r, rand.New(rand.NewSource(seed)))
}

func TestHeadingStaysUnitLength(t *testing.T) {
	l := testLocomotion(t, 1)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 10000; i++ {
		l.rotateDirection((rng.Float64() - 0.5) * 0.2)
	}
	assert.InDelta(t, 1.0, l.Heading().Len(), 1e-9)
}

func TestTurnTowardClampsToTurnSpeed(t *testing.T) {
	l := testLocomotion(t, 1)
	const dt = 0.1

	// Target 90° away, far more than TurnSpeed·dt allows in one step.
	before := l.Heading()
	l.turnToward(mathutil.Vec3{1, 0, 0}, dt)
	after := l.Heading()

	turned := math.Acos(mathutil.Clamp(before.Dot(after), -1, 1))
	assert.InDelta(t, l.TurnSpeed*dt, turned, 1e-9)
}

func TestTurnTowardConverges(t *testing.T) {
	l := testLocomotion(t, 1)
	target := mathutil.Vec3{1, 0, 0}

	for i := 0; i < 100; i++ {
		l.turnToward(target, 0.1)
	}
	assert.InDelta(t, 1.0, l.Heading().Dot(target), 1e-6)
}

func TestTurnTowardTakesShortestPath(t *testing.T) {
	l := testLocomotion(t, 1)
	l.direction = mathutil.Vec3{math.Sin(3.0), 0, math.Cos(3.0)}

	// Target just across the ±π seam: the short way crosses it.
	target := mathutil.Vec3{math.Sin(-3.0), 0, math.Cos(-3.0)}
	l.turnToward(target, 0.1)

	heading := math.Atan2(l.direction[0], l.direction[2])
	assert.Greater(t, heading, 3.0, "heading should increase toward the seam")
}

func TestNextStateTable(t *testing.T) {
	l := testLocomotion(t, 1)

	l.State = StateIdle
	assert.Equal(t, StateIdle, l.nextState(0.5))
	assert.Equal(t, StateWander, l.nextState(0.8))
	assert.Equal(t, StateCurious, l.nextState(0.95))

	// Non-idle states always fall back to idle on expiry.
	l.State = StateWander
	assert.Equal(t, StateIdle, l.nextState(0.99))
	l.State = StateCurious
	assert.Equal(t, StateIdle, l.nextState(0.0))
}

func TestEnterResetsStateClock(t *testing.T) {
	l := testLocomotion(t, 1)
	l.stateTime = 7

	l.enter(StateWander)
	assert.Equal(t, StateWander, l.State)
	assert.Equal(t, 0.0, l.StateElapsed())
	assert.GreaterOrEqual(t, l.stateTimer, 5.0)
	assert.LessOrEqual(t, l.stateTimer, 9.0)

	l.enter(StateCurious)
	assert.GreaterOrEqual(t, l.stateTimer, 3.0)
	assert.LessOrEqual(t, l.stateTimer, 5.0)

	l.enter(StateIdle)
	assert.GreaterOrEqual(t, l.stateTimer, 4.0)
	assert.LessOrEqual(t, l.stateTimer, 7.0)
}

func TestWanderAccumulatesRootMotion(t *testing.T) {
	l := testLocomotion(t, 3)
	l.enter(StateWander)

	const dt = 1.0 / 30
	for i := 0; i < 30; i++ {
		l.updateWander(dt)
	}

	dist := math.Hypot(l.Position[0], l.Position[2])
	assert.InDelta(t, l.WanderSpeed, dist, 0.02, "one second of wandering covers about WanderSpeed")
}

func TestWanderTurnsBackInsideBounds(t *testing.T) {
	l := testLocomotion(t, 3)
	l.enter(StateWander)

	// Drop the root well outside the bounds radius, heading straight out.
	l.Position = mathutil.Vec3{2 * l.BoundsRadius, 0, 0}
	l.direction = mathutil.Vec3{1, 0, 0}

	const dt = 1.0 / 30
	for i := 0; i < 60*30; i++ {
		l.updateWander(dt)
	}

	dist := math.Hypot(l.Position[0], l.Position[2])
	assert.Less(t, dist, 2*l.BoundsRadius, "containment must pull the creature back")
}

func TestGaitPhaseWraps(t *testing.T) {
	l := testLocomotion(t, 1)
	l.enter(StateWander)

	for i := 0; i < 1000; i++ {
		l.updateWander(0.05)
		assert.GreaterOrEqual(t, l.gaitPhase, 0.0)
		assert.Less(t, l.gaitPhase, 2*math.Pi)
	}
}

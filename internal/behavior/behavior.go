// Package behavior animates a creature skeleton: a randomized finite-state
// locomotion machine writes the primary pose, damped springs layer secondary
// follow-through on top, and the skeleton's world matrices are recomputed
// last so renderers always read a consistent frame.
package behavior

import (
	"math/rand"

	"lowpoly-creature/internal/skeleton"
)

// Behavior drives one creature. Update is not safe for concurrent use;
// drive it from a single goroutine.
type Behavior struct {
	Locomotion *Locomotion
	Secondary  *Secondary

	sk   *skeleton.Skeleton
	time float64
}

// New wires the behavior chain onto a built skeleton. The random source
// drives state transitions and wander turns; pass a fixed seed for
// reproducible runs.
func New(sk *skeleton.Skeleton, names BoneMap, rng *rand.Rand) *Behavior {
	r := newRig(sk, names)
	return &Behavior{
		Locomotion: newLocomotion(r, rng),
		Secondary:  newSecondary(r),
		sk:         sk,
	}
}

// Update advances the creature by dt seconds: locomotion first, then spring
// follow-through, then the world-matrix pass. dt <= 0 is a no-op.
func (b *Behavior) Update(dt float64) {
	if dt <= 0 {
		return
	}
	b.time += dt

	b.Locomotion.Update(dt)

	speed := 0.0
	if b.Locomotion.State == StateWander {
		speed = b.Locomotion.WanderSpeed
	}
	b.Secondary.Apply(dt, speed)

	b.sk.UpdateWorldMatrices()
}

// DebugInfo is a diagnostics snapshot of the behavior state.
type DebugInfo struct {
	State        State
	Time         float64
	StateElapsed float64
}

// Debug returns the current state name and clocks for visualization.
func (b *Behavior) Debug() DebugInfo {
	return DebugInfo{
		State:        b.Locomotion.State,
		Time:         b.time,
		StateElapsed: b.Locomotion.StateElapsed(),
	}
}

package behavior

import (
	"math"
	"math/rand"

	"lowpoly-creature/internal/mathutil"
)

// State is one discrete behavioral mode of the locomotion machine.
type State string

const (
	StateIdle    State = "idle"
	StateWander  State = "wander"
	StateCurious State = "curious"
)

// Locomotion is the finite-state controller producing per-bone pose targets
// and root motion. It owns a persisted ground-plane heading and a wrapping
// gait phase; all randomness comes from the injected source so runs are
// reproducible.
type Locomotion struct {
	State State

	// Position accumulates root motion on the ground plane. The external
	// driver places the creature there; bones only carry the local pose.
	Position mathutil.Vec3

	BaseHeight   float64
	WalkSpeed    float64
	WanderSpeed  float64
	TurnSpeed    float64
	GaitDuration float64
	BoundsRadius float64

	gaitPhase  float64
	direction  mathutil.Vec3
	stateTimer float64
	stateTime  float64
	idleTime   float64

	rng *rand.Rand
	rig *rig
}

func newLocomotion(r *rig, rng *rand.Rand) *Locomotion {
	return &Locomotion{
		State:        StateIdle,
		BaseHeight:   0.45,
		WalkSpeed:    0.5,
		WanderSpeed:  0.35,
		TurnSpeed:    0.4,
		GaitDuration: 1.1,
		BoundsRadius: 5.0,
		stateTimer:   1.2,
		direction:    mathutil.Vec3{0, 0, 1},
		rng:          rng,
		rig:          r,
	}
}

// Update advances the state machine and writes this frame's primary pose.
func (l *Locomotion) Update(dt float64) {
	l.stateTime += dt
	l.stateTimer -= dt

	if l.stateTimer <= 0 {
		l.enter(l.nextState(l.rng.Float64()))
	}

	switch l.State {
	case StateWander:
		l.updateWander(dt)
	case StateCurious:
		l.updateCurious()
	default:
		l.updateIdle(dt)
	}
}

// nextState applies the transition table to a uniform draw r∈[0,1). Any
// non-idle state always falls back to idle on expiry.
func (l *Locomotion) nextState(r float64) State {
	if l.State != StateIdle {
		return StateIdle
	}
	switch {
	case r < 0.65:
		return StateIdle
	case r < 0.90:
		return StateWander
	default:
		return StateCurious
	}
}

// enter switches state, samples its dwell time, and resets the in-state clock.
func (l *Locomotion) enter(s State) {
	l.State = s
	l.stateTime = 0
	switch s {
	case StateWander:
		l.stateTimer = 5 + l.rng.Float64()*4
	case StateCurious:
		l.stateTimer = 3 + l.rng.Float64()*2
	default:
		l.stateTimer = 4 + l.rng.Float64()*3
	}
}

// StateElapsed reports how long the current state has been active.
func (l *Locomotion) StateElapsed() float64 {
	return l.stateTime
}

// Heading returns the persisted unit ground-plane heading.
func (l *Locomotion) Heading() mathutil.Vec3 {
	return l.direction
}

func (l *Locomotion) updateIdle(dt float64) {
	l.idleTime += dt
	r := l.rig

	breathe := math.Sin(l.idleTime*1.0+0.3) * 0.025
	sway := math.Sin(l.idleTime*0.3) * 0.02
	r.setPos(r.root, mathutil.Vec3{sway, l.BaseHeight + breathe, 0})

	r.setRot(r.spineMid, axisX, 0.03*math.Sin(l.idleTime*0.7))
	r.setRot(r.spineMid, axisZ, 0.02*math.Sin(l.idleTime*0.5))
	r.setRot(r.spineNeck, axisX, 0.05+0.03*math.Sin(l.idleTime*0.8))
	r.setRot(r.spineNeck, axisY, 0.05*math.Sin(l.idleTime*0.6))
	r.setRot(r.head, axisX, -0.15+0.05*math.Sin(l.idleTime*0.9))
	r.setRot(r.head, axisY, 0.05*math.Sin(l.idleTime*0.7))
}

func (l *Locomotion) updateWander(dt float64) {
	l.idleTime += dt
	r := l.rig

	l.gaitPhase = math.Mod(l.gaitPhase+dt/l.GaitDuration*2*math.Pi, 2*math.Pi)

	// Soft containment: the hard turn toward the origin engages only once the
	// root is already past the bounds radius.
	distFromOrigin := math.Hypot(l.Position[0], l.Position[2])
	if distFromOrigin > l.BoundsRadius {
		home := mathutil.Vec3{-l.Position[0], 0, -l.Position[2]}.Normalize()
		l.turnToward(home, dt)
	} else if l.rng.Float64() < dt*0.2 {
		l.rotateDirection((l.rng.Float64() - 0.5) * l.TurnSpeed * dt)
	}

	l.Position = l.Position.AddScaled(l.direction, l.WanderSpeed*dt)
	heading := math.Atan2(l.direction[0], l.direction[2])
	r.setRot(r.root, axisY, heading)

	bob := math.Sin(l.gaitPhase*2.0) * 0.06
	roll := math.Sin(l.gaitPhase*1.0) * 0.03
	r.setPos(r.root, mathutil.Vec3{0, l.BaseHeight + bob, 0})
	r.setRot(r.root, axisZ, roll)

	l.applyWalkPose(l.gaitPhase)
	l.applyTrunkWalk(l.idleTime, l.gaitPhase)
	l.applyEarWalk(l.idleTime, l.gaitPhase)
}

func (l *Locomotion) updateCurious() {
	r := l.rig
	t := l.stateTime

	r.setPos(r.root, mathutil.Vec3{0, l.BaseHeight, 0})
	r.setRot(r.root, axisZ, 0.02*math.Sin(t*1.5))

	r.setRot(r.spineNeck, axisX, 0.1+0.05*math.Sin(t*2.0))
	r.setRot(r.spineNeck, axisY, 0.1*math.Sin(t*1.0))
	r.setRot(r.head, axisX, -0.05+0.07*math.Sin(t*2.5))
	r.setRot(r.head, axisY, 0.08*math.Sin(t*1.7))

	// The trunk lifts progressively base to tip.
	lift := 0.3 + 0.1*math.Sin(t*2.2)
	liftFrac := []float64{0.5, 0.65, 0.8, 1.0}
	for i, bone := range r.trunk {
		f := liftFrac[min(i, len(liftFrac)-1)]
		r.setRot(bone, axisX, -lift*f)
		r.setRot(bone, axisY, 0)
	}

	flap := 0.15 * math.Sin(t*3.0)
	r.setRot(r.earLeft, axisZ, flap)
	r.setRot(r.earRight, axisZ, -flap)
}

// rotateDirection rotates the heading by angle around the vertical axis.
// Re-normalizing after every rotation keeps the heading unit length.
func (l *Locomotion) rotateDirection(angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	x, z := l.direction[0], l.direction[2]
	l.direction[0] = x*cos - z*sin
	l.direction[2] = x*sin + z*cos
	l.direction = l.direction.Normalize()
}

// turnToward rotates the heading toward targetDir by at most TurnSpeed·dt,
// along the signed shortest angular path.
func (l *Locomotion) turnToward(targetDir mathutil.Vec3, dt float64) {
	current := math.Atan2(l.direction[0], l.direction[2])
	target := math.Atan2(targetDir[0], targetDir[2])
	delta := target - current
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	if delta < -math.Pi {
		delta += 2 * math.Pi
	}
	maxTurn := l.TurnSpeed * dt
	delta = mathutil.Clamp(delta, -maxTurn, maxTurn)
	l.rotateDirection(delta)
}

func (l *Locomotion) applyWalkPose(phase float64) {
	r := l.rig

	const (
		swingAmpFront = 0.4
		swingAmpBack  = 0.5
		kneeBendFront = 0.7
		kneeBendBack  = 0.9
		frontDesync   = 0.3
	)

	phaseLeft := phase
	phaseRight := math.Mod(phase+math.Pi, 2*math.Pi)

	swingLeft := math.Sin(phaseLeft)
	swingRight := math.Sin(phaseRight)
	swingLeftFront := math.Sin(phaseLeft + frontDesync)
	swingRightFront := math.Sin(phaseRight + frontDesync)

	// Knee bend is the rectified negative half of the swing sine.
	r.setRot(r.blUpper, axisX, swingAmpBack*swingLeft)
	r.setRot(r.blLower, axisX, kneeBendBack*math.Max(0, -swingLeft))
	r.setRot(r.brUpper, axisX, swingAmpBack*swingRight)
	r.setRot(r.brLower, axisX, kneeBendBack*math.Max(0, -swingRight))
	r.setRot(r.flUpper, axisX, swingAmpFront*swingLeftFront)
	r.setRot(r.flLower, axisX, kneeBendFront*math.Max(0, -swingLeftFront))
	r.setRot(r.frUpper, axisX, swingAmpFront*swingRightFront)
	r.setRot(r.frLower, axisX, kneeBendFront*math.Max(0, -swingRightFront))

	bodyPitch := math.Sin(phase*1.0) * 0.03
	bodyYaw := math.Sin(phase*0.5) * 0.02

	r.setRot(r.spineMid, axisX, bodyPitch)
	r.setRot(r.spineMid, axisY, bodyYaw*0.7)
	r.setRot(r.spineNeck, axisX, 0.1+bodyPitch*0.5)
	r.setRot(r.spineNeck, axisY, bodyYaw)
	r.setRot(r.head, axisX, -0.2+bodyPitch*-0.3)
	r.setRot(r.head, axisY, bodyYaw*1.2)
}

func (l *Locomotion) applyTrunkWalk(t, phase float64) {
	r := l.rig
	if len(r.trunk) == 0 {
		return
	}

	sway := math.Sin(phase)*0.25 + math.Sin(t*0.6)*0.08
	dip := math.Sin(phase*2.0)*0.1 + math.Sin(t*0.8)*0.05

	swayFrac := []float64{0.8, 0.6, 0.5, 0.5}
	dipFrac := []float64{0.4, 0.8, 1.0, 1.0}
	for i, bone := range r.trunk {
		r.setRot(bone, axisY, sway*swayFrac[min(i, len(swayFrac)-1)])
		r.setRot(bone, axisX, dip*dipFrac[min(i, len(dipFrac)-1)])
	}
}

func (l *Locomotion) applyEarWalk(t, phase float64) {
	r := l.rig
	gaitFlap := math.Sin(phase*2.0) * 0.18
	idleFlap := math.Sin(t*0.9) * 0.08
	r.setRot(r.earLeft, axisZ, gaitFlap+idleFlap)
	r.setRot(r.earRight, axisZ, -(gaitFlap + idleFlap*0.9))
}

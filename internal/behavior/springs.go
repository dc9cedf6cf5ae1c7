package behavior

// SpringState is one scalar damped-oscillator channel.
type SpringState struct {
	Angle    float64
	Velocity float64
}

// Step advances the spring one semi-implicit Euler step toward target.
// No dt clamping or substepping: callers feed frame-scale dt.
func (s *SpringState) Step(target, stiffness, damping, dt float64) {
	acc := (target-s.Angle)*stiffness - s.Velocity*damping
	s.Velocity += acc * dt
	s.Angle += s.Velocity * dt
}

// Secondary layers damped follow-through onto the trunk, ears, and tail.
// Channel angles are ADDED to whatever the locomotion pose already wrote this
// frame, weighted per bone so the base of each chain carries more of the
// swing than the tip.
type Secondary struct {
	Trunk SpringState
	Ears  SpringState
	Tail  SpringState

	Stiffness float64
	Damping   float64
	TrunkGain float64
	EarsGain  float64
	TailGain  float64

	rig *rig
}

func newSecondary(r *rig) *Secondary {
	return &Secondary{
		Stiffness: 10.0,
		Damping:   5.0,
		TrunkGain: 0.4,
		EarsGain:  0.3,
		TailGain:  0.5,
		rig:       r,
	}
}

var (
	trunkFollow = []float64{0.7, 0.5, 0.35, 0.2}
	tailFollow  = []float64{0.6, 0.4, 0.2}
)

// Apply steps all three channels toward speed-proportional targets and adds
// the resulting angles onto the current pose. Speed is the locomotion speed
// while wandering and 0 otherwise, so the springs relax when movement stops.
func (m *Secondary) Apply(dt, speed float64) {
	r := m.rig

	m.Trunk.Step(speed*m.TrunkGain, m.Stiffness, m.Damping, dt)
	for i, bone := range r.trunk {
		r.addRot(bone, axisY, m.Trunk.Angle*trunkFollow[min(i, len(trunkFollow)-1)])
	}

	m.Ears.Step(speed*m.EarsGain, m.Stiffness, m.Damping, dt)
	r.addRot(r.earLeft, axisZ, m.Ears.Angle)
	r.addRot(r.earRight, axisZ, -m.Ears.Angle)

	m.Tail.Step(speed*m.TailGain, m.Stiffness, m.Damping, dt)
	for i, bone := range r.tail {
		r.addRot(bone, axisY, m.Tail.Angle*tailFollow[min(i, len(tailFollow)-1)])
	}
}

package fur

import "lowpoly-creature/internal/mathutil"

// Strand is one fur rod: a surface root, the surface normal at the root, and
// a tip that trails the rest pose on a damped spring.
type Strand struct {
	Root     mathutil.Vec3
	Normal   mathutil.Vec3
	Length   float64
	Tip      mathutil.Vec3
	Velocity mathutil.Vec3

	// surface binding: triangle of the host mesh plus barycentric coords
	Tri     int
	U, V, W float64
}

// Params tunes strand dynamics.
type Params struct {
	Gravity   mathutil.Vec3
	Stiffness float64
	Damping   float64
}

// DefaultParams matches the visual tuning of the host creature.
func DefaultParams() Params {
	return Params{
		Gravity:   mathutil.Vec3{0, -2.5, 0},
		Stiffness: 36,
		Damping:   8,
	}
}

// Update re-roots the strand on the (possibly skinned) surface and advances
// the tip: spring toward root + normal·length, plus gravity, semi-implicit
// Euler, then a rigid-length re-projection so the rod never stretches.
func (s *Strand) Update(newRoot, newNormal mathutil.Vec3, dt float64, p Params) {
	target := newRoot.AddScaled(newNormal, s.Length)

	force := target.Sub(s.Tip).Scale(p.Stiffness).
		AddScaled(s.Velocity, -p.Damping).
		Add(p.Gravity)

	s.Velocity = s.Velocity.AddScaled(force, dt)
	s.Tip = s.Tip.AddScaled(s.Velocity, dt)

	if s.Tip.Dist(newRoot) > 0 {
		toTip := s.Tip.Sub(newRoot).Normalize()
		s.Tip = newRoot.AddScaled(toTip, s.Length)
	}

	s.Root = newRoot
	s.Normal = newNormal
}

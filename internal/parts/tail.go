package parts

import (
	"fmt"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

// TailOptions configures a tapering appendage: tail, trunk, or tusk. The
// chain may be rooted at a body bone (Root) so the tube emerges from inside
// the torso rather than floating at its first bone.
type TailOptions struct {
	Bones       []string  `yaml:"bones"`
	Root        string    `yaml:"root"` // optional bone prepended to the chain
	Sides       int       `yaml:"sides"`
	Radii       []float64 `yaml:"radii"`
	BaseRadius  float64   `yaml:"baseRadius"`
	MidRadius   float64   `yaml:"midRadius"`
	TipRadius   float64   `yaml:"tipRadius"`
	YOffset     float64   `yaml:"yOffset"`
	LengthScale float64   `yaml:"lengthScale"` // variant scale applied past the first chain point
	TipCap      bool      `yaml:"tipCap"`      // close the point with a 1-segment cap
}

// Tail builds one tapering appendage part.
func Tail(sk *skeleton.Skeleton, opts TailOptions) (*geometry.Part, error) {
	names := opts.Bones
	if opts.Root != "" {
		names = append([]string{opts.Root}, names...)
	}
	if len(names) < 2 {
		return nil, fmt.Errorf("parts: tail needs at least 2 chain bones, got %d", len(names))
	}
	sides := opts.Sides
	if sides == 0 {
		sides = 6
	}
	baseRadius := opts.BaseRadius
	if baseRadius == 0 {
		baseRadius = 0.08
	}
	tipRadius := opts.TipRadius
	if tipRadius == 0 {
		tipRadius = 0.05
	}
	midRadius := opts.MidRadius
	if midRadius == 0 {
		midRadius = (baseRadius + tipRadius) / 2
	}

	points, boneIdx, err := resolveChain(sk, names)
	if err != nil {
		return nil, err
	}

	// Variant length scaling stretches the chain away from its root.
	if opts.LengthScale != 0 && opts.LengthScale != 1 {
		root := points[0]
		for i := 1; i < len(points); i++ {
			points[i] = root.AddScaled(points[i].Sub(root), opts.LengthScale)
		}
	}

	radii := opts.Radii
	if radii == nil {
		if len(points) == 4 {
			radii = []float64{baseRadius, baseRadius, midRadius, tipRadius}
		} else {
			radii = make([]float64, len(points))
			for i := range points {
				t := float64(i) / float64(len(points)-1)
				radii[i] = mathutil.Lerp(baseRadius, tipRadius, t)
			}
		}
	}

	p := &geometry.Part{}
	ringStarts, err := p.AppendTube(points, radii, boneIdx, sides, opts.YOffset)
	if err != nil {
		return nil, fmt.Errorf("parts: tail: %w", err)
	}

	if opts.TipCap {
		last := len(points) - 1
		tipRim := p.RingVertices(ringStarts[last], sides)
		tipApex := points[last].AddScaled(points[last].Sub(points[last-1]).Normalize(), radii[last]*0.6)
		p.AppendBulgedCap(tipRim, tipApex, points[last], 1,
			boneIdx[last], boneIdx[last], geometry.RigidCapWeight, 1.0)
	}

	return p, nil
}

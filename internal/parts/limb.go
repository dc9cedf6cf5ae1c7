package parts

import (
	"fmt"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/skeleton"
)

// LimbOptions configures a leg or ear flap: a tube down the bone chain with a
// bulged cap where the limb roots into the body and a short 1-segment cap
// closing the tip.
type LimbOptions struct {
	Bones      []string  `yaml:"bones"`
	Radii      []float64 `yaml:"radii"`
	Sides      int       `yaml:"sides"`
	YOffset    float64   `yaml:"yOffset"`
	ParentBone string    `yaml:"parentBone"` // root cap apex direction, defaults to the first chain bone
}

// Limb builds one skinned limb part.
func Limb(sk *skeleton.Skeleton, opts LimbOptions) (*geometry.Part, error) {
	if len(opts.Bones) < 2 {
		return nil, fmt.Errorf("parts: limb needs at least 2 bones, got %d", len(opts.Bones))
	}
	if len(opts.Radii) < len(opts.Bones) {
		return nil, fmt.Errorf("parts: limb needs %d radii, got %d", len(opts.Bones), len(opts.Radii))
	}
	sides := opts.Sides
	if sides == 0 {
		sides = 7
	}

	points, boneIdx, err := resolveChain(sk, opts.Bones)
	if err != nil {
		return nil, err
	}

	p := &geometry.Part{}
	ringStarts, err := p.AppendTube(points, opts.Radii, boneIdx, sides, opts.YOffset)
	if err != nil {
		return nil, fmt.Errorf("parts: limb: %w", err)
	}

	// Root bulge toward the parent attachment.
	parentName := opts.ParentBone
	if parentName == "" {
		parentName = opts.Bones[0]
	}
	parentPos, _, err := bonePosition(sk, parentName)
	if err != nil {
		return nil, err
	}
	rootRim := p.RingVertices(ringStarts[0], sides)
	rootApex := parentPos.Lerp(points[0], -0.25)
	p.AppendBulgedCap(rootRim, rootApex, points[0], 2,
		boneIdx[0], boneIdx[1], geometry.BlendCapWeight, -0.35)

	// Tip cap: a single segment pulled slightly inward closes the foot.
	last := len(points) - 1
	tipRim := p.RingVertices(ringStarts[last], sides)
	tipApex := points[last].AddScaled(points[last].Sub(points[last-1]).Normalize(), -0.015)
	p.AppendBulgedCap(tipRim, tipApex, points[last], 1,
		boneIdx[last], boneIdx[last], geometry.RigidCapWeight, 1.05)

	return p, nil
}

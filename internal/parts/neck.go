package parts

import (
	"fmt"
	"math"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

// NeckOptions configures the neck bridge between torso and head. Interior
// rings blend 0.5/0.5 between the bones they sit between; the head junction
// is closed with a bulged cap whose apex sits halfway to the head bone.
type NeckOptions struct {
	Bones      []string  `yaml:"bones"` // chain ending at the neck bone
	HeadBone   string    `yaml:"headBone"`
	Radii      []float64 `yaml:"radii"`
	BaseRadius float64   `yaml:"baseRadius"`
	NeckRadius float64   `yaml:"neckRadius"`
	Sides      int       `yaml:"sides"`
	YOffset    float64   `yaml:"yOffset"`
}

// Neck builds the neck part.
func Neck(sk *skeleton.Skeleton, opts NeckOptions) (*geometry.Part, error) {
	if len(opts.Bones) < 2 {
		return nil, fmt.Errorf("parts: neck needs at least 2 bones, got %d", len(opts.Bones))
	}
	sides := opts.Sides
	if sides == 0 {
		sides = 8
	}

	points, boneIdx, err := resolveChain(sk, opts.Bones)
	if err != nil {
		return nil, err
	}
	headPos, headIdx, err := bonePosition(sk, opts.HeadBone)
	if err != nil {
		return nil, err
	}

	radii := opts.Radii
	if radii == nil {
		base := opts.BaseRadius
		if base == 0 {
			base = 0.12
		}
		neck := opts.NeckRadius
		if neck == 0 {
			neck = 0.08
		}
		radii = make([]float64, len(points))
		for i := range points {
			t := float64(i) / float64(len(points)-1)
			radii[i] = mathutil.Lerp(base, neck, t)
		}
	}

	p := &geometry.Part{}
	ringStarts := make([]int, 0, len(points))

	for i, center := range points {
		// Central difference keeps interior rings from kinking at joints.
		prev := points[max(i-1, 0)]
		next := points[min(i+1, len(points)-1)]
		axis := next.Sub(prev).Normalize()
		if axis.LenSq() < 1e-6 {
			axis = mathutil.Vec3{0, 1, 0}
		}
		up := geometry.DefaultUp
		if math.Abs(axis[1]) > 0.99 {
			up = mathutil.Vec3{1, 0, 0}
		}
		ring := geometry.BuildRing(center, axis, radii[i], sides, up)

		ringStarts = append(ringStarts, p.VertexCount())
		for j, v := range ring {
			v[1] += opts.YOffset
			normal := v.Sub(center).Normalize()
			uv := [2]float64{float64(j) / float64(sides), float64(i) / float64(len(points)-1)}
			switch {
			case i == 0:
				p.AddVertex(v, normal, uv, boneIdx[0], boneIdx[0], 1, 0)
			case i == len(points)-1:
				p.AddVertex(v, normal, uv, boneIdx[i], boneIdx[i], 1, 0)
			default:
				p.AddVertex(v, normal, uv, boneIdx[i-1], boneIdx[i], 0.5, 0.5)
			}
		}
	}

	for seg := 0; seg < len(points)-1; seg++ {
		p.Indices = geometry.BridgeRings(ringStarts[seg], ringStarts[seg+1], sides, p.Indices)
	}

	last := len(points) - 1
	rim := p.RingVertices(ringStarts[last], sides)
	apex := points[last].Lerp(headPos, 0.5)
	p.AppendBulgedCap(rim, apex, points[last], 2,
		boneIdx[last], headIdx, geometry.BlendCapWeight, 0)

	return p, nil
}

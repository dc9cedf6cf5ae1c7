// Package creature assembles the full pipeline: skeleton from the bone
// table, part geometry from the posed skeleton, one merged flat-shaded
// skinned mesh, and a behavior controller animating it.
package creature

import (
	"fmt"
	"math/rand"

	"lowpoly-creature/internal/behavior"
	"lowpoly-creature/internal/fur"
	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/parts"
	"lowpoly-creature/internal/skeleton"
)

// Options controls one creature build.
type Options struct {
	Definition  *Definition // nil selects the built-in elephant
	VariantSeed float64     // deterministic shape perturbation
	Seed        int64       // seeds behavior transitions and fur sampling
	Material    *Material   // nil selects the default matte skin
	Fur         bool        // grow a strand coat (off by default)
}

// Creature is the built asset plus its runtime controller.
type Creature struct {
	Skeleton *skeleton.Skeleton
	Mesh     *geometry.Part // flattened, non-indexed, skinned
	Material Material
	Behavior *behavior.Behavior
	Fur      *fur.Coat
}

// New builds a creature. Generation is all-or-nothing: any configuration
// error (typically a part referencing a bone the definition never declared)
// aborts the whole build.
func New(opts Options) (*Creature, error) {
	def := opts.Definition
	if def == nil {
		d := Elephant()
		def = &d
	}

	sk, err := skeleton.New(def.Bones)
	if err != nil {
		return nil, err
	}

	mesh, err := generateMesh(sk, def, opts.VariantSeed)
	if err != nil {
		return nil, err
	}

	mat := DefaultMaterial()
	if opts.Material != nil {
		mat = *opts.Material
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	c := &Creature{
		Skeleton: sk,
		Mesh:     mesh,
		Material: mat,
		Behavior: behavior.New(sk, def.BoneMap, rng),
	}

	if opts.Fur {
		furOpts := fur.Options{}
		if def.Fur != nil {
			furOpts = *def.Fur
		}
		coat, err := fur.Generate(mesh, furOpts, rng)
		if err != nil {
			return nil, err
		}
		c.Fur = coat
	}

	return c, nil
}

// Update advances the creature by dt seconds: behavior (locomotion, springs,
// world-matrix pass) first, fur afterward so strands read this frame's skin.
func (c *Creature) Update(dt float64) {
	c.Behavior.Update(dt)
	if c.Fur != nil {
		c.Fur.Update(c.Skeleton.WorldMatrices(), c.bindInverses(), dt)
	}
}

// SkinnedMesh deforms the merged mesh by the current pose. The dst slices are
// reused when large enough, so callers that keep snapshots must pass nil.
func (c *Creature) SkinnedMesh(dstPos, dstNrm []mathutil.Vec3) ([]mathutil.Vec3, []mathutil.Vec3) {
	return c.Mesh.SkinnedSurface(c.Skeleton.WorldMatrices(), c.bindInverses(), dstPos, dstNrm)
}

func (c *Creature) bindInverses() []mathutil.Mat4 {
	out := make([]mathutil.Mat4, len(c.Skeleton.Bones))
	for i := range out {
		out[i] = c.Skeleton.BindInverse(i)
	}
	return out
}

// generateMesh builds every configured part against the bind pose, merges
// them, and flattens the result for the faceted look.
func generateMesh(sk *skeleton.Skeleton, def *Definition, variantSeed float64) (*geometry.Part, error) {
	legScale, tuskScale, headScale := variantScales(Variant01(variantSeed))

	var built []*geometry.Part
	add := func(p *geometry.Part, err error) error {
		if err != nil {
			return fmt.Errorf("creature: %w", err)
		}
		built = append(built, p)
		return nil
	}

	torsoOpts := def.Torso
	torsoOpts.Radii = append([]float64(nil), torsoOpts.Radii...)
	if len(torsoOpts.Radii) > 0 {
		torsoOpts.Radii[0] *= headScale
		torsoOpts.Radii[len(torsoOpts.Radii)-1] *= headScale
	}
	if err := add(parts.Torso(sk, torsoOpts)); err != nil {
		return nil, err
	}

	headOpts := def.Head
	headOpts.Radius *= headScale
	if err := add(parts.Head(sk, headOpts)); err != nil {
		return nil, err
	}

	if def.Neck != nil {
		if err := add(parts.Neck(sk, *def.Neck)); err != nil {
			return nil, err
		}
	}
	if def.Trunk != nil {
		if err := add(parts.Tail(sk, *def.Trunk)); err != nil {
			return nil, err
		}
	}
	for _, tusk := range def.Tusks {
		tusk.LengthScale = tuskScale
		if err := add(parts.Tail(sk, tusk)); err != nil {
			return nil, err
		}
	}
	for _, ear := range def.Ears {
		if err := add(parts.Limb(sk, ear)); err != nil {
			return nil, err
		}
	}
	if def.Tail != nil {
		if err := add(parts.Tail(sk, *def.Tail)); err != nil {
			return nil, err
		}
	}
	for _, leg := range def.Legs {
		leg.Radii = scaleRadii(leg.Radii, legScale)
		if err := add(parts.Limb(sk, leg)); err != nil {
			return nil, err
		}
	}

	return geometry.Flatten(geometry.Merge(built...)), nil
}

func scaleRadii(radii []float64, s float64) []float64 {
	out := make([]float64, len(radii))
	for i, r := range radii {
		out[i] = r * s
	}
	return out
}

// Package fur scatters spring-animated strands over a skinned surface.
// Roots are sampled area-weighted so dense regions of the mesh get
// proportionally more strands, and each strand re-derives its root and normal
// from the deformed surface every frame.
package fur

import (
	"fmt"
	"math/rand"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
)

// Options configures strand generation.
type Options struct {
	StrandCount  int     `yaml:"strandCount"`
	StrandLength float64 `yaml:"strandLength"`
	LengthJitter float64 `yaml:"lengthJitter"`
}

// Coat is a set of strands bound to one host part.
type Coat struct {
	Strands []Strand
	Params  Params

	host    *geometry.Part
	skinPos []mathutil.Vec3
	skinNrm []mathutil.Vec3
}

// Generate samples opts.StrandCount strands over the part surface. Triangle
// choice is by cumulative area; the point within the triangle is a uniform
// barycentric sample (reflected when u+v > 1).
func Generate(host *geometry.Part, opts Options, rng *rand.Rand) (*Coat, error) {
	count := opts.StrandCount
	if count == 0 {
		count = 1200
	}
	length := opts.StrandLength
	if length == 0 {
		length = 0.11
	}
	jitter := opts.LengthJitter
	if jitter == 0 {
		jitter = 0.04
	}

	triCount := host.TriangleCount()
	if triCount == 0 {
		return nil, fmt.Errorf("fur: host part has no triangles")
	}

	// Cumulative triangle areas for weighted sampling.
	cumAreas := make([]float64, triCount)
	total := 0.0
	for i := 0; i < triCount; i++ {
		ia, ib, ic := host.Triangle(i)
		a, b, c := host.Positions[ia], host.Positions[ib], host.Positions[ic]
		total += b.Sub(a).Cross(c.Sub(a)).Len() * 0.5
		cumAreas[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("fur: host part has zero surface area")
	}

	coat := &Coat{
		Strands: make([]Strand, 0, count),
		Params:  DefaultParams(),
		host:    host,
	}

	for i := 0; i < count; i++ {
		tri := pickTriangle(cumAreas, rng.Float64()*total)

		u, v := rng.Float64(), rng.Float64()
		if u+v > 1 {
			u, v = 1-u, 1-v
		}
		w := 1 - u - v

		root, normal := surfacePoint(host, host.Positions, host.Normals, tri, u, v, w)
		strandLen := length + (rng.Float64()-0.5)*jitter

		coat.Strands = append(coat.Strands, Strand{
			Root:   root,
			Normal: normal,
			Length: strandLen,
			Tip:    root.AddScaled(normal, strandLen),
			Tri:    tri,
			U:      u, V: v, W: w,
		})
	}
	return coat, nil
}

// pickTriangle binary-searches the cumulative area table for the draw r.
func pickTriangle(cumAreas []float64, r float64) int {
	lo, hi := 0, len(cumAreas)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if r <= cumAreas[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

func surfacePoint(p *geometry.Part, pos, nrm []mathutil.Vec3, tri int, u, v, w float64) (mathutil.Vec3, mathutil.Vec3) {
	ia, ib, ic := p.Triangle(tri)
	root := mathutil.Vec3{}.
		AddScaled(pos[ia], u).
		AddScaled(pos[ib], v).
		AddScaled(pos[ic], w)
	normal := mathutil.Vec3{}.
		AddScaled(nrm[ia], u).
		AddScaled(nrm[ib], v).
		AddScaled(nrm[ic], w).
		Normalize()
	return root, normal
}

// Update re-derives every strand's root and normal from the current skinned
// surface and advances its spring dynamics.
func (c *Coat) Update(worlds, bindInv []mathutil.Mat4, dt float64) {
	c.skinPos, c.skinNrm = c.host.SkinnedSurface(worlds, bindInv, c.skinPos, c.skinNrm)
	for i := range c.Strands {
		s := &c.Strands[i]
		root, normal := surfacePoint(c.host, c.skinPos, c.skinNrm, s.Tri, s.U, s.V, s.W)
		s.Update(root, normal, dt, c.Params)
	}
}

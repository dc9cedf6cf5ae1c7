package parts

import (
	"fmt"
	"math"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

// HeadOptions configures the head solid: a subdivided icosahedron stretched
// to span the neck→head distance and bound fully to the head bone.
type HeadOptions struct {
	NeckBone string  `yaml:"neckBone"`
	HeadBone string  `yaml:"headBone"`
	Radius   float64 `yaml:"radius"`
	Detail   int     `yaml:"detail"` // subdivision level, 0 = 20 faces
}

// Head builds the head part.
func Head(sk *skeleton.Skeleton, opts HeadOptions) (*geometry.Part, error) {
	neckPos, _, err := bonePosition(sk, opts.NeckBone)
	if err != nil {
		return nil, err
	}
	headPos, headIdx, err := bonePosition(sk, opts.HeadBone)
	if err != nil {
		return nil, err
	}
	radius := opts.Radius
	if radius == 0 {
		radius = 0.13
	}
	if opts.Detail < 0 {
		return nil, fmt.Errorf("parts: head detail must be >= 0, got %d", opts.Detail)
	}

	mid := neckPos.Lerp(headPos, 0.5)
	dir := headPos.Sub(neckPos).Normalize()
	length := neckPos.Dist(headPos)

	verts, faces := icosphere(opts.Detail)

	// Non-uniform scale, then rotate the canonical +Z forward axis onto the
	// neck→head direction, then move to the chain midpoint.
	rot := mathutil.QuatToMat3(mathutil.QuatBetween(mathutil.Vec3{0, 0, 1}, dir))
	p := &geometry.Part{}
	for _, v := range verts {
		scaled := mathutil.Vec3{v[0] * 1.2 * radius, v[1] * 1.0 * radius, v[2] * length / 2}
		pos := rot.MulVec3(scaled).Add(mid)
		normal := rot.MulVec3(v) // unit sphere position doubles as normal
		uv := [2]float64{
			math.Atan2(v[0], v[2])/(2*math.Pi) + 0.5,
			math.Acos(mathutil.Clamp(v[1], -1, 1)) / math.Pi,
		}
		p.AddVertex(pos, normal, uv, headIdx, headIdx, 1, 0)
	}
	for _, f := range faces {
		p.Indices = append(p.Indices, f[0], f[1], f[2])
	}
	return p, nil
}

// icosphere returns a unit icosahedron subdivided detail times, with shared
// vertices and triangle faces.
func icosphere(detail int) ([]mathutil.Vec3, [][3]int) {
	t := (1 + math.Sqrt(5)) / 2

	verts := []mathutil.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}

	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for level := 0; level < detail; level++ {
		midCache := make(map[[2]int]int)
		midpoint := func(a, b int) int {
			key := [2]int{min(a, b), max(a, b)}
			if idx, ok := midCache[key]; ok {
				return idx
			}
			m := verts[a].Add(verts[b]).Scale(0.5).Normalize()
			verts = append(verts, m)
			idx := len(verts) - 1
			midCache[key] = idx
			return idx
		}

		next := make([][3]int, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], ab, ca},
				[3]int{f[1], bc, ab},
				[3]int{f[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		faces = next
	}

	return verts, faces
}

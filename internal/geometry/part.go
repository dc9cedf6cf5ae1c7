package geometry

import "lowpoly-creature/internal/mathutil"

// Part holds the geometry of one body part as parallel per-vertex arrays plus
// a triangle index list. Skin bindings use at most two bones per vertex; the
// remaining two slots stay zero and the nonzero weights sum to 1.
type Part struct {
	Positions   []mathutil.Vec3
	Normals     []mathutil.Vec3
	UVs         [][2]float64
	SkinIndices [][4]uint16
	SkinWeights [][4]float64

	// Indices is nil for non-indexed (flattened) parts, in which case
	// triangle i is vertices 3i, 3i+1, 3i+2.
	Indices []int
}

// VertexCount returns the number of vertices in the part.
func (p *Part) VertexCount() int {
	return len(p.Positions)
}

// TriangleCount returns the number of triangles, indexed or not.
func (p *Part) TriangleCount() int {
	if p.Indices != nil {
		return len(p.Indices) / 3
	}
	return len(p.Positions) / 3
}

// Triangle returns the three vertex indices of triangle i.
func (p *Part) Triangle(i int) (a, b, c int) {
	if p.Indices != nil {
		return p.Indices[i*3], p.Indices[i*3+1], p.Indices[i*3+2]
	}
	return i * 3, i*3 + 1, i*3 + 2
}

// AddVertex appends one vertex with a two-bone skin binding and returns its index.
func (p *Part) AddVertex(pos, normal mathutil.Vec3, uv [2]float64, boneA, boneB int, wa, wb float64) int {
	p.Positions = append(p.Positions, pos)
	p.Normals = append(p.Normals, normal)
	p.UVs = append(p.UVs, uv)
	p.SkinIndices = append(p.SkinIndices, [4]uint16{uint16(boneA), uint16(boneB), 0, 0})
	p.SkinWeights = append(p.SkinWeights, [4]float64{wa, wb, 0, 0})
	return len(p.Positions) - 1
}

// Merge concatenates parts into one indexed mesh, re-basing triangle indices.
func Merge(parts ...*Part) *Part {
	out := &Part{}
	for _, p := range parts {
		base := len(out.Positions)
		out.Positions = append(out.Positions, p.Positions...)
		out.Normals = append(out.Normals, p.Normals...)
		out.UVs = append(out.UVs, p.UVs...)
		out.SkinIndices = append(out.SkinIndices, p.SkinIndices...)
		out.SkinWeights = append(out.SkinWeights, p.SkinWeights...)
		n := p.TriangleCount()
		for i := 0; i < n; i++ {
			a, b, c := p.Triangle(i)
			out.Indices = append(out.Indices, base+a, base+b, base+c)
		}
	}
	return out
}

package geometry

import "lowpoly-creature/internal/mathutil"

// Flatten converts a part to non-indexed triangle soup: every triangle gets
// three unique vertices carrying one shared, recomputed face normal. Vertex
// sharing across faces is discarded, which is what produces the faceted
// low-poly shading once the renderer interpolates nothing.
func Flatten(p *Part) *Part {
	n := p.TriangleCount()
	out := &Part{
		Positions:   make([]mathutil.Vec3, 0, n*3),
		Normals:     make([]mathutil.Vec3, 0, n*3),
		UVs:         make([][2]float64, 0, n*3),
		SkinIndices: make([][4]uint16, 0, n*3),
		SkinWeights: make([][4]float64, 0, n*3),
	}

	for i := 0; i < n; i++ {
		ia, ib, ic := p.Triangle(i)
		a, b, c := p.Positions[ia], p.Positions[ib], p.Positions[ic]
		faceNormal := b.Sub(a).Cross(c.Sub(a)).Normalize()

		for _, idx := range [3]int{ia, ib, ic} {
			out.Positions = append(out.Positions, p.Positions[idx])
			out.Normals = append(out.Normals, faceNormal)
			out.UVs = append(out.UVs, p.UVs[idx])
			out.SkinIndices = append(out.SkinIndices, p.SkinIndices[idx])
			out.SkinWeights = append(out.SkinWeights, p.SkinWeights[idx])
		}
	}
	return out
}

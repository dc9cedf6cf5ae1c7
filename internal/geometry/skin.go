package geometry

import "lowpoly-creature/internal/mathutil"

// SkinnedSurface deforms the part by the current bone pose. For each vertex
// the two-bone blend Σ w·(world·bindInverse)·v is written into dstPos, and the
// rotation-only transform of the vertex normal into dstNrm. Passing nil dst
// slices allocates fresh ones; both are returned for reuse across frames.
// Vertices bound to out-of-range bones keep their bind-pose values.
func (p *Part) SkinnedSurface(worlds, bindInv []mathutil.Mat4, dstPos, dstNrm []mathutil.Vec3) ([]mathutil.Vec3, []mathutil.Vec3) {
	n := len(p.Positions)
	if cap(dstPos) < n {
		dstPos = make([]mathutil.Vec3, n)
	}
	dstPos = dstPos[:n]
	if cap(dstNrm) < n {
		dstNrm = make([]mathutil.Vec3, n)
	}
	dstNrm = dstNrm[:n]

	for i := 0; i < n; i++ {
		v := p.Positions[i]
		nv := p.Normals[i]
		var pos, nrm mathutil.Vec3
		applied := false

		for k := 0; k < 2; k++ {
			w := p.SkinWeights[i][k]
			if w == 0 {
				continue
			}
			bi := int(p.SkinIndices[i][k])
			if bi < 0 || bi >= len(worlds) {
				continue
			}
			m := mathutil.Mat4Mul(worlds[bi], bindInv[bi])
			pos = pos.AddScaled(m.MulPoint(v), w)
			nrm = nrm.AddScaled(m.MulDir(nv), w)
			applied = true
		}

		if !applied {
			pos = v
			nrm = nv
		}
		dstPos[i] = pos
		dstNrm[i] = nrm.Normalize()
	}
	return dstPos, dstNrm
}

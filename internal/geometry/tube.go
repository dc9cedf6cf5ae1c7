package geometry

import (
	"fmt"

	"lowpoly-creature/internal/mathutil"
)

// AppendTube builds one oriented ring per chain point, bridges consecutive
// rings, and binds each ring fully to the bone at the same chain index. The
// ring axis is the direction to the next point; the last ring reuses the
// direction from its predecessor. Returns the vertex start offset of each ring.
func (p *Part) AppendTube(points []mathutil.Vec3, radii []float64, boneIndices []int, sides int, yOffset float64) ([]int, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("geometry: tube needs at least 2 chain points, got %d", len(points))
	}
	if len(radii) < len(points) || len(boneIndices) < len(points) {
		return nil, fmt.Errorf("geometry: tube chain of %d points needs %d radii and bone indices (got %d, %d)",
			len(points), len(points), len(radii), len(boneIndices))
	}
	if sides < 3 {
		return nil, fmt.Errorf("geometry: tube needs at least 3 sides, got %d", sides)
	}

	ringStarts := make([]int, 0, len(points))
	for i, center := range points {
		var axis mathutil.Vec3
		if i == len(points)-1 {
			axis = center.Sub(points[i-1]).Normalize()
		} else {
			axis = points[i+1].Sub(center).Normalize()
		}
		ring := BuildRing(center, axis, radii[i], sides, DefaultUp)

		ringStarts = append(ringStarts, len(p.Positions))
		for j, v := range ring {
			v[1] += yOffset
			normal := v.Sub(center).Normalize()
			uv := [2]float64{float64(j) / float64(sides), float64(i) / float64(len(points)-1)}
			p.AddVertex(v, normal, uv, boneIndices[i], boneIndices[i], 1, 0)
		}
	}

	for seg := 0; seg < len(points)-1; seg++ {
		p.Indices = BridgeRings(ringStarts[seg], ringStarts[seg+1], sides, p.Indices)
	}
	return ringStarts, nil
}

// CapWeight maps the cap parameter t∈[0,1] to the (rim bone, apex bone)
// skin weight pair.
type CapWeight func(t float64) (wa, wb float64)

// BlendCapWeight is the standard rim-to-apex transition: wa=1−t, wb=t.
func BlendCapWeight(t float64) (float64, float64) {
	return 1 - t, t
}

// RigidCapWeight keeps the whole cap on the rim bone.
func RigidCapWeight(float64) (float64, float64) {
	return 1, 0
}

// AppendBulgedCap closes an open tube end with a rounded bulge: segments
// interpolated rings from the rim toward the apex point, then a fan onto a
// single apex vertex bound fully to boneB. Skin weights along the cap follow
// the supplied CapWeight, so caps that span a joint blend between the two
// bones they bridge.
func (p *Part) AppendBulgedCap(rim []mathutil.Vec3, apex, center mathutil.Vec3, segments int, boneA, boneB int, weight CapWeight, uvBase float64) {
	sides := len(rim)
	base := len(p.Positions)

	for seg := 0; seg < segments; seg++ {
		t := float64(seg) / float64(segments)
		wa, wb := weight(t)
		for j := 0; j < sides; j++ {
			var v, normal mathutil.Vec3
			if seg == 0 {
				v = rim[j]
				normal = v.Sub(center).Normalize()
			} else {
				v = rim[j].Lerp(apex, t)
				normal = apex.Sub(rim[j]).Normalize()
			}
			uv := [2]float64{float64(j) / float64(sides), uvBase + t}
			p.AddVertex(v, normal, uv, boneA, boneB, wa, wb)
		}
	}

	apexNormal := apex.Sub(center).Normalize()
	apexIdx := p.AddVertex(apex, apexNormal, [2]float64{0.5, uvBase + 1}, boneB, boneB, 1, 0)

	for seg := 0; seg < segments-1; seg++ {
		p.Indices = BridgeRings(base+seg*sides, base+(seg+1)*sides, sides, p.Indices)
	}
	lastRing := base + (segments-1)*sides
	for j := 0; j < sides; j++ {
		a := lastRing + j
		b := lastRing + (j+1)%sides
		p.Indices = append(p.Indices, apexIdx, a, b)
	}
}

// RingVertices extracts the positions of a ring previously appended at the
// given start offset.
func (p *Part) RingVertices(start, sides int) []mathutil.Vec3 {
	rim := make([]mathutil.Vec3, sides)
	copy(rim, p.Positions[start:start+sides])
	return rim
}

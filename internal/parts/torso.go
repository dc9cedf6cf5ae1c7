package parts

import (
	"fmt"

	"lowpoly-creature/internal/geometry"
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

// TorsoOptions configures the main body tube. The ring chain runs rear center
// (midpoint of the pelvis pair) through the spine bones to a derived shoulder
// ring and the front center (midpoint of the collar pair), with rounded bulge
// caps at both ends.
type TorsoOptions struct {
	Bones        []string  `yaml:"bones"` // spine chain, base to neck
	Radii        []float64 `yaml:"radii"` // one radius per spine bone
	Sides        int       `yaml:"sides"`
	YOffset      float64   `yaml:"yOffset"`
	PelvisPair   [2]string `yaml:"pelvisPair"`
	CollarPair   [2]string `yaml:"collarPair"`
	RearApexBone string    `yaml:"rearApexBone"`  // cap bulges toward this bone (tail base)
	FrontApex    string    `yaml:"frontApexBone"` // front cap apex bone (neck)
	RearCapBulge float64   `yaml:"rearCapBulge"`
}

// Torso builds the skinned torso part.
func Torso(sk *skeleton.Skeleton, opts TorsoOptions) (*geometry.Part, error) {
	if len(opts.Bones) < 2 {
		return nil, fmt.Errorf("parts: torso needs at least 2 spine bones, got %d", len(opts.Bones))
	}
	if len(opts.Radii) < len(opts.Bones) {
		return nil, fmt.Errorf("parts: torso needs %d radii, got %d", len(opts.Bones), len(opts.Radii))
	}
	sides := opts.Sides
	if sides == 0 {
		sides = 8
	}
	bulge := opts.RearCapBulge
	if bulge == 0 {
		bulge = 0.035
	}

	spinePoints, spineIdx, err := resolveChain(sk, opts.Bones)
	if err != nil {
		return nil, err
	}
	leftPelvis, _, err := bonePosition(sk, opts.PelvisPair[0])
	if err != nil {
		return nil, err
	}
	rightPelvis, _, err := bonePosition(sk, opts.PelvisPair[1])
	if err != nil {
		return nil, err
	}
	leftCollar, _, err := bonePosition(sk, opts.CollarPair[0])
	if err != nil {
		return nil, err
	}
	rightCollar, _, err := bonePosition(sk, opts.CollarPair[1])
	if err != nil {
		return nil, err
	}
	rearApexPos, rearApexIdx, err := bonePosition(sk, opts.RearApexBone)
	if err != nil {
		return nil, err
	}
	frontApexPos, frontApexIdx, err := bonePosition(sk, opts.FrontApex)
	if err != nil {
		return nil, err
	}

	rearCenter := leftPelvis.Lerp(rightPelvis, 0.5)
	rearRadius := leftPelvis.Dist(rightPelvis) / 2
	frontCenter := leftCollar.Lerp(rightCollar, 0.5)
	frontRadius := leftCollar.Dist(rightCollar) / 2

	// Extra ring halfway between the last spine bone and the collar line
	// keeps the shoulder from pinching.
	spineLast := spinePoints[len(spinePoints)-1]
	shoulderBase := spineLast.Lerp(frontCenter, 0.5)
	shoulderRadius := (spineLast.Dist(frontCenter)/2 + frontRadius) / 2

	centers := make([]mathutil.Vec3, 0, len(spinePoints)+3)
	centers = append(centers, rearCenter)
	centers = append(centers, spinePoints...)
	centers = append(centers, shoulderBase, frontCenter)

	radii := make([]float64, 0, len(centers))
	radii = append(radii, rearRadius)
	radii = append(radii, opts.Radii[:len(spinePoints)]...)
	radii = append(radii, shoulderRadius, frontRadius)

	lastSpine := spineIdx[len(spineIdx)-1]
	boneIdx := make([]int, 0, len(centers))
	boneIdx = append(boneIdx, spineIdx[0])
	boneIdx = append(boneIdx, spineIdx...)
	boneIdx = append(boneIdx, lastSpine, lastSpine)

	p := &geometry.Part{}
	ringStarts, err := p.AppendTube(centers, radii, boneIdx, sides, opts.YOffset)
	if err != nil {
		return nil, fmt.Errorf("parts: torso: %w", err)
	}

	// Rear bulge: rim at the first spine ring, apex pushed past it toward the
	// tail base so the rump rounds off behind the pelvis line.
	rearRimRing := 1
	rearRim := p.RingVertices(ringStarts[rearRimRing], sides)
	rearRimCenter := centers[rearRimRing]
	rearApex := rearRimCenter.AddScaled(
		rearApexPos.Sub(rearRimCenter).Normalize(),
		(radii[rearRimRing]+bulge)*1.15,
	)
	p.AppendBulgedCap(rearRim, rearApex, rearRimCenter, 2,
		boneIdx[rearRimRing], rearApexIdx, geometry.BlendCapWeight, 0)

	// Front bulge: rim at the collar ring, apex at the neck bone.
	frontRim := p.RingVertices(ringStarts[len(ringStarts)-1], sides)
	p.AppendBulgedCap(frontRim, frontApexPos, frontCenter, 2,
		lastSpine, frontApexIdx, geometry.BlendCapWeight, 0)

	return p, nil
}

// Package parts turns bone chains of a posed skeleton into ring-based body
// part geometry. Each assembler is a configuration adapter over the geometry
// builders: it resolves bone names to world positions, supplies a radius
// profile and side count, and picks the end-cap policy.
package parts

import (
	"fmt"

	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

// resolveChain maps bone names to arena indices and current world positions.
// Generation reads bone positions only; the world pass must have run already.
func resolveChain(sk *skeleton.Skeleton, names []string) ([]mathutil.Vec3, []int, error) {
	points := make([]mathutil.Vec3, len(names))
	indices := make([]int, len(names))
	for i, name := range names {
		idx, ok := sk.Index(name)
		if !ok {
			return nil, nil, fmt.Errorf("parts: %w", &skeleton.MissingBoneError{Name: name})
		}
		points[i] = sk.WorldPosition(idx)
		indices[i] = idx
	}
	return points, indices, nil
}

func bonePosition(sk *skeleton.Skeleton, name string) (mathutil.Vec3, int, error) {
	idx, ok := sk.Index(name)
	if !ok {
		return mathutil.Vec3{}, -1, fmt.Errorf("parts: %w", &skeleton.MissingBoneError{Name: name})
	}
	return sk.WorldPosition(idx), idx, nil
}

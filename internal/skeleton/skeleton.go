package skeleton

import (
	"fmt"

	"lowpoly-creature/internal/mathutil"
)

// RootParent is the sentinel parent name for unparented bones.
const RootParent = "root"

// BoneSpec declares one bone of a creature rig. Specs are ordered: a parent
// must appear before any bone that references it.
type BoneSpec struct {
	Name   string     `yaml:"name"`
	Parent string     `yaml:"parent"`
	Offset [3]float64 `yaml:"offset"`
}

// Bone is a runtime node in the hierarchy. Pos and Rot are local to the
// parent and are mutated by the behavior layer every frame; World is derived
// and only valid after UpdateWorldMatrices has run in the same frame.
type Bone struct {
	Name     string
	Parent   int // index into the skeleton arena, -1 for root bones
	Children []int
	Pos      mathutil.Vec3 // local translation
	Rot      mathutil.Vec3 // local Euler XYZ rotation, radians
	World    mathutil.Mat4
}

// Skeleton is an index-stable arena of bones. The index order doubles as the
// skin-index reference and guarantees parent-before-child traversal.
type Skeleton struct {
	Bones   []*Bone
	byName  map[string]int
	bindInv []mathutil.Mat4
}

// MissingBoneError reports a bone name absent from the skeleton.
type MissingBoneError struct {
	Name string
}

func (e *MissingBoneError) Error() string {
	return fmt.Sprintf("skeleton: missing bone %q", e.Name)
}

// New builds a skeleton from an ordered spec list, runs the initial world
// pass, and records inverse bind-pose matrices for skinning.
func New(specs []BoneSpec) (*Skeleton, error) {
	s := &Skeleton{
		Bones:  make([]*Bone, 0, len(specs)),
		byName: make(map[string]int, len(specs)),
	}

	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("skeleton: bone %d has no name", i)
		}
		if _, dup := s.byName[spec.Name]; dup {
			return nil, fmt.Errorf("skeleton: duplicate bone %q", spec.Name)
		}

		parent := -1
		if spec.Parent != "" && spec.Parent != RootParent {
			pi, ok := s.byName[spec.Parent]
			if !ok {
				// Also rejects forward references, which forbids cycles.
				return nil, fmt.Errorf("skeleton: bone %q: parent not defined: %w",
					spec.Name, &MissingBoneError{Name: spec.Parent})
			}
			parent = pi
		}

		bone := &Bone{
			Name:   spec.Name,
			Parent: parent,
			Pos:    mathutil.Vec3(spec.Offset),
			World:  mathutil.Mat4Identity(),
		}
		s.byName[spec.Name] = i
		s.Bones = append(s.Bones, bone)
		if parent >= 0 {
			s.Bones[parent].Children = append(s.Bones[parent].Children, i)
		}
	}

	s.UpdateWorldMatrices()

	s.bindInv = make([]mathutil.Mat4, len(s.Bones))
	for i, b := range s.Bones {
		s.bindInv[i] = b.World.InverseAffine()
	}

	return s, nil
}

// Index returns the arena index for a bone name.
func (s *Skeleton) Index(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// Bone returns the bone with the given name, or nil if absent. Intended for
// setup code; per-frame paths should cache indices instead.
func (s *Skeleton) Bone(name string) *Bone {
	if i, ok := s.byName[name]; ok {
		return s.Bones[i]
	}
	return nil
}

// UpdateWorldMatrices recomputes every bone's world transform top-down.
// Index order is parent-before-child by construction, so a single forward
// sweep is sufficient.
func (s *Skeleton) UpdateWorldMatrices() {
	for _, b := range s.Bones {
		q := mathutil.EulerToQuat(b.Rot[0], b.Rot[1], b.Rot[2])
		local := mathutil.FromMat3Translation(mathutil.QuatToMat3(q), b.Pos)
		if b.Parent >= 0 {
			b.World = mathutil.Mat4Mul(s.Bones[b.Parent].World, local)
		} else {
			b.World = local
		}
	}
}

// WorldPosition returns the current world-space position of bone i.
func (s *Skeleton) WorldPosition(i int) mathutil.Vec3 {
	return s.Bones[i].World.Translation()
}

// BindInverse returns the inverse bind-pose matrix of bone i.
func (s *Skeleton) BindInverse(i int) mathutil.Mat4 {
	return s.bindInv[i]
}

// WorldMatrices returns the current world matrix per bone, in index order.
func (s *Skeleton) WorldMatrices() []mathutil.Mat4 {
	worlds := make([]mathutil.Mat4, len(s.Bones))
	for i, b := range s.Bones {
		worlds[i] = b.World
	}
	return worlds
}

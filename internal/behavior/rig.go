package behavior

import (
	"lowpoly-creature/internal/mathutil"
	"lowpoly-creature/internal/skeleton"
)

// BoneMap names the bones the behavior layer drives. Empty entries and names
// absent from the skeleton are tolerated: pose writes to them are skipped so
// a missing optional bone degrades one channel instead of halting animation.
type BoneMap struct {
	Root      string   `yaml:"root"`
	SpineMid  string   `yaml:"spineMid"`
	SpineNeck string   `yaml:"spineNeck"`
	Head      string   `yaml:"head"`
	Trunk     []string `yaml:"trunk"` // base to tip
	EarLeft   string   `yaml:"earLeft"`
	EarRight  string   `yaml:"earRight"`
	Tail      []string `yaml:"tail"` // base to tip

	FrontLeftUpper  string `yaml:"frontLeftUpper"`
	FrontLeftLower  string `yaml:"frontLeftLower"`
	FrontRightUpper string `yaml:"frontRightUpper"`
	FrontRightLower string `yaml:"frontRightLower"`
	BackLeftUpper   string `yaml:"backLeftUpper"`
	BackLeftLower   string `yaml:"backLeftLower"`
	BackRightUpper  string `yaml:"backRightUpper"`
	BackRightLower  string `yaml:"backRightLower"`
}

// DefaultBoneMap matches the built-in elephant definition.
func DefaultBoneMap() BoneMap {
	return BoneMap{
		Root:            "spine_base",
		SpineMid:        "spine_mid",
		SpineNeck:       "spine_neck",
		Head:            "head",
		Trunk:           []string{"trunk_base", "trunk_mid1", "trunk_mid2", "trunk_tip"},
		EarLeft:         "ear_left",
		EarRight:        "ear_right",
		Tail:            []string{"tail_base", "tail_mid", "tail_tip"},
		FrontLeftUpper:  "front_left_upper",
		FrontLeftLower:  "front_left_lower",
		FrontRightUpper: "front_right_upper",
		FrontRightLower: "front_right_lower",
		BackLeftUpper:   "back_left_upper",
		BackLeftLower:   "back_left_lower",
		BackRightUpper:  "back_right_upper",
		BackRightLower:  "back_right_lower",
	}
}

// rig caches name lookups into arena indices once; per-frame pose code is
// index-based only. Absent bones are held as -1.
type rig struct {
	sk *skeleton.Skeleton

	root, spineMid, spineNeck, head    int
	trunk                              []int
	earLeft, earRight                  int
	tail                               []int
	flUpper, flLower, frUpper, frLower int
	blUpper, blLower, brUpper, brLower int
}

func newRig(sk *skeleton.Skeleton, names BoneMap) *rig {
	look := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := sk.Index(name); ok {
			return i
		}
		return -1
	}
	lookAll := func(ns []string) []int {
		out := make([]int, len(ns))
		for i, n := range ns {
			out[i] = look(n)
		}
		return out
	}

	return &rig{
		sk:        sk,
		root:      look(names.Root),
		spineMid:  look(names.SpineMid),
		spineNeck: look(names.SpineNeck),
		head:      look(names.Head),
		trunk:     lookAll(names.Trunk),
		earLeft:   look(names.EarLeft),
		earRight:  look(names.EarRight),
		tail:      lookAll(names.Tail),
		flUpper:   look(names.FrontLeftUpper),
		flLower:   look(names.FrontLeftLower),
		frUpper:   look(names.FrontRightUpper),
		frLower:   look(names.FrontRightLower),
		blUpper:   look(names.BackLeftUpper),
		blLower:   look(names.BackLeftLower),
		brUpper:   look(names.BackRightUpper),
		brLower:   look(names.BackRightLower),
	}
}

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

func (r *rig) setRot(bone, axis int, v float64) {
	if bone < 0 {
		return
	}
	r.sk.Bones[bone].Rot[axis] = v
}

func (r *rig) addRot(bone, axis int, v float64) {
	if bone < 0 {
		return
	}
	r.sk.Bones[bone].Rot[axis] += v
}

func (r *rig) setPos(bone int, p mathutil.Vec3) {
	if bone < 0 {
		return
	}
	r.sk.Bones[bone].Pos = p
}

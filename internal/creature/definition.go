package creature

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lowpoly-creature/internal/behavior"
	"lowpoly-creature/internal/fur"
	"lowpoly-creature/internal/parts"
	"lowpoly-creature/internal/skeleton"
)

// Definition is the declarative build input for one creature: the ordered
// bone table plus one configuration record per body part. Definitions load
// from YAML; the built-in elephant is the default.
type Definition struct {
	Name  string              `yaml:"name"`
	Bones []skeleton.BoneSpec `yaml:"bones"`

	Torso parts.TorsoOptions  `yaml:"torso"`
	Head  parts.HeadOptions   `yaml:"head"`
	Neck  *parts.NeckOptions  `yaml:"neck"`
	Trunk *parts.TailOptions  `yaml:"trunk"`
	Tusks []parts.TailOptions `yaml:"tusks"`
	Ears  []parts.LimbOptions `yaml:"ears"`
	Tail  *parts.TailOptions  `yaml:"tail"`
	Legs  []parts.LimbOptions `yaml:"legs"`

	BoneMap behavior.BoneMap `yaml:"boneMap"`
	Fur     *fur.Options     `yaml:"fur"`
}

// LoadDefinition reads a creature definition from a YAML file.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("creature: read %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("creature: parse %s: %w", path, err)
	}
	if len(def.Bones) == 0 {
		return Definition{}, fmt.Errorf("creature: %s defines no bones", path)
	}
	return def, nil
}

// Elephant returns the built-in elephant definition.
func Elephant() Definition {
	bones := []skeleton.BoneSpec{
		{Name: "spine_base", Parent: skeleton.RootParent, Offset: [3]float64{0, 2.1, 0}},
		{Name: "spine_mid", Parent: "spine_base", Offset: [3]float64{0, -0.1, 1.1}},
		{Name: "spine_neck", Parent: "spine_mid", Offset: [3]float64{0, 0.3, 0.9}},
		{Name: "head", Parent: "spine_neck", Offset: [3]float64{0, -0.1, 0.7}},
		{Name: "trunk_base", Parent: "head", Offset: [3]float64{0, -0.3, 0.6}},
		{Name: "trunk_mid1", Parent: "trunk_base", Offset: [3]float64{0, -0.5, 0.1}},
		{Name: "trunk_mid2", Parent: "trunk_mid1", Offset: [3]float64{0, -0.5, 0.0}},
		{Name: "trunk_tip", Parent: "trunk_mid2", Offset: [3]float64{0, -0.4, 0.0}},
		{Name: "tusk_left", Parent: "head", Offset: [3]float64{0.3, -0.3, 0.4}},
		{Name: "tusk_left_tip", Parent: "tusk_left", Offset: [3]float64{0.1, 0.3, 0.5}},
		{Name: "tusk_right", Parent: "head", Offset: [3]float64{-0.3, -0.3, 0.4}},
		{Name: "tusk_right_tip", Parent: "tusk_right", Offset: [3]float64{-0.1, 0.3, 0.5}},
		{Name: "ear_left", Parent: "head", Offset: [3]float64{0.4, 0.1, -0.2}},
		{Name: "ear_left_tip", Parent: "ear_left", Offset: [3]float64{0.6, -0.6, -0.1}},
		{Name: "ear_right", Parent: "head", Offset: [3]float64{-0.4, 0.1, -0.2}},
		{Name: "ear_right_tip", Parent: "ear_right", Offset: [3]float64{-0.6, -0.6, -0.1}},
		{Name: "tail_base", Parent: "spine_base", Offset: [3]float64{0, 0.3, -0.3}},
		{Name: "tail_mid", Parent: "tail_base", Offset: [3]float64{0, -0.6, -0.2}},
		{Name: "tail_tip", Parent: "tail_mid", Offset: [3]float64{0, -0.6, 0.0}},
		{Name: "front_left_collarbone", Parent: "spine_mid", Offset: [3]float64{0.4, -0.3, 0.3}},
		{Name: "front_right_collarbone", Parent: "spine_mid", Offset: [3]float64{-0.4, -0.3, 0.3}},
		{Name: "back_left_pelvis", Parent: "spine_base", Offset: [3]float64{0.45, -0.2, 0.1}},
		{Name: "back_right_pelvis", Parent: "spine_base", Offset: [3]float64{-0.45, -0.2, 0.1}},
		{Name: "front_left_upper", Parent: "front_left_collarbone", Offset: [3]float64{0, -0.8, 0}},
		{Name: "front_left_lower", Parent: "front_left_upper", Offset: [3]float64{0, -0.8, 0.05}},
		{Name: "front_left_foot", Parent: "front_left_lower", Offset: [3]float64{0, -0.4, 0.05}},
		{Name: "front_right_upper", Parent: "front_right_collarbone", Offset: [3]float64{0, -0.8, 0}},
		{Name: "front_right_lower", Parent: "front_right_upper", Offset: [3]float64{0, -0.8, 0.05}},
		{Name: "front_right_foot", Parent: "front_right_lower", Offset: [3]float64{0, -0.4, 0.05}},
		{Name: "back_left_upper", Parent: "back_left_pelvis", Offset: [3]float64{0, -0.8, 0.05}},
		{Name: "back_left_lower", Parent: "back_left_upper", Offset: [3]float64{0, -0.8, -0.1}},
		{Name: "back_left_foot", Parent: "back_left_lower", Offset: [3]float64{0, -0.4, 0.1}},
		{Name: "back_right_upper", Parent: "back_right_pelvis", Offset: [3]float64{0, -0.8, 0.05}},
		{Name: "back_right_lower", Parent: "back_right_upper", Offset: [3]float64{0, -0.8, -0.1}},
		{Name: "back_right_foot", Parent: "back_right_lower", Offset: [3]float64{0, -0.4, 0.1}},
	}

	legRadiiFront := []float64{0.5, 0.45, 0.4, 0.38, 0.43}
	legRadiiBack := []float64{0.55, 0.5, 0.42, 0.38, 0.44}

	return Definition{
		Name:  "elephant",
		Bones: bones,
		Torso: parts.TorsoOptions{
			Bones:        []string{"spine_base", "spine_mid", "spine_neck", "head"},
			Radii:        []float64{1.15, 1.35, 1.15, 0.9},
			Sides:        10,
			PelvisPair:   [2]string{"back_left_pelvis", "back_right_pelvis"},
			CollarPair:   [2]string{"front_left_collarbone", "front_right_collarbone"},
			RearApexBone: "tail_base",
			FrontApex:    "spine_neck",
		},
		Head: parts.HeadOptions{
			NeckBone: "spine_neck",
			HeadBone: "head",
			Radius:   0.95,
			Detail:   0,
		},
		Trunk: &parts.TailOptions{
			Bones:      []string{"trunk_base", "trunk_mid1", "trunk_mid2", "trunk_tip"},
			Root:       "spine_base",
			Sides:      6,
			BaseRadius: 0.35,
			TipRadius:  0.1,
			TipCap:     true,
		},
		Tusks: []parts.TailOptions{
			{
				Bones:      []string{"tusk_left", "tusk_left_tip"},
				Root:       "spine_base",
				Sides:      5,
				BaseRadius: 0.12,
				TipRadius:  0.02,
				TipCap:     true,
			},
			{
				Bones:      []string{"tusk_right", "tusk_right_tip"},
				Root:       "spine_base",
				Sides:      5,
				BaseRadius: 0.12,
				TipRadius:  0.02,
				TipCap:     true,
			},
		},
		Ears: []parts.LimbOptions{
			{Bones: []string{"ear_left", "ear_left_tip"}, Radii: []float64{0.65, 0.35}, Sides: 4},
			{Bones: []string{"ear_right", "ear_right_tip"}, Radii: []float64{0.65, 0.35}, Sides: 4},
		},
		Tail: &parts.TailOptions{
			Bones:      []string{"tail_base", "tail_mid", "tail_tip"},
			Root:       "spine_base",
			Sides:      5,
			BaseRadius: 0.15,
			TipRadius:  0.05,
			TipCap:     true,
		},
		Legs: []parts.LimbOptions{
			{Bones: []string{"front_left_collarbone", "front_left_upper", "front_left_lower", "front_left_foot"}, Radii: legRadiiFront, Sides: 6},
			{Bones: []string{"front_right_collarbone", "front_right_upper", "front_right_lower", "front_right_foot"}, Radii: legRadiiFront, Sides: 6},
			{Bones: []string{"back_left_pelvis", "back_left_upper", "back_left_lower", "back_left_foot"}, Radii: legRadiiBack, Sides: 6},
			{Bones: []string{"back_right_pelvis", "back_right_upper", "back_right_lower", "back_right_foot"}, Radii: legRadiiBack, Sides: 6},
		},
		BoneMap: behavior.DefaultBoneMap(),
	}
}

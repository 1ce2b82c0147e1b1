package prefabs

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActorSpec is the YAML descriptor for one puppet kind.
type ActorSpec struct {
	Name         string           `yaml:"name"`
	Sheet        string           `yaml:"sheet"`
	FrameWidth   int              `yaml:"frame_width"`
	FrameHeight  int              `yaml:"frame_height"`
	NeckAnchorY  int              `yaml:"neck_anchor_y"`
	WalkPeriodMs float64          `yaml:"walk_period_ms"`
	RunPeriodMs  float64          `yaml:"run_period_ms"`
	Deduplicate  bool             `yaml:"deduplicate"`
	Behavior     string           `yaml:"behavior"`
	Animations   map[string][]int `yaml:"animations"`
	Shading      ShadingSpec      `yaml:"shading"`
}

// ShadingSpec holds the shape and shading coefficients of the
// cylindrical projection.
type ShadingSpec struct {
	BobAmplitude       float64 `yaml:"bob_amplitude"`
	WidthScale         float64 `yaml:"width_scale"`
	SlideScale         float64 `yaml:"slide_scale"`
	HeadRadiusScale    float64 `yaml:"head_radius_scale"`
	BodyRadiusScale    float64 `yaml:"body_radius_scale"`
	HeadSinkIdle       float64 `yaml:"head_sink_idle"`
	HeadSinkProfile    float64 `yaml:"head_sink_profile"`
	BottomTrimIdle     float64 `yaml:"bottom_trim_idle"`
	BottomTrimProfile  float64 `yaml:"bottom_trim_profile"`
	SuppressProfileBob bool    `yaml:"suppress_profile_bob"`
}

// LoadActorSpec loads and parses one actor YAML by filename.
func LoadActorSpec(filename string) (*ActorSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	var spec ActorSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(filename, ".yaml")
	}
	return &spec, nil
}

// ActorFiles lists the embedded actor YAML filenames, sorted.
func ActorFiles() ([]string, error) {
	entries, err := PrefabsFS.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

package model

// Wall framing strategies. Only platform framing has an implementing
// rule; balloon and advanced are reserved extension points.
const (
	FramingPlatform = "platform"
	FramingBalloon  = "balloon"
	FramingAdvanced = "advanced"
)

// Corner treatments. Only butt corners ship today; three_stud and
// california are reserved extension points.
const (
	CornerButt       = "butt"
	CornerThreeStud  = "three_stud"
	CornerCalifornia = "california"
)

// FrameParams are the user-adjustable knobs for frame generation.
type FrameParams struct {
	StudSpacing    float64 `json:"stud_spacing" yaml:"stud_spacing"`         // center-to-center (meters)
	WallHeight     float64 `json:"wall_height" yaml:"wall_height"`           // meters
	StudWidth      float64 `json:"stud_width" yaml:"stud_width"`             // cross-section narrow face (meters)
	StudDepth      float64 `json:"stud_depth" yaml:"stud_depth"`             // cross-section wide face (meters)
	Noggings       bool    `json:"noggings" yaml:"noggings"`                 // generate mid-height noggings
	DoubleTopPlate bool    `json:"double_top_plate" yaml:"double_top_plate"` // double top plate (common in N. America)
}

// DefaultFrameParams returns the standard 600mm-spacing, 45x95 section
// parameter set.
func DefaultFrameParams() FrameParams {
	return FrameParams{
		StudSpacing:    0.6,
		WallHeight:     2.4,
		StudWidth:      0.045,
		StudDepth:      0.095,
		Noggings:       true,
		DoubleTopPlate: false,
	}
}

// GenerationConfig controls which rules and strategies are applied.
type GenerationConfig struct {
	WallFraming     string   `json:"wall_framing" yaml:"wall_framing"`
	CornerTreatment string   `json:"corner_treatment" yaml:"corner_treatment"`
	EnabledRules    []string `json:"enabled_rules,omitempty" yaml:"enabled_rules,omitempty"`   // empty = all registered rules
	DisabledRules   []string `json:"disabled_rules,omitempty" yaml:"disabled_rules,omitempty"` // always excluded, even if enabled
}

// DefaultGenerationConfig returns the platform/butt configuration with
// every registered rule as a candidate.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		WallFraming:     FramingPlatform,
		CornerTreatment: CornerButt,
	}
}

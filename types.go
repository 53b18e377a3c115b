package tonegate

import (
	"fmt"
	"math"
)

// Param is a single plugin parameter write recorded in a tone log.
// Index references the plugin's fixed parameter numbering; this tool names
// indices (see internal/schema) but does not validate them beyond range
// membership.
type Param struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Group string  `json:"group"`
}

// ParsedLog is the structured content of one tone log file.
// Immutable once built by the parser. Missing sections come back empty,
// never as an error.
type ParsedLog struct {
	Filename    string   `json:"filename"`
	Reasoning   string   `json:"reasoning"`
	Warnings    []string `json:"warnings,omitempty"`
	ModelParams []Param  `json:"model_params,omitempty"`
	AddedParams []Param  `json:"added_params,omitempty"`
}

// ModelValues flattens the model params into an index-value map.
// Later writes win when an index appears more than once.
func (l *ParsedLog) ModelValues() map[int]float64 {
	values := make(map[int]float64, len(l.ModelParams))
	for _, p := range l.ModelParams {
		values[p.Index] = p.Value
	}

	return values
}

// PromptSpec records what the style prompt for a preset allows or demands.
type PromptSpec struct {
	Prompt        string `yaml:"prompt"`
	AllowDelay    bool   `yaml:"allow_delay"`
	AllowReverb   bool   `yaml:"allow_reverb"`
	RequireDelay  bool   `yaml:"require_delay"`
	RequireChorus bool   `yaml:"require_chorus"`
}

// AmpKind is the classified amplifier model behind the amp selector value.
type AmpKind int

const (
	AmpUnset AmpKind = iota
	AmpClean
	AmpRust
	AmpHot
	AmpCustom
)

func (k AmpKind) String() string {
	switch k {
	case AmpUnset:
		return "Unset"
	case AmpClean:
		return "Clean"
	case AmpRust:
		return "Rust"
	case AmpHot:
		return "Hot"
	case AmpCustom:
		return "Custom"
	}

	return "unknown"
}

/*
Amp Selector Classification

The amp selector (index 29) is a continuous 0-1 control that snaps to one of
three models in the plugin UI. Values are bucketed with a ±0.2 tolerance:

| Value     | Model  |
|-----------|--------|
| 0.0 ± 0.2 | Clean  |
| 0.5 ± 0.2 | Rust   |
| 1.0 ± 0.2 | Hot    |
| otherwise | Custom |

The comparison is strict: a value exactly 0.2 away from an anchor does not
snap. Custom keeps the raw value so reports can show what the model actually
wrote.
*/

// AmpTolerance is the half-width of each amp classification bucket.
const AmpTolerance = 0.2

// AmpClass is the classification of a log's amp selector value.
type AmpClass struct {
	Kind     AmpKind
	Value    float64
	HasValue bool
}

// ClassifyAmp buckets an amp selector value into a named model.
// present is false when the log never touched the selector.
func ClassifyAmp(value float64, present bool) AmpClass {
	if !present {
		return AmpClass{Kind: AmpUnset}
	}

	cls := AmpClass{Value: value, HasValue: true}

	switch {
	case math.Abs(value-0.0) < AmpTolerance:
		cls.Kind = AmpClean
	case math.Abs(value-0.5) < AmpTolerance:
		cls.Kind = AmpRust
	case math.Abs(value-1.0) < AmpTolerance:
		cls.Kind = AmpHot
	default:
		cls.Kind = AmpCustom
	}

	return cls
}

// Label returns the display name, carrying the raw value for Custom.
func (c AmpClass) Label() string {
	if c.Kind == AmpCustom {
		return fmt.Sprintf("Custom(%.3f)", c.Value)
	}

	return c.Kind.String()
}

// ActiveThreshold is the value at or above which a toggle parameter counts
// as "module enabled".
const ActiveThreshold = 0.5

// IsOn reports whether an activation flag value enables its module.
// A missing value is off.
func IsOn(value float64, present bool) bool {
	return present && value >= ActiveThreshold
}

package report

import (
	"github.com/farcloser/tonegate"
	"github.com/farcloser/tonegate/internal/schema"
)

// keyParam is one entry of the key-parameter display tables: the handful of
// controls worth surfacing per file before the full grouped dump.
type keyParam struct {
	index int
	name  string
}

//nolint:gochecknoglobals // display tables, effectively const
var (
	keyParamsHead = []keyParam{
		{schema.AmpType, "Amp Type"},
		{schema.NoiseGate, "Gate Amount"},
	}

	cleanKeyParams = []keyParam{
		{30, "CLN Gain"},
		{31, "CLN Bright"},
		{32, "CLN Bass"},
		{33, "CLN Mid"},
		{34, "CLN Treble"},
		{35, "CLN Level"},
		{schema.CleanEQActive, "CLN EQ Active"},
	}

	rustKeyParams = []keyParam{
		{36, "RUST Gain"},
		{37, "RUST Low"},
		{38, "RUST Mid"},
		{39, "RUST High"},
		{40, "RUST Master"},
		{41, "RUST Presence"},
		{42, "RUST Depth"},
		{43, "RUST Level"},
		{schema.RustEQActive, "RUST EQ Active"},
	}

	hotKeyParams = []keyParam{
		{44, "HOT Gain"},
		{45, "HOT Low"},
		{46, "HOT Mid"},
		{47, "HOT High"},
		{48, "HOT Master"},
		{49, "HOT Presence"},
		{50, "HOT Depth"},
		{51, "HOT Level"},
		{schema.HotEQActive, "HOT EQ Active"},
	}

	keyParamsTail = []keyParam{
		{schema.EQSectionActive, "EQ Section Active"},
		{schema.OverdriveActive, "OD Active"},
		{schema.DistortionActive, "DRT Active"},
		{schema.ChorusActive, "CHR Active"},
		{schema.DelayActive, "DLY Active"},
		{schema.DelayMix, "DLY Dry/Wet"},
		{schema.DelayFeedback, "DLY Feedback"},
		{schema.ReverbActive, "REV Active"},
		{schema.ReverbMix, "REV Dry/Wet"},
		{schema.CabSectionActive, "Cab Section Active"},
		{schema.Cab1Active, "Cab 1 Active"},
		{schema.Cab2Active, "Cab 2 Active"},
	}
)

// keyParams assembles the display table for a classified amp model. The
// amp-specific block is empty for Custom and Unset.
func keyParams(kind tonegate.AmpKind) []keyParam {
	keys := make([]keyParam, 0, len(keyParamsHead)+len(hotKeyParams)+len(keyParamsTail))
	keys = append(keys, keyParamsHead...)

	switch kind {
	case tonegate.AmpClean:
		keys = append(keys, cleanKeyParams...)
	case tonegate.AmpRust:
		keys = append(keys, rustKeyParams...)
	case tonegate.AmpHot:
		keys = append(keys, hotKeyParams...)
	case tonegate.AmpUnset, tonegate.AmpCustom:
	}

	return append(keys, keyParamsTail...)
}

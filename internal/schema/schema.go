// Package schema names the amp-sim plugin's fixed parameter numbering.
// The indices are owned by the plugin build; this package only gives them
// names so rules and reports stay readable.
package schema

// Global controls.
const (
	InputGain  = 0
	OutputGain = 1
	NoiseGate  = 2
)

// AmpType is the amp model selector.
const AmpType = 29

// Pedal board.
const (
	WowSwitch = 3
	WowActive = 4
	WowPitch  = 6

	OctaverActive = 8
	OctaverOct1   = 9
	OctaverOct2   = 10
	OctaverDirect = 11

	OverdriveActive = 13
	OverdriveDrive  = 14
	OverdriveTone   = 15
	OverdriveLevel  = 16

	DistortionActive = 17
	DistortionDist   = 18
	DistortionFilter = 19
	DistortionVol    = 20

	PhaserActive = 21
	PhaserRate   = 22

	ChorusActive = 23
	ChorusRate   = 24
	ChorusDepth  = 25
	ChorusMix    = 27
)

// Amp knob ranges, per model.
const (
	CleanAmpFirst = 30
	CleanAmpLast  = 35
	RustAmpFirst  = 36
	RustAmpLast   = 43
	HotAmpFirst   = 44
	HotAmpLast    = 51
)

// Graphic EQ, per model.
const (
	EQSectionActive = 52

	CleanEQActive = 53
	CleanEQFirst  = 53
	CleanEQLast   = 62

	RustEQActive = 63
	RustEQFirst  = 63
	RustEQLast   = 72

	HotEQActive = 73
	HotEQFirst  = 73
	HotEQLast   = 82
)

// Cab section. Index 100 is FX Section Active and deliberately excluded
// from the cab detail range.
const (
	CabSectionActive = 83
	CabType          = 84
	Cab1Active       = 86
	Cab2Active       = 93
	CabFirst         = 84
	CabLast          = 99
)

// Delay.
const (
	DelayActive   = 101
	DelayFirst    = 102
	DelayLast     = 111
	DelayMix      = 105
	DelayFeedback = 106
	DelayTime     = 108
)

// Reverb.
const (
	ReverbActive  = 112
	ReverbMode    = 113
	ReverbFirst   = 113
	ReverbLast    = 117
	ReverbMix     = 114
	ReverbTime    = 115
	ReverbLowCut  = 116
	ReverbHighCut = 117
)

package tonegate

import (
	"regexp"
	"strings"

	"github.com/farcloser/tonegate/internal/schema"
)

/*
Usage:

	parsed, err := tonelog.Parse(path)
	spec := prompts.Lookup(prompts.Builtin(), parsed.Filename)
	for _, flag := range tonegate.Audit(spec, parsed) {
	    fmt.Println(flag)
	}

Flags are advisory. There are no severity levels and no recovery: a flag is
a suspected inconsistency between active-module toggles, touched parameter
indices, and the free-text reasoning.
*/

// evidence is the digested view of one parsed log that rules evaluate
// against.
type evidence struct {
	spec      PromptSpec
	amp       AmpClass
	values    map[int]float64
	reasoning string // lowercased
}

func newEvidence(spec PromptSpec, log *ParsedLog) *evidence {
	values := log.ModelValues()
	ampVal, ok := values[schema.AmpType]

	return &evidence{
		spec:      spec,
		amp:       ClassifyAmp(ampVal, ok),
		values:    values,
		reasoning: strings.ToLower(log.Reasoning),
	}
}

func (e *evidence) has(idx int) bool {
	_, ok := e.values[idx]

	return ok
}

func (e *evidence) on(idx int) bool {
	v, ok := e.values[idx]

	return IsOn(v, ok)
}

// anyIn reports whether any touched model param index falls in [lo, hi].
func (e *evidence) anyIn(lo, hi int) bool {
	for idx := range e.values {
		if lo <= idx && idx <= hi {
			return true
		}
	}

	return false
}

func (e *evidence) mentions(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(e.reasoning, s) {
			return true
		}
	}

	return false
}

// hzPattern flags explicit frequency units in reasoning text. The system
// prompt asks the model to avoid them.
var hzPattern = regexp.MustCompile(`(?i)\b\d+(\.\d+)?\s*(hz|khz)\b`)

// rule is one advisory consistency check. When applies returns true for a
// log's evidence, message is emitted verbatim. Messages double as stable
// identifiers for downstream grepping, so they never change casually.
type rule struct {
	applies func(*evidence) bool
	message string
}

//nolint:gochecknoglobals // the rule table is configuration data, effectively const
var rules = []rule{
	// Cross-amp controls: knobs and EQ bands belonging to the models that
	// are not selected must stay untouched.
	{
		applies: func(e *evidence) bool {
			return e.amp.Kind == AmpClean && e.anyIn(schema.RustAmpFirst, schema.HotAmpLast)
		},
		message: "amp_type=Clean but Rust/Hot amp controls touched (36-51)",
	},
	{
		applies: func(e *evidence) bool {
			return e.amp.Kind == AmpClean && e.anyIn(schema.RustEQFirst, schema.HotEQLast)
		},
		message: "amp_type=Clean but Rust/Hot EQ controls touched (63-82)",
	},
	{
		applies: func(e *evidence) bool {
			return e.amp.Kind == AmpRust &&
				(e.anyIn(schema.CleanAmpFirst, schema.CleanAmpLast) || e.anyIn(schema.HotAmpFirst, schema.HotAmpLast))
		},
		message: "amp_type=Rust but Clean/Hot amp controls touched (30-35 or 44-51)",
	},
	{
		applies: func(e *evidence) bool {
			return e.amp.Kind == AmpRust &&
				(e.anyIn(schema.CleanEQFirst, schema.CleanEQLast) || e.anyIn(schema.HotEQFirst, schema.HotEQLast))
		},
		message: "amp_type=Rust but Clean/Hot EQ controls touched (53-62 or 73-82)",
	},
	{
		applies: func(e *evidence) bool {
			return e.amp.Kind == AmpHot && e.anyIn(schema.CleanAmpFirst, schema.RustAmpLast)
		},
		message: "amp_type=Hot but Clean/Rust amp controls touched (30-43)",
	},
	{
		applies: func(e *evidence) bool {
			return e.amp.Kind == AmpHot && e.anyIn(schema.CleanEQFirst, schema.RustEQLast)
		},
		message: "amp_type=Hot but Clean/Rust EQ controls touched (53-72)",
	},

	// Module toggle consistency: detail params require the activation flag.
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.OverdriveDrive, schema.OverdriveLevel) && !e.on(schema.OverdriveActive)
		},
		message: "OD params set (14-16) but OD Active (13) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.DistortionDist, schema.DistortionVol) && !e.on(schema.DistortionActive)
		},
		message: "DRT params set (18-20) but DRT Active (17) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.ChorusRate, schema.ChorusMix) && !e.on(schema.ChorusActive)
		},
		message: "Chorus params set (24-27) but CHR Active (23) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.OctaverOct1, schema.OctaverDirect) && !e.on(schema.OctaverActive)
		},
		message: "Octaver params set (9-11) but OCT Active (8) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.has(schema.PhaserRate) && !e.on(schema.PhaserActive)
		},
		message: "Phaser rate set (22) but PHZ Active (21) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.has(schema.WowPitch) && !e.on(schema.WowActive)
		},
		message: "WOW pitch set (6) but WOW Active (4) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.DelayFirst, schema.DelayLast) && !e.on(schema.DelayActive)
		},
		message: "Delay params set (>=102) but DLY Active (101) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.ReverbFirst, schema.ReverbLast) && !e.on(schema.ReverbActive)
		},
		message: "Reverb params set (>=113) but REV Active (112) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return e.anyIn(schema.CabFirst, schema.CabLast) && !e.on(schema.CabSectionActive)
		},
		message: "Cab params set (84-99) but Cab Section Active (83) missing/off",
	},
	{
		applies: func(e *evidence) bool {
			return (e.has(schema.Cab1Active) || e.has(schema.Cab2Active)) && !e.on(schema.CabSectionActive)
		},
		message: "Cab active toggles set (86/93) but Cab Section Active (83) missing/off",
	},

	// Prompt expectations: observed toggles must match the style spec.
	{
		applies: func(e *evidence) bool {
			return e.on(schema.DelayActive) && !e.spec.AllowDelay
		},
		message: "Delay is ON (101) but prompt says no delay",
	},
	{
		applies: func(e *evidence) bool {
			return !e.on(schema.DelayActive) && e.spec.RequireDelay
		},
		message: "Delay is OFF/missing (101) but prompt requires delay",
	},
	{
		applies: func(e *evidence) bool {
			return e.on(schema.ReverbActive) && !e.spec.AllowReverb
		},
		message: "Reverb is ON (112) but prompt says no reverb",
	},
	{
		applies: func(e *evidence) bool {
			return !e.on(schema.ChorusActive) && e.spec.RequireChorus
		},
		message: "Chorus is OFF/missing (23) but prompt requires chorus",
	},

	// Reasoning red flags (LLM output hygiene).
	{
		applies: func(e *evidence) bool {
			return e.mentions("compressor")
		},
		message: "Reasoning mentions compressor (plugin has no dedicated compressor)",
	},
	{
		applies: func(e *evidence) bool {
			return hzPattern.MatchString(e.reasoning)
		},
		message: "Reasoning mentions Hz/kHz (prompt asked to avoid)",
	},

	// Reasoning vs params contradictions (light substring heuristics).
	{
		applies: func(e *evidence) bool {
			return e.mentions("delay is turned off", "delay turned off") && e.on(schema.DelayActive)
		},
		message: `Reasoning says "delay off" but DLY Active (101) is ON`,
	},
	{
		applies: func(e *evidence) bool {
			return e.mentions("no reverb") && e.on(schema.ReverbActive)
		},
		message: `Reasoning says "no reverb" but REV Active (112) is ON`,
	},

	// Dry/wet sanity: an enabled delay or reverb without its mix control set
	// is inaudible or stuck at the plugin default.
	{
		applies: func(e *evidence) bool {
			return e.on(schema.DelayActive) && !e.has(schema.DelayMix)
		},
		message: "Delay is ON (101) but DLY Dry/Wet (105) not set by model",
	},
	{
		applies: func(e *evidence) bool {
			return e.on(schema.ReverbActive) && !e.has(schema.ReverbMix)
		},
		message: "Reverb is ON (112) but REV Dry/Wet (114) not set by model",
	},
}

// Audit runs every consistency rule against a parsed log and returns the
// advisory flags in rule order. Output is deterministic for identical
// input.
func Audit(spec PromptSpec, log *ParsedLog) []string {
	ev := newEvidence(spec, log)

	var flags []string

	for _, r := range rules {
		if r.applies(ev) {
			flags = append(flags, r.message)
		}
	}

	return flags
}

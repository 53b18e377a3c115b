// Package prompts holds the style-expectation catalog: what each known
// preset's prompt allows or demands in terms of delay, reverb and chorus.
package prompts

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/tonegate"
)

// MissingPrompt is the placeholder for presets absent from the catalog.
const MissingPrompt = "(prompt not recorded)"

var (
	stemPrefixPattern = regexp.MustCompile(`^\d+_`)
	stemSuffixPattern = regexp.MustCompile(`(?i)\.log$`)
)

// Stem normalizes a log filename to its catalog key: a leading run-number
// prefix and the .log suffix are stripped.
func Stem(filename string) string {
	stem := stemPrefixPattern.ReplaceAllString(filename, "")

	return stemSuffixPattern.ReplaceAllString(stem, "")
}

// Lookup returns the spec for a log filename, or a placeholder spec with
// all expectations off when the preset is unknown.
func Lookup(catalog map[string]tonegate.PromptSpec, filename string) tonegate.PromptSpec {
	if spec, ok := catalog[Stem(filename)]; ok {
		return spec
	}

	return tonegate.PromptSpec{Prompt: MissingPrompt}
}

// Load reads a YAML catalog override: a mapping of preset stem to spec.
func Load(path string) (map[string]tonegate.PromptSpec, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified catalog files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	catalog := map[string]tonegate.PromptSpec{}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	return catalog, nil
}

// Builtin returns the hand-authored catalog for the reference preset runs.
func Builtin() map[string]tonegate.PromptSpec {
	return map[string]tonegate.PromptSpec{
		"metallica_black_1991": {
			Prompt: "James Hetfield rhythm tone - Metallica, Black Album (1991). Tight but not overly scooped, " +
				"thick low mids, smooth top end, minimal fizz. No delay. Very subtle room reverb.",
			AllowReverb: true,
		},
		"metallica_mop_1986": {
			Prompt: "Metallica rhythm tone - Master of Puppets (1986). Aggressive upper mids, crunchy, " +
				"less sub bass, slightly rawer top. No delay. Almost no reverb.",
			AllowReverb: true,
		},
		"slayer_reign_1986": {
			Prompt: "Slayer rhythm tone - Reign in Blood (1986). Fast tight palm-mutes, biting upper mids, " +
				"gritty saturation, controlled low end. No delay. No reverb.",
		},
		"pantera_cfh_1990": {
			Prompt: "Pantera rhythm tone - Cowboys From Hell (1990). Bright aggressive pick attack, tight low end, " +
				"pronounced presence, not fizzy. No delay. Minimal reverb.",
			AllowReverb: true,
		},
		"sepultura_roots_1996": {
			Prompt: "Sepultura rhythm tone - Roots (1996). Mid-forward chunky groove, thick but controlled, " +
				"less polished, controlled highs. No delay. Very subtle room reverb.",
			AllowReverb: true,
		},
		"gojira_fm2s_2005": {
			Prompt: "Gojira rhythm tone - From Mars to Sirius (2005). Very tight low end, pronounced pick attack, " +
				"modern but organic, controlled fizz. No delay. Subtle short room reverb.",
			AllowReverb: true,
		},
		"meshuggah_obzen_2008": {
			Prompt: "Meshuggah rhythm tone - obZen (2008) 8-string. Extremely tight low end, focused low mids, " +
				"crisp attack, minimal hiss. No delay. No reverb.",
		},
		"lambofgod_ashes_2004": {
			Prompt: "Lamb of God rhythm tone - Ashes of the Wake (2004). Punchy midrange, tight palm-mutes, " +
				"aggressive but not fizzy. No delay. Tiny room reverb.",
			AllowReverb: true,
		},
		"killswitch_eoh_2004": {
			Prompt: "Killswitch Engage rhythm tone - The End of Heartache (2004). Polished modern metalcore: " +
				"tight, slightly scooped but present mids, bright but smooth. No delay. Subtle reverb.",
			AllowReverb: true,
		},
		"inflames_clayman_2000": {
			Prompt: "In Flames rhythm tone - Clayman (2000). Swedish melodeath bite, strong upper mids, " +
				"tight low end, controlled top end. No delay. Minimal reverb.",
			AllowReverb: true,
		},
		"trivium_shogun_2008": {
			Prompt: "Trivium rhythm tone - Shogun (2008). Tight and saturated, defined low mids, " +
				"clear pick attack, not harsh. No delay. Subtle room reverb.",
			AllowReverb: true,
		},
		"periphery_p2_2012": {
			Prompt: "Periphery rhythm tone - Periphery II (2012). Modern djent: very tight low end, crisp attack, " +
				"controlled fizz; slightly scooped but articulate. No delay. No reverb.",
		},
		"opeth_bwp_2001": {
			Prompt: "Opeth heavy rhythm tone - Blackwater Park (2001). Thick low mids, darker top end, " +
				"organic saturation, not ultra-tight modern. No delay. Small room reverb very low.",
			AllowReverb: true,
		},
		"maiden_sit_lead_1986": {
			Prompt: "Iron Maiden lead tone - Somewhere in Time era (1986). Singing sustain, bright but smooth, " +
				"stereo-ish space. Use delay (audible but not overpowering) and a touch of reverb.",
			AllowDelay:   true,
			AllowReverb:  true,
			RequireDelay: true,
		},
		"metallica_nem_clean_1991": {
			Prompt: "Metallica clean tone - Nothing Else Matters (1991). Sparkly but warm clean, light chorus, " +
				"subtle reverb, no delay.",
			AllowReverb:   true,
			RequireChorus: true,
		},
	}
}

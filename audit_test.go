package tonegate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func param(idx int, val float64) Param {
	return Param{Index: idx, Label: fmt.Sprintf("P%d", idx), Value: val, Group: "G"}
}

func logWith(reasoning string, params ...Param) *ParsedLog {
	return &ParsedLog{
		Filename:    "00_test.log",
		Reasoning:   reasoning,
		ModelParams: params,
	}
}

func TestAuditPromptExpectations(t *testing.T) {
	t.Run("delay on but disallowed", func(t *testing.T) {
		log := logWith("", param(101, 1.0), param(105, 0.25))

		flags := Audit(PromptSpec{}, log)

		assert.Equal(t, []string{"Delay is ON (101) but prompt says no delay"}, flags)
	})

	t.Run("delay on without dry/wet", func(t *testing.T) {
		log := logWith("", param(101, 1.0))

		flags := Audit(PromptSpec{AllowDelay: true}, log)

		assert.Equal(t, []string{"Delay is ON (101) but DLY Dry/Wet (105) not set by model"}, flags)
	})

	t.Run("delay required but missing", func(t *testing.T) {
		flags := Audit(PromptSpec{AllowDelay: true, RequireDelay: true}, logWith(""))

		assert.Equal(t, []string{"Delay is OFF/missing (101) but prompt requires delay"}, flags)
	})

	t.Run("reverb on but disallowed", func(t *testing.T) {
		log := logWith("", param(112, 0.8), param(114, 0.2))

		flags := Audit(PromptSpec{}, log)

		assert.Equal(t, []string{"Reverb is ON (112) but prompt says no reverb"}, flags)
	})

	t.Run("chorus required but off", func(t *testing.T) {
		flags := Audit(PromptSpec{RequireChorus: true}, logWith(""))

		assert.Equal(t, []string{"Chorus is OFF/missing (23) but prompt requires chorus"}, flags)
	})

	t.Run("satisfied expectations stay silent", func(t *testing.T) {
		log := logWith("", param(101, 1.0), param(105, 0.2), param(112, 1.0), param(114, 0.1), param(23, 1.0))

		flags := Audit(PromptSpec{AllowDelay: true, AllowReverb: true, RequireDelay: true, RequireChorus: true}, log)

		assert.Empty(t, flags)
	})
}

func TestAuditCrossAmpControls(t *testing.T) {
	t.Run("clean amp with rust controls", func(t *testing.T) {
		log := logWith("", param(29, 0.0), param(40, 0.5), param(70, 0.5))

		flags := Audit(PromptSpec{}, log)

		assert.Equal(t, []string{
			"amp_type=Clean but Rust/Hot amp controls touched (36-51)",
			"amp_type=Clean but Rust/Hot EQ controls touched (63-82)",
		}, flags)
	})

	t.Run("rust amp with clean controls", func(t *testing.T) {
		log := logWith("", param(29, 0.5), param(30, 0.5), param(55, 0.5))

		flags := Audit(PromptSpec{}, log)

		assert.Equal(t, []string{
			"amp_type=Rust but Clean/Hot amp controls touched (30-35 or 44-51)",
			"amp_type=Rust but Clean/Hot EQ controls touched (53-62 or 73-82)",
		}, flags)
	})

	t.Run("hot amp with clean controls", func(t *testing.T) {
		log := logWith("", param(29, 1.0), param(30, 0.2))

		flags := Audit(PromptSpec{}, log)

		assert.Equal(t, []string{"amp_type=Hot but Clean/Rust amp controls touched (30-43)"}, flags)
	})

	t.Run("custom amp skips cross-amp rules", func(t *testing.T) {
		log := logWith("", param(29, 0.3), param(40, 0.5), param(36, 0.9))

		assert.Empty(t, Audit(PromptSpec{}, log))
	})

	t.Run("own controls are fine", func(t *testing.T) {
		log := logWith("", param(29, 0.5), param(36, 0.6), param(43, 0.5), param(63, 1.0))

		assert.Empty(t, Audit(PromptSpec{}, log))
	})
}

func TestAuditModuleToggles(t *testing.T) {
	t.Run("overdrive params without activation", func(t *testing.T) {
		log := logWith("", param(14, 0.5))

		assert.Equal(t, []string{"OD params set (14-16) but OD Active (13) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("overdrive params with activation", func(t *testing.T) {
		log := logWith("", param(13, 1.0), param(14, 0.5))

		assert.Empty(t, Audit(PromptSpec{}, log))
	})

	t.Run("distortion params with activation off", func(t *testing.T) {
		log := logWith("", param(17, 0.0), param(18, 0.7))

		assert.Equal(t, []string{"DRT params set (18-20) but DRT Active (17) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("chorus params without activation", func(t *testing.T) {
		log := logWith("", param(25, 0.4))

		assert.Equal(t, []string{"Chorus params set (24-27) but CHR Active (23) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("octaver params without activation", func(t *testing.T) {
		log := logWith("", param(9, 0.5))

		assert.Equal(t, []string{"Octaver params set (9-11) but OCT Active (8) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("phaser rate without activation", func(t *testing.T) {
		log := logWith("", param(22, 0.5))

		assert.Equal(t, []string{"Phaser rate set (22) but PHZ Active (21) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("wow pitch without activation", func(t *testing.T) {
		log := logWith("", param(6, 0.5))

		assert.Equal(t, []string{"WOW pitch set (6) but WOW Active (4) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("wow pitch with activation", func(t *testing.T) {
		log := logWith("", param(4, 1.0), param(6, 0.5))

		assert.Empty(t, Audit(PromptSpec{}, log))
	})

	t.Run("delay params without activation", func(t *testing.T) {
		log := logWith("", param(105, 0.25))

		assert.Equal(t, []string{"Delay params set (>=102) but DLY Active (101) missing/off"}, Audit(PromptSpec{}, log))
	})

	t.Run("cab toggle without section active fires both rules", func(t *testing.T) {
		log := logWith("", param(86, 1.0))

		assert.Equal(t, []string{
			"Cab params set (84-99) but Cab Section Active (83) missing/off",
			"Cab active toggles set (86/93) but Cab Section Active (83) missing/off",
		}, Audit(PromptSpec{}, log))
	})
}

func TestAuditReasoningHygiene(t *testing.T) {
	t.Run("compressor mention", func(t *testing.T) {
		log := logWith("Added a Compressor before the amp for sustain.")

		assert.Equal(t,
			[]string{"Reasoning mentions compressor (plugin has no dedicated compressor)"},
			Audit(PromptSpec{}, log))
	})

	t.Run("frequency units", func(t *testing.T) {
		for _, reasoning := range []string{
			"Boosted around 800 Hz for punch.",
			"Cut 3.5kHz slightly.",
		} {
			flags := Audit(PromptSpec{}, logWith(reasoning))

			assert.Equal(t, []string{"Reasoning mentions Hz/kHz (prompt asked to avoid)"}, flags, reasoning)
		}
	})

	t.Run("hertz spelled out is not flagged", func(t *testing.T) {
		assert.Empty(t, Audit(PromptSpec{}, logWith("Boosted the low hertz region.")))
	})

	t.Run("delay contradiction", func(t *testing.T) {
		log := logWith("The delay is turned off for tightness.", param(101, 1.0), param(105, 0.2))

		flags := Audit(PromptSpec{AllowDelay: true}, log)

		assert.Equal(t, []string{`Reasoning says "delay off" but DLY Active (101) is ON`}, flags)
	})

	t.Run("reverb contradiction", func(t *testing.T) {
		log := logWith("No reverb to keep it dry.", param(112, 1.0), param(114, 0.1))

		flags := Audit(PromptSpec{AllowReverb: true}, log)

		assert.Equal(t, []string{`Reasoning says "no reverb" but REV Active (112) is ON`}, flags)
	})
}

func TestAuditDeterministicOrder(t *testing.T) {
	log := logWith("No reverb here.",
		param(29, 0.0), param(40, 0.5),
		param(101, 1.0),
		param(112, 1.0), param(114, 0.2),
	)

	want := []string{
		"amp_type=Clean but Rust/Hot amp controls touched (36-51)",
		"Delay is ON (101) but prompt says no delay",
		"Reverb is ON (112) but prompt says no reverb",
		`Reasoning says "no reverb" but REV Active (112) is ON`,
		"Delay is ON (101) but DLY Dry/Wet (105) not set by model",
	}

	for range 10 {
		assert.Equal(t, want, Audit(PromptSpec{}, log))
	}
}

// Package output provides shared result serialization for tonegate output.
package output

import (
	"fmt"

	"github.com/farcloser/tonegate"
	"github.com/farcloser/tonegate/internal/schema"
)

// ResultToMap converts one parsed log and its audit flags into the
// canonical map structure used for console, JSON and markdown output.
func ResultToMap(log *tonegate.ParsedLog, spec tonegate.PromptSpec, flags []string) map[string]any {
	values := log.ModelValues()
	ampVal, ok := values[schema.AmpType]
	amp := tonegate.ClassifyAmp(ampVal, ok)

	meta := map[string]any{
		"summary": fmt.Sprintf("%d warnings, %d derived flags (amp: %s)",
			len(log.Warnings), len(flags), amp.Label()),
		"prompt": spec.Prompt,
	}

	if len(log.Warnings) > 0 {
		meta["warnings"] = asAny(log.Warnings)
	}

	if len(flags) > 0 {
		meta["flags"] = asAny(flags)
	}

	meta["params"] = map[string]any{
		"model": len(log.ModelParams),
		"added": len(log.AddedParams),
	}

	if log.Reasoning != "" {
		meta["reasoning"] = log.Reasoning
	}

	return meta
}

func asAny(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}

	return out
}

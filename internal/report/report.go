// Package report aggregates per-file audit results into counts and renders
// the markdown tone engineering report. Rendering is deterministic: flags
// sorted by descending count then alphabetically, parameters by index
// within group, groups alphabetically.
package report

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/tonegate"
	"github.com/farcloser/tonegate/internal/prompts"
	"github.com/farcloser/tonegate/internal/schema"
)

// Build resolves each parsed log against the catalog and audits it.
func Build(catalog map[string]tonegate.PromptSpec, logs []*tonegate.ParsedLog) []FileReport {
	files := make([]FileReport, 0, len(logs))

	for _, log := range logs {
		spec := prompts.Lookup(catalog, log.Filename)
		files = append(files, FileReport{
			Log:   log,
			Spec:  spec,
			Flags: tonegate.Audit(spec, log),
		})
	}

	return files
}

// Render produces the aggregate markdown document.
func Render(dirLabel string, files []FileReport) string {
	lines := []string{
		fmt.Sprintf("# Tone Engineering Report (%s)", dirLabel),
		"",
		fmt.Sprintf("Tones: **%d**", len(files)),
		"",
	}

	if warnings := warningTally(files); len(warnings) > 0 {
		lines = append(lines, "## CLI QC Warning Summary")
		lines = appendCounts(lines, warnings)
		lines = append(lines, "")
	}

	if flags := flagTally(files); len(flags) > 0 {
		lines = append(lines, "## Derived QA Flag Summary")
		lines = appendCounts(lines, flags)
		lines = append(lines, "")
	}

	for i := range files {
		lines = appendFileSection(lines, &files[i])
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\n") + "\n"
}

// WriteFile writes the rendered document, creating parent directories.
func WriteFile(path, doc string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil { //nolint:gosec // report output is not sensitive
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

func appendCounts(lines []string, counts []counted) []string {
	for _, c := range counts {
		lines = append(lines, fmt.Sprintf("- `%d`x %s", c.Count, c.Text))
	}

	return lines
}

func appendFileSection(lines []string, file *FileReport) []string {
	log := file.Log
	values := log.ModelValues()
	ampVal, ok := values[schema.AmpType]
	amp := tonegate.ClassifyAmp(ampVal, ok)

	lines = append(lines,
		fmt.Sprintf("## %s", log.Filename),
		fmt.Sprintf("- Prompt: %s", file.Spec.Prompt),
	)

	ampLine := fmt.Sprintf("- Amp Type (%d): **%s**", schema.AmpType, amp.Label())
	if amp.HasValue {
		ampLine += fmt.Sprintf(" (`%.3f`)", amp.Value)
	}

	lines = append(lines, ampLine, "")

	if keys := renderKeyParams(amp.Kind, values); len(keys) > 0 {
		lines = append(lines, "### Key Params")
		lines = append(lines, keys...)

		if spread := renderSpread(log.ModelParams); spread != "" {
			lines = append(lines, spread)
		}

		lines = append(lines, "")
	}

	if len(file.Flags) > 0 {
		lines = append(lines, "### Derived QA Flags")
		for _, flag := range file.Flags {
			lines = append(lines, fmt.Sprintf("- %s", flag))
		}

		lines = append(lines, "")
	}

	lines = append(lines, "### Model Params")
	lines = appendGrouped(lines, log.ModelParams)
	lines = append(lines, "")

	if len(log.AddedParams) > 0 {
		lines = append(lines, "### Added By ReplaceActive")
		lines = appendGrouped(lines, log.AddedParams)
		lines = append(lines, "")
	}

	lines = append(lines, "### Reasoning")

	if log.Reasoning != "" {
		lines = append(lines, log.Reasoning)
	} else {
		lines = append(lines, "(missing)")
	}

	return append(lines, "")
}

func renderKeyParams(kind tonegate.AmpKind, values map[int]float64) []string {
	var out []string

	for _, key := range keyParams(kind) {
		v, ok := values[key.index]
		if !ok {
			continue
		}

		out = append(out, fmt.Sprintf("- %s (%d): `%.3f`", key.name, key.index, v))
	}

	return out
}

// renderSpread summarizes the touched model parameter values: count, mean
// and population standard deviation.
func renderSpread(params []tonegate.Param) string {
	if len(params) == 0 {
		return ""
	}

	values := make([]float64, 0, len(params))
	for _, p := range params {
		values = append(values, p.Value)
	}

	return fmt.Sprintf("- Touched: `%d` params (mean `%.3f`, spread `%.3f`)",
		len(values), stat.Mean(values, nil), stat.PopStdDev(values, nil))
}

func appendGrouped(lines []string, params []tonegate.Param) []string {
	byGroup := map[string][]tonegate.Param{}
	for _, p := range params {
		byGroup[p.Group] = append(byGroup[p.Group], p)
	}

	for _, group := range slices.Sorted(maps.Keys(byGroup)) {
		lines = append(lines, fmt.Sprintf("**%s**", group))

		grouped := byGroup[group]
		slices.SortStableFunc(grouped, func(a, b tonegate.Param) int {
			return a.Index - b.Index
		})

		for _, p := range grouped {
			lines = append(lines, fmt.Sprintf("- `%d` %s: `%.3f`", p.Index, p.Label, p.Value))
		}
	}

	return lines
}

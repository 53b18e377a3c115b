// Package tonelog extracts structured data from tone preset log files.
//
// The format is ad hoc line-oriented text, not a grammar: a free-text
// reasoning block bracketed by "reasoning:" and "qc:" lines, a bulleted
// "warnings:" section, and two parameter sections ("model (sanitized):" and
// "added_by_replace_active:") holding bracketed group headers over
// "<index> <label> = <value>" lines. Parsing is best effort; structurally
// absent sections degrade to empty values.
package tonelog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/tonegate"
	"github.com/farcloser/tonegate/internal/textenc"
)

const (
	sectionModel = "model (sanitized):"
	sectionAdded = "added_by_replace_active:"

	warningsHeader   = "warnings:"
	warningsBullet   = "- "
	warningsSentinel = "preview_only="
)

var (
	reasoningPattern = regexp.MustCompile(`(?is)\breasoning:\s*\n(.*?)\n\s*qc:\s*\n`)
	groupPattern     = regexp.MustCompile(`^\s*\[(.+?)\]\s*$`)
	paramPattern     = regexp.MustCompile(`^\s*(\d+)\s+(.+?)\s+=\s+([0-9.]+)\s*$`)
)

// Parse reads, decodes and parses a single tone log file. The only error
// path is an unreadable file; malformed content never fails.
func Parse(path string) (*tonegate.ParsedLog, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified log files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	return ParseText(filepath.Base(path), textenc.Decode(raw)), nil
}

// ParseText extracts the reasoning block, warning bullets and parameter
// tuples from decoded log text.
func ParseText(filename, text string) *tonegate.ParsedLog {
	parsed := &tonegate.ParsedLog{Filename: filename}

	if m := reasoningPattern.FindStringSubmatch(text); m != nil {
		parsed.Reasoning = strings.TrimSpace(m[1])
	}

	lines := strings.Split(text, "\n")

	parsed.Warnings = parseWarnings(lines)
	parsed.ModelParams, parsed.AddedParams = parseParams(lines)

	return parsed
}

// parseWarnings collects bullet lines under the warnings header until the
// preview_only sentinel.
func parseWarnings(lines []string) []string {
	var (
		warnings []string
		inWarn   bool
	)

	for _, line := range lines {
		s := strings.TrimSpace(line)

		if s == warningsHeader {
			inWarn = true

			continue
		}

		if inWarn && strings.HasPrefix(s, warningsBullet) {
			warnings = append(warnings, strings.TrimPrefix(s, warningsBullet))

			continue
		}

		if inWarn && strings.HasPrefix(s, warningsSentinel) {
			break
		}
	}

	return warnings
}

// parseParams walks lines tracking the current section and current group,
// appending any parameter line to the matching list. Lines outside a
// section, or inside a section before the first group header, are ignored.
func parseParams(lines []string) (model, added []tonegate.Param) {
	var section, group string

	for _, line := range lines {
		s := strings.TrimSpace(line)

		switch s {
		case sectionModel:
			section, group = "model", ""

			continue
		case sectionAdded:
			section, group = "added", ""

			continue
		}

		if g := groupPattern.FindStringSubmatch(line); g != nil && section != "" {
			group = g[1]

			continue
		}

		m := paramPattern.FindStringSubmatch(line)
		if m == nil || section == "" || group == "" {
			continue
		}

		idx, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		val, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}

		param := tonegate.Param{
			Index: idx,
			Label: strings.TrimSpace(m[2]),
			Value: val,
			Group: group,
		}

		if section == "model" {
			model = append(model, param)
		} else {
			added = append(added, param)
		}
	}

	return model, added
}

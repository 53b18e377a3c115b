package report

import (
	"slices"
	"strings"

	"github.com/farcloser/tonegate"
)

// FileReport pairs one parsed log with its resolved style spec and the
// derived QA flags.
type FileReport struct {
	Log   *tonegate.ParsedLog
	Spec  tonegate.PromptSpec
	Flags []string
}

// counted is a flag or warning string with its occurrence count across all
// files.
type counted struct {
	Text  string
	Count int
}

// tally aggregates occurrence counts and orders them by descending count,
// then alphabetically.
func tally(occurrences [][]string) []counted {
	counts := map[string]int{}

	for _, group := range occurrences {
		for _, s := range group {
			counts[s]++
		}
	}

	out := make([]counted, 0, len(counts))
	for text, count := range counts {
		out = append(out, counted{Text: text, Count: count})
	}

	slices.SortFunc(out, func(a, b counted) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		return strings.Compare(a.Text, b.Text)
	})

	return out
}

func warningTally(files []FileReport) []counted {
	groups := make([][]string, 0, len(files))
	for i := range files {
		groups = append(groups, files[i].Log.Warnings)
	}

	return tally(groups)
}

func flagTally(files []FileReport) []counted {
	groups := make([][]string, 0, len(files))
	for i := range files {
		groups = append(groups, files[i].Flags)
	}

	return tally(groups)
}

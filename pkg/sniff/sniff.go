// Package sniff implements delimiter auto-detection for delimited text files.
//
// Detection works on a bounded sample of lines from the head of a file and
// scores each candidate delimiter against a uniform-column-count hypothesis:
// a candidate is viable only if splitting every sampled line on it yields the
// same number of fields. Among viable candidates the one producing the most
// fields wins, with ties broken by candidate order (comma before tab before
// semicolon before pipe by default). When no candidate is viable the first
// candidate is returned rather than an error, so a file can always be opened
// as a single-column or comma-delimited table.
//
// Splitting is naive and quote-unaware: field count is simply the number of
// delimiter occurrences plus one, so trailing empty fields count as fields.
//
// Example:
//
//	delim, err := sniff.Detect([]string{"a\tb", "c\td"})
//	if err != nil {
//		return err
//	}
//	// delim == '\t'
package sniff

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultCandidates is the default candidate delimiter set, in tie-break
// priority order.
var DefaultCandidates = []rune{',', '\t', ';', '|'}

// ErrEmptySample is returned by Detect when the sample contains no lines.
// Callers must supply at least one line, e.g. by checking the file is
// non-empty before sampling.
var ErrEmptySample = errors.New("empty sample: no lines to examine")

// Detect returns the candidate delimiter most consistent with a uniform
// field count across the sampled lines. If no candidates are given,
// DefaultCandidates is used.
//
// Detect is a pure function of its arguments: it never mutates the sample
// and is deterministic for a given sample and candidate set.
func Detect(lines []string, candidates ...rune) (rune, error) {
	if len(lines) == 0 {
		return 0, ErrEmptySample
	}
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	best := candidates[0]
	bestFields := 0

	for _, cand := range candidates {
		fields := strings.Count(lines[0], string(cand)) + 1

		uniform := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(cand))+1 != fields {
				uniform = false
				break
			}
		}

		// Strict > keeps the earlier candidate on ties.
		if uniform && fields > bestFields {
			best, bestFields = cand, fields
		}
	}

	return best, nil
}

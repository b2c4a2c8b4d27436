// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package noise identifies running headers and footers: short lines that
// recur as the first or last line of many pages. Detection is a single
// global pass over every page and must complete before any page is
// reflowed; the frequency threshold is document-wide, not per-page.
package noise

import (
	"sort"
	"strings"

	"github.com/pdiddy/pagemark/pkg/types"
)

// Set is the immutable collection of detected header/footer lines. Absence
// from the set means "not detected as noise", not "not noise"; detection
// is probabilistic.
type Set struct {
	lines map[string]struct{}
}

// NewSet builds a Set from known boilerplate lines, bypassing detection.
func NewSet(lines ...string) Set {
	m := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		m[l] = struct{}{}
	}
	return Set{lines: m}
}

// Contains reports whether line was detected as a header or footer.
func (s Set) Contains(line string) bool {
	_, ok := s.lines[line]
	return ok
}

// Len returns the number of detected lines.
func (s Set) Len() int {
	return len(s.lines)
}

// Lines returns the detected lines in sorted order, for reporting.
func (s Set) Lines() []string {
	out := make([]string, 0, len(s.lines))
	for l := range s.lines {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Detect tallies the first and last non-blank line of each page across the
// whole document. A line is noise when it occurs at least cfg.MinCount
// times and is shorter than cfg.MaxLen characters. Pages with fewer than
// two non-blank lines contribute nothing.
func Detect(pages []types.Page, cfg types.NoiseConfig) Set {
	counts := make(map[string]int)

	for _, page := range pages {
		var nonBlank []string
		for _, raw := range strings.Split(page.Text, "\n") {
			if line := strings.TrimSpace(raw); line != "" {
				nonBlank = append(nonBlank, line)
			}
		}
		if len(nonBlank) < 2 {
			continue
		}
		counts[nonBlank[0]]++
		counts[nonBlank[len(nonBlank)-1]]++
	}

	lines := make(map[string]struct{})
	for line, count := range counts {
		if count >= cfg.MinCount && len(line) < cfg.MaxLen {
			lines[line] = struct{}{}
		}
	}
	return Set{lines: lines}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strings"
)

var (
	reBlankRuns   = regexp.MustCompile(`\n{3,}`)
	reSpaceBefore = regexp.MustCompile(`\s+([.,!?;:])`)
)

// Whitespace is the final pass over assembled Markdown: collapse runs of
// three or more newlines to a single blank line, remove whitespace sitting
// before closing punctuation, and right-trim every line.
func Whitespace(markdown string) string {
	markdown = reBlankRuns.ReplaceAllString(markdown, "\n\n")
	markdown = reSpaceBefore.ReplaceAllString(markdown, "$1")

	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

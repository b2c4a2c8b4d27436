// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package toc detects table-of-contents pages and rewrites their entries
// from "title ... locator" into "locator ... title" form.
package toc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/pagemark/pkg/types"
)

const (
	// maxPageDigits caps bare and space-separated page numbers so numeric
	// content inside titles is not mistaken for a locator.
	maxPageDigits = 4

	// maxRomanLen caps roman-numeral locators for the same reason.
	maxRomanLen = 5
)

var (
	reDotLeader  = regexp.MustCompile(`\.{4,}`)
	reTrailingNo = regexp.MustCompile(`\d+\s*$`)

	reDotsInteger = regexp.MustCompile(`^(.+?)\.{2,}(\d+)\s*$`)
	reDotsRoman   = regexp.MustCompile(`(?i)^(.+?)\.{2,}([ivxlcdm]+)\s*$`)
	reSpaceInt    = regexp.MustCompile(`^(.+?)\s+(\d+)\s*$`)
	reSpaceRoman  = regexp.MustCompile(`(?i)^(.+?)\s+([ivxlcdm]+)\s*$`)
	reBareInt     = regexp.MustCompile(`^\d+$`)
	reBareRoman   = regexp.MustCompile(`(?i)^[ivxlcdm]+$`)
)

// IsTocPage reports whether a page's text looks like a table of contents:
// the fraction of non-blank lines carrying a dotted leader, or ending in a
// run of digits, exceeds cfg.LineRatio. Callers apply the cfg.PageLimit
// window; pages past it are never classified as TOC.
func IsTocPage(text string, cfg types.TocConfig) bool {
	lines := strings.Split(text, "\n")

	var nonBlank, dotted, numbered int
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		nonBlank++
		if reDotLeader.MatchString(line) {
			dotted++
		}
		if reTrailingNo.MatchString(line) {
			numbered++
		}
	}

	if nonBlank == 0 {
		return false
	}
	total := float64(nonBlank)
	return float64(dotted)/total > cfg.LineRatio || float64(numbered)/total > cfg.LineRatio
}

// tocRule is one (match, rewrite) pair in the FormatLine priority chain.
type tocRule struct {
	re      *regexp.Regexp
	rewrite func(m []string) (string, bool)
}

// rules are tried in order; the first rule whose rewrite accepts wins.
// Ordering matters: dotted-leader forms outrank bare trailing numbers,
// integers outrank roman numerals.
var rules = []tocRule{
	{reDotsInteger, func(m []string) (string, bool) {
		return locatorFirst(m[2], m[1]), true
	}},
	{reDotsRoman, func(m []string) (string, bool) {
		return locatorFirst(m[2], m[1]), true
	}},
	{reSpaceInt, func(m []string) (string, bool) {
		if len(m[2]) > maxPageDigits {
			return "", false
		}
		return locatorFirst(m[2], m[1]), true
	}},
	{reSpaceRoman, func(m []string) (string, bool) {
		if len(m[2]) > maxRomanLen {
			return "", false
		}
		return locatorFirst(m[2], m[1]), true
	}},
	{reBareInt, func(m []string) (string, bool) {
		if len(m[0]) > maxPageDigits {
			return "", false
		}
		return m[0] + " ...", true
	}},
	{reBareRoman, func(m []string) (string, bool) {
		if len(m[0]) > maxRomanLen {
			return "", false
		}
		return m[0] + " ...", true
	}},
}

// FormatLine rewrites one stripped TOC line so the locator leads:
// "Chapter One......12" becomes "12 ... Chapter One". A bare locator keeps
// a trailing ellipsis with no title (its title sits on the previous
// physical line). Lines matching no rule pass through unchanged.
func FormatLine(line string) string {
	line = strings.TrimSpace(line)
	for _, rule := range rules {
		m := rule.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if out, ok := rule.rewrite(m); ok {
			return out
		}
	}
	return line
}

func locatorFirst(locator, title string) string {
	return fmt.Sprintf("%s ... %s", locator, strings.TrimSpace(title))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides what role a single line plays: heading (and at
// what level), bullet item, numbered item, or plain text. Both classifiers
// are pure functions of the line plus, for headings, the preceding line;
// they never fail, they only decline.
package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// ListKind is the result of list-start detection.
type ListKind int

const (
	ListNone ListKind = iota
	ListBullet
	ListNumbered
)

// bulletGlyphs are the characters that open a bullet item. The Unicode
// glyphs survive here even though upstream normalization folds them to
// ASCII, so the classifier also works on un-normalized input.
const bulletGlyphs = "•●◦▪-*"

var (
	reNumbered     = regexp.MustCompile(`^\d+[.)]\s`)
	reHeadingMarks = regexp.MustCompile(`^#{1,3}\s*`)
)

// continuationWords are closed-class words that leave a line dangling;
// a line ending in one is incomplete and the next line continues it.
var continuationWords = map[string]bool{
	"and": true, "or": true, "but": true,
	"the": true, "a": true, "an": true,
}

// HeadingLevel reports whether line is a heading and at what level (2 or
// 3); 0 means not a heading. Rules run in order, first match wins:
//
//   - too short, bullet-led, or long and sentence-final: never a heading
//   - an existing "###" marker is level 3 verbatim
//   - after a previous line, a lowercase start or a dangling previous line
//     marks a continuation, not a heading
//   - short ALL-CAPS multi-word lines are level 2
//   - title-cased lines without closing punctuation are level 3
//
// prev is the preceding non-page-break line, or "" when there is none.
func HeadingLevel(line, prev string) int {
	line = strings.TrimSpace(line)

	if len(line) < 3 {
		return 0
	}
	if strings.ContainsRune(bulletGlyphs, firstRune(line)) {
		return 0
	}
	if len(line) > 80 && endsWithAny(line, ".", "!", "?") {
		return 0
	}

	if strings.HasPrefix(line, "###") {
		return 3
	}

	if prev != "" && unicode.IsLower(firstRune(line)) {
		return 0
	}
	if prev != "" && continuesPrev(prev) {
		return 0
	}

	if isUpper(line) && len(line) > 3 && len(line) < 60 && len(strings.Fields(line)) >= 2 {
		return 2
	}

	words := strings.Fields(line)
	if len(words) >= 2 && len(words) <= 12 && len(line) < 80 {
		caps := 0
		for _, w := range words {
			if unicode.IsUpper(firstRune(w)) {
				caps++
			}
		}
		if float64(caps) >= float64(len(words))*0.7 &&
			!endsWithAny(line, ".", "!", "?", ",") {
			return 3
		}
	}

	return 0
}

// StripHeadingMarks removes a pre-existing "#"-style marker prefix so a
// detected heading is not emitted with doubled markers.
func StripHeadingMarks(line string) string {
	return reHeadingMarks.ReplaceAllString(line, "")
}

// ListMarker reports whether line opens a bullet or numbered list item.
func ListMarker(line string) ListKind {
	line = strings.TrimSpace(line)
	if line == "" {
		return ListNone
	}
	if strings.ContainsRune(bulletGlyphs, firstRune(line)) {
		return ListBullet
	}
	if reNumbered.MatchString(line) {
		return ListNumbered
	}
	return ListNone
}

// continuesPrev reports whether prev leaves its sentence open: it ends
// with a hyphen or comma, or its final word is a continuation word.
func continuesPrev(prev string) bool {
	if endsWithAny(prev, "-", ",") {
		return true
	}
	fields := strings.Fields(prev)
	if len(fields) == 0 {
		return false
	}
	return continuationWords[strings.ToLower(fields[len(fields)-1])]
}

// isUpper mirrors Python's str.isupper: at least one cased rune, and no
// lowercase rune anywhere.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func endsWithAny(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

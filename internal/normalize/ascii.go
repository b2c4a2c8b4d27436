// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize maps extracted page text down to ASCII and cleans up
// the assembled Markdown. Both entry points are total and idempotent;
// classification stages downstream assume their input already went through
// ASCII.
package normalize

import "strings"

// replacer maps typographic punctuation and common symbols to ASCII
// equivalents. One-to-one and one-to-many substitutions only; applied
// before the catch-all non-ASCII strip so the substitutions win.
var replacer = strings.NewReplacer(
	// Quotes
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
	"‚", "'", "‛", "'",
	"„", `"`, "‟", `"`,
	"‹", "<", "›", ">",
	"«", "<<", "»", ">>",

	// Dashes and hyphens
	"‐", "-", "‑", "-",
	"‒", "-", "–", "-",
	"—", "--", "―", "--",
	"−", "-",

	// Spaces
	" ", " ",
	" ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", " ", " ",
	" ", " ", " ", " ", "​", "",

	// Ellipsis
	"…", "...",

	// Bullets and squares
	"•", "-", "‣", "-", "⁃", "-",
	"●", "-", "◦", "-",
	"∙", "*",
	"▪", "-", "▫", "-",

	// Apostrophes and primes
	"ʼ", "'", "′", "'", "″", "''",

	// Legal and math symbols
	"©", "(c)", "®", "(R)", "™", "(TM)",
	"°", " deg", "±", "+/-",
	"×", "x", "÷", "/",

	// Fractions
	"¼", "1/4", "½", "1/2", "¾", "3/4",
	"⅓", "1/3", "⅔", "2/3",

	// Arrows
	"←", "<-", "↑", "^", "→", "->", "↓", "v",
	"↔", "<->", "⇒", "=>", "⇔", "<=>",
)

// pictographRanges are deleted outright: emoticons, symbols and
// pictographs, transport, flags, supplemental symbols, misc symbols,
// enclosed characters, mahjong tiles, playing cards.
var pictographRanges = [][2]rune{
	{0x1F600, 0x1F64F},
	{0x1F300, 0x1F5FF},
	{0x1F680, 0x1F6FF},
	{0x1F1E0, 0x1F1FF},
	{0x1F900, 0x1F9FF},
	{0x2600, 0x27BF},
	{0x1F200, 0x1F2FF},
	{0x1F000, 0x1F02F},
	{0x1F0A0, 0x1F0FF},
}

func isPictograph(r rune) bool {
	for _, rr := range pictographRanges {
		if r >= rr[0] && r <= rr[1] {
			return true
		}
	}
	return false
}

// ASCII returns text with typographic characters substituted, pictographs
// removed, and every remaining rune above 127 dropped. Newlines, tabs and
// carriage returns survive unconditionally.
func ASCII(text string) string {
	text = replacer.Replace(text)
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\t', '\r':
			return r
		}
		if isPictograph(r) || r >= 128 {
			return -1
		}
		return r
	}, text)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reflow is the stateful heart of the converter. It walks
// classified lines page by page, in document order, and reassembles them
// into Markdown blocks: headings, joined paragraphs, list items, and
// table-of-contents entries. The accumulator legitimately spans page
// boundaries (a paragraph cut by a page break continues on the next page),
// so pages must be fed strictly in order, after noise detection has seen
// the whole document.
package reflow

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pagemark/internal/classify"
	"github.com/pdiddy/pagemark/internal/noise"
	"github.com/pdiddy/pagemark/internal/toc"
	"github.com/pdiddy/pagemark/pkg/types"
)

// tocHeadingWindow is how many recent blocks to scan before emitting
// another "Table of Contents" heading; a TOC spanning several pages gets
// one heading, not one per page.
const tocHeadingWindow = 5

var reBulletPrefix = regexp.MustCompile(`^[•●◦▪\-\*]\s*`)

// Engine converts pages into an ordered block sequence. It is configured
// once with the document's noise set and TOC thresholds; the per-run
// accumulator lives in Run.
type Engine struct {
	noise noise.Set
	toc   types.TocConfig
}

// New builds an Engine. The noise set must already cover every page of the
// document; the engine only reads it.
func New(set noise.Set, cfg types.TocConfig) *Engine {
	return &Engine{noise: set, toc: cfg}
}

// accumulator carries the in-flight state between lines and across page
// boundaries. The paragraph and listItem buffers are never both non-empty:
// entering one flushes the other.
type accumulator struct {
	blocks    []types.Block
	paragraph []string
	listItem  []string
	inList    bool
	prevLine  string
}

// Run processes pages in order and returns the emitted blocks along with
// the number of pages formatted as table-of-contents.
func (e *Engine) Run(pages []types.Page) (blocks []types.Block, tocPages int) {
	acc := &accumulator{}

	for _, page := range pages {
		if page.Index < e.toc.PageLimit && toc.IsTocPage(page.Text, e.toc) {
			e.tocPage(acc, page.Text)
			tocPages++
			continue
		}
		e.contentPage(acc, page.Text)
	}

	// End of document: drain whatever is still buffered.
	acc.flushList()
	acc.flushParagraph(false)

	return acc.blocks, tocPages
}

// tocPage emits a whole page as table-of-contents entries, one block per
// non-blank, non-noise line, locator moved to the front.
func (e *Engine) tocPage(acc *accumulator, text string) {
	acc.flushParagraph(false)
	acc.flushList()
	acc.inList = false

	if !acc.recentTocHeading() {
		acc.emit(types.Blank)
		acc.emit(types.Heading(2, "Table of Contents"))
		acc.emit(types.Blank)
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || e.noise.Contains(line) {
			continue
		}
		acc.emit(types.TocEntry(toc.FormatLine(line)))
	}
	acc.emit(types.Blank)
}

// contentPage classifies and reflows one ordinary page. prevLine context
// does not carry across page boundaries; open paragraph and list buffers
// do.
func (e *Engine) contentPage(acc *accumulator, text string) {
	lines := strings.Split(text, "\n")
	acc.prevLine = ""

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		i++

		// Noise is dropped but still becomes heading context.
		if e.noise.Contains(line) {
			acc.prevLine = line
			continue
		}

		if line == "" {
			acc.flushList()
			acc.flushParagraph(true)
			acc.inList = false
			acc.prevLine = ""
			continue
		}

		if level := classify.HeadingLevel(line, acc.prevLine); level > 0 {
			acc.flushList()
			acc.flushParagraph(true)
			acc.emit(types.Heading(level, classify.StripHeadingMarks(line)))
			acc.emit(types.Blank)
			acc.inList = false
			acc.prevLine = line
			continue
		}

		if kind := classify.ListMarker(line); kind != classify.ListNone {
			acc.flushList()
			acc.flushParagraph(true)

			item := line
			if kind == classify.ListBullet {
				item = reBulletPrefix.ReplaceAllString(line, "- ")
			}
			acc.listItem = []string{item}
			acc.inList = true

			i = e.absorbListContinuations(acc, lines, i)
			acc.prevLine = line
			continue
		}

		// Plain text.
		if acc.inList {
			acc.flushList()
			acc.inList = false
		}
		acc.appendParagraphLine(line)
		acc.prevLine = line
	}
}

// absorbListContinuations greedily pulls wrapped continuation lines into
// the open list-item buffer, starting at index i. It stops at a blank
// line, a new list start, or a heading; noise lines are skipped. Once the
// accumulated line ends a sentence, a one-line lookahead stops absorption
// before a sentence that actually begins the next content unit. Returns
// the index of the first unconsumed line.
func (e *Engine) absorbListContinuations(acc *accumulator, lines []string, i int) int {
	for i < len(lines) {
		next := strings.TrimSpace(lines[i])

		if next == "" {
			break
		}
		if e.noise.Contains(next) {
			i++
			continue
		}

		prevCtx := ""
		if i > 0 {
			prevCtx = strings.TrimSpace(lines[i-1])
		}
		if classify.ListMarker(next) != classify.ListNone ||
			classify.HeadingLevel(next, prevCtx) > 0 {
			break
		}

		acc.listItem = append(acc.listItem, next)
		i++

		if endsSentence(next) && i < len(lines) {
			peek := strings.TrimSpace(lines[i])
			if peek == "" ||
				classify.ListMarker(peek) != classify.ListNone ||
				classify.HeadingLevel(peek, next) > 0 {
				break
			}
		}
	}
	return i
}

// appendParagraphLine grows the paragraph buffer. A line joins the open
// paragraph when it ends with a hyphen or the buffered text has not yet
// reached terminal punctuation; otherwise the finished paragraph is
// flushed and a new one starts.
func (acc *accumulator) appendParagraphLine(line string) {
	if len(acc.paragraph) == 0 {
		acc.paragraph = []string{line}
		return
	}

	last := acc.paragraph[len(acc.paragraph)-1]
	if strings.HasSuffix(line, "-") || !endsParagraph(last) {
		acc.paragraph = append(acc.paragraph, line)
		return
	}

	acc.flushParagraph(true)
	acc.paragraph = []string{line}
}

func (acc *accumulator) emit(b types.Block) {
	acc.blocks = append(acc.blocks, b)
}

// flushList joins the buffered list-item fragments into one block.
func (acc *accumulator) flushList() {
	if len(acc.listItem) == 0 {
		return
	}
	acc.emit(types.ListItem(JoinDehyphenated(acc.listItem)))
	acc.listItem = nil
}

// flushParagraph joins the buffered paragraph fragments into one block,
// optionally followed by a blank separator.
func (acc *accumulator) flushParagraph(withBlank bool) {
	if len(acc.paragraph) == 0 {
		return
	}
	acc.emit(types.Paragraph(JoinDehyphenated(acc.paragraph)))
	if withBlank {
		acc.emit(types.Blank)
	}
	acc.paragraph = nil
}

// recentTocHeading reports whether a "Table of Contents" heading already
// sits within the last few emitted blocks.
func (acc *accumulator) recentTocHeading() bool {
	start := len(acc.blocks) - tocHeadingWindow
	if start < 0 {
		start = 0
	}
	for _, b := range acc.blocks[start:] {
		if strings.Contains(b.Text, "Table of Contents") {
			return true
		}
	}
	return false
}

// JoinDehyphenated joins line fragments with single spaces, except that a
// fragment ending in a hyphen fuses directly onto the next one, undoing
// the hyphen a line wrap introduced.
func JoinDehyphenated(fragments []string) string {
	var parts []string
	for _, frag := range fragments {
		if n := len(parts); n > 0 && strings.HasSuffix(parts[n-1], "-") {
			parts[n-1] = strings.TrimSuffix(parts[n-1], "-") + frag
			continue
		}
		parts = append(parts, frag)
	}
	return strings.Join(parts, " ")
}

// endsSentence reports terminal sentence punctuation, used by the list
// absorption lookahead.
func endsSentence(line string) bool {
	return strings.HasSuffix(line, ".") ||
		strings.HasSuffix(line, "!") ||
		strings.HasSuffix(line, "?")
}

// endsParagraph reports whether a buffered fragment closes its paragraph:
// terminal punctuation, a colon, or a closing quote.
func endsParagraph(line string) bool {
	switch {
	case strings.HasSuffix(line, "."), strings.HasSuffix(line, "!"),
		strings.HasSuffix(line, "?"), strings.HasSuffix(line, ":"),
		strings.HasSuffix(line, `"`):
		return true
	}
	return false
}

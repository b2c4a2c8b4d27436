// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the pagemark pipeline:
// extracted pages, emitted Markdown blocks, stage configuration, and the
// conversion report.
package types

// Page is one physical page of the source document: its position in
// reading order and the raw text the extractor produced for it. Pages are
// built once by the extraction backend and never modified afterwards.
type Page struct {
	// Index is the zero-based position among extracted pages. Pages that
	// yielded no text are omitted at extraction time, so Index counts
	// extracted pages, not physical ones.
	Index int `json:"index" yaml:"index"`

	// Text is the page's character stream, lines separated by \n.
	Text string `json:"text" yaml:"text"`
}

// BlockKind identifies the role of an emitted Markdown block.
type BlockKind string

const (
	// BlockHeading is a heading line; Level is 2 or 3.
	BlockHeading BlockKind = "heading"

	// BlockParagraph is a joined paragraph of body text.
	BlockParagraph BlockKind = "paragraph"

	// BlockListItem is a single bullet or numbered list item, marker included.
	BlockListItem BlockKind = "list_item"

	// BlockTocEntry is a reformatted table-of-contents line.
	BlockTocEntry BlockKind = "toc_entry"

	// BlockBlank is an empty separator line.
	BlockBlank BlockKind = "blank"
)

// Block is one unit of converter output. The final Markdown artifact is the
// ordered block sequence rendered to text; blocks are only ever appended,
// never rewritten.
type Block struct {
	Kind BlockKind `json:"kind" yaml:"kind"`

	// Level is the heading level (2 or 3) for BlockHeading, 0 otherwise.
	// No level-1 heading is ever inferred.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Blank is the shared empty-separator block.
var Blank = Block{Kind: BlockBlank}

// Heading builds a heading block at the given level.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Paragraph builds a paragraph block.
func Paragraph(text string) Block {
	return Block{Kind: BlockParagraph, Text: text}
}

// ListItem builds a list-item block. Text carries its own marker
// ("- " or "1. ").
func ListItem(text string) Block {
	return Block{Kind: BlockListItem, Text: text}
}

// TocEntry builds a table-of-contents entry block.
func TocEntry(text string) Block {
	return Block{Kind: BlockTocEntry, Text: text}
}

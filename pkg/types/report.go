// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Report summarizes one conversion run. It is written to stderr as log
// fields and, when requested, to a YAML report file.
type Report struct {
	// Input is the source document path.
	Input string `json:"input" yaml:"input"`

	// Output is the written Markdown path.
	Output string `json:"output" yaml:"output"`

	// Pages is the number of pages that yielded text.
	Pages int `json:"pages" yaml:"pages"`

	// NoiseLines lists the detected header/footer lines, sorted.
	NoiseLines []string `json:"noise_lines,omitempty" yaml:"noise_lines,omitempty"`

	// TocPages is the number of pages formatted as table-of-contents.
	TocPages int `json:"toc_pages" yaml:"toc_pages"`

	// Headings, Paragraphs and ListItems count emitted blocks by kind.
	Headings   int `json:"headings" yaml:"headings"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
	ListItems  int `json:"list_items" yaml:"list_items"`

	// OutputLines and OutputChars measure the final Markdown artifact.
	OutputLines int `json:"output_lines" yaml:"output_lines"`
	OutputChars int `json:"output_chars" yaml:"output_chars"`
}

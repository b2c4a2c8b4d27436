// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the page-text extraction tool.
type ExtractionBackend string

const (
	// BackendAuto picks a backend from the input file extension.
	BackendAuto ExtractionBackend = "auto"

	// BackendPDF is the built-in pure-Go PDF text extractor.
	BackendPDF ExtractionBackend = "pdf"

	// BackendPdftotext shells out to the poppler pdftotext binary.
	BackendPdftotext ExtractionBackend = "pdftotext"

	// BackendText reads a plain-text file, pages separated by form feeds.
	BackendText ExtractionBackend = "text"
)

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction tool: auto, pdf, pdftotext, or text.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`
}

// NoiseConfig holds thresholds for running header/footer detection.
// A first-or-last page line is boilerplate when it recurs at least MinCount
// times across the document and is shorter than MaxLen characters.
type NoiseConfig struct {
	// MinCount is the minimum occurrence count (default 10). Headers and
	// footers recur on nearly every page of a long document, so a fixed
	// low threshold stays safe on short documents.
	MinCount int `json:"min_count" yaml:"min_count"`

	// MaxLen is the exclusive length bound (default 60). Page furniture is
	// short; the bound keeps genuine repeated sentences out of the set.
	MaxLen int `json:"max_len" yaml:"max_len"`
}

// TocConfig holds thresholds for table-of-contents page detection.
type TocConfig struct {
	// PageLimit restricts TOC detection to the first N extracted pages
	// (default 20). A TOC later in the document is treated as ordinary
	// content; this is a deliberate limitation, not a bug.
	PageLimit int `json:"page_limit" yaml:"page_limit"`

	// LineRatio is the fraction of non-blank lines that must carry a
	// dotted leader or a trailing number for a page to count as TOC
	// (default 0.3).
	LineRatio float64 `json:"line_ratio" yaml:"line_ratio"`
}

// PipelineConfig groups all stage configurations for a conversion run.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Noise      NoiseConfig      `json:"noise" yaml:"noise"`
	Toc        TocConfig        `json:"toc" yaml:"toc"`
}

// DefaultPipelineConfig returns the pipeline defaults.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Extraction: ExtractionConfig{Backend: BackendAuto},
		Noise:      NoiseConfig{MinCount: 10, MaxLen: 60},
		Toc:        TocConfig{PageLimit: 20, LineRatio: 0.3},
	}
}

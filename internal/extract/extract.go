// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract produces the ordered page texts the conversion pipeline
// consumes. Different backends (pure-Go PDF parsing, the poppler pdftotext
// binary, plain text files) implement the Extractor interface.
//
// A page that yields no text is omitted, so downstream page indices count
// extracted pages; the table-of-contents detection window is defined over
// those.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pagemark/pkg/types"
)

// Extractor reads a source document and returns its pages in reading
// order. Extraction failures are fatal to a conversion run; there is no
// meaningful partial result and no retry.
type Extractor interface {
	// Extract returns one Page per physical page that yielded text.
	Extract(path string) ([]types.Page, error)
}

// ForPath selects a backend for the given input file. BackendAuto picks by
// extension: .pdf gets the built-in PDF extractor, .txt and .text the
// plain-text one.
func ForPath(cfg types.ExtractionConfig, path string) (Extractor, error) {
	backend := cfg.Backend
	if backend == "" || backend == types.BackendAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf":
			backend = types.BackendPDF
		case ".txt", ".text":
			backend = types.BackendText
		default:
			return nil, fmt.Errorf("cannot infer extraction backend for %s: use --backend", path)
		}
	}

	switch backend {
	case types.BackendPDF:
		return &PDFExtractor{}, nil
	case types.BackendPdftotext:
		return NewPdftotextExtractor()
	case types.BackendText:
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q", backend)
	}
}

// pagesFromTexts builds the Page sequence from raw per-page texts,
// dropping pages with no extractable text and numbering the survivors.
func pagesFromTexts(texts []string) []types.Page {
	var pages []types.Page
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, types.Page{Index: len(pages), Text: text})
	}
	return pages
}

// splitFormFeed splits a text blob into per-page texts on form feed
// characters. A blob without form feeds is a single page.
func splitFormFeed(blob string) []string {
	return strings.Split(blob, "\f")
}

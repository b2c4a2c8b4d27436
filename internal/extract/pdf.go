// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/pagemark/pkg/types"
)

// PDFExtractor extracts per-page plain text with the pure-Go pdf library.
// It needs no external tooling and is the default backend for .pdf input.
type PDFExtractor struct{}

// Extract opens the PDF and pulls plain text page by page. Pages whose
// content cannot be decoded are skipped rather than failing the document;
// a PDF that cannot be opened at all is a fatal error.
func (x *PDFExtractor) Extract(path string) ([]types.Page, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var texts []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		texts = append(texts, text)
	}

	pages := pagesFromTexts(texts)
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}
	return pages, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"

	"github.com/pdiddy/pagemark/pkg/types"
)

// TextExtractor reads an already-extracted plain text file, pages
// separated by form feed characters. A file with no form feed is one
// page. It exists so the pipeline can be exercised and tested without a
// PDF in front of it.
type TextExtractor struct{}

// Extract reads the file and splits it into pages.
func (x *TextExtractor) Extract(path string) ([]types.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	pages := pagesFromTexts(splitFormFeed(string(data)))
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}
	return pages, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"

	"github.com/pdiddy/pagemark/pkg/types"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(name string, args []string, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec executor = &osExecutor{}

// PdftotextExtractor shells out to the poppler pdftotext binary, which
// handles some PDFs the pure-Go parser cannot. pdftotext emits a form
// feed after every page, so page splitting follows the same rule as the
// plain-text backend.
type PdftotextExtractor struct {
	exec executor
}

// NewPdftotextExtractor verifies that pdftotext is on PATH before
// returning an extractor that uses it.
func NewPdftotextExtractor() (*PdftotextExtractor, error) {
	return newPdftotextExtractor(defaultExec)
}

func newPdftotextExtractor(exec executor) (*PdftotextExtractor, error) {
	if _, err := exec.LookPath(binPdftotext); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", binPdftotext, err)
	}
	return &PdftotextExtractor{exec: exec}, nil
}

// Extract runs pdftotext in layout mode, writing to stdout, and splits
// the result into pages on form feeds.
func (x *PdftotextExtractor) Extract(path string) ([]types.Page, error) {
	var out bytes.Buffer
	args := []string{"-layout", "-enc", "UTF-8", path, "-"}
	if err := x.exec.RunPiped(binPdftotext, args, &out); err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", binPdftotext, path, err)
	}

	pages := pagesFromTexts(splitFormFeed(out.String()))
	if len(pages) == 0 {
		return nil, fmt.Errorf("no extractable text in %s", path)
	}
	return pages, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert wires the pipeline together: normalize pages to ASCII,
// detect running headers and footers across the whole document, reflow
// every page in order, and render the block sequence as Markdown.
package convert

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pagemark/internal/extract"
	"github.com/pdiddy/pagemark/internal/noise"
	"github.com/pdiddy/pagemark/internal/normalize"
	"github.com/pdiddy/pagemark/internal/reflow"
	"github.com/pdiddy/pagemark/pkg/types"
)

// Markdown converts extracted pages into the final Markdown artifact.
// Noise detection is a hard ordering dependency: it observes every
// normalized page before the first page is reflowed, because its
// frequency threshold is document-wide. The run is deterministic:
// identical pages always yield identical output.
func Markdown(pages []types.Page, cfg types.PipelineConfig) (string, types.Report) {
	normalized := make([]types.Page, len(pages))
	for i, p := range pages {
		normalized[i] = types.Page{Index: p.Index, Text: normalize.ASCII(p.Text)}
	}

	set := noise.Detect(normalized, cfg.Noise)
	blocks, tocPages := reflow.New(set, cfg.Toc).Run(normalized)

	markdown := normalize.Whitespace(render(blocks))

	report := types.Report{
		Pages:      len(pages),
		NoiseLines: set.Lines(),
		TocPages:   tocPages,
	}
	for _, b := range blocks {
		switch b.Kind {
		case types.BlockHeading:
			report.Headings++
		case types.BlockParagraph:
			report.Paragraphs++
		case types.BlockListItem:
			report.ListItems++
		}
	}
	report.OutputLines = strings.Count(markdown, "\n") + 1
	report.OutputChars = len(markdown)

	return markdown, report
}

// File extracts inPath with x, converts it, and writes the Markdown to
// outPath. Extraction and write failures are fatal; there is no partial
// output.
func File(x extract.Extractor, inPath, outPath string, cfg types.PipelineConfig) (types.Report, error) {
	pages, err := x.Extract(inPath)
	if err != nil {
		return types.Report{}, fmt.Errorf("extracting %s: %w", inPath, err)
	}

	markdown, report := Markdown(pages, cfg)
	report.Input = inPath
	report.Output = outPath

	if err := os.WriteFile(outPath, []byte(markdown), 0o644); err != nil {
		return types.Report{}, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return report, nil
}

// WriteReport encodes the conversion report as YAML.
func WriteReport(w io.Writer, r types.Report) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// render turns the block sequence into Markdown text, one block per line;
// blank blocks become empty lines.
func render(blocks []types.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case types.BlockHeading:
			lines = append(lines, strings.Repeat("#", b.Level)+" "+b.Text)
		case types.BlockBlank:
			lines = append(lines, "")
		default:
			lines = append(lines, b.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pagemark/internal/convert"
	"github.com/pdiddy/pagemark/internal/extract"
	"github.com/pdiddy/pagemark/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert one document to structured Markdown",
	Long: `Convert extracts the per-page text of the input file, rejoins wrapped
paragraphs, strips running headers and footers, promotes headings and
list items, reformats table-of-contents pages, and writes the result
to the output path as Markdown.

The input may be a PDF or a plain-text file with form-feed page breaks;
by default the backend is picked from the file extension.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, outPath := args[0], args[1]

		if _, err := os.Stat(inPath); err != nil {
			return fmt.Errorf("input file %s: %w", inPath, err)
		}

		cfg := pipelineConfig()
		if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
			cfg.Extraction.Backend = types.ExtractionBackend(backend)
		}

		x, err := extract.ForPath(cfg.Extraction, inPath)
		if err != nil {
			return err
		}

		log.Debug().Str("input", inPath).Str("backend", string(cfg.Extraction.Backend)).Msg("starting conversion")

		report, err := convert.File(x, inPath, outPath, cfg)
		if err != nil {
			return err
		}

		if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
			f, err := os.Create(reportPath)
			if err != nil {
				return fmt.Errorf("creating report %s: %w", reportPath, err)
			}
			defer f.Close()
			if err := convert.WriteReport(f, report); err != nil {
				return fmt.Errorf("writing report %s: %w", reportPath, err)
			}
		}

		log.Info().
			Str("input", inPath).
			Str("output", outPath).
			Int("pages", report.Pages).
			Int("noise_lines", len(report.NoiseLines)).
			Int("toc_pages", report.TocPages).
			Int("headings", report.Headings).
			Int("paragraphs", report.Paragraphs).
			Int("list_items", report.ListItems).
			Int("output_lines", report.OutputLines).
			Int("output_chars", report.OutputChars).
			Msg("conversion complete")
		return nil
	},
}

// pipelineConfig overlays config-file and environment values on the
// pipeline defaults.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()
	if v := viper.GetString("extraction.backend"); v != "" {
		cfg.Extraction.Backend = types.ExtractionBackend(v)
	}
	if v := viper.GetInt("noise.min_count"); v > 0 {
		cfg.Noise.MinCount = v
	}
	if v := viper.GetInt("noise.max_len"); v > 0 {
		cfg.Noise.MaxLen = v
	}
	if v := viper.GetInt("toc.page_limit"); v > 0 {
		cfg.Toc.PageLimit = v
	}
	if v := viper.GetFloat64("toc.line_ratio"); v > 0 {
		cfg.Toc.LineRatio = v
	}
	return cfg
}

func init() {
	convertCmd.Flags().String("backend", "", "extraction backend: pdf, pdftotext, or text (default: by extension)")
	convertCmd.Flags().String("report", "", "write a YAML conversion report to this path")

	rootCmd.AddCommand(convertCmd)
}

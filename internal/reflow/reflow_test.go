// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package reflow

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/pagemark/internal/noise"
	"github.com/pdiddy/pagemark/pkg/types"
)

func newEngine(noiseLines ...string) *Engine {
	return New(noise.NewSet(noiseLines...), types.DefaultPipelineConfig().Toc)
}

// pagesOf wraps page texts in the order they would come from extraction.
func pagesOf(texts ...string) []types.Page {
	pages := make([]types.Page, len(texts))
	for i, t := range texts {
		pages[i] = types.Page{Index: i, Text: t}
	}
	return pages
}

func TestJoinDehyphenated(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{
			name: "hyphen break fuses",
			in:   []string{"hyphen-", "ated word"},
			want: "hyphenated word",
		},
		{
			name: "plain lines join with spaces",
			in:   []string{"one", "two", "three"},
			want: "one two three",
		},
		{
			name: "mixed",
			in:   []string{"the con-", "version keeps", "going"},
			want: "the conversion keeps going",
		},
		{
			name: "consecutive hyphen breaks",
			in:   []string{"ab-", "cd-", "ef"},
			want: "abcdef",
		},
		{
			name: "empty",
			in:   nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinDehyphenated(tt.in); got != tt.want {
				t.Errorf("JoinDehyphenated(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRun_ParagraphJoining(t *testing.T) {
	page := strings.Join([]string{
		"The first sentence starts here and",
		"continues on the next line.",
		"A second paragraph begins now.",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.Paragraph("The first sentence starts here and continues on the next line."),
		types.Blank,
		types.Paragraph("A second paragraph begins now."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_ParagraphSpansPageBoundary(t *testing.T) {
	pages := pagesOf(
		"This page ends in the middle of a",
		"sentence that finishes over here.",
	)

	blocks, _ := newEngine().Run(pages)

	want := []types.Block{
		types.Paragraph("This page ends in the middle of a sentence that finishes over here."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_DehyphenationAcrossPageBreak(t *testing.T) {
	pages := pagesOf("the word is hyphen-", "ated word and more text.")

	blocks, _ := newEngine().Run(pages)

	if len(blocks) != 1 || blocks[0].Text != "the word is hyphenated word and more text." {
		t.Errorf("unexpected blocks: %+v", blocks)
	}
}

func TestRun_HeadingFlushesParagraph(t *testing.T) {
	page := strings.Join([]string{
		"Some text before the heading ends.",
		"",
		"RESULTS AND FINDINGS",
		"Body continues afterward.",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.Paragraph("Some text before the heading ends."),
		types.Blank,
		types.Heading(2, "RESULTS AND FINDINGS"),
		types.Blank,
		types.Paragraph("Body continues afterward."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_ExistingMarkerStripped(t *testing.T) {
	blocks, _ := newEngine().Run(pagesOf("### Marked Heading"))

	want := []types.Block{
		types.Heading(3, "Marked Heading"),
		types.Blank,
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_NoiseLinesDropped(t *testing.T) {
	page := strings.Join([]string{
		"ACME Quarterly",
		"Real content stays in the output.",
		"Page 3",
	}, "\n")

	blocks, _ := newEngine("ACME Quarterly", "Page 3").Run(pagesOf(page))

	want := []types.Block{
		types.Paragraph("Real content stays in the output."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_BulletNormalized(t *testing.T) {
	page := strings.Join([]string{
		"* star bullet item.",
		"",
		"- dash bullet item.",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.ListItem("- star bullet item."),
		types.ListItem("- dash bullet item."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_NumberedMarkerPreserved(t *testing.T) {
	blocks, _ := newEngine().Run(pagesOf("1. first step\n2) second step"))

	want := []types.Block{
		types.ListItem("1. first step"),
		types.ListItem("2) second step"),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_ListAbsorbsWrappedContinuation(t *testing.T) {
	page := strings.Join([]string{
		"- a list item whose text wraps",
		"onto the following line",
		"- next item stands alone",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.ListItem("- a list item whose text wraps onto the following line"),
		types.ListItem("- next item stands alone"),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_ListAbsorptionSkipsNoise(t *testing.T) {
	page := strings.Join([]string{
		"- item text wraps across",
		"Page 9",
		"a running footer",
	}, "\n")

	blocks, _ := newEngine("Page 9").Run(pagesOf(page))

	want := []types.Block{
		types.ListItem("- item text wraps across a running footer"),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_ListAbsorbsUntilNextBullet(t *testing.T) {
	// Absorption is greedy: a trailing sentence that is neither a bullet
	// nor a heading still joins the item; the next bullet ends it.
	page := strings.Join([]string{
		"- the item ends with a period.",
		"A fresh sentence continuing the item.",
		"- another bullet follows",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.ListItem("- the item ends with a period. A fresh sentence continuing the item."),
		types.ListItem("- another bullet follows"),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_PlainTextClosesList(t *testing.T) {
	// A blank line ends the list; the following prose opens a paragraph.
	page := strings.Join([]string{
		"- only item here",
		"",
		"then this paragraph text follows on.",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.ListItem("- only item here"),
		types.Paragraph("then this paragraph text follows on."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_TocPage(t *testing.T) {
	tocText := strings.Join([]string{
		"Chapter One..........5",
		"Chapter Two..........19",
		"Appendix A...........120",
		"Preface  iii",
	}, "\n")

	blocks, tocPages := newEngine().Run(pagesOf(tocText))

	want := []types.Block{
		types.Blank,
		types.Heading(2, "Table of Contents"),
		types.Blank,
		types.TocEntry("5 ... Chapter One"),
		types.TocEntry("19 ... Chapter Two"),
		types.TocEntry("120 ... Appendix A"),
		types.TocEntry("iii ... Preface"),
		types.Blank,
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
	if tocPages != 1 {
		t.Errorf("tocPages = %d, want 1", tocPages)
	}
}

func TestRun_TocHeadingEmittedOnce(t *testing.T) {
	tocText := strings.Join([]string{
		"Chapter One..........5",
		"Chapter Two..........19",
	}, "\n")

	blocks, tocPages := newEngine().Run(pagesOf(tocText, tocText))

	if tocPages != 2 {
		t.Fatalf("tocPages = %d, want 2", tocPages)
	}
	headings := 0
	for _, b := range blocks {
		if b.Kind == types.BlockHeading && b.Text == "Table of Contents" {
			headings++
		}
	}
	if headings != 1 {
		t.Errorf("Table of Contents heading emitted %d times, want 1", headings)
	}
}

func TestRun_TocDetectionWindowEnds(t *testing.T) {
	tocText := strings.Join([]string{
		"Late Chapter.........5",
		"Later Chapter........19",
	}, "\n")

	// Page index 20 sits past the detection window, so the page reflows
	// as ordinary content even though it is TOC-dense.
	pages := make([]types.Page, 21)
	for i := 0; i < 20; i++ {
		pages[i] = types.Page{Index: i, Text: "Ordinary prose on this page ends."}
	}
	pages[20] = types.Page{Index: 20, Text: tocText}

	blocks, tocPages := newEngine().Run(pages)

	if tocPages != 0 {
		t.Fatalf("tocPages = %d, want 0 for a TOC past the window", tocPages)
	}
	for _, b := range blocks {
		if b.Kind == types.BlockTocEntry {
			t.Fatalf("unexpected TOC entry block: %+v", b)
		}
	}
}

func TestRun_TocPageFlushesOpenParagraph(t *testing.T) {
	pages := pagesOf(
		"An open paragraph without a terminator",
		"Chapter One..........5\nChapter Two..........19",
	)

	blocks, _ := newEngine().Run(pages)

	if len(blocks) == 0 || blocks[0] != types.Paragraph("An open paragraph without a terminator") {
		t.Fatalf("first block = %+v, want the flushed paragraph", blocks)
	}
}

func TestRun_ColonEndsParagraph(t *testing.T) {
	page := strings.Join([]string{
		"Consider the following:",
		"It begins a new paragraph.",
	}, "\n")

	blocks, _ := newEngine().Run(pagesOf(page))

	want := []types.Block{
		types.Paragraph("Consider the following:"),
		types.Blank,
		types.Paragraph("It begins a new paragraph."),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %+v, want %+v", blocks, want)
	}
}

func TestRun_EmptyDocument(t *testing.T) {
	blocks, tocPages := newEngine().Run(nil)
	if len(blocks) != 0 || tocPages != 0 {
		t.Errorf("empty input produced blocks=%v tocPages=%d", blocks, tocPages)
	}
}

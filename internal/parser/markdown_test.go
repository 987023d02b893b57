package parser

import (
	"context"
	"strings"
	"testing"

	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/outline"
)

func TestMarkdownParser_TitleAndOutline(t *testing.T) {
	src := `# User Guide

Some intro prose.

## Installation

### From Source

## Configuration

Body text here.
`
	p := &MarkdownParser{Opts: heading.DefaultOptions()}
	res, err := p.Parse(context.Background(), strings.NewReader(src), "guide.md")
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "User Guide" {
		t.Errorf("expected title %q, got %q", "User Guide", res.Title)
	}
	want := []outline.Entry{
		{Level: outline.LevelH2, Text: "Installation", Page: 1},
		{Level: outline.LevelH3, Text: "From Source", Page: 1},
		{Level: outline.LevelH2, Text: "Configuration", Page: 1},
	}
	if len(res.Outline) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), res.Outline)
	}
	for i, w := range want {
		if res.Outline[i] != w {
			t.Errorf("entry %d: got %+v, want %+v", i, res.Outline[i], w)
		}
	}
}

func TestMarkdownParser_SecondH1StaysInOutline(t *testing.T) {
	src := "# First\n\n# Second\n"
	p := &MarkdownParser{Opts: heading.DefaultOptions()}
	res, err := p.Parse(context.Background(), strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "First" {
		t.Errorf("expected title %q, got %q", "First", res.Title)
	}
	if len(res.Outline) != 1 || res.Outline[0] != (outline.Entry{Level: outline.LevelH1, Text: "Second", Page: 1}) {
		t.Errorf("expected second H1 in outline, got %+v", res.Outline)
	}
}

func TestMarkdownParser_DeepHeadingsClamped(t *testing.T) {
	src := "## Top\n\n#### Deep\n\n###### Deeper\n"
	p := &MarkdownParser{Opts: heading.DefaultOptions()}
	res, err := p.Parse(context.Background(), strings.NewReader(src), "doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Outline) != 3 {
		t.Fatalf("expected 3 entries, got %+v", res.Outline)
	}
	if res.Outline[1].Level != outline.LevelH3 || res.Outline[2].Level != outline.LevelH3 {
		t.Errorf("expected deep headings clamped to H3, got %+v", res.Outline)
	}
}

func TestMarkdownParser_NoHeadings(t *testing.T) {
	p := &MarkdownParser{Opts: heading.DefaultOptions()}
	res, err := p.Parse(context.Background(), strings.NewReader("just a paragraph\n"), "doc.md")
	if err != nil {
		t.Fatal(err)
	}
	if res.Title != "" || len(res.Outline) != 0 {
		t.Errorf("expected empty result, got %+v", res)
	}
	if res.Outline == nil {
		t.Error("outline must be non-nil")
	}
}

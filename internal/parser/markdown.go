package parser

import (
	"context"
	"io"
	"strings"

	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser extracts the outline from ATX/setext headings using
// goldmark. Markdown has no pages, so every entry reports page 1.
type MarkdownParser struct {
	Opts heading.Options
}

func (p *MarkdownParser) Parse(ctx context.Context, r io.Reader, filename string) (*outline.Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	res := outline.NewResult()
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(h.Text(src)))
		if title == "" {
			continue
		}
		// The first level-1 heading is the document title; the rest form
		// the outline.
		if h.Level == 1 && res.Title == "" && len(res.Outline) == 0 {
			res.Title = title
			continue
		}
		res.Outline = append(res.Outline, outline.Entry{
			Level: outline.ForLevel(h.Level, p.Opts.MaxLevels),
			Text:  title,
			Page:  1,
		})
	}
	return outline.Validate(res), nil
}

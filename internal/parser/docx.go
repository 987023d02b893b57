package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXParser extracts the outline from native Heading1-Heading6 paragraph
// styles; a Title-styled paragraph becomes the document title.
type DOCXParser struct {
	Opts heading.Options
}

func (p *DOCXParser) Parse(ctx context.Context, r io.Reader, filename string) (*outline.Result, error) {
	// go-docx needs a ReadSeeker + size, so write to a temp file.
	tmp, err := os.CreateTemp("", "docoutline-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	res := outline.NewResult()
	for _, item := range doc.Document.Body.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		style := paragraphStyle(para)
		if res.Title == "" && strings.EqualFold(style, "Title") {
			res.Title = text
			continue
		}
		if level := docxHeadingLevel(style); level > 0 {
			res.Outline = append(res.Outline, outline.Entry{
				Level: outline.ForLevel(level, p.Opts.MaxLevels),
				Text:  text,
				Page:  1,
			})
		}
	}
	return outline.Validate(res), nil
}

func paragraphStyle(para *docx.Paragraph) string {
	if para.Properties == nil || para.Properties.Style == nil {
		return ""
	}
	return para.Properties.Style.Val
}

func docxHeadingLevel(style string) int {
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch style[len("heading"):] {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

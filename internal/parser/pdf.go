package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dgallion1/docoutline/internal/geometry"
	"github.com/dgallion1/docoutline/internal/heading"
	"github.com/dgallion1/docoutline/internal/outline"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser turns a PDF into positioned line geometry and runs the heading
// analysis pipeline over it. Scanned or image-only pages yield no runs and
// therefore an empty outline.
type PDFParser struct {
	Opts heading.Options
}

const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

func (p *PDFParser) Parse(ctx context.Context, r io.Reader, filename string) (*outline.Result, error) {
	// ledongthuc/pdf requires a ReaderAt + size.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	doc, err := extractGeometry(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("extract pdf geometry: %w", err)
	}

	return heading.Analyze(doc, p.Opts), nil
}

// extractGeometry builds the page/line model from the raw PDF bytes. The
// underlying library panics on some malformed files, so the pass is guarded
// by a recover.
func extractGeometry(ctx context.Context, data []byte) (doc *geometry.Document, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	doc = &geometry.Document{}
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		content := page.Content()
		runs := make([]geometry.Run, 0, len(content.Text))
		for _, t := range content.Text {
			runs = append(runs, geometry.Run{
				Font: t.Font,
				Size: t.FontSize,
				X:    t.X,
				Y:    t.Y,
				W:    t.W,
				Text: t.S,
			})
		}

		doc.Pages = append(doc.Pages, &geometry.Page{
			Number: i,
			Width:  width,
			Height: height,
			Lines:  geometry.BuildLines(runs, i, height),
		})
	}
	return doc, nil
}

// pageSize reads the MediaBox, falling back to US Letter when it is absent
// or malformed.
func pageSize(page pdflib.Page) (w, h float64) {
	w, h = defaultPageWidth, defaultPageHeight
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() != 4 {
		return w, h
	}
	x0, y0 := box.Index(0).Float64(), box.Index(1).Float64()
	x1, y1 := box.Index(2).Float64(), box.Index(3).Float64()
	if x1 > x0 && y1 > y0 {
		w, h = x1-x0, y1-y0
	}
	return w, h
}

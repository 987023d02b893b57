package heading

import (
	"strings"

	"github.com/dgallion1/docoutline/internal/geometry"
)

// testLine builds a line the way the geometry stage would.
func testLine(page int, y0 float64, text string, size float64, bold bool) *geometry.Line {
	font := "Helvetica"
	if bold {
		font = "Helvetica-Bold"
	}
	return &geometry.Line{
		Page:  page,
		Text:  text,
		X0:    72,
		Y0:    y0,
		X1:    300,
		Y1:    y0 + size,
		Font:  font,
		Size:  size,
		Bold:  bold,
		Chars: len([]rune(text)),
		Words: len(strings.Fields(text)),
	}
}

func testPage(number int, height float64, lines ...*geometry.Line) *geometry.Page {
	return &geometry.Page{Number: number, Width: 612, Height: height, Lines: lines}
}

func testDoc(pages ...*geometry.Page) *geometry.Document {
	return &geometry.Document{Pages: pages}
}

package heading

import (
	"sort"
	"strings"

	"github.com/dgallion1/docoutline/internal/geometry"
	"github.com/dgallion1/docoutline/internal/outline"
)

// Assemble orders the labeled lines into reading order and emits the final
// result. Ordering is a total order: page ascending, vertical position
// ascending, parse order as the final tie-break.
func Assemble(title *geometry.Line, lines []*geometry.Line) *outline.Result {
	res := outline.NewResult()
	if title != nil {
		res.Title = strings.TrimSpace(StripLeaders(title.Text))
	}

	type ordered struct {
		line *geometry.Line
		idx  int
	}
	var headings []ordered
	for i, l := range lines {
		switch l.Level {
		case outline.LevelH1, outline.LevelH2, outline.LevelH3:
			headings = append(headings, ordered{line: l, idx: i})
		}
	}

	sort.Slice(headings, func(i, j int) bool {
		a, b := headings[i].line, headings[j].line
		if a.Page != b.Page {
			return a.Page < b.Page
		}
		if a.Y0 != b.Y0 {
			return a.Y0 < b.Y0
		}
		return headings[i].idx < headings[j].idx
	})

	for _, h := range headings {
		res.Outline = append(res.Outline, outline.Entry{
			Level: h.line.Level,
			Text:  strings.TrimSpace(StripLeaders(h.line.Text)),
			Page:  h.line.Page,
		})
	}
	return outline.Validate(res)
}

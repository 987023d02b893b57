package geometry

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/docoutline/internal/outline"
)

// Document is a parsed PDF as pages of styled text lines.
type Document struct {
	Pages []*Page
}

// Page holds the lines of one page in parse order.
type Page struct {
	Number int // 1-based
	Width  float64
	Height float64
	Lines  []*Line
}

// Line is a merged run of text sharing a baseline. Coordinates are
// top-down: Y0 is the top edge, Y1 the bottom, y increasing downward.
// Score and Level are attached by the analysis stages; everything else is
// fixed at construction.
type Line struct {
	Page  int
	Text  string
	X0    float64
	Y0    float64
	X1    float64
	Y1    float64
	Font  string
	Size  float64 // dominant size: char-weighted mode across runs
	Bold  bool
	Chars int
	Words int

	Score float64
	Level outline.Level
}

// Sig is a style signature: lines sharing a Sig are typographically
// equivalent for ranking purposes.
type Sig struct {
	Size   int
	Family string
	Bold   bool
}

// Sig returns the line's style signature.
func (l *Line) Sig() Sig {
	return Sig{
		Size:   int(math.Round(l.Size)),
		Family: FamilyClass(l.Font),
		Bold:   l.Bold,
	}
}

// AllLines returns every line of the document in parse order.
func (d *Document) AllLines() []*Line {
	var lines []*Line
	for _, p := range d.Pages {
		lines = append(lines, p.Lines...)
	}
	return lines
}

// Run is a positioned text run from the upstream PDF parser.
// X/Y are in PDF coordinates (y increasing upward, Y at the baseline).
type Run struct {
	Font string
	Size float64
	X    float64
	Y    float64
	W    float64
	Text string
}

const (
	baselineTolerance = 2.0 // points
	wordGapFactor     = 0.3 // fraction of font size that separates words
	defaultPageHeight = 792.0
)

// BuildLines merges runs into lines: runs whose baselines fall within a
// small tolerance form one line, ordered top-to-bottom then left-to-right.
// Runs with a missing font size and whitespace-only output are dropped.
func BuildLines(runs []Run, pageNum int, pageHeight float64) []*Line {
	if pageHeight <= 0 {
		pageHeight = defaultPageHeight
	}

	valid := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Size <= 0 || r.Text == "" {
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return nil
	}

	// Top of page first (PDF y grows upward), then reading order.
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Y != valid[j].Y {
			return valid[i].Y > valid[j].Y
		}
		return valid[i].X < valid[j].X
	})

	var lines []*Line
	var group []Run
	baseY := valid[0].Y

	flush := func() {
		if line := mergeGroup(group, pageNum, pageHeight); line != nil {
			lines = append(lines, line)
		}
		group = group[:0]
	}

	for _, r := range valid {
		if len(group) > 0 && math.Abs(r.Y-baseY) > baselineTolerance {
			flush()
			baseY = r.Y
		}
		group = append(group, r)
	}
	flush()

	return lines
}

// mergeGroup builds a single Line from runs sharing a baseline.
func mergeGroup(group []Run, pageNum int, pageHeight float64) *Line {
	if len(group) == 0 {
		return nil
	}

	sort.SliceStable(group, func(i, j int) bool { return group[i].X < group[j].X })

	var text strings.Builder
	sizeWeight := map[float64]int{}
	boldWeight, totalWeight := 0, 0
	x0, x1 := group[0].X, group[0].X
	baseY := group[0].Y

	prevEnd := math.Inf(-1)
	for _, r := range group {
		if text.Len() > 0 && r.X-prevEnd > wordGapFactor*r.Size && !strings.HasSuffix(text.String(), " ") {
			text.WriteByte(' ')
		}
		text.WriteString(r.Text)
		prevEnd = r.X + r.W

		weight := len([]rune(r.Text))
		sizeWeight[r.Size] += weight
		if IsBoldFont(r.Font) {
			boldWeight += weight
		}
		totalWeight += weight

		if r.X < x0 {
			x0 = r.X
		}
		if end := r.X + r.W; end > x1 {
			x1 = end
		}
		if r.Y < baseY {
			baseY = r.Y
		}
	}

	clean := strings.Join(strings.Fields(text.String()), " ")
	if clean == "" {
		return nil
	}

	size := dominantSize(sizeWeight)
	return &Line{
		Page:  pageNum,
		Text:  clean,
		X0:    x0,
		Y0:    pageHeight - (baseY + size),
		X1:    x1,
		Y1:    pageHeight - baseY,
		Font:  dominantFont(group),
		Size:  size,
		Bold:  boldWeight*2 > totalWeight,
		Chars: len([]rune(clean)),
		Words: len(strings.Fields(clean)),
	}
}

// dominantSize is the char-weighted mode; ties go to the larger size so the
// result is deterministic.
func dominantSize(weights map[float64]int) float64 {
	var best float64
	bestW := -1
	for size, w := range weights {
		if w > bestW || (w == bestW && size > best) {
			best, bestW = size, w
		}
	}
	return best
}

// dominantFont is the font of the run contributing the most characters,
// earliest run winning ties.
func dominantFont(group []Run) string {
	weights := map[string]int{}
	for _, r := range group {
		weights[r.Font] += len([]rune(r.Text))
	}
	best, bestW := "", -1
	for _, r := range group {
		if w := weights[r.Font]; w > bestW {
			best, bestW = r.Font, w
		}
	}
	return best
}

// IsBoldFont reports whether a font name indicates a bold weight.
func IsBoldFont(font string) bool {
	f := strings.ToLower(font)
	for _, marker := range []string{"bold", "black", "heavy", "demi", "semib"} {
		if strings.Contains(f, marker) {
			return true
		}
	}
	return false
}

// FamilyClass normalizes a font name to its family: subset prefixes like
// "ABCDEF+" and style suffixes after '-' or ',' are stripped.
func FamilyClass(font string) string {
	if i := strings.IndexByte(font, '+'); i == 6 && isSubsetTag(font[:6]) {
		font = font[7:]
	}
	if i := strings.IndexAny(font, "-,"); i > 0 {
		font = font[:i]
	}
	return strings.ToLower(strings.TrimSpace(font))
}

func isSubsetTag(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

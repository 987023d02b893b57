package heading

import (
	"math"
	"regexp"
	"strings"

	"github.com/dgallion1/docoutline/internal/geometry"
)

// Fraction of page height treated as the header/footer band.
const bandFraction = 0.10

var (
	leaderPattern   = regexp.MustCompile(`\s*[.…]{3,}\s*\d+\s*$`)
	digitRunPattern = regexp.MustCompile(`\d+`)
)

// StripLeaders removes a trailing TOC dot-fill and page number, e.g.
// "Overview ........... 12" becomes "Overview".
func StripLeaders(text string) string {
	return strings.TrimSpace(leaderPattern.ReplaceAllString(text, ""))
}

// FilterNoise removes repeating headers/footers and TOC artifacts across the
// whole document and returns the surviving lines in parse order. The
// header/footer decision needs global frequency counts, so this is a
// two-pass, whole-document stage.
func FilterNoise(doc *geometry.Document, opts Options) []*geometry.Line {
	opts = opts.withDefaults()

	type bandKey struct {
		text string
		band int
	}

	// Pass 1: count, per banded normalized text, the distinct pages it
	// appears on.
	pagesSeen := map[bandKey]map[int]bool{}
	keys := map[*geometry.Line]bandKey{}
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			band, ok := bandOf(line, page)
			if !ok {
				continue
			}
			k := bandKey{text: normalize(line.Text), band: band}
			keys[line] = k
			if pagesSeen[k] == nil {
				pagesSeen[k] = map[int]bool{}
			}
			pagesSeen[k][line.Page] = true
		}
	}

	// Present on ratio of pages, but three pages is always enough; two is
	// the floor so a one-off can never be a repeater.
	threshold := int(math.Ceil(opts.HeaderFooterRatio * float64(len(doc.Pages))))
	if threshold > 3 {
		threshold = 3
	}
	if threshold < 2 {
		threshold = 2
	}

	// Pass 2: drop repeaters and whole-line TOC leaders, clean partial ones.
	var kept []*geometry.Line
	for _, page := range doc.Pages {
		for _, line := range page.Lines {
			if k, ok := keys[line]; ok && len(pagesSeen[k]) >= threshold && len(page.Lines) > 1 {
				continue
			}
			stripped := StripLeaders(line.Text)
			if stripped == "" {
				continue
			}
			if stripped != line.Text {
				line.Text = stripped
				line.Chars = len([]rune(stripped))
				line.Words = len(strings.Fields(stripped))
			}
			kept = append(kept, line)
		}
	}
	return kept
}

// bandOf reports which band a line sits in: 0 for the top of the page,
// 1 for the bottom, ok=false when the line is in the main body area.
func bandOf(line *geometry.Line, page *geometry.Page) (int, bool) {
	h := page.Height
	if h <= 0 {
		return 0, false
	}
	switch {
	case line.Y0 < h*bandFraction:
		return 0, true
	case line.Y0 > h*(1-bandFraction):
		return 1, true
	}
	return 0, false
}

// normalize makes header/footer variants comparable: case and whitespace
// are folded and digit runs become '#' so "Page 3 of 10" matches
// "Page 7 of 10".
func normalize(text string) string {
	text = strings.ToLower(strings.Join(strings.Fields(text), " "))
	return digitRunPattern.ReplaceAllString(text, "#")
}

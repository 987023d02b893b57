package heading

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/dgallion1/docoutline/internal/geometry"
)

// Stats holds the document-wide scalars scoring depends on. Computed once
// per document from the surviving lines.
type Stats struct {
	BodySize float64
}

const fallbackBodySize = 10.0

var (
	topNumberPattern    = regexp.MustCompile(`^\d{1,2}[.):]?\s`)
	nestedNumberPattern = regexp.MustCompile(`^\d{1,2}(\.\d{1,2})+\.?\s`)
	namedSectionPattern = regexp.MustCompile(`^(Appendix|Chapter|Section|Part)\s+[A-Z0-9]`)
	romanNumeralPattern = regexp.MustCompile(`^[IVXLCDM]+\.\s`)
	bulletPattern       = regexp.MustCompile(`^[•\-*○‣▪·]`)
	abbrevPeriodPattern = regexp.MustCompile(`(\d|\b[A-Z])\.$`)
)

// Scoring weights. Chosen to satisfy the documented end-to-end scenarios;
// overridable thresholds live in Options.
const (
	sizeDeltaWeight   = 2.0
	sizeDeltaCap      = 8.0 // points of delta beyond which size stops helping
	boldBonus         = 4.0
	topNumberBonus    = 8.0
	nestedNumberBonus = 6.0
	veryShortBonus    = 2.0
	shortBonus        = 1.0
	capsBonus         = 1.5
	pageStartBonus    = 2.0
	paragraphFactor   = 0.3
	maxHeadingChars   = 100
)

// ComputeStats estimates the body text size. Prose-like lines (several
// words, not all caps) vote for the modal size; the percentile option
// switches to an order statistic over all line sizes.
func ComputeStats(lines []*geometry.Line, opts Options) Stats {
	opts = opts.withDefaults()

	if opts.BodyFontPercentile > 0 {
		return Stats{BodySize: sizePercentile(lines, opts.BodyFontPercentile)}
	}

	counts := map[float64]int{}
	for _, l := range lines {
		if l.Words > 5 && l.Words < 20 && !isAllCaps(l.Text) {
			counts[l.Size]++
		}
	}
	if len(counts) == 0 {
		for _, l := range lines {
			counts[l.Size]++
		}
	}
	if len(counts) == 0 {
		return Stats{BodySize: fallbackBodySize}
	}

	// Modal size; ties go to the smaller size (body text, not headings).
	best, bestN := 0.0, -1
	for size, n := range counts {
		if n > bestN || (n == bestN && size < best) {
			best, bestN = size, n
		}
	}
	return Stats{BodySize: best}
}

func sizePercentile(lines []*geometry.Line, pct float64) float64 {
	if len(lines) == 0 {
		return fallbackBodySize
	}
	sizes := make([]float64, 0, len(lines))
	for _, l := range lines {
		sizes = append(sizes, l.Size)
	}
	sort.Float64s(sizes)
	idx := int(pct * float64(len(sizes)-1))
	return sizes[idx]
}

// ScoreLines attaches a heading score to every line. Scoring is a pure
// function of the line, its immediate neighbors' style signatures, and the
// document stats.
func ScoreLines(lines []*geometry.Line, stats Stats, opts Options) {
	opts = opts.withDefaults()
	for i, l := range lines {
		var prev, next *geometry.Line
		if i > 0 {
			prev = lines[i-1]
		}
		if i < len(lines)-1 {
			next = lines[i+1]
		}
		l.Score = scoreLine(l, prev, next, stats, opts)
	}
}

func scoreLine(l, prev, next *geometry.Line, stats Stats, opts Options) float64 {
	text := l.Text

	// Hard rejections.
	switch {
	case l.Words == 0:
		return 0
	case l.Words > opts.MaxHeadingWords:
		return 0
	case l.Chars > maxHeadingChars:
		return 0
	case bulletPattern.MatchString(text):
		return 0
	case !hasLetter(text):
		return 0
	case l.Words == 1 && l.Chars > 25: // URLs, identifiers, garbage
		return 0
	case endsSentence(text, l.Words):
		return 0
	case l.Words <= 2 && strings.HasSuffix(text, ":"): // form field labels
		return 0
	}

	score := 0.0

	if delta := l.Size - stats.BodySize; delta > 0.5 {
		if delta > sizeDeltaCap {
			delta = sizeDeltaCap
		}
		score += delta * sizeDeltaWeight
	}

	if l.Bold {
		score += boldBonus
	}

	switch {
	case nestedNumberPattern.MatchString(text):
		score += nestedNumberBonus
	case topNumberPattern.MatchString(text),
		namedSectionPattern.MatchString(text),
		romanNumeralPattern.MatchString(text):
		score += topNumberBonus
	}

	switch {
	case l.Words <= 4:
		score += veryShortBonus
	case l.Words <= 8:
		score += shortBonus
	}

	if isAllCaps(text) || isTitleCase(text) {
		score += capsBonus
	}

	if prev == nil || prev.Page != l.Page {
		score += pageStartBonus
	}

	// A line sandwiched between same-style neighbors is part of a
	// paragraph block, not an isolated heading.
	if prev != nil && next != nil &&
		prev.Page == l.Page && next.Page == l.Page &&
		prev.Sig() == l.Sig() && next.Sig() == l.Sig() {
		score *= paragraphFactor
	}

	return score
}

// endsSentence reports a sentence-terminal period: a trailing '.' on a line
// long enough to be prose, excluding abbreviations and numbers like
// "etc." or "v2.".
func endsSentence(text string, words int) bool {
	if !strings.HasSuffix(text, ".") || words <= 3 {
		return false
	}
	return !abbrevPeriodPattern.MatchString(text)
}

// IsNumbered reports whether a line carries a structural numbering marker.
func IsNumbered(text string) bool {
	return topNumberPattern.MatchString(text) ||
		nestedNumberPattern.MatchString(text) ||
		namedSectionPattern.MatchString(text) ||
		romanNumeralPattern.MatchString(text)
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAllCaps(s string) bool {
	return hasLetter(s) && s == strings.ToUpper(s) && len(strings.Fields(s)) > 1
}

func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

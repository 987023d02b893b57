package heading

// Options control the analysis thresholds. Zero values fall back to the
// documented defaults, so an absent configuration changes nothing.
type Options struct {
	// MinHeadingScore is the minimum line score to become a candidate.
	MinHeadingScore float64
	// BodyFontPercentile, when set (0..1), estimates the body font size as
	// that percentile of the line size distribution instead of the mode.
	BodyFontPercentile float64
	// HeaderFooterRatio is the fraction of pages a banded line must repeat
	// on to be treated as a running header/footer.
	HeaderFooterRatio float64
	// MaxLevels caps the number of hierarchy levels (1..3).
	MaxLevels int
	// MaxHeadingWords is the word count above which a line is never a heading.
	MaxHeadingWords int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MinHeadingScore:   3.0,
		HeaderFooterRatio: 0.6,
		MaxLevels:         3,
		MaxHeadingWords:   15,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinHeadingScore <= 0 {
		o.MinHeadingScore = d.MinHeadingScore
	}
	if o.HeaderFooterRatio <= 0 || o.HeaderFooterRatio > 1 {
		o.HeaderFooterRatio = d.HeaderFooterRatio
	}
	if o.MaxLevels <= 0 || o.MaxLevels > 3 {
		o.MaxLevels = d.MaxLevels
	}
	if o.MaxHeadingWords <= 0 {
		o.MaxHeadingWords = d.MaxHeadingWords
	}
	if o.BodyFontPercentile < 0 || o.BodyFontPercentile >= 1 {
		o.BodyFontPercentile = 0
	}
	return o
}

package outline

// Level is a heading level in the extracted outline.
type Level string

const (
	LevelTitle Level = "Title"
	LevelH1    Level = "H1"
	LevelH2    Level = "H2"
	LevelH3    Level = "H3"
	LevelNone  Level = ""
)

// Entry is one heading in reading order.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the outline extracted from a single document. Title may be
// empty; an empty Outline is a valid result, not an error.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// NewResult returns an empty result with a non-nil outline slice so it
// serializes as [] rather than null.
func NewResult() *Result {
	return &Result{Outline: []Entry{}}
}

// ForLevel maps a numeric heading depth (1-based) to an outline level.
// Depths beyond max are clamped to the deepest allowed level.
func ForLevel(depth, max int) Level {
	if max <= 0 || max > 3 {
		max = 3
	}
	if depth < 1 {
		depth = 1
	}
	if depth > max {
		depth = max
	}
	switch depth {
	case 1:
		return LevelH1
	case 2:
		return LevelH2
	default:
		return LevelH3
	}
}

package outline

import "strings"

var validLevels = map[Level]bool{
	LevelH1: true,
	LevelH2: true,
	LevelH3: true,
}

// ValidateEntry checks an outline entry for validity. Returns true if valid.
// The Title level is deliberately excluded: titles live in Result.Title,
// never in the outline list.
func ValidateEntry(e *Entry) bool {
	if e == nil {
		return false
	}
	text := strings.TrimSpace(e.Text)
	if text == "" || len(text) > 500 {
		return false
	}
	if !validLevels[e.Level] {
		return false
	}
	if e.Page < 1 {
		return false
	}
	return true
}

// Validate drops invalid entries from a result in place and returns it.
func Validate(r *Result) *Result {
	if r == nil {
		return NewResult()
	}
	kept := r.Outline[:0]
	for i := range r.Outline {
		if ValidateEntry(&r.Outline[i]) {
			kept = append(kept, r.Outline[i])
		}
	}
	r.Outline = kept
	if r.Outline == nil {
		r.Outline = []Entry{}
	}
	return r
}

package heading

import (
	"sort"

	"github.com/dgallion1/docoutline/internal/geometry"
	"github.com/dgallion1/docoutline/internal/outline"
)

// styleGroup aggregates the candidate lines sharing one style signature.
type styleGroup struct {
	sig   geometry.Sig
	lines []*geometry.Line
	mean  float64
}

// Title promotion requires the top style to be at least this much larger
// than the next ranked style.
const titleSizeMargin = 2

// RankStyles converts scored candidates into hierarchy levels. Candidate
// lines are grouped by style signature, groups are ranked by size with
// boldness as tie-break, and the top ranked styles become H1..H3. A unique,
// un-numbered, page-1 style clearly larger than the rest is promoted to
// Title and returned separately. Deterministic: no randomized tie-breaks,
// by design a sort over explicit keys rather than numeric clustering.
func RankStyles(lines []*geometry.Line, stats Stats, opts Options) *geometry.Line {
	opts = opts.withDefaults()

	bySig := map[geometry.Sig]*styleGroup{}
	var order []*styleGroup
	for _, l := range lines {
		l.Level = outline.LevelNone
		if l.Score < opts.MinHeadingScore {
			continue
		}
		g := bySig[l.Sig()]
		if g == nil {
			g = &styleGroup{sig: l.Sig()}
			bySig[l.Sig()] = g
			order = append(order, g)
		}
		g.lines = append(g.lines, l)
	}

	var groups []*styleGroup
	for _, g := range order {
		var sum float64
		for _, l := range g.lines {
			sum += l.Score
		}
		g.mean = sum / float64(len(g.lines))
		if g.mean >= opts.MinHeadingScore {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return nil
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].sig, groups[j].sig
		if a.Size != b.Size {
			return a.Size > b.Size
		}
		if a.Bold != b.Bold {
			return a.Bold
		}
		return a.Family < b.Family
	})

	var title *geometry.Line
	if t, idx := promoteTitle(groups, stats); t != nil {
		title = t
		groups = append(groups[:idx], groups[idx+1:]...)
	}

	for i, g := range groups {
		if i >= opts.MaxLevels {
			break // styles ranked beyond the cap stay rejected
		}
		level := outline.ForLevel(i+1, opts.MaxLevels)
		for _, l := range g.lines {
			l.Level = level
		}
	}

	return title
}

// promoteTitle returns the single member of the top style group when it
// qualifies as the document title: unique document-wide, on page 1,
// un-numbered, and clearly larger than the next ranked style (or than body
// text when it is the only style). Ambiguity between equally ranked
// candidates resolves to the earliest page, largest size, shortest text.
func promoteTitle(groups []*styleGroup, stats Stats) (*geometry.Line, int) {
	top := groups[0]
	if len(top.lines) != 1 {
		return nil, 0
	}
	cand, candIdx := top.lines[0], 0
	if cand.Page != 1 || IsNumbered(cand.Text) {
		return nil, 0
	}

	// Tied top styles (same size and boldness) compete on size, then text
	// length; all qualifying candidates here are on page 1 already.
	for i, g := range groups[1:] {
		if g.sig.Size != top.sig.Size || g.sig.Bold != top.sig.Bold || len(g.lines) != 1 {
			continue
		}
		other := g.lines[0]
		if other.Page != 1 || IsNumbered(other.Text) {
			continue
		}
		if other.Size > cand.Size ||
			(other.Size == cand.Size && len(other.Text) < len(cand.Text)) {
			cand, candIdx = other, i+1
		}
	}

	// The title must be clearly larger than whatever will rank as H1, or
	// than body text when no other style survives.
	next := -1
	for i, g := range groups {
		if i != candIdx && g.sig.Size != top.sig.Size {
			next = i
			break
		}
	}
	if next >= 0 {
		if top.sig.Size < groups[next].sig.Size+titleSizeMargin {
			return nil, 0
		}
	} else if len(groups) > 1 {
		return nil, 0 // several styles tied at the top: no clear title
	} else if float64(top.sig.Size) < stats.BodySize+2*titleSizeMargin {
		return nil, 0
	}

	cand.Level = outline.LevelTitle
	return cand, candIdx
}

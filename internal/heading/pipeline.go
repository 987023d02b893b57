// Package heading extracts a logical heading hierarchy (Title, H1-H3) from
// the layout geometry of a parsed PDF. The analysis runs in four stages:
// document-wide noise filtering, per-line feature scoring, style-based rank
// assignment, and reading-order assembly. It is purely functional per
// document: no I/O, no shared state, deterministic output.
package heading

import (
	"github.com/dgallion1/docoutline/internal/geometry"
	"github.com/dgallion1/docoutline/internal/outline"
)

// Analyze runs the full analysis over one parsed document. It never fails:
// a degenerate document (no pages, no text, no visual heading signal)
// yields an empty outline, which is a correct result.
func Analyze(doc *geometry.Document, opts Options) *outline.Result {
	opts = opts.withDefaults()
	if doc == nil || len(doc.Pages) == 0 {
		return outline.NewResult()
	}

	lines := FilterNoise(doc, opts)
	if len(lines) == 0 {
		return outline.NewResult()
	}

	stats := ComputeStats(lines, opts)
	ScoreLines(lines, stats, opts)
	title := RankStyles(lines, stats, opts)
	return Assemble(title, lines)
}

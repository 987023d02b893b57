package heading

import (
	"testing"

	"github.com/dgallion1/docoutline/internal/geometry"
	"github.com/dgallion1/docoutline/internal/outline"
)

func rankLines(t *testing.T, stats Stats, lines ...*geometry.Line) *geometry.Line {
	t.Helper()
	ScoreLines(lines, stats, DefaultOptions())
	return RankStyles(lines, stats, DefaultOptions())
}

func TestRankStyles_AssignsLevelsBySizeThenBoldness(t *testing.T) {
	h1 := testLine(1, 100, "Major Section Heading", 18, true)
	h1b := testLine(2, 100, "Second Major Heading", 18, true)
	h2 := testLine(1, 200, "Minor Section Heading", 14, true)
	h3 := testLine(1, 300, "Detail Level Heading", 14, false)

	title := rankLines(t, Stats{BodySize: 11}, h1, h1b, h2, h3)
	if title != nil {
		t.Fatalf("expected no title when the top style repeats, got %q", title.Text)
	}
	if h1.Level != outline.LevelH1 || h1b.Level != outline.LevelH1 {
		t.Errorf("expected H1, got %q and %q", h1.Level, h1b.Level)
	}
	if h2.Level != outline.LevelH2 {
		t.Errorf("expected bold 14pt as H2, got %q", h2.Level)
	}
	if h3.Level != outline.LevelH3 {
		t.Errorf("expected regular 14pt as H3, got %q", h3.Level)
	}
}

func TestRankStyles_StylesBeyondMaxLevelsRejected(t *testing.T) {
	lines := []*geometry.Line{
		testLine(1, 100, "Alpha Level Heading", 20, true),
		testLine(1, 150, "Beta Level Heading", 17, true),
		testLine(1, 200, "Gamma Level Heading", 15, true),
		testLine(1, 250, "Delta Level Heading", 13, true),
	}
	// Two members per style so none qualifies as a unique title.
	extra := []*geometry.Line{
		testLine(2, 100, "Alpha Again Heading", 20, true),
		testLine(2, 150, "Beta Again Heading", 17, true),
		testLine(2, 200, "Gamma Again Heading", 15, true),
		testLine(2, 250, "Delta Again Heading", 13, true),
	}
	all := append(lines, extra...)
	ScoreLines(all, Stats{BodySize: 11}, DefaultOptions())
	RankStyles(all, Stats{BodySize: 11}, DefaultOptions())

	if lines[3].Level != outline.LevelNone {
		t.Errorf("expected fourth style rejected, got %q", lines[3].Level)
	}
	if lines[2].Level != outline.LevelH3 {
		t.Errorf("expected third style as H3, got %q", lines[2].Level)
	}
}

func TestRankStyles_PromotesUniqueOversizedPageOneTitle(t *testing.T) {
	titleLine := testLine(1, 80, "Municipal Water Quality Report", 24, true)
	h1a := testLine(1, 200, "1. Introduction", 16, true)
	h1b := testLine(2, 100, "2. Methodology", 16, true)

	title := rankLines(t, Stats{BodySize: 11}, titleLine, h1a, h1b)
	if title == nil {
		t.Fatal("expected a title to be promoted")
	}
	if title.Text != "Municipal Water Quality Report" {
		t.Errorf("unexpected title %q", title.Text)
	}
	if title.Level != outline.LevelTitle {
		t.Errorf("expected Title level, got %q", title.Level)
	}
	if h1a.Level != outline.LevelH1 || h1b.Level != outline.LevelH1 {
		t.Errorf("expected numbered sections as H1, got %q and %q", h1a.Level, h1b.Level)
	}
}

func TestRankStyles_NumberedLineNeverPromotedToTitle(t *testing.T) {
	big := testLine(1, 80, "1. Introduction", 16, true)
	small := testLine(1, 200, "1.1 Background", 13, true)

	title := rankLines(t, Stats{BodySize: 11}, big, small)
	if title != nil {
		t.Fatalf("expected no title for numbered top style, got %q", title.Text)
	}
	if big.Level != outline.LevelH1 {
		t.Errorf("expected H1, got %q", big.Level)
	}
	if small.Level != outline.LevelH2 {
		t.Errorf("expected H2, got %q", small.Level)
	}
}

func TestRankStyles_NoTitleWithoutSizeMargin(t *testing.T) {
	// 15pt over 14pt is not "significantly larger": no title.
	a := testLine(1, 80, "Close Call Heading", 15, true)
	b := testLine(1, 200, "Nearby Other Heading", 14, true)
	c := testLine(2, 100, "Nearby Third Heading", 14, true)

	title := rankLines(t, Stats{BodySize: 11}, a, b, c)
	if title != nil {
		t.Fatalf("expected no title promotion within margin, got %q", title.Text)
	}
	if a.Level != outline.LevelH1 {
		t.Errorf("expected H1 for top style, got %q", a.Level)
	}
}

func TestRankStyles_AmbiguousTitleResolvedByShortestText(t *testing.T) {
	// Two distinct page-1 styles tied at the same size and boldness:
	// the shorter text wins deterministically.
	long := testLine(1, 80, "An Extended Subtitle Of Considerable Length", 24, true)
	long.Font = "Georgia-Bold"
	short := testLine(1, 60, "Annual Report", 24, true)
	h1 := testLine(2, 100, "Findings And Analysis", 14, true)
	h1b := testLine(3, 100, "Recommendations Overview", 14, true)

	ScoreLines([]*geometry.Line{short, long, h1, h1b}, Stats{BodySize: 11}, DefaultOptions())
	title := RankStyles([]*geometry.Line{short, long, h1, h1b}, Stats{BodySize: 11}, DefaultOptions())
	if title == nil {
		t.Fatal("expected a title")
	}
	if title.Text != "Annual Report" {
		t.Errorf("expected shortest tied candidate, got %q", title.Text)
	}
}

func TestRankStyles_NoCandidates(t *testing.T) {
	body := testLine(1, 100, "Just a body sentence that ends with a period.", 11, false)
	title := rankLines(t, Stats{BodySize: 11}, body)
	if title != nil {
		t.Fatalf("expected no title, got %q", title.Text)
	}
	if body.Level != outline.LevelNone {
		t.Errorf("expected no level, got %q", body.Level)
	}
}

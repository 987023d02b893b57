package geometry

import (
	"testing"
)

func TestBuildLines_MergesRunsOnSameBaseline(t *testing.T) {
	runs := []Run{
		{Font: "Helvetica", Size: 12, X: 72, Y: 700, W: 60, Text: "Quarterly"},
		{Font: "Helvetica", Size: 12, X: 140, Y: 700.5, W: 50, Text: "Report"},
	}
	lines := BuildLines(runs, 1, 792)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Text != "Quarterly Report" {
		t.Errorf("expected merged text %q, got %q", "Quarterly Report", lines[0].Text)
	}
	if lines[0].Words != 2 {
		t.Errorf("expected 2 words, got %d", lines[0].Words)
	}
}

func TestBuildLines_SeparatesDistantBaselines(t *testing.T) {
	runs := []Run{
		{Font: "Helvetica", Size: 12, X: 72, Y: 700, W: 60, Text: "First"},
		{Font: "Helvetica", Size: 12, X: 72, Y: 680, W: 60, Text: "Second"},
	}
	lines := BuildLines(runs, 1, 792)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	// Higher PDF y = closer to top = first in reading order.
	if lines[0].Text != "First" || lines[1].Text != "Second" {
		t.Errorf("unexpected reading order: %q, %q", lines[0].Text, lines[1].Text)
	}
	if lines[0].Y0 >= lines[1].Y0 {
		t.Errorf("expected top-down Y0 ordering, got %f >= %f", lines[0].Y0, lines[1].Y0)
	}
}

func TestBuildLines_DominantSizeIsCharWeightedMode(t *testing.T) {
	// A large drop cap followed by many body-size characters: the body
	// size must win.
	runs := []Run{
		{Font: "Helvetica", Size: 24, X: 72, Y: 700, W: 14, Text: "O"},
		{Font: "Helvetica", Size: 11, X: 88, Y: 700, W: 150, Text: "nce upon a time there was"},
	}
	lines := BuildLines(runs, 1, 792)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Size != 11 {
		t.Errorf("expected dominant size 11, got %g", lines[0].Size)
	}
}

func TestBuildLines_BoldMajorityVote(t *testing.T) {
	runs := []Run{
		{Font: "Helvetica-Bold", Size: 12, X: 72, Y: 700, W: 100, Text: "Mostly bold text"},
		{Font: "Helvetica", Size: 12, X: 180, Y: 700, W: 20, Text: "not"},
	}
	lines := BuildLines(runs, 1, 792)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if !lines[0].Bold {
		t.Error("expected majority-bold line to be bold")
	}
}

func TestBuildLines_DropsMalformedAndWhitespaceRuns(t *testing.T) {
	runs := []Run{
		{Font: "Helvetica", Size: 0, X: 72, Y: 700, W: 60, Text: "no size"},
		{Font: "Helvetica", Size: 12, X: 72, Y: 650, W: 10, Text: "   "},
	}
	lines := BuildLines(runs, 1, 792)
	if len(lines) != 0 {
		t.Fatalf("expected 0 lines, got %d", len(lines))
	}
}

func TestBuildLines_Empty(t *testing.T) {
	if lines := BuildLines(nil, 1, 792); lines != nil {
		t.Fatalf("expected nil for no runs, got %d lines", len(lines))
	}
}

func TestSig_GroupsEquivalentStyles(t *testing.T) {
	a := &Line{Font: "ABCDEF+Helvetica-Bold", Size: 14.2, Bold: true}
	b := &Line{Font: "Helvetica-BoldOblique", Size: 13.8, Bold: true}
	if a.Sig() != b.Sig() {
		t.Errorf("expected equal signatures, got %+v and %+v", a.Sig(), b.Sig())
	}
	c := &Line{Font: "Helvetica", Size: 14.0, Bold: false}
	if a.Sig() == c.Sig() {
		t.Error("expected bold and regular signatures to differ")
	}
}

func TestFamilyClass(t *testing.T) {
	cases := []struct {
		font string
		want string
	}{
		{"Helvetica-Bold", "helvetica"},
		{"ABCDEF+TimesNewRoman", "timesnewroman"},
		{"Arial,Bold", "arial"},
		{"Courier", "courier"},
	}
	for _, c := range cases {
		if got := FamilyClass(c.font); got != c.want {
			t.Errorf("FamilyClass(%q) = %q, want %q", c.font, got, c.want)
		}
	}
}

func TestIsBoldFont(t *testing.T) {
	for _, font := range []string{"Helvetica-Bold", "Arial Black", "Roboto-Heavy", "Futura-SemiBold"} {
		if !IsBoldFont(font) {
			t.Errorf("expected %q to be bold", font)
		}
	}
	for _, font := range []string{"Helvetica", "Times-Italic"} {
		if IsBoldFont(font) {
			t.Errorf("expected %q to not be bold", font)
		}
	}
}

func TestAllLines_ParseOrder(t *testing.T) {
	doc := &Document{Pages: []*Page{
		{Number: 1, Lines: []*Line{{Page: 1, Text: "a"}, {Page: 1, Text: "b"}}},
		{Number: 2, Lines: []*Line{{Page: 2, Text: "c"}}},
	}}
	all := doc.AllLines()
	if len(all) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(all))
	}
	if all[0].Text != "a" || all[2].Text != "c" {
		t.Error("expected parse order to be preserved")
	}
}

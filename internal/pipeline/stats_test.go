package pipeline

import (
	"testing"
	"time"
)

func TestAnalysisStats_Empty(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 {
		t.Errorf("expected count 0, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero aggregates, got %+v", snap)
	}
}

func TestAnalysisStats_Aggregates(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40, 50} {
		s.Record(ms)
	}
	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count 5, got %d", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 50 {
		t.Errorf("expected min 10 max 50, got %d %d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 30 {
		t.Errorf("expected avg 30, got %g", snap.AvgMs)
	}
	if snap.P50Ms != 30 {
		t.Errorf("expected p50 30, got %g", snap.P50Ms)
	}
}

func TestAnalysisStats_NegativeClampedToZero(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	s.Record(-5)
	snap := s.Snapshot()
	if snap.Count != 1 || snap.MinMs != 0 {
		t.Errorf("expected one zero sample, got %+v", snap)
	}
}

func TestAnalysisStats_PrunesOldSamples(t *testing.T) {
	s := NewAnalysisStats(50 * time.Millisecond)
	s.Record(100)
	time.Sleep(80 * time.Millisecond)
	s.Record(200)
	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected old sample pruned, got count %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Errorf("expected surviving sample 200, got %d", snap.MinMs)
	}
}

func TestPercentile_Interpolates(t *testing.T) {
	values := []int64{10, 20, 30, 40}
	if got := percentile(values, 50); got != 25 {
		t.Errorf("expected p50 25, got %g", got)
	}
	if got := percentile(values, 0); got != 10 {
		t.Errorf("expected p0 10, got %g", got)
	}
	if got := percentile(values, 100); got != 40 {
		t.Errorf("expected p100 40, got %g", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("expected 0 for empty, got %g", got)
	}
}

package runner

import (
	"path/filepath"
	"strings"
	"testing"

	"scholarseek/internal/cache"
	"scholarseek/internal/importer"
	"scholarseek/internal/listing"
	"scholarseek/internal/store"
)

type stubCollector struct {
	candidates []listing.Candidate
	gotPages   int
}

func (c *stubCollector) Collect(keywords string, maxPages int) []listing.Candidate {
	c.gotPages = maxPages
	return c.candidates
}

func newTestRunner(t *testing.T, collector Collector, summaries *cache.Cache) *Runner {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return New(collector, importer.New(st), summaries)
}

func TestRunImportsCandidates(t *testing.T) {
	collector := &stubCollector{candidates: []listing.Candidate{
		{Title: "PhD in Robotics", URL: "https://site/a", Source: "scholarshipdb.net"},
	}}
	r := newTestRunner(t, collector, nil)

	summary, err := r.Run("robotics", 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Processed != 1 || summary.Added != 1 {
		t.Errorf("summary = %+v, want processed=1 added=1", summary)
	}
}

func TestRunWithNoCandidatesIsNotAnError(t *testing.T) {
	r := newTestRunner(t, &stubCollector{}, nil)

	summary, err := r.Run("nothing", 1)
	if err != nil {
		t.Fatalf("empty aggregation must not error: %v", err)
	}
	if summary.Processed != 0 || summary.Added != 0 {
		t.Errorf("summary = %+v, want zero counts", summary)
	}
	if summary.Message == "" {
		t.Error("expected an informational message for an empty run")
	}
}

func TestRunClampsPageBounds(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-3, 1},
		{3, 3},
		{9, 5},
	}
	for _, tt := range tests {
		collector := &stubCollector{}
		r := newTestRunner(t, collector, nil)
		if _, err := r.Run("x", tt.in); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if collector.gotPages != tt.want {
			t.Errorf("maxPages %d clamped to %d, want %d", tt.in, collector.gotPages, tt.want)
		}
	}
}

func TestRunPublishesSummary(t *testing.T) {
	summaries := cache.New(filepath.Join(t.TempDir(), "cache.json"))
	collector := &stubCollector{candidates: []listing.Candidate{
		{Title: "PhD in Robotics", URL: "https://site/a", Source: "scholarshipdb.net"},
	}}
	r := newTestRunner(t, collector, summaries)

	if _, err := r.Run("robotics", 1); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	text, ok := summaries.Get(SummaryKey)
	if !ok {
		t.Fatal("run summary was not cached")
	}
	if !strings.Contains(text, "1 new listings added") {
		t.Errorf("cached summary = %q", text)
	}
}

func TestRunFailsWhenUnconfigured(t *testing.T) {
	r := New(nil, nil, nil)
	if _, err := r.Run("x", 1); err == nil {
		t.Error("expected a failure result for a misconfigured runner")
	}
}

package source

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"scholarseek/internal/listing"
)

// stubExtractor emits a fixed candidate list for every page.
type stubExtractor struct {
	name       string
	candidates []listing.Candidate
}

func (s *stubExtractor) Name() string { return s.name }

func (s *stubExtractor) PageURL(keywords string, page int) string {
	return fmt.Sprintf("https://%s/search?q=%s&page=%d", s.name, keywords, page)
}

func (s *stubExtractor) Parse(html string) []listing.Candidate { return s.candidates }

// stubFetcher records requested URLs and can fail selectively.
type stubFetcher struct {
	urls    []string
	failFor string
}

func (f *stubFetcher) Fetch(url string) (string, error) {
	f.urls = append(f.urls, url)
	if f.failFor != "" && strings.HasPrefix(url, f.failFor) {
		return "", errors.New("boom")
	}
	return "<html></html>", nil
}

func newTestAggregator(fetcher PageFetcher, extractors []Extractor) *Aggregator {
	a := NewAggregator(fetcher, extractors)
	a.pageDelay = func() time.Duration { return 0 }
	return a
}

func TestCollectDeduplicatesAcrossVariants(t *testing.T) {
	shared := listing.Candidate{Title: "PhD in Robotics", URL: "https://site/a", Source: "scholarshipdb.net"}
	other := listing.Candidate{Title: "Postdoc", URL: "https://site/b", Source: "scholarshipdb.net"}

	agg := newTestAggregator(&stubFetcher{}, []Extractor{
		&stubExtractor{name: "variant-one", candidates: []listing.Candidate{shared, other}},
		&stubExtractor{name: "variant-two", candidates: []listing.Candidate{shared}},
	})

	got := agg.Collect("robotics", 1)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique candidates, got %d", len(got))
	}

	// First-seen order is preserved.
	if got[0].URL != "https://site/a" || got[1].URL != "https://site/b" {
		t.Errorf("unexpected order: %v", got)
	}

	// Dedup invariant: no two retained candidates share a non-empty URL.
	seen := make(map[string]bool)
	for _, c := range got {
		if c.URL == "" {
			continue
		}
		if seen[c.URL] {
			t.Errorf("duplicate url retained: %s", c.URL)
		}
		seen[c.URL] = true
	}
}

func TestCollectPassesThroughInvalidURLs(t *testing.T) {
	noURL := listing.Candidate{Title: "Mystery listing"}
	agg := newTestAggregator(&stubFetcher{}, []Extractor{
		&stubExtractor{name: "one", candidates: []listing.Candidate{noURL}},
		&stubExtractor{name: "two", candidates: []listing.Candidate{noURL}},
	})

	got := agg.Collect("x", 1)
	if len(got) != 2 {
		t.Errorf("candidates without URLs must pass through undeduplicated, got %d", len(got))
	}
}

func TestCollectFetchesRequestedPages(t *testing.T) {
	fetcher := &stubFetcher{}
	agg := newTestAggregator(fetcher, []Extractor{
		&stubExtractor{name: "one"},
	})

	agg.Collect("x", 3)
	if len(fetcher.urls) != 3 {
		t.Fatalf("expected 3 page fetches, got %d: %v", len(fetcher.urls), fetcher.urls)
	}
	if fetcher.urls[2] != "https://one/search?q=x&page=3" {
		t.Errorf("unexpected final page url: %s", fetcher.urls[2])
	}
}

func TestCollectSkipsFailedSource(t *testing.T) {
	keep := listing.Candidate{Title: "Kept", URL: "https://ok/a"}
	fetcher := &stubFetcher{failFor: "https://bad"}
	agg := newTestAggregator(fetcher, []Extractor{
		&stubExtractor{name: "bad", candidates: []listing.Candidate{{Title: "Lost", URL: "https://bad/x"}}},
		&stubExtractor{name: "ok", candidates: []listing.Candidate{keep}},
	})

	got := agg.Collect("x", 1)
	if len(got) != 1 || got[0].URL != "https://ok/a" {
		t.Errorf("expected only the healthy source's candidate, got %v", got)
	}
}

func TestDefaultsConfiguration(t *testing.T) {
	extractors := Defaults()
	if len(extractors) != 3 {
		t.Fatalf("expected 3 extractor configurations, got %d", len(extractors))
	}

	names := make(map[string]int)
	for _, ex := range extractors {
		names[ex.Name()]++
	}
	if names["scholarshipdb.net"] != 2 {
		t.Errorf("expected two scholarshipdb.net variants, got %d", names["scholarshipdb.net"])
	}
	if names["jobs.ac.uk"] != 1 {
		t.Errorf("expected one jobs.ac.uk extractor, got %d", names["jobs.ac.uk"])
	}
}

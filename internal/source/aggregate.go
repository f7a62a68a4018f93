package source

import (
	"math/rand"
	"time"

	"scholarseek/internal/listing"
	"scholarseek/internal/logger"
)

// PageFetcher retrieves raw HTML for a listing page URL.
type PageFetcher interface {
	Fetch(url string) (string, error)
}

// Aggregator runs every configured extractor across its result pages,
// concatenates the candidates, and drops exact URL duplicates within the
// run. Pages are fetched sequentially with a short randomized delay between
// successive pages of the same source.
type Aggregator struct {
	fetcher    PageFetcher
	extractors []Extractor
	pageDelay  func() time.Duration
}

// NewAggregator creates an Aggregator over the given extractors.
func NewAggregator(fetcher PageFetcher, extractors []Extractor) *Aggregator {
	return &Aggregator{
		fetcher:    fetcher,
		extractors: extractors,
		pageDelay:  politenessDelay,
	}
}

// politenessDelay returns 1-2s, jittered so successive page requests to the
// same site are not evenly spaced.
func politenessDelay() time.Duration {
	return time.Second + time.Duration(rand.Int63n(int64(time.Second)))
}

// Collect fetches and extracts candidates from every extractor for pages
// 1..maxPages, then deduplicates by URL preserving first-seen order.
// Candidates without a valid URL pass through unfiltered; the importer's
// own checks handle those. A failed or empty page is skipped, never fatal.
func (a *Aggregator) Collect(keywords string, maxPages int) []listing.Candidate {
	if maxPages < 1 {
		maxPages = 1
	}

	all := make([]listing.Candidate, 0)
	for _, ex := range a.extractors {
		for page := 1; page <= maxPages; page++ {
			if page > 1 {
				time.Sleep(a.pageDelay())
			}

			pageURL := ex.PageURL(keywords, page)
			html, err := a.fetcher.Fetch(pageURL)
			if err != nil {
				logger.Warn("page fetch failed, skipping", logger.Fields{
					"source": ex.Name(),
					"page":   page,
					"url":    pageURL,
				})
				continue
			}
			logger.IncrCounter("pages.fetched")

			found := ex.Parse(html)
			if len(found) == 0 && page == 1 {
				// First page of a source yielding nothing usually means the
				// site changed its markup, not that there are no listings.
				logger.Warn("no listing blocks matched on first page", logger.Fields{
					"source": ex.Name(),
					"url":    pageURL,
				})
			}
			all = append(all, found...)
		}
	}

	return dedupeByURL(all)
}

// dedupeByURL keeps at most one candidate per distinct non-empty URL,
// preserving first-seen order. Candidates with an invalid URL are kept;
// they cannot be keyed here.
func dedupeByURL(candidates []listing.Candidate) []listing.Candidate {
	seen := make(map[string]bool)
	unique := make([]listing.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !listing.ValidURL(c.URL) {
			unique = append(unique, c)
			continue
		}
		if seen[c.URL] {
			continue
		}
		seen[c.URL] = true
		unique = append(unique, c)
	}
	return unique
}

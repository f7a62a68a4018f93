package source

import (
	"scholarseek/internal/listing"
)

// Extractor is one configured source variant: it knows how to build page
// URLs for a keyword search and how to parse one page of results. A source
// site with multiple listing paths is represented as multiple Extractors
// sharing the same parsing logic.
type Extractor interface {
	// Name returns the source tag recorded on extracted candidates,
	// e.g. "scholarshipdb.net".
	Name() string

	// PageURL builds the absolute URL for the given keyword query and
	// 1-based page number.
	PageURL(keywords string, page int) string

	// Parse extracts candidates from one page of HTML. Malformed markup is
	// parsed best-effort; a page with no matching listing blocks yields an
	// empty slice, never an error.
	Parse(html string) []listing.Candidate
}

// Defaults returns the standard extractor set: both scholarshipdb.net
// variants and jobs.ac.uk.
func Defaults() []Extractor {
	return []Extractor{
		NewScholarshipDB(),
		NewScholarshipDBEU(),
		NewJobsAcUk(),
	}
}

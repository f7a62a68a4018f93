// Package listing defines the candidate record produced by source
// extractors and the date normalization rules applied before import.
//
// A Candidate is transient: it exists between extraction and import, and is
// discarded unless it carries a title and a syntactically valid absolute
// URL. Date normalization is best-effort; unrecognized date text flows
// through as sanitized raw text rather than an error.
package listing

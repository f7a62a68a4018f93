// Package importer persists aggregated candidates as store listings.
//
// Import is idempotent per URL: a candidate whose scholarship_url already
// exists in the store is counted as processed and skipped, never updated.
// Each new listing gets its metadata attached and exactly one provenance
// category, created on first use.
package importer

// Package runner orchestrates one ingestion run: aggregation across all
// configured sources, import into the content store, and publication of the
// run summary. Both the periodic scheduler and the manual trigger call the
// same Run method.
package runner

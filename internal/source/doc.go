// Package source provides the per-site listing extractors and the
// aggregator that runs them.
//
// Each Extractor pairs a page URL builder with a fixed-selector goquery
// parser for one source variant; scholarshipdb.net contributes two variants
// (international and EU paths) sharing one parser, jobs.ac.uk contributes
// one. The Aggregator fetches pages sequentially with a politeness delay,
// merges the candidates, and removes exact URL duplicates within the run.
package source

// Package schedule provides a minimal named-callback scheduler over a fixed
// set of recurrence intervals. The daemon registers the ingestion run under
// one name; re-registering replaces the prior schedule and "never" clears
// it.
package schedule

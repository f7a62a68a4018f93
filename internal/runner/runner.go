package runner

import (
	"fmt"
	"time"

	"scholarseek/internal/cache"
	"scholarseek/internal/importer"
	"scholarseek/internal/listing"
	"scholarseek/internal/logger"
)

// SummaryKey is the cache key under which the last run summary is published.
const SummaryKey = "last_run_summary"

// Page bounds accepted from both callers; out-of-range values are clamped
// so scheduled and manual triggers behave identically.
const (
	MinPages = 1
	MaxPages = 5
)

// Collector yields aggregated, deduplicated candidates for one run.
type Collector interface {
	Collect(keywords string, maxPages int) []listing.Candidate
}

// Runner is the single entry point for one ingestion run, shared by the
// scheduler and the manual trigger.
type Runner struct {
	collector Collector
	importer  *importer.Importer
	summaries *cache.Cache
}

// New creates a Runner. summaries may be nil when no operator cache is
// configured.
func New(collector Collector, imp *importer.Importer, summaries *cache.Cache) *Runner {
	return &Runner{
		collector: collector,
		importer:  imp,
		summaries: summaries,
	}
}

// Run executes one fetch, extract, aggregate, import cycle and returns its
// summary. An empty aggregation result is informational, not an error; an
// error return means the run could not start at all.
func (r *Runner) Run(keywords string, maxPages int) (importer.RunSummary, error) {
	if r.collector == nil || r.importer == nil {
		return importer.RunSummary{}, fmt.Errorf("runner not fully configured: collector and importer are required")
	}

	if maxPages < MinPages {
		maxPages = MinPages
	}
	if maxPages > MaxPages {
		maxPages = MaxPages
	}

	start := time.Now()
	logger.Info("run started", logger.Fields{"keywords": keywords, "max_pages": maxPages})

	candidates := r.collector.Collect(keywords, maxPages)

	var summary importer.RunSummary
	if len(candidates) == 0 {
		summary = importer.RunSummary{Message: "no candidates found"}
	} else {
		summary = r.importer.ImportAll(candidates)
	}

	logger.RecordTiming("run.duration", time.Since(start))
	logger.Info("run finished", logger.Fields{
		"processed": summary.Processed,
		"added":     summary.Added,
	})

	r.publish(summary)
	return summary, nil
}

// publish caches the summary for operator display. Failures here never
// affect the run result.
func (r *Runner) publish(summary importer.RunSummary) {
	if r.summaries == nil {
		return
	}
	if err := r.summaries.Set(SummaryKey, summary.String()); err != nil {
		logger.Warn("could not cache run summary", logger.Fields{"reason": err.Error()})
	}
}

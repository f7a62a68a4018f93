package importer

import (
	"fmt"
	"time"

	"scholarseek/internal/listing"
	"scholarseek/internal/logger"
	"scholarseek/internal/store"
)

// Category labels by source tag. Unknown sources fall back to the generic
// label.
var categoryLabels = map[string]string{
	"scholarshipdb.net": "ScholarshipDB Import",
	"jobs.ac.uk":        "Jobs.ac.uk Import",
}

const defaultCategoryLabel = "Scholarship Import"

// CategoryLabel returns the provenance category display name for a source tag.
func CategoryLabel(source string) string {
	if label, ok := categoryLabels[source]; ok {
		return label
	}
	return defaultCategoryLabel
}

// RunSummary reports the outcome of one import pass.
type RunSummary struct {
	Processed int    `json:"processed"`
	Added     int    `json:"added"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// String renders the summary as one operator-facing line.
func (s RunSummary) String() string {
	text := fmt.Sprintf("%d candidates processed, %d new listings added", s.Processed, s.Added)
	if s.Message != "" {
		text += " (" + s.Message + ")"
	}
	if s.Error != "" {
		text += " [error: " + s.Error + "]"
	}
	return text
}

// Importer writes validated candidates into the content store.
type Importer struct {
	store *store.Store
	now   func() time.Time
}

// New creates an Importer over the given store.
func New(st *store.Store) *Importer {
	return &Importer{store: st, now: time.Now}
}

// ImportAll imports every candidate that carries a title and a valid URL
// and is not already stored under the same scholarship_url. Re-running with
// the same candidates creates nothing; rediscovered listings are never
// updated, even when source-side fields (e.g. an extended deadline) have
// changed. Individual persistence failures are logged and skipped.
func (imp *Importer) ImportAll(candidates []listing.Candidate) RunSummary {
	summary := RunSummary{}

	for _, c := range candidates {
		summary.Processed++

		if !c.Valid() {
			logger.Debug("candidate rejected: missing title or valid url", logger.Fields{
				"title": c.Title,
				"url":   c.URL,
			})
			continue
		}

		_, exists, err := imp.store.FindListingByMeta(store.MetaURL, c.URL)
		if err != nil {
			logger.Error("duplicate lookup failed, skipping candidate", logger.Fields{"url": c.URL}, err)
			continue
		}
		if exists {
			continue
		}

		if err := imp.create(c); err != nil {
			logger.Error("listing creation failed, skipping candidate", logger.Fields{"url": c.URL}, err)
			continue
		}

		summary.Added++
		logger.IncrCounter("listings.created")
		logger.Info("imported listing", logger.Fields{
			"title":  c.Title,
			"url":    c.URL,
			"source": c.Source,
		})
	}

	return summary
}

// create writes one listing with its metadata and provenance category.
func (imp *Importer) create(c listing.Candidate) error {
	body := c.Description
	if body == "" {
		body = fmt.Sprintf("%s. Imported from %s.", c.Title, c.Source)
	}

	id, err := imp.store.CreateListing(c.Title, body, store.StatusPublished)
	if err != nil {
		return err
	}

	if err := imp.store.SetMeta(id, store.MetaURL, c.URL); err != nil {
		return err
	}
	if c.Country != "" {
		if err := imp.store.SetMeta(id, store.MetaCountry, c.Country); err != nil {
			return err
		}
	}
	if c.Source != "" {
		if err := imp.store.SetMeta(id, store.MetaSource, c.Source); err != nil {
			return err
		}
	}
	if c.PostedText != "" {
		value := listing.Sanitize(c.PostedText)
		if t, ok := listing.NormalizePosted(c.PostedText, imp.now()); ok {
			value = t.Format(listing.PostedLayout)
		}
		if err := imp.store.SetMeta(id, store.MetaPostedDate, value); err != nil {
			return err
		}
	}
	if c.Deadline != "" {
		value := listing.Sanitize(c.Deadline)
		if t, ok := listing.NormalizeDeadline(c.Deadline); ok {
			value = t.Format(listing.DeadlineLayout)
		}
		if err := imp.store.SetMeta(id, store.MetaDeadline, value); err != nil {
			return err
		}
	}

	catID, err := imp.store.EnsureCategory(CategoryLabel(c.Source))
	if err != nil {
		return err
	}
	return imp.store.AssignCategory(id, catID)
}

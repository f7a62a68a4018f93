package source

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"scholarseek/internal/listing"
	"scholarseek/internal/logger"
)

const (
	scholarshipDBName = "scholarshipdb.net"
	scholarshipDBBase = "https://scholarshipdb.net"
)

// ScholarshipDB extracts listings from scholarshipdb.net search pages.
// The site exposes audience-segmented listing paths; each path is a
// separate extractor configuration sharing this parser.
type ScholarshipDB struct {
	path    string
	variant string
}

// NewScholarshipDB returns the extractor for the international listing path.
func NewScholarshipDB() *ScholarshipDB {
	return &ScholarshipDB{path: "/scholarships", variant: "international"}
}

// NewScholarshipDBEU returns the extractor for the EU-segmented listing path.
func NewScholarshipDBEU() *ScholarshipDB {
	return &ScholarshipDB{path: "/scholarships-in-European-Union", variant: "eu"}
}

func (s *ScholarshipDB) Name() string { return scholarshipDBName }

func (s *ScholarshipDB) PageURL(keywords string, page int) string {
	q := url.Values{}
	q.Set("q", keywords)
	q.Set("page", fmt.Sprintf("%d", page))
	return scholarshipDBBase + s.path + "?" + q.Encode()
}

// Parse extracts candidates from one scholarshipdb.net result page.
// Listing blocks are panels carrying the panel/panel-info class pair; each
// block has a heading anchor (title + detail link), a flagged country link,
// and a muted relative posted-date span.
func (s *ScholarshipDB) Parse(html string) []listing.Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Best-effort parse; a page goquery cannot read yields nothing.
		logger.Debug("scholarshipdb: unparseable page", logger.Fields{"variant": s.variant})
		return nil
	}

	candidates := make([]listing.Candidate, 0)
	doc.Find("div.panel.panel-info").Each(func(i int, block *goquery.Selection) {
		anchor := block.Find("h4.media-heading a").First()
		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")
		detailURL := listing.AbsoluteURL(scholarshipDBBase, href)

		if title == "" || detailURL == "" {
			logger.Debug("scholarshipdb: block missing title or link, skipped", logger.Fields{
				"variant": s.variant,
				"block":   i,
			})
			return
		}

		candidates = append(candidates, listing.Candidate{
			Title:       title,
			URL:         detailURL,
			Country:     strings.TrimSpace(block.Find("a.text-success").First().Text()),
			PostedText:  listing.Sanitize(block.Find("span.text-muted").First().Text()),
			Description: listing.Sanitize(block.Find("div.panel-body").First().Text()),
			Source:      scholarshipDBName,
		})
	})

	return candidates
}

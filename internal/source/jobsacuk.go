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
	jobsAcUkName = "jobs.ac.uk"
	jobsAcUkBase = "https://www.jobs.ac.uk"
)

// JobsAcUk extracts PhD and fellowship listings from jobs.ac.uk search pages.
type JobsAcUk struct{}

// NewJobsAcUk returns the jobs.ac.uk extractor.
func NewJobsAcUk() *JobsAcUk {
	return &JobsAcUk{}
}

func (j *JobsAcUk) Name() string { return jobsAcUkName }

func (j *JobsAcUk) PageURL(keywords string, page int) string {
	q := url.Values{}
	q.Set("keywords", keywords)
	q.Set("page", fmt.Sprintf("%d", page))
	return jobsAcUkBase + "/search/?" + q.Encode()
}

// Parse extracts candidates from one jobs.ac.uk result page. Blocks are the
// search-result text containers; the heading anchor carries title and a
// site-relative detail link, the department line carries employer and
// location, and the deadline line carries "Closing Date: …" text.
func (j *JobsAcUk) Parse(html string) []listing.Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Debug("jobsacuk: unparseable page", nil)
		return nil
	}

	candidates := make([]listing.Candidate, 0)
	doc.Find("div.j-search-result__text").Each(func(i int, block *goquery.Selection) {
		anchor := block.Find("a[href]").First()
		title := strings.TrimSpace(anchor.Text())
		href, _ := anchor.Attr("href")
		detailURL := listing.AbsoluteURL(jobsAcUkBase, href)

		if title == "" || detailURL == "" {
			logger.Debug("jobsacuk: block missing title or link, skipped", logger.Fields{"block": i})
			return
		}

		deadline := listing.Sanitize(block.Find("div.j-search-result__info--deadline").First().Text())

		candidates = append(candidates, listing.Candidate{
			Title:       title,
			URL:         detailURL,
			Country:     listing.Sanitize(block.Find("div.j-search-result__department").First().Text()),
			Deadline:    deadline,
			Description: listing.Sanitize(block.Find("div.j-search-result__summary").First().Text()),
			Source:      jobsAcUkName,
		})
	})

	return candidates
}

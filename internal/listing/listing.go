package listing

import (
	"net/url"
	"strings"
)

// Candidate represents a scholarship listing extracted from a single source
// page, before validation, dedup, and import.
type Candidate struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Country     string `json:"country,omitempty"`
	PostedText  string `json:"posted_text,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source"`
}

// Valid reports whether the candidate carries the minimum fields required
// for import: a non-empty title and a syntactically valid absolute URL.
func (c *Candidate) Valid() bool {
	if strings.TrimSpace(c.Title) == "" {
		return false
	}
	return ValidURL(c.URL)
}

// ValidURL reports whether raw is an absolute http(s) URL.
func ValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// AbsoluteURL resolves href against base, returning href unchanged when it
// is already absolute. Returns "" when neither can be parsed.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// UserAgent identifies this tool to the sites it fetches from.
	UserAgent = "scholarseek/1.0 (+https://github.com/scholarseek/scholarseek)"
	// Timeout bounds a single page fetch.
	Timeout = 30 * time.Second
)

// Failure classes. Callers branch on these with errors.Is; a failed page is
// skipped, never retried here.
var (
	ErrMalformedURL = errors.New("malformed url")
	ErrTransport    = errors.New("transport failure")
	ErrBadStatus    = errors.New("unexpected status")
	ErrEmptyBody    = errors.New("empty response body")
)

// Fetcher retrieves raw HTML for listing pages.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher with the default timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: Timeout},
	}
}

// NewWithClient creates a Fetcher using the given client. Used by tests.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch issues a single GET for rawURL and returns the body as a string.
// Exactly one attempt is made; all expected failure classes come back as
// wrapped sentinel errors, never panics.
func (f *Fetcher) Fetch(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedURL, rawURL)
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrMalformedURL, rawURL, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d from %s", ErrBadStatus, resp.StatusCode, u.Host)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyBody, u.Host)
	}

	return string(body), nil
}

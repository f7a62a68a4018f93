// Package fetch retrieves raw HTML for source listing pages.
//
// Each fetch is a single GET with a bounded timeout and an identifying
// User-Agent. Failures are classified into sentinel errors (malformed URL,
// transport, bad status, empty body) so callers can skip the page and move
// on; retries are deliberately not performed here.
package fetch

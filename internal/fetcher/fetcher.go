// Package fetcher downloads listing pages.
package fetcher

import "context"

// Fetcher returns the HTML of a page. Every failure is reported as
// domain.ErrFetchFailed with the cause wrapped for logging.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

const acceptLanguage = "de-DE,de;q=0.9,en;q=0.8"

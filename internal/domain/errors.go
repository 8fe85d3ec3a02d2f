package domain

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnsupportedSite = errors.New("unsupported site")
	ErrPriceNotFound   = errors.New("purchase price not found")

	// ErrFetchFailed covers network errors, timeouts and non-2xx responses.
	ErrFetchFailed = errors.New("fetch failed")
)

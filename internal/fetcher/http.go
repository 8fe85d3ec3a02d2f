package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/user/expose-extractor/internal/domain"
	"github.com/user/expose-extractor/internal/proxy"
)

// maxBodySize caps how much of a listing page is read.
const maxBodySize = 10 << 20

// HTTPFetcher fetches pages with a plain HTTP client.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher creates a fetcher sending userAgent, routed through proxies.
func NewHTTPFetcher(userAgent string, proxies *proxy.Manager) *HTTPFetcher {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxies.ProxyFunc()

	return &HTTPFetcher{
		client:    &http.Client{Transport: otelhttp.NewTransport(transport)},
		userAgent: userAgent,
	}
}

// Fetch performs a single GET. Timeouts come from ctx.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", acceptLanguage)

	res, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: status code %d", domain.ErrFetchFailed, res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %w", domain.ErrFetchFailed, err)
	}
	return string(body), nil
}

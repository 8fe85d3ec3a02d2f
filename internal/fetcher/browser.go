package fetcher

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/user/expose-extractor/internal/domain"
)

// BrowserFetcher renders pages in headless Chrome, for portals that only
// serve their figures to JavaScript-capable clients.
type BrowserFetcher struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	logger      *zap.Logger
}

// NewBrowserFetcher prepares a Chrome allocator. The browser itself is only
// started on the first Fetch.
func NewBrowserFetcher(userAgent, proxyServer string, logger *zap.Logger) *BrowserFetcher {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	if proxyServer != "" {
		opts = append(opts, chromedp.ProxyServer(proxyServer))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &BrowserFetcher{
		allocCtx:    allocCtx,
		allocCancel: cancel,
		logger:      logger,
	}
}

// Fetch navigates to url and returns the rendered document.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	taskCtx, cancel := chromedp.NewContext(f.allocCtx, chromedp.WithLogf(f.logger.Sugar().Debugf))
	defer cancel()
	// Tie the browser tab to the caller's deadline.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var status atomic.Int64
	chromedp.ListenTarget(taskCtx, func(ev interface{}) {
		if e, ok := ev.(*network.EventResponseReceived); ok && e.Type == network.ResourceTypeDocument {
			status.CompareAndSwap(0, e.Response.Status)
		}
	})

	var htmlContent string
	err := chromedp.Run(taskCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{"Accept-Language": acceptLanguage}),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	if code := status.Load(); code != 0 && (code < 200 || code > 299) {
		return "", fmt.Errorf("%w: status code %d", domain.ErrFetchFailed, code)
	}
	return htmlContent, nil
}

// Close shuts down the browser.
func (f *BrowserFetcher) Close() {
	f.allocCancel()
}

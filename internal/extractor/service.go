// Package extractor resolves a listing URL to its portal, fetches the page
// and classifies the outcome.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/user/expose-extractor/internal/domain"
	"github.com/user/expose-extractor/internal/estimator"
	"github.com/user/expose-extractor/internal/fetcher"
	"github.com/user/expose-extractor/internal/monitoring"
	"github.com/user/expose-extractor/internal/portal"
)

const unknownPortal = "unknown"

// Service runs one extraction per call and keeps no state between calls.
type Service struct {
	fetcher      fetcher.Fetcher
	estimator    *estimator.Estimator
	metrics      *monitoring.Metrics
	logger       *zap.Logger
	fetchTimeout time.Duration
}

func NewService(f fetcher.Fetcher, est *estimator.Estimator, m *monitoring.Metrics, l *zap.Logger, fetchTimeout time.Duration) *Service {
	return &Service{
		fetcher:      f,
		estimator:    est,
		metrics:      m,
		logger:       l,
		fetchTimeout: fetchTimeout,
	}
}

// Extract returns the figures for the listing at rawURL.
//
// Errors are one of domain.ErrBadRequest, domain.ErrUnsupportedSite,
// domain.ErrFetchFailed or domain.ErrPriceNotFound; anything else is an
// internal failure.
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.PropertyData, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		s.metrics.IncExtraction(unknownPortal, "bad_request")
		return nil, fmt.Errorf("%w: url is required", domain.ErrBadRequest)
	}

	u, err := url.ParseRequestURI(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		s.metrics.IncExtraction(unknownPortal, "bad_request")
		return nil, fmt.Errorf("%w: invalid url %q", domain.ErrBadRequest, rawURL)
	}

	p, ok := portal.Resolve(u.Hostname())
	if !ok {
		s.metrics.IncExtraction(unknownPortal, "unsupported_site")
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSite, u.Hostname())
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	startTime := time.Now()
	htmlContent, err := s.fetcher.Fetch(fetchCtx, rawURL)
	s.metrics.ObserveFetch(p.Name, time.Since(startTime).Seconds())
	if err != nil {
		s.logger.Warn("failed to fetch listing", zap.String("url", rawURL), zap.String("portal", p.Name), zap.Error(err))
		s.metrics.IncExtraction(p.Name, "fetch_failed")
		if !errors.Is(err, domain.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		return nil, err
	}

	data, err := p.ExtractHTML(htmlContent, s.estimator)
	if err != nil {
		s.logger.Error("failed to parse listing", zap.String("url", rawURL), zap.String("portal", p.Name), zap.Error(err))
		s.metrics.IncExtraction(p.Name, "parse_failed")
		return nil, fmt.Errorf("parsing %s page: %w", p.Name, err)
	}

	if !data.HasPrice() {
		s.logger.Info("no purchase price on listing", zap.String("url", rawURL), zap.String("portal", p.Name))
		s.metrics.IncExtraction(p.Name, "price_not_found")
		return nil, domain.ErrPriceNotFound
	}

	s.metrics.IncExtraction(p.Name, "success")
	s.logger.Info("extracted listing",
		zap.String("url", rawURL),
		zap.String("portal", p.Name),
		zap.Int("kaufpreis", *data.Kaufpreis),
		zap.Duration("duration", time.Since(startTime)),
	)
	return data, nil
}

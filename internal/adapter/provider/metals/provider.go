// Package metals fetches spot gold and silver prices from a goldapi.io
// compatible HTTP JSON API.
package metals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/zakat-tracker/internal/domain"
)

// ErrNotConfigured is returned when no API key or base URL is set.
var ErrNotConfigured = errors.New("metals: price source not configured")

// Provider fetches metal prices over HTTP.
type Provider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
	retryDelay time.Duration
}

// NewProvider creates a Provider. Each request is bounded by timeout.
func NewProvider(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "metals"),
		retryDelay: 500 * time.Millisecond,
	}
}

func symbol(basis domain.ThresholdBasis) (string, error) {
	switch basis {
	case domain.ThresholdBasisGold:
		return "XAU", nil
	case domain.ThresholdBasisSilver:
		return "XAG", nil
	}
	return "", fmt.Errorf("metals: unknown basis %q", basis)
}

// FetchPricePerGram returns the 24k per-gram price of the basis metal in
// currency.
func (p *Provider) FetchPricePerGram(ctx context.Context, basis domain.ThresholdBasis, currency string) (domain.PriceQuote, error) {
	if p.baseURL == "" || p.apiKey == "" {
		return domain.PriceQuote{}, ErrNotConfigured
	}
	sym, err := symbol(basis)
	if err != nil {
		return domain.PriceQuote{}, err
	}

	reqURL := p.baseURL + "/" + sym + "/" + url.PathEscape(strings.ToUpper(currency))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("metals: create request: %w", err)
	}
	req.Header.Set("x-access-token", p.apiKey)
	req.Header.Set("Accept", "application/json")

	p.log.DebugContext(ctx, "metals request", slog.String("metal", sym), slog.String("currency", currency))

	resp, err := p.doWithRetry(ctx, req, sym)
	if err != nil {
		p.log.WarnContext(ctx, "metals request failed", slog.String("metal", sym), slog.String("error", err.Error()))
		return domain.PriceQuote{}, fmt.Errorf("metals: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PriceQuote{}, fmt.Errorf("metals: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("metals: read body: %w", err)
	}

	var q apiQuote
	if err := json.Unmarshal(body, &q); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("metals: decode json: %w", err)
	}
	if q.Error != "" {
		return domain.PriceQuote{}, fmt.Errorf("metals: api error: %s", q.Error)
	}
	if !q.PriceGram24k.IsPositive() {
		return domain.PriceQuote{}, fmt.Errorf("metals: non-positive price %s for %s", q.PriceGram24k, sym)
	}

	asOf := time.Now().UTC()
	if q.Timestamp > 0 {
		asOf = time.Unix(q.Timestamp, 0).UTC()
	}
	quoteCurrency := strings.ToUpper(q.Currency)
	if quoteCurrency == "" {
		quoteCurrency = strings.ToUpper(currency)
	}

	p.log.DebugContext(ctx, "metals response",
		slog.String("metal", sym),
		slog.String("price_gram", q.PriceGram24k.String()),
	)

	return domain.PriceQuote{
		Basis:        basis,
		PricePerGram: q.PriceGram24k,
		Currency:     quoteCurrency,
		AsOf:         asOf,
	}, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, sym string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "metals retry", slog.String("metal", sym), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}

// Package api provides a client for the registrar domain availability API
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/akinloluwami/domains-lookup/pkg/domain"
)

const requestTimeout = 30 * time.Second

// minorUnitThreshold is the point above which a reported price is assumed
// to be expressed in hundredths and is divided by 100.
const minorUnitThreshold = 1000

// Client performs bulk availability lookups. Every request carries the
// composite sso-key credential header built from the API key and secret.
type Client struct {
	key      string
	secret   string
	endpoint string
	http     *http.Client
	verbose  bool // if true, raw request/response payloads are logged
}

// NewClient creates a new availability API client
func NewClient(key, secret, endpoint string, verbose bool) *Client {
	return &Client{
		key:      key,
		secret:   secret,
		endpoint: endpoint,
		http:     &http.Client{Timeout: requestTimeout},
		verbose:  verbose,
	}
}

// apiResult mirrors one entry of the availability response. The
// availability flag arrives as a bool or a string depending on the TLD
// backend, and the price shows up in one of several places; every known
// shape is declared here and resolved during normalization.
type apiResult struct {
	Domain    string       `json:"domain"`
	Available any          `json:"available"`
	Price     *float64     `json:"price"`
	PriceInfo *nestedPrice `json:"priceInfo"`
	Period    *nestedPrice `json:"period"`
	Pricing   *nestedPrice `json:"pricing"`
}

type nestedPrice struct {
	Price *float64 `json:"price"`
}

type apiResponse struct {
	Domains []apiResult `json:"domains"`
}

// CheckAvailability sends one batch of fully-qualified domain names to the
// availability endpoint and returns a normalized result per domain.
//
// The response is not guaranteed to contain an entry for every requested
// domain, nor to preserve request order; callers must match results to
// requests by the Domain field. A non-success HTTP status or an
// undecodable body is returned as an error; a response without a result
// list simply yields zero results.
func (c *Client) CheckAvailability(ctx context.Context, domains []string) ([]domain.LookupResult, error) {
	body, err := json.Marshal(domains)
	if err != nil {
		return nil, fmt.Errorf("failed to encode domain list: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("sso-key %s:%s", c.key, c.secret))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.verbose {
		log.Info().
			Int("domains", len(domains)).
			RawJSON("payload", body).
			Msg("Sending availability request")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("availability request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read availability response: %w", err)
	}

	if c.verbose {
		log.Info().
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Str("payload", string(respBody)).
			Msg("Received availability response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("availability request returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse availability response: %w", err)
	}

	results := make([]domain.LookupResult, 0, len(parsed.Domains))
	for _, r := range parsed.Domains {
		results = append(results, domain.LookupResult{
			Domain:    r.Domain,
			Available: isAvailable(r.Available),
			Price:     normalizePrice(r),
		})
	}
	return results, nil
}

// isAvailable reports whether the availability field carries one of the
// truthy representations the API is known to return. Anything else,
// including an absent field, means the domain is taken.
func isAvailable(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "available"
	default:
		return false
	}
}

// normalizePrice picks the first price field present on a result, in a
// fixed priority order, and converts minor-unit values to major units.
// A result without any price field yields nil.
func normalizePrice(r apiResult) *float64 {
	var raw *float64
	switch {
	case r.Price != nil:
		raw = r.Price
	case r.PriceInfo != nil && r.PriceInfo.Price != nil:
		raw = r.PriceInfo.Price
	case r.Period != nil && r.Period.Price != nil:
		raw = r.Period.Price
	case r.Pricing != nil && r.Pricing.Price != nil:
		raw = r.Pricing.Price
	default:
		return nil
	}

	p := *raw
	if p > minorUnitThreshold {
		p = p / 100
	}
	return &p
}

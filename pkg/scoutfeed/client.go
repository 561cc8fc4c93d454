// Package scoutfeed fetches public wormhole signatures from the
// eve-scout-like feed. Its classification is narrower than the main
// catalog client's (no RateLimited/NotFound distinction observed in
// the upstream), grounded on original_source's eve_scout.rs:
// 5xx responses carry a server-error body, everything else
// non-success is unexpected.
package scoutfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/madmikeross/graphengine/pkg/config"
	"github.com/madmikeross/graphengine/pkg/errs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const wormholeSignatureType = "wormhole"

// Signature is one element of the public signature list. Only the fields the
// wormhole refresher needs are decoded; metadata (expiry, discovered-by, …)
// is ignored by the core per §6.
type Signature struct {
	SignatureType string `json:"signature_type"`
	InSystemID    int    `json:"in_system_id"`
	OutSystemID   int    `json:"out_system_id"`
}

// IsWormhole reports whether this signature is a wormhole connection rather
// than some other signature type the feed also carries.
func (s Signature) IsWormhole() bool {
	return s.SignatureType == wormholeSignatureType
}

type Client struct {
	http *http.Client
	url  string
}

func New(url string) *Client {
	var transport http.RoundTripper = http.DefaultTransport
	if config.IsTelemetryEnabled() {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	return &Client{http: &http.Client{Transport: transport}, url: url}
}

// GetPublicSignatures fetches the full signature list. Any non-2xx is fatal
// to the caller, matching the batch-listing policy of the main catalog.
func (c *Client) GetPublicSignatures(ctx context.Context) ([]Signature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errs.NewSourceError(errs.HTTPTransport, c.url, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.NewSourceError(errs.HTTPTransport, c.url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &errs.SourceError{Kind: errs.ServerError, URL: c.url, StatusCode: resp.StatusCode, Body: string(body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &errs.SourceError{Kind: errs.UnexpectedError, URL: c.url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var signatures []Signature
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewSourceError(errs.HTTPTransport, c.url, resp.StatusCode, err)
	}
	if err := json.Unmarshal(body, &signatures); err != nil {
		return nil, &errs.SourceError{Kind: errs.ParseError, URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode signatures: %w", err)}
	}
	return signatures, nil
}

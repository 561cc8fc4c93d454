// Package catalog talks to the upstream systems/stargates/activity
// catalog (ESI-shaped: JSON over HTTPS, base .../universe/). Every
// call issues one GET and classifies the response into the typed
// error kinds in pkg/errs, per the status-code table documented on
// classifyStatus.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/madmikeross/graphengine/pkg/config"
	"github.com/madmikeross/graphengine/pkg/errs"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxErrorBodyBytes = 2048

// validate enforces the required-fields shape of decoded catalog DTOs (see
// the validate tags in dto.go). A shape violation is treated the same as an
// unparseable body: the upstream sent well-formed JSON that doesn't honor
// the contract this client depends on.
var validate = validator.New()

// Client is a single shared HTTP client for the catalog, safe for concurrent
// use across every fanned-out detail fetch.
type Client struct {
	http    *http.Client
	baseURL string
}

func New(baseURL string) *Client {
	var transport http.RoundTripper = http.DefaultTransport
	if config.IsTelemetryEnabled() {
		transport = otelhttp.NewTransport(http.DefaultTransport)
	}
	return &Client{
		http:    &http.Client{Transport: transport},
		baseURL: baseURL,
	}
}

// get issues a GET against path (relative to baseURL), classifies the
// response per the §4.B table, and decodes the body into dest on success.
func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	url := c.baseURL + path

	if config.IsTelemetryEnabled() {
		tracer := otel.Tracer("graphengine/catalog")
		var span trace.Span
		ctx, span = tracer.Start(ctx, "catalog.get")
		span.SetAttributes(attribute.String("http.url", url))
		defer span.End()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errs.NewSourceError(errs.HTTPTransport, url, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewSourceError(errs.HTTPTransport, url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return errs.NewSourceError(errs.HTTPTransport, url, resp.StatusCode, err)
		}
		if err := json.Unmarshal(body, dest); err != nil {
			truncated := body
			if len(truncated) > maxErrorBodyBytes {
				truncated = truncated[:maxErrorBodyBytes]
			}
			slog.ErrorContext(ctx, "catalog response failed to parse", "url", url, "body", string(truncated))
			return &errs.SourceError{Kind: errs.ParseError, URL: url, StatusCode: resp.StatusCode, Body: string(truncated), Err: err}
		}
		return nil
	}

	return errs.NewSourceError(classifyStatus(resp.StatusCode), url, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
}

// classifyStatus maps an HTTP status code to a Source error kind:
// 404 -> NotFound, 420/429 -> RateLimited, 5xx -> ServerError, any
// other >=400 -> UnexpectedError.
func classifyStatus(status int) errs.SourceKind {
	switch {
	case status == http.StatusNotFound:
		return errs.NotFound
	case status == 420 || status == http.StatusTooManyRequests:
		return errs.RateLimited
	case status >= 500:
		return errs.ServerError
	default:
		return errs.UnexpectedError
	}
}

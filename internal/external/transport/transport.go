// Package transport holds the outbound HTTP plumbing shared by provider clients.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/pkg/correlation"
	"StorefrontPayments/pkg/metrics"
)

const maxResponseBody = 1 << 20

type Client struct {
	provider gateway.Provider
	http     *http.Client
}

func New(provider gateway.Provider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{provider: provider, http: httpClient}
}

// Response is a fully read provider response.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r Response) OK() bool {
	return r.StatusCode/100 == 2
}

func (c *Client) PostJSON(ctx context.Context, operation, endpoint string, body any) (Response, error) {
	j, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshal %s request: %w", operation, err)
	}
	return c.do(ctx, operation, endpoint, "application/json", bytes.NewReader(j))
}

func (c *Client) PostForm(ctx context.Context, operation, endpoint string, form url.Values) (Response, error) {
	return c.do(ctx, operation, endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// do wraps every transport failure into gateway.ErrProviderUnavailable.
func (c *Client) do(ctx context.Context, operation, endpoint, contentType string, body io.Reader) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return Response{}, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if corrID := correlation.FromContext(ctx); corrID != "" {
		req.Header.Set(correlation.HeaderName, corrID)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveProviderRequest(string(c.provider), operation, "transport_error", start)
		slog.WarnContext(ctx, "Provider request failed",
			"provider", c.provider,
			"operation", operation,
			"error", err,
		)
		return Response{}, fmt.Errorf("%w: %s: %v", gateway.ErrProviderUnavailable, operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	metrics.ObserveProviderRequest(string(c.provider), operation, strconv.Itoa(resp.StatusCode), start)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %s: read body: %v", gateway.ErrProviderUnavailable, operation, err)
	}

	slog.DebugContext(ctx, "Provider request completed",
		"provider", c.provider,
		"operation", operation,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return Response{StatusCode: resp.StatusCode, Status: resp.Status, Body: raw}, nil
}

// Classify maps a non-2xx response: 5xx and 429 are retryable outages, the rest are rejections.
func Classify(operation string, resp Response) error {
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %s: provider %s", gateway.ErrProviderUnavailable, operation, resp.Status)
	}
	return fmt.Errorf("%w: %s: provider %s: %s", gateway.ErrProviderRejected, operation, resp.Status, truncate(resp.Body))
}

func truncate(b []byte) string {
	const limit = 512
	if len(b) > limit {
		return string(b[:limit])
	}
	return string(b)
}

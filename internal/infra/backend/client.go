package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"turnos-gateway/internal/infra"
	"turnos-gateway/internal/pkg/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client is the shared base for every per-resource backend client. It owns
// the http.Client (timeout from config, otel-instrumented transport) and the
// request/decode/error-mapping cycle; resource clients only describe
// endpoints and payload shapes.
type Client struct {
	http *http.Client
	cfg  config.BackendConfig
}

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg: cfg,
	}
}

// get issues an authenticated GET and decodes the 2xx body into out.
func (c *Client) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

// post issues an authenticated POST with a JSON body; out may be nil.
func (c *Client) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapBackendErr(infra.KindRejected, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint(path), reqBody)
	if err != nil {
		return infra.WrapBackendErr(infra.KindRejected, "failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapBackendErr(infra.KindUnavailable, "backend request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := classifyStatus(resp.StatusCode); err != nil {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapBackendErr(infra.KindBadPayload, "failed to decode backend response", err)
	}
	return nil
}

func classifyStatus(status int) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.WrapBackendErr(infra.KindUnauthorized, "backend rejected credentials", nil)
	case status == http.StatusNotFound || status == http.StatusGone:
		return infra.WrapBackendErr(infra.KindNotFound, "backend resource not found", nil)
	case status >= 400 && status < 500:
		return infra.WrapBackendErr(infra.KindRejected, http.StatusText(status), nil)
	default:
		return infra.WrapBackendErr(infra.KindServerError, http.StatusText(status), nil)
	}
}

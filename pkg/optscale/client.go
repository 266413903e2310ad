// Package optscale is a client for the OptScale FinOps REST API.
//
// All calls go through Client.Do, which never returns a Go error: every
// result, including network failures, is folded into an Outcome. The resource
// clients built on top turn failed outcomes into typed errors.
package optscale

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const (
	DefaultTimeout = 10 * time.Second

	defaultResponseBodyLimit int64 = 10 << 20 // 10 MiB
)

var errBodyTooLarge = errors.New("response body exceeds limit")

// Client performs single-attempt JSON requests against the provider.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// MaxResponseBodyBytes caps how much of a response body is read.
	MaxResponseBodyBytes int64
}

// NewClient returns a Client whose connection pool is shared by every
// request. A zero timeout means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
	}
}

// Request describes one provider call. Body, when non-nil, is sent as JSON.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Query   map[string]string
	Body    any
}

func (c *Client) Get(ctx context.Context, path string, headers, query map[string]string) Outcome {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Headers: headers, Query: query})
}

func (c *Client) Post(ctx context.Context, path string, headers map[string]string, body any) Outcome {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Headers: headers, Body: body})
}

func (c *Client) Put(ctx context.Context, path string, headers map[string]string, body any) Outcome {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Headers: headers, Body: body})
}

func (c *Client) Patch(ctx context.Context, path string, headers map[string]string, body any) Outcome {
	return c.Do(ctx, Request{Method: http.MethodPatch, Path: path, Headers: headers, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string, headers, query map[string]string) Outcome {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Headers: headers, Query: query})
}

// Do sends req and classifies the result.
func (c *Client) Do(ctx context.Context, req Request) Outcome {
	log := slogx.FromContext(ctx).With(
		slog.String("upstream_method", req.Method),
		slog.String("upstream_path", req.Path),
	)

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		log.Error("optscale request could not be built", slog.String("error", err.Error()))
		return unexpectedFailure(err)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		log.Error("optscale connection failed", slog.String("error", err.Error()))
		return connectionFailure(err)
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp.Body)
	if err != nil {
		log.Error("optscale response could not be read",
			slog.Int("status", resp.StatusCode),
			slog.String("error", err.Error()),
		)
		return connectionFailure(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("optscale returned an error status", slog.Int("status", resp.StatusCode))
		data := emptyObject
		if len(body) > 0 && json.Valid(body) {
			data = json.RawMessage(body)
		}
		return Outcome{
			StatusCode: resp.StatusCode,
			Data:       data,
			Error:      fmt.Sprintf("HTTP error: %d - %s", resp.StatusCode, body),
		}
	}

	// No content is a success with nothing to decode.
	if len(bytes.TrimSpace(body)) == 0 {
		return Outcome{StatusCode: resp.StatusCode, Data: emptyObject}
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		log.Warn("optscale response is not JSON",
			slog.Int("status", resp.StatusCode),
			slog.String("content_type", resp.Header.Get("Content-Type")),
		)
		return Outcome{StatusCode: http.StatusForbidden, Data: emptyObject, Error: "Response is not JSON"}
	}

	if !json.Valid(body) {
		log.Error("optscale response has a JSON content type but does not parse",
			slog.Int("status", resp.StatusCode),
		)
		return Outcome{StatusCode: http.StatusForbidden, Data: emptyObject, Error: "Invalid JSON format in response"}
	}

	return Outcome{StatusCode: resp.StatusCode, Data: json.RawMessage(body)}
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := url.Parse(c.BaseURL + req.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid request url: %w", err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

func (c *Client) readBody(r io.Reader) ([]byte, error) {
	limit := c.MaxResponseBodyBytes
	if limit <= 0 {
		limit = defaultResponseBodyLimit
	}
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w of %d bytes", errBodyTooLarge, limit)
	}
	return body, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

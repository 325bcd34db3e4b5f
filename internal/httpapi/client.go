// Package httpapi implements objectapi.ObjectAPI over the object service's v1 HTTP API.
//
// Requests and responses are JSON. Authentication is whatever the supplied
// *http.Client does; this package never inspects or adds credentials.
package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
	"github.com/input-output-hk/catalyst-forge-libs/object/objectapi"
)

const (
	// APIPrefix is the path of the object service's v1 API below the root URL.
	APIPrefix = "/api/object/v1"

	// maxErrorBody caps how much of an error response is read.
	maxErrorBody = 64 * 1024
)

var _ objectapi.ObjectAPI = (*Client)(nil)

// Client calls the object service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Client for the deployment at rootURL.
// A nil httpClient means http.DefaultClient; a nil logger discards logs.
func New(rootURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(rootURL)
	if err != nil {
		return nil, fmt.Errorf("%w: root URL: %w", errors.ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: root URL %q must be an absolute http(s) URL", errors.ErrInvalidConfig, rootURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		baseURL:    strings.TrimRight(rootURL, "/") + APIPrefix,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CreateUpload calls PUT /upload/{name}.
func (c *Client) CreateUpload(
	ctx context.Context,
	name string,
	req *objectapi.CreateUploadRequest,
) (*objectapi.CreateUploadResponse, error) {
	resp := &objectapi.CreateUploadResponse{}
	if err := c.do(ctx, http.MethodPut, "/upload/"+url.PathEscape(name), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// FinishUpload calls POST /finish-upload/{name}.
func (c *Client) FinishUpload(ctx context.Context, name string, req *objectapi.FinishUploadRequest) error {
	return c.do(ctx, http.MethodPost, "/finish-upload/"+url.PathEscape(name), req, nil)
}

// do sends in as a JSON body and decodes a successful response into out, if out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s %s request: %w", method, path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: building request: %w", errors.ErrInvalidInput, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.DebugContext(ctx, "object service request failed",
			"method", method,
			"path", path,
			"error", err,
		)
		return fmt.Errorf("%w: %w", errors.ErrConnection, err)
	}
	defer httpResp.Body.Close()

	c.logger.DebugContext(ctx, "object service request",
		"method", method,
		"path", path,
		"status", httpResp.StatusCode,
		"duration", time.Since(start),
	)

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return newAPIError(httpResp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, httpResp.Body)
		return nil
	}
	if err := json.UnmarshalRead(httpResp.Body, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// Package rest is a small client for the Cosmos gRPC-gateway REST API.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Gravity-Devs/liquidity/pkg/log"
	"github.com/Gravity-Devs/liquidity/types"
)

// DefaultAddr is the REST endpoint of a local node.
const DefaultAddr = "http://localhost:1317"

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 16 << 20

// Options configure a Client.
type Options struct {
	// Addr is the REST endpoint, default DefaultAddr.
	Addr       string
	HTTPClient *http.Client
	// Timeout applies when HTTPClient is nil.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client issues GET requests against a gateway endpoint.
type Client struct {
	base   *url.URL
	client *http.Client
	logger *zap.Logger
}

// New creates a REST client.
func New(opts Options) (*Client, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		addr = DefaultAddr
	}
	u, err := url.Parse(strings.TrimRight(addr, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse rest address %q: %w", addr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("rest address %q: scheme must be http or https", addr)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{base: u, client: hc, logger: log.OrNop(opts.Logger)}, nil
}

// Addr returns the endpoint the client talks to.
func (c *Client) Addr() string {
	return c.base.String()
}

// Get fetches path with the given query parameters and returns the body of a
// 2xx response. Other statuses are returned as *Error.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	target := c.base.String() + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c.logger.Debug("rest query", zap.String("path", path), zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newError(resp.StatusCode, body)
	}
	return body, nil
}

// GetJSON is Get followed by encoding/json decoding into out.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, out any) error {
	body, err := c.Get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Params starts a query parameter set from an optional page request.
func Params(page *types.PageRequest) url.Values {
	v := url.Values{}
	page.Apply(v)
	return v
}

// PathEscape escapes a single path segment such as a denom containing '/'.
func PathEscape(seg string) string {
	return url.PathEscape(seg)
}

package cuer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Doer issues a single request against the cuesheet API.
// *Client implements it; tests substitute their own transport.
type Doer interface {
	Do(ctx context.Context, req Request) (Response, error)
}

// Ensure Client implements Doer at compile time.
var _ Doer = (*Client)(nil)

// Request describes one API call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Body    []byte
	Headers map[string]string
}

// Response carries the raw body of a successful call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client talks to the cuesheet HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL    = "http://127.0.0.1:8000"
	defaultUserAgent = "cuer/0.1"
)

// NewClient builds a Client for the given API base URL. A bare host:port is
// treated as http. No request timeout is set; calls end when the server
// answers or the context is cancelled.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// Do performs req exactly once. Network failures wrap ErrTransport and
// statuses >= 400 wrap ErrStatus; the body is returned undecoded.
func (c *Client) Do(ctx context.Context, r Request) (Response, error) {
	if c == nil {
		return Response{}, fmt.Errorf("client is nil")
	}
	rel, err := url.Parse(r.Path)
	if err != nil {
		return Response{}, fmt.Errorf("parse path %q: %w", r.Path, err)
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL.String(), body)
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %s %s: %w", ErrTransport, r.Method, rel.String(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}
	if resp.StatusCode >= 400 {
		return Response{StatusCode: resp.StatusCode, Body: data},
			fmt.Errorf("%w: api %s returned status %d", ErrStatus, rel.String(), resp.StatusCode)
	}
	return Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

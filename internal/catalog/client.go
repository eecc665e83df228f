package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrInvalidResponse marks a categories payload that decoded but did not have
// the expected {status, data: [...]} shape.
var ErrInvalidResponse = errors.New("invalid categories response")

// CategoryFetcher loads the category list. *Client implements it; tests can
// substitute their own.
type CategoryFetcher interface {
	FetchCategories(ctx context.Context) ([]CategoryOption, error)
}

// Ensure Client implements CategoryFetcher at compile time.
var _ CategoryFetcher = (*Client)(nil)

// Client talks to the storefront HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://127.0.0.1:3000/"
	defaultUserAgent = "shopfilter/0.1"
	requestTimeout   = 5 * time.Second
	categoriesPath   = "api/front/categories"
)

// NewClient builds a Client for the given API base URL. Paths are resolved
// relative to it, so "https://shop.test/store" serves
// "https://shop.test/store/api/front/categories".
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchCategories retrieves the storefront category list.
func (c *Client) FetchCategories(ctx context.Context) ([]CategoryOption, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload categoriesResponse
	if err := c.do(ctx, http.MethodGet, categoriesPath, &payload); err != nil {
		return nil, err
	}
	if !truthy(payload.Status) {
		return nil, fmt.Errorf("%w: status is %v", ErrInvalidResponse, payload.Status)
	}
	if !isArray(payload.Data) {
		return nil, fmt.Errorf("%w: data is not a list", ErrInvalidResponse)
	}
	var items []CategoryOption
	if err := json.Unmarshal(payload.Data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var ErrUpstream = errors.New("upstream request failed")
var ErrDecode = errors.New("decode upstream response")
var ErrNotFound = errors.New("not found")
var ErrAPIKeyRequired = errors.New("steam api key required")

const requestTimeout = 15 * time.Second
const bodyPreviewLimit = 512

// Client is the shared outbound HTTP client for Steam Web API,
// community and storefront endpoints. Upstream services reject bare
// default clients, so every request carries browser-like headers.
type Client struct {
	http *http.Client
	log  *zap.Logger
}

func NewClient(log *zap.Logger) *Client {
	return &Client{
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
}

// NewClientWithHTTP substitutes the underlying transport; tests use it
// to serve canned upstream responses.
func NewClientWithHTTP(httpClient *http.Client, log *zap.Logger) *Client {
	return &Client{
		http: httpClient,
		log:  log,
	}
}

// GetJSON issues a GET against rawURL with params appended and decodes
// the JSON body into dest. Transport failures and malformed bodies are
// logged and returned as ErrUpstream/ErrDecode, never panics.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, dest any) error {
	body, err := c.get(ctx, rawURL, params)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, dest); err != nil {
		c.log.Error(
			"failed to decode upstream body",
			zap.String("url", rawURL),
			zap.String("preview", preview(body)),
			zap.Error(err),
		)
		return ErrDecode
	}
	return nil
}

// GetRaw issues a GET against rawURL with params appended and returns
// the raw body.
func (c *Client) GetRaw(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	return c.get(ctx, rawURL, params)
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values) ([]byte, error) {
	target := rawURL
	if len(params) > 0 {
		target = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.log.Warn("failed to build upstream request", zap.String("url", target), zap.Error(err))
		return nil, ErrUpstream
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/xml, text/html, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("url", rawURL), zap.Error(err))
		return nil, ErrUpstream
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("failed to read upstream body", zap.String("url", rawURL), zap.Error(err))
		return nil, ErrUpstream
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(
			"upstream returned non-2xx",
			zap.String("url", rawURL),
			zap.Int("status", resp.StatusCode),
			zap.Any("headers", resp.Header),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	c.log.Debug("upstream request ok", zap.String("url", rawURL), zap.Int("bytes", len(body)))
	return body, nil
}

func preview(body []byte) string {
	if len(body) > bodyPreviewLimit {
		return string(body[:bodyPreviewLimit]) + "..."
	}
	return string(body)
}

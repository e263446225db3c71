// Package api talks to the web-larek product and order endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Liscuitle/web-larek/internal/logic"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const (
	productPath = "/product"
	orderPath   = "/order"

	defaultTimeout = 30 * time.Second
	maxBodySize    = 8 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL string
	CDNURL  string
	Timeout time.Duration
	Logger  *zap.Logger
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client is a JSON client for the storefront API. It never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cdnURL     string
	logger     *zap.Logger
}

// NewClient creates a client from cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		cdnURL:     strings.TrimRight(cfg.CDNURL, "/"),
		logger:     logger,
	}
}

type productList struct {
	Total int             `json:"total"`
	Items []logic.Product `json:"items"`
}

// GetProductList fetches the catalog. Image paths are resolved against the CDN.
func (c *Client) GetProductList(ctx context.Context) ([]logic.Product, error) {
	var list productList
	if err := c.do(ctx, http.MethodGet, productPath, nil, &list); err != nil {
		return nil, err
	}
	items := make([]logic.Product, len(list.Items))
	for i, p := range list.Items {
		p.Image = c.ImageURL(p.Image)
		items[i] = p
	}
	c.logger.Debug("catalog loaded", zap.Int("total", list.Total), zap.Int("items", len(items)))
	return items, nil
}

// OrderProducts submits an order.
func (c *Client) OrderProducts(ctx context.Context, order logic.Order) (logic.OrderResult, error) {
	var result logic.OrderResult
	if err := c.do(ctx, http.MethodPost, orderPath, order, &result); err != nil {
		return logic.OrderResult{}, err
	}
	c.logger.Info("order placed",
		zap.String("order_id", result.ID),
		zap.Int64("total", result.Total))
	return result, nil
}

// ImageURL joins the CDN base and a relative image path.
func (c *Client) ImageURL(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.cdnURL + path
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return newClientError(ErrTransport, "marshal request body", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return newClientError(ErrTransport, "create request", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("request failed", zap.Error(err))
		return newClientError(ErrConnection, "request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return newClientError(ErrTransport, "read response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errorMessage(resp.StatusCode, raw)
		log.Warn("request rejected", zap.Int("status", resp.StatusCode), zap.String("error", msg))
		return newHTTPError(resp.StatusCode, msg)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return newClientError(ErrDecode, "decode response", err)
	}
	return nil
}

// errorMessage prefers the server's "error" field, falling back to the status text.
func errorMessage(status int, body []byte) string {
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "error"); msg.Exists() && msg.String() != "" {
			return msg.String()
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected status"
}

package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/falconboard/boardflow/internal/domain/model"
)

const apiVersion = "2024-10"

// ErrOrderNotFound indicates the commerce platform doesn't know the order.
var ErrOrderNotFound = errors.New("order not found")

// TooManyRequestsError represents a rate limiting signal from the platform.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes operations to query the commerce platform's admin API.
type Client interface {
	FetchOrder(ctx context.Context, id int64) (*model.Order, error)
	ListOrdersUpdatedSince(ctx context.Context, since time.Time) ([]model.Order, error)
}

// HTTPClient implements Client via the admin REST API.
type HTTPClient struct {
	baseURL     *url.URL
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

type ordersResponse struct {
	Orders []orderPayload `json:"orders"`
}

type orderResponse struct {
	Order orderPayload `json:"order"`
}

// NewHTTPClient creates an admin API client with default timeout.
func NewHTTPClient(baseURL, accessToken string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse shopify url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("shopify url must be absolute")
	}
	return &HTTPClient{
		baseURL:     parsed,
		accessToken: accessToken,
		logger:      logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// FetchOrder retrieves one order by identifier, used for the tag readiness
// re-fetch.
func (c *HTTPClient) FetchOrder(ctx context.Context, id int64) (*model.Order, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "admin/api", apiVersion, "orders", strconv.FormatInt(id, 10)+".json")

	body, err := c.get(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	var data orderResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	return data.Order.toModel(), nil
}

// ListOrdersUpdatedSince retrieves orders changed after the timestamp, used
// by the polled import.
func (c *HTTPClient) ListOrdersUpdatedSince(ctx context.Context, since time.Time) ([]model.Order, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "admin/api", apiVersion, "orders.json")
	query := endpoint.Query()
	query.Set("status", "any")
	query.Set("limit", "250")
	query.Set("updated_at_min", since.UTC().Format(time.RFC3339))
	endpoint.RawQuery = query.Encode()

	body, err := c.get(ctx, endpoint.String())
	if err != nil {
		return nil, err
	}

	var data ordersResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(data.Orders))
	for i := range data.Orders {
		orders = append(orders, *data.Orders[i].toModel())
	}
	return orders, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound:
		return nil, ErrOrderNotFound
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("shopify request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("shopify error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}

package catalog

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
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates the catalog has no currently effective price for
// the requested option or package.
var ErrNotFound = errors.New("no active catalog price")

// Price is a currently effective catalog price.
type Price struct {
	Currency string
	Amount   decimal.Decimal
}

// PackageContents describes what a package bundles.
type PackageContents struct {
	EventTypeID string
	OptionIDs   []string
}

// Client exposes read-only catalog lookups consumed by the booking core.
type Client interface {
	CurrentPrice(ctx context.Context, optionID string) (*Price, error)
	CurrentPackagePrice(ctx context.Context, packageID string) (*Price, error)
	PackageItems(ctx context.Context, packageID string) (*PackageContents, error)
}

// HTTPClient implements Client via the catalog service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type priceResponse struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

type packageItemsResponse struct {
	EventTypeID string   `json:"event_type_id"`
	OptionIDs   []string `json:"option_ids"`
}

// NewHTTPClient creates HTTP catalog client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *HTTPClient) CurrentPrice(ctx context.Context, optionID string) (*Price, error) {
	return c.fetchPrice(ctx, path.Join("/api/v1/options", optionID, "price"))
}

func (c *HTTPClient) CurrentPackagePrice(ctx context.Context, packageID string) (*Price, error) {
	return c.fetchPrice(ctx, path.Join("/api/v1/packages", packageID, "price"))
}

func (c *HTTPClient) PackageItems(ctx context.Context, packageID string) (*PackageContents, error) {
	body, err := c.get(ctx, path.Join("/api/v1/packages", packageID, "items"))
	if err != nil {
		return nil, err
	}

	var data packageItemsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode package items: %w", err)
	}
	return &PackageContents{EventTypeID: data.EventTypeID, OptionIDs: data.OptionIDs}, nil
}

func (c *HTTPClient) fetchPrice(ctx context.Context, endpoint string) (*Price, error) {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var data priceResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("decode price: %w", err)
	}
	amount, err := decimal.NewFromString(data.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse price amount %q: %w", data.Amount, err)
	}
	return &Price{Currency: data.Currency, Amount: amount}, nil
}

func (c *HTTPClient) get(ctx context.Context, endpoint string) ([]byte, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusNotFound, http.StatusNoContent:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("catalog error: %s", resp.Status)
	}
}

// Package gis implements the HTTP client for the external mapping provider
// (directions, geo search, catalog search and nearby POI lookup).
package gis

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/promenade-app/service-route/internal/domain/route"
	"go.uber.org/zap"
)

const (
	directionsPath    = "/transport/calculate_directions"
	geoSearchPath     = "/geo/search"
	catalogSearchPath = "/catalog/branch/search"

	// searchTypeFilter is the object-type filter for destination searches.
	searchTypeFilter = "attraction,building,poi"

	// nearbyTypeFilter is the object-type filter for route-point enrichment.
	nearbyTypeFilter = "attraction,poi"

	defaultTimeout = 10 * time.Second
)

// Config holds the provider connection settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is the long-lived handle to the mapping provider. It is constructed
// once and shared read-only across requests.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a provider client with a bounded request timeout.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Directions requests pedestrian directions through the given waypoints.
func (c *Client) Directions(ctx context.Context, waypoints string, alternative int) (*route.DirectionsResponse, error) {
	params := url.Values{}
	params.Set("waypoints", waypoints)
	params.Set("edge_filter", "pedestrian")
	params.Set("alternative", strconv.Itoa(alternative))

	body, err := c.get(ctx, directionsPath, params)
	if err != nil {
		return nil, err
	}

	var resp route.DirectionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}
	resp.Raw = body
	return &resp, nil
}

// GeoSearch searches geometry-bearing objects inside the given rectangle.
func (c *Client) GeoSearch(ctx context.Context, corner1, corner2 orb.Point, query string) (*route.SearchResponse, error) {
	params := url.Values{}
	params.Set("point1", formatPoint(corner1))
	params.Set("point2", formatPoint(corner2))
	params.Set("fields", "items.geometry.selection")
	params.Set("type", searchTypeFilter)
	if query != "" {
		params.Set("q", query)
	}
	return c.search(ctx, geoSearchPath, params)
}

// CatalogSearch searches catalog branches inside the given rectangle.
func (c *Client) CatalogSearch(ctx context.Context, corner1, corner2 orb.Point, query string) (*route.SearchResponse, error) {
	params := url.Values{}
	params.Set("point1", formatPoint(corner1))
	params.Set("point2", formatPoint(corner2))
	params.Set("fields", "items.point")
	params.Set("type", searchTypeFilter)
	if query != "" {
		params.Set("q", query)
	}
	return c.search(ctx, catalogSearchPath, params)
}

// NearbySearch looks up a single attraction or POI around the given point.
func (c *Client) NearbySearch(ctx context.Context, point orb.Point, radiusMeters int) (*route.SearchResponse, error) {
	params := url.Values{}
	params.Set("point", formatPoint(point))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("fields", "items.geometry.selection")
	params.Set("type", nearbyTypeFilter)
	params.Set("page_size", "1")
	return c.search(ctx, geoSearchPath, params)
}

func (c *Client) search(ctx context.Context, path string, params url.Values) (*route.SearchResponse, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var resp route.SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	resp.Raw = body
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	c.logger.Debug("provider call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	return body, nil
}

// formatPoint serializes a point as "lon,lat" for query parameters.
func formatPoint(p orb.Point) string {
	return fmt.Sprintf("%g,%g", p[0], p[1])
}

package route

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/paulmach/orb"
)

// Provider is the contract for the external mapping provider. All operations
// are single-attempt; callers inspect the returned meta code rather than
// receiving an error for non-success provider statuses, because some flows
// tolerate a failed search and fall back to another endpoint.
type Provider interface {
	// Directions requests pedestrian directions through the given waypoints,
	// serialized as "lon lat,lon lat,...". alternative selects which route
	// alternative the provider should compute.
	Directions(ctx context.Context, waypoints string, alternative int) (*DirectionsResponse, error)

	// GeoSearch searches geometry-bearing objects inside the rectangle
	// spanned by two opposite corners, optionally filtered by a query term.
	GeoSearch(ctx context.Context, corner1, corner2 orb.Point, query string) (*SearchResponse, error)

	// CatalogSearch searches catalog branches inside the rectangle spanned
	// by two opposite corners, optionally filtered by a query term.
	CatalogSearch(ctx context.Context, corner1, corner2 orb.Point, query string) (*SearchResponse, error)

	// NearbySearch looks up a single attraction or POI within radiusMeters
	// of the given point.
	NearbySearch(ctx context.Context, point orb.Point, radiusMeters int) (*SearchResponse, error)
}

// ResponseMeta is the status envelope every provider response carries.
type ResponseMeta struct {
	Code int `json:"code"`
}

// SearchResponse is the provider's response to geo, catalog and nearby
// searches. Raw preserves the undecoded body for diagnostics.
type SearchResponse struct {
	Meta   ResponseMeta    `json:"meta"`
	Result SearchResult    `json:"result"`
	Raw    json.RawMessage `json:"-"`
}

// SearchResult holds the matched items of a search response.
type SearchResult struct {
	Items []ItemMetadata `json:"items"`
}

// OK reports whether the provider signalled success.
func (r *SearchResponse) OK() bool {
	return r.Meta.Code == http.StatusOK
}

// DirectionsResponse is the provider's response to a directions request:
// route items composed of legs, steps and geometry-bearing edges.
type DirectionsResponse struct {
	Meta   ResponseMeta     `json:"meta"`
	Result DirectionsResult `json:"result"`
	Raw    json.RawMessage  `json:"-"`
}

// DirectionsResult holds the computed route items.
type DirectionsResult struct {
	Items []RouteItem `json:"items"`
}

// RouteItem is one computed route, split into legs.
type RouteItem struct {
	Legs []Leg `json:"legs"`
}

// Leg is a grouping of steps within a route.
type Leg struct {
	Steps []Step `json:"steps"`
}

// Step is a grouping of edges within a leg.
type Step struct {
	Edges []Edge `json:"edges"`
}

// Edge is the smallest path unit, carrying its own WKT geometry.
type Edge struct {
	Geometry EdgeGeometry `json:"geometry"`
}

// EdgeGeometry holds the WKT LINESTRING of an edge.
type EdgeGeometry struct {
	Selection string `json:"selection"`
}

// OK reports whether the provider signalled success.
func (r *DirectionsResponse) OK() bool {
	return r.Meta.Code == http.StatusOK
}

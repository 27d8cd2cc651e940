package application

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/promenade-app/service-route/internal/domain/geo"
	"github.com/promenade-app/service-route/internal/domain/route"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// optimalWalkTime is the target walk duration in minutes that
	// destination candidates are scored against.
	optimalWalkTime = 30.0

	// Half-extents of the fixed destination search rectangle, in degrees.
	searchLonOffset = 0.029
	searchLatOffset = 0.019

	// nearbyRadiusMeters is the POI enrichment lookup radius.
	nearbyRadiusMeters = 100

	// metadataRoutePoints bounds how many waypoints get POI enrichment.
	metadataRoutePoints = 4

	// concreteAlternative is the alternative index requested for concrete
	// two-point routes. Literal configuration value carried over from the
	// original service.
	concreteAlternative = 5
)

// RouteService orchestrates destination search, route assembly and response
// building against the mapping provider.
type RouteService struct {
	provider route.Provider
	logger   *zap.Logger
}

// NewRouteService creates a new RouteService.
func NewRouteService(provider route.Provider, logger *zap.Logger) *RouteService {
	return &RouteService{provider: provider, logger: logger}
}

// ConcreteRoute computes a pedestrian route directly between two points.
func (s *RouteService) ConcreteRoute(ctx context.Context, start, end orb.Point) (*route.Result, error) {
	walkingTime := geo.EstimateWalkingTime(start, end)
	return s.buildResponse(ctx, walkingTime, []orb.Point{start, end}, concreteAlternative, nil)
}

// CategoryRoute finds a destination of the given category near the start
// point and computes a closed loop route through it.
func (s *RouteService) CategoryRoute(ctx context.Context, start orb.Point, category route.Category) (*route.Result, error) {
	end, metadata, err := s.findDestination(ctx, start, category)
	if err != nil {
		return nil, err
	}

	// The pi multiplier models an exploratory, non-direct walking path
	// rather than the geometric straight line.
	walkingTime := math.Pi * geo.EstimateWalkingTime(start, end)
	s.logger.Info("estimated walk duration",
		zap.Float64("minutes", walkingTime),
		zap.String("category", category.String()),
	)

	return s.buildResponse(ctx, walkingTime, geo.LoopWaypoints(start, end), 0, metadata)
}

// findDestination searches a fixed rectangle around the start point for the
// candidate whose scored walking time is closest to the optimal duration.
// A failed geo search is tolerated only when no query term was specified;
// a geo search with no usable candidates falls back to the catalog search.
func (s *RouteService) findDestination(ctx context.Context, start orb.Point, category route.Category) (orb.Point, route.ItemMetadata, error) {
	corner1 := orb.Point{start[0] - searchLonOffset, start[1] + searchLatOffset}
	corner2 := orb.Point{start[0] + searchLonOffset, start[1] - searchLatOffset}
	query := category.SearchQuery()

	resp, err := s.provider.GeoSearch(ctx, corner1, corner2, query)
	if err != nil {
		return orb.Point{}, nil, fmt.Errorf("geo search: %w", err)
	}

	if resp.OK() {
		point, metadata, err := s.selectOptimalGeoPoint(start, resp.Result.Items)
		if err == nil {
			return point, metadata, nil
		}
		if !errors.Is(err, route.ErrNoCandidates) {
			return orb.Point{}, nil, err
		}
	} else if query != "" {
		return orb.Point{}, nil, &route.ProviderError{Op: "geo search", Code: resp.Meta.Code, Response: resp.Raw}
	}

	catalog, err := s.provider.CatalogSearch(ctx, corner1, corner2, query)
	if err != nil {
		return orb.Point{}, nil, fmt.Errorf("catalog search: %w", err)
	}
	if !catalog.OK() {
		return orb.Point{}, nil, &route.ProviderError{Op: "catalog search", Code: catalog.Meta.Code, Response: catalog.Raw}
	}
	return s.selectOptimalOrganizationPoint(start, catalog.Result.Items)
}

// selectOptimalGeoPoint scores geometry-shaped candidates (WKT points).
func (s *RouteService) selectOptimalGeoPoint(start orb.Point, items []route.ItemMetadata) (orb.Point, route.ItemMetadata, error) {
	return selectOptimal(start, items, func(item route.ItemMetadata) (orb.Point, bool) {
		selection, ok := item.GeometryWKT()
		if !ok {
			return orb.Point{}, false
		}
		point, err := wkt.UnmarshalPoint(selection)
		if err != nil {
			return orb.Point{}, false
		}
		return point, true
	})
}

// selectOptimalOrganizationPoint scores point-shaped candidates ({lon, lat}).
func (s *RouteService) selectOptimalOrganizationPoint(start orb.Point, items []route.ItemMetadata) (orb.Point, route.ItemMetadata, error) {
	return selectOptimal(start, items, func(item route.ItemMetadata) (orb.Point, bool) {
		return item.Point()
	})
}

// selectOptimal picks the candidate whose estimated exploratory walking time
// is closest to optimalWalkTime. Ties keep the first-seen candidate. Items
// whose location cannot be decoded are skipped.
func selectOptimal(start orb.Point, items []route.ItemMetadata, decode func(route.ItemMetadata) (orb.Point, bool)) (orb.Point, route.ItemMetadata, error) {
	var (
		optimalPoint orb.Point
		optimalTime  float64
		metadata     route.ItemMetadata
		found        bool
	)
	for _, item := range items {
		point, ok := decode(item)
		if !ok {
			continue
		}
		walkingTime := math.Pi * geo.EstimateWalkingTime(start, point)
		if !found || math.Abs(optimalTime-optimalWalkTime) > math.Abs(walkingTime-optimalWalkTime) {
			optimalTime = walkingTime
			optimalPoint = point
			metadata = item
			found = true
		}
	}
	if !found {
		return orb.Point{}, nil, route.ErrNoCandidates
	}

	metadata.SetPoint(optimalPoint)
	return optimalPoint, metadata, nil
}

// buildRoute requests directions through the waypoints and stitches the
// returned edge geometries into one continuous polyline.
func (s *RouteService) buildRoute(ctx context.Context, waypoints []orb.Point, alternative int) (orb.LineString, error) {
	resp, err := s.provider.Directions(ctx, pointsToQuery(waypoints), alternative)
	if err != nil {
		return nil, fmt.Errorf("calculate directions: %w", err)
	}
	if !resp.OK() {
		return nil, &route.ProviderError{Op: "directions", Code: resp.Meta.Code, Response: resp.Raw}
	}
	if len(resp.Result.Items) == 0 {
		return nil, route.ErrEmptyRoute
	}

	var segments []orb.LineString
	for _, leg := range resp.Result.Items[0].Legs {
		for _, step := range leg.Steps {
			for _, edge := range step.Edges {
				line, err := wkt.UnmarshalLineString(edge.Geometry.Selection)
				if err != nil {
					return nil, fmt.Errorf("decode edge geometry: %w", err)
				}
				segments = append(segments, line)
			}
		}
	}

	// The first and last edge are zero-length markers; both are dropped.
	// Fewer than three edges leaves nothing to keep.
	if len(segments) < 3 {
		return nil, route.ErrEmptyRoute
	}
	segments = segments[1 : len(segments)-1]

	// Adjacent edges share their junction point, so every edge after the
	// first contributes its points from the second onward.
	stitched := make(orb.LineString, 0, len(segments)*2)
	stitched = append(stitched, segments[0]...)
	for _, segment := range segments[1:] {
		if len(segment) > 1 {
			stitched = append(stitched, segment[1:]...)
		}
	}
	return stitched, nil
}

// buildResponse assembles the final route payload: polyline, walking time,
// stride estimate and best-effort POI metadata for sampled waypoints.
func (s *RouteService) buildResponse(ctx context.Context, walkingTime float64, waypoints []orb.Point, alternative int, endPointData route.ItemMetadata) (*route.Result, error) {
	line, err := s.buildRoute(ctx, waypoints, alternative)
	if err != nil {
		return nil, err
	}

	return &route.Result{
		WalkingTime:  math.Round(walkingTime*100) / 100,
		Route:        route.SerializeLineString(line),
		RoutePoints:  s.routePointsMetadata(ctx, waypoints),
		StepsCount:   int(math.Round(geo.WalkSpeed * walkingTime / geo.AverageStrideLength)),
		EndPointData: endPointData,
	}, nil
}

// routePointsMetadata enriches a sample of waypoints with nearby attraction
// metadata. Lookups are independent and run in parallel; the result keeps
// waypoint order. Failures are logged and skipped, never fatal.
func (s *RouteService) routePointsMetadata(ctx context.Context, waypoints []orb.Point) []route.ItemMetadata {
	samples := waypoints
	if len(waypoints) > metadataRoutePoints {
		stride := len(waypoints) / metadataRoutePoints
		samples = make([]orb.Point, 0, metadataRoutePoints-1)
		for i := 1; i < metadataRoutePoints; i++ {
			samples = append(samples, waypoints[i*stride])
		}
	}

	results := make([]route.ItemMetadata, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	for i, point := range samples {
		g.Go(func() error {
			results[i] = s.lookupNearby(gctx, point)
			return nil
		})
	}
	_ = g.Wait()

	metadata := make([]route.ItemMetadata, 0, len(results))
	for _, item := range results {
		if item != nil {
			metadata = append(metadata, item)
		}
	}
	return metadata
}

// lookupNearby fetches the closest attraction around a point. Any failure
// (transport, provider status, empty result, bad geometry) yields nil.
func (s *RouteService) lookupNearby(ctx context.Context, point orb.Point) route.ItemMetadata {
	resp, err := s.provider.NearbySearch(ctx, point, nearbyRadiusMeters)
	if err != nil {
		s.logger.Warn("nearby attraction lookup failed", zap.Error(err))
		return nil
	}
	if !resp.OK() || len(resp.Result.Items) == 0 {
		return nil
	}

	item := resp.Result.Items[0]
	selection, ok := item.GeometryWKT()
	if !ok {
		return nil
	}
	p, err := wkt.UnmarshalPoint(selection)
	if err != nil {
		s.logger.Warn("nearby attraction has invalid geometry", zap.Error(err))
		return nil
	}

	item.SetPoint(p)
	return item
}

// pointsToQuery serializes waypoints into the provider's coordinate-list
// format: "lon lat,lon lat,...".
func pointsToQuery(points []orb.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%g %g", p[0], p[1])
	}
	return strings.Join(parts, ",")
}

package route

import "github.com/paulmach/orb"

// PointDTO is the lon/lat pair encoding used everywhere in responses.
type PointDTO struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Result is the final route payload returned to clients.
type Result struct {
	// WalkingTime is the estimated walk duration in minutes, rounded to
	// two decimals.
	WalkingTime float64 `json:"walking_time"`

	// Route is the stitched polyline of the walk.
	Route []PointDTO `json:"route"`

	// RoutePoints carries best-effort POI metadata for a sample of
	// intermediate waypoints.
	RoutePoints []ItemMetadata `json:"route_points"`

	// StepsCount is the estimated number of strides for the walk.
	StepsCount int `json:"steps_count"`

	// EndPointData is the chosen destination's metadata for category
	// requests, absent for concrete routes.
	EndPointData ItemMetadata `json:"end_point_data"`
}

// SerializeLineString converts a polyline into the response point encoding.
func SerializeLineString(line orb.LineString) []PointDTO {
	points := make([]PointDTO, len(line))
	for i, p := range line {
		points[i] = PointDTO{Longitude: p[0], Latitude: p[1]}
	}
	return points
}

package route

import "github.com/paulmach/orb"

// ItemMetadata is the opaque key/value payload the provider attaches to a
// search result item. It is passed through to clients untouched except for
// the "point" field, which is normalized to {longitude, latitude}.
type ItemMetadata map[string]any

// Point reads a point-shaped item location ({"point": {"lon": ..., "lat": ...}}).
func (m ItemMetadata) Point() (orb.Point, bool) {
	raw, ok := m["point"].(map[string]any)
	if !ok {
		return orb.Point{}, false
	}
	lon, okLon := raw["lon"].(float64)
	lat, okLat := raw["lat"].(float64)
	if !okLon || !okLat {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}

// GeometryWKT reads a geometry-shaped item location
// ({"geometry": {"selection": "POINT(...)"}}).
func (m ItemMetadata) GeometryWKT() (string, bool) {
	raw, ok := m["geometry"].(map[string]any)
	if !ok {
		return "", false
	}
	selection, ok := raw["selection"].(string)
	return selection, ok
}

// SetPoint normalizes the item's point field to the response encoding,
// replacing whatever shape the provider returned it in.
func (m ItemMetadata) SetPoint(p orb.Point) {
	m["point"] = map[string]any{
		"longitude": p[0],
		"latitude":  p[1],
	}
}

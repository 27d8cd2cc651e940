// Package geo provides the geometric primitives the route planner is built
// on: midpoints, perpendicular offsets and walking-time estimation over
// lon/lat coordinates.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// WalkSpeed is the assumed pedestrian speed, 3 km/h in meters per minute.
	WalkSpeed = 3.0 * 1000 / 60

	// AverageStrideLength is the assumed stride length in meters, used for
	// step-count estimation.
	AverageStrideLength = 0.6
)

// Center returns the arithmetic midpoint of two points.
func Center(p1, p2 orb.Point) orb.Point {
	return orb.Point{(p1[0] + p2[0]) / 2, (p1[1] + p2[1]) / 2}
}

// NormalVector returns a vector perpendicular to the segment p1->p2,
// in degree space. The magnitude equals the segment length; loop routes
// apply it unscaled to stay proportional to the walk.
func NormalVector(p1, p2 orb.Point) (dx, dy float64) {
	return p2[1] - p1[1], -(p2[0] - p1[0])
}

// Distance returns the great-circle distance between two points in meters.
func Distance(p1, p2 orb.Point) float64 {
	return orbgeo.Distance(p1, p2)
}

// EstimateWalkingTime returns the straight-line walking time between two
// points in minutes, assuming WalkSpeed.
func EstimateWalkingTime(p1, p2 orb.Point) float64 {
	return Distance(p1, p2) / WalkSpeed
}

// LoopWaypoints builds a closed, diamond-shaped sequence of waypoints
// visiting both named points: start, one point offset to the side of the
// direct line, end, the mirrored offset point, and start again.
func LoopWaypoints(start, end orb.Point) []orb.Point {
	center := Center(start, end)
	dx, dy := NormalVector(start, end)
	second := orb.Point{center[0] + dx, center[1] + dy}
	fourth := orb.Point{center[0] - dx, center[1] - dy}
	return []orb.Point{start, second, end, fourth, start}
}

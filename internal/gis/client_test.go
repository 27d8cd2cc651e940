package gis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestClient_Directions(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"meta": {"code": 200},
			"result": {"items": [{"legs": [{"steps": [{"edges": [
				{"geometry": {"selection": "LINESTRING(30.31 59.93, 30.32 59.935)"}}
			]}]}]}]}
		}`))
	})

	resp, err := client.Directions(context.Background(), "30.31 59.93,30.33 59.94", 5)
	require.NoError(t, err)

	assert.Equal(t, "/transport/calculate_directions", gotPath)
	assert.Equal(t, "30.31 59.93,30.33 59.94", gotQuery.Get("waypoints"))
	assert.Equal(t, "pedestrian", gotQuery.Get("edge_filter"))
	assert.Equal(t, "5", gotQuery.Get("alternative"))
	assert.Equal(t, "test-key", gotQuery.Get("key"))

	assert.True(t, resp.OK())
	assert.NotEmpty(t, resp.Raw)
	require.Len(t, resp.Result.Items, 1)
	require.Len(t, resp.Result.Items[0].Legs, 1)
	edges := resp.Result.Items[0].Legs[0].Steps[0].Edges
	require.Len(t, edges, 1)
	assert.Equal(t, "LINESTRING(30.31 59.93, 30.32 59.935)", edges[0].Geometry.Selection)
}

func TestClient_GeoSearch(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"meta": {"code": 200},
			"result": {"items": [{"name": "pub", "geometry": {"selection": "POINT(30.31 59.93)"}}]}
		}`))
	})

	resp, err := client.GeoSearch(context.Background(),
		orb.Point{30.281, 59.949}, orb.Point{30.339, 59.911}, "Bar")
	require.NoError(t, err)

	assert.Equal(t, "/geo/search", gotPath)
	assert.Equal(t, "30.281,59.949", gotQuery.Get("point1"))
	assert.Equal(t, "30.339,59.911", gotQuery.Get("point2"))
	assert.Equal(t, "Bar", gotQuery.Get("q"))
	assert.Equal(t, "items.geometry.selection", gotQuery.Get("fields"))
	assert.Equal(t, "attraction,building,poi", gotQuery.Get("type"))

	assert.True(t, resp.OK())
	require.Len(t, resp.Result.Items, 1)
	assert.Equal(t, "pub", resp.Result.Items[0]["name"])
}

func TestClient_GeoSearch_OmitsEmptyQuery(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"meta": {"code": 200}, "result": {"items": []}}`))
	})

	_, err := client.GeoSearch(context.Background(),
		orb.Point{30.281, 59.949}, orb.Point{30.339, 59.911}, "")
	require.NoError(t, err)

	_, present := gotQuery["q"]
	assert.False(t, present)
}

func TestClient_CatalogSearch(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"meta": {"code": 200},
			"result": {"items": [{"name": "store", "point": {"lon": 30.31, "lat": 59.93}}]}
		}`))
	})

	resp, err := client.CatalogSearch(context.Background(),
		orb.Point{30.281, 59.949}, orb.Point{30.339, 59.911}, "Grocery")
	require.NoError(t, err)

	assert.Equal(t, "/catalog/branch/search", gotPath)
	assert.Equal(t, "items.point", gotQuery.Get("fields"))
	assert.Equal(t, "Grocery", gotQuery.Get("q"))

	require.Len(t, resp.Result.Items, 1)
	point, ok := resp.Result.Items[0].Point()
	require.True(t, ok)
	assert.Equal(t, orb.Point{30.31, 59.93}, point)
}

func TestClient_NearbySearch(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"meta": {"code": 200}, "result": {"items": []}}`))
	})

	_, err := client.NearbySearch(context.Background(), orb.Point{30.31, 59.93}, 100)
	require.NoError(t, err)

	assert.Equal(t, "/geo/search", gotPath)
	assert.Equal(t, "30.31,59.93", gotQuery.Get("point"))
	assert.Equal(t, "100", gotQuery.Get("radius"))
	assert.Equal(t, "1", gotQuery.Get("page_size"))
	assert.Equal(t, "attraction,poi", gotQuery.Get("type"))
}

func TestClient_ProviderStatusPassedThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meta": {"code": 404}, "result": {"items": []}}`))
	})

	resp, err := client.GeoSearch(context.Background(),
		orb.Point{30.281, 59.949}, orb.Point{30.339, 59.911}, "Bar")
	require.NoError(t, err)

	assert.False(t, resp.OK())
	assert.Equal(t, 404, resp.Meta.Code)
}

func TestClient_BadResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := client.GeoSearch(context.Background(),
		orb.Point{30.281, 59.949}, orb.Point{30.339, 59.911}, "Bar")
	assert.ErrorContains(t, err, "decode search response")
}

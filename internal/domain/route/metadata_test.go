package route

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemMetadata_Point(t *testing.T) {
	var item ItemMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"name":"cafe","point":{"lon":30.31,"lat":59.93}}`), &item))

	p, ok := item.Point()
	require.True(t, ok)
	assert.Equal(t, orb.Point{30.31, 59.93}, p)
}

func TestItemMetadata_Point_Missing(t *testing.T) {
	_, ok := ItemMetadata{"name": "cafe"}.Point()
	assert.False(t, ok)

	_, ok = ItemMetadata{"point": map[string]any{"lon": "broken"}}.Point()
	assert.False(t, ok)
}

func TestItemMetadata_GeometryWKT(t *testing.T) {
	var item ItemMetadata
	require.NoError(t, json.Unmarshal([]byte(`{"geometry":{"selection":"POINT(30.31 59.93)"}}`), &item))

	selection, ok := item.GeometryWKT()
	require.True(t, ok)
	assert.Equal(t, "POINT(30.31 59.93)", selection)

	_, ok = ItemMetadata{}.GeometryWKT()
	assert.False(t, ok)
}

func TestItemMetadata_SetPoint_NormalizesEncoding(t *testing.T) {
	item := ItemMetadata{"point": map[string]any{"lon": 30.31, "lat": 59.93}}
	item.SetPoint(orb.Point{30.31, 59.93})

	assert.Equal(t, map[string]any{"longitude": 30.31, "latitude": 59.93}, item["point"])
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygon_WKT_ClosesRing(t *testing.T) {
	p := Polygon{{Lon: 24.7, Lat: 59.4}, {Lon: 24.9, Lat: 59.4}, {Lon: 24.8, Lat: 59.5}}
	assert.Equal(t, "POLYGON((24.7 59.4, 24.9 59.4, 24.8 59.5, 24.7 59.4))", p.WKT())
}

func TestPolygon_WKT_AlreadyClosedRing_NotDoubled(t *testing.T) {
	p := Polygon{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 0}}
	assert.Equal(t, "POLYGON((0 0, 1 0, 1 1, 0 0))", p.WKT())
}

func TestPolygon_WKT_Empty(t *testing.T) {
	assert.Empty(t, Polygon{}.WKT())
}

func TestParsePolygonWKT_RoundTrip(t *testing.T) {
	p := Polygon{{Lon: 24.7, Lat: 59.4}, {Lon: 24.9, Lat: 59.4}, {Lon: 24.8, Lat: 59.5}}

	got, err := ParsePolygonWKT(p.WKT())
	require.NoError(t, err)
	// the closing vertex added on the wire is dropped again
	assert.Equal(t, p, got)
}

func TestParsePolygonWKT_Empty(t *testing.T) {
	got, err := ParsePolygonWKT("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParsePolygonWKT_Malformed(t *testing.T) {
	for _, wkt := range []string{
		"LINESTRING(0 0, 1 1)",
		"POLYGON(0 0, 1 1)",
		"POLYGON((0 0, 1))",
		"POLYGON((a b, 1 1))",
		"POLYGON((0 0, 1 x))",
	} {
		_, err := ParsePolygonWKT(wkt)
		assert.Error(t, err, "expected %q to be rejected", wkt)
	}
}

func TestPolygon_IsValid(t *testing.T) {
	assert.False(t, Polygon{}.IsValid())
	assert.False(t, Polygon{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}.IsValid())
	// three vertices but only two distinct points
	assert.False(t, Polygon{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}, {Lon: 0, Lat: 0}}.IsValid())
	assert.True(t, Polygon{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 0}, {Lon: 1, Lat: 1}}.IsValid())
}

func TestZone_DisplayName(t *testing.T) {
	named := &Zone{ID: 3, Name: "North Reach"}
	assert.Equal(t, "North Reach", named.DisplayName())

	unnamed := &Zone{ID: 3}
	assert.Equal(t, "zone #3", unnamed.DisplayName())
}

package maptile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionRoundTrip(t *testing.T) {
	for _, c := range []struct{ lat, lng float64 }{
		{13.0827, 80.2707},
		{0, 0},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
	} {
		x, y := LatLngToPixel(c.lat, c.lng, 13)
		lat, lng := PixelToLatLng(x, y, 13)
		assert.InDelta(t, c.lat, lat, 1e-9)
		assert.InDelta(t, c.lng, lng, 1e-9)
	}
}

func TestLatLngToPixel_Origin(t *testing.T) {
	x, y := LatLngToPixel(0, 0, 1)
	assert.InDelta(t, 256.0, x, 1e-9)
	assert.InDelta(t, 256.0, y, 1e-9)
}

func TestViewport(t *testing.T) {
	v := Viewport{CenterLat: 13.0827, CenterLng: 80.2707, Zoom: 13, Width: 800, Height: 600}

	assert.Equal(t, 13, v.BaseZoom())
	assert.Equal(t, 1.0, v.Scale())

	px, py := v.ScreenPoint(v.CenterLat, v.CenterLng)
	assert.InDelta(t, 400.0, px, 1e-6)
	assert.InDelta(t, 300.0, py, 1e-6)

	tiles := v.Tiles()
	require.NotEmpty(t, tiles)
	for _, tl := range tiles {
		assert.Equal(t, 13, tl.Z)
	}
	// the first tile starts at or before the top-left corner
	assert.LessOrEqual(t, tiles[0].Left, 0.0)
	assert.LessOrEqual(t, tiles[0].Top, 0.0)
	last := tiles[len(tiles)-1]
	assert.GreaterOrEqual(t, last.Left+TileSize, 800.0)
	assert.GreaterOrEqual(t, last.Top+TileSize, 600.0)
}

func TestViewport_FractionalZoom(t *testing.T) {
	v := Viewport{Zoom: 12.5, Width: 100, Height: 100}
	assert.Equal(t, 13, v.BaseZoom())
	assert.InDelta(t, 0.7071, v.Scale(), 1e-4)
}

func TestViewport_ZoomAtKeepsAnchor(t *testing.T) {
	v := Viewport{CenterLat: 13.0827, CenterLng: 80.2707, Zoom: 13, Width: 800, Height: 600}
	lat, lng := v.LatLngAt(100, 100)

	z := v.ZoomAt(100, 100, 14.5)
	assert.Equal(t, 14.5, z.Zoom)
	lat2, lng2 := z.LatLngAt(100, 100)
	assert.InDelta(t, lat, lat2, 1e-3)
	assert.InDelta(t, lng, lng2, 1e-3)

	assert.Equal(t, float64(MaxZoom), v.ZoomAt(0, 0, 40).Zoom)
	assert.Equal(t, float64(MinZoom), v.ZoomAt(0, 0, -3).Zoom)
}

func TestViewport_Pan(t *testing.T) {
	v := Viewport{CenterLat: 10, CenterLng: 10, Zoom: 10, Width: 400, Height: 400}
	moved := v.Pan(50, 0)
	assert.Greater(t, moved.CenterLng, v.CenterLng)
	assert.InDelta(t, v.CenterLat, moved.CenterLat, 1e-9)
}

func TestURL(t *testing.T) {
	tmpl := "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	assert.Equal(t, "https://c.tile.openstreetmap.org/13/5922/3785.png", URL(tmpl, []string{"a", "b", "c"}, 13, 5922, 3785))
	assert.Equal(t, "https://a.tile.openstreetmap.org/1/0/0.png", URL(tmpl, []string{"a", "b", "c"}, 1, 2, 0))
	assert.Equal(t, "/tiles/3/7/1.png", URL("/tiles/{z}/{x}/{y}.png", nil, 3, -1, 1))
}

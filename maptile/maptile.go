// Package maptile is the slippy-map arithmetic behind the canvas map view:
// Web-Mercator projection, viewport tiling and tile URL templating.
package maptile

import (
	"math"
	"strconv"
	"strings"
)

const (
	MinZoom  = 1
	MaxZoom  = 18
	TileSize = 256
)

// LatLngToPixel projects a coordinate to world pixels at zoom.
func LatLngToPixel(lat, lng, zoom float64) (float64, float64) {
	latRad := lat * math.Pi / 180.0
	n := math.Pow(2.0, zoom)
	x := (lng + 180.0) / 360.0 * n * TileSize
	y := (1.0 - math.Asinh(math.Tan(latRad))/math.Pi) / 2.0 * n * TileSize
	return x, y
}

// PixelToLatLng is the inverse of LatLngToPixel.
func PixelToLatLng(x, y, zoom float64) (float64, float64) {
	n := math.Pow(2.0, zoom)
	lng := (x/TileSize)/n*360.0 - 180.0
	latRad := math.Atan(math.Sinh(math.Pi * (1.0 - 2.0*y/(n*TileSize))))
	return latRad * 180.0 / math.Pi, lng
}

func ClampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// Tile is one tile placed on screen.
type Tile struct {
	Z, X, Y int
	// Left and Top are the offsets of the tile inside the unscaled container.
	Left, Top float64
}

// Viewport describes what the map shows: a center, a fractional zoom and
// the screen size in CSS pixels.
type Viewport struct {
	CenterLat, CenterLng float64
	Zoom                 float64
	Width, Height        float64
}

// BaseZoom is the integer zoom whose tiles are drawn.
func (v Viewport) BaseZoom() int {
	z := int(math.Ceil(v.Zoom))
	if z < MinZoom {
		z = MinZoom
	}
	if z > MaxZoom {
		z = MaxZoom
	}
	return z
}

// Scale is the CSS scale applied to base-zoom tiles for fractional zoom.
func (v Viewport) Scale() float64 {
	return math.Pow(2, v.Zoom-float64(v.BaseZoom()))
}

// origin is the world pixel at the top-left screen corner, at base zoom.
func (v Viewport) origin() (float64, float64) {
	scale := v.Scale()
	cx, cy := LatLngToPixel(v.CenterLat, v.CenterLng, float64(v.BaseZoom()))
	return cx - (v.Width/2)/scale, cy - (v.Height/2)/scale
}

// Tiles lists the tiles covering the viewport, row by row.
func (v Viewport) Tiles() []Tile {
	z := v.BaseZoom()
	scale := v.Scale()
	tx, ty := v.origin()

	startX := int(math.Floor(tx / TileSize))
	startY := int(math.Floor(ty / TileSize))
	numX := int(math.Ceil(v.Width/(TileSize*scale))) + 1
	numY := int(math.Ceil(v.Height/(TileSize*scale))) + 1

	tiles := make([]Tile, 0, (numX+1)*(numY+1))
	for y := 0; y <= numY; y++ {
		for x := 0; x <= numX; x++ {
			tileX, tileY := startX+x, startY+y
			tiles = append(tiles, Tile{
				Z:    z,
				X:    tileX,
				Y:    tileY,
				Left: float64(tileX*TileSize) - tx,
				Top:  float64(tileY*TileSize) - ty,
			})
		}
	}
	return tiles
}

// ScreenPoint returns where a coordinate lands on screen.
func (v Viewport) ScreenPoint(lat, lng float64) (float64, float64) {
	tx, ty := v.origin()
	wx, wy := LatLngToPixel(lat, lng, float64(v.BaseZoom()))
	scale := v.Scale()
	return (wx - tx) * scale, (wy - ty) * scale
}

// LatLngAt returns the coordinate under a screen point.
func (v Viewport) LatLngAt(px, py float64) (float64, float64) {
	tx, ty := v.origin()
	scale := v.Scale()
	return PixelToLatLng(px/scale+tx, py/scale+ty, float64(v.BaseZoom()))
}

// Pan moves the center by a screen-space delta.
func (v Viewport) Pan(dx, dy float64) Viewport {
	lat, lng := v.LatLngAt(v.Width/2+dx, v.Height/2+dy)
	v.CenterLat, v.CenterLng = lat, lng
	return v
}

// ZoomAt changes the zoom while keeping the coordinate under (px, py) in
// place.
func (v Viewport) ZoomAt(px, py, zoom float64) Viewport {
	lat1, lng1 := v.LatLngAt(px, py)
	v.Zoom = ClampZoom(zoom)
	lat2, lng2 := v.LatLngAt(px, py)
	v.CenterLat += lat1 - lat2
	v.CenterLng += lng1 - lng2
	return v
}

// URL fills a Leaflet-style template ({s}, {z}, {x}, {y}). Subdomains are
// picked deterministically from the tile position.
func URL(template string, subdomains []string, z, x, y int) string {
	n := 1 << uint(z)
	// wrap around the antimeridian
	x = ((x % n) + n) % n
	s := ""
	if len(subdomains) > 0 {
		idx := (x + y) % len(subdomains)
		if idx < 0 {
			idx += len(subdomains)
		}
		s = subdomains[idx]
	}
	r := strings.NewReplacer(
		"{s}", s,
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	)
	return r.Replace(template)
}

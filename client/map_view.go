//go:build js

package main

import (
	"context"
	"fmt"
	"math"
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/app"
	"voyagex-front/maptile"
	"voyagex-front/pages"
)

const (
	zoomSpeed       = 0.01
	minRedrawMs     = 80
	clickSlopPixels = 5
)

// Point represents a 2D point
type Point struct {
	X, Y int
}

// MapView draws OpenStreetMap tiles on canvases and pins the markers of
// the map page on top of them.
type MapView struct {
	vecty.Core

	app      *app.App
	ctx      context.Context
	viewport maptile.Viewport
	markers  []pages.Marker
	synced   pages.MapScreen

	tileContainer   js.Value
	markerContainer js.Value
	isMounted       bool
	isDragging      bool
	dragStart       Point
	lastDrag        Point

	isRedrawScheduled bool
	lastRedrawMs      int
}

func NewMapView(ctx context.Context, a *app.App) *MapView {
	m := &MapView{app: a, ctx: ctx}
	m.Sync()
	return m
}

// Sync adopts center, zoom and markers from the map page model. A model
// that has not changed since the last sync leaves panning and zooming
// alone.
func (m *MapView) Sync() {
	screen := m.app.Content.Map()
	if screen.Zoom == 0 {
		// not loaded yet
		screen.Zoom = m.app.Config().Map.Zoom
		screen.Center = m.app.State.Location()
	}
	if screen.Center != m.synced.Center || screen.Zoom != m.synced.Zoom {
		m.viewport.CenterLat = screen.Center.Lat
		m.viewport.CenterLng = screen.Center.Lng
		m.viewport.Zoom = float64(screen.Zoom)
	}
	m.markers = screen.Markers
	m.synced = screen
	m.DrawMap()
}

func (m *MapView) Mount() {
	doc := js.Global().Get("document")
	m.tileContainer = doc.Call("createElement", "div")
	style := m.tileContainer.Get("style")
	style.Set("position", "absolute")
	style.Set("top", "0")
	style.Set("left", "0")
	style.Set("will-change", "transform")

	m.markerContainer = doc.Call("createElement", "div")
	m.markerContainer.Set("className", "map-markers")

	// retry until the viewport element is in the DOM
	retries := 0
	var attachFunc js.Func
	attachFunc = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		viewport := doc.Call("querySelector", ".map-viewport")
		if !viewport.IsUndefined() && !viewport.IsNull() {
			viewport.Call("appendChild", m.tileContainer)
			viewport.Call("appendChild", m.markerContainer)
			m.isMounted = true
			m.DrawMap()
			attachFunc.Release()
			return nil
		}
		retries++
		if retries < 30 {
			js.Global().Call("requestAnimationFrame", attachFunc)
		}
		return nil
	})
	js.Global().Call("requestAnimationFrame", attachFunc)
}

func (m *MapView) Unmount() {
	if m.isMounted {
		m.tileContainer.Call("remove")
		m.markerContainer.Call("remove")
	}
	m.isMounted = false
}

func (m *MapView) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(
			vecty.Class("map-viewport"),
			vecty.Style("position", "relative"),
			vecty.Style("overflow", "hidden"),
			vecty.Style("width", "100%"),
			vecty.Style("height", "60vh"),
			vecty.Style("cursor", "grab"),
			event.MouseDown(m.onMouseDown),
			event.MouseMove(m.onMouseMove),
			event.MouseUp(m.onMouseUp),
			event.MouseLeave(m.onMouseUp),
			event.Wheel(m.onWheel),
		),
	)
}

// Viewport returns what the map currently shows.
func (m *MapView) Viewport() maptile.Viewport {
	return m.viewport
}

// ZoomBy changes the zoom around the center of the map.
func (m *MapView) ZoomBy(delta float64) {
	m.viewport = m.viewport.ZoomAt(m.viewport.Width/2, m.viewport.Height/2, m.viewport.Zoom+delta)
	m.DrawMap()
}

func (m *MapView) measure() {
	el := js.Global().Get("document").Call("querySelector", ".map-viewport")
	if el.IsUndefined() || el.IsNull() {
		m.viewport.Width = js.Global().Get("innerWidth").Float()
		m.viewport.Height = js.Global().Get("innerHeight").Float()
		return
	}
	m.viewport.Width = el.Get("clientWidth").Float()
	m.viewport.Height = el.Get("clientHeight").Float()
}

// --- Map Drawing ---

func (m *MapView) DrawMap() {
	if !m.isMounted {
		return
	}
	m.isRedrawScheduled = false
	m.lastRedrawMs = js.Global().Get("Date").New().Call("getTime").Int()
	m.measure()

	cfg := m.app.Config().Map
	m.tileContainer.Set("innerHTML", "")
	containerStyle := m.tileContainer.Get("style")
	containerStyle.Set("transform", fmt.Sprintf("scale(%.6f)", m.viewport.Scale()))
	containerStyle.Set("transform-origin", "top left")

	doc := js.Global().Get("document")
	for _, t := range m.viewport.Tiles() {
		canvas := doc.Call("createElement", "canvas")
		canvas.Set("width", maptile.TileSize)
		canvas.Set("height", maptile.TileSize)
		style := canvas.Get("style")
		style.Set("position", "absolute")
		style.Set("left", fmt.Sprintf("%.3fpx", t.Left))
		style.Set("top", fmt.Sprintf("%.3fpx", t.Top))
		m.tileContainer.Call("appendChild", canvas)
		drawTile(canvas, maptile.URL(cfg.TileURL, cfg.Subdomains, t.Z, t.X, t.Y))
	}
	m.drawMarkers()
}

func drawTile(canvas js.Value, url string) {
	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", "#f2f2f2")
	ctx.Call("fillRect", 0, 0, maptile.TileSize, maptile.TileSize)

	img := js.Global().Get("Image").New()
	img.Set("crossOrigin", "anonymous")
	var onLoad js.Func
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		ctx.Call("drawImage", img, 0, 0)
		onLoad.Release()
		return nil
	})
	img.Call("addEventListener", "load", onLoad)
	img.Set("src", url)
}

func (m *MapView) drawMarkers() {
	m.markerContainer.Set("innerHTML", "")
	doc := js.Global().Get("document")
	for _, mk := range m.markers {
		x, y := m.viewport.ScreenPoint(mk.Lat, mk.Lng)
		if x < 0 || y < 0 || x > m.viewport.Width || y > m.viewport.Height {
			continue
		}
		pin := doc.Call("createElement", "div")
		if mk.User {
			pin.Set("className", "map-marker user-marker")
		} else {
			pin.Set("className", "map-marker")
		}
		pin.Set("title", mk.Title)
		pin.Set("innerHTML", `<i class="fas fa-map-marker-alt"></i><div class="marker-popup"><b></b><span></span></div>`)
		pin.Call("querySelector", "b").Set("textContent", mk.Title)
		pin.Call("querySelector", "span").Set("textContent", mk.Subtitle)
		style := pin.Get("style")
		style.Set("position", "absolute")
		style.Set("left", fmt.Sprintf("%.1fpx", x))
		style.Set("top", fmt.Sprintf("%.1fpx", y))
		m.markerContainer.Call("appendChild", pin)
	}
}

func (m *MapView) scheduleDraw() {
	if m.isRedrawScheduled {
		return
	}
	now := js.Global().Get("Date").New().Call("getTime").Int()
	delay := minRedrawMs - (now - m.lastRedrawMs)
	if delay < 0 {
		delay = 0
	}
	m.isRedrawScheduled = true
	var onTimeout js.Func
	onTimeout = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		onTimeout.Release()
		var onFrame js.Func
		onFrame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			onFrame.Release()
			m.DrawMap()
			return nil
		})
		js.Global().Call("requestAnimationFrame", onFrame)
		return nil
	})
	js.Global().Call("setTimeout", onTimeout, delay)
}

// --- Event Handlers ---

func (m *MapView) onMouseDown(e *vecty.Event) {
	e.Call("preventDefault")
	m.isDragging = true
	pos := Point{X: e.Get("clientX").Int(), Y: e.Get("clientY").Int()}
	m.dragStart = pos
	m.lastDrag = pos
}

func (m *MapView) onMouseMove(e *vecty.Event) {
	if !m.isDragging {
		return
	}
	e.Call("preventDefault")
	pos := Point{X: e.Get("clientX").Int(), Y: e.Get("clientY").Int()}
	m.viewport = m.viewport.Pan(float64(m.lastDrag.X-pos.X), float64(m.lastDrag.Y-pos.Y))
	m.lastDrag = pos
	m.scheduleDraw()
}

func (m *MapView) onMouseUp(e *vecty.Event) {
	if !m.isDragging {
		return
	}
	m.isDragging = false
	dx := math.Abs(float64(m.lastDrag.X - m.dragStart.X))
	dy := math.Abs(float64(m.lastDrag.Y - m.dragStart.Y))
	if dx < clickSlopPixels && dy < clickSlopPixels {
		m.handleClick(e)
	}
}

// handleClick opens the attraction whose pin is closest to the click.
func (m *MapView) handleClick(e *vecty.Event) {
	rect := e.Get("currentTarget").Call("getBoundingClientRect")
	px := e.Get("clientX").Float() - rect.Get("left").Float()
	py := e.Get("clientY").Float() - rect.Get("top").Float()

	const hitRadius = 16.0
	best, bestDist := -1, hitRadius
	for i, mk := range m.markers {
		if mk.User {
			continue
		}
		x, y := m.viewport.ScreenPoint(mk.Lat, mk.Lng)
		if d := math.Hypot(x-px, y-py); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return
	}
	title := m.markers[best].Title
	for _, a := range m.app.State.Attractions() {
		if a.Name == title {
			id := a.ID
			go func() {
				if err := m.app.ViewAttraction(m.ctx, id); err != nil {
					js.Global().Get("console").Call("warn", err.Error())
				}
			}()
			return
		}
	}
}

func (m *MapView) onWheel(e *vecty.Event) {
	e.Call("preventDefault")
	rect := e.Get("currentTarget").Call("getBoundingClientRect")
	px := e.Get("clientX").Float() - rect.Get("left").Float()
	py := e.Get("clientY").Float() - rect.Get("top").Float()
	delta := e.Get("deltaY").Float()
	m.viewport = m.viewport.ZoomAt(px, py, m.viewport.Zoom-delta*zoomSpeed)
	m.scheduleDraw()
}

//go:build js

package main

import (
	"context"
	"fmt"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"
)

var mapFilters = []string{"all", "restaurants", "hotels", "attractions", "transport"}

// MapControls holds the map's zoom buttons, filters, relocation and the
// nearby transport panel.
type MapControls struct {
	vecty.Core

	shell   *Shell
	mapView *MapView

	filter         string
	isPanelVisible bool
}

func NewMapControls(s *Shell, mapView *MapView) *MapControls {
	return &MapControls{shell: s, mapView: mapView, filter: "all", isPanelVisible: true}
}

func (u *MapControls) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("map-controls")),
		u.renderFilters(),
		u.renderZoomControls(),
		u.renderCoordinateInfo(),
		u.renderPanelToggle(),
		vecty.If(u.isPanelVisible, u.renderTransport()),
	)
}

func (u *MapControls) renderFilters() vecty.ComponentOrHTML {
	buttons := make(vecty.List, 0, len(mapFilters))
	for _, f := range mapFilters {
		f := f
		buttons = append(buttons, elem.Button(
			vecty.Markup(
				vecty.Class("map-btn"),
				vecty.ClassMap{"active": u.filter == f},
				event.Click(func(e *vecty.Event) {
					u.filter = f
					vecty.Rerender(u)
					go u.shell.app.MapFilter(u.shell.ctx, f)
				}),
			),
			vecty.Text(f),
		))
	}
	return elem.Div(vecty.Markup(vecty.Class("map-filters")), buttons)
}

func (u *MapControls) renderZoomControls() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("map-zoom")),
		elem.Button(vecty.Text("+"), vecty.Markup(event.Click(func(e *vecty.Event) {
			u.mapView.ZoomBy(0.5)
			vecty.Rerender(u)
		}))),
		elem.Button(vecty.Text("-"), vecty.Markup(event.Click(func(e *vecty.Event) {
			u.mapView.ZoomBy(-0.5)
			vecty.Rerender(u)
		}))),
		elem.Button(
			vecty.Markup(vecty.Class("locate-btn"), event.Click(func(e *vecty.Event) {
				u.shell.run("relocate", func(ctx context.Context) error { return u.shell.app.Relocate(ctx) })
			})),
			elem.Italic(vecty.Markup(vecty.Class("fas", "fa-location-arrow"))),
		),
	)
}

func (u *MapControls) renderCoordinateInfo() vecty.ComponentOrHTML {
	v := u.mapView.Viewport()
	return elem.Div(
		vecty.Markup(vecty.Class("map-coords")),
		vecty.Text(fmt.Sprintf("Lat: %.4f, Lng: %.4f, Zoom: %.2f", v.CenterLat, v.CenterLng, v.Zoom)),
		elem.Small(vecty.Text(u.shell.app.Config().Map.Attribution)),
	)
}

func (u *MapControls) renderPanelToggle() vecty.ComponentOrHTML {
	return elem.Button(
		vecty.Markup(vecty.Class("panel-toggle"), event.Click(func(e *vecty.Event) {
			u.isPanelVisible = !u.isPanelVisible
			vecty.Rerender(u)
		})),
		vecty.Text("☰"),
	)
}

func (u *MapControls) renderTransport() vecty.ComponentOrHTML {
	items := vecty.List{}
	for _, t := range u.shell.app.Content.Map().Transport {
		items = append(items, elem.Div(
			vecty.Markup(vecty.Class("transport-item")),
			elem.Italic(vecty.Markup(vecty.Class("fas", t.Icon))),
			elem.Div(
				elem.Strong(vecty.Text(t.Type+" "+t.Service)),
				elem.Small(vecty.Text("To "+t.Destination)),
			),
			elem.Span(vecty.Markup(vecty.Class("eta")), vecty.Text(t.ETA)),
		))
	}
	return elem.Div(
		vecty.Markup(vecty.Class("transport-panel", "glass-card")),
		elem.Heading4(vecty.Text("Nearby Transport")),
		items,
	)
}

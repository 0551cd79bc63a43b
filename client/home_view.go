//go:build js

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/pages"
	"voyagex-front/state"
)

func renderDashboard(s *Shell, d pages.Dashboard) vecty.ComponentOrHTML {
	featured := vecty.List{}
	for _, a := range d.Featured {
		featured = append(featured, attractionCard(s, a))
	}
	routes := vecty.List{}
	for _, r := range d.Routes {
		routes = append(routes, suggestedRoute(s, r))
	}
	events := vecty.List{}
	for _, ev := range d.Events {
		events = append(events, elem.Div(
			vecty.Markup(vecty.Class("event-card")),
			elem.Div(
				vecty.Markup(vecty.Class("event-date")),
				elem.Strong(vecty.Text(strconv.Itoa(ev.Day))),
				elem.Span(vecty.Text(ev.Month)),
			),
			elem.Div(
				vecty.Markup(vecty.Class("event-info")),
				elem.Heading4(vecty.Text(ev.Title)),
				elem.Paragraph(vecty.Text(ev.Location+" · "+ev.Time)),
				elem.Small(vecty.Text(ev.Description)),
			),
		))
	}

	return elem.Div(
		elem.Section(
			vecty.Markup(vecty.Class("hero", "glass-card")),
			elem.Div(
				vecty.Markup(vecty.Class("weather")),
				elem.Span(vecty.Markup(vecty.Class("temperature")), vecty.Text(d.Temperature)),
				elem.Span(vecty.Markup(vecty.Class("location-name")), vecty.Text(d.LocationName)),
			),
			renderStats(d.Stats),
		),
		elem.Section(
			vecty.Markup(vecty.Class("quick-actions")),
			quickAction(s, "fa-map-marked-alt", "Map", state.PageMap),
			quickAction(s, "fa-route", "Routes", state.PageRoutes),
			quickAction(s, "fa-ticket-alt", "Book", state.PageBooking),
			quickAction(s, "fa-calendar-alt", "Plan", state.PageItinerary),
		),
		elem.Section(
			vecty.Markup(vecty.Class("tip-card", "glass-card")),
			elem.Italic(vecty.Markup(vecty.Class("fas", "fa-lightbulb"))),
			elem.Paragraph(vecty.Text(d.Tip)),
		),
		section("Featured Attractions", elem.Div(vecty.Markup(vecty.Class("featured-attractions")), featured)),
		section("Suggested Routes", elem.Div(vecty.Markup(vecty.Class("suggested-routes")), routes)),
		section("Upcoming Events", elem.Div(vecty.Markup(vecty.Class("events")), events)),
	)
}

func renderStats(st pages.StatsView) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("stats")),
		stat(st.PlacesVisited, "Places"),
		stat(st.Distance, "Traveled"),
		stat(st.Badges, "Badges"),
		stat(st.CarbonSaved, "CO₂ Saved"),
	)
}

func section(title string, body vecty.ComponentOrHTML) vecty.ComponentOrHTML {
	return elem.Section(
		vecty.Markup(vecty.Class("section")),
		elem.Heading3(vecty.Markup(vecty.Class("section-title")), vecty.Text(title)),
		body,
	)
}

func quickAction(s *Shell, icon, label string, p state.Page) vecty.ComponentOrHTML {
	return elem.Anchor(
		vecty.Markup(
			vecty.Class("quick-action"),
			vecty.Property("href", p.Hash()),
			event.Click(func(e *vecty.Event) { s.navigate(p) }).PreventDefault(),
		),
		elem.Italic(vecty.Markup(vecty.Class("fas", icon))),
		elem.Span(vecty.Text(label)),
	)
}

func suggestedRoute(s *Shell, r pages.SuggestedRoute) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(
			vecty.Class("route-card", "glass-card"),
			event.Click(func(e *vecty.Event) { s.navigate(state.PageRoutes) }),
		),
		elem.Italic(vecty.Markup(vecty.Class("fas", r.Icon))),
		elem.Div(
			elem.Heading4(vecty.Text(r.Name)),
			elem.Small(vecty.Text(fmt.Sprintf("%s · %s · %s · %d stops", r.Type, r.Distance, r.Duration, r.Stops))),
		),
		elem.Span(vecty.Markup(vecty.Class("cost")), vecty.Text(r.Cost)),
	)
}

func attractionCard(s *Shell, a state.Attraction) vecty.ComponentOrHTML {
	id := a.ID
	return elem.Div(
		vecty.Markup(
			vecty.Class("attraction-card"),
			event.Click(func(e *vecty.Event) {
				s.run("view-attraction", func(ctx context.Context) error { return s.app.ViewAttraction(ctx, id) })
			}),
		),
		elem.Image(vecty.Markup(vecty.Property("src", a.Image), vecty.Attribute("alt", a.Name), vecty.Attribute("loading", "lazy"))),
		elem.Div(
			vecty.Markup(vecty.Class("attraction-info")),
			elem.Heading4(vecty.Text(a.Name)),
			elem.Div(
				vecty.Markup(vecty.Class("attraction-meta")),
				elem.Span(vecty.Text(fmt.Sprintf("⭐ %.1f (%d)", a.Rating, a.Reviews))),
				elem.Span(vecty.Text(a.Distance)),
				elem.Span(vecty.Markup(vecty.Class("price")), vecty.Text(a.Price)),
			),
			elem.Span(
				vecty.Markup(vecty.Class("crowd"), vecty.ClassMap{"crowd-high": a.Busy()}),
				vecty.Text("Crowd: "+a.Crowd),
			),
		),
	)
}

// SearchBox is the header search. Results show while the query is long
// enough to match.
type SearchBox struct {
	vecty.Core
	Shell *Shell `vecty:"prop"`

	query   string
	results []state.Attraction
}

func (b *SearchBox) Render() vecty.ComponentOrHTML {
	s := b.Shell
	items := vecty.List{}
	for _, a := range b.results {
		id := a.ID
		items = append(items, elem.Div(
			vecty.Markup(
				vecty.Class("search-result"),
				event.Click(func(e *vecty.Event) {
					b.query, b.results = "", nil
					vecty.Rerender(b)
					s.run("view-attraction", func(ctx context.Context) error { return s.app.ViewAttraction(ctx, id) })
				}),
			),
			elem.Strong(vecty.Text(a.Name)),
			elem.Small(vecty.Text(a.Category)),
		))
	}
	return elem.Div(
		vecty.Markup(vecty.Class("search-box")),
		elem.Input(vecty.Markup(
			vecty.Property("type", "search"),
			vecty.Attribute("placeholder", "Search attractions..."),
			vecty.Property("value", b.query),
			event.Input(func(e *vecty.Event) {
				b.query = e.Target.Get("value").String()
				b.results = s.app.Search(b.query)
				vecty.Rerender(b)
			}),
		)),
		vecty.If(len(b.results) > 0, elem.Div(vecty.Markup(vecty.Class("search-results")), items)),
	)
}

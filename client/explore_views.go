//go:build js

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/app"
	"voyagex-front/pages"
)

var attractionCategories = []string{"all", "beach", "temple", "museum", "historical"}

func renderAttractions(s *Shell, l pages.AttractionList) vecty.ComponentOrHTML {
	chips := make(vecty.List, 0, len(attractionCategories))
	for _, c := range attractionCategories {
		c := c
		chips = append(chips, elem.Button(
			vecty.Markup(
				vecty.Class("filter-chip"),
				vecty.ClassMap{"active": l.Category == c},
				event.Click(func(e *vecty.Event) { s.app.FilterAttractions(c) }),
			),
			vecty.Text(strings.ToUpper(c[:1])+c[1:]),
		))
	}
	layoutButton := func(layout pages.Layout, icon string) vecty.ComponentOrHTML {
		return elem.Button(
			vecty.Markup(
				vecty.Class("view-btn"),
				vecty.ClassMap{"active": l.Layout == layout},
				event.Click(func(e *vecty.Event) { s.app.SetAttractionLayout(layout) }),
			),
			elem.Italic(vecty.Markup(vecty.Class("fas", icon))),
		)
	}

	cards := make(vecty.List, 0, len(l.Items))
	for _, a := range l.Items {
		id := a.ID
		cards = append(cards, elem.Div(
			vecty.Markup(vecty.Class("attraction-item")),
			attractionCard(s, a),
			elem.Div(
				vecty.Markup(vecty.Class("card-actions")),
				elem.Button(
					vecty.Markup(vecty.Class("icon-btn"), event.Click(func(e *vecty.Event) { s.app.ToggleFavorite(id) }).StopPropagation()),
					elem.Italic(vecty.Markup(vecty.Class("far", "fa-heart"))),
				),
				elem.Button(
					vecty.Markup(vecty.Class("icon-btn"), event.Click(func(e *vecty.Event) { s.app.Share(id) }).StopPropagation()),
					elem.Italic(vecty.Markup(vecty.Class("fas", "fa-share-alt"))),
				),
			),
		))
	}

	return elem.Div(
		elem.Div(vecty.Markup(vecty.Class("filter-chips")), chips),
		elem.Div(
			vecty.Markup(vecty.Class("view-toggle")),
			layoutButton(pages.LayoutGrid, "fa-th"),
			layoutButton(pages.LayoutList, "fa-list"),
		),
		elem.Div(
			vecty.Markup(vecty.Class("attractions-grid"), vecty.ClassMap{"list-view": l.Layout == pages.LayoutList}),
			cards,
		),
	)
}

func renderAttractionDetail(s *Shell, d pages.AttractionDetail) vecty.ComponentOrHTML {
	a := d.Attraction
	if a.ID == 0 {
		return elem.Div(vecty.Markup(vecty.Class("empty-state")), vecty.Text("Pick an attraction to see its details."))
	}
	tags := vecty.List{}
	for _, t := range d.Tags {
		tags = append(tags, elem.Span(vecty.Markup(vecty.Class("tag")), vecty.Text(t)))
	}
	peak := vecty.List{}
	for _, p := range d.Peak {
		peak = append(peak, elem.Div(
			vecty.Markup(vecty.Class("peak-bar")),
			elem.Div(vecty.Markup(vecty.Class("bar"), vecty.Style("height", fmt.Sprintf("%d%%", p.Crowd)))),
			elem.Small(vecty.Text(p.Hour)),
		))
	}
	reviews := vecty.List{}
	for _, r := range d.Reviews {
		reviews = append(reviews, elem.Div(
			vecty.Markup(vecty.Class("review", "glass-card")),
			elem.Strong(vecty.Text(r.User)),
			elem.Span(vecty.Text(strings.Repeat("⭐", r.Rating))),
			elem.Paragraph(vecty.Text(r.Comment)),
			elem.Small(vecty.Text(r.Time)),
		))
	}

	return elem.Div(
		elem.Image(vecty.Markup(vecty.Class("detail-image"), vecty.Property("src", a.Image), vecty.Attribute("alt", a.Name))),
		elem.Heading2(vecty.Text(a.Name)),
		elem.Div(
			vecty.Markup(vecty.Class("detail-meta")),
			elem.Span(vecty.Text(fmt.Sprintf("⭐ %.1f (%d reviews)", a.Rating, a.Reviews))),
			elem.Span(vecty.Text(a.Distance)),
			elem.Span(vecty.Text(d.Hours)),
		),
		elem.Div(vecty.Markup(vecty.Class("tags")), tags),
		elem.Paragraph(vecty.Text(a.Description)),
		section("Peak Hours", elem.Div(vecty.Markup(vecty.Class("peak-hours")), peak)),
		section("Reviews", elem.Div(reviews)),
		elem.Div(
			vecty.Markup(vecty.Class("detail-actions")),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-secondary"), event.Click(func(e *vecty.Event) { s.app.AddToItinerary() })),
				vecty.Text("Add to Itinerary"),
			),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-primary"), event.Click(func(e *vecty.Event) {
					s.run("book-ticket", s.app.BookTicket)
				})),
				vecty.Text("Book Tickets · "+a.Price),
			),
		),
	)
}

func renderItineraries(s *Shell, l pages.ItineraryList) vecty.ComponentOrHTML {
	items := vecty.List{}
	for _, it := range l.Items {
		items = append(items, elem.Div(
			vecty.Markup(vecty.Class("itinerary-card", "glass-card")),
			elem.Image(vecty.Markup(vecty.Property("src", it.Image), vecty.Attribute("alt", it.Title))),
			elem.Div(
				elem.Heading4(vecty.Text(it.Title)),
				elem.Small(vecty.Text(fmt.Sprintf("%d days · %d places · Created %s", it.Days, it.Places, it.Created))),
			),
		))
	}
	return elem.Div(
		elem.Button(
			vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), event.Click(func(e *vecty.Event) {
				s.run("create-itinerary", s.app.CreateItinerary)
			})),
			elem.Italic(vecty.Markup(vecty.Class("fas", "fa-magic"))),
			vecty.Text(" Create with AI"),
		),
		elem.Div(vecty.Markup(vecty.Class("itinerary-list")), items),
	)
}

// RoutePlannerView edits the route endpoints and lists the computed
// options. Typed endpoints go straight into the page model so swapping and
// current-location fills see them.
type RoutePlannerView struct {
	vecty.Core
	Shell *Shell             `vecty:"prop"`
	Model pages.RoutePlanner `vecty:"prop"`
}

func (v *RoutePlannerView) Render() vecty.ComponentOrHTML {
	s := v.Shell
	setEndpoints := func(start, end string) { s.app.Loaders.SetRouteEndpoints(start, end) }
	input := func(placeholder, value string, field app.RouteField, set func(string)) vecty.ComponentOrHTML {
		return elem.Div(
			vecty.Markup(vecty.Class("route-input")),
			elem.Input(vecty.Markup(
				vecty.Property("type", "text"),
				vecty.Attribute("placeholder", placeholder),
				vecty.Property("value", value),
				event.Change(func(e *vecty.Event) {
					set(e.Target.Get("value").String())
				}),
			)),
			elem.Button(
				vecty.Markup(vecty.Class("icon-btn"), event.Click(func(e *vecty.Event) {
					s.run("use-current-location", func(ctx context.Context) error {
						return s.app.UseCurrentLocation(ctx, field)
					})
				})),
				elem.Italic(vecty.Markup(vecty.Class("fas", "fa-crosshairs"))),
			),
		)
	}

	results := vecty.List{}
	for _, o := range v.Model.Results {
		steps := vecty.List{}
		for _, st := range o.Steps {
			steps = append(steps, elem.ListItem(vecty.Text(fmt.Sprintf("%s · %s · %s", st.Type, st.Duration, st.Desc))))
		}
		results = append(results, elem.Div(
			vecty.Markup(vecty.Class("route-option", "glass-card")),
			elem.Heading4(vecty.Text(o.Mode)),
			elem.Small(vecty.Text(fmt.Sprintf("%s · %s · %s · CO₂ %s", o.Duration, o.Distance, o.Cost, o.CO2))),
			elem.OrderedList(steps),
		))
	}
	suggested := vecty.List{}
	for _, r := range v.Model.Suggested {
		suggested = append(suggested, suggestedRoute(s, r))
	}

	return elem.Div(
		elem.Div(
			vecty.Markup(vecty.Class("route-form", "glass-card")),
			input("Start location", v.Model.Start, app.RouteStart, func(x string) { setEndpoints(x, s.app.Content.Routes().End) }),
			elem.Button(
				vecty.Markup(vecty.Class("swap-btn"), event.Click(func(e *vecty.Event) { s.app.SwapEndpoints() })),
				elem.Italic(vecty.Markup(vecty.Class("fas", "fa-exchange-alt"))),
			),
			input("Destination", v.Model.End, app.RouteEnd, func(x string) { setEndpoints(s.app.Content.Routes().Start, x) }),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), event.Click(func(e *vecty.Event) {
					rp := s.app.Content.Routes()
					start, end := rp.Start, rp.End
					s.run("calculate-route", func(ctx context.Context) error {
						return s.app.CalculateRoute(ctx, start, end)
					})
				})),
				vecty.Text("Find Routes"),
			),
		),
		vecty.If(len(results) > 0, section("Route Options", elem.Div(results))),
		section("Popular Routes", elem.Div(suggested)),
	)
}

func renderBooking(s *Shell, b pages.BookingPage) vecty.ComponentOrHTML {
	history := vecty.List{}
	for _, bk := range b.History {
		history = append(history, elem.Div(
			vecty.Markup(vecty.Class("booking-item", "glass-card")),
			elem.Div(
				elem.Heading4(vecty.Text(bk.Name)),
				elem.Small(vecty.Text(fmt.Sprintf("%s · %d tickets", bk.Date.Local().Format("Jan 2, 2006"), bk.Tickets))),
			),
			elem.Div(
				elem.Strong(vecty.Text(bk.Amount)),
				elem.Small(vecty.Markup(vecty.Class("qr-code")), vecty.Text(bk.QRCode)),
			),
		))
	}

	var draft vecty.ComponentOrHTML
	if d := b.Draft; d != nil {
		draft = elem.Div(
			vecty.Markup(vecty.Class("booking-form", "glass-card")),
			elem.Heading3(vecty.Text(d.Attraction.Name)),
			bookingLine("Date", orDefault(d.Date, "Today")),
			bookingLine("Time", d.Time),
			bookingLine("Tickets", fmt.Sprintf("%d × ₹%d", d.Tickets, d.UnitPrice)),
			bookingLine("Convenience fee", fmt.Sprintf("₹%d", d.Fee)),
			bookingLine("Total", fmt.Sprintf("₹%d", d.Total)),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), event.Click(func(e *vecty.Event) {
					s.run("confirm-booking", func(ctx context.Context) error {
						_, err := s.app.ConfirmBooking(ctx)
						return err
					})
				})),
				vecty.Text("Confirm Booking"),
			),
		)
	}

	return elem.Div(
		draft,
		section("My Bookings", elem.Div(vecty.Markup(vecty.Class("booking-history")), history)),
	)
}

func bookingLine(label, value string) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("booking-line")),
		elem.Span(vecty.Text(label)),
		elem.Strong(vecty.Text(value)),
	)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

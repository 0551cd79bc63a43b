package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"voyagex-front/notify"
	"voyagex-front/pages"
	"voyagex-front/state"
)

var (
	ErrUnknownAttraction = errors.New("app: unknown attraction")
	ErrMissingEndpoints  = errors.New("app: route needs a start and an end")
)

// Navigate opens p. It is the handler for the bottom navigation and for
// hash changes.
func (a *App) Navigate(ctx context.Context, p state.Page) error {
	return a.Router.NavigateTo(ctx, p)
}

// ViewAttraction opens the detail page of a cached attraction.
func (a *App) ViewAttraction(ctx context.Context, id int) error {
	if !a.knownAttraction(id) {
		return fmt.Errorf("%w: %d", ErrUnknownAttraction, id)
	}
	a.State.SelectAttraction(id)
	return a.Router.NavigateTo(ctx, state.PageAttractionDetail)
}

func (a *App) knownAttraction(id int) bool {
	for _, at := range a.State.Attractions() {
		if at.ID == id {
			return true
		}
	}
	return false
}

// FilterAttractions applies a category chip; "all" clears the filter.
func (a *App) FilterAttractions(category string) {
	a.Loaders.FilterAttractions(category)
}

// SetAttractionLayout switches the attraction list between grid and list.
func (a *App) SetAttractionLayout(layout pages.Layout) {
	a.Loaders.SetAttractionLayout(layout)
}

// Search runs the global search box over the attractions.
func (a *App) Search(q string) []state.Attraction {
	list := a.State.Attractions()
	if len(list) == 0 {
		list = pages.Catalog()
	}
	results := pages.Search(list, q)
	a.log.Debug("search", "query", q, "results", len(results))
	return results
}

// CalculateRoute plans a trip between the two endpoints.
func (a *App) CalculateRoute(ctx context.Context, start, end string) error {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start == "" || end == "" {
		a.Notifier.Notify("Please enter both start and end locations", notify.Error)
		return ErrMissingEndpoints
	}

	release := a.Notifier.Track()
	defer release()
	if err := a.wait(ctx, a.cfg.Latency.Route); err != nil {
		return fmt.Errorf("app: calculate route: %w", err)
	}
	a.Loaders.SetRouteResults(start, end, pages.RouteOptions())
	return nil
}

// SwapEndpoints exchanges the route start and end.
func (a *App) SwapEndpoints() {
	rp := a.Content.Routes()
	a.Loaders.SetRouteEndpoints(rp.End, rp.Start)
}

// RouteField names one endpoint input of the route planner.
type RouteField int

const (
	RouteStart RouteField = iota
	RouteEnd
)

// UseCurrentLocation fills an endpoint with the current location, asking
// for a fix first when there is none yet.
func (a *App) UseCurrentLocation(ctx context.Context, field RouteField) error {
	if !a.State.HasLocation() {
		a.Notifier.Notify("Getting your location...", notify.Info)
		if err := a.Relocate(ctx); err != nil {
			return err
		}
	}
	name := a.State.Location().Name
	rp := a.Content.Routes()
	switch field {
	case RouteStart:
		a.Loaders.SetRouteEndpoints(name, rp.End)
	case RouteEnd:
		a.Loaders.SetRouteEndpoints(rp.Start, name)
	default:
		return fmt.Errorf("app: unknown route field %d", field)
	}
	return nil
}

// CreateItinerary "generates" an itinerary and refreshes the list.
func (a *App) CreateItinerary(ctx context.Context) error {
	a.Notifier.Notify("AI is creating your personalized itinerary...", notify.Info)
	if err := a.wait(ctx, a.cfg.Latency.Itinerary); err != nil {
		return fmt.Errorf("app: create itinerary: %w", err)
	}
	a.Notifier.Notify("Itinerary created! 🎉", notify.Success)
	return a.Loaders.LoadItineraries(ctx)
}

func (a *App) AddToItinerary() {
	a.Notifier.Notify("Added to your itinerary! ✓", notify.Success)
}

// BookTicket opens the booking page for the selected attraction.
func (a *App) BookTicket(ctx context.Context) error {
	return a.Router.NavigateTo(ctx, state.PageBooking)
}

// ConfirmBooking stores the current draft as the newest booking.
func (a *App) ConfirmBooking(ctx context.Context) (state.Booking, error) {
	release := a.Notifier.Track()
	if err := a.wait(ctx, a.cfg.Latency.Booking); err != nil {
		release()
		return state.Booking{}, fmt.Errorf("app: confirm booking: %w", err)
	}

	draft := a.Content.Booking().Draft
	if draft == nil {
		at, ok := a.State.SelectedAttraction()
		if !ok {
			at = pages.Catalog()[0]
		}
		d := pages.NewBookingDraft(at)
		draft = &d
	}

	now := a.clock.Now().UTC()
	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	b := state.Booking{
		ID:      id,
		Name:    draft.Attraction.Name + " Visit",
		Date:    now,
		Tickets: draft.Tickets,
		Amount:  fmt.Sprintf("₹%d", draft.Total),
		QRCode:  "QR-" + id,
	}
	err := a.State.AddBooking(b)
	release()
	if err != nil {
		a.Notifier.Notify("Booking failed, please try again", notify.Error)
		return state.Booking{}, fmt.Errorf("app: confirm booking: %w", err)
	}

	a.log.Info("booking confirmed", "booking_id", b.ID, "tickets", b.Tickets)
	a.Notifier.Notify("Booking confirmed! Check your email for tickets 🎫", notify.Success)
	return b, a.Loaders.LoadBooking(ctx)
}

// TriggerSOS sends the emergency alert. The view asks for confirmation
// before calling it.
func (a *App) TriggerSOS(ctx context.Context) error {
	release := a.Notifier.Track()
	err := a.wait(ctx, a.cfg.Latency.SOS)
	release()
	if err != nil {
		return fmt.Errorf("app: sos: %w", err)
	}
	loc := a.State.Location()
	a.log.Warn("sos alert", "lat", loc.Lat, "lng", loc.Lng)
	a.Notifier.Notify("Emergency alert sent! Help is on the way 🚨", notify.Success)
	return nil
}

// MapFilter highlights a category on the map. With places lookups enabled
// it also reports how many matching places are nearby.
func (a *App) MapFilter(ctx context.Context, kind string) {
	a.Notifier.Notify(fmt.Sprintf("Showing %s on map", kind), notify.Info)
	if a.places == nil {
		return
	}

	q := kind
	if q == "" || q == "all" {
		q = a.cfg.Places.Query
	}
	if a.cfg.Places.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Places.Timeout)
		defer cancel()
	}
	loc := a.State.Location()
	found, err := a.places.Search(ctx, loc.Lat, loc.Lng, q)
	if err != nil {
		a.log.Warn("places lookup failed", "query", q, "error", err)
		return
	}
	a.Notifier.Notify(fmt.Sprintf("Found %d places nearby", len(found)), notify.Info)
}

func (a *App) ToggleFavorite(id int) {
	a.Notifier.Notify("Added to favorites! ❤️", notify.Success)
}

// Share is the fallback when the browser has no native share sheet.
func (a *App) Share(id int) {
	a.Notifier.Notify("Link copied to clipboard! 📋", notify.Success)
}

func (a *App) CreatePost() {
	a.Notifier.Notify("Post created and shared with community! 📱", notify.Success)
}

func (a *App) CreateJournalEntry() {
	a.Notifier.Notify("Journal entry created! ✍️", notify.Success)
}

func (a *App) EditProfile() {
	a.Notifier.Notify("Profile editing coming soon!", notify.Info)
}

// Package pages holds one data loader per page together with the page
// models the views render.
//
// A loader takes nothing but the shared state: it reads state, builds the
// complete model for its page and swaps it into Content. Optional
// enrichment (weather) that fails is replaced by its fallback so the page
// always renders whole.
package pages

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"voyagex-front/config"
	"voyagex-front/logger"
	"voyagex-front/notify"
	"voyagex-front/router"
	"voyagex-front/state"
	"voyagex-front/weather"
)

// ErrNoSelection is returned by the detail loader when no attraction has
// been picked.
var ErrNoSelection = errors.New("pages: no attraction selected")

// WeatherSource is the current-conditions lookup the dashboard uses.
type WeatherSource interface {
	Current(ctx context.Context, lat, lng float64) (weather.Conditions, error)
}

type Loaders struct {
	cfg      *config.Config
	state    *state.State
	content  *Content
	weather  WeatherSource
	notifier *notify.Notifier
	log      *logger.Logger

	rngMu   sync.Mutex
	rng     *rand.Rand
	offsets map[int][2]float64
	zoom    int
}

func New(cfg *config.Config, st *state.State, content *Content, ws WeatherSource, notifier *notify.Notifier, rng *rand.Rand, log *logger.Logger) *Loaders {
	if log == nil {
		log = logger.Nop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Loaders{
		cfg:      cfg,
		state:    st,
		content:  content,
		weather:  ws,
		notifier: notifier,
		log:      log.With("component", "pages"),
		rng:      rng,
		offsets:  make(map[int][2]float64),
		zoom:     cfg.Map.Zoom,
	}
}

// Register binds every page loader on r.
func (l *Loaders) Register(r *router.Router) {
	r.Register(state.PageHome, router.LoaderFunc(l.LoadDashboard))
	r.Register(state.PageMap, router.LoaderFunc(l.LoadMap))
	r.Register(state.PageAttractions, router.LoaderFunc(l.LoadAttractions))
	r.Register(state.PageAttractionDetail, router.LoaderFunc(l.LoadAttractionDetail))
	r.Register(state.PageItinerary, router.LoaderFunc(l.LoadItineraries))
	r.Register(state.PageRoutes, router.LoaderFunc(l.LoadRoutes))
	r.Register(state.PageBooking, router.LoaderFunc(l.LoadBooking))
	r.Register(state.PageRewards, router.LoaderFunc(l.LoadRewards))
	r.Register(state.PageCommunity, router.LoaderFunc(l.LoadCommunity))
	r.Register(state.PageEmergency, router.LoaderFunc(l.LoadEmergency))
	r.Register(state.PageJournal, router.LoaderFunc(l.LoadJournal))
	r.Register(state.PageProfile, router.LoaderFunc(l.LoadProfile))
}

func (l *Loaders) busy() func() {
	if l.notifier == nil {
		return func() {}
	}
	return l.notifier.Track()
}

// ensureAttractions fills the attraction cache on a cold start.
func (l *Loaders) ensureAttractions() []state.Attraction {
	list := l.state.Attractions()
	if len(list) == 0 {
		list = Catalog()
		l.state.SetAttractions(list)
	}
	return list
}

// LoadDashboard renders the home page.
func (l *Loaders) LoadDashboard(ctx context.Context) error {
	defer l.busy()()

	loc := l.state.Location()
	temp := l.temperature(ctx, loc)

	list := Catalog()
	l.state.SetAttractions(list)

	d := Dashboard{
		Temperature:  temp,
		LocationName: loc.Name,
		Stats:        formatStats(l.state.Stats()),
		Tip:          l.randomTip(),
		Featured:     list,
		Routes:       append([]SuggestedRoute(nil), suggestedRoutes...),
		Events:       append([]Event(nil), events...),
	}
	l.content.update(state.PageHome, func() { l.content.dashboard = d })
	return nil
}

func (l *Loaders) temperature(ctx context.Context, loc state.Location) string {
	if l.weather == nil {
		return l.cfg.Weather.Fallback
	}
	if l.cfg.Weather.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.cfg.Weather.Timeout)
		defer cancel()
	}
	cond, err := l.weather.Current(ctx, loc.Lat, loc.Lng)
	if err != nil {
		l.log.Warn("weather unavailable, using fallback", "error", err)
		return l.cfg.Weather.Fallback
	}
	return weather.FormatTemperature(cond.Temperature)
}

func (l *Loaders) randomTip() string {
	l.rngMu.Lock()
	defer l.rngMu.Unlock()
	return tips[l.rng.Intn(len(tips))]
}

func formatStats(s state.Stats) StatsView {
	return StatsView{
		PlacesVisited: strconv.Itoa(s.PlacesVisited),
		Distance:      fmt.Sprintf("%d km", s.Distance),
		Badges:        strconv.Itoa(s.Badges),
		CarbonSaved:   fmt.Sprintf("%d kg", s.CarbonSaved),
	}
}

// LoadMap centres the map on the user and pins every attraction. Pins keep
// their offset across visits.
func (l *Loaders) LoadMap(ctx context.Context) error {
	loc := l.state.Location()
	list := l.ensureAttractions()

	markers := make([]Marker, 0, len(list)+1)
	markers = append(markers, Marker{Lat: loc.Lat, Lng: loc.Lng, Title: "You are here", User: true})
	for _, a := range list {
		off := l.markerOffset(a.ID)
		markers = append(markers, Marker{Lat: loc.Lat + off[0], Lng: loc.Lng + off[1], Title: a.Name, Subtitle: a.Category})
	}

	l.rngMu.Lock()
	zoom := l.zoom
	l.rngMu.Unlock()

	m := MapScreen{
		Center:    loc,
		Zoom:      zoom,
		Markers:   markers,
		Transport: append([]Transport(nil), transport...),
	}
	l.content.update(state.PageMap, func() { l.content.mapScreen = m })
	return nil
}

// RecenterMap rebuilds the map around the current location at zoom.
func (l *Loaders) RecenterMap(ctx context.Context, zoom int) error {
	l.rngMu.Lock()
	l.zoom = zoom
	l.rngMu.Unlock()
	return l.LoadMap(ctx)
}

func (l *Loaders) markerOffset(id int) [2]float64 {
	l.rngMu.Lock()
	defer l.rngMu.Unlock()
	if off, ok := l.offsets[id]; ok {
		return off
	}
	spread := l.cfg.Map.MarkerSpread
	off := [2]float64{(l.rng.Float64() - 0.5) * spread, (l.rng.Float64() - 0.5) * spread}
	l.offsets[id] = off
	return off
}

// LoadAttractions lists the cached attractions under the active category
// filter.
func (l *Loaders) LoadAttractions(ctx context.Context) error {
	l.refreshAttractions(func(al *AttractionList) {})
	return nil
}

// FilterAttractions switches the category filter and re-renders the list.
func (l *Loaders) FilterAttractions(category string) {
	category = strings.ToLower(strings.TrimSpace(category))
	l.refreshAttractions(func(al *AttractionList) { al.Category = category })
}

// SetAttractionLayout switches between grid and list.
func (l *Loaders) SetAttractionLayout(layout Layout) {
	l.refreshAttractions(func(al *AttractionList) { al.Layout = layout })
}

// refreshAttractions rebuilds the list from the cache after edit has
// adjusted the filter or layout.
func (l *Loaders) refreshAttractions(edit func(*AttractionList)) {
	list := l.ensureAttractions()
	l.content.update(state.PageAttractions, func() {
		al := l.content.attractions
		edit(&al)
		if al.Category == "" {
			al.Category = "all"
		}
		if al.Layout != LayoutList {
			al.Layout = LayoutGrid
		}
		al.Items = FilterByCategory(list, al.Category)
		l.content.attractions = al
	})
}

// FilterByCategory keeps the attractions of category; "all" keeps them all.
func FilterByCategory(list []state.Attraction, category string) []state.Attraction {
	if category == "all" {
		return append([]state.Attraction(nil), list...)
	}
	out := make([]state.Attraction, 0, len(list))
	for _, a := range list {
		if strings.ToLower(a.Category) == category {
			out = append(out, a)
		}
	}
	return out
}

// MinSearchLength is the shortest query Search acts on.
const MinSearchLength = 2

// Search matches q against attraction names and descriptions, ignoring
// case. Queries shorter than MinSearchLength match nothing.
func Search(list []state.Attraction, q string) []state.Attraction {
	q = strings.ToLower(strings.TrimSpace(q))
	if len([]rune(q)) < MinSearchLength {
		return nil
	}
	var out []state.Attraction
	for _, a := range list {
		if strings.Contains(strings.ToLower(a.Name), q) || strings.Contains(strings.ToLower(a.Description), q) {
			out = append(out, a)
		}
	}
	return out
}

// LoadAttractionDetail renders the selected attraction.
func (l *Loaders) LoadAttractionDetail(ctx context.Context) error {
	l.ensureAttractions()
	a, ok := l.state.SelectedAttraction()
	if !ok {
		return ErrNoSelection
	}
	d := AttractionDetail{
		Attraction: a,
		Hours:      "9:00 AM - 6:00 PM",
		Tags:       []string{a.Category, "Popular", "Photo Spot"},
		Reviews:    append([]Review(nil), reviews...),
		Peak:       append([]PeakSlot(nil), peakHours...),
	}
	l.content.update(state.PageAttractionDetail, func() { l.content.detail = d })
	return nil
}

func (l *Loaders) LoadItineraries(ctx context.Context) error {
	l.state.SetItineraries(itineraries)
	items := l.state.Itineraries()
	l.content.update(state.PageItinerary, func() { l.content.itinerary = ItineraryList{Items: items} })
	return nil
}

// LoadRoutes renders the planner, keeping the last calculated results.
func (l *Loaders) LoadRoutes(ctx context.Context) error {
	l.content.update(state.PageRoutes, func() {
		rp := l.content.routes
		rp.Suggested = append([]SuggestedRoute(nil), suggestedRoutes...)
		l.content.routes = rp
	})
	return nil
}

// SetRouteEndpoints updates the planner inputs.
func (l *Loaders) SetRouteEndpoints(start, end string) {
	l.content.update(state.PageRoutes, func() {
		l.content.routes.Start = start
		l.content.routes.End = end
	})
}

// SetRouteResults shows a calculated route between start and end.
func (l *Loaders) SetRouteResults(start, end string, options []RouteOption) {
	l.content.update(state.PageRoutes, func() {
		l.content.routes.Start = start
		l.content.routes.End = end
		l.content.routes.Results = append([]RouteOption(nil), options...)
	})
}

// LoadBooking renders the booking draft for the selected attraction and the
// persisted history.
func (l *Loaders) LoadBooking(ctx context.Context) error {
	history := l.state.PersistedBookings()
	l.state.SetBookings(history)

	l.ensureAttractions()
	a, ok := l.state.SelectedAttraction()
	if !ok {
		a = attractions[0]
	}
	draft := NewBookingDraft(a)

	l.content.update(state.PageBooking, func() {
		l.content.booking = BookingPage{Draft: &draft, History: history}
	})
	return nil
}

// NewBookingDraft prepares the default order: two adult tickets at ₹20 and
// a ₹10 service fee.
func NewBookingDraft(a state.Attraction) BookingDraft {
	const unit, fee, tickets = 20, 10, 2
	return BookingDraft{
		Attraction: a,
		Time:       "10:00",
		Tickets:    tickets,
		UnitPrice:  unit,
		Fee:        fee,
		Total:      unit*tickets + fee,
	}
}

// LoadRewards renders points, badges and the leaderboard and refreshes the
// rewards summary in state.
func (l *Loaders) LoadRewards(ctx context.Context) error {
	r := l.state.PersistedRewards()

	unlocked := make(map[string]struct{})
	for _, b := range badges {
		if b.Unlocked {
			unlocked[b.ID] = struct{}{}
		}
	}
	l.state.SetRewards(state.RewardsSummary{Points: r.Points, Rank: r.Rank, Badges: unlocked})

	page := RewardsPage{
		Points:  r.Points,
		Rank:    r.Rank,
		Streak:  r.Streak,
		Badges:  append([]Badge(nil), badges...),
		Leaders: append([]Leader(nil), leaders...),
	}
	l.content.update(state.PageRewards, func() { l.content.rewards = page })
	return nil
}

func (l *Loaders) LoadCommunity(ctx context.Context) error {
	feed := CommunityFeed{Posts: append([]Post(nil), posts...)}
	l.content.update(state.PageCommunity, func() { l.content.community = feed })
	return nil
}

func (l *Loaders) LoadEmergency(ctx context.Context) error {
	page := EmergencyPage{
		Hospitals: append([]Contact(nil), hospitals...),
		Police:    append([]Contact(nil), policeStations...),
	}
	l.content.update(state.PageEmergency, func() { l.content.emergency = page })
	return nil
}

func (l *Loaders) LoadJournal(ctx context.Context) error {
	j := Journal{Entries: append([]JournalEntry(nil), journalEntries...)}
	l.content.update(state.PageJournal, func() { l.content.journal = j })
	return nil
}

func (l *Loaders) LoadProfile(ctx context.Context) error {
	u, _ := l.state.CurrentUser()
	p := Profile{User: u, Stats: formatStats(l.state.Stats())}
	l.content.update(state.PageProfile, func() { l.content.profile = p })
	return nil
}

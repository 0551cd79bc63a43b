package pages

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyagex-front/config"
	"voyagex-front/notify"
	"voyagex-front/router"
	"voyagex-front/state"
	"voyagex-front/store"
	"voyagex-front/weather"
)

type stubWeather struct {
	cond weather.Conditions
	err  error
	hits int
}

func (s *stubWeather) Current(context.Context, float64, float64) (weather.Conditions, error) {
	s.hits++
	return s.cond, s.err
}

type fixture struct {
	cfg      *config.Config
	state    *state.State
	content  *Content
	notifier *notify.Notifier
	weather  *stubWeather
	loaders  *Loaders
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	def := state.Location{Lat: cfg.DefaultLocation.Lat, Lng: cfg.DefaultLocation.Lng, Name: cfg.DefaultLocation.Name}
	st := state.New(store.New(store.NewMemory(), cfg.StoragePrefix, nil), def, nil)
	_, err := st.Restore()
	require.NoError(t, err)
	require.NoError(t, st.SetUser(state.User{ID: "u1", Name: "Travel Enthusiast"}))

	f := &fixture{
		cfg:      cfg,
		state:    st,
		content:  NewContent(),
		notifier: notify.New(clock.NewMock(), time.Second, nil),
		weather:  &stubWeather{cond: weather.Conditions{Temperature: 31.6}},
	}
	f.loaders = New(cfg, st, f.content, f.weather, f.notifier, rand.New(rand.NewSource(1)), nil)
	return f
}

func TestLoadDashboard(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.loaders.LoadDashboard(context.Background()))

	d := f.content.Dashboard()
	assert.Equal(t, "32°C", d.Temperature)
	assert.Equal(t, "Chennai, Tamil Nadu, IN", d.LocationName)
	assert.Equal(t, StatsView{PlacesVisited: "12", Distance: "145 km", Badges: "8", CarbonSaved: "23 kg"}, d.Stats)
	assert.Contains(t, tips, d.Tip)
	assert.Len(t, d.Featured, len(attractions))
	assert.Len(t, f.state.Attractions(), len(attractions))
	assert.False(t, f.notifier.Busy(), "overlay is released once the dashboard is built")
}

func TestLoadDashboard_WeatherFallback(t *testing.T) {
	f := newFixture(t)
	f.weather.err = errors.New("offline")
	f.state.SetLocation(state.Location{Lat: 1, Lng: 2, Name: "Your Location"})

	require.NoError(t, f.loaders.LoadDashboard(context.Background()))
	d := f.content.Dashboard()
	assert.Equal(t, "28°C", d.Temperature)
	assert.Equal(t, "Your Location", d.LocationName)
	assert.NotEmpty(t, d.Featured, "the rest of the page renders")
}

func TestLoaders_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.state.SelectAttraction(2)

	counts := func() []int {
		return []int{
			len(f.content.Dashboard().Featured),
			len(f.content.Map().Markers),
			len(f.content.Attractions().Items),
			len(f.content.AttractionDetail().Reviews),
			len(f.content.Itinerary().Items),
			len(f.content.Routes().Suggested),
			len(f.content.Rewards().Badges),
			len(f.content.Community().Posts),
			len(f.content.Emergency().Hospitals),
			len(f.content.Journal().Entries),
		}
	}
	runAll := func() {
		require.NoError(t, f.loaders.LoadDashboard(ctx))
		require.NoError(t, f.loaders.LoadMap(ctx))
		require.NoError(t, f.loaders.LoadAttractions(ctx))
		require.NoError(t, f.loaders.LoadAttractionDetail(ctx))
		require.NoError(t, f.loaders.LoadItineraries(ctx))
		require.NoError(t, f.loaders.LoadRoutes(ctx))
		require.NoError(t, f.loaders.LoadBooking(ctx))
		require.NoError(t, f.loaders.LoadRewards(ctx))
		require.NoError(t, f.loaders.LoadCommunity(ctx))
		require.NoError(t, f.loaders.LoadEmergency(ctx))
		require.NoError(t, f.loaders.LoadJournal(ctx))
		require.NoError(t, f.loaders.LoadProfile(ctx))
	}

	runAll()
	first := counts()
	runAll()
	assert.Equal(t, first, counts())
	assert.Equal(t, []int{5, 6, 5, 3, 3, 3, 8, 3, 3, 2}, first)
}

func TestLoadMap_ColdCacheAndStableMarkers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.loaders.LoadMap(ctx))
	m := f.content.Map()
	require.Len(t, m.Markers, len(attractions)+1)
	assert.True(t, m.Markers[0].User)
	assert.Equal(t, "You are here", m.Markers[0].Title)
	assert.Equal(t, f.cfg.Map.Zoom, m.Zoom)

	half := f.cfg.Map.MarkerSpread / 2
	for _, mk := range m.Markers[1:] {
		assert.InDelta(t, m.Center.Lat, mk.Lat, half)
		assert.InDelta(t, m.Center.Lng, mk.Lng, half)
	}

	require.NoError(t, f.loaders.LoadMap(ctx))
	assert.Equal(t, m.Markers, f.content.Map().Markers)

	require.NoError(t, f.loaders.RecenterMap(ctx, 15))
	assert.Equal(t, 15, f.content.Map().Zoom)
}

func TestFilterAttractions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.loaders.FilterAttractions("Beach")
	list := f.content.Attractions()
	assert.Equal(t, "beach", list.Category)
	require.Len(t, list.Items, 2)
	for _, a := range list.Items {
		assert.Equal(t, "Beach", a.Category)
	}

	// the active filter survives a reload
	require.NoError(t, f.loaders.LoadAttractions(ctx))
	assert.Len(t, f.content.Attractions().Items, 2)

	f.loaders.FilterAttractions("all")
	assert.Len(t, f.content.Attractions().Items, len(attractions))

	f.loaders.FilterAttractions("zoo")
	assert.Empty(t, f.content.Attractions().Items)
}

func TestSearch(t *testing.T) {
	list := Catalog()
	assert.Nil(t, Search(list, "m"))
	assert.Nil(t, Search(list, "  "))

	got := Search(list, "BEACH")
	require.Len(t, got, 2)
	assert.Equal(t, "Marina Beach", got[0].Name)

	got = Search(list, "shiva")
	require.Len(t, got, 1)
	assert.Equal(t, "Kapaleeshwarar Temple", got[0].Name)
}

func TestLoadAttractionDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.loaders.LoadAttractionDetail(ctx), ErrNoSelection)

	f.state.SelectAttraction(3)
	require.NoError(t, f.loaders.LoadAttractionDetail(ctx))
	d := f.content.AttractionDetail()
	assert.Equal(t, "Government Museum", d.Attraction.Name)
	assert.Equal(t, "9:00 AM - 6:00 PM", d.Hours)
	assert.Equal(t, []string{"Museum", "Popular", "Photo Spot"}, d.Tags)
}

func TestLoadBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.state.AddBooking(state.Booking{ID: "b1", Name: "Marina Beach Visit", Tickets: 2, Amount: "₹50"}))
	f.state.SetBookings(nil)

	require.NoError(t, f.loaders.LoadBooking(ctx))
	page := f.content.Booking()
	require.NotNil(t, page.Draft)
	assert.Equal(t, 2, page.Draft.Tickets)
	assert.Equal(t, 50, page.Draft.Total)
	assert.Equal(t, "10:00", page.Draft.Time)
	require.Len(t, page.History, 1)
	assert.Equal(t, "b1", page.History[0].ID)
	assert.Len(t, f.state.Bookings(), 1, "loader refreshes the booking cache")
}

func TestLoadRewards(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.loaders.LoadRewards(context.Background()))

	page := f.content.Rewards()
	assert.Equal(t, 1250, page.Points)
	assert.Equal(t, 42, page.Rank)
	assert.Equal(t, 7, page.Streak)

	summary := f.state.Rewards()
	assert.Equal(t, 1250, summary.Points)
	assert.True(t, summary.HasBadge("explorer"))
	assert.False(t, summary.HasBadge("marathon"))
}

func TestLoadProfile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.loaders.LoadProfile(context.Background()))
	p := f.content.Profile()
	assert.Equal(t, "Travel Enthusiast", p.User.Name)
	assert.Equal(t, "145 km", p.Stats.Distance)
}

func TestContent_OnChange(t *testing.T) {
	f := newFixture(t)
	var mu sync.Mutex
	var changed []state.Page
	f.content.OnChange(func(p state.Page) {
		mu.Lock()
		changed = append(changed, p)
		mu.Unlock()
	})

	require.NoError(t, f.loaders.LoadJournal(context.Background()))
	f.loaders.SetRouteResults("Marina", "Fort", RouteOptions())

	assert.Equal(t, []state.Page{state.PageJournal, state.PageRoutes}, changed)
	assert.Len(t, f.content.Routes().Results, 3)
}

func TestRegister_CoversEveryPage(t *testing.T) {
	f := newFixture(t)
	r := router.New(nil, f.state, f.notifier, nil)
	f.loaders.Register(r)
	assert.NoError(t, r.Validate())
}

func TestSetAttractionLayout(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.loaders.LoadAttractions(context.Background()))
	assert.Equal(t, LayoutGrid, f.content.Attractions().Layout)

	f.loaders.FilterAttractions("temple")
	f.loaders.SetAttractionLayout(LayoutList)
	list := f.content.Attractions()
	assert.Equal(t, LayoutList, list.Layout)
	assert.Equal(t, "temple", list.Category, "layout keeps the filter")
	assert.Len(t, list.Items, 1)
}

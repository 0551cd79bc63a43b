package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyagex-front/store"
)

var chennai = Location{Lat: 13.0827, Lng: 80.2707, Name: "Chennai, Tamil Nadu, IN"}

func newState(t *testing.T) (*State, *store.Store, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	st := store.New(mem, "voyagex_", nil)
	return New(st, chennai, nil), st, mem
}

func TestRestore_FirstRun(t *testing.T) {
	s, st, _ := newState(t)

	found, err := s.Restore()
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, s.Authenticated())
	assert.Equal(t, ThemeDark, s.Theme())

	var rewards Rewards
	ok, err := st.Get(store.KeyRewards, &rewards)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Rewards{Points: 1250, Rank: 42, Streak: 7}, rewards)

	var stats Stats
	ok, err = st.Get(store.KeyStats, &stats)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Stats{PlacesVisited: 12, Distance: 145, Badges: 8, CarbonSaved: 23}, stats)
}

func TestRestore_ExistingRecords(t *testing.T) {
	s, st, _ := newState(t)
	user := User{ID: "u1", Name: "Asha", Email: "asha@example.com", CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, st.Set(store.KeyUser, user))
	require.NoError(t, st.Set(store.KeyTheme, ThemeLight))
	require.NoError(t, st.Set(store.KeyRewards, Rewards{Points: 10, Rank: 1, Streak: 2}))

	found, err := s.Restore()
	require.NoError(t, err)
	assert.True(t, found)

	got, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, ThemeLight, s.Theme())
	// existing rewards are not replaced by defaults
	assert.Equal(t, Rewards{Points: 10, Rank: 1, Streak: 2}, s.PersistedRewards())
}

func TestRestore_CorruptRecordIsBackfilled(t *testing.T) {
	s, _, mem := newState(t)
	require.NoError(t, mem.SetItem("voyagex_stats", "]"))

	_, err := s.Restore()
	require.NoError(t, err)
	assert.Equal(t, DefaultStats, s.Stats())

	raw, _ := mem.GetItem("voyagex_stats")
	assert.JSONEq(t, `{"placesVisited":12,"distance":145,"badges":8,"carbonSaved":23}`, raw)
}

func TestSetUser(t *testing.T) {
	s, st, _ := newState(t)
	u := User{ID: "abc", Name: "Travel Enthusiast", Email: "t@example.com", Phone: "+91 1234567890"}

	require.NoError(t, s.SetUser(u))
	assert.True(t, s.Authenticated())

	var persisted User
	ok, err := st.Get(store.KeyUser, &persisted)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, u, persisted)
}

type readOnly struct{ *store.Memory }

func (readOnly) SetItem(string, string) error { return assert.AnError }

func TestSetUser_PersistFailureKeepsSignedOut(t *testing.T) {
	s := New(store.New(readOnly{store.NewMemory()}, "", nil), chennai, nil)

	err := s.SetUser(User{ID: "x"})
	require.Error(t, err)
	assert.False(t, s.Authenticated())
}

func TestToggleTheme_Involution(t *testing.T) {
	s, st, _ := newState(t)
	require.NoError(t, st.Set(store.KeyTheme, ThemeDark))
	_, err := s.Restore()
	require.NoError(t, err)

	theme, err := s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	theme, err = s.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	var persisted Theme
	_, err = st.Get(store.KeyTheme, &persisted)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, persisted)
}

func TestLocation(t *testing.T) {
	s, _, _ := newState(t)

	assert.False(t, s.HasLocation())
	assert.Equal(t, chennai, s.Location(), "unset location reads as the default")

	fix := Location{Lat: 1, Lng: 2, Name: "Your Location"}
	assert.True(t, s.SetLocation(fix))
	assert.Equal(t, fix, s.Location())

	assert.False(t, s.SetLocation(Location{Lat: 9, Lng: 9, Name: "late fix"}), "a later fix must not overwrite")
	assert.Equal(t, fix, s.Location())

	moved := Location{Lat: 3, Lng: 4, Name: "Current Location"}
	s.Relocate(moved)
	assert.Equal(t, moved, s.Location())

	s.ResetLocation()
	assert.Equal(t, chennai, s.Location())
	assert.True(t, s.HasLocation())
}

func TestAddBooking_PrependsAndPersists(t *testing.T) {
	s, _, _ := newState(t)
	first := Booking{ID: "1", Name: "Fort St. George Visit", Tickets: 1, Amount: "₹25", QRCode: "QR-1"}
	second := Booking{ID: "2", Name: "Marina Beach Visit", Tickets: 2, Amount: "₹50", QRCode: "QR-2"}

	require.NoError(t, s.AddBooking(first))
	require.NoError(t, s.AddBooking(second))

	persisted := s.PersistedBookings()
	require.Len(t, persisted, 2)
	assert.Equal(t, "2", persisted[0].ID)
	assert.Equal(t, "1", persisted[1].ID)
	assert.Equal(t, persisted, s.Bookings())
}

func TestSelectedAttraction(t *testing.T) {
	s, _, _ := newState(t)
	s.SetAttractions([]Attraction{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})

	_, ok := s.SelectedAttraction()
	assert.False(t, ok)

	s.SelectAttraction(2)
	a, ok := s.SelectedAttraction()
	require.True(t, ok)
	assert.Equal(t, "B", a.Name)
}

func TestRewards_CopyIsIsolated(t *testing.T) {
	s, _, _ := newState(t)
	s.SetRewards(RewardsSummary{Points: 5, Rank: 3, Badges: map[string]struct{}{"explorer": {}}})

	r := s.Rewards()
	r.Badges["hacked"] = struct{}{}

	assert.True(t, s.Rewards().HasBadge("explorer"))
	assert.False(t, s.Rewards().HasBadge("hacked"))
}

func TestParsePage(t *testing.T) {
	for _, p := range Pages() {
		got, ok := ParsePage(p.Hash())
		require.True(t, ok, p.String())
		assert.Equal(t, p, got)
	}
	_, ok := ParsePage("#/nowhere")
	assert.False(t, ok)
	assert.Len(t, Pages(), 12)
	assert.Equal(t, "page(99)", Page(99).String())
}

func TestParseAuthScreen(t *testing.T) {
	s, ok := ParseAuthScreen("#/signup")
	require.True(t, ok)
	assert.Equal(t, ScreenRegister, s)

	s, ok = ParseAuthScreen("forgot-password")
	require.True(t, ok)
	assert.Equal(t, ScreenForgotPassword, s)

	_, ok = ParseAuthScreen("#/map")
	assert.False(t, ok)
}

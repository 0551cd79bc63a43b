// Package state holds the single in-memory record of the session: who is
// signed in, which page is showing, the theme, the last known location and
// the content collections shared between pages.
//
// Each field has one writer. The router owns the current page, page loaders
// own the content caches, and the auth flow owns the user. Everybody may read.
package state

import (
	"errors"
	"fmt"
	"sync"

	"voyagex-front/logger"
	"voyagex-front/store"
)

type State struct {
	mu    sync.RWMutex
	store *store.Store
	log   *logger.Logger

	defaultLocation Location

	currentUser *User
	currentPage Page
	theme       Theme
	location    *Location
	selected    int

	attractions []Attraction
	itineraries []Itinerary
	bookings    []Booking
	rewards     RewardsSummary
}

func New(st *store.Store, defaultLocation Location, log *logger.Logger) *State {
	if log == nil {
		log = logger.Nop()
	}
	return &State{
		store:           st,
		log:             log.With("component", "state"),
		defaultLocation: defaultLocation,
		currentPage:     PageHome,
		theme:           ThemeDark,
		rewards:         RewardsSummary{Badges: map[string]struct{}{}},
	}
}

// Restore loads the persisted user and theme and backfills the stats and
// rewards records on first run. It reports whether a user was restored.
func (s *State) Restore() (bool, error) {
	var errs []error

	var user User
	found, err := s.store.Get(store.KeyUser, &user)
	if err != nil {
		errs = append(errs, err)
	}

	var theme Theme
	themeFound, err := s.store.Get(store.KeyTheme, &theme)
	if err != nil {
		errs = append(errs, err)
	}

	s.mu.Lock()
	if found {
		s.currentUser = &user
	}
	if themeFound && (theme == ThemeDark || theme == ThemeLight) {
		s.theme = theme
	}
	s.mu.Unlock()

	if err := s.backfill(store.KeyStats, &Stats{}, DefaultStats); err != nil {
		errs = append(errs, err)
	}
	if err := s.backfill(store.KeyRewards, &Rewards{}, DefaultRewards); err != nil {
		errs = append(errs, err)
	}
	return found, errors.Join(errs...)
}

// backfill writes def under key when nothing usable is stored there.
func (s *State) backfill(key string, probe interface{}, def interface{}) error {
	found, err := s.store.Get(key, probe)
	if found {
		return nil
	}
	if err != nil {
		s.log.Warn("replacing unreadable record with defaults", "key", key)
	}
	return s.store.Set(key, def)
}

// SetUser persists u and makes it the current user. The in-memory user only
// changes once the write succeeded.
func (s *State) SetUser(u User) error {
	if err := s.store.Set(store.KeyUser, u); err != nil {
		return fmt.Errorf("state: persist user: %w", err)
	}
	s.mu.Lock()
	s.currentUser = &u
	s.mu.Unlock()
	s.log.Info("user set", "user_id", u.ID)
	return nil
}

func (s *State) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return User{}, false
	}
	return *s.currentUser, true
}

func (s *State) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser != nil
}

func (s *State) CurrentPage() Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// SetCurrentPage is reserved for the router.
func (s *State) SetCurrentPage(p Page) {
	s.mu.Lock()
	s.currentPage = p
	s.mu.Unlock()
}

func (s *State) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// ToggleTheme flips between dark and light and persists the result.
func (s *State) ToggleTheme() (Theme, error) {
	s.mu.Lock()
	s.theme = s.theme.Toggle()
	theme := s.theme
	s.mu.Unlock()
	if err := s.store.Set(store.KeyTheme, theme); err != nil {
		return theme, fmt.Errorf("state: persist theme: %w", err)
	}
	return theme, nil
}

// Location returns the user location, or the default location while none
// is known.
func (s *State) Location() Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.location == nil {
		return s.defaultLocation
	}
	return *s.location
}

func (s *State) HasLocation() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location != nil
}

func (s *State) DefaultLocation() Location {
	return s.defaultLocation
}

// SetLocation records the first geolocation fix of the session. It does
// nothing once a location is known and reports whether loc was applied.
func (s *State) SetLocation(loc Location) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.location != nil {
		return false
	}
	s.location = &loc
	return true
}

// Relocate replaces the location on an explicit user request.
func (s *State) Relocate(loc Location) {
	s.mu.Lock()
	s.location = &loc
	s.mu.Unlock()
}

// ResetLocation falls back to the configured default location.
func (s *State) ResetLocation() {
	def := s.defaultLocation
	s.mu.Lock()
	s.location = &def
	s.mu.Unlock()
}

// SelectAttraction remembers which attraction the detail and booking pages
// show.
func (s *State) SelectAttraction(id int) {
	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
}

// SelectedAttraction returns the selected attraction if it is cached.
func (s *State) SelectedAttraction() (Attraction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.attractions {
		if a.ID == s.selected {
			return a, true
		}
	}
	return Attraction{}, false
}

func (s *State) Attractions() []Attraction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Attraction(nil), s.attractions...)
}

func (s *State) SetAttractions(a []Attraction) {
	s.mu.Lock()
	s.attractions = append([]Attraction(nil), a...)
	s.mu.Unlock()
}

func (s *State) Itineraries() []Itinerary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Itinerary(nil), s.itineraries...)
}

func (s *State) SetItineraries(it []Itinerary) {
	s.mu.Lock()
	s.itineraries = append([]Itinerary(nil), it...)
	s.mu.Unlock()
}

func (s *State) Rewards() RewardsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	badges := make(map[string]struct{}, len(s.rewards.Badges))
	for id := range s.rewards.Badges {
		badges[id] = struct{}{}
	}
	return RewardsSummary{Points: s.rewards.Points, Badges: badges, Rank: s.rewards.Rank}
}

func (s *State) SetRewards(r RewardsSummary) {
	if r.Badges == nil {
		r.Badges = map[string]struct{}{}
	}
	s.mu.Lock()
	s.rewards = r
	s.mu.Unlock()
}

// Stats reads the persisted stats, falling back to DefaultStats.
func (s *State) Stats() Stats {
	var st Stats
	if found, _ := s.store.Get(store.KeyStats, &st); !found {
		return DefaultStats
	}
	return st
}

// PersistedRewards reads the persisted rewards, falling back to
// DefaultRewards.
func (s *State) PersistedRewards() Rewards {
	var r Rewards
	if found, _ := s.store.Get(store.KeyRewards, &r); !found {
		return DefaultRewards
	}
	return r
}

// Bookings returns the cached booking history, newest first.
func (s *State) Bookings() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Booking(nil), s.bookings...)
}

func (s *State) SetBookings(b []Booking) {
	s.mu.Lock()
	s.bookings = append([]Booking(nil), b...)
	s.mu.Unlock()
}

// PersistedBookings reads the booking history from the store. An absent or
// unreadable record is an empty history.
func (s *State) PersistedBookings() []Booking {
	var list []Booking
	if _, err := s.store.Get(store.KeyBookings, &list); err != nil {
		return nil
	}
	return list
}

// AddBooking puts b at the front of the persisted history.
func (s *State) AddBooking(b Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []Booking
	if _, err := s.store.Get(store.KeyBookings, &list); err != nil {
		s.log.Warn("discarding unreadable booking history", "error", err)
		list = nil
	}
	list = append([]Booking{b}, list...)
	if err := s.store.Set(store.KeyBookings, list); err != nil {
		return fmt.Errorf("state: persist bookings: %w", err)
	}
	s.bookings = list
	return nil
}

package pages

import (
	"sync"

	"voyagex-front/state"
)

// Content holds the latest rendered model of every page. Loaders write it,
// views read it. Each setter replaces the model outright.
type Content struct {
	mu       sync.RWMutex
	onChange func(state.Page)

	dashboard   Dashboard
	mapScreen   MapScreen
	attractions AttractionList
	detail      AttractionDetail
	itinerary   ItineraryList
	routes      RoutePlanner
	booking     BookingPage
	rewards     RewardsPage
	community   CommunityFeed
	emergency   EmergencyPage
	journal     Journal
	profile     Profile
}

func NewContent() *Content {
	return &Content{}
}

// OnChange installs the hook called after a page model was replaced.
func (c *Content) OnChange(fn func(state.Page)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

func (c *Content) update(p state.Page, apply func()) {
	c.mu.Lock()
	apply()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(p)
	}
}

func (c *Content) Dashboard() Dashboard {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dashboard
}

func (c *Content) Map() MapScreen {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mapScreen
}

func (c *Content) Attractions() AttractionList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attractions
}

func (c *Content) AttractionDetail() AttractionDetail {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.detail
}

func (c *Content) Itinerary() ItineraryList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.itinerary
}

func (c *Content) Routes() RoutePlanner {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.routes
}

func (c *Content) Booking() BookingPage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.booking
}

func (c *Content) Rewards() RewardsPage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rewards
}

func (c *Content) Community() CommunityFeed {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.community
}

func (c *Content) Emergency() EmergencyPage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.emergency
}

func (c *Content) Journal() Journal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.journal
}

func (c *Content) Profile() Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

package pages

import (
	"voyagex-front/state"
)

type SuggestedRoute struct {
	Name     string
	Type     string
	Distance string
	Duration string
	Cost     string
	Stops    int
	Icon     string
}

type Event struct {
	Day         int
	Month       string
	Title       string
	Location    string
	Description string
	Time        string
}

type Transport struct {
	Type        string
	Service     string
	Destination string
	ETA         string
	Icon        string
}

type Review struct {
	User    string
	Rating  int
	Comment string
	Time    string
}

type PeakSlot struct {
	Hour  string
	Crowd int
}

type RouteStep struct {
	Type     string
	Duration string
	Desc     string
}

type RouteOption struct {
	Mode     string
	Duration string
	Cost     string
	Distance string
	CO2      string
	Steps    []RouteStep
}

type Badge struct {
	ID       string
	Name     string
	Icon     string
	Unlocked bool
	Desc     string
}

type Leader struct {
	Rank   int
	Name   string
	Avatar string
	Points int
}

type Post struct {
	Author   string
	Avatar   string
	Time     string
	Content  string
	Images   []string
	Likes    int
	Comments int
}

type Contact struct {
	Name     string
	Distance string
	Phone    string
}

type JournalEntry struct {
	ID      int
	Title   string
	Date    string
	Image   string
	Content string
}

// Marker is a pin on the map with its popup text.
type Marker struct {
	Lat, Lng float64
	Title    string
	Subtitle string
	User     bool
}

// StatsView is Stats formatted for display.
type StatsView struct {
	PlacesVisited string
	Distance      string
	Badges        string
	CarbonSaved   string
}

// Page models. Each loader builds a complete model and swaps it in whole.

type Dashboard struct {
	Temperature  string
	LocationName string
	Stats        StatsView
	Tip          string
	Featured     []state.Attraction
	Routes       []SuggestedRoute
	Events       []Event
}

type MapScreen struct {
	Center    state.Location
	Zoom      int
	Markers   []Marker
	Transport []Transport
}

// Layout is how the attraction list is arranged.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutList Layout = "list"
)

type AttractionList struct {
	Category string
	Layout   Layout
	Items    []state.Attraction
}

type AttractionDetail struct {
	Attraction state.Attraction
	Hours      string
	Tags       []string
	Reviews    []Review
	Peak       []PeakSlot
}

type ItineraryList struct {
	Items []state.Itinerary
}

type RoutePlanner struct {
	Suggested []SuggestedRoute
	Start     string
	End       string
	Results   []RouteOption
}

// BookingDraft is the order being prepared on the booking page.
type BookingDraft struct {
	Attraction state.Attraction
	Date       string
	Time       string
	Tickets    int
	UnitPrice  int
	Fee        int
	Total      int
}

type BookingPage struct {
	Draft   *BookingDraft
	History []state.Booking
}

type RewardsPage struct {
	Points  int
	Rank    int
	Streak  int
	Badges  []Badge
	Leaders []Leader
}

type CommunityFeed struct {
	Posts []Post
}

type EmergencyPage struct {
	Hospitals []Contact
	Police    []Contact
}

type Journal struct {
	Entries []JournalEntry
}

type Profile struct {
	User  state.User
	Stats StatsView
}

package state

import "time"

// User is the signed-in identity, persisted under store.KeyUser.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Stats are the usage counters on the dashboard and profile.
type Stats struct {
	PlacesVisited int `json:"placesVisited"`
	Distance      int `json:"distance"`
	Badges        int `json:"badges"`
	CarbonSaved   int `json:"carbonSaved"`
}

// DefaultStats backfills a first run.
var DefaultStats = Stats{PlacesVisited: 12, Distance: 145, Badges: 8, CarbonSaved: 23}

// Rewards is the persisted rewards record.
type Rewards struct {
	Points int `json:"points"`
	Rank   int `json:"rank"`
	Streak int `json:"streak"`
}

// DefaultRewards backfills a first run.
var DefaultRewards = Rewards{Points: 1250, Rank: 42, Streak: 7}

// RewardsSummary is the in-memory view of rewards used by the pages.
type RewardsSummary struct {
	Points int
	Badges map[string]struct{}
	Rank   int
}

func (r RewardsSummary) HasBadge(id string) bool {
	_, ok := r.Badges[id]
	return ok
}

type Booking struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Tickets int       `json:"tickets"`
	Amount  string    `json:"amount"`
	QRCode  string    `json:"qrCode"`
}

type Attraction struct {
	ID          int
	Name        string
	Image       string
	Category    string
	Rating      float64
	Reviews     int
	Price       string
	Description string
	Distance    string
	Crowd       string
}

// Busy reports whether the attraction is crowded right now.
func (a Attraction) Busy() bool {
	return a.Crowd == "High"
}

type Itinerary struct {
	ID      int
	Title   string
	Days    int
	Places  int
	Created string
	Image   string
}

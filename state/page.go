package state

import (
	"fmt"
	"strings"
)

// Page identifies one screen of the application.
type Page int

const (
	PageHome Page = iota
	PageMap
	PageAttractions
	PageAttractionDetail
	PageItinerary
	PageRoutes
	PageBooking
	PageRewards
	PageCommunity
	PageEmergency
	PageJournal
	PageProfile

	pageCount
)

var pageNames = [pageCount]string{
	PageHome:             "home",
	PageMap:              "map",
	PageAttractions:      "attractions",
	PageAttractionDetail: "attraction-detail",
	PageItinerary:        "itinerary",
	PageRoutes:           "routes",
	PageBooking:          "booking",
	PageRewards:          "rewards",
	PageCommunity:        "community",
	PageEmergency:        "emergency",
	PageJournal:          "journal",
	PageProfile:          "profile",
}

// Pages lists every page in declaration order.
func Pages() []Page {
	out := make([]Page, 0, pageCount)
	for p := Page(0); p < pageCount; p++ {
		out = append(out, p)
	}
	return out
}

func (p Page) Valid() bool {
	return p >= 0 && p < pageCount
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Hash is the location hash the browser shows for the page.
func (p Page) Hash() string {
	return "#/" + p.String()
}

// ParsePage accepts a bare identifier ("map") or a location hash ("#/map").
func ParsePage(s string) (Page, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "/")
	for p, name := range pageNames {
		if name == s {
			return Page(p), true
		}
	}
	return 0, false
}

// AuthScreen is a sub-state of the authentication flow.
type AuthScreen int

const (
	ScreenLogin AuthScreen = iota
	ScreenRegister
	ScreenForgotPassword
)

func (s AuthScreen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenForgotPassword:
		return "forgot-password"
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

func (s AuthScreen) Valid() bool {
	return s >= ScreenLogin && s <= ScreenForgotPassword
}

// ParseAuthScreen maps "#/login", "#/register" (or "#/signup") and
// "#/forgot-password" to their screen.
func ParseAuthScreen(s string) (AuthScreen, bool) {
	switch strings.TrimPrefix(strings.TrimPrefix(s, "#"), "/") {
	case "login":
		return ScreenLogin, true
	case "register", "signup":
		return ScreenRegister, true
	case "forgot-password":
		return ScreenForgotPassword, true
	}
	return 0, false
}

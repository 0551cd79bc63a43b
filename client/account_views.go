//go:build js

package main

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/pages"
	"voyagex-front/state"
)

func renderRewards(r pages.RewardsPage) vecty.ComponentOrHTML {
	badges := vecty.List{}
	for _, b := range r.Badges {
		badges = append(badges, elem.Div(
			vecty.Markup(vecty.Class("badge"), vecty.ClassMap{"locked": !b.Unlocked}, vecty.Attribute("title", b.Desc)),
			elem.Span(vecty.Markup(vecty.Class("badge-icon")), vecty.Text(b.Icon)),
			elem.Small(vecty.Text(b.Name)),
		))
	}
	leaders := vecty.List{}
	for _, l := range r.Leaders {
		leaders = append(leaders, elem.Div(
			vecty.Markup(vecty.Class("leader")),
			elem.Span(vecty.Markup(vecty.Class("rank")), vecty.Text("#"+strconv.Itoa(l.Rank))),
			elem.Image(vecty.Markup(vecty.Class("avatar"), vecty.Property("src", l.Avatar), vecty.Attribute("alt", l.Name))),
			elem.Strong(vecty.Text(l.Name)),
			elem.Span(vecty.Text(fmt.Sprintf("%d pts", l.Points))),
		))
	}
	return elem.Div(
		elem.Div(
			vecty.Markup(vecty.Class("rewards-summary", "glass-card")),
			stat(strconv.Itoa(r.Points), "Points"),
			stat("#"+strconv.Itoa(r.Rank), "Rank"),
			stat(fmt.Sprintf("%d days", r.Streak), "Streak"),
		),
		section("Badges", elem.Div(vecty.Markup(vecty.Class("badges-grid")), badges)),
		section("Leaderboard", elem.Div(vecty.Markup(vecty.Class("leaderboard")), leaders)),
	)
}

func stat(value, label string) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("stat")),
		elem.Strong(vecty.Text(value)),
		elem.Small(vecty.Text(label)),
	)
}

func renderCommunity(s *Shell, f pages.CommunityFeed) vecty.ComponentOrHTML {
	posts := vecty.List{}
	for _, p := range f.Posts {
		images := vecty.List{}
		for _, src := range p.Images {
			images = append(images, elem.Image(vecty.Markup(vecty.Property("src", src), vecty.Attribute("loading", "lazy"))))
		}
		posts = append(posts, elem.Div(
			vecty.Markup(vecty.Class("post", "glass-card")),
			elem.Div(
				vecty.Markup(vecty.Class("post-header")),
				elem.Image(vecty.Markup(vecty.Class("avatar"), vecty.Property("src", p.Avatar), vecty.Attribute("alt", p.Author))),
				elem.Strong(vecty.Text(p.Author)),
				elem.Small(vecty.Text(p.Time)),
			),
			elem.Paragraph(vecty.Text(p.Content)),
			elem.Div(vecty.Markup(vecty.Class("post-images")), images),
			elem.Div(
				vecty.Markup(vecty.Class("post-actions")),
				elem.Span(vecty.Text(fmt.Sprintf("❤️ %d", p.Likes))),
				elem.Span(vecty.Text(fmt.Sprintf("💬 %d", p.Comments))),
			),
		))
	}
	return elem.Div(
		elem.Button(
			vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), event.Click(func(e *vecty.Event) { s.app.CreatePost() })),
			vecty.Text("Share your experience"),
		),
		elem.Div(vecty.Markup(vecty.Class("community-feed")), posts),
	)
}

func renderEmergency(s *Shell, p pages.EmergencyPage) vecty.ComponentOrHTML {
	contacts := func(list []pages.Contact) vecty.ComponentOrHTML {
		items := vecty.List{}
		for _, c := range list {
			items = append(items, elem.Div(
				vecty.Markup(vecty.Class("contact")),
				elem.Div(
					elem.Strong(vecty.Text(c.Name)),
					elem.Small(vecty.Text(c.Distance)),
				),
				elem.Anchor(
					vecty.Markup(vecty.Class("call-btn"), vecty.Property("href", "tel:"+c.Phone)),
					elem.Italic(vecty.Markup(vecty.Class("fas", "fa-phone"))),
				),
			))
		}
		return elem.Div(items)
	}
	hotline := func(label, number string) vecty.ComponentOrHTML {
		return elem.Anchor(
			vecty.Markup(vecty.Class("hotline", "glass-card"), vecty.Property("href", "tel:"+number)),
			elem.Strong(vecty.Text(number)),
			elem.Small(vecty.Text(label)),
		)
	}
	return elem.Div(
		elem.Button(
			vecty.Markup(vecty.Class("sos-button"), event.Click(func(e *vecty.Event) {
				if !js.Global().Call("confirm", "Send an SOS alert with your location to emergency contacts?").Bool() {
					return
				}
				s.run("sos", s.app.TriggerSOS)
			})),
			vecty.Text("SOS"),
		),
		elem.Div(
			vecty.Markup(vecty.Class("hotlines")),
			hotline("Police", "100"),
			hotline("Ambulance", "108"),
			hotline("Fire", "101"),
			hotline("Tourist Helpline", "1363"),
		),
		section("Nearby Hospitals", contacts(p.Hospitals)),
		section("Police Stations", contacts(p.Police)),
	)
}

func renderJournal(s *Shell, j pages.Journal) vecty.ComponentOrHTML {
	entries := vecty.List{}
	for _, en := range j.Entries {
		entries = append(entries, elem.Div(
			vecty.Markup(vecty.Class("journal-entry", "glass-card")),
			elem.Image(vecty.Markup(vecty.Property("src", en.Image), vecty.Attribute("alt", en.Title))),
			elem.Div(
				elem.Heading4(vecty.Text(en.Title)),
				elem.Small(vecty.Text(en.Date)),
				elem.Paragraph(vecty.Text(en.Content)),
			),
		))
	}
	return elem.Div(
		elem.Button(
			vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), event.Click(func(e *vecty.Event) { s.app.CreateJournalEntry() })),
			vecty.Text("New Entry"),
		),
		elem.Div(vecty.Markup(vecty.Class("journal-entries")), entries),
	)
}

var profileLinks = []struct {
	page  state.Page
	icon  string
	label string
}{
	{state.PageItinerary, "fa-calendar-alt", "My Itineraries"},
	{state.PageBooking, "fa-ticket-alt", "My Bookings"},
	{state.PageJournal, "fa-book", "Travel Journal"},
	{state.PageCommunity, "fa-users", "Community"},
	{state.PageRoutes, "fa-route", "Saved Routes"},
}

func renderProfile(s *Shell, p pages.Profile) vecty.ComponentOrHTML {
	links := make(vecty.List, 0, len(profileLinks))
	for _, l := range profileLinks {
		l := l
		links = append(links, elem.Anchor(
			vecty.Markup(
				vecty.Class("menu-item"),
				vecty.Property("href", l.page.Hash()),
				event.Click(func(e *vecty.Event) { s.navigate(l.page) }).PreventDefault(),
			),
			elem.Italic(vecty.Markup(vecty.Class("fas", l.icon))),
			elem.Span(vecty.Text(l.label)),
		))
	}
	return elem.Div(
		elem.Div(
			vecty.Markup(vecty.Class("profile-header", "glass-card")),
			elem.Heading2(vecty.Text(p.User.Name)),
			elem.Paragraph(vecty.Text(p.User.Email)),
			elem.Small(vecty.Text(p.User.Phone)),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-secondary"), event.Click(func(e *vecty.Event) { s.app.EditProfile() })),
				vecty.Text("Edit Profile"),
			),
		),
		renderStats(p.Stats),
		elem.Navigation(vecty.Markup(vecty.Class("profile-menu")), links),
	)
}

package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/state"
)

type navItem struct {
	page  state.Page
	icon  string
	label string
}

var navItems = []navItem{
	{state.PageHome, "fa-home", "Home"},
	{state.PageMap, "fa-map-marked-alt", "Map"},
	{state.PageAttractions, "fa-compass", "Explore"},
	{state.PageRewards, "fa-trophy", "Rewards"},
	{state.PageProfile, "fa-user", "Profile"},
}

// BottomNav is the tab bar. The tab of the current page is highlighted;
// pages without a tab highlight nothing.
type BottomNav struct {
	vecty.Core
	Current    state.Page       `vecty:"prop"`
	OnNavigate func(state.Page) `vecty:"prop"`
}

func (b *BottomNav) Render() vecty.ComponentOrHTML {
	items := make(vecty.List, 0, len(navItems))
	for _, it := range navItems {
		it := it
		items = append(items, elem.Anchor(
			vecty.Markup(
				vecty.Class("nav-item"),
				vecty.ClassMap{"active": it.page == b.Current},
				vecty.Property("href", it.page.Hash()),
				event.Click(func(e *vecty.Event) {
					if b.OnNavigate != nil {
						b.OnNavigate(it.page)
					}
				}).PreventDefault(),
			),
			elem.Italic(vecty.Markup(vecty.Class("fas", it.icon))),
			elem.Span(vecty.Text(it.label)),
		))
	}
	return elem.Navigation(vecty.Markup(vecty.Class("bottom-nav")), items)
}

//go:build js

package main

import (
	"context"
	"sync"
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/app"
	"voyagex-front/components"
	"voyagex-front/logger"
	"voyagex-front/state"
)

// Shell is the root component. It implements router.Views and
// app.ThemeView: the router tells it what to show, it never decides.
type Shell struct {
	vecty.Core

	app *app.App
	log *logger.Logger
	ctx context.Context

	mu     sync.Mutex
	auth   bool
	screen state.AuthScreen
	page   state.Page
	theme  state.Theme

	mapView  *MapView
	controls *MapControls
	voice    *VoicePanel
}

func NewShell(ctx context.Context, log *logger.Logger) *Shell {
	return &Shell{ctx: ctx, log: log, auth: true}
}

// Attach binds the shell to the session it renders.
func (s *Shell) Attach(a *app.App) {
	s.app = a
	s.mapView = NewMapView(s.ctx, a)
	s.controls = NewMapControls(s, s.mapView)
	s.voice = NewVoicePanel(s)

	a.Content.OnChange(func(p state.Page) {
		if p == state.PageMap {
			s.mapView.Sync()
		}
		s.rerender()
	})
	a.Notifier.OnChange(s.rerender)
}

// Mount handles component mounting and sets up routing.
func (s *Shell) Mount() {
	js.Global().Set("onhashchange", js.FuncOf(s.handleRouteChange))
}

func (s *Shell) handleRouteChange(this js.Value, args []js.Value) interface{} {
	hash := js.Global().Get("location").Get("hash").String()
	p, ok := state.ParsePage(hash)
	if !ok {
		return nil
	}
	s.mu.Lock()
	same := !s.auth && s.page == p
	s.mu.Unlock()
	if same {
		return nil
	}
	s.navigate(p)
	return nil
}

func (s *Shell) navigate(p state.Page) {
	go func() {
		if err := s.app.Navigate(s.ctx, p); err != nil {
			s.log.Warn("navigation failed", "page", p.String(), "error", err)
		}
	}()
}

// run executes a user action off the event loop.
func (s *Shell) run(name string, fn func(ctx context.Context) error) {
	go func() {
		if err := fn(s.ctx); err != nil {
			s.log.Debug("action failed", "action", name, "error", err)
		}
	}()
}

func (s *Shell) ShowPage(p state.Page) {
	s.mu.Lock()
	s.auth = false
	s.page = p
	s.mu.Unlock()
	if js.Global().Get("location").Get("hash").String() != p.Hash() {
		js.Global().Get("location").Set("hash", p.Hash())
	}
	s.rerender()
}

func (s *Shell) ShowAuth(screen state.AuthScreen) {
	s.mu.Lock()
	s.auth = true
	s.screen = screen
	s.mu.Unlock()
	s.rerender()
}

func (s *Shell) ApplyTheme(t state.Theme) {
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	body := js.Global().Get("document").Get("body")
	body.Get("classList").Call("toggle", "light-theme", t == state.ThemeLight)
}

func (s *Shell) rerender() {
	vecty.Rerender(s)
}

// Render renders the auth flow or the app shell around the current page.
func (s *Shell) Render() vecty.ComponentOrHTML {
	s.mu.Lock()
	auth, screen, page, theme := s.auth, s.screen, s.page, s.theme
	s.mu.Unlock()

	if s.app == nil {
		return elem.Body()
	}
	overlay := &components.Overlay{Visible: s.app.Notifier.Busy()}
	toasts := &components.Toasts{Notices: s.app.Notifier.Notices()}

	if auth {
		return elem.Body(
			elem.Div(vecty.Markup(vecty.Class("auth-container")), s.renderAuth(screen)),
			overlay,
			toasts,
		)
	}

	return elem.Body(
		s.renderHeader(theme),
		elem.Main(
			vecty.Markup(vecty.Class("page", page.String()+"-page", "active")),
			s.renderPage(page),
		),
		s.voice,
		&components.BottomNav{Current: page, OnNavigate: s.navigate},
		overlay,
		toasts,
	)
}

func (s *Shell) renderAuth(screen state.AuthScreen) vecty.ComponentOrHTML {
	switch screen {
	case state.ScreenRegister:
		return &RegisterPage{Shell: s}
	case state.ScreenForgotPassword:
		return &ForgotPasswordPage{Shell: s}
	default:
		return &LoginPage{Shell: s}
	}
}

func (s *Shell) renderHeader(theme state.Theme) vecty.ComponentOrHTML {
	icon := "fa-moon"
	if theme == state.ThemeLight {
		icon = "fa-sun"
	}
	return elem.Header(
		vecty.Markup(vecty.Class("app-header")),
		elem.Heading1(vecty.Markup(vecty.Class("logo")), vecty.Text("VoyageX")),
		&SearchBox{Shell: s},
		elem.Button(
			vecty.Markup(vecty.Class("icon-btn"), event.Click(func(e *vecty.Event) {
				if _, err := s.app.ToggleTheme(); err != nil {
					s.log.Warn("toggle theme", "error", err)
				}
				s.rerender()
			})),
			elem.Italic(vecty.Markup(vecty.Class("fas", icon))),
		),
		elem.Button(
			vecty.Markup(vecty.Class("icon-btn", "sos-btn"), event.Click(func(e *vecty.Event) {
				s.navigate(state.PageEmergency)
			})),
			elem.Italic(vecty.Markup(vecty.Class("fas", "fa-exclamation-triangle"))),
		),
	)
}

func (s *Shell) renderPage(p state.Page) vecty.ComponentOrHTML {
	c := s.app.Content
	switch p {
	case state.PageHome:
		return renderDashboard(s, c.Dashboard())
	case state.PageMap:
		return elem.Div(s.mapView, s.controls)
	case state.PageAttractions:
		return renderAttractions(s, c.Attractions())
	case state.PageAttractionDetail:
		return renderAttractionDetail(s, c.AttractionDetail())
	case state.PageItinerary:
		return renderItineraries(s, c.Itinerary())
	case state.PageRoutes:
		return &RoutePlannerView{Shell: s, Model: c.Routes()}
	case state.PageBooking:
		return renderBooking(s, c.Booking())
	case state.PageRewards:
		return renderRewards(c.Rewards())
	case state.PageCommunity:
		return renderCommunity(s, c.Community())
	case state.PageEmergency:
		return renderEmergency(s, c.Emergency())
	case state.PageJournal:
		return renderJournal(s, c.Journal())
	case state.PageProfile:
		return renderProfile(s, c.Profile())
	}
	return elem.Div()
}

// Package app wires the store, state, router, loaders and notifier into one
// session object and implements every user action on top of them.
//
// The view layer owns no logic. It renders pages.Content and the notifier,
// forwards user events to the methods here and implements router.Views.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/facebookgo/clock"

	"voyagex-front/config"
	"voyagex-front/geo"
	"voyagex-front/logger"
	"voyagex-front/notify"
	"voyagex-front/pages"
	"voyagex-front/router"
	"voyagex-front/state"
	"voyagex-front/store"
)

// ThemeView is implemented by views that restyle the document for a theme.
type ThemeView interface {
	ApplyTheme(t state.Theme)
}

// PlaceSearcher looks up points of interest around a coordinate.
type PlaceSearcher interface {
	Search(ctx context.Context, lat, lng float64, q string) ([]geo.Place, error)
}

type Options struct {
	Config  *config.Config
	Backend store.Backend
	Views   router.Views
	Locator geo.Locator
	Weather pages.WeatherSource
	Places  PlaceSearcher
	Clock   clock.Clock
	Rand    *rand.Rand
	Logger  *logger.Logger
}

type App struct {
	cfg     *config.Config
	clock   clock.Clock
	log     *logger.Logger
	views   router.Views
	locator geo.Locator
	places  PlaceSearcher

	Store    *store.Store
	State    *state.State
	Router   *router.Router
	Content  *pages.Content
	Loaders  *pages.Loaders
	Notifier *notify.Notifier
}

func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	backend := opts.Backend
	if backend == nil {
		backend = store.NewMemory()
	}
	locator := opts.Locator
	if locator == nil {
		locator = geo.Unavailable{}
	}
	if opts.Views == nil {
		return nil, fmt.Errorf("app: views are required")
	}

	a := &App{
		cfg:     cfg,
		clock:   clk,
		log:     log.With("component", "app"),
		views:   opts.Views,
		locator: locator,
	}
	if cfg.Places.Enabled {
		a.places = opts.Places
	}

	def := state.Location{Lat: cfg.DefaultLocation.Lat, Lng: cfg.DefaultLocation.Lng, Name: cfg.DefaultLocation.Name}
	a.Store = store.New(backend, cfg.StoragePrefix, log)
	a.State = state.New(a.Store, def, log)
	a.Notifier = notify.New(clk, cfg.Notify.ToastDuration, log)
	a.Content = pages.NewContent()
	a.Loaders = pages.New(cfg, a.State, a.Content, opts.Weather, a.Notifier, opts.Rand, log)
	a.Router = router.New(opts.Views, a.State, a.Notifier, log)
	a.Loaders.Register(a.Router)
	if err := a.Router.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return a, nil
}

// Initialize restores the session and opens the first screen: the
// dashboard for a returning user, the login screen otherwise. The
// location lookup runs last so the first page never waits on it.
func (a *App) Initialize(ctx context.Context) error {
	found, err := a.State.Restore()
	if err != nil {
		a.log.Warn("restored with defaults", "error", err)
	}
	a.applyTheme(a.State.Theme())

	if found {
		err = a.Router.NavigateTo(ctx, state.PageHome)
	} else {
		err = a.Router.ShowAuth(state.ScreenLogin)
	}
	if err != nil {
		return fmt.Errorf("app: initialize: %w", err)
	}

	a.LocateUser(ctx)
	return nil
}

// LocateUser takes the first location fix. When geolocation fails the
// configured default location stands in.
func (a *App) LocateUser(ctx context.Context) {
	pos, err := a.locator.CurrentPosition(ctx)
	if err != nil {
		a.log.Info("geolocation unavailable, using default location", "error", err)
		if !a.State.HasLocation() {
			a.State.ResetLocation()
		}
		return
	}
	a.State.SetLocation(state.Location{Lat: pos.Lat, Lng: pos.Lng, Name: "Your Location"})
}

// Relocate asks for a fresh fix and recenters the map on it.
func (a *App) Relocate(ctx context.Context) error {
	release := a.Notifier.Track()
	pos, err := a.locator.CurrentPosition(ctx)
	if err != nil {
		release()
		a.Notifier.Notify("Could not get location", notify.Error)
		return fmt.Errorf("app: relocate: %w", err)
	}
	a.State.Relocate(state.Location{Lat: pos.Lat, Lng: pos.Lng, Name: "Current Location"})
	err = a.Loaders.RecenterMap(ctx, a.cfg.Map.RelocateZoom)
	release()
	if err != nil {
		return fmt.Errorf("app: relocate: %w", err)
	}
	a.Notifier.Notify("Location updated", notify.Success)
	return nil
}

// ToggleTheme flips and persists the theme and restyles the document.
func (a *App) ToggleTheme() (state.Theme, error) {
	t, err := a.State.ToggleTheme()
	a.applyTheme(t)
	if err != nil {
		a.log.Warn("theme not persisted", "error", err)
		return t, fmt.Errorf("app: toggle theme: %w", err)
	}
	return t, nil
}

func (a *App) applyTheme(t state.Theme) {
	if tv, ok := a.views.(ThemeView); ok {
		tv.ApplyTheme(t)
	}
}

// Config returns the settings the app runs with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// wait simulates backend latency. It returns early when ctx is done.
func (a *App) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-a.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package router keeps the visible view, the current page and the page data
// loads consistent with each other.
//
// Navigation is absolute: there is no back stack. Every NavigateTo activates
// exactly one page view and then runs that page's loader once. The
// authentication flow is a super-state with three mutually exclusive
// screens; leaving it requires a signed-in user.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"voyagex-front/logger"
	"voyagex-front/notify"
	"voyagex-front/state"
)

var (
	ErrUnknownPage     = errors.New("router: unknown page")
	ErrUnauthenticated = errors.New("router: no signed-in user")
	ErrNotInAuth       = errors.New("router: authentication flow is not active")
	ErrUnknownScreen   = errors.New("router: unknown auth screen")
)

// Views is the view layer. ShowPage must leave exactly one page view
// active; ShowAuth hides the app shell and shows one auth screen.
type Views interface {
	ShowPage(p state.Page)
	ShowAuth(s state.AuthScreen)
}

// Loader populates state and renders the container of one page. A loader
// must be safe to run again: it replaces its output rather than adding to
// it.
type Loader interface {
	Load(ctx context.Context) error
}

type LoaderFunc func(ctx context.Context) error

func (f LoaderFunc) Load(ctx context.Context) error { return f(ctx) }

type Router struct {
	views    Views
	state    *state.State
	notifier *notify.Notifier
	log      *logger.Logger

	regMu   sync.RWMutex
	loaders map[state.Page]Loader

	// navMu serialises view activation; loaders run outside it.
	navMu  sync.Mutex
	inAuth bool
	screen state.AuthScreen
}

func New(views Views, st *state.State, notifier *notify.Notifier, log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	return &Router{
		views:    views,
		state:    st,
		notifier: notifier,
		log:      log.With("component", "router"),
		loaders:  make(map[state.Page]Loader),
	}
}

// Register binds the loader for p, replacing any earlier one.
func (r *Router) Register(p state.Page, l Loader) {
	r.regMu.Lock()
	r.loaders[p] = l
	r.regMu.Unlock()
}

// Validate fails unless every page has a loader.
func (r *Router) Validate() error {
	r.regMu.RLock()
	defer r.regMu.RUnlock()
	var missing []string
	for _, p := range state.Pages() {
		if _, ok := r.loaders[p]; !ok {
			missing = append(missing, p.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("router: no loader for %s", strings.Join(missing, ", "))
	}
	return nil
}

// NavigateTo shows p and runs its loader. The view is switched before the
// loader starts. An invalid page or a missing user is a wiring bug: the
// call fails and nothing on screen changes.
func (r *Router) NavigateTo(ctx context.Context, p state.Page) error {
	if !p.Valid() {
		r.log.Error("navigation to unknown page", "page", int(p))
		return fmt.Errorf("%w: %s", ErrUnknownPage, p)
	}
	if !r.state.Authenticated() {
		r.log.Error("navigation without user", "page", p.String())
		return fmt.Errorf("%w: cannot open %s", ErrUnauthenticated, p)
	}

	r.regMu.RLock()
	loader, ok := r.loaders[p]
	r.regMu.RUnlock()
	if !ok {
		r.log.Error("page has no loader", "page", p.String())
		return fmt.Errorf("%w: %s has no loader", ErrUnknownPage, p)
	}

	r.navMu.Lock()
	r.inAuth = false
	r.views.ShowPage(p)
	r.state.SetCurrentPage(p)
	r.navMu.Unlock()

	r.log.Debug("navigated", "page", p.String())
	if err := loader.Load(ctx); err != nil {
		r.log.Warn("page load failed", "page", p.String(), "error", err)
		if r.notifier != nil {
			r.notifier.Notify(fmt.Sprintf("Error loading %s data", p), notify.Error)
		}
		return fmt.Errorf("router: load %s: %w", p, err)
	}
	return nil
}

// ShowAuth enters the authentication super-state on screen s.
func (r *Router) ShowAuth(s state.AuthScreen) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, s)
	}
	r.navMu.Lock()
	r.inAuth = true
	r.screen = s
	r.views.ShowAuth(s)
	r.navMu.Unlock()
	r.log.Debug("auth screen", "screen", s.String())
	return nil
}

// ShowScreen switches between auth screens. It only works inside the
// authentication flow.
func (r *Router) ShowScreen(s state.AuthScreen) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownScreen, s)
	}
	r.navMu.Lock()
	defer r.navMu.Unlock()
	if !r.inAuth {
		return ErrNotInAuth
	}
	r.screen = s
	r.views.ShowAuth(s)
	return nil
}

// CompleteAuth leaves the authentication flow for the dashboard. The user
// must already be set.
func (r *Router) CompleteAuth(ctx context.Context) error {
	r.navMu.Lock()
	inAuth := r.inAuth
	r.navMu.Unlock()
	if !inAuth {
		return ErrNotInAuth
	}
	return r.NavigateTo(ctx, state.PageHome)
}

// InAuth reports whether the authentication flow is showing, and on which
// screen.
func (r *Router) InAuth() (state.AuthScreen, bool) {
	r.navMu.Lock()
	defer r.navMu.Unlock()
	return r.screen, r.inAuth
}

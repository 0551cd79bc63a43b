package router

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyagex-front/notify"
	"voyagex-front/state"
	"voyagex-front/store"
)

// fakeViews mimics the DOM: a set of page views of which ShowPage keeps
// exactly one active.
type fakeViews struct {
	mu       sync.Mutex
	active   map[state.Page]bool
	auth     bool
	screen   state.AuthScreen
	sequence []string
}

func newFakeViews() *fakeViews {
	return &fakeViews{active: make(map[state.Page]bool)}
}

func (v *fakeViews) ShowPage(p state.Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for k := range v.active {
		v.active[k] = false
	}
	v.active[p] = true
	v.auth = false
	v.sequence = append(v.sequence, "show:"+p.String())
}

func (v *fakeViews) ShowAuth(s state.AuthScreen) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.auth = true
	v.screen = s
}

func (v *fakeViews) activePages() []state.Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	var out []state.Page
	for p, on := range v.active {
		if on {
			out = append(out, p)
		}
	}
	return out
}

func (v *fakeViews) record(s string) {
	v.mu.Lock()
	v.sequence = append(v.sequence, s)
	v.mu.Unlock()
}

type harness struct {
	router *Router
	views  *fakeViews
	state  *state.State
	counts map[state.Page]int
	mu     sync.Mutex
}

func newHarness(t *testing.T, signedIn bool) *harness {
	t.Helper()
	st := state.New(store.New(store.NewMemory(), "voyagex_", nil), state.Location{Name: "Default"}, nil)
	if signedIn {
		require.NoError(t, st.SetUser(state.User{ID: "u1", Name: "Tester"}))
	}
	h := &harness{views: newFakeViews(), state: st, counts: make(map[state.Page]int)}
	h.router = New(h.views, st, notify.New(clock.NewMock(), time.Second, nil), nil)
	for _, p := range state.Pages() {
		p := p
		h.router.Register(p, LoaderFunc(func(context.Context) error {
			h.mu.Lock()
			h.counts[p]++
			h.mu.Unlock()
			h.views.record("load:" + p.String())
			return nil
		}))
	}
	require.NoError(t, h.router.Validate())
	return h
}

func (h *harness) count(p state.Page) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counts[p]
}

func TestNavigateTo_ExactlyOneActivePage(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()

	for _, p := range state.Pages() {
		require.NoError(t, h.router.NavigateTo(ctx, p))
		assert.Equal(t, []state.Page{p}, h.views.activePages())
		assert.Equal(t, p, h.state.CurrentPage())
		assert.Equal(t, 1, h.count(p), "loader runs exactly once per navigation")
	}
}

func TestNavigateTo_ViewBeforeLoader(t *testing.T) {
	h := newHarness(t, true)
	require.NoError(t, h.router.NavigateTo(context.Background(), state.PageMap))
	assert.Equal(t, []string{"show:map", "load:map"}, h.views.sequence)
}

func TestNavigateTo_SamePageTwice(t *testing.T) {
	h := newHarness(t, true)
	ctx := context.Background()
	require.NoError(t, h.router.NavigateTo(ctx, state.PageRewards))
	require.NoError(t, h.router.NavigateTo(ctx, state.PageRewards))

	assert.Equal(t, 2, h.count(state.PageRewards))
	assert.Equal(t, []state.Page{state.PageRewards}, h.views.activePages())
}

func TestNavigateTo_Rejections(t *testing.T) {
	t.Run("UnknownPage", func(t *testing.T) {
		h := newHarness(t, true)
		require.NoError(t, h.router.NavigateTo(context.Background(), state.PageJournal))

		err := h.router.NavigateTo(context.Background(), state.Page(42))
		assert.ErrorIs(t, err, ErrUnknownPage)
		assert.Equal(t, []state.Page{state.PageJournal}, h.views.activePages())
		assert.Equal(t, state.PageJournal, h.state.CurrentPage())
	})

	t.Run("NoUser", func(t *testing.T) {
		h := newHarness(t, false)
		err := h.router.NavigateTo(context.Background(), state.PageHome)
		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Empty(t, h.views.activePages())
		assert.Zero(t, h.count(state.PageHome))
	})
}

func TestNavigateTo_LoaderErrorNotifies(t *testing.T) {
	st := state.New(store.New(store.NewMemory(), "", nil), state.Location{}, nil)
	require.NoError(t, st.SetUser(state.User{ID: "u"}))
	n := notify.New(clock.NewMock(), time.Second, nil)
	r := New(newFakeViews(), st, n, nil)
	r.Register(state.PageHome, LoaderFunc(func(context.Context) error { return errors.New("boom") }))

	err := r.NavigateTo(context.Background(), state.PageHome)
	require.Error(t, err)
	require.Len(t, n.Notices(), 1)
	assert.Equal(t, "Error loading home data", n.Notices()[0].Message)
	assert.Equal(t, notify.Error, n.Notices()[0].Severity)
	assert.Equal(t, state.PageHome, st.CurrentPage(), "the page stays shown after a failed load")
}

func TestValidate_MissingLoaders(t *testing.T) {
	st := state.New(store.New(store.NewMemory(), "", nil), state.Location{}, nil)
	r := New(newFakeViews(), st, nil, nil)
	r.Register(state.PageHome, LoaderFunc(func(context.Context) error { return nil }))

	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attraction-detail")
	assert.NotContains(t, err.Error(), "home,")
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t, false)
	ctx := context.Background()

	assert.ErrorIs(t, h.router.ShowScreen(state.ScreenRegister), ErrNotInAuth)

	require.NoError(t, h.router.ShowAuth(state.ScreenLogin))
	screen, in := h.router.InAuth()
	assert.True(t, in)
	assert.Equal(t, state.ScreenLogin, screen)

	require.NoError(t, h.router.ShowScreen(state.ScreenForgotPassword))
	assert.Equal(t, state.ScreenForgotPassword, h.views.screen)
	assert.ErrorIs(t, h.router.ShowScreen(state.AuthScreen(9)), ErrUnknownScreen)

	// leaving without a user is refused
	assert.ErrorIs(t, h.router.CompleteAuth(ctx), ErrUnauthenticated)
	_, in = h.router.InAuth()
	assert.True(t, in)

	require.NoError(t, h.state.SetUser(state.User{ID: "u2"}))
	require.NoError(t, h.router.CompleteAuth(ctx))
	_, in = h.router.InAuth()
	assert.False(t, in)
	assert.Equal(t, 1, h.count(state.PageHome))
	assert.Equal(t, []state.Page{state.PageHome}, h.views.activePages())

	assert.ErrorIs(t, h.router.CompleteAuth(ctx), ErrNotInAuth)
}

func TestNavigateTo_ConcurrentLastWriteWins(t *testing.T) {
	h := newHarness(t, true)
	var wg sync.WaitGroup
	for _, p := range []state.Page{state.PageMap, state.PageJournal, state.PageCommunity} {
		wg.Add(1)
		go func(p state.Page) {
			defer wg.Done()
			assert.NoError(t, h.router.NavigateTo(context.Background(), p))
		}(p)
	}
	wg.Wait()

	active := h.views.activePages()
	require.Len(t, active, 1)
	assert.Equal(t, active[0], h.state.CurrentPage())
}

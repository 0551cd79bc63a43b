//go:build js

package main

import (
	"context"

	"github.com/hexops/vecty"

	"voyagex-front/app"
	"voyagex-front/components"
	"voyagex-front/state"
)

// RegisterPage is the sign-up screen of the auth flow.
type RegisterPage struct {
	vecty.Core
	Shell *Shell `vecty:"prop"`
}

func (r *RegisterPage) Render() vecty.ComponentOrHTML {
	s := r.Shell
	return &components.RegisterForm{
		OnSubmit: func(form app.RegisterForm) {
			s.run("register", func(ctx context.Context) error { return s.app.Register(ctx, form) })
		},
		OnLogin: func() { s.showScreen(state.ScreenLogin) },
	}
}

//go:build js

package main

import (
	"context"

	"github.com/hexops/vecty"

	"voyagex-front/app"
	"voyagex-front/components"
	"voyagex-front/state"
)

// LoginPage is the login screen of the auth flow.
type LoginPage struct {
	vecty.Core
	Shell *Shell `vecty:"prop"`
}

func (p *LoginPage) Render() vecty.ComponentOrHTML {
	s := p.Shell
	return &components.LoginForm{
		OnSubmit: func(form app.LoginForm) {
			s.run("login", func(ctx context.Context) error { return s.app.Login(ctx, form) })
		},
		OnRegister: func() { s.showScreen(state.ScreenRegister) },
		OnForgot:   func() { s.showScreen(state.ScreenForgotPassword) },
	}
}

// ForgotPasswordPage is the reset-link screen of the auth flow.
type ForgotPasswordPage struct {
	vecty.Core
	Shell *Shell `vecty:"prop"`
}

func (p *ForgotPasswordPage) Render() vecty.ComponentOrHTML {
	s := p.Shell
	return &components.ForgotPasswordForm{
		OnSubmit: func(form app.ForgotPasswordForm) {
			s.run("forgot-password", func(ctx context.Context) error { return s.app.ForgotPassword(ctx, form) })
		},
		OnBack: func() { s.showScreen(state.ScreenLogin) },
	}
}

func (s *Shell) showScreen(screen state.AuthScreen) {
	if err := s.app.ShowScreen(screen); err != nil {
		s.log.Warn("auth screen", "screen", screen.String(), "error", err)
	}
}

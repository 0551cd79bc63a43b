package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"voyagex-front/notify"
	"voyagex-front/state"
)

// ErrInvalidForm is returned when an auth form fails validation. The
// wrapped message names the offending fields.
var ErrInvalidForm = errors.New("app: invalid form")

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type RegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,min=7"`
	Password string `validate:"required,min=6"`
}

type ForgotPasswordForm struct {
	Email string `validate:"required,email"`
}

var validate = validator.New()

func checkForm(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(fields, ", "))
}

// ShowScreen switches between the login, register and forgot-password
// screens.
func (a *App) ShowScreen(s state.AuthScreen) error {
	return a.Router.ShowScreen(s)
}

// Login signs the user in and opens the dashboard. There is no account
// backend, so any well-formed credentials are accepted.
func (a *App) Login(ctx context.Context, form LoginForm) error {
	if err := checkForm(form); err != nil {
		a.Notifier.Notify("Please check your email and password", notify.Error)
		return err
	}
	return a.signIn(ctx, state.User{
		ID:    uuid.NewString(),
		Name:  "Travel Enthusiast",
		Email: form.Email,
		Phone: "+91 1234567890",
	}, "Welcome back! 🎉")
}

// Register creates an account from the form and opens the dashboard.
func (a *App) Register(ctx context.Context, form RegisterForm) error {
	if err := checkForm(form); err != nil {
		a.Notifier.Notify("Please fill in all fields", notify.Error)
		return err
	}
	return a.signIn(ctx, state.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(form.Name),
		Email: form.Email,
		Phone: form.Phone,
	}, "Account created successfully! 🎉")
}

// signIn persists u and only then leaves the auth flow, so no page load can
// run without a user.
func (a *App) signIn(ctx context.Context, u state.User, welcome string) error {
	release := a.Notifier.Track()
	if err := a.wait(ctx, a.cfg.Latency.Auth); err != nil {
		release()
		return fmt.Errorf("app: sign in: %w", err)
	}
	u.CreatedAt = a.clock.Now().UTC()
	if err := a.State.SetUser(u); err != nil {
		release()
		a.Notifier.Notify("Could not save your session", notify.Error)
		return fmt.Errorf("app: sign in: %w", err)
	}
	release()

	a.log.Info("signed in", "user_id", u.ID, "email", u.Email)
	a.Notifier.Notify(welcome, notify.Success)
	return a.Router.CompleteAuth(ctx)
}

// ForgotPassword pretends to send a reset link and returns to login.
func (a *App) ForgotPassword(ctx context.Context, form ForgotPasswordForm) error {
	if err := checkForm(form); err != nil {
		a.Notifier.Notify("Please enter a valid email", notify.Error)
		return err
	}
	release := a.Notifier.Track()
	err := a.wait(ctx, a.cfg.Latency.Auth)
	release()
	if err != nil {
		return fmt.Errorf("app: forgot password: %w", err)
	}
	a.Notifier.Notify("Reset link sent to your email! 📧", notify.Success)
	return a.Router.ShowScreen(state.ScreenLogin)
}

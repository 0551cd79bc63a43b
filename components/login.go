package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/app"
)

// LoginForm collects the sign-in credentials.
type LoginForm struct {
	vecty.Core
	OnSubmit   func(app.LoginForm) `vecty:"prop"`
	OnRegister func()              `vecty:"prop"`
	OnForgot   func()              `vecty:"prop"`

	email    string
	password string
}

func (l *LoginForm) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("auth-screen", "glass-card")),
		elem.Heading1(vecty.Text("Welcome Back")),
		elem.Paragraph(vecty.Text("Sign in to continue your journey")),
		elem.Form(
			vecty.Markup(event.Submit(func(e *vecty.Event) {
				if l.OnSubmit != nil {
					l.OnSubmit(app.LoginForm{Email: l.email, Password: l.password})
				}
			}).PreventDefault()),
			field("email", "Email", func(v string) { l.email = v }),
			field("password", "Password", func(v string) { l.password = v }),
			elem.Anchor(
				vecty.Markup(vecty.Class("forgot-link"), event.Click(func(e *vecty.Event) { call(l.OnForgot) }).PreventDefault()),
				vecty.Text("Forgot password?"),
			),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), vecty.Property("type", "submit")),
				vecty.Text("Sign In"),
			),
		),
		elem.Paragraph(
			vecty.Markup(vecty.Class("auth-switch")),
			vecty.Text("Don't have an account? "),
			elem.Anchor(
				vecty.Markup(event.Click(func(e *vecty.Event) { call(l.OnRegister) }).PreventDefault()),
				vecty.Text("Sign Up"),
			),
		),
	)
}

// ForgotPasswordForm asks for the address to send a reset link to.
type ForgotPasswordForm struct {
	vecty.Core
	OnSubmit func(app.ForgotPasswordForm) `vecty:"prop"`
	OnBack   func()                       `vecty:"prop"`

	email string
}

func (f *ForgotPasswordForm) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("auth-screen", "glass-card")),
		elem.Heading1(vecty.Text("Reset Password")),
		elem.Paragraph(vecty.Text("Enter your email to receive a reset link")),
		elem.Form(
			vecty.Markup(event.Submit(func(e *vecty.Event) {
				if f.OnSubmit != nil {
					f.OnSubmit(app.ForgotPasswordForm{Email: f.email})
				}
			}).PreventDefault()),
			field("email", "Email", func(v string) { f.email = v }),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), vecty.Property("type", "submit")),
				vecty.Text("Send Reset Link"),
			),
		),
		elem.Button(
			vecty.Markup(vecty.Class("btn", "btn-link"), event.Click(func(e *vecty.Event) { call(f.OnBack) })),
			vecty.Text("Back to Login"),
		),
	)
}

// field is a floating-label input that reports every keystroke.
func field(typ, label string, onInput func(string)) vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("input-group", "floating-input")),
		elem.Input(vecty.Markup(
			vecty.Property("type", typ),
			vecty.Attribute("required", true),
			event.Input(func(e *vecty.Event) {
				onInput(e.Target.Get("value").String())
			}),
		)),
		elem.Label(vecty.Text(label)),
	)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

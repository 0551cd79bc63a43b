package components

import (
	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"

	"voyagex-front/app"
)

// RegisterForm collects a new account.
type RegisterForm struct {
	vecty.Core
	OnSubmit func(app.RegisterForm) `vecty:"prop"`
	OnLogin  func()                 `vecty:"prop"`

	form app.RegisterForm
}

func (s *RegisterForm) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("auth-screen", "glass-card")),
		elem.Heading1(vecty.Text("Create Account")),
		elem.Paragraph(vecty.Text("Start exploring with VoyageX")),
		elem.Form(
			vecty.Markup(event.Submit(func(e *vecty.Event) {
				if s.OnSubmit != nil {
					s.OnSubmit(s.form)
				}
			}).PreventDefault()),
			field("text", "Full Name", func(v string) { s.form.Name = v }),
			field("email", "Email", func(v string) { s.form.Email = v }),
			field("tel", "Phone", func(v string) { s.form.Phone = v }),
			field("password", "Password", func(v string) { s.form.Password = v }),
			elem.Button(
				vecty.Markup(vecty.Class("btn", "btn-primary", "full-width"), vecty.Property("type", "submit")),
				vecty.Text("Sign Up"),
			),
		),
		elem.Paragraph(
			vecty.Markup(vecty.Class("auth-switch")),
			vecty.Text("Already have an account? "),
			elem.Anchor(
				vecty.Markup(event.Click(func(e *vecty.Event) { call(s.OnLogin) }).PreventDefault()),
				vecty.Text("Sign In"),
			),
		),
	)
}

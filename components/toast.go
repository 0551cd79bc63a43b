package components

import (
	"strconv"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"

	"voyagex-front/notify"
)

// Toasts renders the visible notices, oldest on top.
type Toasts struct {
	vecty.Core
	Notices []notify.Notice `vecty:"prop"`
}

var toastIcons = map[notify.Severity]string{
	notify.Info:    "fa-info-circle",
	notify.Success: "fa-check-circle",
	notify.Error:   "fa-exclamation-circle",
}

func (t *Toasts) Render() vecty.ComponentOrHTML {
	items := make(vecty.List, 0, len(t.Notices))
	for _, n := range t.Notices {
		items = append(items, elem.Div(
			vecty.Markup(
				vecty.Class("toast", "toast-"+n.Severity.String()),
				vecty.Attribute("data-id", strconv.FormatUint(n.ID, 10)),
			),
			elem.Italic(vecty.Markup(vecty.Class("fas", toastIcons[n.Severity]))),
			elem.Span(vecty.Text(n.Message)),
		))
	}
	return elem.Div(vecty.Markup(vecty.Class("toast-container")), items)
}

// Overlay is the loading spinner shown while the notifier is busy.
type Overlay struct {
	vecty.Core
	Visible bool `vecty:"prop"`
}

func (o *Overlay) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(
			vecty.Class("loading-overlay"),
			vecty.ClassMap{"active": o.Visible},
		),
		elem.Div(vecty.Markup(vecty.Class("spinner"))),
	)
}

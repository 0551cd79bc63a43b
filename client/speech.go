//go:build js

package main

import (
	"context"
	"syscall/js"

	"github.com/hexops/vecty"
	"github.com/hexops/vecty/elem"
	"github.com/hexops/vecty/event"
)

// VoicePanel is the floating microphone button. It feeds the first
// recognized transcript to the voice command table.
type VoicePanel struct {
	vecty.Core

	shell      *Shell
	listening  bool
	transcript string
}

func NewVoicePanel(s *Shell) *VoicePanel {
	return &VoicePanel{shell: s}
}

func (v *VoicePanel) Render() vecty.ComponentOrHTML {
	return elem.Div(
		vecty.Markup(vecty.Class("voice-panel")),
		vecty.If(v.transcript != "", elem.Div(vecty.Markup(vecty.Class("voice-transcript")), vecty.Text(v.transcript))),
		elem.Button(
			vecty.Markup(
				vecty.Class("voice-btn"),
				vecty.ClassMap{"listening": v.listening},
				event.Click(func(e *vecty.Event) { v.listen() }),
			),
			elem.Italic(vecty.Markup(vecty.Class("fas", "fa-microphone"))),
		),
	)
}

func speechRecognition() js.Value {
	ctor := js.Global().Get("SpeechRecognition")
	if ctor.IsUndefined() {
		ctor = js.Global().Get("webkitSpeechRecognition")
	}
	return ctor
}

func (v *VoicePanel) listen() {
	if v.listening {
		return
	}
	ctor := speechRecognition()
	if ctor.IsUndefined() || ctor.IsNull() {
		v.shell.app.VoiceUnsupported()
		return
	}
	rec := ctor.New()
	rec.Set("lang", "en-US")
	rec.Set("interimResults", false)
	rec.Set("maxAlternatives", 1)

	var onResult, onEnd js.Func
	onResult = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		text := args[0].Get("results").Index(0).Index(0).Get("transcript").String()
		v.transcript = text
		vecty.Rerender(v)
		v.shell.run("voice-command", func(ctx context.Context) error {
			_, err := v.shell.app.VoiceCommand(ctx, text)
			return err
		})
		return nil
	})
	onEnd = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		v.listening = false
		vecty.Rerender(v)
		onResult.Release()
		onEnd.Release()
		return nil
	})
	rec.Set("onresult", onResult)
	rec.Set("onend", onEnd)

	v.listening = true
	v.transcript = ""
	vecty.Rerender(v)
	rec.Call("start")
}

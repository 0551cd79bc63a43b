package app

import (
	"context"
	"strings"

	"voyagex-front/notify"
	"voyagex-front/state"
)

// voiceCommand maps spoken keywords to a page and a confirmation.
type voiceCommand struct {
	keywords []string
	page     state.Page
	reply    string
}

// Checked in order; the first match wins.
var voiceCommands = []voiceCommand{
	{keywords: []string{"restaurant", "food"}, page: state.PageAttractions, reply: "Showing restaurants near you"},
	{keywords: []string{"route", "direction"}, page: state.PageRoutes, reply: "Opening route planner"},
	{keywords: []string{"map"}, page: state.PageMap, reply: "Opening map"},
}

const voiceHint = `Command not recognized. Try "Find restaurants near me"`

// VoiceCommand acts on a recognised transcript. It reports whether the
// command was understood.
func (a *App) VoiceCommand(ctx context.Context, transcript string) (bool, error) {
	lower := strings.ToLower(transcript)
	for _, c := range voiceCommands {
		for _, k := range c.keywords {
			if !strings.Contains(lower, k) {
				continue
			}
			if err := a.Router.NavigateTo(ctx, c.page); err != nil {
				return true, err
			}
			a.Notifier.Notify(c.reply, notify.Info)
			return true, nil
		}
	}
	a.Notifier.Notify(voiceHint, notify.Info)
	return false, nil
}

// VoiceUnsupported reports a browser without speech recognition.
func (a *App) VoiceUnsupported() {
	a.Notifier.Notify("Voice recognition not supported in this browser", notify.Error)
}

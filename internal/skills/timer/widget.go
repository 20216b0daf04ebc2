package timer

import (
	"github.com/viveksalimath/Lemo.ai/sdk/widget"
)

// WidgetType is the widget type name sent to the web app.
const WidgetType = "TimerWidget"

// tickInterval is how often the web app redraws the countdown, in ms.
const tickInterval = 1000

// Params are the TimerWidget render parameters.
type Params struct {
	Seconds int
	// Refreshed is set when the widget is rendered for an on-fetch.
	Refreshed bool
}

// Widget renders a countdown timer.
type Widget struct {
	widget.Base
}

// NewWidget builds a TimerWidget. A non-empty widgetID keeps the identity of
// the widget being refreshed.
func NewWidget(env widget.Env, p Params, widgetID string) *Widget {
	return &Widget{Base: widget.NewBase(env, WidgetType, widget.Options{
		WrapperProps: widget.Props{"noPadding": true},
		Params:       p,
		OnFetch: &widget.FetchOptions{
			WidgetID:   widgetID,
			ActionName: ActionCheckTimer,
		},
	})}
}

// Render implements widget.Widget.
func (w *Widget) Render() *widget.Component {
	p, _ := w.Params.(Params)
	label := w.Component("Text", widget.Props{
		"fontWeight": "semi-bold",
		"children":   w.Content("seconds_left", map[string]any{"seconds": p.Seconds}),
	})

	return w.Component("Timer", widget.Props{
		"initialTime":   p.Seconds,
		"interval":      tickInterval,
		"refreshed":     p.Refreshed,
		"children":      []*widget.Component{label},
		widget.EventEnd: w.SendUtterance("times_up", &widget.UtteranceOptions{From: widget.SenderAssistant}),
	})
}

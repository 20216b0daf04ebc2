package widget

import (
	"github.com/viveksalimath/Lemo.ai/sdk/intent"
	"github.com/viveksalimath/Lemo.ai/sdk/placeholder"
	"github.com/viveksalimath/Lemo.ai/sdk/random"
	"github.com/viveksalimath/Lemo.ai/sdk/skillconfig"
)

// InvalidContent is returned by Content for unknown keys.
const InvalidContent = "INVALID"

const widgetIDLength = 8

// Widget is implemented by every concrete widget. Embedding Base provides
// Info; the concrete type provides Render.
type Widget interface {
	Render() *Component
	Info() *Base
}

// Env is what a widget needs from the running action.
type Env struct {
	Intent *intent.Object
	Config *skillconfig.Config
	Rand   random.Source
}

// Options configure a widget instance.
type Options struct {
	// WrapperProps are applied to the WidgetWrapper root (children excluded).
	WrapperProps Props
	Params       any
	// OnFetch lets the web app refresh the widget by running an action of
	// the same skill. A non-empty WidgetID is reused as the widget id.
	OnFetch *FetchOptions
}

// FetchOptions name the action that refreshes a widget.
type FetchOptions struct {
	WidgetID   string
	ActionName string
}

// OnFetch is the serialized refresh descriptor.
type OnFetch struct {
	WidgetID   string `json:"widgetId,omitempty"`
	ActionName string `json:"actionName"`
}

// Base carries widget identity and the helpers concrete widgets use while
// rendering.
type Base struct {
	Type         string
	ID           string
	ActionName   string
	OnFetch      *OnFetch
	WrapperProps Props
	Params       any

	env Env
}

// NewBase initializes the identity of a widget of the given type name
// (e.g. "TimerWidget"). The id is the on-fetch widget id when one is given,
// otherwise "<lowercased type>-<8 random characters>".
func NewBase(env Env, typeName string, opts Options) Base {
	if env.Rand == nil {
		env.Rand = random.Default()
	}
	b := Base{
		Type:         typeName,
		WrapperProps: opts.WrapperProps,
		Params:       opts.Params,
		env:          env,
	}
	if env.Intent != nil {
		b.ActionName = env.Intent.ActionName()
	}

	if opts.OnFetch != nil {
		b.OnFetch = &OnFetch{WidgetID: opts.OnFetch.WidgetID}
		if env.Intent != nil {
			b.OnFetch.ActionName = env.Intent.QualifiedAction(opts.OnFetch.ActionName)
		} else {
			b.OnFetch.ActionName = opts.OnFetch.ActionName
		}
	}

	if opts.OnFetch != nil && opts.OnFetch.WidgetID != "" {
		b.ID = opts.OnFetch.WidgetID
	} else {
		b.ID = lower(typeName) + "-" + random.String(env.Rand, widgetIDLength)
	}
	return b
}

// Info returns the widget's base fields.
func (b *Base) Info() *Base { return b }

// Component builds a child component using the widget's random source.
func (b *Base) Component(name string, props Props) *Component {
	return NewComponent(b.env.Rand, name, props)
}

// Content returns the widget content for key with data applied. Lists pick
// one entry at random. Unknown keys yield InvalidContent. Skill variables
// are not applied.
func (b *Base) Content(key string, data map[string]any) string {
	contents, ok := b.env.Config.Content(key)
	if !ok || len(contents.Items) == 0 {
		return InvalidContent
	}
	content := contents.Items[0]
	if contents.List {
		content = random.Pick(b.env.Rand, contents.Items)
	}
	return placeholder.Replace(content, data)
}

package widget

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/viveksalimath/Lemo.ai/sdk/random"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Supported component events, in the order the web app binds them.
const (
	EventClick  = "onClick"
	EventSubmit = "onSubmit"
	EventChange = "onChange"
	EventStart  = "onStart"
	EventEnd    = "onEnd"
)

// SupportedEvents are the component events the web app binds to widget
// event methods. The web app carries the same list.
var SupportedEvents = []string{EventClick, EventSubmit, EventChange, EventStart, EventEnd}

// WrapperComponent is the root component every widget tree is wrapped in.
const WrapperComponent = "WidgetWrapper"

// ErrChildrenNotList is returned when serializing a component whose
// "children" prop is a single component instead of a list.
var ErrChildrenNotList = errors.New("widget children components must be a list")

const componentIDLength = 5

// Props are component properties.
type Props map[string]any

// Component is one node of a widget tree.
type Component struct {
	Name   string
	ID     string
	Props  Props
	Events []Event
}

// Event binds a component event to a widget event method.
type Event struct {
	Type   string      `json:"type"`
	ID     string      `json:"id"`
	Method EventMethod `json:"method"`
}

// NewComponent builds a component named after its web app counterpart
// (e.g. "Text", "Flexbox"). Props keyed by a supported event whose value is
// an EventMethod become Events and are dropped from Props.
func NewComponent(src random.Source, name string, props Props) *Component {
	if src == nil {
		src = random.Default()
	}
	c := &Component{
		Name:   name,
		ID:     lower(name) + "-" + random.String(src, componentIDLength),
		Props:  make(Props, len(props)),
		Events: []Event{},
	}
	for k, v := range props {
		c.Props[k] = v
	}

	for _, typ := range SupportedEvents {
		method, ok := eventMethod(c.Props[typ])
		if !ok {
			continue
		}
		delete(c.Props, typ)
		c.Events = append(c.Events, Event{
			Type:   typ,
			ID:     c.ID + "_" + lower(typ) + "-" + random.String(src, componentIDLength),
			Method: method,
		})
	}
	return c
}

// NewWrapper wraps a rendered widget in the root WidgetWrapper component.
func NewWrapper(src random.Source, props Props, child *Component) *Component {
	merged := make(Props, len(props)+1)
	for k, v := range props {
		merged[k] = v
	}
	merged["children"] = []*Component{child}
	return NewComponent(src, WrapperComponent, merged)
}

func eventMethod(v any) (EventMethod, bool) {
	switch m := v.(type) {
	case EventMethod:
		return m, true
	case *EventMethod:
		if m == nil {
			return EventMethod{}, false
		}
		return *m, true
	case func() EventMethod:
		return m(), true
	default:
		return EventMethod{}, false
	}
}

// MarshalJSON writes the component contract read by the web app.
func (c Component) MarshalJSON() ([]byte, error) {
	switch c.Props["children"].(type) {
	case *Component, Component:
		return nil, fmt.Errorf("component %s: %w", c.ID, ErrChildrenNotList)
	}

	props := c.Props
	if props == nil {
		props = Props{}
	}
	events := c.Events
	if events == nil {
		events = []Event{}
	}
	return json.Marshal(struct {
		Component string  `json:"component"`
		ID        string  `json:"id"`
		Props     Props   `json:"props"`
		Events    []Event `json:"events"`
	}{c.Name, c.ID, props, events})
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

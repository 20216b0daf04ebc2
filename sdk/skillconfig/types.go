package skillconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Config is the part of a skill config the bridge reads.
type Config struct {
	Answers        map[string]Variants `json:"answers,omitempty" yaml:"answers,omitempty"`
	Variables      map[string]any      `json:"variables,omitempty" yaml:"variables,omitempty"`
	WidgetContents map[string]Contents `json:"widget_contents,omitempty" yaml:"widget_contents,omitempty"`
}

// Answer returns the variants configured for key. A key set to null is
// reported as not configured.
func (c *Config) Answer(key string) (Variants, bool) {
	if c == nil || c.Answers == nil {
		return Variants{}, false
	}
	v, ok := c.Answers[key]
	if !ok || v.isNull() {
		return Variants{}, false
	}
	return v, true
}

// Content returns the widget contents configured for key.
func (c *Config) Content(key string) (Contents, bool) {
	if c == nil || c.WidgetContents == nil {
		return Contents{}, false
	}
	v, ok := c.WidgetContents[key]
	return v, ok
}

// Template is one answer: either a plain string or a text/speech pair.
type Template struct {
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Speech string `json:"speech,omitempty" yaml:"speech,omitempty"`
	// Structured is true when the template was written as {text, speech}.
	Structured bool `json:"-" yaml:"-"`
}

// Plain returns a plain-string template.
func Plain(s string) Template {
	return Template{Text: s}
}

// Pair returns a text/speech template.
func Pair(text, speech string) Template {
	return Template{Text: text, Speech: speech, Structured: true}
}

type templateFields struct {
	Text   string `json:"text" yaml:"text"`
	Speech string `json:"speech" yaml:"speech"`
}

// UnmarshalJSON accepts a string or an object with text/speech.
func (t *Template) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Plain(s)
		return nil
	}
	var f templateFields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("answer template must be a string or {text, speech}: %w", err)
	}
	*t = Pair(f.Text, f.Speech)
	return nil
}

// UnmarshalYAML accepts a scalar or a mapping with text/speech.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = Plain(s)
		return nil
	case yaml.MappingNode:
		var f templateFields
		if err := node.Decode(&f); err != nil {
			return err
		}
		*t = Pair(f.Text, f.Speech)
		return nil
	default:
		return fmt.Errorf("line %d: answer template must be a string or {text, speech}", node.Line)
	}
}

// MarshalJSON writes plain templates as strings and pairs as objects
// without their empty parts.
func (t Template) MarshalJSON() ([]byte, error) {
	if !t.Structured {
		return json.Marshal(t.Text)
	}
	return json.Marshal(struct {
		Text   string `json:"text,omitempty"`
		Speech string `json:"speech,omitempty"`
	}{t.Text, t.Speech})
}

// Variants holds one answer template or a list to choose from.
type Variants struct {
	Items []Template
	// List is true when the config declared an array.
	List bool
}

// Single wraps one template.
func Single(t Template) Variants {
	return Variants{Items: []Template{t}}
}

// OneOf wraps a list of templates.
func OneOf(ts ...Template) Variants {
	return Variants{Items: ts, List: true}
}

// isNull reports variants decoded from a null entry.
func (v Variants) isNull() bool {
	return !v.List && len(v.Items) == 0
}

// UnmarshalJSON accepts a template or an array of templates. null leaves
// the variants empty.
func (v *Variants) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*v = Variants{}
		return nil
	}
	var items []Template
	if err := json.Unmarshal(data, &items); err == nil {
		*v = OneOf(items...)
		return nil
	}
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*v = Single(t)
	return nil
}

// UnmarshalYAML accepts a template or a sequence of templates.
func (v *Variants) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*v = Variants{}
		return nil
	}
	if node.Kind == yaml.SequenceNode {
		var items []Template
		if err := node.Decode(&items); err != nil {
			return err
		}
		*v = OneOf(items...)
		return nil
	}
	var t Template
	if err := node.Decode(&t); err != nil {
		return err
	}
	*v = Single(t)
	return nil
}

// MarshalJSON writes single templates unwrapped.
func (v Variants) MarshalJSON() ([]byte, error) {
	if v.List {
		if v.Items == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.Items)
	}
	if len(v.Items) == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(v.Items[0])
}

// Contents holds one widget content string or a list to choose from.
type Contents struct {
	Items []string
	List  bool
}

// UnmarshalJSON accepts a string or an array of strings.
func (c *Contents) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*c = Contents{Items: items, List: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("widget content must be a string or a list of strings: %w", err)
	}
	*c = Contents{Items: []string{s}}
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (c *Contents) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*c = Contents{Items: items, List: true}
		return nil
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*c = Contents{Items: []string{s}}
		return nil
	default:
		return fmt.Errorf("line %d: widget content must be a string or a list of strings", node.Line)
	}
}

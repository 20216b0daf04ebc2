// Package intent describes the request context the core hands to the bridge:
// which skill action runs and the utterance that triggered it. The core
// writes it as a JSON file whose path is the bridge's first argument.
package intent

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Object is the intent object for one skill action invocation.
type Object struct {
	Domain           string         `json:"domain"`
	Skill            string         `json:"skill"`
	Action           string         `json:"action"`
	Lang             string         `json:"lang,omitempty"`
	Utterance        string         `json:"utterance,omitempty"`
	NewUtterance     string         `json:"new_utterance,omitempty"`
	CurrentEntities  []Entity       `json:"current_entities"`
	Entities         []Entity       `json:"entities,omitempty"`
	CurrentResolvers []Resolver     `json:"current_resolvers,omitempty"`
	Resolvers        []Resolver     `json:"resolvers,omitempty"`
	Slots            map[string]any `json:"slots,omitempty"`
	ExtraContextData map[string]any `json:"extra_context_data,omitempty"`

	// raw holds every top-level field of the parsed document, including
	// those the struct does not model.
	raw map[string]json.RawMessage
}

// Entity is a named entity recognized in the utterance.
type Entity struct {
	Start         int             `json:"start"`
	End           int             `json:"end"`
	Len           int             `json:"len"`
	Levenshtein   float64         `json:"levenshtein"`
	Accuracy      float64         `json:"accuracy"`
	Entity        string          `json:"entity"`
	Type          string          `json:"type,omitempty"`
	Option        string          `json:"option,omitempty"`
	SourceText    string          `json:"sourceText"`
	UtteranceText string          `json:"utteranceText,omitempty"`
	Resolution    json.RawMessage `json:"resolution,omitempty"`
}

// Resolver is a resolved value (e.g. an affirmation) for the current action.
type Resolver struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Load reads and parses an intent object file.
func Load(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading intent object %s: %w", path, err)
	}
	obj, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing intent object %s: %w", path, err)
	}
	return obj, nil
}

// Parse decodes an intent object and checks the fields that identify the
// action.
func Parse(data []byte) (*Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &obj.raw); err != nil {
		return nil, err
	}
	var missing []string
	if obj.Domain == "" {
		missing = append(missing, "domain")
	}
	if obj.Skill == "" {
		missing = append(missing, "skill")
	}
	if obj.Action == "" {
		missing = append(missing, "action")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}
	if obj.CurrentEntities == nil {
		obj.CurrentEntities = []Entity{}
		delete(obj.raw, "current_entities")
	}
	return &obj, nil
}

// ActionName returns the fully qualified action name, "domain:skill:action".
func (o *Object) ActionName() string {
	return o.QualifiedAction(o.Action)
}

// QualifiedAction qualifies an action of the current skill,
// e.g. QualifiedAction("check_timer") → "utilities:timer:check_timer".
func (o *Object) QualifiedAction(action string) string {
	return o.Domain + ":" + o.Skill + ":" + action
}

// ConfigLang returns the language used to pick the skill config file:
// extra_context_data.lang, then lang.
func (o *Object) ConfigLang() string {
	if v, ok := o.ExtraContextData["lang"].(string); ok && v != "" {
		return v
	}
	return o.Lang
}

// FindEntity returns the first current entity with the given name.
func (o *Object) FindEntity(name string) (Entity, bool) {
	for _, e := range o.CurrentEntities {
		if e.Entity == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Fields returns the intent object as top-level JSON fields. Fields read
// from the parsed document are returned exactly as the core wrote them;
// fields set on the struct fill in the rest.
func (o *Object) Fields() (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if o == nil {
		return fields, nil
	}

	typed, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encoding intent object: %w", err)
	}
	if err := json.Unmarshal(typed, &fields); err != nil {
		return nil, fmt.Errorf("encoding intent object: %w", err)
	}
	for k, v := range o.raw {
		fields[k] = v
	}
	return fields, nil
}

package sdk

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/viveksalimath/Lemo.ai/sdk/intent"
)

func noop(context.Context, *Bridge, Params) error { return nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("utilities:timer:set_timer", noop)
	r.Register("utilities:timer:check_timer", noop)

	if _, err := r.Lookup("utilities:timer:set_timer"); err != nil {
		t.Errorf("Lookup error: %v", err)
	}
	_, err := r.Lookup("utilities:timer:cancel_timer")
	if !errors.Is(err, ErrActionNotFound) {
		t.Errorf("Lookup(unknown) error = %v, want ErrActionNotFound", err)
	}

	want := []string{"utilities:timer:check_timer", "utilities:timer:set_timer"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RegisterPanics(t *testing.T) {
	tests := []struct {
		name   string
		action string
		fn     ActionFunc
	}{
		{"two parts", "timer:set_timer", noop},
		{"empty part", "utilities::set_timer", noop},
		{"nil func", "utilities:timer:set_timer", nil},
		{"duplicate", "utilities:timer:dup", noop},
	}
	r := NewRegistry()
	r.Register("utilities:timer:dup", noop)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Register(%q) did not panic", tt.action)
				}
			}()
			r.Register(tt.action, tt.fn)
		})
	}
}

func TestParamsFrom(t *testing.T) {
	obj := &intent.Object{
		Domain:           "utilities",
		Skill:            "timer",
		Action:           "set_timer",
		Lang:             "en",
		Utterance:        "set a timer",
		CurrentEntities:  []intent.Entity{{Entity: "duration", SourceText: "5 minutes"}},
		Slots:            map[string]any{"duration": "5 minutes"},
		ExtraContextData: map[string]any{"lang": "en"},
	}
	p := ParamsFrom(obj)
	if p.Lang != "en" || p.Utterance != "set a timer" {
		t.Errorf("params = %+v", p)
	}
	if len(p.CurrentEntities) != 1 || p.Slots["duration"] != "5 minutes" {
		t.Errorf("entities/slots not carried: %+v", p)
	}
}

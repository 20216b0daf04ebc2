package intent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	obj, err := Load(filepath.Join("testdata", "set-timer.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if obj.ActionName() != "utilities:timer:set_timer" {
		t.Errorf("ActionName() = %q", obj.ActionName())
	}
	if len(obj.CurrentEntities) != 1 {
		t.Fatalf("CurrentEntities len = %d, want 1", len(obj.CurrentEntities))
	}
	e := obj.CurrentEntities[0]
	if e.Entity != "duration" || e.SourceText != "5 minutes" {
		t.Errorf("entity = %+v", e)
	}
	if len(e.Resolution) == 0 {
		t.Error("Resolution should be kept as raw JSON")
	}
	if obj.ConfigLang() != "en" {
		t.Errorf("ConfigLang() = %q, want en", obj.ConfigLang())
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestParse_MissingFields(t *testing.T) {
	_, err := Parse([]byte(`{"domain": "utilities"}`))
	if err == nil {
		t.Fatal("expected error for missing skill/action, got nil")
	}
	if got := err.Error(); got != "missing required field(s): skill, action" {
		t.Errorf("error = %q", got)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intent.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestParse_DefaultsEntities(t *testing.T) {
	obj, err := Parse([]byte(`{"domain":"d","skill":"s","action":"a"}`))
	if err != nil {
		t.Fatal(err)
	}
	if obj.CurrentEntities == nil {
		t.Error("CurrentEntities should default to an empty slice")
	}
}

func TestQualifiedAction(t *testing.T) {
	obj := &Object{Domain: "utilities", Skill: "timer", Action: "set_timer"}
	if got := obj.QualifiedAction("check_timer"); got != "utilities:timer:check_timer" {
		t.Errorf("QualifiedAction = %q", got)
	}
}

func TestConfigLang_FallsBackToLang(t *testing.T) {
	obj := &Object{Lang: "fr"}
	if got := obj.ConfigLang(); got != "fr" {
		t.Errorf("ConfigLang() = %q, want fr", got)
	}
}

func TestFindEntity(t *testing.T) {
	obj := &Object{CurrentEntities: []Entity{
		{Entity: "number", SourceText: "5"},
		{Entity: "widgetid", SourceText: "timerwidget-abc"},
	}}
	e, ok := obj.FindEntity("widgetid")
	if !ok || e.SourceText != "timerwidget-abc" {
		t.Errorf("FindEntity = %+v, %v", e, ok)
	}
	if _, ok := obj.FindEntity("missing"); ok {
		t.Error("FindEntity(missing) should be false")
	}
}

func TestFields_KeepsUnmodeledData(t *testing.T) {
	obj, err := Parse([]byte(`{"domain":"d","skill":"s","action":"a","sentiment":{"vote":"up"},"slots":{}}`))
	if err != nil {
		t.Fatal(err)
	}
	fields, err := obj.Fields()
	if err != nil {
		t.Fatal(err)
	}
	if string(fields["sentiment"]) != `{"vote":"up"}` {
		t.Errorf("sentiment = %s", fields["sentiment"])
	}
	if string(fields["slots"]) != `{}` {
		t.Errorf("slots = %s", fields["slots"])
	}
	if string(fields["current_entities"]) != `[]` {
		t.Errorf("current_entities = %s, want []", fields["current_entities"])
	}
}

func TestFields_BuiltObject(t *testing.T) {
	obj := &Object{Domain: "d", Skill: "s", Action: "a"}
	fields, err := obj.Fields()
	if err != nil {
		t.Fatal(err)
	}
	if string(fields["domain"]) != `"d"` {
		t.Errorf("domain = %s", fields["domain"])
	}
	if _, ok := fields["slots"]; ok {
		t.Error("unset slots should be omitted")
	}
}

func TestFields_NullEntitiesBecomeEmpty(t *testing.T) {
	obj, err := Parse([]byte(`{"domain":"d","skill":"s","action":"a","current_entities":null}`))
	if err != nil {
		t.Fatal(err)
	}
	fields, err := obj.Fields()
	if err != nil {
		t.Fatal(err)
	}
	if string(fields["current_entities"]) != `[]` {
		t.Errorf("current_entities = %s, want []", fields["current_entities"])
	}
}

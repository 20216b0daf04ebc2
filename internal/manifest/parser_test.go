package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestParseSkill_JSON(t *testing.T) {
	m, err := ParseSkill(testPath("valid-skill.json"))
	if err != nil {
		t.Fatalf("ParseSkill error: %v", err)
	}
	if m.Name != "Timer" {
		t.Errorf("Name = %q, want %q", m.Name, "Timer")
	}
	if m.Bridge != "go" {
		t.Errorf("Bridge = %q, want %q", m.Bridge, "go")
	}
	if m.BridgeVersion != ">= 1.0.0" {
		t.Errorf("BridgeVersion = %q", m.BridgeVersion)
	}
	if m.Author == nil || m.Author.Name != "Lemo contributors" {
		t.Errorf("Author = %+v", m.Author)
	}
	if len(m.Actions) != 2 {
		t.Fatalf("Actions len = %d, want 2", len(m.Actions))
	}
	if m.Actions["set_timer"].Type != ActionLogic {
		t.Errorf("Actions[set_timer].Type = %q", m.Actions["set_timer"].Type)
	}
}

func TestParseSkill_YAML(t *testing.T) {
	m, err := ParseSkill(testPath("valid-skill.yaml"))
	if err != nil {
		t.Fatalf("ParseSkill error: %v", err)
	}
	if m.Name != "Timer" || m.Version != "1.0.0" {
		t.Errorf("Name/Version = %q/%q", m.Name, m.Version)
	}
	if m.Author != nil {
		t.Errorf("Author = %+v, want nil", m.Author)
	}
}

func TestParseSkill_NotFound(t *testing.T) {
	if _, err := ParseSkill(testPath("nonexistent.json")); err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestParseSkill_InvalidYAML(t *testing.T) {
	if _, err := ParseSkill(testPath("invalid-not-yaml.yaml")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestHasAction(t *testing.T) {
	m, err := ParseSkill(testPath("valid-skill.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !m.HasAction("check_timer") {
		t.Error("HasAction(check_timer) = false, want true")
	}
	if m.HasAction("cancel_timer") {
		t.Error("HasAction(cancel_timer) = true, want false")
	}

	open := &SkillManifest{Name: "x"}
	if !open.HasAction("anything") {
		t.Error("manifest without actions should accept any action")
	}
}

func TestFindSkillManifest(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindSkillManifest(dir); err == nil {
		t.Fatal("expected error for empty dir, got nil")
	}

	if err := os.WriteFile(filepath.Join(dir, "skill.yaml"), []byte("name: x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := FindSkillManifest(dir)
	if err != nil {
		t.Fatalf("FindSkillManifest error: %v", err)
	}
	if filepath.Base(got) != "skill.yaml" {
		t.Errorf("found %s, want skill.yaml", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "skill.json"), []byte(`{"name":"x"}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, _ = FindSkillManifest(dir)
	if filepath.Base(got) != "skill.json" {
		t.Errorf("found %s, want skill.json to take precedence", got)
	}
}

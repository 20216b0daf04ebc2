package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, "utilities", "timer", ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSkillDir(t *testing.T) {
	got := SkillDir("/skills", "utilities", "timer")
	want := filepath.Join("/skills", "utilities", "timer")
	if got != want {
		t.Errorf("SkillDir = %q, want %q", got, want)
	}
}

func TestSkillConfigPath(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		lang  string
		want  string
	}{
		{"exact json", []string{"en.json"}, "en", "en.json"},
		{"yaml fallback", []string{"fr.yaml"}, "fr", "fr.yaml"},
		{"json before yaml", []string{"en.yaml", "en.json"}, "en", "en.json"},
		{"base language", []string{"en.json"}, "en-US", "en.json"},
		{"region first", []string{"en.json", "en-US.json"}, "en-US", "en-US.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, f := range tt.files {
				writeConfig(t, root, f)
			}
			got, err := SkillConfigPath(root, "utilities", "timer", tt.lang)
			if err != nil {
				t.Fatalf("SkillConfigPath error: %v", err)
			}
			if filepath.Base(got) != tt.want {
				t.Errorf("SkillConfigPath = %q, want file %q", got, tt.want)
			}
		})
	}
}

func TestSkillConfigPath_Missing(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "fr.json")

	_, err := SkillConfigPath(root, "utilities", "timer", "en")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestSkillConfigPath_BadLanguage(t *testing.T) {
	for _, lang := range []string{"", "not a tag!"} {
		if _, err := SkillConfigPath(t.TempDir(), "utilities", "timer", lang); err == nil {
			t.Errorf("SkillConfigPath(lang=%q) expected error, got nil", lang)
		}
	}
}

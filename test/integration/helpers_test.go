//go:build integration

package integration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // LEMO_HOME, holds config.yaml
	SkillsRoot string // <domain>/<skill>/ skill directories
	WorkDir    string // intent object files
}

// setupTestEnv creates isolated temp directories and points LEMO_HOME at
// them so no user config leaks into the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		SkillsRoot: t.TempDir(),
		WorkDir:    t.TempDir(),
	}
	t.Setenv("LEMO_HOME", env.HomeDir)
	return env
}

// installTimerSkill copies the built-in timer skill files into the skills
// root.
func installTimerSkill(t *testing.T, env *testEnv) string {
	t.Helper()

	src := filepath.Join("..", "..", "skills", "utilities", "timer")
	dst := filepath.Join(env.SkillsRoot, "utilities", "timer")
	for _, rel := range []string{"skill.json", filepath.Join("config", "en.json")} {
		data, err := os.ReadFile(filepath.Join(src, rel))
		if err != nil {
			t.Fatalf("reading %s: %v", rel, err)
		}
		writeFile(t, filepath.Join(dst, rel), string(data))
	}
	return dst
}

// writeIntent writes an intent object file and returns its path.
func writeIntent(t *testing.T, env *testEnv, name string, obj map[string]any) string {
	t.Helper()

	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("marshaling intent: %v", err)
	}
	p := filepath.Join(env.WorkDir, name)
	writeFile(t, p, string(data))
	return p
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// answerLine is the part of an answer line the tests look at.
type answerLine struct {
	Domain string `json:"domain"`
	Skill  string `json:"skill"`
	Action string `json:"action"`
	Output struct {
		Codes  string `json:"codes"`
		Answer any    `json:"answer"`
		Widget *struct {
			ActionName string `json:"actionName"`
			Widget     string `json:"widget"`
			ID         string `json:"id"`
			OnFetch    *struct {
				WidgetID   string `json:"widgetId"`
				ActionName string `json:"actionName"`
			} `json:"onFetch"`
			SupportedEvents []string `json:"supportedEvents"`
		} `json:"widget"`
	} `json:"output"`
}

func decodeAnswer(t *testing.T, line []byte) answerLine {
	t.Helper()
	var a answerLine
	if err := json.Unmarshal(line, &a); err != nil {
		t.Fatalf("decoding answer %q: %v", line, err)
	}
	return a
}

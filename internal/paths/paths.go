package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
)

// ConfigDir is the skill subdirectory holding per-language configs.
const ConfigDir = "config"

// configExts are tried in order for a language config file.
var configExts = []string{".json", ".yaml", ".yml"}

// ErrConfigNotFound is returned when a skill has no config for a language.
var ErrConfigNotFound = errors.New("skill config not found")

// SkillDir returns the directory of a skill, <root>/<domain>/<skill>.
func SkillDir(root, domain, skill string) string {
	return filepath.Join(root, domain, skill)
}

// SkillConfigPath returns the config file of a skill for lang. The exact
// tag is tried first, then its base language, so "en-US" falls back to
// config/en.json.
func SkillConfigPath(root, domain, skill, lang string) (string, error) {
	names, err := configNames(lang)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(SkillDir(root, domain, skill), ConfigDir)
	for _, name := range names {
		for _, ext := range configExts {
			p := filepath.Join(dir, name+ext)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", filepath.Join(dir, names[0]+configExts[0]), ErrConfigNotFound)
}

// configNames returns the candidate file stems for lang.
func configNames(lang string) ([]string, error) {
	if lang == "" {
		return nil, fmt.Errorf("no language set on the intent")
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parsing language %q: %w", lang, err)
	}

	names := []string{lang}
	base, conf := tag.Base()
	if conf != language.No && base.String() != lang {
		names = append(names, base.String())
	}
	return names, nil
}

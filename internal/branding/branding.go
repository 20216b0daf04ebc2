// Package branding provides compile-time identity values for the bridge.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	BridgeName  string `yaml:"bridge_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "lemo-go-bridge",
			DisplayName: "Lemo Go Bridge",
			Description: "Go bridge that runs Lemo skill actions and answers the core",
			HomeDir:     ".lemo",
			EnvPrefix:   "LEMO",
			GoModule:    "github.com/viveksalimath/Lemo.ai",
			BridgeName:  "go",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "lemo-go-bridge").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".lemo").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LEMO").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// BridgeName returns the value skills declare in the "bridge" field of
// skill.json to be run by this binary.
func BridgeName() string { load(); return defaults.BridgeName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("skills") → "LEMO_SKILLS".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

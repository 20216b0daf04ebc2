package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/viveksalimath/Lemo.ai/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyOutputDelay = "output_delay"
	KeyLogLevel    = "log_level"
	KeySkillsRoot  = "skills_root"
)

// Defaults applied when neither the config file nor the environment set a key.
const (
	DefaultOutputDelay = 100 * time.Millisecond
	DefaultLogLevel    = "info"
	DefaultSkillsRoot  = "skills"
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	OutputDelay time.Duration
	LogLevel    string
	SkillsRoot  string
}

// Dir returns the path to the bridge config directory (~/.lemo/).
// LEMO_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.lemo/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyOutputDelay, DefaultOutputDelay.String())
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
	viper.SetDefault(KeySkillsRoot, DefaultSkillsRoot)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the typed settings. Load must have been called.
func Current() Settings {
	return Settings{
		OutputDelay: viper.GetDuration(KeyOutputDelay),
		LogLevel:    viper.GetString(KeyLogLevel),
		SkillsRoot:  viper.GetString(KeySkillsRoot),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	if key == KeyOutputDelay {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

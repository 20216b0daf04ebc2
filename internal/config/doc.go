// Package config manages bridge settings stored at ~/.lemo/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the pre-write output delay and the skills root.
package config

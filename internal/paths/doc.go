// Package paths resolves where skills and their config files live on disk.
//
// Skills are laid out as <root>/<domain>/<skill>/, with the manifest at the
// skill directory root and one config file per language under config/.
package paths

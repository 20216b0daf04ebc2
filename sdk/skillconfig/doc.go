// Package skillconfig loads a skill's per-language configuration: answer
// templates, global variables and widget contents. Files live at
// skills/<domain>/<skill>/config/<lang>.json (YAML is accepted too) and are
// read-only once loaded.
package skillconfig

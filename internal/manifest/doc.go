// Package manifest handles parsing and validation of skill documents: the
// skill manifest (skill.json) that declares which bridge runs a skill, and
// the per-language skill config. Both are validated against JSON schemas
// embedded in this package.
package manifest

// Package runtime runs one skill action for an intent object file: it loads
// the skill manifest and config the intent points at, checks that the skill
// targets this bridge, and dispatches to the registered Go action.
package runtime

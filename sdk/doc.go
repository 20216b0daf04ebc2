// Package sdk is the Go skill bridge SDK. A skill registers its actions with
// Register; when the core runs an action the bridge loads the intent object
// and skill config, builds a Bridge and calls the action, which replies with
// Bridge.Answer. Each answer is one JSON line on stdout, read by the core.
package sdk

// Package timer is a built-in demo skill. Importing it registers the
// utilities:timer:set_timer and utilities:timer:check_timer actions with
// sdk.DefaultRegistry.
//
// set_timer answers with a TimerWidget that counts down in the web app and
// sends a "times up" utterance when it ends. The widget refreshes itself by
// running check_timer, which renders the same widget again under the id the
// web app sends back.
package timer

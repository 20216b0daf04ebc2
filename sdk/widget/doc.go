// Package widget lets skills attach UI widgets to their answers.
//
// A concrete widget embeds Base and implements Render, which returns the
// component tree the web app draws. Base assigns the widget identity, binds
// it to the owning action and builds the event methods the core dispatches
// back to the skill (send_utterance, run_skill_action). Only the flat
// component contract ({component, id, props, events}) is modeled here; the
// component library itself lives in the web app.
package widget

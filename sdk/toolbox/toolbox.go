// Package toolbox holds small helpers skills use while handling an action.
package toolbox

import "github.com/viveksalimath/Lemo.ai/sdk/intent"

// WidgetIDEntity is the entity the core sets when a widget asks to be
// refreshed.
const WidgetIDEntity = "widgetid"

// GetWidgetID returns the id of the widget that triggered the current
// action, if any.
//
//	id, ok := toolbox.GetWidgetID(obj) // "timerwidget-5q1xlzeh", true
func GetWidgetID(obj *intent.Object) (string, bool) {
	if obj == nil {
		return "", false
	}
	e, ok := obj.FindEntity(WidgetIDEntity)
	if !ok {
		return "", false
	}
	return e.SourceText, true
}

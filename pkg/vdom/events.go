package vdom

// event creates an EventHandler for the given property name. Event
// property names keep the camel-cased "on" form (onClick); the live
// event name is derived with EventName at subscription time.
func event(prop string, handler any) EventHandler {
	return EventHandler{Event: prop, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("onClick", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("onDblClick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) EventHandler { return event("onMouseDown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) EventHandler { return event("onMouseUp", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) EventHandler { return event("onMouseEnter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) EventHandler { return event("onMouseLeave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("onKeyDown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("onKeyUp", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any) EventHandler { return event("onInput", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler any) EventHandler { return event("onChange", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("onSubmit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("onFocus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("onBlur", handler) }

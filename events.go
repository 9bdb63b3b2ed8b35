package casement

import "github.com/hajimehoshi/ebiten/v2"

// EventType identifies the kind of interaction event.
type EventType uint8

const (
	EventMouseDown       EventType = iota // widget pressed
	EventMouseUp                          // widget released over itself
	EventDropdown                         // dropdown resolved
	EventToolUpdate                       // tool hover
	EventToolDown                         // tool press on a viewport
	EventToolDrag                         // tool drag on a viewport
	EventToolUp                           // tool release
	EventToolAbort                        // tool cancelled
	EventScrollMouseDown                  // press inside a scroll view
	EventScrollMouseDrag                  // drag inside a scroll view
	EventScrollMouseOver                  // hover inside a scroll view
	EventMoved                            // window move or resize finished
	EventTextInput                        // key routed to a text input window
)

// InteractionEvent is the flat form of every callback the dispatcher fires,
// forwarded to an EventSink for ECS and scripting integrations.
type InteractionEvent struct {
	Type   EventType
	Window WindowHandle
	Widget int
	// X and Y are screen coordinates, or content coordinates for scroll
	// events.
	X, Y int
	// Index is the dropdown item, or the scroll region for scroll events.
	Index     int
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// EventSink receives every interaction event.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// WidgetContext is passed to widget press, release, tooltip and cursor
// callbacks.
type WidgetContext struct {
	Window *Window
	Widget int
	X, Y   int
}

// DropdownContext is passed to OnDropdown. Index is -1 when the dropdown was
// dismissed without a choice.
type DropdownContext struct {
	Window *Window
	Widget int
	Index  int
}

// ToolContext is passed to tool callbacks. X and Y are screen coordinates.
type ToolContext struct {
	Window *Window
	Widget int
	X, Y   int
}

// ScrollContext is passed to scroll view callbacks. X and Y are content
// coordinates.
type ScrollContext struct {
	Window *Window
	Widget int
	Scroll int
	X, Y   int
}

// MoveContext is passed to OnMoved with the final pointer position.
type MoveContext struct {
	Window *Window
	X, Y   int
}

// KeyContext is passed to OnTextInput.
type KeyContext struct {
	Window    *Window
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// --- Dispatch helpers ---

func (d *Dispatcher) emit(ev InteractionEvent) {
	if d.sink != nil {
		d.sink.EmitEvent(ev)
	}
}

func (d *Dispatcher) fireMouseDown(w *Window, widget, x, y int) {
	if w.OnMouseDown != nil {
		w.OnMouseDown(WidgetContext{Window: w, Widget: widget, X: x, Y: y})
	}
	d.emit(InteractionEvent{Type: EventMouseDown, Window: w.Handle, Widget: widget, X: x, Y: y})
}

func (d *Dispatcher) fireMouseUp(w *Window, widget, x, y int) {
	if w.OnMouseUp != nil {
		w.OnMouseUp(WidgetContext{Window: w, Widget: widget, X: x, Y: y})
	}
	d.emit(InteractionEvent{Type: EventMouseUp, Window: w.Handle, Widget: widget, X: x, Y: y})
}

func (d *Dispatcher) fireDropdown(w *Window, widget, index int) {
	if w.OnDropdown != nil {
		w.OnDropdown(DropdownContext{Window: w, Widget: widget, Index: index})
	}
	d.emit(InteractionEvent{Type: EventDropdown, Window: w.Handle, Widget: widget, Index: index})
}

func (d *Dispatcher) fireTool(t EventType, w *Window, widget, x, y int) {
	var fn func(ToolContext)
	switch t {
	case EventToolUpdate:
		fn = w.OnToolUpdate
	case EventToolDown:
		fn = w.OnToolDown
	case EventToolDrag:
		fn = w.OnToolDrag
	case EventToolUp:
		fn = w.OnToolUp
	case EventToolAbort:
		fn = w.OnToolAbort
	}
	if fn != nil {
		fn(ToolContext{Window: w, Widget: widget, X: x, Y: y})
	}
	d.emit(InteractionEvent{Type: t, Window: w.Handle, Widget: widget, X: x, Y: y})
}

func (d *Dispatcher) fireScroll(t EventType, w *Window, widget int, hit ScrollHit) {
	var fn func(ScrollContext)
	switch t {
	case EventScrollMouseDown:
		fn = w.OnScrollMouseDown
	case EventScrollMouseDrag:
		fn = w.OnScrollMouseDrag
	case EventScrollMouseOver:
		fn = w.OnScrollMouseOver
	}
	if fn != nil {
		fn(ScrollContext{Window: w, Widget: widget, Scroll: hit.Index, X: hit.X, Y: hit.Y})
	}
	d.emit(InteractionEvent{Type: t, Window: w.Handle, Widget: widget, X: hit.X, Y: hit.Y, Index: hit.Index})
}

func (d *Dispatcher) fireMoved(w *Window, x, y int) {
	if w.OnMoved != nil {
		w.OnMoved(MoveContext{Window: w, X: x, Y: y})
	}
	d.emit(InteractionEvent{Type: EventMoved, Window: w.Handle, Widget: NoWidget, X: x, Y: y})
}

func (d *Dispatcher) fireTextInput(w *Window, combo KeyCombo) {
	if w.OnTextInput != nil {
		w.OnTextInput(KeyContext{Window: w, Key: combo.Key, Modifiers: combo.Modifiers})
	}
	d.emit(InteractionEvent{Type: EventTextInput, Window: w.Handle, Widget: NoWidget, Key: combo.Key, Modifiers: combo.Modifiers})
}

// tooltipText asks the window for the tooltip of widget, falling back to the
// widget's static text.
func tooltipText(w *Window, widget, x, y int) string {
	if w.OnTooltip != nil {
		if s := w.OnTooltip(WidgetContext{Window: w, Widget: widget, X: x, Y: y}); s != "" {
			return s
		}
	}
	if wg, ok := w.Widget(widget); ok {
		return wg.Tooltip
	}
	return ""
}

// widgetCursor asks the window for the cursor over widget.
func widgetCursor(w *Window, widget, x, y int) CursorID {
	if w.OnCursor != nil {
		if c, ok := w.OnCursor(WidgetContext{Window: w, Widget: widget, X: x, Y: y}); ok {
			return c
		}
	}
	return CursorArrow
}

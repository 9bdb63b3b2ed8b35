package casement

// Mode is the dispatcher's interaction mode. Each variant carries only the
// data meaningful in that state; a transition replaces the whole value.
type Mode interface {
	State() InteractionState
}

// ModeReset is the state after Reset, before the first sample.
type ModeReset struct{}

// ModeNormal is the idle state: hover tracking and tooltips.
type ModeNormal struct{}

// ModeWidgetPressed tracks a left press on a widget until release.
type ModeWidgetPressed struct {
	Window     WindowHandle
	Widget     int
	WidgetType WidgetType
	// HoldTicks counts samples while the pointer stays over the widget.
	// Zero once the pointer has left.
	HoldTicks int
}

// ModePositioningWindow drags a window by its caption.
type ModePositioningWindow struct {
	Window     WindowHandle
	Widget     int
	GrabOffset Point
}

// ModeResizing drags the bottom-right resize grip.
type ModeResizing struct {
	Window       WindowHandle
	Widget       int
	WidgetType   WidgetType
	DragOrigin   Point
	OriginalSize Size
}

// ModeViewportRightDrag pans a viewport while the right button is held.
type ModeViewportRightDrag struct {
	Window           WindowHandle
	DragAnchor       Point
	AccumulatedTicks int
}

// ModeViewportLeftTool tracks a left press on a viewport, with or without an
// active tool.
type ModeViewportLeftTool struct {
	Window      WindowHandle
	LastPoint   Point
	ToolEngaged bool
}

// ModeScrollLeftDrag tracks a left press on a scroll widget.
type ModeScrollLeftDrag struct {
	Window      WindowHandle
	Widget      int
	ScrollPart  ScrollPart
	ScrollIndex int
	// GrabPoint and GrabOffset record the pointer and scroll offset when a
	// thumb was grabbed.
	GrabPoint  Point
	GrabOffset int
}

// ModeDropdownActive is entered when a widget press opens a dropdown.
type ModeDropdownActive struct {
	Window     WindowHandle
	Widget     int
	WidgetType WidgetType
}

func (ModeReset) State() InteractionState             { return StateReset }
func (ModeNormal) State() InteractionState            { return StateNormal }
func (ModeWidgetPressed) State() InteractionState     { return StateWidgetPressed }
func (ModePositioningWindow) State() InteractionState { return StatePositioningWindow }
func (ModeResizing) State() InteractionState          { return StateResizing }
func (ModeViewportRightDrag) State() InteractionState { return StateViewportRight }
func (ModeViewportLeftTool) State() InteractionState  { return StateViewportLeft }
func (ModeScrollLeftDrag) State() InteractionState    { return StateScrollLeft }
func (ModeDropdownActive) State() InteractionState    { return StateDropdownActive }

// capture is what a mode holds on to between samples. Widget is NoWidget
// when only the window is held.
type capture struct {
	Window     WindowHandle
	Widget     int
	WidgetType WidgetType
}

// captured returns the window and widget a mode holds on to, if any.
func captured(m Mode) (capture, bool) {
	switch m := m.(type) {
	case ModeWidgetPressed:
		return capture{m.Window, m.Widget, m.WidgetType}, true
	case ModePositioningWindow:
		return capture{m.Window, m.Widget, WidgetCaption}, true
	case ModeResizing:
		return capture{m.Window, m.Widget, m.WidgetType}, true
	case ModeViewportRightDrag:
		return capture{Window: m.Window, Widget: NoWidget}, true
	case ModeViewportLeftTool:
		return capture{Window: m.Window, Widget: NoWidget}, true
	case ModeScrollLeftDrag:
		return capture{m.Window, m.Widget, WidgetScroll}, true
	case ModeDropdownActive:
		return capture{m.Window, m.Widget, m.WidgetType}, true
	}
	return capture{Window: NoWindow, Widget: NoWidget}, false
}

// stale reports why c no longer matches the window list, or "" when it
// still does.
func (c capture) stale(wm WindowManager) string {
	w := wm.FindByHandle(c.Window)
	if w == nil {
		return "window gone"
	}
	if c.Widget == NoWidget {
		return ""
	}
	if wg, ok := w.Widget(c.Widget); !ok || wg.Type != c.WidgetType {
		return "widget changed"
	}
	return ""
}

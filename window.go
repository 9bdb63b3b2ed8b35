package casement

// MaxScrolls is the number of scroll regions a window can own.
const MaxScrolls = 3

// Widget is one interactive element of a window. Bounds are inclusive and
// relative to the window's top-left corner.
type Widget struct {
	Type                     WidgetType
	Left, Right, Top, Bottom int
	// Tooltip is the default tooltip text. Empty means no tooltip unless the
	// window supplies one through OnTooltip.
	Tooltip string
	// Bars selects which scroll bars a WidgetScroll shows
	// (HScrollVisible, VScrollVisible or both).
	Bars ScrollFlags
}

// Contains reports whether the window-relative point (x, y) is inside the
// widget.
func (wg Widget) Contains(x, y int) bool {
	return x >= wg.Left && x <= wg.Right && y >= wg.Top && y <= wg.Bottom
}

// ScrollRegion is the scroll state of one scroll widget. HRight and VBottom
// are the content extents; HLeft and VTop are the current offsets. Thumb
// positions are relative to the widget's top-left corner.
type ScrollRegion struct {
	Flags        ScrollFlags
	HLeft        int
	HRight       int
	HThumbLeft   int
	HThumbRight  int
	VTop         int
	VBottom      int
	VThumbTop    int
	VThumbBottom int
}

// Window is a rectangular UI element owned by the window manager. The input
// core reads its geometry and widgets and reports interaction through the
// callback fields; any callback may be nil.
type Window struct {
	Handle WindowHandle

	X, Y, Width, Height int
	// Size limits applied by resizing. A zero maximum is unbounded.
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int

	Flags   WindowFlags
	Widgets []Widget

	Enabled    WidgetSet
	Disabled   WidgetSet
	Pressed    WidgetSet
	HoldRepeat WidgetSet

	Scrolls  [MaxScrolls]ScrollRegion
	Viewport *Viewport

	// UserData is free for the application. Dropdown and tooltip popups
	// opened by WindowList store their content here.
	UserData any

	OnMouseDown       func(ctx WidgetContext)
	OnMouseUp         func(ctx WidgetContext)
	OnDropdown        func(ctx DropdownContext)
	OnToolUpdate      func(ctx ToolContext)
	OnToolDown        func(ctx ToolContext)
	OnToolDrag        func(ctx ToolContext)
	OnToolUp          func(ctx ToolContext)
	OnToolAbort       func(ctx ToolContext)
	OnToolCursor      func(ctx ToolContext) (CursorID, bool)
	OnScrollMouseDown func(ctx ScrollContext)
	OnScrollMouseDrag func(ctx ScrollContext)
	OnScrollMouseOver func(ctx ScrollContext)
	OnTooltip         func(ctx WidgetContext) string
	OnCursor          func(ctx WidgetContext) (CursorID, bool)
	OnMoved           func(ctx MoveContext)
	OnTextInput       func(ctx KeyContext)
	// OnInvalidate asks for a redraw of one widget, or the whole window when
	// widget is NoWidget.
	OnInvalidate func(widget int)
	OnClose      func(w *Window)

	closed bool
}

// Bounds returns the window rectangle in screen coordinates.
func (w *Window) Bounds() Rect {
	return Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Contains reports whether the screen point (x, y) is inside the window.
func (w *Window) Contains(x, y int) bool {
	return w.Bounds().Contains(x, y)
}

// Closed reports whether the window has been removed from its manager.
func (w *Window) Closed() bool { return w.closed }

// Widget returns widget i and whether i is a valid index.
func (w *Window) Widget(i int) (Widget, bool) {
	if i < 0 || i >= len(w.Widgets) {
		return Widget{}, false
	}
	return w.Widgets[i], true
}

// IsEnabled reports whether widget i responds to presses.
func (w *Window) IsEnabled(i int) bool { return w.Enabled.Has(i) }

// IsDisabled reports whether widget i is greyed out.
func (w *Window) IsDisabled(i int) bool { return w.Disabled.Has(i) }

// CanResize reports whether the window has an active resize grip: it is
// flagged resizable and its size limits leave room to change.
func (w *Window) CanResize() bool {
	if w.Flags&FlagResizable == 0 {
		return false
	}
	return w.MinWidth != w.MaxWidth || w.MinHeight != w.MaxHeight
}

// inResizeGrip reports whether the screen point lies in the bottom-right
// grip square of the given size.
func (w *Window) inResizeGrip(x, y, grip int) bool {
	return x >= w.X+w.Width-grip && y >= w.Y+w.Height-grip
}

// ScrollIndex returns the scroll region index owned by widget i: the number
// of scroll widgets that precede it. It returns -1 when i is not a scroll
// widget or the window has no region left for it.
func (w *Window) ScrollIndex(i int) int {
	wg, ok := w.Widget(i)
	if !ok || wg.Type != WidgetScroll {
		return -1
	}
	n := 0
	for _, prev := range w.Widgets[:i] {
		if prev.Type == WidgetScroll {
			n++
		}
	}
	if n >= MaxScrolls {
		return -1
	}
	return n
}

// Invalidate requests a redraw of widget i.
func (w *Window) Invalidate(i int) {
	if w.OnInvalidate != nil {
		w.OnInvalidate(i)
	}
}

// InvalidateAll requests a redraw of the whole window.
func (w *Window) InvalidateAll() {
	if w.OnInvalidate != nil {
		w.OnInvalidate(NoWidget)
	}
}

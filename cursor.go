package casement

// CursorID names a pointer cursor image.
type CursorID uint8

const (
	CursorArrow CursorID = iota
	CursorBlank
	CursorUpArrow
	CursorUpDownArrow
	CursorHandPoint
	CursorBusy
	CursorDiagonalArrows
	CursorPicker
	CursorCrossHair
	CursorTreeDown
	CursorPathDown
	CursorDigDown
	CursorWaterDown
	CursorPaintDown
	CursorEntranceDown
	CursorHandOpen
	CursorHandClosed
)

// CurrentCursor returns the cursor last sent to the platform.
func (d *Dispatcher) CurrentCursor() CursorID { return d.cursorID }

// updateCursor picks the cursor for the screen point (x, y).
func (d *Dispatcher) updateCursor(x, y int) {
	cursor := CursorArrow
	w := WindowAt(d.wm, x, y)
	widget := WidgetAt(w, x, y)
	if wg, ok := widgetOf(w, widget); ok {
		switch wg.Type {
		case WidgetViewport:
			if !d.tool.Active {
				if d.world != nil && d.world.LeftOver(x, y) {
					cursor = CursorHandPoint
				}
				break
			}
			cursor = d.tool.Cursor
			if tw := d.toolWindow(); tw != nil && tw.OnToolCursor != nil {
				if c, ok := tw.OnToolCursor(ToolContext{Window: tw, Widget: d.tool.Widget, X: x, Y: y}); ok {
					cursor = c
				}
			}
		case WidgetFrame, WidgetResize:
			if w.CanResize() && w.inResizeGrip(x, y, d.cfg.ResizeGrip) {
				cursor = CursorDiagonalArrows
			}
		case WidgetScroll:
			if ClassifyScroll(w, widget, x, y).Part == ScrollPartView {
				cursor = widgetCursor(w, widget, x, y)
			}
		default:
			cursor = widgetCursor(w, widget, x, y)
		}
	}
	if d.world != nil {
		d.world.RightOver(x, y)
	}
	d.presentCursor(cursor)
}

func widgetOf(w *Window, widget int) (Widget, bool) {
	if w == nil {
		return Widget{}, false
	}
	return w.Widget(widget)
}

// presentCursor tells the platform about c if it differs from the cursor
// already shown. Resizing always shows diagonal arrows.
func (d *Dispatcher) presentCursor(c CursorID) {
	if d.mode.State() == StateResizing {
		c = CursorDiagonalArrows
	}
	if d.cursorSet && c == d.cursorID {
		return
	}
	d.cursorID = c
	d.cursorSet = true
	d.platform.SetCursor(c)
}

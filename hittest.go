package casement

// WindowAt returns the topmost window containing the screen point (x, y), or
// nil. Hidden and pass-through windows are skipped; a modal window hides
// every window beneath it.
func WindowAt(wm WindowManager, x, y int) *Window {
	ws := wm.Windows()
	// Iterate backward: front-most window first.
	for i := len(ws) - 1; i >= 0; i-- {
		w := ws[i]
		if w.Flags&(FlagHidden|FlagPassThrough) != 0 {
			continue
		}
		if w.Contains(x, y) {
			return w
		}
		if w.Flags&FlagModal != 0 {
			return nil
		}
	}
	return nil
}

// WidgetAt returns the index of the widget of w under the screen point
// (x, y), or NoWidget. Widgets paint in array order, so the last match is the
// one on top.
func WidgetAt(w *Window, x, y int) int {
	if w == nil {
		return NoWidget
	}
	lx, ly := x-w.X, y-w.Y
	for i := len(w.Widgets) - 1; i >= 0; i-- {
		wg := w.Widgets[i]
		if wg.Type == WidgetEmpty {
			continue
		}
		if wg.Contains(lx, ly) {
			return i
		}
	}
	return NoWidget
}

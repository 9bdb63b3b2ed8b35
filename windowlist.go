package casement

import "unicode/utf8"

// WindowManager is the window-structural contract the input core drives.
// Windows are ordered back to front.
type WindowManager interface {
	Windows() []*Window
	FindByHandle(h WindowHandle) *Window
	FindByClass(c WindowClass) *Window
	// BringToFront raises the window and returns it, or nil if it is gone.
	BringToFront(h WindowHandle) *Window
	CloseByClass(c WindowClass)
	// MoveAndSnap moves the window's top-left corner to (x, y), snapping to
	// screen and window edges closer than proximity pixels.
	MoveAndSnap(h WindowHandle, x, y, proximity int)
	// Resize grows the window by (dw, dh), clamped to its size limits.
	Resize(h WindowHandle, dw, dh int)
	Main() *Window
	ScreenSize() (width, height int)
	OpenTooltip(text string, x, y int) *Window
	OpenDropdown(x, y int, items []DropdownItem, opts DropdownOptions) *Window
}

// Tooltip popup metrics.
const (
	tooltipOffsetY    = 26
	tooltipCharWidth  = 6
	tooltipPadding    = 8
	tooltipLineHeight = 14
)

// WindowList is a z-ordered stack of windows implementing WindowManager.
type WindowList struct {
	windows []*Window
	width   int
	height  int
}

var _ WindowManager = (*WindowList)(nil)

// NewWindowList creates an empty window stack for a screen of the given size.
func NewWindowList(width, height int) *WindowList {
	return &WindowList{width: width, height: height}
}

// SetScreenSize updates the screen size used for snapping and popups.
func (l *WindowList) SetScreenSize(width, height int) {
	l.width, l.height = width, height
}

// ScreenSize returns the screen size.
func (l *WindowList) ScreenSize() (int, int) { return l.width, l.height }

// Windows returns the windows ordered back to front. The slice must not be
// modified.
func (l *WindowList) Windows() []*Window { return l.windows }

// Add inserts w into the stack respecting its stick-to-back and
// stick-to-front flags, and returns it.
func (l *WindowList) Add(w *Window) *Window {
	w.closed = false
	l.insert(w)
	w.InvalidateAll()
	return w
}

func (l *WindowList) insert(w *Window) {
	at := l.insertIndex(w.Flags)
	l.windows = append(l.windows, nil)
	copy(l.windows[at+1:], l.windows[at:])
	l.windows[at] = w
}

func (l *WindowList) insertIndex(flags WindowFlags) int {
	switch {
	case flags&FlagStickToFront != 0:
		return len(l.windows)
	case flags&FlagStickToBack != 0:
		i := 0
		for i < len(l.windows) && l.windows[i].Flags&FlagStickToBack != 0 {
			i++
		}
		return i
	}
	i := len(l.windows)
	for i > 0 && l.windows[i-1].Flags&FlagStickToFront != 0 {
		i--
	}
	return i
}

func (l *WindowList) indexOf(h WindowHandle) int {
	for i, w := range l.windows {
		if w.Handle == h {
			return i
		}
	}
	return -1
}

// FindByHandle returns the window with handle h, or nil.
func (l *WindowList) FindByHandle(h WindowHandle) *Window {
	if !h.Valid() {
		return nil
	}
	if i := l.indexOf(h); i >= 0 {
		return l.windows[i]
	}
	return nil
}

// FindByClass returns the frontmost window of class c, or nil.
func (l *WindowList) FindByClass(c WindowClass) *Window {
	for i := len(l.windows) - 1; i >= 0; i-- {
		if l.windows[i].Handle.Class == c {
			return l.windows[i]
		}
	}
	return nil
}

// Main returns the main world window, or nil.
func (l *WindowList) Main() *Window { return l.FindByClass(ClassMain) }

// BringToFront raises the window above every window that is not
// stick-to-front. Windows pinned to the back or front keep their place.
func (l *WindowList) BringToFront(h WindowHandle) *Window {
	i := l.indexOf(h)
	if i < 0 {
		return nil
	}
	w := l.windows[i]
	if w.Flags&(FlagStickToBack|FlagStickToFront) != 0 {
		return w
	}
	l.windows = append(l.windows[:i], l.windows[i+1:]...)
	l.insert(w)
	w.InvalidateAll()
	return w
}

// Close removes the window with handle h.
func (l *WindowList) Close(h WindowHandle) {
	i := l.indexOf(h)
	if i < 0 {
		return
	}
	w := l.windows[i]
	l.windows = append(l.windows[:i], l.windows[i+1:]...)
	w.closed = true
	if w.OnClose != nil {
		w.OnClose(w)
	}
}

// CloseByClass removes every window of class c.
func (l *WindowList) CloseByClass(c WindowClass) {
	for i := len(l.windows) - 1; i >= 0; i-- {
		if i < len(l.windows) && l.windows[i].Handle.Class == c {
			l.Close(l.windows[i].Handle)
		}
	}
}

// MoveAndSnap moves the window and snaps its edges to the screen edges and to
// the edges of other visible windows within proximity pixels.
func (l *WindowList) MoveAndSnap(h WindowHandle, x, y, proximity int) {
	w := l.FindByHandle(h)
	if w == nil {
		return
	}
	if proximity > 0 {
		xs := []int{0, l.width}
		ys := []int{0, l.height}
		for _, other := range l.windows {
			if other == w || other.Flags&(FlagHidden|FlagPassThrough) != 0 ||
				other.Handle.Class == ClassDropdown || other.Handle.Class == ClassMain {
				continue
			}
			xs = append(xs, other.X, other.X+other.Width)
			ys = append(ys, other.Y, other.Y+other.Height)
		}
		x = snapAxis(x, w.Width, proximity, xs)
		y = snapAxis(y, w.Height, proximity, ys)
	}
	if x == w.X && y == w.Y {
		return
	}
	w.InvalidateAll()
	w.X, w.Y = x, y
	w.InvalidateAll()
}

// snapAxis returns pos adjusted so the span [pos, pos+size) touches the
// nearest edge within proximity. Either end of the span may snap.
func snapAxis(pos, size, proximity int, edges []int) int {
	best, bestDist := pos, proximity+1
	for _, e := range edges {
		if d := abs(pos - e); d < bestDist {
			best, bestDist = e, d
		}
		if d := abs(pos + size - e); d < bestDist {
			best, bestDist = e-size, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Resize changes the window size by (dw, dh), clamped to its limits.
func (l *WindowList) Resize(h WindowHandle, dw, dh int) {
	w := l.FindByHandle(h)
	if w == nil {
		return
	}
	width := clampSize(w.Width+dw, w.MinWidth, w.MaxWidth)
	height := clampSize(w.Height+dh, w.MinHeight, w.MaxHeight)
	if width == w.Width && height == w.Height {
		return
	}
	w.InvalidateAll()
	if w.Viewport != nil {
		w.Viewport.Width += width - w.Width
		w.Viewport.Height += height - w.Height
	}
	w.Width, w.Height = width, height
	w.InvalidateAll()
}

func clampSize(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	if v < 1 {
		v = 1
	}
	return v
}

// OpenTooltip replaces any open tooltip with a pass-through popup showing
// text below the point (x, y). It is placed above the point when there is no
// room below.
func (l *WindowList) OpenTooltip(text string, x, y int) *Window {
	l.CloseByClass(ClassTooltip)
	width := utf8.RuneCountInString(text)*tooltipCharWidth + tooltipPadding
	height := tooltipLineHeight
	left := clamp(x-width/2, 0, max(l.width-width, 0))
	top := y + tooltipOffsetY
	if top+height > l.height {
		top = max(y-height-2, 0)
	}
	return l.Add(&Window{
		Handle:   WindowHandle{Class: ClassTooltip},
		X:        left,
		Y:        top,
		Width:    width,
		Height:   height,
		Flags:    FlagStickToFront | FlagPassThrough,
		UserData: text,
	})
}

// OpenDropdown replaces any open dropdown with a new popup at (x, y).
func (l *WindowList) OpenDropdown(x, y int, items []DropdownItem, opts DropdownOptions) *Window {
	l.CloseByClass(ClassDropdown)
	dd := newDropdown(items, opts)
	width, height := dd.size()
	return l.Add(&Window{
		Handle:   WindowHandle{Class: ClassDropdown},
		X:        clamp(x, 0, max(l.width-width, 0)),
		Y:        clamp(y, 0, max(l.height-height, 0)),
		Width:    width,
		Height:   height,
		Flags:    FlagStickToFront,
		Widgets:  []Widget{{Type: WidgetFrame, Right: width - 1, Bottom: height - 1}},
		UserData: dd,
	})
}

// Update advances viewport scroll animations by dt ticks.
func (l *WindowList) Update(dt float32) {
	for _, w := range l.windows {
		if w.Viewport != nil {
			w.Viewport.Update(dt)
		}
	}
}

package casement

import "github.com/hajimehoshi/ebiten/v2"

// ProcessKeyboard runs the per-frame keyboard pass: edge scrolling, modifier
// refresh, arrow-key scrolling and routing of queued key presses.
func (d *Dispatcher) ProcessKeyboard() {
	inTutorial := d.tutorial != nil && d.tutorial.Playing()

	// Uses the modifiers from the previous frame.
	if !inTutorial && d.cfg.EdgeScrolling && d.mode.State() == StateNormal &&
		d.modifiers&(ModShift|ModCtrl) == 0 {
		d.edgeScroll()
	}

	d.modifiers = d.readModifiers()
	if !inTutorial && d.wm.FindByClass(ClassTextInput) == nil {
		d.keyScroll()
	}

	for {
		k, ok := d.keys.Next()
		if !ok {
			break
		}
		d.routeKey(KeyCombo{Key: k, Modifiers: d.modifiers})
	}
}

func (d *Dispatcher) readModifiers() KeyModifiers {
	var mods KeyModifiers
	p := d.platform
	if p.IsKeyPressed(ebiten.KeyShift) || p.IsKeyPressed(ebiten.KeyShiftLeft) || p.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if p.IsKeyPressed(ebiten.KeyControl) || p.IsKeyPressed(ebiten.KeyControlLeft) || p.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	return mods
}

// routeKey delivers a key press to exactly one consumer.
func (d *Dispatcher) routeKey(combo KeyCombo) {
	if w := d.wm.FindByClass(ClassChangeShortcut); w != nil {
		d.captureShortcut(w, combo)
		return
	}
	if d.tutorial != nil && d.tutorial.Playing() {
		d.tutorial.Stop()
		return
	}
	if w := d.wm.FindByClass(ClassTextInput); w != nil {
		d.fireTextInput(w, combo)
		return
	}
	d.shortcuts.Handle(combo)
}

// captureShortcut rebinds the shortcut whose index is the capture window's
// number and closes the window.
func (d *Dispatcher) captureShortcut(w *Window, combo KeyCombo) {
	if isModifierKey(combo.Key) {
		return
	}
	d.shortcuts.Rebind(int(w.Handle.Number), combo)
	d.wm.CloseByClass(ClassChangeShortcut)
	if lw := d.wm.FindByClass(ClassShortcutList); lw != nil {
		lw.InvalidateAll()
	}
}

func isModifierKey(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return true
	}
	return false
}

// mainViewport returns the main window's viewport if it may scroll.
func (d *Dispatcher) mainViewport() (*Window, *Viewport) {
	if !d.screen.allowsViewportScroll() {
		return nil, nil
	}
	w := d.wm.Main()
	if w == nil || w.Viewport == nil || w.Flags&FlagNoViewportScroll != 0 {
		return nil, nil
	}
	return w, w.Viewport
}

// edgeScroll scrolls the main view while the cursor touches a screen edge.
func (d *Dispatcher) edgeScroll() {
	w, vp := d.mainViewport()
	if vp == nil {
		return
	}
	width, height := d.wm.ScreenSize()
	var dx, dy int
	switch {
	case d.cursor.X <= 0:
		dx = -1
	case d.cursor.X >= width-1:
		dx = 1
	}
	switch {
	case d.cursor.Y <= 0:
		dy = -1
	case d.cursor.Y >= height-1:
		dy = 1
	}
	d.scrollMain(w, vp, dx, dy)
}

// keyScroll scrolls the main view while arrow keys are held.
func (d *Dispatcher) keyScroll() {
	w, vp := d.mainViewport()
	if vp == nil {
		return
	}
	var dx, dy int
	if d.platform.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	if d.platform.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if d.platform.IsKeyPressed(ebiten.KeyArrowUp) {
		dy--
	}
	if d.platform.IsKeyPressed(ebiten.KeyArrowDown) {
		dy++
	}
	d.scrollMain(w, vp, dx, dy)
}

func (d *Dispatcher) scrollMain(w *Window, vp *Viewport, dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	vp.CancelScroll()
	vp.Scroll(dx, dy, d.cfg.EdgeScrollStep)
	d.viewportScrolled = true
	w.InvalidateAll()
}

// ViewportScrolled reports whether edge or key scrolling has moved the main
// view since the last call.
func (d *Dispatcher) ViewportScrolled() bool {
	s := d.viewportScrolled
	d.viewportScrolled = false
	return s
}

package casement

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenPlatform implements Platform on Ebitengine and produces pointer
// samples and key presses from its input state. Call Capture once per
// ebiten.Game Update, before Dispatcher.ProcessFrame.
//
// Ebitengine cannot move the OS pointer, so WarpCursor is emulated: the
// cursor is captured while hidden and reported positions are offset so the
// warped point becomes the new origin of movement.
type EbitenPlatform struct {
	offsetX, offsetY int
	lastX, lastY     int
	seen             bool
	hidden           bool

	shape   ebiten.CursorShapeType
	visible bool
	keyBuf  []ebiten.Key
}

var _ Platform = (*EbitenPlatform)(nil)

// NewEbitenPlatform returns a platform showing the default cursor.
func NewEbitenPlatform() *EbitenPlatform {
	return &EbitenPlatform{shape: ebiten.CursorShapeDefault, visible: true}
}

// CursorPosition returns the pointer position as seen by the input core.
func (p *EbitenPlatform) CursorPosition() (int, int) {
	x, y := ebiten.CursorPosition()
	return x + p.offsetX, y + p.offsetY
}

// Capture pushes this frame's pointer movement, button transitions and key
// presses into d.
func (p *EbitenPlatform) Capture(d *Dispatcher) {
	x, y := p.CursorPosition()
	if !p.seen || x != p.lastX || y != p.lastY {
		p.seen = true
		p.lastX, p.lastY = x, y
		d.PushSample(PointerSample{X: x, Y: y, Transition: TransitionMove})
	}
	buttons := [...]struct {
		button   ebiten.MouseButton
		down, up Transition
	}{
		{ebiten.MouseButtonLeft, TransitionLeftDown, TransitionLeftUp},
		{ebiten.MouseButtonRight, TransitionRightDown, TransitionRightUp},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			d.PushSample(PointerSample{X: x, Y: y, Transition: b.down})
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			d.PushSample(PointerSample{X: x, Y: y, Transition: b.up})
		}
	}
	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, k := range p.keyBuf {
		d.PressKey(k)
	}
}

// IsKeyPressed reports whether k is held.
func (p *EbitenPlatform) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

// SetCursor shows the system cursor closest to id.
func (p *EbitenPlatform) SetCursor(id CursorID) {
	if id == CursorBlank {
		p.setVisible(false)
		return
	}
	if !p.hidden {
		p.setVisible(true)
	}
	shape := cursorShape(id)
	if shape == p.shape {
		return
	}
	p.shape = shape
	ebiten.SetCursorShape(shape)
}

func (p *EbitenPlatform) setVisible(v bool) {
	if v == p.visible {
		return
	}
	p.visible = v
	if v {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func cursorShape(id CursorID) ebiten.CursorShapeType {
	switch id {
	case CursorHandPoint, CursorHandOpen, CursorHandClosed:
		return ebiten.CursorShapePointer
	case CursorDiagonalArrows:
		return ebiten.CursorShapeNWSEResize
	case CursorUpDownArrow:
		return ebiten.CursorShapeNSResize
	case CursorBusy:
		return ebiten.CursorShapeNotAllowed
	case CursorArrow, CursorUpArrow:
		return ebiten.CursorShapeDefault
	}
	// Tool cursors have no system equivalent.
	return ebiten.CursorShapeCrosshair
}

// WarpCursor makes the current pointer position read as (x, y).
func (p *EbitenPlatform) WarpCursor(x, y int) {
	rx, ry := ebiten.CursorPosition()
	p.offsetX, p.offsetY = x-rx, y-ry
	p.lastX, p.lastY = x, y
}

// HideCursor hides and captures the pointer.
func (p *EbitenPlatform) HideCursor() {
	p.hidden = true
	p.visible = false
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
}

// ShowCursor releases the pointer and drops any warp offset.
func (p *EbitenPlatform) ShowCursor() {
	p.hidden = false
	p.visible = true
	p.offsetX, p.offsetY = 0, 0
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	p.lastX, p.lastY = ebiten.CursorPosition()
}

// FrameTicks returns the tick length in milliseconds at the current TPS.
func (p *EbitenPlatform) FrameTicks() int {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1000 / tps
}

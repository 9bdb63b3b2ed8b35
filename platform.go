package casement

import "github.com/hajimehoshi/ebiten/v2"

// Platform is the host services the input core needs beyond the sample
// queues: keyboard state, the OS cursor and the frame clock.
type Platform interface {
	IsKeyPressed(key ebiten.Key) bool
	SetCursor(id CursorID)
	// WarpCursor moves the pointer to the screen point (x, y).
	WarpCursor(x, y int)
	HideCursor()
	ShowCursor()
	// FrameTicks returns the duration of the current frame in ticks.
	FrameTicks() int
}

// World is the game-world collaborator behind viewports.
type World interface {
	// LeftClick handles a left click on the world at the screen point.
	LeftClick(x, y int)
	// RightClick handles a right click on the world at the screen point.
	RightClick(x, y int)
	// LeftOver reports whether a left click at the screen point would do
	// something, for the hand cursor.
	LeftOver(x, y int) bool
	// RightOver updates world hover state for the screen point.
	RightOver(x, y int)
}

// Tutorial is a scripted demo that keyboard input can interrupt.
type Tutorial interface {
	Playing() bool
	Stop()
}

// SoundID names an interface sound effect.
type SoundID uint8

const (
	SoundClick1 SoundID = iota // widget pressed
	SoundClick2                // widget released
)

// SoundPlayer plays interface sounds panned by screen x.
type SoundPlayer interface {
	PlaySound(id SoundID, x int)
}

// defaultFrameTicks is used when no platform is attached.
const defaultFrameTicks = 16

type nopPlatform struct{}

func (nopPlatform) IsKeyPressed(ebiten.Key) bool { return false }
func (nopPlatform) SetCursor(CursorID)           {}
func (nopPlatform) WarpCursor(int, int)          {}
func (nopPlatform) HideCursor()                  {}
func (nopPlatform) ShowCursor()                  {}
func (nopPlatform) FrameTicks() int              { return defaultFrameTicks }

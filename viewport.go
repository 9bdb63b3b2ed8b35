package casement

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MaxZoom is the largest zoom level a viewport accepts. Each level halves the
// on-screen size of the world.
const MaxZoom = 3

// scrollAnim holds the active scroll-to tweens for view X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is a window's view into the game world. Its screen rectangle is
// relative to the owning window.
type Viewport struct {
	// Left, Top, Width and Height place the viewport inside its window.
	Left, Top, Width, Height int
	// ViewX and ViewY are the world position of the viewport's top-left corner.
	ViewX, ViewY int
	// Zoom is the zoom level in [0, MaxZoom].
	Zoom int

	scrollTween *scrollAnim
}

// Pan moves the view by a screen-pixel drag delta. One screen pixel covers
// 2 << Zoom world units.
func (v *Viewport) Pan(dx, dy int) {
	shift := uint(v.zoom() + 1)
	v.ViewX += dx << shift
	v.ViewY += dy << shift
}

// Scroll moves the view by step world units per direction unit, scaled by
// zoom. Used for edge and arrow-key scrolling.
func (v *Viewport) Scroll(dx, dy, step int) {
	amount := step << uint(v.zoom())
	v.ViewX += dx * amount
	v.ViewY += dy * amount
}

// ScrollTo animates the view to the given world position over duration ticks.
func (v *Viewport) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.ViewX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.ViewY), float32(y), duration, easeFn),
	}
}

// ScrollingToLocation reports whether a ScrollTo animation is in progress.
func (v *Viewport) ScrollingToLocation() bool { return v.scrollTween != nil }

// CancelScroll stops any ScrollTo animation, leaving the view where it is.
func (v *Viewport) CancelScroll() { v.scrollTween = nil }

// Update advances the scroll-to animation by dt ticks.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween == nil {
		return
	}
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		v.ViewX = int(math.Round(float64(val)))
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		v.ViewY = int(math.Round(float64(val)))
		v.scrollTween.doneY = done
	}
	if v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
}

// ScreenToWorld converts a window-relative point inside the viewport to
// world coordinates.
func (v *Viewport) ScreenToWorld(x, y int) (wx, wy int) {
	shift := uint(v.zoom())
	return v.ViewX + (x-v.Left)<<shift, v.ViewY + (y-v.Top)<<shift
}

func (v *Viewport) zoom() int {
	return clamp(v.Zoom, 0, MaxZoom)
}

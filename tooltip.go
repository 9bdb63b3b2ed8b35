package casement

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TooltipAction tells the caller what to do with the tooltip popup after an
// Update.
type TooltipAction uint8

const (
	TooltipNone  TooltipAction = iota // nothing changed
	TooltipOpen                       // show the popup for Target
	TooltipClose                      // close the popup
)

// sinceClosedCap bounds the "time since last tooltip" counter.
const sinceClosedCap = 1 << 30

// Tooltip tracks hover dwell time and decides when a tooltip opens and
// closes. All times are in ticks (milliseconds).
type Tooltip struct {
	delay      int
	quickDelay int
	recent     int
	maxDisplay int
	fadeTicks  int

	open        bool
	target      WidgetRef
	cursor      Point
	elapsed     int
	sinceClosed int
	suppressed  WidgetRef

	fade  *gween.Tween
	alpha float32
}

// NewTooltip returns a closed tooltip controller using the thresholds of cfg.
func NewTooltip(cfg Config) *Tooltip {
	t := &Tooltip{}
	t.Configure(cfg)
	t.Reset(Point{})
	return t
}

// Configure applies the tooltip thresholds of cfg.
func (t *Tooltip) Configure(cfg Config) {
	t.delay = cfg.TooltipDelay
	t.quickDelay = cfg.TooltipQuickDelay
	t.recent = cfg.TooltipRecent
	t.maxDisplay = cfg.TooltipMaxDisplay
	t.fadeTicks = cfg.TooltipFade
}

// Reset forgets all tooltip state and anchors the cursor at p.
func (t *Tooltip) Reset(p Point) {
	t.open = false
	t.target = NoTarget
	t.suppressed = NoTarget
	t.cursor = p
	t.elapsed = 0
	t.sinceClosed = sinceClosedCap
	t.fade = nil
	t.alpha = 0
}

// Update advances the controller for a pointer at (x, y) hovering target.
// elapsed is the time since the previous update.
func (t *Tooltip) Update(target WidgetRef, x, y, elapsed int) TooltipAction {
	if t.open {
		if target != t.target {
			t.Close()
			t.begin(target, x, y)
			return TooltipClose
		}
		t.elapsed += elapsed
		t.advanceFade(elapsed)
		if t.elapsed >= t.maxDisplay {
			t.suppressed = t.target
			t.Close()
			return TooltipClose
		}
		return TooltipNone
	}

	t.sinceClosed = min(t.sinceClosed+elapsed, sinceClosedCap)
	if target != t.target {
		t.begin(target, x, y)
	} else if x != t.cursor.X || y != t.cursor.Y {
		t.cursor = Point{x, y}
		t.elapsed = 0
	} else {
		t.elapsed += elapsed
	}
	if !target.Valid() || target == t.suppressed {
		return TooltipNone
	}

	delay := t.delay
	if t.sinceClosed < t.recent {
		delay = t.quickDelay
	}
	if t.elapsed < delay {
		return TooltipNone
	}
	t.open = true
	t.elapsed = 0
	t.alpha = 1
	t.fade = nil
	if t.fadeTicks > 0 {
		t.alpha = 0
		t.fade = gween.New(0, 1, float32(t.fadeTicks), ease.OutQuad)
	}
	return TooltipOpen
}

func (t *Tooltip) begin(target WidgetRef, x, y int) {
	if target != t.suppressed {
		t.suppressed = NoTarget
	}
	t.target = target
	t.cursor = Point{x, y}
	t.elapsed = 0
}

func (t *Tooltip) advanceFade(elapsed int) {
	if t.fade == nil {
		return
	}
	val, done := t.fade.Update(float32(elapsed))
	t.alpha = val
	if done {
		t.fade = nil
		t.alpha = 1
	}
}

// Close marks the tooltip closed. It is a no-op when no tooltip is open.
func (t *Tooltip) Close() {
	if !t.open {
		return
	}
	t.open = false
	t.elapsed = 0
	t.sinceClosed = 0
	t.fade = nil
	t.alpha = 0
}

// Suppress keeps the tooltip of target from opening until the pointer
// hovers something else.
func (t *Tooltip) Suppress(target WidgetRef) {
	t.Close()
	t.suppressed = target
	t.target = target
	t.elapsed = 0
}

// Abandon marks an opened target as having no tooltip to show.
func (t *Tooltip) Abandon() {
	target := t.target
	t.open = false
	t.fade = nil
	t.alpha = 0
	t.elapsed = 0
	t.suppressed = target
}

// IsOpen reports whether a tooltip is showing.
func (t *Tooltip) IsOpen() bool { return t.open }

// Target returns the widget the tooltip belongs to or is pending for.
func (t *Tooltip) Target() WidgetRef { return t.target }

// Alpha returns the fade-in opacity of the open tooltip in [0, 1].
func (t *Tooltip) Alpha() float32 { return t.alpha }

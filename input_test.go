package casement

import (
	"math/rand"
	"testing"
)

// --- Mode lifecycle ---

func TestDispatcherStartsInReset(t *testing.T) {
	r := newRig()
	if s := r.d.CurrentMode().State(); s != StateReset {
		t.Fatalf("initial state = %v, want reset", s)
	}
	r.frame(move(10, 10))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state after first frame = %v, want normal", s)
	}
}

func TestDispatcherReset(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 50))
	r.frame(leftDown(120, 60))
	if _, ok := r.d.CurrentMode().(ModePositioningWindow); !ok {
		t.Fatalf("mode = %T, want ModePositioningWindow", r.d.CurrentMode())
	}
	r.d.SetTool(w.Handle, twButton, CursorCrossHair)
	r.d.PushSample(move(1, 1))

	r.d.Reset()

	if s := r.d.CurrentMode().State(); s != StateReset {
		t.Errorf("state = %v, want reset", s)
	}
	if _, ok := r.d.ActiveToolWindow(); ok {
		t.Error("tool still active after Reset")
	}
	if r.d.queue.Len() != 0 {
		t.Errorf("queue len = %d, want 0", r.d.queue.Len())
	}
	if r.d.CursorOver() != NoTarget {
		t.Errorf("cursor over = %+v, want NoTarget", r.d.CursorOver())
	}
}

func TestResetShowsCursorDuringRightDrag(t *testing.T) {
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	r.frame(rightDown(200, 200), move(205, 200))
	if r.platform.hidden != 1 {
		t.Fatalf("HideCursor calls = %d, want 1", r.platform.hidden)
	}

	r.d.Reset()
	r.frame(move(10, 10))

	if r.platform.shown != 1 {
		t.Errorf("ShowCursor calls = %d, want 1", r.platform.shown)
	}
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
}

func TestResetClosesDropdown(t *testing.T) {
	r := newRig()
	w := dropdownWindow(r, DropdownOptions{ItemWidth: 80, ItemHeight: 10})
	var calls []int
	w.OnDropdown = func(ctx DropdownContext) { calls = append(calls, ctx.Index) }
	r.frame(leftDown(230, 145))
	if r.wl.FindByClass(ClassDropdown) == nil {
		t.Fatal("dropdown not opened")
	}

	r.d.Reset()
	if r.wl.FindByClass(ClassDropdown) != nil {
		t.Error("dropdown still open after Reset")
	}
	r.frame(leftDown(500, 400), leftUp(500, 400))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
	if len(calls) != 0 {
		t.Errorf("OnDropdown calls = %v, want none", calls)
	}
}

func TestResetAbortsToolAndClosesTooltip(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	r.platform.ticks = 1000
	r.frame(move(120, 125))
	r.frame()
	if r.wl.FindByClass(ClassTooltip) == nil {
		t.Fatal("tooltip not open")
	}
	r.d.SetTool(w.Handle, twButton, CursorCrossHair)

	r.d.Reset()

	if n := r.sink.count(EventToolAbort); n != 1 {
		t.Errorf("tool aborts = %d, want 1", n)
	}
	if r.wl.FindByClass(ClassTooltip) != nil {
		t.Error("tooltip still open after Reset")
	}
}

func TestWidgetChangeAbortsCapture(t *testing.T) {
	tests := []struct {
		name   string
		press  Point
		change func(w *Window)
		next   PointerSample
	}{
		{
			name:   "scroll widget removed",
			press:  Point{205, 200},
			change: func(w *Window) { w.Widgets = w.Widgets[:twScroll] },
			next:   move(205, 200),
		},
		{
			name:  "button became a caption",
			press: Point{120, 125},
			change: func(w *Window) {
				widgets := append([]Widget(nil), w.Widgets...)
				widgets[twButton].Type = WidgetCaption
				w.Widgets = widgets
			},
			next: leftUp(120, 125),
		},
		{
			name:   "caption removed",
			press:  Point{150, 105},
			change: func(w *Window) { w.Widgets = w.Widgets[:twCaption] },
			next:   move(160, 115),
		},
		{
			name:   "dropdown button removed",
			press:  Point{230, 145},
			change: func(w *Window) { w.Widgets = w.Widgets[:twDropdown] },
			next:   move(250, 160),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			w := dropdownWindow(r, DropdownOptions{})
			SetScrollContent(w, twScroll, 300, 400)
			r.frame(leftDown(tt.press.X, tt.press.Y))
			if s := r.d.CurrentMode().State(); s == StateNormal {
				t.Fatal("press did not capture")
			}

			tt.change(w)
			r.frame(tt.next)

			if s := r.d.CurrentMode().State(); s != StateNormal {
				t.Errorf("state = %v, want normal", s)
			}
			if _, _, _, aborts := r.d.FrameStats(); aborts != 1 {
				t.Errorf("aborts = %d, want 1", aborts)
			}
			if n := r.sink.count(EventMouseUp); n != 0 {
				t.Errorf("mouse up fired %d times", n)
			}
			if r.wl.FindByClass(ClassDropdown) != nil {
				t.Error("dropdown left open")
			}
			if f := w.Scrolls[0].Flags &^ scrollVisibleMask; f != 0 {
				t.Errorf("scroll pressed flags = %#x, want 0", f)
			}
		})
	}
}

func TestSettlePassClampsCursor(t *testing.T) {
	tests := []struct {
		name string
		in   PointerSample
		want Point
	}{
		{"past bottom right", move(700, 500), Point{639, 479}},
		{"before top left", move(-5, -7), Point{0, 0}},
		{"inside", move(30, 40), Point{30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.wl.Add(mainWindow(640, 480))
			r.frame(tt.in)
			if r.d.cursor != tt.want {
				t.Errorf("cursor = %+v, want %+v", r.d.cursor, tt.want)
			}
		})
	}
}

// --- Window move ---

func TestCaptionDragMovesWindow(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 50))
	var moved []MoveContext
	w.OnMoved = func(ctx MoveContext) { moved = append(moved, ctx) }

	r.frame(leftDown(120, 60))
	m, ok := r.d.CurrentMode().(ModePositioningWindow)
	if !ok {
		t.Fatalf("mode = %T, want ModePositioningWindow", r.d.CurrentMode())
	}
	if m.GrabOffset != (Point{20, 10}) {
		t.Errorf("grab offset = %+v, want {20 10}", m.GrabOffset)
	}

	r.frame(move(130, 70))
	if w.X != 110 || w.Y != 60 {
		t.Errorf("window at (%d,%d), want (110,60)", w.X, w.Y)
	}

	r.frame(leftUp(130, 70))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state after release = %v, want normal", s)
	}
	if len(moved) != 1 || moved[0].X != 130 || moved[0].Y != 70 {
		t.Errorf("OnMoved calls = %+v", moved)
	}
	if r.sink.count(EventMoved) != 1 {
		t.Errorf("moved events = %d, want 1", r.sink.count(EventMoved))
	}
}

func TestCaptionDragSnapsToScreenEdge(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 50))

	r.frame(leftDown(120, 60))
	// Window would land at (8, 40); the left screen edge is within 16px.
	r.frame(move(28, 50))
	if w.X != 0 || w.Y != 40 {
		t.Errorf("window at (%d,%d), want (0,40)", w.X, w.Y)
	}
}

func TestCaptionPressBringsWindowToFront(t *testing.T) {
	r := newRig()
	back := r.wl.Add(testWindow(1, 100, 50))
	r.wl.Add(testWindow(2, 400, 300))

	r.frame(leftDown(120, 60))
	ws := r.wl.Windows()
	if ws[len(ws)-1] != back {
		t.Error("pressed window not brought to front")
	}
}

// --- Resize ---

func TestResizeGripClampsToLimits(t *testing.T) {
	tests := []struct {
		name          string
		to            Point
		width, height int
	}{
		{"grow", Point{395, 295}, 300, 200},
		{"clamp max", Point{795, 400}, 400, 300},
		{"clamp min", Point{100, 100}, 100, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			w := r.wl.Add(testWindow(1, 100, 100))
			r.frame(leftDown(295, 245))
			if s := r.d.CurrentMode().State(); s != StateResizing {
				t.Fatalf("state = %v, want resizing", s)
			}
			r.frame(move(tt.to.X, tt.to.Y))
			if w.Width != tt.width || w.Height != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", w.Width, w.Height, tt.width, tt.height)
			}
			r.frame(leftUp(tt.to.X, tt.to.Y))
			if s := r.d.CurrentMode().State(); s != StateNormal {
				t.Errorf("state after release = %v, want normal", s)
			}
		})
	}
}

func TestResizeIgnoresPointerAtScreenBottom(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	r.frame(leftDown(295, 245))
	r.frame(move(320, 479))
	if w.Width != 200 || w.Height != 150 {
		t.Errorf("size = %dx%d, want unchanged 200x150", w.Width, w.Height)
	}
}

func TestFramePressOutsideGripDoesNothing(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.frame(leftDown(250, 200))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
}

func TestResizeCursorForcedWhileResizing(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.frame(leftDown(295, 245))
	r.frame(move(350, 270))
	if got := r.d.CurrentCursor(); got != CursorDiagonalArrows {
		t.Errorf("cursor = %v, want diagonal arrows", got)
	}
}

// --- Viewport right drag ---

func TestRightDragPansViewport(t *testing.T) {
	r := newRig()
	main := r.wl.Add(mainWindow(640, 480))
	main.Viewport.Zoom = 1
	main.Viewport.ScrollTo(500, 500, 1000, nil)

	r.frame(rightDown(200, 200))
	if s := r.d.CurrentMode().State(); s != StateViewportRight {
		t.Fatalf("state = %v, want viewport-right", s)
	}
	if r.platform.hidden != 1 {
		t.Errorf("HideCursor calls = %d, want 1", r.platform.hidden)
	}
	if main.Viewport.ScrollingToLocation() {
		t.Error("right drag did not cancel scroll-to-location")
	}

	r.frame(move(205, 200))
	if main.Viewport.ViewX != 20 || main.Viewport.ViewY != 0 {
		t.Errorf("view = (%d,%d), want (20,0)", main.Viewport.ViewX, main.Viewport.ViewY)
	}
	if n := len(r.platform.warps); n == 0 || r.platform.warps[n-1] != (Point{200, 200}) {
		t.Errorf("warps = %+v, want last warp to anchor", r.platform.warps)
	}

	r.frame(rightUp(200, 200))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
	if r.platform.shown != 1 {
		t.Errorf("ShowCursor calls = %d, want 1", r.platform.shown)
	}
	if len(r.world.rightClicks) != 0 {
		t.Errorf("pan produced right clicks: %+v", r.world.rightClicks)
	}
}

func TestRightClickOnViewport(t *testing.T) {
	tests := []struct {
		name       string
		ticks      int
		holdFrames int
		wantClick  bool
	}{
		{"quick release", 16, 0, true},
		{"just under threshold", 100, 3, true},
		{"held too long", 100, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			r.wl.Add(mainWindow(640, 480))
			r.platform.ticks = tt.ticks
			r.frame(rightDown(300, 300))
			for i := 0; i < tt.holdFrames; i++ {
				r.frame()
			}
			r.frame(rightUp(300, 300))
			got := len(r.world.rightClicks) == 1
			if got != tt.wantClick {
				t.Errorf("right clicks = %+v, want click %v", r.world.rightClicks, tt.wantClick)
			}
		})
	}
}

func TestRightDragRespectsNoScrollFlag(t *testing.T) {
	r := newRig()
	main := r.wl.Add(mainWindow(640, 480))
	main.Flags |= FlagNoViewportScroll
	r.frame(rightDown(200, 200))
	r.frame(move(230, 210))
	if main.Viewport.ViewX != 0 || main.Viewport.ViewY != 0 {
		t.Errorf("view moved to (%d,%d)", main.Viewport.ViewX, main.Viewport.ViewY)
	}
}

func TestRightDragDisabledOnTitleScreen(t *testing.T) {
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	r.d.SetScreenFlags(ScreenTitleDemo)
	r.frame(rightDown(200, 200))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
}

func TestRightDragWindowClosed(t *testing.T) {
	r := newRig()
	main := r.wl.Add(mainWindow(640, 480))
	r.frame(rightDown(200, 200))
	r.wl.Close(main.Handle)
	r.frame(move(210, 200))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
	if r.platform.shown != 1 {
		t.Errorf("ShowCursor calls = %d, want 1", r.platform.shown)
	}
}

// --- Widget press ---

func TestButtonClick(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	var downs, ups []WidgetContext
	w.OnMouseDown = func(ctx WidgetContext) { downs = append(downs, ctx) }
	w.OnMouseUp = func(ctx WidgetContext) { ups = append(ups, ctx) }

	r.frame(leftDown(120, 125))
	if s := r.d.CurrentMode().State(); s != StateWidgetPressed {
		t.Fatalf("state = %v, want widget-pressed", s)
	}
	if !r.d.IsWidgetPressed(w.Handle, twButton) {
		t.Error("button should draw pressed")
	}
	r.frame(leftUp(121, 126))

	if len(downs) != 1 || downs[0].Widget != twButton {
		t.Errorf("OnMouseDown = %+v", downs)
	}
	if len(ups) != 1 || ups[0].Widget != twButton || ups[0].X != 121 {
		t.Errorf("OnMouseUp = %+v", ups)
	}
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
	if r.d.IsWidgetPressed(w.Handle, twButton) {
		t.Error("button still drawn pressed after release")
	}
}

func TestButtonReleaseElsewhereCancels(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	r.frame(leftDown(120, 125))
	r.frame(move(500, 400))
	if r.d.IsWidgetPressed(w.Handle, twButton) {
		t.Error("pressed visual kept after leaving the widget")
	}
	r.frame(move(120, 125))
	if !r.d.IsWidgetPressed(w.Handle, twButton) {
		t.Error("pressed visual not restored on return")
	}
	r.frame(leftUp(500, 400))
	if n := r.sink.count(EventMouseUp); n != 0 {
		t.Errorf("mouse up events = %d, want 0", n)
	}
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
}

func TestDisabledButtonIgnored(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.frame(leftDown(220, 125), leftUp(220, 125))
	if len(r.sink.events) != 0 {
		t.Errorf("events = %v, want none", r.sink.types())
	}
}

func TestHoldRepeat(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	samples := []PointerSample{leftDown(170, 125)}
	for i := 0; i < 23; i++ {
		samples = append(samples, move(170, 125))
	}
	r.frame(samples...)
	// Hold ticks reach 16, 20 and 24.
	if n := r.sink.count(EventMouseDown); n != 4 {
		t.Errorf("mouse down events = %d, want 4", n)
	}
}

func TestHoldRepeatOnlyForFlaggedWidgets(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	samples := []PointerSample{leftDown(120, 125)}
	for i := 0; i < 30; i++ {
		samples = append(samples, move(120, 125))
	}
	r.frame(samples...)
	if n := r.sink.count(EventMouseDown); n != 1 {
		t.Errorf("mouse down events = %d, want 1", n)
	}
}

func TestPressedWindowClosedMidPress(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	r.frame(leftDown(120, 125))
	r.wl.Close(w.Handle)
	r.frame(leftUp(120, 125))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
	if n := r.sink.count(EventMouseUp); n != 0 {
		t.Errorf("mouse up fired for a closed window")
	}
}

func TestMidDragWindowRemoval(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 50))
	r.frame(leftDown(120, 60))
	r.wl.Close(w.Handle)
	r.frame(move(150, 90))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
	if _, _, _, aborts := r.d.FrameStats(); aborts != 1 {
		t.Errorf("aborts = %d, want 1", aborts)
	}
}

// --- Dropdown ---

func dropdownWindow(r *rig, opts DropdownOptions) *Window {
	w := r.wl.Add(testWindow(1, 100, 100))
	items := []DropdownItem{{Label: "A"}, {Label: "B", Disabled: true}, {}, {Label: "D"}}
	w.OnMouseDown = func(ctx WidgetContext) {
		if ctx.Widget == twDropdown {
			r.d.ShowDropdown(220, 155, items, opts)
		}
	}
	return w
}

func TestDropdownResolution(t *testing.T) {
	opts := DropdownOptions{ItemWidth: 80, ItemHeight: 10}
	tests := []struct {
		name      string
		release   Point
		wantCalls []int
	}{
		{"select item", Point{250, 160}, []int{0}},
		{"select last", Point{250, 190}, []int{3}},
		{"disabled item", Point{250, 170}, nil},
		{"separator", Point{250, 180}, nil},
		{"outside", Point{500, 400}, []int{-1}},
		{"origin without stay open", Point{230, 145}, []int{-1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			w := dropdownWindow(r, opts)
			var calls []int
			w.OnDropdown = func(ctx DropdownContext) { calls = append(calls, ctx.Index) }

			r.frame(leftDown(230, 145))
			if s := r.d.CurrentMode().State(); s != StateDropdownActive {
				t.Fatalf("state = %v, want dropdown-active", s)
			}
			if r.wl.FindByClass(ClassDropdown) == nil {
				t.Fatal("dropdown window not open")
			}
			r.frame(leftUp(tt.release.X, tt.release.Y))

			if len(calls) != len(tt.wantCalls) {
				t.Fatalf("OnDropdown calls = %v, want %v", calls, tt.wantCalls)
			}
			for i := range calls {
				if calls[i] != tt.wantCalls[i] {
					t.Errorf("OnDropdown calls = %v, want %v", calls, tt.wantCalls)
				}
			}
			if s := r.d.CurrentMode().State(); s != StateNormal {
				t.Errorf("state = %v, want normal", s)
			}
			if r.wl.FindByClass(ClassDropdown) != nil {
				t.Error("dropdown window still open")
			}
			if n := r.sink.count(EventMouseUp); n != 0 {
				t.Errorf("mouse up fired after dropdown: %d", n)
			}
		})
	}
}

func TestDropdownStayOpen(t *testing.T) {
	r := newRig()
	w := dropdownWindow(r, DropdownOptions{ItemWidth: 80, ItemHeight: 10, StayOpen: true})
	var calls []int
	w.OnDropdown = func(ctx DropdownContext) { calls = append(calls, ctx.Index) }

	r.frame(leftDown(230, 145))
	r.frame(leftUp(230, 145))
	if s := r.d.CurrentMode().State(); s != StateDropdownActive {
		t.Fatalf("state after first release = %v, want dropdown-active", s)
	}
	if len(calls) != 0 {
		t.Fatalf("callback fired on first release: %v", calls)
	}

	r.frame(move(250, 190))
	dd, _ := DropdownOf(r.wl.FindByClass(ClassDropdown))
	if dd == nil || dd.Highlighted != 3 {
		t.Errorf("highlighted = %+v, want 3", dd)
	}

	r.frame(leftDown(250, 190), leftUp(250, 190))
	if len(calls) != 1 || calls[0] != 3 {
		t.Errorf("OnDropdown calls = %v, want [3]", calls)
	}
}

func TestDropdownSecondReleaseOnOriginCloses(t *testing.T) {
	r := newRig()
	w := dropdownWindow(r, DropdownOptions{ItemWidth: 80, ItemHeight: 10, StayOpen: true})
	var calls []int
	w.OnDropdown = func(ctx DropdownContext) { calls = append(calls, ctx.Index) }

	r.frame(leftDown(230, 145), leftUp(230, 145))
	r.frame(leftDown(230, 145), leftUp(230, 145))
	if len(calls) != 1 || calls[0] != -1 {
		t.Errorf("OnDropdown calls = %v, want [-1]", calls)
	}
}

func TestShowDropdownOutsidePress(t *testing.T) {
	r := newRig()
	if w := r.d.ShowDropdown(0, 0, []DropdownItem{{Label: "A"}}, DropdownOptions{}); w != nil {
		t.Error("ShowDropdown opened a dropdown without a widget press")
	}
}

// --- Viewport left and tools ---

func TestViewportLeftClickWithoutTool(t *testing.T) {
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	r.frame(leftDown(300, 300))
	if s := r.d.CurrentMode().State(); s != StateViewportLeft {
		t.Fatalf("state = %v, want viewport-left", s)
	}
	r.frame(leftUp(305, 302))
	if len(r.world.leftClicks) != 1 || r.world.leftClicks[0] != (Point{305, 302}) {
		t.Errorf("world left clicks = %+v", r.world.leftClicks)
	}
}

func TestToolLifecycle(t *testing.T) {
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	tw := r.wl.Add(testWindow(1, 0, 0))
	var aborted int
	tw.OnToolAbort = func(ToolContext) { aborted++ }
	r.d.SetTool(tw.Handle, twButton, CursorCrossHair)

	h, ok := r.d.ActiveToolWindow()
	if !ok || h != tw.Handle {
		t.Fatalf("ActiveToolWindow = %+v, %v", h, ok)
	}

	r.frame(leftDown(300, 300))
	m, ok := r.d.CurrentMode().(ModeViewportLeftTool)
	if !ok || !m.ToolEngaged {
		t.Fatalf("mode = %+v, want engaged ModeViewportLeftTool", r.d.CurrentMode())
	}
	r.frame(move(310, 305))
	r.frame(leftUp(310, 305))

	for _, et := range []EventType{EventToolDown, EventToolUp} {
		if r.sink.count(et) != 1 {
			t.Errorf("event %d count = %d, want 1", et, r.sink.count(et))
		}
	}
	// The settle pass drags too: once after the press, twice after the move.
	if n := r.sink.count(EventToolDrag); n != 3 {
		t.Errorf("tool drags = %d, want 3", n)
	}
	if r.sink.count(EventToolUpdate) != 3 {
		t.Errorf("tool updates = %d, want one per frame", r.sink.count(EventToolUpdate))
	}
	if len(r.world.leftClicks) != 0 {
		t.Errorf("world clicked while tool active: %+v", r.world.leftClicks)
	}

	r.d.CancelTool()
	if aborted != 1 {
		t.Errorf("tool aborts = %d, want 1", aborted)
	}
	if _, ok := r.d.ActiveToolWindow(); ok {
		t.Error("tool still active after CancelTool")
	}
}

func TestSetToolCancelsPrevious(t *testing.T) {
	r := newRig()
	a := r.wl.Add(testWindow(1, 0, 0))
	b := r.wl.Add(testWindow(2, 300, 0))
	var aborted int
	a.OnToolAbort = func(ToolContext) { aborted++ }
	r.d.SetTool(a.Handle, twButton, CursorCrossHair)
	r.d.SetTool(b.Handle, twButton, CursorPaintDown)
	if aborted != 1 {
		t.Errorf("previous tool aborts = %d, want 1", aborted)
	}
	if h, _ := r.d.ActiveToolWindow(); h != b.Handle {
		t.Errorf("tool window = %+v, want %+v", h, b.Handle)
	}
}

func TestToolWindowClosedCancelsTool(t *testing.T) {
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	tw := r.wl.Add(testWindow(1, 0, 0))
	r.d.SetTool(tw.Handle, twButton, CursorCrossHair)
	r.wl.Close(tw.Handle)
	r.frame(move(300, 300))
	if _, ok := r.d.ActiveToolWindow(); ok {
		t.Error("tool kept after its window closed")
	}
}

// --- Scroll widgets ---

func TestScrollTroughClickThroughDispatcher(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	SetScrollContent(w, twScroll, 300, 400)

	r.frame(leftDown(205, 200))
	m, ok := r.d.CurrentMode().(ModeScrollLeftDrag)
	if !ok || m.ScrollPart != ScrollPartVBottomTrough || m.ScrollIndex != 0 {
		t.Fatalf("mode = %+v, want bottom trough drag", r.d.CurrentMode())
	}
	if w.Scrolls[0].VTop != 87 {
		t.Errorf("VTop = %d, want 87", w.Scrolls[0].VTop)
	}
	r.frame(leftUp(205, 200))
	if s := r.d.CurrentMode().State(); s != StateNormal {
		t.Errorf("state = %v, want normal", s)
	}
}

func TestScrollArrowHoldRepeats(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	SetScrollContent(w, twScroll, 300, 400)

	// Down arrow at widget-relative (95, 83).
	r.frame(leftDown(205, 223), move(205, 223), move(205, 223))
	// Press plus two repeats plus the settle pass.
	if w.Scrolls[0].VTop != 12 {
		t.Errorf("VTop = %d, want 12", w.Scrolls[0].VTop)
	}
	if w.Scrolls[0].Flags&VDownPressed == 0 {
		t.Error("down arrow not marked pressed")
	}
	r.frame(leftUp(205, 223))
	if w.Scrolls[0].Flags&VDownPressed != 0 {
		t.Error("pressed flag kept after release")
	}
	if w.Scrolls[0].Flags&scrollVisibleMask != scrollVisibleMask {
		t.Error("visibility flags lost on release")
	}
}

func TestScrollThumbDrag(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	SetScrollContent(w, twScroll, 300, 400)
	// Thumb occupies rows 10..29 of the widget.
	r.frame(leftDown(205, 155))
	if m, _ := r.d.CurrentMode().(ModeScrollLeftDrag); m.ScrollPart != ScrollPartVThumb {
		t.Fatalf("part = %v, want vertical thumb", m.ScrollPart)
	}
	// Track 69, thumb 20: 49 pixels of travel cover 313 units.
	r.frame(move(205, 204))
	if got := w.Scrolls[0].VTop; got != 313 {
		t.Errorf("VTop = %d, want 313", got)
	}
	// Leaving the widget keeps dragging the thumb.
	r.frame(move(400, 155))
	if got := w.Scrolls[0].VTop; got != 0 {
		t.Errorf("VTop = %d, want 0", got)
	}
}

func TestScrollViewEvents(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	SetScrollContent(w, twScroll, 300, 400)
	w.Scrolls[0].VTop = 50
	var downs []ScrollContext
	w.OnScrollMouseDown = func(ctx ScrollContext) { downs = append(downs, ctx) }

	r.frame(move(131, 161))
	if r.sink.count(EventScrollMouseOver) == 0 {
		t.Error("no scroll mouse-over event")
	}
	r.frame(leftDown(131, 161))
	if len(downs) != 1 || downs[0].X != 20 || downs[0].Y != 70 || downs[0].Scroll != 0 {
		t.Errorf("scroll mouse down = %+v", downs)
	}
	r.frame(move(135, 165))
	if r.sink.count(EventScrollMouseDrag) == 0 {
		t.Error("no scroll drag event")
	}
}

// --- Hover ---

func TestHoverInvalidatesFlatButtons(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	got := invalidations(w)

	r.frame(move(270, 125))
	if r.d.CursorOver() != (WidgetRef{w.Handle, twFlat}) {
		t.Errorf("cursor over = %+v", r.d.CursorOver())
	}
	if len(*got) != 1 || (*got)[0] != twFlat {
		t.Errorf("invalidations = %v, want [%d]", *got, twFlat)
	}
	r.frame(move(120, 125))
	if len(*got) != 2 || (*got)[1] != twFlat {
		t.Errorf("invalidations = %v, want flat button redrawn on leave", *got)
	}
}

// --- Tooltips ---

func TestTooltipOpensAfterDwell(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.platform.ticks = 500

	for i := 0; i < 3; i++ {
		r.frame(move(120, 125))
		if r.wl.FindByClass(ClassTooltip) != nil {
			t.Fatalf("tooltip opened after frame %d", i+1)
		}
	}
	r.frame()
	tip := r.wl.FindByClass(ClassTooltip)
	if tip == nil {
		t.Fatal("tooltip not opened after 2000 ticks")
	}
	if tip.UserData != "Press me" {
		t.Errorf("tooltip text = %v", tip.UserData)
	}
	if WindowAt(r.wl, tip.X+1, tip.Y+1) == tip {
		t.Error("tooltip window is hit-testable")
	}

	r.frame(move(400, 400))
	if r.wl.FindByClass(ClassTooltip) != nil {
		t.Error("tooltip not closed after hover change")
	}
}

func TestTooltipFromCallback(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	w.OnTooltip = func(ctx WidgetContext) string {
		if ctx.Widget == twRepeat {
			return "Repeat"
		}
		return ""
	}
	r.platform.ticks = 1000
	r.frame(move(170, 125))
	r.frame()
	tip := r.wl.FindByClass(ClassTooltip)
	if tip == nil || tip.UserData != "Repeat" {
		t.Fatalf("tooltip = %+v", tip)
	}
}

func TestTooltipNotShownWithoutText(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.platform.ticks = 1000
	for i := 0; i < 5; i++ {
		r.frame(move(170, 125))
	}
	if r.wl.FindByClass(ClassTooltip) != nil {
		t.Error("tooltip opened for a widget without text")
	}
}

func TestTooltipClosedByPress(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.platform.ticks = 1000
	r.frame(move(120, 125))
	r.frame()
	if r.wl.FindByClass(ClassTooltip) == nil {
		t.Fatal("tooltip not open")
	}
	r.frame(leftDown(120, 125))
	if r.wl.FindByClass(ClassTooltip) != nil {
		t.Error("tooltip survived a press")
	}
	r.frame(leftUp(120, 125))
	r.frame()
	r.frame()
	if r.wl.FindByClass(ClassTooltip) != nil {
		t.Error("tooltip reopened for the widget just clicked")
	}
}

func TestTooltipKeptOverScrollBar(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	SetScrollContent(w, twScroll, 300, 400)
	r.platform.ticks = 1000
	r.frame(move(120, 125))
	r.frame()
	if r.wl.FindByClass(ClassTooltip) == nil {
		t.Fatal("tooltip not open")
	}

	r.frame(move(205, 200))
	if r.wl.FindByClass(ClassTooltip) == nil {
		t.Error("tooltip closed while over a scroll bar")
	}

	r.frame(move(150, 180))
	if r.wl.FindByClass(ClassTooltip) != nil {
		t.Error("tooltip not closed over the scroll view")
	}
}

// --- Cursor ---

func TestCursorOnlySentOnChange(t *testing.T) {
	r := newRig()
	r.wl.Add(testWindow(1, 100, 100))
	r.frame(move(120, 125))
	r.frame(move(121, 125))
	r.frame(move(295, 245))
	r.frame(move(296, 246))
	want := []CursorID{CursorArrow, CursorDiagonalArrows}
	if len(r.platform.cursors) != len(want) {
		t.Fatalf("cursors = %v, want %v", r.platform.cursors, want)
	}
	for i := range want {
		if r.platform.cursors[i] != want[i] {
			t.Errorf("cursors = %v, want %v", r.platform.cursors, want)
		}
	}
}

func TestCursorOverViewport(t *testing.T) {
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	tw := r.wl.Add(testWindow(1, 0, 0))

	r.world.clickable = true
	r.frame(move(300, 300))
	if got := r.d.CurrentCursor(); got != CursorHandPoint {
		t.Errorf("cursor = %v, want hand", got)
	}

	r.d.SetTool(tw.Handle, twButton, CursorPaintDown)
	r.frame(move(301, 300))
	if got := r.d.CurrentCursor(); got != CursorPaintDown {
		t.Errorf("cursor = %v, want tool cursor", got)
	}

	tw.OnToolCursor = func(ToolContext) (CursorID, bool) { return CursorDigDown, true }
	r.frame(move(302, 300))
	if got := r.d.CurrentCursor(); got != CursorDigDown {
		t.Errorf("cursor = %v, want window tool cursor", got)
	}
}

func TestCursorFromWindowCallback(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(1, 100, 100))
	w.OnCursor = func(ctx WidgetContext) (CursorID, bool) {
		return CursorPicker, ctx.Widget == twButton
	}
	r.frame(move(120, 125))
	if got := r.d.CurrentCursor(); got != CursorPicker {
		t.Errorf("cursor = %v, want picker", got)
	}
	r.frame(move(170, 125))
	if got := r.d.CurrentCursor(); got != CursorArrow {
		t.Errorf("cursor = %v, want arrow", got)
	}
}

// --- Queue overflow ---

func TestDroppedSamplesCounted(t *testing.T) {
	r := newRig()
	for i := 0; i < inputQueueSize+10; i++ {
		r.d.PushSample(move(i, 0))
	}
	r.d.ProcessFrame()
	samples, dropped, _, _ := r.d.FrameStats()
	if samples != inputQueueSize || dropped != 10 {
		t.Errorf("samples = %d dropped = %d, want %d and 10", samples, dropped, inputQueueSize)
	}
}

// --- Invariants under random input ---

func TestRandomInputKeepsValidMode(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	r := newRig()
	r.wl.Add(mainWindow(640, 480))
	r.wl.Add(testWindow(1, 100, 100))
	r.wl.Add(testWindow(2, 250, 200))
	for _, w := range r.wl.Windows() {
		if w.Handle.Class == ClassUser {
			SetScrollContent(w, twScroll, 300, 400)
			w.OnMouseDown = func(ctx WidgetContext) {
				if ctx.Widget == twDropdown {
					r.d.ShowDropdown(ctx.X, ctx.Y+10, []DropdownItem{{Label: "x"}, {Label: "y"}}, DropdownOptions{})
				}
			}
		}
	}

	for i := 0; i < 2000; i++ {
		s := PointerSample{
			X:          rng.Intn(640),
			Y:          rng.Intn(480),
			Transition: Transition(rng.Intn(5)),
		}
		if rng.Intn(200) == 0 {
			n := WindowNumber(rng.Intn(2) + 1)
			r.wl.Close(WindowHandle{Class: ClassUser, Number: n})
			r.wl.Add(testWindow(n, rng.Intn(400), rng.Intn(300)))
		}
		r.frame(s)

		st := r.d.CurrentMode().State()
		if st > StateResizing {
			t.Fatalf("step %d: invalid state %v", i, st)
		}
		if c, ok := captured(r.d.CurrentMode()); ok {
			if reason := c.stale(r.wl); reason != "" {
				t.Fatalf("step %d: mode %v holds stale capture %+v: %s", i, st, c, reason)
			}
		}
	}
}

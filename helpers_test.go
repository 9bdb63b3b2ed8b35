package casement

import "github.com/hajimehoshi/ebiten/v2"

// --- Test doubles ---

type fakePlatform struct {
	keys    map[ebiten.Key]bool
	cursors []CursorID
	warps   []Point
	hidden  int
	shown   int
	ticks   int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{keys: map[ebiten.Key]bool{}, ticks: 16}
}

func (p *fakePlatform) IsKeyPressed(k ebiten.Key) bool { return p.keys[k] }
func (p *fakePlatform) SetCursor(id CursorID)          { p.cursors = append(p.cursors, id) }
func (p *fakePlatform) WarpCursor(x, y int)            { p.warps = append(p.warps, Point{x, y}) }
func (p *fakePlatform) HideCursor()                    { p.hidden++ }
func (p *fakePlatform) ShowCursor()                    { p.shown++ }
func (p *fakePlatform) FrameTicks() int                { return p.ticks }

type fakeWorld struct {
	leftClicks  []Point
	rightClicks []Point
	clickable   bool
	hovered     int
}

func (w *fakeWorld) LeftClick(x, y int)     { w.leftClicks = append(w.leftClicks, Point{x, y}) }
func (w *fakeWorld) RightClick(x, y int)    { w.rightClicks = append(w.rightClicks, Point{x, y}) }
func (w *fakeWorld) LeftOver(x, y int) bool { return w.clickable }
func (w *fakeWorld) RightOver(x, y int)     { w.hovered++ }

type fakeTutorial struct {
	playing bool
	stops   int
}

func (t *fakeTutorial) Playing() bool { return t.playing }
func (t *fakeTutorial) Stop()         { t.stops++; t.playing = false }

type recordingSink struct {
	events []InteractionEvent
}

func (s *recordingSink) EmitEvent(e InteractionEvent) { s.events = append(s.events, e) }

func (s *recordingSink) types() []EventType {
	out := make([]EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

func (s *recordingSink) count(t EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type rig struct {
	wl       *WindowList
	d        *Dispatcher
	platform *fakePlatform
	world    *fakeWorld
	sink     *recordingSink
}

func newRig() *rig {
	r := &rig{
		wl:       NewWindowList(640, 480),
		platform: newFakePlatform(),
		world:    &fakeWorld{},
		sink:     &recordingSink{},
	}
	r.d = NewDispatcher(r.wl, r.platform)
	r.d.SetWorld(r.world)
	r.d.SetEventSink(r.sink)
	return r
}

// frame pushes samples and processes one frame.
func (r *rig) frame(samples ...PointerSample) {
	for _, s := range samples {
		r.d.PushSample(s)
	}
	r.d.ProcessFrame()
}

func move(x, y int) PointerSample      { return PointerSample{X: x, Y: y, Transition: TransitionMove} }
func leftDown(x, y int) PointerSample  { return PointerSample{X: x, Y: y, Transition: TransitionLeftDown} }
func leftUp(x, y int) PointerSample    { return PointerSample{X: x, Y: y, Transition: TransitionLeftUp} }
func rightDown(x, y int) PointerSample { return PointerSample{X: x, Y: y, Transition: TransitionRightDown} }
func rightUp(x, y int) PointerSample   { return PointerSample{X: x, Y: y, Transition: TransitionRightUp} }

// Widget indices of testWindow.
const (
	twFrame = iota
	twCaption
	twButton
	twRepeat
	twDisabled
	twFlat
	twScroll
	twDropdown
)

// testWindow builds a 200x150 resizable window at (x, y):
//
//	frame    0,0 - 199,149
//	caption  1,1 - 198,13
//	button   10,20 - 49,34
//	repeat   60,20 - 99,34   (hold repeat)
//	disabled 110,20 - 149,34
//	flat     160,20 - 189,34 (flat button)
//	scroll   10,40 - 109,139 (both bars)
//	dropdown 120,40 - 189,54
func testWindow(num WindowNumber, x, y int) *Window {
	return &Window{
		Handle: WindowHandle{Class: ClassUser, Number: num},
		X:      x, Y: y, Width: 200, Height: 150,
		MinWidth: 100, MinHeight: 80, MaxWidth: 400, MaxHeight: 300,
		Flags: FlagResizable,
		Widgets: []Widget{
			twFrame:    {Type: WidgetResize, Right: 199, Bottom: 149},
			twCaption:  {Type: WidgetCaption, Left: 1, Top: 1, Right: 198, Bottom: 13},
			twButton:   {Type: WidgetButton, Left: 10, Top: 20, Right: 49, Bottom: 34, Tooltip: "Press me"},
			twRepeat:   {Type: WidgetButton, Left: 60, Top: 20, Right: 99, Bottom: 34},
			twDisabled: {Type: WidgetButton, Left: 110, Top: 20, Right: 149, Bottom: 34},
			twFlat:     {Type: WidgetFlatButton, Left: 160, Top: 20, Right: 189, Bottom: 34},
			twScroll:   {Type: WidgetScroll, Left: 10, Top: 40, Right: 109, Bottom: 139, Bars: HScrollVisible | VScrollVisible},
			twDropdown: {Type: WidgetDropdownButton, Left: 120, Top: 40, Right: 189, Bottom: 54},
		},
		Enabled:    WidgetSetOf(twButton, twRepeat, twDisabled, twFlat, twDropdown),
		Disabled:   WidgetSetOf(twDisabled),
		HoldRepeat: WidgetSetOf(twRepeat),
	}
}

// mainWindow builds a full-screen world window with a viewport widget.
func mainWindow(width, height int) *Window {
	return &Window{
		Handle:   WindowHandle{Class: ClassMain},
		Width:    width,
		Height:   height,
		Flags:    FlagStickToBack,
		Widgets:  []Widget{{Type: WidgetViewport, Right: width - 1, Bottom: height - 1}},
		Viewport: &Viewport{Width: width, Height: height},
	}
}

// invalidations records OnInvalidate calls for a window.
func invalidations(w *Window) *[]int {
	var got []int
	w.OnInvalidate = func(widget int) { got = append(got, widget) }
	return &got
}

package casement

import "github.com/hajimehoshi/ebiten/v2"

// ToolState describes the active tool: the window that owns it, the widget
// that selected it and the cursor shown over viewports.
type ToolState struct {
	Active bool
	Window WindowHandle
	Widget int
	Cursor CursorID
}

// panMarkTicks is stored as the accumulated time of a right drag once the
// view has moved, so the release is never taken as a click.
const panMarkTicks = 1000

// Dispatcher is the interaction state machine. It owns all input state: the
// current mode, the sample and key queues, tooltip and hover state, the
// active tool and the cursor. All methods except PushSample and PressKey
// must be called from the frame loop.
type Dispatcher struct {
	wm       WindowManager
	platform Platform
	world    World
	tutorial Tutorial
	sound    SoundPlayer
	sink     EventSink
	cfg      Config

	queue     InputQueue
	keys      KeyQueue
	shortcuts *ShortcutTable
	tooltip   *Tooltip

	runner      *TestRunner
	injectQueue []injectedInput

	mode      Mode
	cursor    Point
	over      WidgetRef
	tool      ToolState
	screen    ScreenFlags
	modifiers KeyModifiers

	cursorID  CursorID
	cursorSet bool

	// pressedVisual is set while the pressed widget should draw pressed.
	pressedVisual    bool
	dropdownStayOpen bool
	dropdownMouseUp  bool
	viewportScrolled bool

	// sampleTicks is the time credited to the sample being handled: zero for
	// queued samples, the frame duration for the settle pass.
	sampleTicks int

	debug bool
	stats debugStats
}

// NewDispatcher creates a dispatcher driving wm. A nil platform disables
// cursor and keyboard-state services.
func NewDispatcher(wm WindowManager, platform Platform) *Dispatcher {
	if platform == nil {
		platform = nopPlatform{}
	}
	cfg := DefaultConfig()
	d := &Dispatcher{
		wm:        wm,
		platform:  platform,
		cfg:       cfg,
		shortcuts: NewShortcutTable(),
		tooltip:   NewTooltip(cfg),
	}
	d.Reset()
	return d
}

// SetConfig applies cfg. Shortcut bindings are not applied; load them with
// Shortcuts().LoadBindings after registering actions.
func (d *Dispatcher) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	d.cfg = cfg
	d.tooltip.Configure(cfg)
	return nil
}

// Config returns the active configuration.
func (d *Dispatcher) Config() Config { return d.cfg }

// SetWorld sets the viewport world collaborator. May be nil.
func (d *Dispatcher) SetWorld(w World) { d.world = w }

// SetTutorial sets the tutorial collaborator. May be nil.
func (d *Dispatcher) SetTutorial(t Tutorial) { d.tutorial = t }

// SetSoundPlayer sets the interface sound player. May be nil.
func (d *Dispatcher) SetSoundPlayer(s SoundPlayer) { d.sound = s }

// SetEventSink sets the receiver of interaction events. May be nil.
func (d *Dispatcher) SetEventSink(s EventSink) { d.sink = s }

// SetScreenFlags sets the current game screen.
func (d *Dispatcher) SetScreenFlags(f ScreenFlags) { d.screen = f }

// Shortcuts returns the keyboard shortcut table.
func (d *Dispatcher) Shortcuts() *ShortcutTable { return d.shortcuts }

// Tooltip returns the tooltip controller.
func (d *Dispatcher) Tooltip() *Tooltip { return d.tooltip }

// Reset returns every piece of input state to its initial value. An
// interaction in progress is dropped: a hidden cursor is shown again, an
// open dropdown or tooltip is closed and the active tool is cancelled. The
// mode becomes ModeReset; the next sample moves it to Normal.
func (d *Dispatcher) Reset() {
	d.leaveMode()
	d.CancelTool()
	d.wm.CloseByClass(ClassTooltip)
	d.queue.Clear()
	d.keys.Clear()
	d.mode = ModeReset{}
	d.over = NoTarget
	d.tool = ToolState{Window: NoWindow, Widget: NoWidget}
	d.modifiers = 0
	d.pressedVisual = false
	d.dropdownStayOpen = false
	d.dropdownMouseUp = false
	d.viewportScrolled = false
	d.cursorSet = false
	d.tooltip.Reset(d.cursor)
}

// CurrentMode returns the current interaction mode.
func (d *Dispatcher) CurrentMode() Mode { return d.mode }

// CursorOver returns the widget last hovered in Normal mode.
func (d *Dispatcher) CursorOver() WidgetRef { return d.over }

// Modifiers returns the modifier keys read on the last keyboard pass.
func (d *Dispatcher) Modifiers() KeyModifiers { return d.modifiers }

// IsWidgetPressed reports whether widget of window h should draw pressed.
func (d *Dispatcher) IsWidgetPressed(h WindowHandle, widget int) bool {
	if !d.pressedVisual {
		return false
	}
	switch m := d.mode.(type) {
	case ModeWidgetPressed:
		return m.Window == h && m.Widget == widget
	case ModeDropdownActive:
		return m.Window == h && m.Widget == widget
	}
	return false
}

// PushSample queues a pointer sample. Safe to call from any goroutine.
func (d *Dispatcher) PushSample(s PointerSample) {
	d.queue.Push(s)
}

// PressKey queues a key press. Safe to call from any goroutine.
func (d *Dispatcher) PressKey(k ebiten.Key) {
	d.keys.Press(k)
}

// ProcessFrame drains the sample queue through the state machine, then runs
// the settle pass: a synthetic move at the last cursor position, the cursor
// update and the tool hover update.
func (d *Dispatcher) ProcessFrame() {
	if d.runner != nil {
		d.runner.step(d)
	}
	d.processInjected()
	d.stats.beginFrame()

	d.sampleTicks = 0
	for {
		s, ok := d.queue.Pop()
		if !ok {
			break
		}
		d.stats.samples++
		d.HandleSample(s)
	}
	if n := d.queue.TakeDropped(); n > 0 {
		d.stats.dropped += n
		Logger().Warn("pointer samples dropped", "count", n)
	}

	sw, sh := d.wm.ScreenSize()
	d.cursor = Point{clamp(d.cursor.X, 0, max(sw-1, 0)), clamp(d.cursor.Y, 0, max(sh-1, 0))}
	d.sampleTicks = d.platform.FrameTicks()
	d.HandleSample(PointerSample{X: d.cursor.X, Y: d.cursor.Y, Transition: TransitionMove})
	d.sampleTicks = 0

	d.updateCursor(d.cursor.X, d.cursor.Y)
	d.updateTool(d.cursor.X, d.cursor.Y)

	d.stats.endFrame(d)
}

// HandleSample feeds one sample through the state machine.
func (d *Dispatcher) HandleSample(s PointerSample) {
	d.cursor = Point{s.X, s.Y}

	if c, ok := captured(d.mode); ok {
		if reason := c.stale(d.wm); reason != "" {
			d.abort(c.Window, reason)
		}
	}

	w := WindowAt(d.wm, s.X, s.Y)
	widget := WidgetAt(w, s.X, s.Y)

	switch m := d.mode.(type) {
	case ModeReset:
		d.wm.CloseByClass(ClassTooltip)
		d.tooltip.Reset(d.cursor)
		d.setMode(ModeNormal{})
		d.handleNormal(s, w, widget)
	case ModeNormal:
		d.handleNormal(s, w, widget)
	case ModeWidgetPressed:
		d.handleWidgetPressed(s, w, widget, WidgetRef{m.Window, m.Widget}, false)
	case ModeDropdownActive:
		d.handleWidgetPressed(s, w, widget, WidgetRef{m.Window, m.Widget}, true)
	case ModePositioningWindow:
		d.handlePositioning(s, m)
	case ModeResizing:
		d.handleResizing(s, m)
	case ModeViewportRightDrag:
		d.handleViewportRight(s, m)
	case ModeViewportLeftTool:
		d.handleViewportLeft(s, m)
	case ModeScrollLeftDrag:
		d.handleScroll(s, m, w, widget)
	default:
		d.setMode(ModeNormal{})
	}
}

func (d *Dispatcher) setMode(m Mode) {
	if d.mode == nil || d.mode.State() != m.State() {
		d.stats.transitions++
		Logger().Debug("mode change", "from", stateOf(d.mode), "to", m.State())
	}
	d.mode = m
}

func stateOf(m Mode) InteractionState {
	if m == nil {
		return StateReset
	}
	return m.State()
}

// abort drops the current mode because what it captured in window h is
// gone.
func (d *Dispatcher) abort(h WindowHandle, reason string) {
	Logger().Debug("interaction aborted", "reason", reason, "state", d.mode.State(), "class", h.Class, "number", h.Number)
	d.stats.aborts++
	d.leaveMode()
	d.setMode(ModeNormal{})
}

// leaveMode undoes the side effects of the current mode when it is dropped
// before completing.
func (d *Dispatcher) leaveMode() {
	switch m := d.mode.(type) {
	case ModeViewportRightDrag:
		d.platform.ShowCursor()
	case ModeDropdownActive:
		d.wm.CloseByClass(ClassDropdown)
		if w := d.wm.FindByHandle(m.Window); w != nil && d.pressedVisual {
			w.InvalidateAll()
		}
	case ModeWidgetPressed:
		if w := d.wm.FindByHandle(m.Window); w != nil && d.pressedVisual {
			w.InvalidateAll()
		}
	case ModeScrollLeftDrag:
		if w := d.wm.FindByHandle(m.Window); w != nil {
			ResetScrollPressed(w, m.ScrollIndex)
			w.InvalidateAll()
		}
	}
	d.pressedVisual = false
	d.dropdownStayOpen = false
	d.dropdownMouseUp = false
}

func (d *Dispatcher) playSound(id SoundID, x int) {
	if d.sound != nil {
		d.sound.PlaySound(id, x)
	}
}

// --- Normal ---

func (d *Dispatcher) handleNormal(s PointerSample, w *Window, widget int) {
	switch s.Transition {
	case TransitionMove:
		d.widgetOver(s.X, s.Y, w, widget)
	case TransitionLeftDown:
		d.widgetLeft(s.X, s.Y, w, widget)
	case TransitionRightDown:
		d.closeTooltip()
		if w == nil {
			return
		}
		w = d.wm.BringToFront(w.Handle)
		if w == nil {
			return
		}
		wg, ok := w.Widget(widget)
		if ok && wg.Type == WidgetViewport && d.screen.allowsViewportScroll() {
			d.beginViewportDrag(w, s.X, s.Y)
		}
	}
}

// widgetOver handles hover in Normal mode.
func (d *Dispatcher) widgetOver(x, y int, w *Window, widget int) {
	target := NoTarget
	if w != nil {
		target = WidgetRef{Window: w.Handle, Widget: widget}
	}
	d.overChangeCheck(target)

	if w != nil && widget != NoWidget && w.Widgets[widget].Type == WidgetScroll {
		hit := ClassifyScroll(w, widget, x, y)
		switch hit.Part {
		case ScrollPartNone:
		case ScrollPartView:
			d.fireScroll(EventScrollMouseOver, w, widget, hit)
		default:
			// Bars keep whatever tooltip is showing.
			return
		}
	}
	d.updateTooltip(w, target, x, y)
}

// overChangeCheck redraws flat buttons as the hovered widget changes.
func (d *Dispatcher) overChangeCheck(target WidgetRef) {
	if target.Widget == NoWidget || target == d.over {
		return
	}
	d.invalidateHover(d.over)
	d.over = target
	d.invalidateHover(target)
}

func (d *Dispatcher) invalidateHover(r WidgetRef) {
	w := d.wm.FindByHandle(r.Window)
	if w == nil {
		return
	}
	if wg, ok := w.Widget(r.Widget); ok && wg.Type == WidgetFlatButton {
		w.Invalidate(r.Widget)
	}
}

func (d *Dispatcher) updateTooltip(w *Window, target WidgetRef, x, y int) {
	switch d.tooltip.Update(target, x, y, d.sampleTicks) {
	case TooltipClose:
		d.wm.CloseByClass(ClassTooltip)
	case TooltipOpen:
		text := ""
		if w != nil {
			text = tooltipText(w, target.Widget, x, y)
		}
		if text == "" {
			d.tooltip.Abandon()
			return
		}
		d.wm.OpenTooltip(text, x, y)
	}
}

func (d *Dispatcher) closeTooltip() {
	d.wm.CloseByClass(ClassTooltip)
	d.tooltip.Close()
}

// widgetLeft handles a left press in Normal mode.
func (d *Dispatcher) widgetLeft(x, y int, w *Window, widget int) {
	var h WindowHandle
	if w != nil {
		h = w.Handle
	}
	d.wm.CloseByClass(ClassError)
	d.closeTooltip()
	if w == nil {
		return
	}
	// Closing popups may have closed the window under the pointer.
	w = d.wm.BringToFront(h)
	if w == nil {
		return
	}
	wg, ok := w.Widget(widget)
	if !ok {
		return
	}

	switch wg.Type {
	case WidgetFrame, WidgetResize:
		if w.CanResize() && w.inResizeGrip(x, y, d.cfg.ResizeGrip) {
			d.setMode(ModeResizing{
				Window:       h,
				Widget:       widget,
				WidgetType:   wg.Type,
				DragOrigin:   Point{x, y},
				OriginalSize: Size{w.Width, w.Height},
			})
		}
	case WidgetViewport:
		m := ModeViewportLeftTool{Window: h, LastPoint: Point{x, y}}
		tw := d.toolWindow()
		m.ToolEngaged = tw != nil
		d.setMode(m)
		if tw != nil {
			d.fireTool(EventToolDown, tw, d.tool.Widget, x, y)
		}
	case WidgetCaption:
		d.setMode(ModePositioningWindow{Window: h, Widget: widget, GrabOffset: Point{x - w.X, y - w.Y}})
	case WidgetScroll:
		d.beginScroll(w, widget, x, y)
	default:
		if !w.IsEnabled(widget) || w.IsDisabled(widget) {
			return
		}
		d.playSound(SoundClick1, w.X+(wg.Left+wg.Right)/2)
		d.pressedVisual = true
		d.setMode(ModeWidgetPressed{Window: h, Widget: widget, WidgetType: wg.Type, HoldTicks: 1})
		w.Invalidate(widget)
		d.fireMouseDown(w, widget, x, y)
	}
}

// --- Widget pressed and dropdown ---

func (d *Dispatcher) handleWidgetPressed(s PointerSample, w *Window, widget int, origin WidgetRef, dropdown bool) {
	cw := d.wm.FindByHandle(origin.Window)
	if cw == nil {
		d.abort(origin.Window, "window gone")
		return
	}
	overOrigin := w != nil && w.Handle == origin.Window && widget == origin.Widget

	switch s.Transition {
	case TransitionMove:
		if overOrigin && !w.IsDisabled(widget) {
			if m, ok := d.mode.(ModeWidgetPressed); ok && m.HoldTicks > 0 {
				m.HoldTicks++
				d.mode = m
				if w.HoldRepeat.Has(widget) && m.HoldTicks >= d.cfg.HoldRepeatDelay &&
					m.HoldTicks%d.cfg.HoldRepeatInterval == 0 {
					d.fireMouseDown(w, widget, s.X, s.Y)
				}
			}
			if !d.pressedVisual {
				d.pressedVisual = true
				w.Invalidate(widget)
			}
			return
		}
		if m, ok := d.mode.(ModeWidgetPressed); ok {
			m.HoldTicks = 0
			d.mode = m
		}
		if !dropdown {
			if d.pressedVisual {
				d.pressedVisual = false
				cw.Invalidate(origin.Widget)
			}
			return
		}
		d.highlightDropdown(w, s.X, s.Y)

	case TransitionLeftUp, TransitionRightUp:
		if dropdown {
			d.resolveDropdown(s, w, widget, origin)
			return
		}
		if s.Transition == TransitionRightUp {
			return
		}
		d.setMode(ModeNormal{})
		d.tooltip.Suppress(origin)
		if d.pressedVisual {
			d.pressedVisual = false
			cw.Invalidate(origin.Widget)
		}
		if !overOrigin || w.IsDisabled(widget) {
			return
		}
		wg := w.Widgets[widget]
		d.playSound(SoundClick2, w.X+(wg.Left+wg.Right)/2)
		w.Invalidate(widget)
		d.fireMouseUp(w, widget, s.X, s.Y)
	}
}

// ShowDropdown opens a dropdown for the widget currently being pressed. It is
// meant to be called from an OnMouseDown callback and returns nil when no
// widget press is in progress.
func (d *Dispatcher) ShowDropdown(x, y int, items []DropdownItem, opts DropdownOptions) *Window {
	m, ok := d.mode.(ModeWidgetPressed)
	if !ok {
		return nil
	}
	w := d.wm.OpenDropdown(x, y, items, opts)
	if w == nil {
		return nil
	}
	d.dropdownStayOpen = opts.StayOpen
	d.dropdownMouseUp = false
	d.setMode(ModeDropdownActive{Window: m.Window, Widget: m.Widget, WidgetType: m.WidgetType})
	return w
}

func (d *Dispatcher) highlightDropdown(w *Window, x, y int) {
	dd, ok := DropdownOf(w)
	if !ok {
		return
	}
	i := dd.ItemAt(w, x, y)
	if !dd.Selectable(i) || i == dd.Highlighted {
		return
	}
	dd.Highlighted = i
	w.InvalidateAll()
}

func (d *Dispatcher) resolveDropdown(s PointerSample, w *Window, widget int, origin WidgetRef) {
	index := -1
	if dd, ok := DropdownOf(w); ok {
		index = dd.ItemAt(w, s.X, s.Y)
		if !dd.Selectable(index) {
			d.closeDropdown(origin)
			return
		}
	} else if w != nil && w.Handle == origin.Window && widget == origin.Widget {
		if d.dropdownStayOpen && !d.dropdownMouseUp {
			d.dropdownMouseUp = true
			return
		}
	}
	d.closeDropdown(origin)
	if cw := d.wm.FindByHandle(origin.Window); cw != nil {
		d.fireDropdown(cw, origin.Widget, index)
	}
}

func (d *Dispatcher) closeDropdown(origin WidgetRef) {
	d.wm.CloseByClass(ClassDropdown)
	if d.pressedVisual {
		d.pressedVisual = false
		if cw := d.wm.FindByHandle(origin.Window); cw != nil {
			cw.Invalidate(origin.Widget)
		}
	}
	d.dropdownStayOpen = false
	d.dropdownMouseUp = false
	d.setMode(ModeNormal{})
	d.tooltip.Suppress(origin)
}

// --- Window move and resize ---

func (d *Dispatcher) handlePositioning(s PointerSample, m ModePositioningWindow) {
	d.wm.MoveAndSnap(m.Window, s.X-m.GrabOffset.X, s.Y-m.GrabOffset.Y, d.cfg.WindowSnapProximity)
	if s.Transition != TransitionLeftUp {
		return
	}
	d.setMode(ModeNormal{})
	d.tooltip.Suppress(WidgetRef{m.Window, m.Widget})
	if w := d.wm.FindByHandle(m.Window); w != nil {
		d.fireMoved(w, s.X, s.Y)
	}
}

func (d *Dispatcher) handleResizing(s PointerSample, m ModeResizing) {
	if s.Transition != TransitionMove && s.Transition != TransitionLeftUp {
		return
	}
	w := d.wm.FindByHandle(m.Window)
	if w == nil {
		d.abort(m.Window, "window gone")
		return
	}
	if _, screenH := d.wm.ScreenSize(); s.Y < screenH-2 {
		width := m.OriginalSize.Width + s.X - m.DragOrigin.X
		height := m.OriginalSize.Height + s.Y - m.DragOrigin.Y
		d.wm.Resize(m.Window, width-w.Width, height-w.Height)
	}
	if s.Transition == TransitionLeftUp {
		d.setMode(ModeNormal{})
		d.tooltip.Suppress(WidgetRef{m.Window, m.Widget})
		d.fireMoved(w, s.X, s.Y)
	}
}

// --- Viewports ---

func (d *Dispatcher) beginViewportDrag(w *Window, x, y int) {
	if w.Viewport != nil {
		w.Viewport.CancelScroll()
	}
	d.setMode(ModeViewportRightDrag{Window: w.Handle, DragAnchor: Point{x, y}})
	d.platform.HideCursor()
}

func (d *Dispatcher) handleViewportRight(s PointerSample, m ModeViewportRightDrag) {
	switch s.Transition {
	case TransitionMove:
		w := d.wm.FindByHandle(m.Window)
		if w == nil || w.Viewport == nil {
			d.abort(m.Window, "window gone")
			return
		}
		m.AccumulatedTicks += d.sampleTicks
		dx, dy := s.X-m.DragAnchor.X, s.Y-m.DragAnchor.Y
		if dx != 0 || dy != 0 {
			if w.Flags&FlagNoViewportScroll == 0 {
				m.AccumulatedTicks = panMarkTicks
				w.Viewport.Pan(dx, dy)
				w.InvalidateAll()
			}
			d.platform.WarpCursor(m.DragAnchor.X, m.DragAnchor.Y)
			d.cursor = m.DragAnchor
		}
		d.mode = m
	case TransitionRightUp:
		d.setMode(ModeNormal{})
		d.platform.ShowCursor()
		if m.AccumulatedTicks < d.cfg.RightClickMaxTicks && d.world != nil {
			d.world.RightClick(s.X, s.Y)
		}
	}
}

func (d *Dispatcher) handleViewportLeft(s PointerSample, m ModeViewportLeftTool) {
	switch s.Transition {
	case TransitionMove:
		m.LastPoint = Point{s.X, s.Y}
		d.mode = m
		if tw := d.toolWindow(); tw != nil {
			d.fireTool(EventToolDrag, tw, d.tool.Widget, s.X, s.Y)
		}
	case TransitionLeftUp:
		d.setMode(ModeNormal{})
		if tw := d.toolWindow(); tw != nil {
			d.fireTool(EventToolUp, tw, d.tool.Widget, s.X, s.Y)
		} else if !m.ToolEngaged && d.world != nil {
			d.world.LeftClick(s.X, s.Y)
		}
	}
}

// --- Scroll widgets ---

func (d *Dispatcher) beginScroll(w *Window, widget, x, y int) {
	hit := ClassifyScroll(w, widget, x, y)
	m := ModeScrollLeftDrag{
		Window:      w.Handle,
		Widget:      widget,
		ScrollPart:  hit.Part,
		ScrollIndex: hit.Index,
		GrabPoint:   Point{x, y},
	}
	if hit.Index >= 0 {
		m.GrabOffset = scrollOffset(&w.Scrolls[hit.Index], hit.Part)
	}
	d.setMode(m)
	switch hit.Part {
	case ScrollPartNone:
	case ScrollPartView:
		d.fireScroll(EventScrollMouseDown, w, widget, hit)
	default:
		ApplyScrollClick(w, widget, hit.Part, d.cfg.ScrollStep)
		w.Invalidate(widget)
	}
}

func (d *Dispatcher) handleScroll(s PointerSample, m ModeScrollLeftDrag, w *Window, widget int) {
	cw := d.wm.FindByHandle(m.Window)
	if cw == nil {
		d.abort(m.Window, "window gone")
		return
	}
	switch s.Transition {
	case TransitionMove:
		d.scrollContinue(s, m, cw, w, widget)
	case TransitionLeftUp:
		d.setMode(ModeNormal{})
		ResetScrollPressed(cw, m.ScrollIndex)
		cw.Invalidate(m.Widget)
	}
}

func (d *Dispatcher) scrollContinue(s PointerSample, m ModeScrollLeftDrag, cw, w *Window, widget int) {
	if m.ScrollPart == ScrollPartHThumb || m.ScrollPart == ScrollPartVThumb {
		if m.ScrollIndex < 0 {
			return
		}
		setScrollOffset(&cw.Scrolls[m.ScrollIndex], m.ScrollPart, m.GrabOffset)
		ApplyThumbDrag(cw, m.Widget, m.ScrollPart, m.GrabPoint, Point{s.X, s.Y})
		cw.Invalidate(m.Widget)
		return
	}
	if w != cw || widget != m.Widget {
		ResetScrollPressed(cw, m.ScrollIndex)
		cw.Invalidate(m.Widget)
		return
	}
	hit := ClassifyScroll(w, widget, s.X, s.Y)
	if hit.Part != m.ScrollPart {
		ResetScrollPressed(cw, m.ScrollIndex)
		cw.Invalidate(m.Widget)
		return
	}
	switch hit.Part {
	case ScrollPartView:
		d.fireScroll(EventScrollMouseDrag, w, widget, hit)
	case ScrollPartHLeft, ScrollPartHRight, ScrollPartVTop, ScrollPartVBottom:
		ApplyScrollClick(w, widget, hit.Part, d.cfg.ScrollStep)
		w.Invalidate(widget)
	}
}

// --- Tools ---

// SetTool activates a tool owned by widget of window h, cancelling any
// active tool first.
func (d *Dispatcher) SetTool(h WindowHandle, widget int, cursor CursorID) {
	d.CancelTool()
	d.tool = ToolState{Active: true, Window: h, Widget: widget, Cursor: cursor}
	if w := d.wm.FindByHandle(h); w != nil {
		w.Invalidate(widget)
	}
}

// CancelTool deactivates the active tool and notifies its window.
func (d *Dispatcher) CancelTool() {
	if !d.tool.Active {
		return
	}
	t := d.tool
	d.tool = ToolState{Window: NoWindow, Widget: NoWidget}
	Logger().Debug("tool cancelled", "class", t.Window.Class, "number", t.Window.Number)
	if w := d.wm.FindByHandle(t.Window); w != nil {
		w.Invalidate(t.Widget)
		d.fireTool(EventToolAbort, w, t.Widget, d.cursor.X, d.cursor.Y)
	}
}

// ActiveToolWindow returns the window owning the active tool.
func (d *Dispatcher) ActiveToolWindow() (WindowHandle, bool) {
	if !d.tool.Active {
		return NoWindow, false
	}
	return d.tool.Window, true
}

// Tool returns the active tool state.
func (d *Dispatcher) Tool() ToolState { return d.tool }

// toolWindow resolves the active tool's window, cancelling the tool when the
// window is gone.
func (d *Dispatcher) toolWindow() *Window {
	if !d.tool.Active {
		return nil
	}
	w := d.wm.FindByHandle(d.tool.Window)
	if w == nil {
		Logger().Debug("tool window gone", "class", d.tool.Window.Class, "number", d.tool.Window.Number)
		d.tool = ToolState{Window: NoWindow, Widget: NoWidget}
	}
	return w
}

// updateTool sends the hover position to the active tool.
func (d *Dispatcher) updateTool(x, y int) {
	if tw := d.toolWindow(); tw != nil {
		d.fireTool(EventToolUpdate, tw, d.tool.Widget, x, y)
	}
}

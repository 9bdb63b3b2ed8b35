// Package casement is the input core of a retained-mode game windowing
// system for [Ebitengine].
//
// Casement turns raw pointer and keyboard samples into window manipulation
// (move, resize, viewport pan, scrolling), widget interaction (press,
// release, hover, tooltips, dropdowns) and tool-mode operations on world
// viewports. Drawing is left to the host.
//
// # Quick start
//
// Build a [WindowList], a [Dispatcher] and an [EbitenPlatform], then drive
// them from your [ebiten.Game]:
//
//	windows := casement.NewWindowList(640, 480)
//	platform := casement.NewEbitenPlatform()
//	input := casement.NewDispatcher(windows, platform)
//
//	func (g *Game) Update() error {
//		g.platform.Capture(g.input)
//		g.input.ProcessFrame()
//		g.input.ProcessKeyboard()
//		g.windows.Update(float32(g.platform.FrameTicks()))
//		return nil
//	}
//
// # Windows and widgets
//
// A [Window] is a rectangle holding an ordered list of [Widget] values. The
// widget type decides what a left press does: captions drag the window, the
// bottom-right grip of a resizable frame resizes it, viewports pan or run the
// active tool, scroll widgets scroll, and enabled buttons fire
// [Window.OnMouseDown] and [Window.OnMouseUp]. Windows are always referenced
// by [WindowHandle] and resolved again on every sample, so closing a window
// in the middle of a drag is safe.
//
// # Interaction modes
//
// The [Dispatcher] is a state machine whose current [Mode] is one of
// [ModeNormal], [ModeWidgetPressed], [ModePositioningWindow],
// [ModeResizing], [ModeViewportRightDrag], [ModeViewportLeftTool],
// [ModeScrollLeftDrag] and [ModeDropdownActive]. Each frame,
// [Dispatcher.ProcessFrame] drains queued samples and then replays a move at
// the last cursor position so hover, tooltips and tools see the pointer
// even when it is still.
//
// # Keyboard
//
// [Dispatcher.ProcessKeyboard] handles edge and arrow-key scrolling and
// routes each key press to exactly one of: the shortcut capture window, a
// playing tutorial, a text input window or the [ShortcutTable].
//
// # Configuration and logging
//
// Thresholds live in [Config], loaded from TOML with [LoadConfig]. Logging
// goes through [log/slog] and is silent until [SetLogger] is called.
//
// # ECS integration
//
// Every callback is also delivered as an [InteractionEvent] to an optional
// [EventSink]. The casement/ecs module adapts this to a [Donburi] world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package casement

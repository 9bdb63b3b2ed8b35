package casement

// Point is an integer screen or window-relative position.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// WindowClass is the enumerated kind of a window.
type WindowClass uint8

const (
	ClassMain           WindowClass = iota // full-screen world view
	ClassTopToolbar                        // top tool bar
	ClassBottomToolbar                     // bottom status bar
	ClassTooltip                           // tooltip popup
	ClassDropdown                          // dropdown popup menu
	ClassError                             // error message box
	ClassTextInput                         // modal text prompt
	ClassChangeShortcut                    // "press a key" shortcut capture prompt
	ClassShortcutList                      // keyboard shortcut list
	ClassViewport                          // extra world viewport
	ClassMapTooltip                        // map hover tooltip
)

// ClassUser is the first class value available to application windows.
const ClassUser WindowClass = 64

// ClassNone marks an empty WindowHandle.
const ClassNone WindowClass = 255

// WindowNumber disambiguates windows sharing a class.
type WindowNumber uint16

// WindowHandle is a weak reference to a window. It must be resolved through
// WindowManager.FindByHandle each time it is used; the window may have closed
// since the handle was taken.
type WindowHandle struct {
	Class  WindowClass
	Number WindowNumber
}

// NoWindow is the empty handle.
var NoWindow = WindowHandle{Class: ClassNone}

// Valid reports whether h names a window class.
func (h WindowHandle) Valid() bool { return h.Class != ClassNone }

// NoWidget is the widget index meaning "no widget".
const NoWidget = -1

// WidgetRef identifies one widget of one window by handle and index.
type WidgetRef struct {
	Window WindowHandle
	Widget int
}

// NoTarget is the empty WidgetRef.
var NoTarget = WidgetRef{Window: NoWindow, Widget: NoWidget}

// Valid reports whether r names both a window and a widget.
func (r WidgetRef) Valid() bool { return r.Window.Valid() && r.Widget >= 0 }

// Transition is the button transition carried by a PointerSample.
type Transition uint8

const (
	TransitionMove      Transition = iota // pointer moved, no button change
	TransitionLeftDown                    // left button pressed
	TransitionLeftUp                      // left button released
	TransitionRightDown                   // right button pressed
	TransitionRightUp                     // right button released
)

var transitionNames = [...]string{"move", "left-down", "left-up", "right-down", "right-up"}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return "unknown"
}

// PointerSample is one raw pointer event produced by the platform.
type PointerSample struct {
	X, Y       int
	Transition Transition
}

// InteractionState is the tag of the dispatcher's current Mode.
type InteractionState uint8

const (
	StateReset InteractionState = iota
	StateNormal
	StateWidgetPressed
	StatePositioningWindow
	StateViewportRight
	StateDropdownActive
	StateViewportLeft
	StateScrollLeft
	StateResizing
)

var stateNames = [...]string{
	"reset", "normal", "widget-pressed", "positioning-window", "viewport-right",
	"dropdown-active", "viewport-left", "scroll-left", "resizing",
}

func (s InteractionState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// WidgetType selects how the dispatcher treats a press on a widget.
type WidgetType uint8

const (
	WidgetEmpty          WidgetType = iota // placeholder, never hit
	WidgetFrame                            // window background
	WidgetResize                           // background with a resize grip
	WidgetButton                           // push button
	WidgetFlatButton                       // button drawn raised only while hovered
	WidgetImageButton                      // image push button
	WidgetTab                              // tab header
	WidgetCaption                          // title bar, drags the window
	WidgetCloseBox                         // close button
	WidgetViewport                         // world view
	WidgetScroll                           // scrollable list area
	WidgetCheckbox                         // check box
	WidgetDropdownButton                   // button that opens a dropdown
	WidgetSpinner                          // numeric spinner
	WidgetLabel                            // static text
)

// WindowFlags is a bitmask of window behaviors.
type WindowFlags uint16

const (
	FlagStickToBack      WindowFlags = 1 << iota // always below other windows
	FlagStickToFront                             // always above other windows
	FlagNoViewportScroll                         // viewport ignores drag and edge scrolling
	FlagTransparent                              // drawn without background
	FlagResizable                                // resize grip is active
	FlagHidden                                   // not drawn and not hit-testable
	FlagPassThrough                              // drawn but never hit-tested (tooltips)
	FlagModal                                    // blocks hit testing of windows below
)

// ScrollFlags holds scrollbar visibility and pressed bits for one scroll region.
type ScrollFlags uint16

const (
	HScrollVisible ScrollFlags = 1 << iota
	HThumbPressed
	HLeftPressed
	HRightPressed
	VScrollVisible
	VThumbPressed
	VUpPressed
	VDownPressed
)

const scrollVisibleMask = HScrollVisible | VScrollVisible

// ScreenFlags describes the game screen the input core is running under.
type ScreenFlags uint8

const (
	ScreenTitleDemo ScreenFlags = 1 << iota
	ScreenScenarioEditor
	ScreenTrackDesigner
	ScreenTrackManager
)

// allowsViewportScroll reports whether the world view may be panned by
// right-drag, edge scrolling or arrow keys.
func (f ScreenFlags) allowsViewportScroll() bool {
	return f&(ScreenTitleDemo|ScreenTrackManager) == 0
}

// KeyModifiers is a bitmask of keyboard modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
)

// WidgetSet is a fixed-size bitset indexed by widget position. Indices outside
// [0, 64) are never members.
type WidgetSet uint64

// Has reports whether widget i is in the set.
func (s WidgetSet) Has(i int) bool {
	return i >= 0 && i < 64 && s&(1<<uint(i)) != 0
}

// Set adds widget i to the set.
func (s *WidgetSet) Set(i int) {
	if i >= 0 && i < 64 {
		*s |= 1 << uint(i)
	}
}

// Clear removes widget i from the set.
func (s *WidgetSet) Clear(i int) {
	if i >= 0 && i < 64 {
		*s &^= 1 << uint(i)
	}
}

// WidgetSetOf builds a set from widget indices.
func WidgetSetOf(indices ...int) WidgetSet {
	var s WidgetSet
	for _, i := range indices {
		s.Set(i)
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package casement

// DropdownItem is one entry of a dropdown menu. An empty Label is a
// separator.
type DropdownItem struct {
	Label    string
	Disabled bool
}

// DropdownOptions controls dropdown layout and release behavior.
type DropdownOptions struct {
	ItemWidth  int
	ItemHeight int
	// Columns lays items out in a grid; zero means one column.
	Columns int
	// StayOpen keeps the dropdown open after the first release over the
	// widget that opened it, so a plain click opens it.
	StayOpen bool
}

const (
	dropdownBorder        = 2
	defaultDropdownWidth  = 120
	defaultDropdownHeight = 10
)

// Dropdown is the content of a ClassDropdown window, stored in its UserData.
type Dropdown struct {
	Items       []DropdownItem
	ItemWidth   int
	ItemHeight  int
	Columns     int
	Highlighted int
}

func newDropdown(items []DropdownItem, opts DropdownOptions) *Dropdown {
	dd := &Dropdown{
		Items:       items,
		ItemWidth:   opts.ItemWidth,
		ItemHeight:  opts.ItemHeight,
		Columns:     opts.Columns,
		Highlighted: -1,
	}
	if dd.ItemWidth <= 0 {
		dd.ItemWidth = defaultDropdownWidth
	}
	if dd.ItemHeight <= 0 {
		dd.ItemHeight = defaultDropdownHeight
	}
	if dd.Columns <= 0 {
		dd.Columns = 1
	}
	return dd
}

// Rows returns the number of item rows.
func (dd *Dropdown) Rows() int {
	return (len(dd.Items) + dd.Columns - 1) / dd.Columns
}

// size returns the popup window size including its border.
func (dd *Dropdown) size() (int, int) {
	return dd.Columns*dd.ItemWidth + 2*dropdownBorder,
		dd.Rows()*dd.ItemHeight + 2*dropdownBorder
}

// ItemAt returns the index of the item under the screen point, or -1.
func (dd *Dropdown) ItemAt(w *Window, x, y int) int {
	top := y - w.Y - dropdownBorder
	left := x - w.X - dropdownBorder
	if top < 0 || left < 0 || x >= w.X+w.Width {
		return -1
	}
	col := left / dd.ItemWidth
	if col >= dd.Columns {
		return -1
	}
	i := (top/dd.ItemHeight)*dd.Columns + col
	if i >= len(dd.Items) {
		return -1
	}
	return i
}

// Selectable reports whether item i can be chosen.
func (dd *Dropdown) Selectable(i int) bool {
	if i < 0 || i >= len(dd.Items) {
		return false
	}
	it := dd.Items[i]
	return it.Label != "" && !it.Disabled
}

// DropdownOf returns the dropdown content of a ClassDropdown window.
func DropdownOf(w *Window) (*Dropdown, bool) {
	if w == nil || w.Handle.Class != ClassDropdown {
		return nil, false
	}
	dd, ok := w.UserData.(*Dropdown)
	return dd, ok
}

package casement

// ScrollPart identifies the part of a scroll widget under the pointer.
type ScrollPart int

const (
	ScrollPartNone ScrollPart = iota - 1
	ScrollPartView
	ScrollPartHLeft
	ScrollPartHRight
	ScrollPartHLeftTrough
	ScrollPartHRightTrough
	ScrollPartHThumb
	ScrollPartVTop
	ScrollPartVBottom
	ScrollPartVTopTrough
	ScrollPartVBottomTrough
	ScrollPartVThumb
)

// Scrollbar metrics in pixels.
const (
	scrollBarSize    = 11 // bar thickness
	scrollButtonSize = 10 // arrow button length
	minThumbSize     = 20
)

// DefaultScrollStep is the offset change for one arrow-button click.
const DefaultScrollStep = 3

// ScrollHit is the result of classifying a point over a scroll widget.
type ScrollHit struct {
	Part ScrollPart
	// Index is the scroll region owned by the widget.
	Index int
	// X and Y are content coordinates, set for ScrollPartView only.
	X, Y int
}

// scrollTarget resolves the widget and region for a scroll widget.
func scrollTarget(w *Window, widget int) (Widget, *ScrollRegion, int) {
	idx := w.ScrollIndex(widget)
	if idx < 0 {
		return Widget{}, nil, -1
	}
	return w.Widgets[widget], &w.Scrolls[idx], idx
}

// viewWidth is the number of content pixels visible horizontally.
func viewWidth(wg Widget, r *ScrollRegion) int {
	v := wg.Right - wg.Left - 1
	if r.Flags&VScrollVisible != 0 {
		v -= scrollBarSize
	}
	return max(v, 0)
}

// viewHeight is the number of content pixels visible vertically.
func viewHeight(wg Widget, r *ScrollRegion) int {
	v := wg.Bottom - wg.Top - 1
	if r.Flags&HScrollVisible != 0 {
		v -= scrollBarSize
	}
	return max(v, 0)
}

// hBarEnd is the last widget-relative column of the horizontal bar.
func hBarEnd(wg Widget, r *ScrollRegion) int {
	end := wg.Right - wg.Left
	if r.Flags&VScrollVisible != 0 {
		end -= scrollBarSize
	}
	return end
}

// vBarEnd is the last widget-relative row of the vertical bar.
func vBarEnd(wg Widget, r *ScrollRegion) int {
	end := wg.Bottom - wg.Top
	if r.Flags&HScrollVisible != 0 {
		end -= scrollBarSize
	}
	return end
}

// trackLength is the thumb track length between the two arrow buttons of a
// bar ending at barEnd.
func trackLength(barEnd int) int {
	return max(barEnd-2*scrollButtonSize+1, 0)
}

// thumbGeometry returns the thumb position within the track and its length.
func thumbGeometry(track, view, content, offset int) (int, int) {
	if content <= view || track <= 0 {
		return 0, track
	}
	length := clamp(track*view/content, min(minThumbSize, track), track)
	pos := (track - length) * offset / (content - view)
	return clamp(pos, 0, track-length), length
}

// ClassifyScroll reports which part of scroll widget widget lies under the
// screen point (x, y).
func ClassifyScroll(w *Window, widget, x, y int) ScrollHit {
	wg, r, idx := scrollTarget(w, widget)
	hit := ScrollHit{Part: ScrollPartNone, Index: idx}
	if r == nil {
		return hit
	}
	lx, ly := x-w.X-wg.Left, y-w.Y-wg.Top
	inHBar := r.Flags&HScrollVisible != 0 && ly > wg.Bottom-wg.Top-scrollBarSize
	inVBar := r.Flags&VScrollVisible != 0 && lx > wg.Right-wg.Left-scrollBarSize

	switch {
	case inHBar && inVBar:
		// Corner square between the bars.
	case inHBar:
		end := hBarEnd(wg, r)
		switch {
		case lx > end:
		case lx < scrollButtonSize:
			hit.Part = ScrollPartHLeft
		case lx > end-scrollButtonSize:
			hit.Part = ScrollPartHRight
		case lx < r.HThumbLeft:
			hit.Part = ScrollPartHLeftTrough
		case lx > r.HThumbRight:
			hit.Part = ScrollPartHRightTrough
		default:
			hit.Part = ScrollPartHThumb
		}
	case inVBar:
		end := vBarEnd(wg, r)
		switch {
		case ly > end:
		case ly < scrollButtonSize:
			hit.Part = ScrollPartVTop
		case ly > end-scrollButtonSize:
			hit.Part = ScrollPartVBottom
		case ly < r.VThumbTop:
			hit.Part = ScrollPartVTopTrough
		case ly > r.VThumbBottom:
			hit.Part = ScrollPartVBottomTrough
		default:
			hit.Part = ScrollPartVThumb
		}
	default:
		hit.Part = ScrollPartView
		hit.X = lx - 1 + r.HLeft
		hit.Y = ly - 1 + r.VTop
	}
	return hit
}

// SetScrollContent sets the content size of scroll widget widget, shows the
// bars the widget asks for, clamps the offsets and recomputes the thumbs.
func SetScrollContent(w *Window, widget, width, height int) {
	wg, r, _ := scrollTarget(w, widget)
	if r == nil {
		return
	}
	r.Flags = r.Flags&^scrollVisibleMask | wg.Bars&scrollVisibleMask
	r.HRight = max(width, 0)
	r.VBottom = max(height, 0)
	r.HLeft = clamp(r.HLeft, 0, max(r.HRight-viewWidth(wg, r), 0))
	r.VTop = clamp(r.VTop, 0, max(r.VBottom-viewHeight(wg, r), 0))
	UpdateThumbs(w, widget)
}

// UpdateThumbs recomputes the thumb geometry of scroll widget widget from its
// content extent, visible extent and offset.
func UpdateThumbs(w *Window, widget int) {
	wg, r, _ := scrollTarget(w, widget)
	if r == nil {
		return
	}
	if r.Flags&HScrollVisible != 0 {
		pos, length := thumbGeometry(trackLength(hBarEnd(wg, r)), viewWidth(wg, r), r.HRight, r.HLeft)
		r.HThumbLeft = scrollButtonSize + pos
		r.HThumbRight = r.HThumbLeft + length - 1
	}
	if r.Flags&VScrollVisible != 0 {
		pos, length := thumbGeometry(trackLength(vBarEnd(wg, r)), viewHeight(wg, r), r.VBottom, r.VTop)
		r.VThumbTop = scrollButtonSize + pos
		r.VThumbBottom = r.VThumbTop + length - 1
	}
}

// ApplyScrollClick applies a press on an arrow button or trough: arrows step
// by step, troughs by the visible extent. The offset stays within
// [0, content-visible] and the part's pressed flag is set.
func ApplyScrollClick(w *Window, widget int, part ScrollPart, step int) {
	wg, r, _ := scrollTarget(w, widget)
	if r == nil {
		return
	}
	maxH := max(r.HRight-viewWidth(wg, r), 0)
	maxV := max(r.VBottom-viewHeight(wg, r), 0)
	switch part {
	case ScrollPartHLeft:
		r.HLeft = clamp(r.HLeft-step, 0, maxH)
		r.Flags |= HLeftPressed
	case ScrollPartHRight:
		r.HLeft = clamp(r.HLeft+step, 0, maxH)
		r.Flags |= HRightPressed
	case ScrollPartHLeftTrough:
		r.HLeft = clamp(r.HLeft-viewWidth(wg, r), 0, maxH)
	case ScrollPartHRightTrough:
		r.HLeft = clamp(r.HLeft+viewWidth(wg, r), 0, maxH)
	case ScrollPartHThumb:
		r.Flags |= HThumbPressed
	case ScrollPartVTop:
		r.VTop = clamp(r.VTop-step, 0, maxV)
		r.Flags |= VUpPressed
	case ScrollPartVBottom:
		r.VTop = clamp(r.VTop+step, 0, maxV)
		r.Flags |= VDownPressed
	case ScrollPartVTopTrough:
		r.VTop = clamp(r.VTop-viewHeight(wg, r), 0, maxV)
	case ScrollPartVBottomTrough:
		r.VTop = clamp(r.VTop+viewHeight(wg, r), 0, maxV)
	case ScrollPartVThumb:
		r.Flags |= VThumbPressed
	default:
		return
	}
	UpdateThumbs(w, widget)
}

// ApplyThumbDrag moves the offset by the pointer travel from -> to along the
// thumb's axis, scaled so the thumb follows the pointer.
func ApplyThumbDrag(w *Window, widget int, part ScrollPart, from, to Point) {
	wg, r, _ := scrollTarget(w, widget)
	if r == nil {
		return
	}
	switch part {
	case ScrollPartHThumb:
		r.HLeft = dragOffset(r.HLeft, to.X-from.X, trackLength(hBarEnd(wg, r)), viewWidth(wg, r), r.HRight)
	case ScrollPartVThumb:
		r.VTop = dragOffset(r.VTop, to.Y-from.Y, trackLength(vBarEnd(wg, r)), viewHeight(wg, r), r.VBottom)
	default:
		return
	}
	UpdateThumbs(w, widget)
}

func dragOffset(offset, delta, track, view, content int) int {
	maxOffset := max(content-view, 0)
	_, length := thumbGeometry(track, view, content, offset)
	movable := track - length
	if movable <= 0 || maxOffset == 0 {
		return clamp(offset, 0, maxOffset)
	}
	return clamp(offset+delta*maxOffset/movable, 0, maxOffset)
}

// ResetScrollPressed clears every pressed bit of scroll region idx, keeping
// the visibility bits.
func ResetScrollPressed(w *Window, idx int) {
	if idx < 0 || idx >= MaxScrolls {
		return
	}
	w.Scrolls[idx].Flags &= scrollVisibleMask
}

// scrollOffset returns the offset on the thumb's axis.
func scrollOffset(r *ScrollRegion, part ScrollPart) int {
	if part == ScrollPartVThumb {
		return r.VTop
	}
	return r.HLeft
}

// setScrollOffset overwrites the offset on the thumb's axis.
func setScrollOffset(r *ScrollRegion, part ScrollPart, v int) {
	if part == ScrollPartVThumb {
		r.VTop = v
	} else {
		r.HLeft = v
	}
}

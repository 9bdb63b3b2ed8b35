package casement

import "testing"

func TestEventsMirrorCallbacks(t *testing.T) {
	r := newRig()
	w := r.wl.Add(testWindow(3, 100, 100))
	r.frame(leftDown(120, 125), leftUp(122, 127))

	want := []InteractionEvent{
		{Type: EventMouseDown, Window: w.Handle, Widget: twButton, X: 120, Y: 125},
		{Type: EventMouseUp, Window: w.Handle, Widget: twButton, X: 122, Y: 127},
	}
	if len(r.sink.events) != len(want) {
		t.Fatalf("events = %+v", r.sink.events)
	}
	for i := range want {
		if r.sink.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, r.sink.events[i], want[i])
		}
	}
}

func TestEventsWithoutSink(t *testing.T) {
	r := newRig()
	r.d.SetEventSink(nil)
	w := r.wl.Add(testWindow(1, 100, 100))
	var ups int
	w.OnMouseUp = func(WidgetContext) { ups++ }
	r.frame(leftDown(120, 125), leftUp(120, 125))
	if ups != 1 {
		t.Errorf("OnMouseUp calls = %d, want 1", ups)
	}
}

func TestDropdownEventIndex(t *testing.T) {
	r := newRig()
	dropdownWindow(r, DropdownOptions{ItemWidth: 80, ItemHeight: 10})
	r.frame(leftDown(230, 145))
	r.frame(leftUp(250, 190))
	var got []InteractionEvent
	for _, e := range r.sink.events {
		if e.Type == EventDropdown {
			got = append(got, e)
		}
	}
	if len(got) != 1 || got[0].Index != 3 || got[0].Widget != twDropdown {
		t.Errorf("dropdown events = %+v", got)
	}
}

func TestTooltipText(t *testing.T) {
	w := testWindow(1, 0, 0)
	if s := tooltipText(w, twButton, 0, 0); s != "Press me" {
		t.Errorf("static tooltip = %q", s)
	}
	if s := tooltipText(w, NoWidget, 0, 0); s != "" {
		t.Errorf("no-widget tooltip = %q", s)
	}
	w.OnTooltip = func(ctx WidgetContext) string {
		if ctx.Widget == twButton {
			return "Dynamic"
		}
		return ""
	}
	if s := tooltipText(w, twButton, 0, 0); s != "Dynamic" {
		t.Errorf("callback tooltip = %q", s)
	}
	if s := tooltipText(w, twRepeat, 0, 0); s != "" {
		t.Errorf("fallback tooltip = %q", s)
	}
}

func TestWidgetCursorDefault(t *testing.T) {
	w := testWindow(1, 0, 0)
	if c := widgetCursor(w, twButton, 0, 0); c != CursorArrow {
		t.Errorf("cursor = %v, want arrow", c)
	}
}

type soundLog struct{ played []SoundID }

func (s *soundLog) PlaySound(id SoundID, _ int) { s.played = append(s.played, id) }

func TestClickSounds(t *testing.T) {
	r := newRig()
	snd := &soundLog{}
	r.d.SetSoundPlayer(snd)
	r.wl.Add(testWindow(1, 100, 100))

	r.frame(leftDown(120, 125), leftUp(120, 125))
	if len(snd.played) != 2 || snd.played[0] != SoundClick1 || snd.played[1] != SoundClick2 {
		t.Errorf("sounds = %v, want [click1 click2]", snd.played)
	}

	snd.played = nil
	r.frame(leftDown(120, 125), leftUp(400, 400))
	if len(snd.played) != 1 {
		t.Errorf("sounds = %v, want press sound only", snd.played)
	}
}

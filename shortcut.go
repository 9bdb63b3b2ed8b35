package casement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrUnknownKey is returned when a key combo names no ebiten key.
	ErrUnknownKey = errors.New("casement: unknown key")
	// ErrUnknownAction is returned when a binding names no registered action.
	ErrUnknownAction = errors.New("casement: unknown shortcut action")
)

// KeyCombo is a key together with the modifiers held when it was pressed.
type KeyCombo struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
}

// String formats the combo as "ctrl+shift+Key".
func (c KeyCombo) String() string {
	var b strings.Builder
	if c.Modifiers&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if c.Modifiers&ModShift != 0 {
		b.WriteString("shift+")
	}
	b.WriteString(c.Key.String())
	return b.String()
}

// ParseKeyCombo parses combos such as "Z", "shift+F1" or "ctrl+shift+S".
// Modifier names are case-insensitive; key names follow ebiten.Key.
func ParseKeyCombo(s string) (KeyCombo, error) {
	parts := strings.Split(s, "+")
	var c KeyCombo
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "shift":
			c.Modifiers |= ModShift
		case "ctrl", "control":
			c.Modifiers |= ModCtrl
		default:
			return KeyCombo{}, fmt.Errorf("%w: modifier %q in %q", ErrUnknownKey, p, s)
		}
	}
	name := strings.TrimSpace(parts[len(parts)-1])
	if err := c.Key.UnmarshalText([]byte(name)); err != nil || name == "" {
		return KeyCombo{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	return c, nil
}

type shortcut struct {
	name  string
	fn    func()
	combo KeyCombo
	bound bool
}

// ShortcutTable maps key combos to named actions. Actions keep their
// registration order; each action has at most one binding and each combo
// triggers at most one action.
type ShortcutTable struct {
	actions []shortcut
}

// NewShortcutTable returns an empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{}
}

// Register adds an action, or replaces the function of an existing one, and
// returns its index.
func (t *ShortcutTable) Register(name string, fn func()) int {
	if i := t.index(name); i >= 0 {
		t.actions[i].fn = fn
		return i
	}
	t.actions = append(t.actions, shortcut{name: name, fn: fn})
	return len(t.actions) - 1
}

func (t *ShortcutTable) index(name string) int {
	for i := range t.actions {
		if t.actions[i].name == name {
			return i
		}
	}
	return -1
}

// Len returns the number of registered actions.
func (t *ShortcutTable) Len() int { return len(t.actions) }

// Action returns the name of action i.
func (t *ShortcutTable) Action(i int) (string, bool) {
	if i < 0 || i >= len(t.actions) {
		return "", false
	}
	return t.actions[i].name, true
}

// Binding returns the combo bound to the named action.
func (t *ShortcutTable) Binding(name string) (KeyCombo, bool) {
	i := t.index(name)
	if i < 0 || !t.actions[i].bound {
		return KeyCombo{}, false
	}
	return t.actions[i].combo, true
}

// Bind binds combo to the named action.
func (t *ShortcutTable) Bind(name string, combo KeyCombo) error {
	i := t.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	t.Rebind(i, combo)
	return nil
}

// Rebind binds combo to action i, removing the combo from any other action.
func (t *ShortcutTable) Rebind(i int, combo KeyCombo) bool {
	if i < 0 || i >= len(t.actions) {
		return false
	}
	for j := range t.actions {
		if t.actions[j].bound && t.actions[j].combo == combo {
			t.actions[j].bound = false
		}
	}
	t.actions[i].combo = combo
	t.actions[i].bound = true
	return true
}

// Unbind removes the binding of the named action.
func (t *ShortcutTable) Unbind(name string) {
	if i := t.index(name); i >= 0 {
		t.actions[i].bound = false
	}
}

// Handle runs the action bound to combo and reports whether one was found.
func (t *ShortcutTable) Handle(combo KeyCombo) bool {
	for _, a := range t.actions {
		if a.bound && a.combo == combo {
			if a.fn != nil {
				a.fn()
			}
			return true
		}
	}
	return false
}

// LoadBindings applies action-to-combo strings, as stored in Config.
func (t *ShortcutTable) LoadBindings(bindings map[string]string) error {
	var errs []error
	for name, s := range bindings {
		combo, err := ParseKeyCombo(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := t.Bind(name, combo); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bindings returns the current bindings as action-to-combo strings.
func (t *ShortcutTable) Bindings() map[string]string {
	m := make(map[string]string, len(t.actions))
	for _, a := range t.actions {
		if a.bound {
			m[a.name] = a.combo.String()
		}
	}
	return m
}

package casement

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable thresholds of the input core. All durations are
// in ticks (milliseconds).
type Config struct {
	// WindowSnapProximity is the distance in pixels within which a dragged
	// window snaps to screen and window edges. Zero disables snapping.
	WindowSnapProximity int  `toml:"window_snap_proximity"`
	EdgeScrolling       bool `toml:"edge_scrolling"`
	// EdgeScrollStep is the world distance per frame at zoom 0 for edge and
	// arrow-key scrolling.
	EdgeScrollStep int `toml:"edge_scroll_step"`

	TooltipDelay      int `toml:"tooltip_delay"`
	TooltipQuickDelay int `toml:"tooltip_quick_delay"`
	// TooltipRecent is how soon after a tooltip closes the quick delay
	// applies.
	TooltipRecent     int `toml:"tooltip_recent"`
	TooltipMaxDisplay int `toml:"tooltip_max_display"`
	TooltipFade       int `toml:"tooltip_fade"`

	// RightClickMaxTicks is the longest right press on a viewport that still
	// counts as a click rather than a pan.
	RightClickMaxTicks int `toml:"right_click_max_ticks"`
	ScrollStep         int `toml:"scroll_step"`
	HoldRepeatDelay    int `toml:"hold_repeat_delay"`
	HoldRepeatInterval int `toml:"hold_repeat_interval"`
	ResizeGrip         int `toml:"resize_grip"`

	// Shortcuts maps action names to key combos such as "ctrl+shift+Z".
	Shortcuts map[string]string `toml:"shortcuts"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		WindowSnapProximity: 16,
		EdgeScrolling:       true,
		EdgeScrollStep:      12,
		TooltipDelay:        2000,
		TooltipQuickDelay:   0,
		TooltipRecent:       1000,
		TooltipMaxDisplay:   8000,
		TooltipFade:         150,
		RightClickMaxTicks:  500,
		ScrollStep:          DefaultScrollStep,
		HoldRepeatDelay:     16,
		HoldRepeatInterval:  4,
		ResizeGrip:          19,
	}
}

// ParseConfig decodes TOML data over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("casement: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("casement: load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	Logger().Debug("config loaded", "path", path, "shortcuts", len(cfg.Shortcuts))
	return cfg, nil
}

// Write encodes the configuration as TOML.
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("casement: write config: %w", err)
	}
	return nil
}

// Validate reports every out-of-range setting.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}
	check("window_snap_proximity", c.WindowSnapProximity)
	check("edge_scroll_step", c.EdgeScrollStep)
	check("tooltip_delay", c.TooltipDelay)
	check("tooltip_quick_delay", c.TooltipQuickDelay)
	check("tooltip_recent", c.TooltipRecent)
	check("tooltip_max_display", c.TooltipMaxDisplay)
	check("tooltip_fade", c.TooltipFade)
	check("right_click_max_ticks", c.RightClickMaxTicks)
	check("scroll_step", c.ScrollStep)
	check("hold_repeat_delay", c.HoldRepeatDelay)
	check("resize_grip", c.ResizeGrip)
	if c.HoldRepeatInterval <= 0 {
		errs = append(errs, fmt.Errorf("hold_repeat_interval must be positive, got %d", c.HoldRepeatInterval))
	}
	if len(errs) > 0 {
		return fmt.Errorf("casement: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

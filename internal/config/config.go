// Package config provides YAML-based configuration loading for the quest:
// tick rate, key bindings, console behavior, player tuning and levels.
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/vovakirdan/tui-quest/internal/console"
	"github.com/vovakirdan/tui-quest/internal/input"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete quest configuration.
type Config struct {
	TickRate     int                 `yaml:"tick_rate"`
	KeyHoldTicks int                 `yaml:"key_hold_ticks"` // ticks without a repeat before a key counts as released
	Bindings     map[string][]string `yaml:"bindings"`
	Console      ConsoleConfig       `yaml:"console"`
	Player       PlayerConfig        `yaml:"player"`
	Level        string              `yaml:"level"` // custom level path; empty uses the built-in level
}

// ConsoleConfig defines the debug console behavior.
type ConsoleConfig struct {
	Toggle         string        `yaml:"toggle"`
	Capture        bool          `yaml:"capture"` // console swallows keys while open
	Scrollback     int           `yaml:"scrollback"`
	Recall         int           `yaml:"recall"`
	WatchInterval  time.Duration `yaml:"watch_interval"`
	PersistHistory bool          `yaml:"persist_history"`
	Overlay        OverlayConfig `yaml:"overlay"`
}

// OverlayConfig defines what the collapsed console shows.
type OverlayConfig struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowWatched  bool `yaml:"show_watched"`
	ShowDefaults bool `yaml:"show_defaults"`
	MaxWatched   int  `yaml:"max_watched"`
	MaxDefaults  int  `yaml:"max_defaults"`
}

// PlayerConfig defines player tuning.
type PlayerConfig struct {
	Speed           float64       `yaml:"speed"` // tiles per second
	MaxHealth       int           `yaml:"max_health"`
	Invulnerability time.Duration `yaml:"invulnerability"`
}

// Validate checks the configuration and wraps ErrInvalidConfig on failure.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if c.KeyHoldTicks <= 0 {
		return fmt.Errorf("%w: key_hold_ticks must be positive, got %d", ErrInvalidConfig, c.KeyHoldTicks)
	}
	if c.Console.Toggle == "" {
		return fmt.Errorf("%w: console.toggle is empty", ErrInvalidConfig)
	}
	if c.Console.Scrollback <= 0 || c.Console.Recall <= 0 {
		return fmt.Errorf("%w: console capacities must be positive", ErrInvalidConfig)
	}
	if c.Player.Speed <= 0 || c.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player speed and max_health must be positive", ErrInvalidConfig)
	}
	for action, keys := range c.Bindings {
		empty := true
		for _, k := range keys {
			if k != "" {
				empty = false
				break
			}
		}
		if empty {
			return fmt.Errorf("%w: binding %q has no keys", ErrInvalidConfig, action)
		}
	}
	return nil
}

// InputBindings builds the binding table: defaults first, then every
// configured action replaces or extends them.
func (c Config) InputBindings() (*input.Bindings, error) {
	b := input.DefaultBindings()
	for _, action := range slices.Sorted(maps.Keys(c.Bindings)) {
		keys := c.Bindings[action]
		ks := make([]input.Key, len(keys))
		for i, k := range keys {
			ks[i] = input.Key(k)
		}
		if err := b.Bind(input.Action(action), ks...); err != nil {
			return nil, fmt.Errorf("config: binding %q: %w", action, err)
		}
	}
	return b, nil
}

// ConsoleOverlay converts the overlay section for the console package.
func (c Config) ConsoleOverlay() console.OverlayConfig {
	o := c.Console.Overlay
	return console.OverlayConfig{
		ShowFPS:      o.ShowFPS,
		ShowWatched:  o.ShowWatched,
		ShowDefaults: o.ShowDefaults,
		MaxWatched:   o.MaxWatched,
		MaxDefaults:  o.MaxDefaults,
	}
}

// LevelFile is a tile level as stored on disk.
type LevelFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

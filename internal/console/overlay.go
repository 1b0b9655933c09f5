package console

import (
	"fmt"
	"time"
)

// OverlayConfig selects what the collapsed console shows.
type OverlayConfig struct {
	ShowFPS      bool
	ShowWatched  bool
	ShowDefaults bool
	MaxWatched   int
	MaxDefaults  int
}

// Overlay returns the lines shown while the console is hidden: the frame
// rate, up to MaxWatched flagged variables, then up to MaxDefaults of the
// remaining variables in registration order.
func (c *Console) Overlay(cfg OverlayConfig, fps float64) []Line {
	var lines []Line
	if cfg.ShowFPS {
		lines = append(lines, Line{Text: fmt.Sprintf("FPS: %.1f", fps), Color: ColorInfo})
	}

	if cfg.ShowWatched {
		for i, v := range c.watches.Watched() {
			if i >= cfg.MaxWatched {
				break
			}
			lines = append(lines, Line{Text: v.Name + ": " + Format(v.Value), Color: ColorText})
		}
	}

	if cfg.ShowDefaults {
		shown := 0
		for _, v := range c.watches.All() {
			if shown >= cfg.MaxDefaults {
				break
			}
			if v.Watched && cfg.ShowWatched {
				continue
			}
			lines = append(lines, Line{Text: v.Name + ": " + Format(v.Value), Color: ColorText})
			shown++
		}
	}
	return lines
}

// Throttle gates an action to at most once per interval.
type Throttle struct {
	interval time.Duration
	last     time.Time
}

// NewThrottle creates a throttle that is ready immediately.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Ready reports whether the interval has elapsed since the last ready call,
// and if so restarts the interval at now.
func (t *Throttle) Ready(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// BlinkPeriod is the cursor blink half-cycle.
const BlinkPeriod = 500 * time.Millisecond

// CursorOn reports whether the blinking cursor is lit at now.
func CursorOn(now time.Time) bool {
	return (now.UnixNano()/int64(BlinkPeriod))%2 == 0
}

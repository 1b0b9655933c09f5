package tui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slideSeconds is how long the console takes to open or close.
const slideSeconds = 0.18

// consoleSlide animates the console panel height.
type consoleSlide struct {
	open   bool
	height float32
	tween  *gween.Tween
}

// Update follows the console visibility toward target rows.
func (s *consoleSlide) Update(open bool, target int, dt float64) {
	if open != s.open {
		s.open = open
		to := float32(0)
		if open {
			to = float32(target)
		}
		s.tween = gween.New(s.height, to, slideSeconds, ease.OutCubic)
	}

	if s.tween != nil {
		v, done := s.tween.Update(float32(dt))
		s.height = v
		if done {
			s.tween = nil
		}
		return
	}
	if s.open {
		s.height = float32(target)
	}
}

// Rows returns the visible panel height.
func (s *consoleSlide) Rows() int {
	return int(math.Round(float64(s.height)))
}

package game

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tui-quest/internal/core"
)

// DefaultCameraLerp is the follow rate per second.
const DefaultCameraLerp = 8.0

type scrollAnim struct {
	tweenX, tweenY *gween.Tween
	doneX, doneY   bool
}

// Camera is the view into the level. X and Y are the top-left tile of the
// viewport.
type Camera struct {
	X, Y         float64
	ViewW, ViewH int
	Lerp         float64

	scroll *scrollAnim
}

// NewCamera creates a camera with a w by h tile viewport.
func NewCamera(w, h int) *Camera {
	return &Camera{ViewW: w, ViewH: h, Lerp: DefaultCameraLerp}
}

// Resize changes the viewport.
func (c *Camera) Resize(w, h int) {
	c.ViewW, c.ViewH = w, h
}

// CenterOn snaps the camera so target is centered, clamped to the level.
func (c *Camera) CenterOn(target core.Vec2, lvl *Level) {
	c.scroll = nil
	c.X, c.Y = c.clamp(c.goal(target), lvl)
}

// ScrollTo animates the camera so target is centered over duration seconds.
// Following resumes when the animation ends.
func (c *Camera) ScrollTo(target core.Vec2, lvl *Level, duration float32) {
	x, y := c.clamp(c.goal(target), lvl)
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, ease.OutQuad),
		tweenY: gween.New(float32(c.Y), float32(y), duration, ease.OutQuad),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// Follow moves the camera toward centering target, or advances a running
// scroll animation instead.
func (c *Camera) Follow(target core.Vec2, lvl *Level, dt float64) {
	if c.scroll != nil {
		s := c.scroll
		if !s.doneX {
			v, done := s.tweenX.Update(float32(dt))
			c.X, s.doneX = float64(v), done
		}
		if !s.doneY {
			v, done := s.tweenY.Update(float32(dt))
			c.Y, s.doneY = float64(v), done
		}
		if s.doneX && s.doneY {
			c.scroll = nil
		}
		return
	}

	gx, gy := c.clamp(c.goal(target), lvl)
	t := min(1, c.Lerp*dt)
	c.X += (gx - c.X) * t
	c.Y += (gy - c.Y) * t
}

func (c *Camera) goal(target core.Vec2) core.Vec2 {
	return core.Vec2{X: target.X - float64(c.ViewW)/2, Y: target.Y - float64(c.ViewH)/2}
}

// clamp keeps the viewport inside the level; a level smaller than the
// viewport is centered.
func (c *Camera) clamp(p core.Vec2, lvl *Level) (float64, float64) {
	return clampAxis(p.X, lvl.W, c.ViewW), clampAxis(p.Y, lvl.H, c.ViewH)
}

func clampAxis(v float64, size, view int) float64 {
	if size <= view {
		return -float64(view-size) / 2
	}
	return core.ClampF(v, 0, float64(size-view))
}

// Offset returns the rounded top-left tile.
func (c *Camera) Offset() (x, y int) {
	return int(math.Round(c.X)), int(math.Round(c.Y))
}

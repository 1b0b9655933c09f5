package game

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/core"
)

// Player is the controllable hero. Position is in tile units; the occupied
// tile is the position rounded to the nearest cell.
type Player struct {
	Pos       core.Vec2
	Speed     float64 // tiles per second
	Health    int
	MaxHealth int

	invulnFor    time.Duration
	invulnerable float64 // seconds left
	anim         *Animator
}

// NewPlayer creates a player at start with full health.
func NewPlayer(cfg config.PlayerConfig, start core.Vec2) *Player {
	return &Player{
		Pos:       start,
		Speed:     cfg.Speed,
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
		invulnFor: cfg.Invulnerability,
		anim:      NewAnimator(playerClips()...),
	}
}

// Update moves the player along dir for dt seconds with axis-separated
// collision against lvl, then advances timers and animation.
func (p *Player) Update(dir core.Vec2, dt float64, lvl *Level) {
	step := dir.Scale(p.Speed * dt)

	if nx := p.Pos.X + step.X; !lvl.Solid(cell(nx), cell(p.Pos.Y)) {
		p.Pos.X = nx
	} else {
		p.Pos.X = float64(cell(p.Pos.X))
	}
	if ny := p.Pos.Y + step.Y; !lvl.Solid(cell(p.Pos.X), cell(ny)) {
		p.Pos.Y = ny
	} else {
		p.Pos.Y = float64(cell(p.Pos.Y))
	}

	p.invulnerable = max(0, p.invulnerable-dt)
	p.anim.Play(clipFor(dir))
	p.anim.Update(dt)
}

func clipFor(dir core.Vec2) string {
	switch {
	case dir.IsZero():
		return AnimIdle
	case math.Abs(dir.X) > math.Abs(dir.Y):
		if dir.X < 0 {
			return AnimWalkLeft
		}
		return AnimWalkRight
	case dir.Y < 0:
		return AnimWalkUp
	default:
		return AnimWalkDown
	}
}

func cell(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Tile returns the occupied tile.
func (p *Player) Tile() (x, y int) {
	return cell(p.Pos.X), cell(p.Pos.Y)
}

// Damage removes n health unless the player is invulnerable, and reports
// whether it applied.
func (p *Player) Damage(n int) bool {
	if p.invulnerable > 0 || p.Health <= 0 {
		return false
	}
	p.Health = max(0, p.Health-n)
	p.invulnerable = p.invulnFor.Seconds()
	return true
}

// Heal restores full health.
func (p *Player) Heal() {
	p.Health = p.MaxHealth
}

// Teleport moves the player to x, y.
func (p *Player) Teleport(x, y float64) {
	p.Pos = core.Vec2{X: x, Y: y}
}

// Alive reports whether health is above zero.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Invulnerable reports whether damage is currently ignored.
func (p *Player) Invulnerable() bool {
	return p.invulnerable > 0
}

// Anim returns the playing clip name.
func (p *Player) Anim() string {
	return p.anim.Current()
}

// Glyph returns the current sprite frame.
func (p *Player) Glyph() rune {
	return p.anim.Frame()
}

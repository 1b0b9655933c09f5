package game

import (
	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/console"
	"github.com/vovakirdan/tui-quest/internal/core"
)

// Scoring and damage.
const (
	CoinValue    = 10
	SpikesDamage = 1
)

// EndFunc is called once when a run ends.
type EndFunc func(state core.GameState, coins int)

// World owns one run: the level, the player and the camera.
type World struct {
	Level  *Level
	Player *Player
	Camera *Camera

	playerCfg config.PlayerConfig
	state     core.GameState
	onEnd     EndFunc
}

// NewWorld creates a world on lvl with a viewW by viewH tile viewport.
func NewWorld(lvl *Level, playerCfg config.PlayerConfig, viewW, viewH int) *World {
	w := &World{
		Level:     lvl,
		Camera:    NewCamera(viewW, viewH),
		playerCfg: playerCfg,
	}
	w.Reset()
	return w
}

// OnEnd sets the run-end callback.
func (w *World) OnEnd(fn EndFunc) {
	w.onEnd = fn
}

// Reset restarts the run on the same level.
func (w *World) Reset() {
	// validated by NewLevel
	_ = w.Level.Reset()
	w.Player = NewPlayer(w.playerCfg, w.Level.Start())
	w.state = core.GameState{}
	w.Camera.CenterOn(w.Player.Pos, w.Level)
}

// Resize changes the viewport.
func (w *World) Resize(viewW, viewH int) {
	w.Camera.Resize(viewW, viewH)
	w.Camera.CenterOn(w.Player.Pos, w.Level)
}

// Update advances the run by dt seconds with the player moving along dir.
func (w *World) Update(dir core.Vec2, dt float64) {
	if w.state.GameOver {
		return
	}

	w.Player.Update(dir, dt, w.Level)
	x, y := w.Player.Tile()
	switch w.Level.At(x, y) {
	case TileCoin:
		if w.Level.TakeCoin(x, y) {
			w.state.Score += CoinValue
		}
	case TileSpikes:
		w.Player.Damage(SpikesDamage)
	case TileExit:
		w.state.Won = true
		w.end()
		return
	}
	if !w.Player.Alive() {
		w.end()
		return
	}

	w.Camera.Follow(w.Player.Pos, w.Level, dt)
}

func (w *World) end() {
	w.state.GameOver = true
	if w.onEnd != nil {
		taken, _ := w.Level.Coins()
		w.onEnd(w.state, taken)
	}
}

// State returns the run state.
func (w *World) State() core.GameState {
	return w.state
}

// Render draws the visible part of the level into area of dst.
func (w *World) Render(dst *core.Screen, area core.Rect) {
	ox, oy := w.Camera.Offset()
	for sy := range area.H {
		for sx := range area.W {
			tx, ty := ox+sx, oy+sy
			if tx < 0 || ty < 0 || tx >= w.Level.W || ty >= w.Level.H {
				continue
			}
			r, c := w.Level.At(tx, ty).Glyph()
			dst.SetColor(area.X+sx, area.Y+sy, r, c)
		}
	}

	px, py := w.Player.Tile()
	if area.Contains(area.X+px-ox, area.Y+py-oy) {
		color := core.ColorPlayer
		if w.Player.Invulnerable() {
			color = core.ColorHazard
		}
		dst.SetColor(area.X+px-ox, area.Y+py-oy, w.Player.Glyph(), color)
	}
}

// PushWatches publishes the run's values to the console.
func (w *World) PushWatches(ws *console.Watches) {
	taken, total := w.Level.Coins()
	ws.Set("player.pos", w.Player.Pos)
	ws.Set("player.speed", w.Player.Speed)
	ws.Set("player.health", w.Player.Health)
	ws.Set("player.anim", w.Player.Anim())
	ws.Set("camera", core.Vec2{X: w.Camera.X, Y: w.Camera.Y})
	ws.Set("score", w.state.Score)
	ws.Set("coins", []int{taken, total})
}

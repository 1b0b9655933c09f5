package game

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-quest/internal/console"
)

// scrollSeconds is the camera animation length after a teleport.
const scrollSeconds = 0.4

// RegisterCommands adds the game's console commands. The commands act on
// whatever run *w points at, so they survive the world being replaced.
func RegisterCommands(c *console.Console, w **World) {
	c.RegisterFunc("player", "player [pos x y | speed v | heal]", func(args []string) (string, error) {
		return cmdPlayer(*w, args)
	})
	c.RegisterFunc("tp", "tp <x> <y>: teleport the player", func(args []string) (string, error) {
		if len(args) != 2 {
			return "usage: tp <x> <y>", nil
		}
		return teleport(*w, args[0], args[1])
	})
	c.RegisterFunc("level", "level [reset]: show or restart the level", func(args []string) (string, error) {
		world := *w
		if len(args) == 1 && args[0] == "reset" {
			world.Reset()
			return "level reset", nil
		}
		taken, total := world.Level.Coins()
		return fmt.Sprintf("%s  %dx%d  coins %d/%d", world.Level.Name, world.Level.W, world.Level.H, taken, total), nil
	})
	c.RegisterFunc("score", "Show the score", func([]string) (string, error) {
		return fmt.Sprintf("score %d", (*w).State().Score), nil
	})
}

func cmdPlayer(w *World, args []string) (string, error) {
	p := w.Player
	if len(args) == 0 {
		return fmt.Sprintf("pos %s  speed %s  health %d/%d  anim %s",
			console.Format(p.Pos), console.Format(p.Speed), p.Health, p.MaxHealth, p.Anim()), nil
	}

	switch args[0] {
	case "pos":
		if len(args) != 3 {
			return "usage: player pos <x> <y>", nil
		}
		return teleport(w, args[1], args[2])
	case "speed":
		if len(args) != 2 {
			return "usage: player speed <v>", nil
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", fmt.Errorf("bad speed %q", args[1])
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("speed must be finite")
		}
		if v <= 0 {
			return "", fmt.Errorf("speed must be positive")
		}
		p.Speed = v
		return "speed " + console.Format(v), nil
	case "heal":
		p.Heal()
		return fmt.Sprintf("health %d/%d", p.Health, p.MaxHealth), nil
	}
	return "", fmt.Errorf("unknown player subcommand %q", args[0])
}

func teleport(w *World, xs, ys string) (string, error) {
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil {
		return "", fmt.Errorf("bad coordinates %q %q", xs, ys)
	}
	if w.Level.Solid(x, y) {
		return "", fmt.Errorf("tile %d,%d is a wall", x, y)
	}
	w.Player.Teleport(float64(x), float64(y))
	w.Camera.ScrollTo(w.Player.Pos, w.Level, scrollSeconds)
	return fmt.Sprintf("teleported to %d,%d", x, y), nil
}

// Package game implements the quest itself: a top-down tile dungeon with a
// player, coins, spikes and an exit. It has no terminal or Bubble Tea
// dependency; the platform feeds it input and draws it into a core.Screen.
package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-quest/internal/config"
	"github.com/vovakirdan/tui-quest/internal/core"
)

// ErrInvalidLevel is returned for a level layout that cannot be played.
var ErrInvalidLevel = errors.New("game: invalid level")

// Tile is one level cell, stored as its layout glyph.
type Tile byte

const (
	TileFloor  Tile = '.'
	TileWall   Tile = '#'
	TileCoin   Tile = 'o'
	TileSpikes Tile = '^'
	TileExit   Tile = '>'
	tileStart  Tile = '@'
)

// Level is a tile grid. Cells outside the grid are walls.
type Level struct {
	Name  string
	W, H  int
	rows  []string
	tiles [][]Tile
	start core.Vec2
	total int
	taken int
}

// NewLevel parses a level file. Short rows are padded with walls.
func NewLevel(f config.LevelFile) (*Level, error) {
	l := &Level{Name: f.Name, rows: f.Rows, H: len(f.Rows)}
	for _, row := range f.Rows {
		l.W = max(l.W, len(row))
	}
	if l.W == 0 || l.H == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrInvalidLevel, f.Name)
	}
	if err := l.Reset(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reset restores every coin to its original place.
func (l *Level) Reset() error {
	l.tiles = make([][]Tile, l.H)
	l.total, l.taken = 0, 0
	found := false

	for y, row := range l.rows {
		l.tiles[y] = make([]Tile, l.W)
		for x := range l.W {
			t := TileWall
			if x < len(row) {
				t = Tile(row[x])
			}
			switch t {
			case tileStart:
				if found {
					return fmt.Errorf("%w: %q has more than one start", ErrInvalidLevel, l.Name)
				}
				found = true
				l.start = core.Vec2{X: float64(x), Y: float64(y)}
				t = TileFloor
			case TileCoin:
				l.total++
			case TileFloor, TileWall, TileSpikes, TileExit:
			default:
				return fmt.Errorf("%w: %q has unknown tile %q at %d,%d", ErrInvalidLevel, l.Name, rune(t), x, y)
			}
			l.tiles[y][x] = t
		}
	}
	if !found {
		return fmt.Errorf("%w: %q has no start tile", ErrInvalidLevel, l.Name)
	}
	return nil
}

// At returns the tile at x, y.
func (l *Level) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= l.W || y >= l.H {
		return TileWall
	}
	return l.tiles[y][x]
}

// Solid reports whether x, y blocks movement.
func (l *Level) Solid(x, y int) bool {
	return l.At(x, y) == TileWall
}

// TakeCoin removes a coin at x, y and reports whether there was one.
func (l *Level) TakeCoin(x, y int) bool {
	if l.At(x, y) != TileCoin {
		return false
	}
	l.tiles[y][x] = TileFloor
	l.taken++
	return true
}

// Start returns the player start position.
func (l *Level) Start() core.Vec2 {
	return l.start
}

// Coins returns taken and total coin counts.
func (l *Level) Coins() (taken, total int) {
	return l.taken, l.total
}

// Glyph returns the display rune and color for a tile.
func (t Tile) Glyph() (rune, core.Color) {
	switch t {
	case TileWall:
		return '█', core.ColorWall
	case TileCoin:
		return '$', core.ColorCoin
	case TileSpikes:
		return '^', core.ColorHazard
	case TileExit:
		return '>', core.ColorExit
	default:
		return '·', core.ColorFloor
	}
}

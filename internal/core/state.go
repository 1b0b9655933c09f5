package core

// GameState represents the current state of a run.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Won      bool // Whether the exit was reached
}

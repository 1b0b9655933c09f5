package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/quest.yaml
var defaultQuestYAML []byte

//go:embed defaults/level1.yaml
var defaultLevelYAML []byte

// Default returns the built-in configuration. It matches defaults/quest.yaml
// and is the base every loaded file is decoded over.
func Default() Config {
	return Config{
		TickRate:     30,
		KeyHoldTicks: 10,
		Bindings:     map[string][]string{},
		Console: ConsoleConfig{
			Toggle:        "`",
			Capture:       true,
			Scrollback:    100,
			Recall:        50,
			WatchInterval: 500 * time.Millisecond,
			Overlay: OverlayConfig{
				ShowFPS:     true,
				ShowWatched: true,
				MaxWatched:  5,
				MaxDefaults: 3,
			},
		},
		Player: PlayerConfig{
			Speed:           8,
			MaxHealth:       3,
			Invulnerability: time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultQuestYAML
}

// DefaultLevelYAML returns the embedded default level.
func DefaultLevelYAML() []byte {
	return defaultLevelYAML
}

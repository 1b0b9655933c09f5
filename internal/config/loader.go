package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the quest configuration.
// Search order: customPath -> ~/.quest/quest.yaml -> ./configs/quest.yaml -> embedded default.
// The result is validated; a bad custom file is an error, a bad file found
// by search is skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("quest.yaml"), filepath.Join("configs", "quest.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultQuestYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, cfg.Validate()
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the defaults, so omitted keys keep default values.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadLevel loads a tile level from path, or the built-in level when path
// is empty.
func LoadLevel(path string) (LevelFile, error) {
	data := defaultLevelYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return LevelFile{}, fmt.Errorf("config: failed to read level %s: %w", path, err)
		}
	}

	var lvl LevelFile
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return LevelFile{}, fmt.Errorf("config: failed to parse level %s: %w", path, err)
	}
	if len(lvl.Rows) == 0 {
		return LevelFile{}, fmt.Errorf("%w: level %q has no rows", ErrInvalidConfig, lvl.Name)
	}
	return lvl, nil
}

// DataDir returns ~/.quest, or "" if the home directory is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".quest")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

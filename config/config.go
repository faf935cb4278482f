package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries every tunable the engine needs. It is constructed once at
// startup and passed explicitly to the subsystems that use it; there is no
// ambient global state.
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Storage StorageConfig `toml:"storage"`
	Scripts ScriptsConfig `toml:"scripts"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	TileSize float64 `toml:"tile_size"` // world units per tile
	TickRate int     `toml:"tick_rate"` // simulation steps per second
}

type StorageConfig struct {
	SaveDir string `toml:"save_dir"`
}

type ScriptsConfig struct {
	Dir string `toml:"dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			TileSize: 16,
			TickRate: 60,
		},
		Storage: StorageConfig{
			SaveDir: "saves",
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

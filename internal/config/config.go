package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"GopherScript/internal/logger"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

var ErrInvalidConfig = errors.New("invalid config")

type AppConfig struct {
	Name      string `yaml:"name"`
	FrameRate int    `yaml:"frame_rate"`
	// MaxFrames stops the loop after this many frames; 0 runs until closed
	MaxFrames int `yaml:"max_frames"`
}

type ScriptingConfig struct {
	Assembly  string `yaml:"assembly"`
	HotReload bool   `yaml:"hot_reload"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	App       AppConfig       `yaml:"app"`
	Scripting ScriptingConfig `yaml:"scripting"`
	Log       LogConfig       `yaml:"log"`
}

// Default returns the embedded default configuration
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(DEFAULT, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return &cfg
}

// Load reads the given YAML files in order on top of the defaults. Keys set
// in a later file override earlier ones.
func Load(paths ...string) (*Config, error) {
	cfg := Default()

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.FrameRate <= 0 {
		return fmt.Errorf("%w: app.frame_rate must be positive, got %d", ErrInvalidConfig, c.App.FrameRate)
	}
	if c.App.MaxFrames < 0 {
		return fmt.Errorf("%w: app.max_frames must not be negative, got %d", ErrInvalidConfig, c.App.MaxFrames)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	if c.Scripting.HotReload && c.Scripting.Assembly == "" {
		return fmt.Errorf("%w: scripting.hot_reload needs scripting.assembly", ErrInvalidConfig)
	}
	return nil
}

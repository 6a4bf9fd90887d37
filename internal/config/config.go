package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/blockfall/internal/tetris"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"blockfall.log"`
	Game     Game   `yaml:"game" env-prefix:"GAME_"`
}

type Game struct {
	Height      int    `yaml:"height" env:"HEIGHT" env-default:"20"`
	Width       int    `yaml:"width" env:"WIDTH" env-default:"10"`
	QueueLength int    `yaml:"queue-length" env:"QUEUE_LENGTH" env-default:"4"`
	Seed        uint64 `yaml:"seed" env:"SEED" env-default:"0"`
	FrameRate   int    `yaml:"frame-rate" env:"FRAME_RATE" env-default:"30"`
}

// MustLoad - load all configurations from the yml file at path, falling back
// to the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = config.Game.Options().Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

func (that *Game) Options() tetris.Options {
	return tetris.Options{
		Height:      that.Height,
		Width:       that.Width,
		QueueLength: that.QueueLength,
	}
}

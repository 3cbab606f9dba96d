package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrEmptySeparator   = errors.New("move separator is empty")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFormat string  `yaml:"log-format" env:"LOG_FORMAT" env-default:"text"`
	Console   Console `yaml:"console"`
}

type Console struct {
	Prompt    string `yaml:"prompt" env:"TICTACTOE_PROMPT" env-default:"Make your move (row-column) [e.g. 0-0]:"`
	Separator string `yaml:"separator" env:"TICTACTOE_SEPARATOR" env-default:"-"`
	Rematch   bool   `yaml:"rematch" env:"TICTACTOE_REMATCH" env-default:"false"`
}

// MustLoad - loads the config file at path, or only the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)

	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}

	if that.Console.Separator == "" {
		return ErrEmptySeparator
	}

	return nil
}

package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"io/fs"
	"os"
	"time"
)

// Config settings for the converter binaries
type Config struct {
	Env      string   `yaml:"env" env:"CONVERTER_ENV" env-default:"local"`
	RateAPI  RateAPI  `yaml:"rate_api"`
	Debounce Debounce `yaml:"debounce"`
	Log      Log      `yaml:"log"`
	HTTP     HTTP     `yaml:"http"`
}

// RateAPI live exchange-rate source
type RateAPI struct {
	URL     string        `yaml:"url" env:"CONVERTER_RATE_API_URL" env-default:"https://api.exchangerate-api.com/v4/latest"`
	Timeout time.Duration `yaml:"timeout" env:"CONVERTER_RATE_API_TIMEOUT" env-default:"5s"`
}

// Debounce quiet window before an edited amount is converted
type Debounce struct {
	Window time.Duration `yaml:"window" env:"CONVERTER_DEBOUNCE_WINDOW" env-default:"500ms"`
}

type Log struct {
	Level  string `yaml:"level" env:"CONVERTER_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"CONVERTER_LOG_FORMAT" env-default:"logfmt"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"CONVERTER_HTTP_ADDR" env-default:":8080"`
}

// Load reads configuration from path (yaml) and the environment; with an empty path
// only the environment is used. A .env file in the working directory is loaded first
// when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config [%v]: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("log format %q: want logfmt or json", c.Log.Format)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level %q: want debug, info, warn or error", c.Log.Level)
	}
	if c.RateAPI.Timeout <= 0 {
		return fmt.Errorf("rate api timeout must be positive, got %v", c.RateAPI.Timeout)
	}
	if c.Debounce.Window <= 0 {
		return fmt.Errorf("debounce window must be positive, got %v", c.Debounce.Window)
	}
	return nil
}

// Package config loads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Config struct {
	Port             int           `env:"PORT" envDefault:"8080"`
	APIURL           string        `env:"API_URL" envDefault:"http://localhost:8080"`
	DataDir          string        `env:"DATA_DIR" envDefault:"data"`
	GinMode          string        `env:"GIN_MODE" envDefault:"release"`
	LogFormat        string        `env:"LOG_FORMAT"`                          // "human" or "json". Defaults to human in debug mode, json otherwise
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:" "` // Space separated
	EnablePprof      bool          `env:"ENABLE_PPROF" envDefault:"false"`
	Categories       []string      `env:"CATEGORIES" envSeparator:","` // Comma separated, defaults to the built-in category list
	CurrencyLocale   string        `env:"CURRENCY_LOCALE" envDefault:"en-US"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

var ErrInvalidPort = errors.New("PORT must be between 1 and 65535")

// Load reads an optional .env file from the working directory and
// parses the environment into a Config.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read .env file: %w", err)
	}

	return Parse()
}

// Parse parses the environment into a Config and validates it.
func Parse() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, ErrInvalidPort
	}

	if _, err := cfg.URL(); err != nil {
		return Config{}, err
	}

	if _, err := language.Parse(cfg.CurrencyLocale); err != nil {
		return Config{}, fmt.Errorf("CURRENCY_LOCALE %q is not a valid language tag: %w", cfg.CurrencyLocale, err)
	}

	return cfg, nil
}

// URL returns the parsed API URL.
func (c Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("API_URL must be a valid URL: %w", err)
	}

	return u, nil
}

// Human reports whether logs should be written for humans instead of as JSON.
func (c Config) Human() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}

// CurrencySymbol returns the symbol of the currency used in the configured
// locale, e.g. "$" for en-US or "€" for de-DE.
func (c Config) CurrencySymbol() string {
	tag, err := language.Parse(c.CurrencyLocale)
	if err != nil {
		return ""
	}

	unit, _ := currency.FromTag(tag)
	return message.NewPrinter(tag).Sprint(currency.Symbol(unit))
}

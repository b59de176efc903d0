// internal/config/config.go
//
// Process configuration shared by both command-line programs.
// Responsibilities:
//   - Load an optional `.env` file (development convenience).
//   - Read the few environment keys the programs honour.
//   - Configure the global zerolog logger (level + output format).
//
// Environment variables:
//   LOG_LEVEL=debug|info|warn|error   (default: info)
//   LOG_FORMAT=json|console           (default: json)
//   GUESS_SEED=<any string>           (optional; deterministic target)
//
// Logs always go to stderr; stdout is reserved for program output.

package config

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the values read from the environment.
type Config struct {
	LogLevel  string // zerolog level name
	LogFormat string // "json" or "console"
	Seed      string // empty means a random target
}

// Load reads `.env` (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		Seed:      os.Getenv("GUESS_SEED"),
	}
}

// SetupLogging points the global logger at w using the configured
// format and level. An unknown level leaves the current level untouched.
func (c Config) SetupLogging(w io.Writer) {
	if c.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	} else {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
	}
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/league-roster/internal/domain/roster"
	"github.com/riskibarqy/league-roster/internal/platform/logging"
)

// Config stores runtime configuration for the roster console.
type Config struct {
	AppEnv            string
	ServiceName       string
	LogLevel          logging.Level
	LogOutput         string
	MaxTeams          int
	MaxPlayersPerTeam int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logOutput := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_OUTPUT", logging.SinkStderr)))
	if _, err := logging.ParseSink(logOutput); err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_OUTPUT: %w", err)
	}

	defaults := roster.DefaultRules()

	maxTeams, err := getEnvAsInt("ROSTER_MAX_TEAMS", defaults.MaxTeams)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_MAX_TEAMS: %w", err)
	}
	maxPlayers, err := getEnvAsInt("ROSTER_MAX_PLAYERS", defaults.MaxPlayersPerTeam)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTER_MAX_PLAYERS: %w", err)
	}

	cfg := Config{
		AppEnv:            appEnv,
		ServiceName:       getEnv("APP_SERVICE_NAME", "league-roster"),
		LogLevel:          parseLogLevel(getEnv("APP_LOG_LEVEL", "warn")),
		LogOutput:         logOutput,
		MaxTeams:          maxTeams,
		MaxPlayersPerTeam: maxPlayers,
	}
	if err := cfg.Rules().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid roster limits: %w", err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from path without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Rules returns the default roster rules with the configured capacities.
func (c Config) Rules() roster.Rules {
	rules := roster.DefaultRules()
	rules.MaxTeams = c.MaxTeams
	rules.MaxPlayersPerTeam = c.MaxPlayersPerTeam
	return rules
}

func parseLogLevel(v string) logging.Level {
	return logging.ParseLevel(v)
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/league-roster/internal/platform/logging"
)

func clearRosterEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "APP_SERVICE_NAME", "APP_LOG_LEVEL", "APP_LOG_OUTPUT", "ROSTER_MAX_TEAMS", "ROSTER_MAX_PLAYERS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearRosterEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
	if cfg.LogOutput != logging.SinkStderr {
		t.Fatalf("unexpected LogOutput: %q", cfg.LogOutput)
	}

	rules := cfg.Rules()
	if rules.MaxTeams != 5 || rules.MaxPlayersPerTeam != 5 {
		t.Fatalf("unexpected capacities: %+v", rules)
	}
	if rules.MaxTeamNameLength != 19 || rules.MaxPlayerNameLength != 24 {
		t.Fatalf("unexpected name limits: %+v", rules)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	clearRosterEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RosterCapacities(t *testing.T) {
	clearRosterEnv(t)
	t.Setenv("ROSTER_MAX_TEAMS", "8")
	t.Setenv("ROSTER_MAX_PLAYERS", "11")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MaxTeams != 8 || cfg.MaxPlayersPerTeam != 11 {
		t.Fatalf("unexpected capacities: teams=%d players=%d", cfg.MaxTeams, cfg.MaxPlayersPerTeam)
	}
}

func TestLoad_RejectsInvalidCapacities(t *testing.T) {
	cases := map[string]string{
		"ROSTER_MAX_TEAMS":   "0",
		"ROSTER_MAX_PLAYERS": "many",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearRosterEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_RejectsUnknownLogOutput(t *testing.T) {
	clearRosterEnv(t)
	t.Setenv("APP_LOG_OUTPUT", "syslog")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown APP_LOG_OUTPUT")
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearRosterEnv(t)
	t.Setenv("APP_SERVICE_NAME", "from-env")
	// godotenv skips keys that are present, even when empty.
	if err := os.Unsetenv("ROSTER_MAX_TEAMS"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "ROSTER_MAX_TEAMS=3\nAPP_SERVICE_NAME=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MaxTeams != 3 {
		t.Fatalf("expected MaxTeams from file, got %d", cfg.MaxTeams)
	}
	if cfg.ServiceName != "from-env" {
		t.Fatalf("env file must not override set variables, got %q", cfg.ServiceName)
	}
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected nil for missing file, got %v", err)
	}
}

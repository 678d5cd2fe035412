package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/riskibarqy/league-roster/internal/app"
	"github.com/riskibarqy/league-roster/internal/config"
	"github.com/riskibarqy/league-roster/internal/platform/logging"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	if err := run(context.Background(), os.Args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	var (
		envFile    string
		logLevel   string
		maxTeams   int64
		maxPlayers int64
	)

	cmd := &cli.Command{
		Name:    "roster",
		Usage:   "Interactive league team roster",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "Optional dotenv file loaded before configuration",
				Value:       ".env",
				Sources:     cli.EnvVars("ROSTER_ENV_FILE"),
				Destination: &envFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level (debug, info, warn, error); overrides APP_LOG_LEVEL",
				Destination: &logLevel,
			},
			&cli.IntFlag{
				Name:        "max-teams",
				Usage:       "Maximum number of teams; overrides ROSTER_MAX_TEAMS",
				Destination: &maxTeams,
			},
			&cli.IntFlag{
				Name:        "max-players",
				Usage:       "Maximum players per team; overrides ROSTER_MAX_PLAYERS",
				Destination: &maxPlayers,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = logging.ParseLevel(logLevel)
			}
			if c.IsSet("max-teams") {
				cfg.MaxTeams = int(maxTeams)
			}
			if c.IsSet("max-players") {
				cfg.MaxPlayersPerTeam = int(maxPlayers)
			}

			sink, err := logging.ParseSink(cfg.LogOutput)
			if err != nil {
				return err
			}
			logger := logging.NewJSON(cfg.LogLevel, sink).With("service", cfg.ServiceName, "env", cfg.AppEnv)
			logging.SetDefault(logger)
			defer func() { _ = logger.Sync() }()

			handler, err := app.NewConsole(cfg, in, out, logger)
			if err != nil {
				logger.Error("build console", "error", err)
				return err
			}

			logger.Info("console starting", "max_teams", cfg.MaxTeams, "max_players", cfg.MaxPlayersPerTeam)
			return handler.Run(ctx)
		},
	}

	return cmd.Run(ctx, args)
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/api"
	"github.com/colonyops/hrms/internal/commands"
	"github.com/colonyops/hrms/internal/core/config"
	"github.com/colonyops/hrms/internal/core/logging"
	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/core/styles"
	"github.com/colonyops/hrms/internal/data/db"
	"github.com/colonyops/hrms/internal/data/stores"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

// historyRetention is how many notifications are kept in the local database.
const historyRetention = 500

func build() string {
	v, c, d := version, commit, date

	// ldflags aren't set by `go install module@version`; fall back to the
	// module version and VCS metadata Go records in the binary.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

// openHistory opens the notification database, moving a corrupted file
// aside and starting fresh when necessary.
func openHistory(ctx context.Context, dataDir string) (*db.DB, error) {
	database, err := db.Open(dataDir, db.DefaultOpenOptions())
	if err != nil && stores.IsCorruptionError(err) {
		backup, recErr := stores.RecoverFromCorruption(dataDir)
		if recErr != nil {
			return nil, fmt.Errorf("recover database: %w", recErr)
		}
		log.Warn().Str("backup", backup).Msg("notification history was corrupted and has been reset")
		database, err = db.Open(dataDir, db.DefaultOpenOptions())
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if n, err := stores.NewNotifyStore(database).Prune(ctx, historyRetention); err != nil {
		log.Warn().Err(err).Msg("failed to prune notification history")
	} else if n > 0 {
		log.Debug().Int64("removed", n).Msg("pruned notification history")
	}
	return database, nil
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		hrmsApp   = &admin.App{}
		database  *db.DB
		queue     *notify.Queue
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "hrms",
		Usage:     "Administer employees and attendance for HRMS Lite",
		UsageText: "hrms [global options] command [command options]",
		Description: `hrms is the admin console for an HRMS Lite server.

It manages the employee roster and daily attendance, and reports the outcome
of every change as a short-lived notification.

Run 'hrms' with no arguments to open the interactive console.
Run 'hrms employees ls' to list employees from the command line.`,
		Version: build(),
		// Errors return to main so After always runs.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("HRMS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/hrms.log)",
				Sources:     cli.EnvVars("HRMS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars(config.EnvConfig),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("HRMS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
			&cli.StringFlag{
				Name:        "api-url",
				Usage:       "base URL of the HRMS API (overrides api.base_url)",
				Destination: &flags.APIURL,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; use explicit path or default to <datadir>/hrms.log
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "hrms.log")
			}

			closer, err := logging.Setup(flags.LogLevel, logFile)
			if err != nil {
				return ctx, err
			}
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			if flags.APIURL != "" {
				cfg.API.BaseURL = flags.APIURL
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			var store notify.Store
			if cfg.Notifications.HistoryEnabled() {
				database, err = openHistory(ctx, cfg.DataDir)
				if err != nil {
					return ctx, err
				}
				store = stores.NewNotifyStore(database)
			}

			queue = notify.NewQueue(notify.WithDefaultTTL(cfg.Notifications.TTL))
			flags.StopToasts = commands.PrintToasts(os.Stderr, queue)

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			flags.Metrics = registry

			client := api.New(cfg.API.BaseURL,
				api.WithTimeout(cfg.API.Timeout),
				api.WithMetrics(api.NewMetrics(registry)),
			)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*hrmsApp = *admin.NewApp(client, notify.NewBus(store, queue), cfg, database)

			log.Debug().
				Str("api", cfg.API.BaseURL).
				Bool("history", database != nil).
				Msg("hrms ready")
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if flags.StopToasts != nil {
				flags.StopToasts()
			}
			if queue != nil {
				queue.Close()
			}

			// Close database connection
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, hrmsApp)

	app = commands.NewEmployeesCmd(flags, hrmsApp).Register(app)
	app = commands.NewAttendanceCmd(flags, hrmsApp).Register(app)
	app = commands.NewDashboardCmd(flags, hrmsApp).Register(app)
	app = commands.NewNotificationsCmd(flags, hrmsApp).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)
	app = commands.NewAboutCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'hrms --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		// Failures already shown as notifications carry an empty message.
		if msg := runErr.Error(); msg != "" {
			_, _ = fmt.Fprintln(os.Stderr, msg)
		}
		exitCode = 1
	}

	os.Exit(exitCode)
}

package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/tui"
	"github.com/colonyops/hrms/pkg/profiler"
)

type TuiCmd struct {
	flags *Flags
	app   *admin.App

	skipWelcome bool
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *admin.App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "debug-addr",
			Usage:       "serve pprof and /metrics on this address (e.g. localhost:6060); overrides debug.addr",
			Sources:     cli.EnvVars("HRMS_DEBUG_ADDR"),
			Destination: &cmd.flags.DebugAddr,
		},
		&cli.BoolFlag{
			Name:        "skip-welcome",
			Usage:       "open the dashboard without the welcome screen",
			Destination: &cmd.skipWelcome,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	if cmd.flags.StopToasts != nil {
		cmd.flags.StopToasts()
	}

	addr := cmd.flags.DebugAddr
	if addr == "" && cmd.app.Config != nil {
		addr = cmd.app.Config.Debug.Addr
	}
	if addr != "" {
		srv := profiler.New(addr, cmd.flags.Metrics)
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("failed to start debug server: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("failed to shutdown debug server")
			}
		}()
		log.Info().
			Str("url", fmt.Sprintf("http://%s/debug/pprof/", srv.Addr())).
			Msg("debug endpoint available")
	}

	skip := cmd.skipWelcome
	if cmd.app.Config != nil {
		skip = skip || cmd.app.Config.TUI.SkipWelcome
	}

	m := tui.New(ctx, cmd.app, tui.Opts{
		SkipWelcome: skip,
		MaxToasts:   cmd.flags.Config.Notifications.MaxVisible,
	})
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

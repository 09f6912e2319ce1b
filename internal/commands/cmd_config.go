package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrms/internal/core/config"
	"github.com/colonyops/hrms/internal/core/styles"
	"github.com/colonyops/hrms/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "hrms config validate [options]",
				Description: "Validates the configuration file and data directory and lists non-fatal warnings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigCmd) run(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	errs := fieldErrors(cfg.ValidateDeep(cmd.flags.ConfigPath))
	warnings := cfg.Warnings()

	if cmd.format == "json" {
		out := struct {
			Valid    bool                       `json:"valid"`
			Errors   []validationError          `json:"errors,omitempty"`
			Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		}{
			Valid:    len(errs) == 0,
			Errors:   errs,
			Warnings: warnings,
		}
		if err := iojson.Write(c.Root().Writer, out); err != nil {
			return err
		}
		if len(errs) > 0 {
			return cli.Exit("", 1)
		}
		return nil
	}

	w := c.Root().Writer
	warn := lipgloss.NewStyle().Foreground(styles.ColorWarning)
	bad := lipgloss.NewStyle().Foreground(styles.ColorError)
	good := lipgloss.NewStyle().Foreground(styles.ColorSuccess)

	for _, wr := range warnings {
		item := wr.Category
		if wr.Item != "" {
			item += " (" + wr.Item + ")"
		}
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", warn.Render(styles.IconWarning), item, wr.Message)
	}

	for _, e := range errs {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", bad.Render(styles.IconError), e.Field, e.Message)
	}

	if len(errs) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", bad.Render(fmt.Sprintf("%d error(s) found", len(errs))))
		return cli.Exit("", 1)
	}

	_, _ = fmt.Fprintf(w, "%s Configuration is valid\n", good.Render(styles.IconSuccess))
	return nil
}

func fieldErrors(err error) []validationError {
	if err == nil {
		return nil
	}

	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return []validationError{{Field: "config", Message: err.Error()}}
	}

	out := make([]validationError, 0, len(fe))
	for _, e := range fe {
		out = append(out, validationError{Field: e.Field, Message: e.Err.Error()})
	}
	return out
}

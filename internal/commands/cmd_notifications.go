package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/core/styles"
	"github.com/colonyops/hrms/pkg/iojson"
)

type NotificationsCmd struct {
	flags *Flags
	app   *admin.App

	jsonOutput bool
}

// NewNotificationsCmd creates a new notifications command
func NewNotificationsCmd(flags *Flags, app *admin.App) *NotificationsCmd {
	return &NotificationsCmd{flags: flags, app: app}
}

// Register adds the notifications command to the application
func (cmd *NotificationsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "notifications",
		Aliases: []string{"notif"},
		Usage:   "Review notification history",
		Description: `Every notification shown by hrms is recorded in the local database
unless notifications.history is set to false in the config file.`,
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List past notifications, newest first",
				UsageText: "hrms notifications ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "clear",
				Usage:     "Delete all recorded notifications",
				UsageText: "hrms notifications clear",
				Action:    cmd.runClear,
			},
		},
	})

	return app
}

func (cmd *NotificationsCmd) runList(ctx context.Context, c *cli.Command) error {
	if !cmd.flags.Config.Notifications.HistoryEnabled() {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, styles.EmptyStateStyle.Render("Notification history is disabled"))
		return nil
	}

	history, err := cmd.app.Notifications.History(ctx)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteLines(out, history)
	}

	if len(history) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, styles.EmptyStateStyle.Render("No notifications"))
		return nil
	}

	rows := make([][]string, 0, len(history))
	for _, n := range history {
		rows = append(rows, []string{
			n.CreatedAt.Local().Format("Jan 2 15:04:05"),
			levelLabel(n.Level),
			n.Message,
		})
	}
	_, _ = fmt.Fprintln(out, renderTable([]string{"TIME", "LEVEL", "MESSAGE"}, rows, nil))
	return nil
}

func (cmd *NotificationsCmd) runClear(ctx context.Context, c *cli.Command) error {
	if err := cmd.app.Notifications.Clear(ctx); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	_, _ = fmt.Fprintln(c.Root().Writer, "Notification history cleared")
	return nil
}

func levelLabel(l notify.Level) string {
	return lipgloss.NewStyle().
		Foreground(styles.LevelColor(l)).
		Render(styles.LevelIcon(l) + " " + string(l))
}

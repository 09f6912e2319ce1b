package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/api"
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
	"github.com/colonyops/hrms/pkg/iojson"
)

type DashboardCmd struct {
	flags *Flags
	app   *admin.App

	jsonOutput bool
}

// NewDashboardCmd creates a new dashboard command
func NewDashboardCmd(flags *Flags, app *admin.App) *DashboardCmd {
	return &DashboardCmd{flags: flags, app: app}
}

// Register adds the dashboard and health commands to the application
func (cmd *DashboardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "dashboard",
			Usage:     "Show today's attendance summary",
			UsageText: "hrms dashboard [--json]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:        "json",
					Usage:       "output as JSON",
					Destination: &cmd.jsonOutput,
				},
			},
			Action: cmd.runDashboard,
		},
		&cli.Command{
			Name:      "health",
			Usage:     "Check that the API is reachable",
			UsageText: "hrms health",
			Action:    cmd.runHealth,
		},
	)

	return app
}

func (cmd *DashboardCmd) runDashboard(ctx context.Context, c *cli.Command) error {
	stats, err := cmd.app.Dashboard.Stats(ctx)
	if err != nil {
		return reported(err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, stats)
	}

	_, _ = fmt.Fprintln(out, renderStatCards(stats))
	_, _ = fmt.Fprintln(out)

	if len(stats.RecentAttendance) == 0 {
		_, _ = fmt.Fprintln(out, styles.EmptyStateStyle.Render("No attendance recorded yet"))
		return nil
	}

	rows := make([][]string, 0, len(stats.RecentAttendance))
	for _, r := range stats.RecentAttendance {
		rows = append(rows, []string{r.EmployeeName, r.Department, hrms.FormatDate(r.Date), statusLabel(r.Status)})
	}
	_, _ = fmt.Fprintln(out, styles.TitleStyle.Render("Recent attendance"))
	_, _ = fmt.Fprintln(out, renderTable([]string{"EMPLOYEE", "DEPARTMENT", "DATE", "STATUS"}, rows, nil))
	return nil
}

// renderStatCards lays the four dashboard counters out side by side.
func renderStatCards(stats hrms.DashboardStats) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatCard("Total employees", stats.TotalEmployees),
		styles.StatCard("Present today", stats.PresentToday),
		styles.StatCard("Absent today", stats.AbsentToday),
		styles.StatCard("Departments", stats.ActiveDepartments),
	)
}

func (cmd *DashboardCmd) runHealth(ctx context.Context, c *cli.Command) error {
	out := c.Root().Writer
	base := cmd.flags.Config.API.BaseURL

	h, err := cmd.app.Dashboard.Health(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(out, "%s %s %s\n",
			lipgloss.NewStyle().Foreground(styles.ColorError).Render(styles.IconError),
			base,
			styles.SubtitleStyle.Render(api.Message(err)),
		)
		return cli.Exit("", 1)
	}

	detail := strings.TrimSpace(h.Status)
	if !h.Timestamp.IsZero() {
		detail += " at " + h.Timestamp.Format("15:04:05")
	}
	_, _ = fmt.Fprintf(out, "%s %s %s\n",
		lipgloss.NewStyle().Foreground(styles.ColorSuccess).Render(styles.IconSuccess),
		base,
		styles.SubtitleStyle.Render(detail),
	)
	return nil
}

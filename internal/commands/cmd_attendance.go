package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
	"github.com/colonyops/hrms/pkg/iojson"
)

type AttendanceCmd struct {
	flags *Flags
	app   *admin.App

	// mark flags
	date   string
	status string

	// ls flags
	jsonOutput bool
}

// NewAttendanceCmd creates a new attendance command
func NewAttendanceCmd(flags *Flags, app *admin.App) *AttendanceCmd {
	return &AttendanceCmd{flags: flags, app: app}
}

// Register adds the attendance command to the application
func (cmd *AttendanceCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "attendance",
		Aliases: []string{"att"},
		Usage:   "Mark and review attendance",
		Commands: []*cli.Command{
			{
				Name:      "mark",
				Usage:     "Mark an employee present or absent",
				UsageText: "hrms attendance mark <employee-id> [--date YYYY-MM-DD] [--status present|absent]",
				Description: `Records attendance for one day. The date defaults to today and the
status defaults to present. Marking the same employee twice on one day is
rejected by the server and reported as a warning.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "date",
						Usage:       "attendance date (YYYY-MM-DD)",
						Destination: &cmd.date,
					},
					&cli.StringFlag{
						Name:        "status",
						Aliases:     []string{"s"},
						Usage:       "present or absent",
						Value:       "present",
						Destination: &cmd.status,
					},
				},
				Action: cmd.runMark,
			},
			{
				Name:      "ls",
				Usage:     "List an employee's attendance",
				UsageText: "hrms attendance ls <employee-id> [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
		},
	})

	return app
}

func (cmd *AttendanceCmd) runMark(ctx context.Context, c *cli.Command) error {
	id, err := employeeIDArg(c)
	if err != nil {
		return err
	}

	status, err := hrms.ParseStatus(cmd.status)
	if err != nil {
		return err
	}

	a, err := cmd.app.Attendance.Mark(ctx, hrms.AttendanceCreate{
		EmployeeID: id,
		Date:       cmd.date,
		Status:     status,
	})
	if err != nil {
		return reported(err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s %s\n", a.EmployeeID, a.Date, a.Status)
	return nil
}

func (cmd *AttendanceCmd) runList(ctx context.Context, c *cli.Command) error {
	id, err := employeeIDArg(c)
	if err != nil {
		return err
	}

	records, err := cmd.app.Attendance.List(ctx, id)
	if err != nil {
		return reported(err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteLines(out, records)
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, styles.EmptyStateStyle.Render("No attendance records"))
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{hrms.FormatDate(r.Date), statusLabel(r.Status)})
	}
	_, _ = fmt.Fprintln(out, renderTable([]string{"DATE", "STATUS"}, rows, nil))

	present, absent := admin.Summary(records)
	_, _ = fmt.Fprintf(out, "%s  %s\n",
		styles.PresentStyle.Render(fmt.Sprintf("%d present", present)),
		styles.AbsentStyle.Render(fmt.Sprintf("%d absent", absent)),
	)
	return nil
}

func statusLabel(s hrms.AttendanceStatus) string {
	switch s {
	case hrms.StatusPresent:
		return styles.PresentStyle.Render(styles.IconPresent + " " + string(s))
	case hrms.StatusAbsent:
		return styles.AbsentStyle.Render(styles.IconAbsent + " " + string(s))
	default:
		return string(s)
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
	"github.com/colonyops/hrms/pkg/iojson"
)

type EmployeesCmd struct {
	flags *Flags
	app   *admin.App

	// ls flags
	jsonOutput bool
	department string
	name       string

	// add flags
	input iojson.Input[hrms.EmployeeCreate]

	// rm flags
	yes bool
}

// NewEmployeesCmd creates a new employees command
func NewEmployeesCmd(flags *Flags, app *admin.App) *EmployeesCmd {
	return &EmployeesCmd{flags: flags, app: app}
}

// Register adds the employees command to the application
func (cmd *EmployeesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "employees",
		Aliases: []string{"emp"},
		Usage:   "Manage employee records",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List employees",
				UsageText: "hrms employees ls [--department GLOB] [--name GLOB] [--json]",
				Description: `Displays a table of employees with their id, name, email and department.

Filters are case-insensitive glob patterns. --name matches the full name or
the employee id, e.g. --name 'jane*' or --name 'EMP-00?'.`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "department",
						Aliases:     []string{"d"},
						Usage:       "only show departments matching this glob",
						Destination: &cmd.department,
					},
					&cli.StringFlag{
						Name:        "name",
						Aliases:     []string{"n"},
						Usage:       "only show names or ids matching this glob",
						Destination: &cmd.name,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "get",
				Usage:     "Show a single employee",
				UsageText: "hrms employees get <employee-id> [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runGet,
			},
			{
				Name:      "add",
				Usage:     "Add an employee",
				UsageText: "hrms employees add [-f employee.json]",
				Description: `Creates an employee record.

With -f, or with JSON piped on stdin, the record is read as JSON:

  {"employeeId": "EMP-001", "fullName": "Jane Doe", "email": "jane@example.com", "department": "Engineering"}

Otherwise an interactive form is shown. The employee id is optional; the
server assigns one when it is left empty.`,
				Flags:  []cli.Flag{cmd.input.Flag()},
				Action: cmd.runAdd,
			},
			{
				Name:      "rm",
				Usage:     "Delete an employee",
				UsageText: "hrms employees rm <employee-id> [--yes]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip the confirmation prompt",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runRemove,
			},
		},
	})

	return app
}

func (cmd *EmployeesCmd) runList(ctx context.Context, c *cli.Command) error {
	employees, err := cmd.app.Employees.List(ctx, admin.EmployeeFilter{
		Department: cmd.department,
		Name:       cmd.name,
	})
	if err != nil {
		return reported(err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		return iojson.WriteLines(out, employees)
	}

	if len(employees) == 0 {
		_, _ = fmt.Fprintln(c.Root().ErrWriter, styles.EmptyStateStyle.Render("No employees found"))
		return nil
	}

	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{e.EmployeeID, e.FullName, e.Email, e.Department, presentCount(e)})
	}

	_, _ = fmt.Fprintln(out, renderTable(
		[]string{"ID", "NAME", "EMAIL", "DEPARTMENT", "PRESENT"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
	))
	return nil
}

func presentCount(e hrms.Employee) string {
	if e.PresentCount == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *e.PresentCount)
}

func (cmd *EmployeesCmd) runGet(ctx context.Context, c *cli.Command) error {
	id, err := employeeIDArg(c)
	if err != nil {
		return err
	}

	e, err := cmd.app.Employees.Get(ctx, id)
	if err != nil {
		return reported(err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.Write(out, e)
	}

	_, _ = fmt.Fprintln(out, styles.CommandHeaderStyle.Render(e.FullName))
	_, _ = fmt.Fprintln(out, styles.DividerStyle.Render(strings.Repeat("─", 40)))
	printField(out, "Employee ID", e.EmployeeID)
	printField(out, "Email", e.Email)
	printField(out, "Department", e.Department)
	printField(out, "Present days", presentCount(e))
	if !e.CreatedAt.IsZero() {
		printField(out, "Created", e.CreatedAt.Format("Jan 2, 2006 15:04"))
	}
	return nil
}

func (cmd *EmployeesCmd) runAdd(ctx context.Context, c *cli.Command) error {
	var (
		in  hrms.EmployeeCreate
		err error
	)

	if cmd.input.Available() {
		in, err = cmd.input.Read()
		if err != nil {
			return err
		}
	} else {
		in, err = cmd.runAddForm()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	e, err := cmd.app.Employees.Create(ctx, in)
	if err != nil {
		return reported(err)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, e.EmployeeID)
	return nil
}

func (cmd *EmployeesCmd) runAddForm() (hrms.EmployeeCreate, error) {
	var in hrms.EmployeeCreate

	options := make([]huh.Option[string], 0, len(cmd.app.Departments()))
	for _, d := range cmd.app.Departments() {
		options = append(options, huh.NewOption(d, d))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Employee ID").
				Description("Leave empty to let the server assign one").
				Value(&in.EmployeeID),
			huh.NewInput().
				Title("Full name").
				Validate(hrms.Required).
				Value(&in.FullName),
			huh.NewInput().
				Title("Email").
				Validate(hrms.Email).
				Value(&in.Email),
			huh.NewSelect[string]().
				Title("Department").
				Options(options...).
				Value(&in.Department),
		),
	).WithTheme(styles.FormTheme()).Run()

	return in, err
}

func (cmd *EmployeesCmd) runRemove(ctx context.Context, c *cli.Command) error {
	id, err := employeeIDArg(c)
	if err != nil {
		return err
	}

	if !cmd.yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to delete %s without confirmation; pass --yes", id)
		}

		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete employee %s?", id)).
			Description("Their attendance records are removed as well.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed).
			WithTheme(styles.FormTheme()).
			Run()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			return nil
		}
	}

	return reported(cmd.app.Employees.Delete(ctx, id))
}

func employeeIDArg(c *cli.Command) (string, error) {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return "", fmt.Errorf("employee id is required")
	}
	return id, nil
}

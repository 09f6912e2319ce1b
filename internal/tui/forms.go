package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
)

const formWidth = 56

type formKind int

const (
	formNone formKind = iota
	formAddEmployee
	formMarkAttendance
)

func (k formKind) title() string {
	switch k {
	case formAddEmployee:
		return "Add employee"
	case formMarkAttendance:
		return "Mark attendance"
	default:
		return ""
	}
}

// attendanceInput collects the mark-attendance form values.
type attendanceInput struct {
	EmployeeID string
	Date       string
	Status     hrms.AttendanceStatus
}

func (in attendanceInput) payload() hrms.AttendanceCreate {
	return hrms.AttendanceCreate{
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		Status:     in.Status,
	}
}

func newEmployeeForm(in *hrms.EmployeeCreate, departments []string) *huh.Form {
	options := make([]huh.Option[string], 0, len(departments))
	for _, d := range departments {
		options = append(options, huh.NewOption(d, d))
	}
	if in.Department == "" && len(departments) > 0 {
		in.Department = departments[0]
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Employee ID").
				Description("Optional, assigned by the server when empty").
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
	).
		WithTheme(styles.FormTheme()).
		WithWidth(formWidth).
		WithShowHelp(true)
}

func newAttendanceForm(in *attendanceInput, employees []hrms.Employee) *huh.Form {
	if in.Date == "" {
		in.Date = hrms.Today()
	}
	if in.Status == "" {
		in.Status = hrms.StatusPresent
	}

	var employeeField huh.Field
	if len(employees) == 0 {
		employeeField = huh.NewInput().
			Title("Employee ID").
			Validate(hrms.Required).
			Value(&in.EmployeeID)
	} else {
		options := make([]huh.Option[string], 0, len(employees))
		for _, e := range employees {
			options = append(options, huh.NewOption(e.FullName+" ("+e.EmployeeID+")", e.EmployeeID))
		}
		if in.EmployeeID == "" {
			in.EmployeeID = employees[0].EmployeeID
		}
		employeeField = huh.NewSelect[string]().
			Title("Employee").
			Options(options...).
			Height(min(len(options)+2, 8)).
			Value(&in.EmployeeID)
	}

	statuses := make([]huh.Option[hrms.AttendanceStatus], 0, 2)
	for _, s := range hrms.AttendanceStatuses() {
		statuses = append(statuses, huh.NewOption(string(s), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			employeeField,
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Validate(hrms.Date).
				Value(&in.Date),
			huh.NewSelect[hrms.AttendanceStatus]().
				Title("Status").
				Options(statuses...).
				Inline(true).
				Value(&in.Status),
		),
	).
		WithTheme(styles.FormTheme()).
		WithWidth(formWidth).
		WithShowHelp(true)
}

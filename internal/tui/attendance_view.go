package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
)

type attendanceView struct {
	table    table.Model
	employee hrms.Employee
	records  []hrms.Attendance
	loaded   bool
	loading  bool
	err      error
}

func newAttendanceView() attendanceView {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 16},
			{Title: "Status", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return attendanceView{table: t}
}

// SetEmployee switches the page to another employee and drops the records
// of the previous one.
func (v *attendanceView) SetEmployee(e hrms.Employee) {
	if v.employee.EmployeeID != e.EmployeeID {
		v.records = nil
		v.loaded = false
		v.err = nil
		v.table.SetRows(nil)
		v.table.SetCursor(0)
	}
	v.employee = e
}

func (v *attendanceView) Clear() {
	v.SetEmployee(hrms.Employee{})
}

func (v attendanceView) HasEmployee() bool {
	return v.employee.EmployeeID != ""
}

func (v *attendanceView) SetRecords(records []hrms.Attendance) {
	v.records = records
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, table.Row{hrms.FormatDate(r.Date), string(r.Status)})
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (v *attendanceView) SetSize(_, height int) {
	v.table.SetHeight(max(height-4, 3))
}

func (v attendanceView) Update(msg tea.Msg) (attendanceView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v attendanceView) View(spin string) string {
	if !v.HasEmployee() {
		return styles.EmptyStateStyle.Render("Select an employee on the Employees page, or press a to mark attendance.")
	}

	title := styles.TitleStyle.Render(v.employee.FullName) + " " +
		styles.SubtitleStyle.Render(v.employee.EmployeeID)
	if v.employee.FullName == "" {
		title = styles.TitleStyle.Render(v.employee.EmployeeID)
	}

	var body string
	switch {
	case v.loading && !v.loaded:
		body = styles.SubtitleStyle.Render(spin + " Loading attendance...")
	case v.err != nil && !v.loaded:
		body = styles.EmptyStateStyle.Render("Could not load attendance. Press r to retry.")
	case len(v.records) == 0:
		body = styles.EmptyStateStyle.Render("No attendance records. Press a to mark attendance.")
	default:
		present, absent := admin.Summary(v.records)
		summary := fmt.Sprintf("%s  %s",
			styles.PresentStyle.Render(fmt.Sprintf("%s %d present", styles.IconPresent, present)),
			styles.AbsentStyle.Render(fmt.Sprintf("%s %d absent", styles.IconAbsent, absent)),
		)
		body = lipgloss.JoinVertical(lipgloss.Left, summary, "", v.table.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

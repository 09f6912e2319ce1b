package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
)

type employeesView struct {
	table     table.Model
	employees []hrms.Employee
	loaded    bool
	loading   bool
	err       error
}

func newEmployeesView() employeesView {
	t := table.New(
		table.WithColumns(employeeColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	return employeesView{table: t}
}

func employeeColumns(width int) []table.Column {
	fixed := 12 + 16 + 8
	flex := max(width-fixed-10, 30)
	return []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Name", Width: flex * 2 / 5},
		{Title: "Email", Width: flex - flex*2/5},
		{Title: "Department", Width: 16},
		{Title: "Present", Width: 8},
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.ColorSurface).
		BorderBottom(true).
		Foreground(styles.ColorMuted).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.ColorBackground).
		Background(styles.ColorPrimary).
		Bold(false)
	s.Cell = s.Cell.Foreground(styles.ColorForeground)
	return s
}

func (v *employeesView) SetEmployees(employees []hrms.Employee) {
	v.employees = employees
	rows := make([]table.Row, 0, len(employees))
	for _, e := range employees {
		present := "-"
		if e.PresentCount != nil {
			present = fmt.Sprintf("%d", *e.PresentCount)
		}
		rows = append(rows, table.Row{e.EmployeeID, e.FullName, e.Email, e.Department, present})
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (v *employeesView) SetSize(width, height int) {
	v.table.SetColumns(employeeColumns(width))
	v.table.SetWidth(width)
	v.table.SetHeight(max(height-1, 3))
}

// Selected returns the employee under the cursor.
func (v employeesView) Selected() (hrms.Employee, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.employees) {
		return hrms.Employee{}, false
	}
	return v.employees[i], true
}

func (v employeesView) Update(msg tea.Msg) (employeesView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v employeesView) View(spin string) string {
	switch {
	case v.loading && !v.loaded:
		return styles.SubtitleStyle.Render(spin + " Loading employees...")
	case v.err != nil && !v.loaded:
		return styles.EmptyStateStyle.Render("Could not load employees. Press r to retry.")
	case len(v.employees) == 0:
		return styles.EmptyStateStyle.Render("No employees yet. Press a to add one.")
	}

	count := styles.SubtitleStyle.Render(fmt.Sprintf("%d employees", len(v.employees)))
	return lipgloss.JoinVertical(lipgloss.Left, v.table.View(), count)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
)

const maxRecentRows = 8

type dashboardView struct {
	stats   hrms.DashboardStats
	loaded  bool
	loading bool
	err     error
}

func (v dashboardView) View(spin string) string {
	switch {
	case v.loading && !v.loaded:
		return styles.SubtitleStyle.Render(spin + " Loading dashboard...")
	case v.err != nil && !v.loaded:
		return styles.EmptyStateStyle.Render("Could not load the dashboard. Press r to retry.")
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatCard("Total employees", v.stats.TotalEmployees),
		styles.StatCard("Present today", v.stats.PresentToday),
		styles.StatCard("Absent today", v.stats.AbsentToday),
		styles.StatCard("Departments", v.stats.ActiveDepartments),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		"",
		styles.TitleStyle.Render("Recent attendance"),
		recentTable(v.stats.RecentAttendance),
	)
}

func recentTable(records []hrms.RecentAttendance) string {
	if len(records) == 0 {
		return styles.EmptyStateStyle.Render("No attendance recorded yet")
	}

	rows := make([][]string, 0, min(len(records), maxRecentRows))
	for _, r := range records[:min(len(records), maxRecentRows)] {
		rows = append(rows, []string{r.EmployeeName, r.Department, hrms.FormatDate(r.Date), string(r.Status)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.ColorSurface)).
		Headers("EMPLOYEE", "DEPARTMENT", "DATE", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return s.Foreground(styles.ColorMuted).Bold(true)
			case col == 3 && rows[row][3] == string(hrms.StatusPresent):
				return s.Inherit(styles.PresentStyle)
			case col == 3:
				return s.Inherit(styles.AbsentStyle)
			default:
				return s.Foreground(styles.ColorForeground)
			}
		}).
		Render()
}

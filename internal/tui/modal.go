package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/core/styles"
)

const modalWidth = 60

// confirmDelete asks before an employee is removed.
type confirmDelete struct {
	employee hrms.Employee
}

func (c confirmDelete) View() string {
	name := c.employee.FullName
	if name == "" {
		name = c.employee.EmployeeID
	}

	return styles.ModalStyle.Width(modalWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Delete "+name+"?"),
		"",
		styles.SubtitleStyle.Render("Employee "+c.employee.EmployeeID+" and their attendance records will be removed."),
		styles.ModalHelpStyle.Render("y confirm • n cancel"),
	))
}

// historyModal lists past notifications, newest first.
type historyModal struct {
	viewport viewport.Model
	items    []notify.Notification
	loading  bool
	disabled bool
}

func newHistoryModal(height int, disabled bool) historyModal {
	h := historyModal{
		viewport: viewport.New(modalWidth-6, max(height-10, 5)),
		loading:  !disabled,
		disabled: disabled,
	}
	h.viewport.SetContent(h.content())
	return h
}

func (h *historyModal) SetItems(items []notify.Notification) {
	h.items = items
	h.loading = false
	h.viewport.SetContent(h.content())
	h.viewport.GotoTop()
}

func (h historyModal) content() string {
	switch {
	case h.disabled:
		return styles.EmptyStateStyle.Render("Notification history is disabled")
	case h.loading:
		return styles.SubtitleStyle.Render("Loading...")
	case len(h.items) == 0:
		return styles.EmptyStateStyle.Render("No notifications yet")
	}

	lines := make([]string, 0, len(h.items))
	for _, n := range h.items {
		icon := lipgloss.NewStyle().Foreground(styles.LevelColor(n.Level)).Render(styles.LevelIcon(n.Level))
		stamp := styles.SubtitleStyle.Render(n.CreatedAt.Local().Format("Jan 2 15:04"))
		lines = append(lines, icon+" "+stamp+" "+n.Message)
	}
	return strings.Join(lines, "\n")
}

func (h historyModal) View() string {
	return styles.ModalStyle.Width(modalWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Notifications"),
		"",
		h.viewport.View(),
		styles.ModalHelpStyle.Render("↑/↓ scroll • esc close"),
	))
}

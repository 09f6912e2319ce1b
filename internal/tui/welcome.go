package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/core/docs"
	"github.com/colonyops/hrms/internal/core/styles"
)

const welcomeMaxWidth = 80

func renderWelcome(width int) string {
	return styles.RenderMarkdown(docs.Welcome, min(max(width-4, 20), welcomeMaxWidth))
}

func (m Model) welcomeView() string {
	prompt := styles.TabActiveStyle.Render("enter") + styles.HelpStyle.Render("continue as admin") +
		"   " + styles.TabActiveStyle.Render("q") + styles.HelpStyle.Render("quit")

	content := lipgloss.JoinVertical(lipgloss.Left, m.welcome, "", prompt)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/core/styles"
)

// ToastView renders the entries of a notification queue as a stack of boxes
// in the lower-right corner of the screen.
type ToastView struct {
	queue     *notify.Queue
	maxToasts int
}

// NewToastView draws at most maxToasts of the newest entries; maxToasts <= 0
// draws them all. Entries beyond the limit stay queued and show up as newer
// ones expire.
func NewToastView(q *notify.Queue, maxToasts int) ToastView {
	return ToastView{queue: q, maxToasts: max(maxToasts, 0)}
}

// View renders the toast stack, oldest at the top and newest at the bottom.
func (v ToastView) View() string {
	if v.queue == nil {
		return ""
	}

	entries := v.queue.List()
	if len(entries) == 0 {
		return ""
	}
	if v.maxToasts > 0 && len(entries) > v.maxToasts {
		entries = entries[len(entries)-v.maxToasts:]
	}

	rendered := make([]string, 0, len(entries))
	for _, e := range entries {
		if box := safeRender(e); box != "" {
			rendered = append(rendered, box)
		}
	}
	return strings.Join(rendered, "\n")
}

// toastRenderer is swapped in tests.
var toastRenderer = renderToast

// safeRender drops a toast whose rendering panics instead of taking the
// whole program down with it.
func safeRender(e notify.Entry) (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Stringer("toast", e.ID).Msg("render toast")
			out = ""
		}
	}()
	return toastRenderer(e)
}

func renderToast(e notify.Entry) string {
	icon := lipgloss.NewStyle().
		Foreground(styles.LevelColor(e.Level)).
		Bold(true).
		Render(styles.LevelIcon(e.Level))
	return styles.ToastStyleFor(e.Level).Render(icon + " " + e.Message)
}

// Overlay composites the toast stack over background in the lower-right
// corner, keeping bottomMargin rows free below it.
func (v ToastView) Overlay(background string, width, height, bottomMargin int) string {
	content := v.View()
	if content == "" {
		return background
	}

	x := max(width-lipgloss.Width(content)-1, 0)
	y := max(height-lipgloss.Height(content)-bottomMargin, 0)
	return overlay(background, content, x, y)
}

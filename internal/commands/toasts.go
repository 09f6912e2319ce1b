package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/core/notify"
	"github.com/colonyops/hrms/internal/core/styles"
)

// PrintToasts writes every notification added to q to w, one line each.
// Commands exit long before a toast would expire, so removals are not
// echoed. The returned function stops printing.
func PrintToasts(w io.Writer, q *notify.Queue) (stop func()) {
	return q.Subscribe(func(c notify.Change) {
		if c.Kind != notify.ChangeAdded {
			return
		}
		_, _ = fmt.Fprintln(w, formatToast(c.Entry))
	})
}

func formatToast(e notify.Entry) string {
	accent := lipgloss.NewStyle().Foreground(styles.LevelColor(e.Level))
	return accent.Render(styles.LevelIcon(e.Level)) + " " + e.Message
}

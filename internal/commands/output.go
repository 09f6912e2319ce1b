package commands

import (
	"fmt"
	"io"

	"github.com/colonyops/hrms/internal/core/styles"
)

// printField writes a "label value" line for detail views.
func printField(w io.Writer, label, value string) {
	_, _ = fmt.Fprintf(w, "%s%s\n", styles.LabelStyle.Render(label), styles.ValueStyle.Render(value))
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/hrms/internal/core/docs"
	"github.com/colonyops/hrms/internal/core/styles"
)

type AboutCmd struct {
	flags *Flags
}

// NewAboutCmd creates a new about command
func NewAboutCmd(flags *Flags) *AboutCmd {
	return &AboutCmd{flags: flags}
}

// Register adds the about command to the application
func (cmd *AboutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "about",
		Usage:  "Describe hrms and its key bindings",
		Action: cmd.run,
	})
	return app
}

func (cmd *AboutCmd) run(_ context.Context, c *cli.Command) error {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = min(w, 100)
	}

	_, _ = fmt.Fprintln(c.Root().Writer, styles.RenderMarkdown(docs.Welcome, width))
	_, _ = fmt.Fprintln(c.Root().Writer)
	_, _ = fmt.Fprintf(c.Root().Writer, "%s %s\n", styles.LabelStyle.Render("API"), cmd.flags.Config.API.BaseURL)
	return nil
}

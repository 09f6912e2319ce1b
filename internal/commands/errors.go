package commands

import (
	"github.com/urfave/cli/v3"
)

// reported converts an error the admin layer already surfaced as a toast into
// a silent non-zero exit, so it is not printed a second time.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return cli.Exit("", 1)
}

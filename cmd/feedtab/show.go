package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/feedtab"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if feedtab.ErrorCode(err) == feedtab.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'feedtab runs' to see stored runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedtab.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:       %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "Source:   %s\n", run.Source)
	fmt.Fprintf(deps.Stdout, "Mode:     %s\n", run.Mode)
	fmt.Fprintf(deps.Stdout, "Created:  %s\n", run.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(deps.Stdout, "Records:  %d (%d new)\n", run.Records, run.Inserted)
	return nil
}

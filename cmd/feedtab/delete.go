package main

import (
	"fmt"

	"github.com/fwojciec/feedtab"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return feedtab.Errorf(feedtab.EINVALID, "use --force to confirm deletion")
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if feedtab.ErrorCode(err) == feedtab.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'feedtab runs' to see stored runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedtab.ErrorMessage(err))
		return err
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, run.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedtab.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s (%d %s from %s)\n", run.ID, run.Inserted, run.Mode, run.Source)
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/feedtab"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := feedtab.RunFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedtab.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'feedtab --db <path> convert' to store one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s  %d/%d new  %s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Mode, r.Inserted, r.Records, r.Source)
	}

	return nil
}

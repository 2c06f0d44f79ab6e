package main

import (
	"fmt"

	"github.com/fwojciec/feedtab"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	var failed int
	for _, path := range c.Inputs {
		html, err := deps.Read(path)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", path, feedtab.ErrorMessage(err))
			failed++
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", path, deps.Detector.DetectMode(html))
	}

	if failed > 0 {
		return feedtab.Errorf(feedtab.ENOTFOUND, "%d of %d inputs could not be read", failed, len(c.Inputs))
	}
	return nil
}

package main

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fwojciec/feedtab"
	"github.com/fwojciec/feedtab/batch"
	"github.com/fwojciec/feedtab/fs"
	ftslog "github.com/fwojciec/feedtab/slog"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if err := c.run(deps); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", feedtab.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *ConvertCmd) run(deps *Dependencies) error {
	if len(c.Inputs) == 0 {
		return feedtab.Errorf(feedtab.EINVALID, "at least one input file required")
	}
	if c.Output != "" && len(c.Inputs) > 1 {
		return feedtab.Errorf(feedtab.EINVALID, "--output can only be used with a single input")
	}
	if c.Output != "" && deps.Results != nil {
		return feedtab.Errorf(feedtab.EINVALID, "--output cannot be combined with --db")
	}

	mode, err := feedtab.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	paths := newOutputPaths(c, deps.Now())
	var writer feedtab.ResultWriter = fs.NewWriter(deps.Encoder, paths.choose)
	if deps.Results != nil {
		writer = deps.Results
	}
	if deps.Logger != nil {
		writer = ftslog.NewLoggingResultWriter(writer, deps.Logger)
	}

	runner := &batch.Runner{
		Read:        deps.Read,
		Converter:   deps.Converter,
		Writer:      writer,
		Mode:        mode,
		Concurrency: c.Concurrency,
	}

	summary, err := runner.Run(deps.Ctx, c.Inputs, nil)
	if err != nil {
		return err
	}

	for _, out := range summary.Outcomes {
		if out.Err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", out.Source, feedtab.ErrorMessage(out.Err))
			continue
		}
		if deps.Results != nil {
			fmt.Fprintf(deps.Stdout, "Saved → %s (%d %s from %s)\n", deps.DBPath, out.Records, out.Mode, out.Source)
			continue
		}
		fmt.Fprintf(deps.Stdout, "Saved → %s\n", paths.get(out.Source))
	}

	switch {
	case summary.Failed == 0:
		return nil
	case len(c.Inputs) == 1:
		return summary.Outcomes[0].Err
	}
	return feedtab.Errorf(feedtab.EINTERNAL, "%d of %d inputs failed", summary.Failed, len(c.Inputs))
}

// outputPaths names workbooks and remembers the name given to each input.
type outputPaths struct {
	output string
	dir    string
	now    time.Time
	seq    map[string]int

	mu     sync.Mutex
	chosen map[string]string
}

func newOutputPaths(c *ConvertCmd, now time.Time) *outputPaths {
	p := &outputPaths{
		output: c.Output,
		dir:    c.Dir,
		now:    now,
		seq:    make(map[string]int, len(c.Inputs)),
		chosen: make(map[string]string, len(c.Inputs)),
	}
	if len(c.Inputs) > 1 {
		for i, in := range c.Inputs {
			p.seq[in] = i + 1
		}
	}
	return p
}

func (p *outputPaths) choose(source string, mode feedtab.Mode) string {
	path := p.output
	if path == "" {
		path = filepath.Join(p.dir, fs.OutputName(mode, p.now, p.seq[source]))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.chosen[source] = path
	return path
}

func (p *outputPaths) get(source string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chosen[source]
}

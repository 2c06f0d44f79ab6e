// Package batch converts many saved pages concurrently.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/feedtab"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// ReadFunc loads the markup of one input.
type ReadFunc func(path string) (string, error)

// Runner converts a list of inputs and hands each result to a writer.
// Inputs are read and converted in parallel; results are written one at a
// time in input order so that writers need no locking.
type Runner struct {
	Read        ReadFunc
	Converter   feedtab.Converter
	Writer      feedtab.ResultWriter
	Mode        feedtab.Mode
	Concurrency int
}

// Outcome is the result of processing a single input.
type Outcome struct {
	Source  string
	Mode    feedtab.Mode
	Records int
	Bytes   int
	Err     error
}

// Summary holds the outcome of a batch run.
type Summary struct {
	Converted int
	Failed    int
	Records   int
	Bytes     int
	// Outcomes has one entry per input, in input order.
	Outcomes []Outcome
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type converted struct {
	position int
	source   string
	bytes    int
	res      *feedtab.Result
	err      error
}

// Run processes sources. A failing input is recorded in its Outcome and does
// not stop the others. The returned error is non-nil only when ctx is done.
func (r *Runner) Run(ctx context.Context, sources []string, progress ProgressFunc) (*Summary, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan converted, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			g.Go(func() error {
				resultCh <- r.convert(gctx, i, source)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	results := make([]converted, total)
	for c := range resultCh {
		completed.Add(1)
		results[c.position] = c

		if progress == nil {
			continue
		}
		ev := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Source:    c.source,
		}
		if c.err != nil {
			ev.Type = ProgressFailed
			ev.Error = c.err
		}
		progress(ev)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &Summary{Outcomes: make([]Outcome, total)}
	for i, c := range results {
		out := Outcome{Source: c.source, Bytes: c.bytes, Err: c.err}
		if c.err == nil {
			out.Mode = c.res.Mode
			out.Records = c.res.Len()
			out.Err = r.Writer.WriteResult(ctx, c.source, c.res)
		}
		summary.Outcomes[i] = out

		if out.Err != nil {
			summary.Failed++
			continue
		}
		summary.Converted++
		summary.Records += out.Records
		summary.Bytes += out.Bytes
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return summary, nil
}

func (r *Runner) convert(ctx context.Context, position int, source string) converted {
	c := converted{position: position, source: source}
	if err := ctx.Err(); err != nil {
		c.err = err
		return c
	}

	html, err := r.Read(source)
	if err != nil {
		c.err = err
		return c
	}
	c.bytes = len(html)

	c.res, c.err = r.Converter.Convert(html, r.Mode)
	return c
}

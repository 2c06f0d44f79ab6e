package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/feedtab"
	"github.com/fwojciec/feedtab/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Read      batch.ReadFunc
	Detector  feedtab.ModeDetector
	Converter feedtab.Converter
	Encoder   feedtab.ResultEncoder

	// Set only when a database is configured.
	DBPath  string
	Results feedtab.ResultWriter
	Runs    feedtab.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log each conversion step to stderr"`
	DB      string `name:"db" env:"FEEDTAB_DB" help:"SQLite database to store results in instead of workbooks"`
	Config  string `name:"config" env:"FEEDTAB_CONFIG" help:"YAML file overriding selectors and marker phrases"`

	Convert ConvertCmd `cmd:"" help:"Convert saved activity pages to Excel workbooks"`
	Detect  DetectCmd  `cmd:"" help:"Print whether each saved page is a posts or comments feed"`
	Runs    RunsCmd    `cmd:"" help:"List conversions stored in the database"`
	Show    ShowCmd    `cmd:"" help:"Show a stored conversion"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored conversion and the rows it added"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Inputs      []string `arg:"" name:"input" help:"Saved activity page (.html)"`
	Mode        string   `short:"m" enum:"auto,posts,comments" default:"auto" help:"Feed type (auto, posts, comments)"`
	Output      string   `short:"o" help:"Output .xlsx file (single input only)"`
	Dir         string   `short:"d" default:"." help:"Directory for automatically named workbooks"`
	Concurrency int      `short:"c" default:"4" env:"FEEDTAB_CONCURRENCY" help:"Concurrent conversion limit"`
}

// DetectCmd is the "detect" subcommand.
type DetectCmd struct {
	Inputs []string `arg:"" name:"input" help:"Saved activity page (.html)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Source string `help:"Only show runs for this input path"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of runs to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

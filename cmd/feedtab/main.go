package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/feedtab"
	"github.com/fwojciec/feedtab/extract"
	"github.com/fwojciec/feedtab/fs"
	"github.com/fwojciec/feedtab/goquery"
	ftslog "github.com/fwojciec/feedtab/slog"
	"github.com/fwojciec/feedtab/sqlite"
	"github.com/fwojciec/feedtab/xlsx"
	"github.com/joho/godotenv"
)

func main() {
	// Values in a local .env file become defaults for FEEDTAB_* variables.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened only for commands that store or list runs.
	DB *sqlite.DB

	// Now returns the time used for output names and undated records.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("feedtab"),
		kong.Description("Convert saved LinkedIn activity pages to spreadsheets"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'feedtab --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	now := m.Now
	if now == nil {
		now = time.Now
	}

	cfg := extract.DefaultConfig()
	if cli.Config != "" {
		if cfg, err = extract.LoadConfig(cli.Config); err != nil {
			return err
		}
	}

	detector := ftslog.NewLoggingDetector(feedtab.Detector{}, logger)
	deps.Logger = logger
	deps.Now = now
	deps.Read = fs.ReadDocument
	deps.Detector = detector
	deps.Converter = ftslog.NewLoggingConverter(
		extract.NewConverter(goquery.NewParser(),
			extract.WithConfig(cfg),
			extract.WithDetector(detector),
			extract.WithClock(now),
		),
		logger,
	)
	deps.Encoder = xlsx.NewEncoder()

	cmd := strings.Fields(kongCtx.Command())[0]
	if cli.DB != "" || needsDB[cmd] {
		if cli.DB == "" {
			return feedtab.Errorf(feedtab.EINVALID, "%s requires a database: pass --db or set FEEDTAB_DB", cmd)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		results := sqlite.NewResultService(m.DB)
		deps.DBPath = cli.DB
		deps.Results = results
		deps.Runs = results
	}

	return kongCtx.Run(deps)
}

// needsDB lists the commands that only work against a database.
var needsDB = map[string]bool{
	"runs":   true,
	"show":   true,
	"delete": true,
}

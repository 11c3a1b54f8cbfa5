package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/iw2rmb/hexhog"
	"github.com/iw2rmb/hexhog/buffer"
	"github.com/iw2rmb/hexhog/editor"
	"github.com/iw2rmb/hexhog/internal/config"
)

const envLog = "HEXHOG_LOG"

type options struct {
	path         string
	configPath   string
	logPath      string
	historyLimit int
	trackAppends bool
	version      bool
}

var errUsage = errors.New("usage: hexhog [flags] <file>")

func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("hexhog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file (default $HEXHOG_CONFIG or <user config dir>/hexhog/config.toml).")
	fs.StringVar(&opts.logPath, "log", os.Getenv(envLog), "Append logs to this file.")
	fs.IntVar(&opts.historyLimit, "history", 0, "Maximum undo entries kept; 0 keeps all.")
	fs.BoolVar(&opts.trackAppends, "track-appends", false, "Record bytes typed on the append slot in undo history.")
	fs.BoolVar(&opts.version, "version", false, "Show version information and exit.")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.version {
		return opts, nil
	}

	if fs.NArg() != 1 {
		return opts, errUsage
	}
	opts.path = fs.Arg(0)
	if opts.historyLimit < 0 {
		return opts, fmt.Errorf("-history must be >= 0, got %d", opts.historyLimit)
	}
	return opts, nil
}

func newLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "hexhog",
	})
	return logger, f, nil
}

// loadConfig never fails startup. Any problem, from an unreadable or
// malformed file to a single bad field, is reported on stderr and in the log,
// and the affected settings fall back to their defaults.
func loadConfig(path string, logger *log.Logger, stderr io.Writer) config.Config {
	report := func(err error) {
		fmt.Fprintf(stderr, "hexhog: %v\n", err)
		logger.Warn("config ignored", "path", path, "err", err)
	}

	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			report(err)
			return config.Default()
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err == nil {
		return cfg
	}

	var fe *config.FieldError
	if !errors.As(err, &fe) {
		report(err)
		return config.Default()
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			report(e)
		}
	} else {
		report(err)
	}
	return cfg
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}
	if opts.version {
		fmt.Fprintln(stdout, hexhog.Banner())
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	logger, closer, err := newLogger(opts.logPath)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg := loadConfig(opts.configPath, logger, stderr)

	sess, err := buffer.Open(opts.path, buffer.Options{
		HistoryLimit: opts.historyLimit,
		TrackAppends: opts.trackAppends,
	})
	if err != nil {
		return err
	}
	logger.Info("opened", "path", opts.path, "bytes", sess.Len())

	ed := editor.NewWithSession(editor.Config{
		Path:      opts.path,
		Style:     editor.StyleFromTheme(cfg.Theme),
		Charset:   cfg.Charset,
		KeyMap:    editor.DefaultKeyMap(),
		Clipboard: newSystemClipboard(),
		Logger:    logger,
	}, sess)

	p := tea.NewProgram(newApp(ed), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("exited", "path", opts.path, "modified", sess.Modified())
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "hexhog: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/leo/claude-sessions/internal/agent"
	"github.com/leo/claude-sessions/internal/config"
	"github.com/leo/claude-sessions/internal/session"
	"github.com/leo/claude-sessions/internal/tui"
)

var (
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		jsonOut    = flag.Bool("json", false, "print the detection result as JSON")
		checkDir   = flag.String("check", "", "exit 0 if `dir` has an active session, 1 otherwise")
		configPath = flag.String("config", config.DefaultPath(), "config file `path`")
	)
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}

	interactive := *checkDir == "" && !*jsonOut && isatty.IsTerminal(os.Stdout.Fd())
	closeLog, err := setupLogging(cfg, interactive)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 2
	}
	defer closeLog()

	if interactive {
		p := tea.NewProgram(tui.NewModel(tui.Options{
			Detect:      session.Detect,
			HistoryPath: cfg.History.Path,
			Timeout:     cfg.Detect.Timeout,
		}), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Detect.Timeout)
	defer cancel()
	res := agent.Load(ctx, session.Detect)
	slog.Debug("detection finished", "supported", res.Supported, "active", res.Len())

	switch {
	case *checkDir != "":
		if !agent.IsActive(res, *checkDir) {
			return 1
		}
	case *jsonOut:
		if err := json.NewEncoder(os.Stdout).Encode(res); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return 1
		}
	default:
		printPlain(os.Stdout, res)
	}
	return 0
}

func printPlain(w io.Writer, res session.Result) {
	if !res.Supported {
		fmt.Fprintln(w, dimStyle.Render("session detection not supported on this platform"))
		return
	}
	for _, path := range res.Paths() {
		fmt.Fprintln(w, activeStyle.Render("●")+" "+path)
	}
}

// setupLogging installs the default slog logger. While the TUI owns the
// terminal, logs go to the configured file or nowhere.
func setupLogging(cfg *config.Config, interactive bool) (func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open log file")
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	return closeFn, nil
}

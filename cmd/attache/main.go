package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/attache/internal/assistant"
	"github.com/jeanpaul/attache/internal/command"
	"github.com/jeanpaul/attache/internal/config"
	"github.com/jeanpaul/attache/internal/headless"
	"github.com/jeanpaul/attache/internal/storage"
	"github.com/jeanpaul/attache/internal/tui"
	"github.com/jeanpaul/attache/pkg/version"
)

func main() {
	dataFlag := flag.String("data", "", "Data directory (overrides config)")
	headlessFlag := flag.Bool("headless", false, "Run as a plain stdin/stdout loop (no TUI)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("attache %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	// First run leaves an editable config file behind; failure to write one
	// is not fatal, defaults still apply.
	if _, err := config.WriteDefault(); err != nil {
		fmt.Fprintln(os.Stderr, tui.WarningStyle.Render("warning: could not write default config: "+err.Error()))
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}
	if *dataFlag != "" {
		cfg.DataDir = *dataFlag
	}

	store := storage.New(cfg.DataDir)
	book, notes, warnings := store.Load()

	a := assistant.New(book, notes, store, cfg.FuzzyCutoff)

	if *headlessFlag || !isTerminal() {
		runHeadless(a, warnings)
		return
	}
	runTUI(a, warnings)
}

func runHeadless(a *assistant.Assistant, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning: "+w)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run flushes to disk on interrupt before reporting the cancellation.
	err := headless.Run(ctx, a, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal("%s", err)
	}
}

func runTUI(a *assistant.Assistant, warnings []string) {
	m := tui.NewModel(a, warnings)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fatal("TUI error: %s", err)
	}
}

// isTerminal checks if stdin is a terminal
func isTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	var cmds string
	for _, s := range command.Table() {
		cmds += fmt.Sprintf("  %-38s %s\n", s.Usage, s.Help)
	}

	fmt.Println(`
` + tui.BannerStyle.Render("Attache") + ` - personal contacts and notes for your terminal

` + tui.UserLabelStyle.Render("USAGE:") + `
  attache [flags]             Start the interactive assistant

` + tui.UserLabelStyle.Render("FLAGS:") + `
  --data <dir>                Data directory (overrides config)
  --headless                  Plain stdin/stdout loop (no TUI)
  --version                   Show version
  --help, -h                  Show this help

` + tui.UserLabelStyle.Render("COMMANDS:") + `
` + cmds + `
Commands also answer to plain phrases ("show me all my contacts") and
forgive small typos. Config lives at ` + config.ConfigPath() + `.`)
}

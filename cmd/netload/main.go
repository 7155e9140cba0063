// cmd/netload/main.go
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rusenback/netload/internal/collector"
	"github.com/rusenback/netload/internal/config"
	"github.com/rusenback/netload/internal/storage"
	"github.com/rusenback/netload/internal/tui"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	setupLogging(cfg.LogFile)

	coll, err := collector.New(collector.Config{Ignore: cfg.Ignore})
	if err != nil {
		fmt.Printf("❌ Failed to enumerate network interfaces: %v\n", err)
		os.Exit(1)
	}

	if cfg.DebugInfo {
		coll.PrintDebugInfo(os.Stdout)
		return
	}

	if len(coll.Devices()) == 0 {
		fmt.Println("❌ No active network interfaces found.")
		fmt.Println("\nCheck that at least one interface is up, or adjust --ignore.")
		os.Exit(1)
	}

	store, err := storage.NewStorage()
	if err != nil {
		fmt.Printf("❌ Failed to initialize history storage: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	m := tui.NewModel(coll, store, cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes slog to the configured file; the terminal itself
// belongs to the TUI.
func setupLogging(path string) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

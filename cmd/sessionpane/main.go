package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tui-demos/sessionpane/internal/config"
	"github.com/tui-demos/sessionpane/internal/session"
	"github.com/tui-demos/sessionpane/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stdout belongs to the renderer, so debug output goes to a file
	if os.Getenv("SESSIONPANE_DEBUG") != "" {
		f, err := tea.LogToFile("sessionpane-debug.log", "debug")
		if err != nil {
			log.Fatalf("debug log: %v", err)
		}
		defer f.Close()
	}

	// the one store for the whole tree; each pane receives it by reference
	store := session.NewStore()

	p := tea.NewProgram(tui.New(cfg, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrel/setlist/internal/app"
	"github.com/avrel/setlist/internal/config"
	"github.com/avrel/setlist/internal/icons"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	icons.Init(cfg.Icons)

	p := tea.NewProgram(app.New(cfg, os.Args[1:]), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

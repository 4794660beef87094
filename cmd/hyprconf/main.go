package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/reinhart/hyprconf/internal/configuration"
	"github.com/reinhart/hyprconf/internal/hyprconf"
	"github.com/reinhart/hyprconf/internal/hyprctl"
	"github.com/reinhart/hyprconf/internal/logger"
	"github.com/reinhart/hyprconf/internal/ui"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the Hyprland config file (defaults to ~/.config/hypr/hyprland.conf)")
		initFile = flag.Bool("init", false, "create a minimal default config when none exists")
		noBackup = flag.Bool("no-backup", false, "skip the timestamped backup on save")
	)
	flag.Parse()

	// Load Configuration
	cfg, err := configuration.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *noBackup {
		cfg.Editor.Backup = false
	}

	// Initialize Logger
	logger.Init()

	// If DEBUG is set, redirect logs to file immediately so we catch early init issues
	if logger.DebugMode {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal: could not open debug.log:", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.SetOutput(f)
		logger.Debug("Logger initialized")
	}

	// Resolve the target file: flag > env/settings file > conventional path.
	// The conventional default is supplied only here, never inside the
	// editor itself.
	path := *filePath
	if path == "" {
		path = cfg.Editor.ConfigPath
	}
	if path == "" {
		path = hyprconf.DefaultPath()
	}
	logger.Debug("Editing %s", path)

	editor := hyprconf.New(path)
	err = editor.Load()
	if errors.Is(err, hyprconf.ErrNotFound) && *initFile {
		err = editor.CreateDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reloader := &hyprctl.Reloader{
		Command: cfg.Reload.Command,
		Timeout: time.Duration(cfg.Reload.TimeoutSeconds) * time.Second,
	}

	model := ui.NewModel(editor, reloader, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running hyprconf: %v\n", err)
		os.Exit(1)
	}
}

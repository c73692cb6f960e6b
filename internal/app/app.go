package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/launcher"
	"github.com/atomicstack/popup-launcher/internal/menu"
	"github.com/atomicstack/popup-launcher/internal/source"
	"github.com/atomicstack/popup-launcher/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	RootMenu   string
	ConfigPath string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run loads the launcher configuration, builds the menu tree from the
// root document, and executes the Bubble Tea program. Build failures
// abort before any UI is shown.
func Run(cfg Config) error {
	launcherCfg, err := launcher.Load(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load launcher configuration: %w", err)
	}

	resolver := source.New(launcherCfg.Base)
	builder := menu.NewBuilder(resolver, launcherCfg)
	root, err := builder.Build(cfg.RootMenu)
	if err != nil {
		return fmt.Errorf("build menu tree: %w", err)
	}

	model := ui.NewModel(builder, root, cfg.RootMenu, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-launcher/internal/logging"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/menu"
	"github.com/atomicstack/popup-launcher/internal/spawn"
	"github.com/atomicstack/popup-launcher/internal/theme"
	"github.com/atomicstack/popup-launcher/internal/ui/state"
)

var styles = theme.Default()

const defaultReservedRows = 4 // header, search input, spacing

// Model implements the Bubble Tea model for the launcher popup menu.
type Model struct {
	builder *menu.Builder
	rootRef string
	stack   []*state.Level

	search textinput.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg  string
	infoMsg string

	// spawnCommand is swappable for tests.
	spawnCommand func(command string) error
}

// NewModel builds the UI model over an already constructed menu tree.
func NewModel(builder *menu.Builder, root *menu.Model, rootRef string, width, height int, showFooter, verbose bool) *Model {
	search := textinput.New()
	search.Prompt = "> "
	search.Placeholder = "filter"
	search.PromptStyle = *styles.FilterPrompt
	search.PlaceholderStyle = *styles.FilterPlaceholder
	search.TextStyle = *styles.Filter
	search.Focus()

	return &Model{
		builder:      builder,
		rootRef:      rootRef,
		stack:        []*state.Level{state.NewLevel(root)},
		search:       search,
		width:        width,
		height:       height,
		fixedWidth:   width > 0,
		fixedHeight:  height > 0,
		showFooter:   showFooter,
		verbose:      verbose,
		spawnCommand: spawn.Detached,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) currentLevel() *state.Level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Model) atRoot() bool {
	return len(m.stack) <= 1
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	level := m.currentLevel()
	if level == nil {
		return m, tea.Quit
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.atRoot() {
			return m, tea.Quit
		}
		m.popLevel()
		return m, nil
	case "up", "ctrl+p":
		level.MoveCursorUp()
		return m, nil
	case "down", "ctrl+n":
		level.MoveCursorDown()
		return m, nil
	case "pgup":
		level.MoveCursorPageUp(m.maxVisibleRows())
		return m, nil
	case "pgdown":
		level.MoveCursorPageDown(m.maxVisibleRows())
		return m, nil
	case "home":
		level.MoveCursorHome()
		return m, nil
	case "end":
		level.MoveCursorEnd()
		return m, nil
	case "left":
		if !m.atRoot() {
			m.popLevel()
		}
		return m, nil
	case "enter", "right":
		return m.activate(level.Selected())
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != level.Filter {
		level.SetFilter(m.search.Value())
		events.UI.Filter(level.Filter, level.HasVisible)
	}
	return m, cmd
}

// activate performs the action for the selected row: commands spawn and
// close the popup, submenus push a level, file choices rebuild the tree
// from a new root document. Titles and separators have no action.
func (m *Model) activate(item *menu.Item) (tea.Model, tea.Cmd) {
	if item == nil {
		return m, nil
	}
	m.errMsg = ""
	m.infoMsg = ""

	switch item.Kind {
	case menu.KindCommand:
		if err := m.spawnCommand(item.Command); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
			return m, nil
		}
		if m.verbose {
			m.infoMsg = fmt.Sprintf("started: %s", item.Command)
			return m, nil
		}
		return m, tea.Quit

	case menu.KindSubMenu:
		m.pushLevel(state.NewLevel(item.Sub))
		return m, nil

	case menu.KindFileChoice:
		if err := m.switchRoot(item.Target); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) pushLevel(level *state.Level) {
	m.stack = append(m.stack, level)
	m.search.SetValue(level.Filter)
	events.UI.Push(level.Title, level.Model.Level)
}

func (m *Model) popLevel() {
	popped := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.search.SetValue(m.currentLevel().Filter)
	events.UI.Pop(popped.Title)
}

// switchRoot discards the current tree and rebuilds it from a new root
// document. The previous tree stays in place when the rebuild fails.
func (m *Model) switchRoot(ref string) error {
	root, err := m.builder.Build(ref)
	if err != nil {
		return fmt.Errorf("switch root to %q: %w", ref, err)
	}
	m.rootRef = ref
	m.stack = []*state.Level{state.NewLevel(root)}
	m.search.SetValue("")
	events.App.RootSwitch(ref)
	return nil
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	reserved := defaultReservedRows
	if m.showFooter {
		reserved++
	}
	if m.errMsg != "" || m.infoMsg != "" {
		reserved++
	}
	rows := m.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// breadcrumb returns the path of menu titles from the root to the
// current level.
func (m *Model) breadcrumb() []string {
	segments := make([]string, 0, len(m.stack))
	for _, level := range m.stack {
		segments = append(segments, strings.TrimSpace(level.Title))
	}
	return segments
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipeslide/internal/config"
	"github.com/vovakirdan/pipeslide/internal/core"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide"
	"github.com/vovakirdan/pipeslide/internal/games/pipeslide/levels"
	"github.com/vovakirdan/pipeslide/internal/registry"
)

// Option rows shown under the game list.
const (
	optionDifficulty = iota
	optionLayout
	optionCount
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var presets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuItem represents a selectable game variant.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// Selection is what the player picked in the menu.
type Selection struct {
	GameID     string
	Difficulty config.DifficultyPreset
	Layout     string // Empty means a random board
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	layouts   []string // Index 0 is the random board
	cursor    int      // Over items, then option rows
	diffIdx   int
	layoutIdx int

	width  int
	height int
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model

	quitting       bool
	selected       *Selection
	openScoreboard bool
}

// NewMenuModel creates a menu listing every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description})
	}

	layouts := []string{""}
	ids, err := levels.Builtin().ListIDs()
	if err != nil {
		log.Warn("cannot list builtin layouts", "err", err)
	}
	layouts = append(layouts, ids...)

	// Start from whatever the command line chose.
	opts := pipeslide.GetOptions()
	m := MenuModel{
		items:   items,
		layouts: layouts,
		diffIdx: 1,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	for i, p := range presets {
		if p == opts.Difficulty {
			m.diffIdx = i
		}
	}
	for i, l := range layouts {
		if l == opts.Layout {
			m.layoutIdx = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m MenuModel) rows() int {
	return len(m.items) + optionCount
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = (m.cursor - 1 + m.rows()) % m.rows()

	case MenuActionDown:
		m.cursor = (m.cursor + 1) % m.rows()

	case MenuActionPrev:
		m.cycleOption(-1)

	case MenuActionNext:
		m.cycleOption(1)

	case MenuActionSelect:
		if m.cursor < len(m.items) {
			m.selected = &Selection{
				GameID:     m.items[m.cursor].GameID,
				Difficulty: presets[m.diffIdx],
				Layout:     m.layouts[m.layoutIdx],
			}
			return m, tea.Quit
		}
		m.cycleOption(1)

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// cycleOption changes the option under the cursor, wrapping around.
func (m *MenuModel) cycleOption(delta int) {
	switch m.cursor - len(m.items) {
	case optionDifficulty:
		m.diffIdx = (m.diffIdx + delta + len(presets)) % len(presets)
	case optionLayout:
		m.layoutIdx = (m.layoutIdx + delta + len(m.layouts)) % len(m.layouts)
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P I P E S L I D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Keep the water flowing"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(m.row(i, item.Title))
		if i == m.cursor && item.Description != "" {
			b.WriteString(centerText(menuDimStyle.Render(item.Description), m.width))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	layout := m.layouts[m.layoutIdx]
	if layout == "" {
		layout = "random"
	}
	b.WriteString(m.row(len(m.items)+optionDifficulty, fmt.Sprintf("Difficulty: < %s >", presets[m.diffIdx])))
	b.WriteString(m.row(len(m.items)+optionLayout, fmt.Sprintf("Layout: < %s >", layout)))

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.ShortHelpView([]key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Right, m.keys.Confirm, m.keys.Scores, m.keys.Quit,
	})), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) row(i int, text string) string {
	if i == m.cursor {
		return centerText(menuCursorStyle.Render("> "+text), m.width) + "\n"
	}
	return centerText("  "+text, m.width) + "\n"
}

// Selected returns the selected variant, or nil if none.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// NewGame creates the selected variant with the menu's difficulty and
// layout laid over the process-wide options.
func NewGame(sel Selection) (registry.Game, error) {
	if !registry.Exists(sel.GameID) {
		return nil, fmt.Errorf("%w %q", registry.ErrUnknownGame, sel.GameID)
	}
	opts := pipeslide.GetOptions()
	opts.Difficulty = sel.Difficulty
	opts.Layout = sel.Layout
	return pipeslide.New(sel.GameID, opts), nil
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = *m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}

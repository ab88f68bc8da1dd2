// Package tui implements the interactive calculator interface using
// bubbletea. The flow is a small state machine: pick a category, pick a
// shape, enter its dimensions one at a time, read the result, repeat.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"geocalc/cmd/geo/ui"
	"geocalc/internal/config"
	"geocalc/internal/geometry"
	"geocalc/internal/journal"
	"geocalc/internal/session"
)

// stage tracks where the user is in the calculation flow.
type stage int

const (
	stageCategory stage = iota
	stageShape
	stageDimensions
	stageResult
)

// Model is the bubbletea model for the interactive calculator.
type Model struct {
	// UI components
	categoryList list.Model
	shapeList    list.Model
	input        textinput.Model
	historyView  viewport.Model
	styles       ui.Styles
	renderer     *glamour.TermRenderer

	// Flow state
	stage       stage
	category    geometry.Category
	shape       geometry.Shape
	dimIndex    int
	dims        map[string]float64
	result      *geometry.Result
	inputErr    string
	journalWarn string
	showHistory bool

	// Collaborators
	cfg     config.Config
	history *session.History
	journal *journal.Writer

	width  int
	height int
	ready  bool
}

// New builds the initial model. The history and journal writer are owned by
// the caller so their contents survive the program teardown.
func New(cfg config.Config, hist *session.History, jw *journal.Writer) Model {
	styles := ui.NewStyles(ui.ThemeNamed(cfg.Theme))

	cl := newMenuList("Pick a category", categoryItems(), styles)

	ti := textinput.New()
	ti.Prompt = "│ "
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	hv := viewport.New(80, 20)
	hv.SetContent("")

	return Model{
		categoryList: cl,
		input:        ti,
		historyView:  hv,
		styles:       styles,
		renderer:     newRenderer(styles, 80),
		stage:        stageCategory,
		cfg:          cfg,
		history:      hist,
		journal:      jw,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// newMenuList builds a list with the chrome the calculator menus share.
func newMenuList(title string, items []list.Item, styles ui.Styles) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Title
	return l
}

// newRenderer builds the markdown renderer for result blocks.
func newRenderer(styles ui.Styles, width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	var r *glamour.TermRenderer
	if styles.Theme.IsDark {
		r, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	} else {
		r, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(width),
		)
	}
	return r
}

// restyle rebuilds all themed components after a config change without
// touching the flow state.
func (m *Model) restyle() {
	m.styles = ui.NewStyles(ui.ThemeNamed(m.cfg.Theme))
	m.renderer = newRenderer(m.styles, m.width-8)
	m.categoryList.Styles.Title = m.styles.Title
	m.shapeList.Styles.Title = m.styles.Title
	m.input.PromptStyle = m.styles.Prompt
	m.input.TextStyle = m.styles.UserInput
}

// promptForDimension points the text input at the dimension at dimIndex.
func (m *Model) promptForDimension() {
	d := m.shape.Dimensions[m.dimIndex]
	placeholder := d.Label
	if d.Hint != "" {
		placeholder = fmt.Sprintf("%s (%s)", d.Label, d.Hint)
	}
	m.input.Placeholder = placeholder
	m.input.Reset()
	m.input.Focus()
}

// resetFlow returns to the category menu for a fresh calculation.
func (m *Model) resetFlow() {
	m.stage = stageCategory
	m.shape = geometry.Shape{}
	m.dims = nil
	m.dimIndex = 0
	m.result = nil
	m.inputErr = ""
	m.journalWarn = ""
	m.input.Reset()
}

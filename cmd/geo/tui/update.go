package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"geocalc/internal/config"
	"geocalc/internal/geometry"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case journalWrittenMsg:
		if msg.err != nil {
			m.journalWarn = msg.err.Error()
		}
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = config.Config(msg)
		m.restyle()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHistory {
		switch msg.Type {
		case tea.KeyTab, tea.KeyEsc:
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd
	}

	switch m.stage {
	case stageCategory:
		return m.keyCategory(msg)
	case stageShape:
		return m.keyShape(msg)
	case stageDimensions:
		return m.keyDimensions(msg)
	case stageResult:
		return m.keyResult(msg)
	}
	return m, nil
}

func (m Model) keyCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		return m, tea.Quit
	case msg.Type == tea.KeyTab:
		return m.openHistory(), nil
	case msg.Type == tea.KeyEnter:
		item, ok := m.categoryList.SelectedItem().(categoryItem)
		if !ok {
			return m, nil
		}
		m.category = item.cat
		m.shapeList = newMenuList("Pick a shape", shapeItems(item.cat), m.styles)
		m.shapeList.SetSize(m.listWidth(), m.listHeight())
		m.stage = stageShape
		return m, nil
	}

	var cmd tea.Cmd
	m.categoryList, cmd = m.categoryList.Update(msg)
	return m, cmd
}

func (m Model) keyShape(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		m.stage = stageCategory
		return m, nil
	case msg.Type == tea.KeyTab:
		return m.openHistory(), nil
	case msg.Type == tea.KeyEnter:
		item, ok := m.shapeList.SelectedItem().(shapeItem)
		if !ok {
			return m, nil
		}
		m.shape = item.shape
		m.dims = make(map[string]float64, len(item.shape.Dimensions))
		m.dimIndex = 0
		m.inputErr = ""
		m.promptForDimension()
		m.stage = stageDimensions
		return m, nil
	}

	var cmd tea.Cmd
	m.shapeList, cmd = m.shapeList.Update(msg)
	return m, cmd
}

func (m Model) keyDimensions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Step back one dimension, or back out to the shape menu.
		if m.dimIndex > 0 {
			m.dimIndex--
			m.inputErr = ""
			m.promptForDimension()
			return m, nil
		}
		m.stage = stageShape
		m.inputErr = ""
		return m, nil

	case tea.KeyEnter:
		return m.acceptDimension()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// acceptDimension parses and validates the current input. Bad values keep
// the user on the same prompt with a message; a degenerate combination sends
// them back to the first dimension.
func (m Model) acceptDimension() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.inputErr = "enter a number, e.g. 3.5"
		m.input.Reset()
		return m, nil
	}

	d := m.shape.Dimensions[m.dimIndex]
	if err := m.shape.ValidateDimension(d.Name, v); err != nil {
		m.inputErr = err.Error()
		m.input.Reset()
		return m, nil
	}

	m.dims[d.Name] = v
	m.inputErr = ""
	if m.dimIndex+1 < len(m.shape.Dimensions) {
		m.dimIndex++
		m.promptForDimension()
		return m, nil
	}

	res, err := m.shape.Compute(m.dims)
	if err != nil {
		// Dimensions validated one by one, so this is a degenerate
		// combination; restart the prompts for this shape.
		m.inputErr = err.Error()
		m.dims = make(map[string]float64, len(m.shape.Dimensions))
		m.dimIndex = 0
		m.promptForDimension()
		return m, nil
	}

	m.result = &res
	m.journalWarn = ""
	m.history.Add(res)
	m.stage = stageResult
	return m, m.appendJournal(res)
}

func (m Model) keyResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc || msg.String() == "q":
		return m, tea.Quit
	case msg.Type == tea.KeyTab:
		return m.openHistory(), nil
	case msg.Type == tea.KeyEnter || msg.String() == "n":
		m.resetFlow()
		return m, nil
	}
	return m, nil
}

// appendJournal writes the result in the background so a slow disk never
// blocks the interface.
func (m Model) appendJournal(res geometry.Result) tea.Cmd {
	jw := m.journal
	return func() tea.Msg {
		return journalWrittenMsg{err: jw.Append(res)}
	}
}

func (m Model) openHistory() Model {
	m.historyView.SetContent(m.renderHistory())
	m.historyView.GotoTop()
	m.showHistory = true
	return m
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	m.categoryList.SetSize(m.listWidth(), m.listHeight())
	m.shapeList.SetSize(m.listWidth(), m.listHeight())
	m.input.Width = max(20, msg.Width-8)
	m.historyView.Width = max(20, msg.Width-4)
	m.historyView.Height = max(5, m.listHeight())
	m.renderer = newRenderer(m.styles, msg.Width-8)
	return m
}

func (m Model) listWidth() int {
	return max(20, m.width-4)
}

func (m Model) listHeight() int {
	headerHeight := 3
	footerHeight := 2
	return max(5, m.height-headerHeight-footerHeight)
}

package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"geocalc/internal/config"
	"geocalc/internal/journal"
	"geocalc/internal/session"
)

func newTestModel() Model {
	cfg := config.DefaultConfig()
	cfg.Theme = "light"
	m := New(cfg, session.NewHistory(), journal.NewWriter("", "test"))
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return resized.(Model)
}

func pressKey(t *testing.T, m Model, key tea.KeyType) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: key})
	return next.(Model)
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

// typeValue types a dimension value and presses enter, returning the model
// and any command the submission produced.
func typeValue(t *testing.T, m Model, value string) (Model, tea.Cmd) {
	t.Helper()
	for _, r := range value {
		m = pressRune(t, m, r)
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestUpdate_WindowSize(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	if m.width != 100 || m.height != 40 {
		t.Errorf("expected 100x40, got %dx%d", m.width, m.height)
	}
	if !m.ready {
		t.Errorf("expected model to be ready after resize")
	}
}

func TestUpdate_CategorySelection(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	if m.stage != stageCategory {
		t.Fatalf("expected initial stage to be category, got %v", m.stage)
	}

	m = pressKey(t, m, tea.KeyEnter)
	if m.stage != stageShape {
		t.Fatalf("expected shape stage after selecting category, got %v", m.stage)
	}
	if len(m.shapeList.Items()) == 0 {
		t.Errorf("expected shape list to be populated")
	}
}

func TestUpdate_FullCircleFlow(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	m = pressKey(t, m, tea.KeyEnter) // 2D
	m = pressKey(t, m, tea.KeyEnter) // circle, first in the menu
	if m.stage != stageDimensions {
		t.Fatalf("expected dimensions stage, got %v", m.stage)
	}

	m, cmd := typeValue(t, m, "2")
	if m.stage != stageResult {
		t.Fatalf("expected result stage, got %v (inputErr=%q)", m.stage, m.inputErr)
	}
	if m.result == nil {
		t.Fatal("expected a result")
	}

	area, ok := m.result.Metric("area")
	if !ok {
		t.Fatal("expected an area metric")
	}
	if diff := math.Abs(area - 4*math.Pi); diff > 1e-12 {
		t.Errorf("circle r=2 area: got %v, want %v", area, 4*math.Pi)
	}
	if m.history.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", m.history.Len())
	}

	// The journal command must run without error even when disabled.
	if cmd == nil {
		t.Fatal("expected a journal command")
	}
	if msg, ok := cmd().(journalWrittenMsg); !ok {
		t.Errorf("expected journalWrittenMsg")
	} else if msg.err != nil {
		t.Errorf("disabled journal should not error: %v", msg.err)
	}
}

func TestUpdate_InvalidInputReprompts(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	m = pressKey(t, m, tea.KeyEnter) // 2D
	m = pressKey(t, m, tea.KeyEnter) // circle

	m, _ = typeValue(t, m, "abc")
	if m.stage != stageDimensions {
		t.Fatalf("expected to stay on dimensions stage, got %v", m.stage)
	}
	if m.inputErr == "" {
		t.Error("expected an input error for non-numeric value")
	}

	m, _ = typeValue(t, m, "-1")
	if m.stage != stageDimensions {
		t.Fatalf("expected to stay on dimensions stage, got %v", m.stage)
	}
	if !strings.Contains(m.inputErr, "greater than zero") {
		t.Errorf("expected non-positive rejection, got %q", m.inputErr)
	}

	// Recovery: a valid value still completes the calculation.
	m, _ = typeValue(t, m, "1.5")
	if m.stage != stageResult {
		t.Fatalf("expected result stage after recovery, got %v", m.stage)
	}
}

func TestUpdate_DegenerateTriangleRestartsPrompts(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	m = pressKey(t, m, tea.KeyEnter) // 2D
	// circle, square, rectangle, triangle
	m = pressKey(t, m, tea.KeyDown)
	m = pressKey(t, m, tea.KeyDown)
	m = pressKey(t, m, tea.KeyDown)
	m = pressKey(t, m, tea.KeyEnter)
	if m.shape.Name != "triangle" {
		t.Fatalf("expected triangle selected, got %q", m.shape.Name)
	}

	m, _ = typeValue(t, m, "1")
	m, _ = typeValue(t, m, "1")
	m, _ = typeValue(t, m, "5")

	if m.stage != stageDimensions {
		t.Fatalf("expected to be re-prompted, got stage %v", m.stage)
	}
	if !strings.Contains(m.inputErr, "triangle inequality") {
		t.Errorf("expected triangle inequality message, got %q", m.inputErr)
	}
	if m.dimIndex != 0 {
		t.Errorf("expected prompts to restart at the first side, got index %d", m.dimIndex)
	}
}

func TestUpdate_EscStepsBack(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	m = pressKey(t, m, tea.KeyEnter) // 2D
	m = pressKey(t, m, tea.KeyEnter) // circle
	m = pressKey(t, m, tea.KeyEsc)
	if m.stage != stageShape {
		t.Fatalf("expected esc to return to shape menu, got %v", m.stage)
	}
	m = pressKey(t, m, tea.KeyEsc)
	if m.stage != stageCategory {
		t.Fatalf("expected esc to return to category menu, got %v", m.stage)
	}
}

func TestUpdate_NewCalculationAfterResult(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	m = pressKey(t, m, tea.KeyEnter)
	m = pressKey(t, m, tea.KeyEnter)
	m, _ = typeValue(t, m, "2")
	if m.stage != stageResult {
		t.Fatalf("expected result stage, got %v", m.stage)
	}

	m = pressKey(t, m, tea.KeyEnter)
	if m.stage != stageCategory {
		t.Fatalf("expected new calculation to start at category, got %v", m.stage)
	}
	if m.result != nil {
		t.Error("expected result to be cleared")
	}
}

func TestUpdate_HistoryToggle(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	m = pressKey(t, m, tea.KeyTab)
	if !m.showHistory {
		t.Fatal("expected history view to open on tab")
	}
	m = pressKey(t, m, tea.KeyTab)
	if m.showHistory {
		t.Fatal("expected history view to close on tab")
	}
}

func TestUpdate_ConfigReload(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	cfg := config.DefaultConfig()
	cfg.Theme = "dark"
	cfg.Precision = 4

	next, _ := m.Update(ConfigReloadedMsg(cfg))
	m = next.(Model)

	if !m.styles.Theme.IsDark {
		t.Error("expected dark theme after config reload")
	}
	if m.cfg.Precision != 4 {
		t.Errorf("expected precision 4, got %d", m.cfg.Precision)
	}
}

func TestView_RendersStages(t *testing.T) {
	t.Parallel()
	m := newTestModel()

	if !strings.Contains(m.View(), "geocalc") {
		t.Error("expected header in category view")
	}

	m = pressKey(t, m, tea.KeyEnter)
	m = pressKey(t, m, tea.KeyEnter)
	if !strings.Contains(m.View(), "Radius") {
		t.Error("expected radius prompt in dimensions view")
	}

	m, _ = typeValue(t, m, "2")
	view := m.View()
	if !strings.Contains(view, "Circle") {
		t.Error("expected shape title in result view")
	}
}

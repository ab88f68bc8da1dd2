package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	var body string
	switch {
	case m.showHistory:
		body = m.styles.Content.Render(m.historyView.View())
	case m.stage == stageCategory:
		body = m.categoryList.View()
	case m.stage == stageShape:
		body = m.shapeList.View()
	case m.stage == stageDimensions:
		body = m.renderDimensionPrompt()
	case m.stage == stageResult:
		body = m.renderResult()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		footer,
	)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" geocalc ")
	session := m.styles.Badge.Render(m.history.ID())

	var journalNote string
	if m.journal.Enabled() {
		journalNote = m.styles.Muted.Render(" journal: " + m.journal.Path())
	} else {
		journalNote = m.styles.Muted.Render(" journal: off")
	}

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		" ",
		session,
		journalNote,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	var help string
	switch {
	case m.showHistory:
		help = "↑/↓: scroll • tab/esc: back"
	case m.stage == stageCategory:
		help = "↑/↓: move • enter: select • tab: history • q: quit"
	case m.stage == stageShape:
		help = "↑/↓: move • enter: select • esc: back • tab: history"
	case m.stage == stageDimensions:
		help = "enter: accept • esc: back"
	case m.stage == stageResult:
		help = "enter/n: new calculation • tab: history • q: quit"
	}
	return m.styles.Footer.Render(help)
}

func (m Model) renderDimensionPrompt() string {
	d := m.shape.Dimensions[m.dimIndex]

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(m.shape.Title) + "\n")
	sb.WriteString(m.styles.Subtitle.Render(m.shape.Formula) + "\n\n")

	// Already entered values.
	for i := 0; i < m.dimIndex; i++ {
		prev := m.shape.Dimensions[i]
		sb.WriteString(m.styles.Muted.Render(
			fmt.Sprintf("  %s = %s", prev.Label, formatValue(m.dims[prev.Name], m.cfg.Precision))) + "\n")
	}

	label := d.Label
	if d.Hint != "" {
		label = fmt.Sprintf("%s (%s)", d.Label, d.Hint)
	}
	sb.WriteString(m.styles.Bold.Render(fmt.Sprintf("%s [%d/%d]", label, m.dimIndex+1, len(m.shape.Dimensions))) + "\n")
	sb.WriteString(m.styles.InputBox.Render(m.input.View()))

	if m.inputErr != "" {
		sb.WriteString("\n" + m.styles.Error.Render("✗ "+m.inputErr))
	}

	return m.styles.Content.Render(sb.String())
}

func (m Model) renderResult() string {
	if m.result == nil {
		return ""
	}

	rendered := m.safeRenderMarkdown(m.resultMarkdown())
	block := m.styles.ResultBlock.Render(rendered)

	if m.journalWarn != "" {
		block += "\n" + m.styles.Warning.Render("⚠ journal: "+m.journalWarn)
	} else if m.journal.Enabled() {
		block += "\n" + m.styles.Muted.Render("logged to "+m.journal.Path())
	}

	return m.styles.Content.Render(block)
}

// resultMarkdown builds the markdown block glamour renders for a result.
func (m Model) resultMarkdown() string {
	res := m.result

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", res.Title)
	sb.WriteString("| | |\n|---|---|\n")
	for _, in := range res.Inputs {
		fmt.Fprintf(&sb, "| %s | %s |\n", in.Name, formatValue(in.Value, m.cfg.Precision))
	}
	for _, metric := range res.Metrics {
		fmt.Fprintf(&sb, "| **%s** | **%s** |\n", metric.Name, formatValue(metric.Value, m.cfg.Precision))
	}
	fmt.Fprintf(&sb, "\n_%s_\n", res.Formula)
	return sb.String()
}

func (m Model) renderHistory() string {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return m.styles.Muted.Render("No calculations yet.")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Session history") + "\n")
	for i, e := range entries {
		metrics := make([]string, len(e.Result.Metrics))
		for j, metric := range e.Result.Metrics {
			metrics[j] = fmt.Sprintf("%s=%s", metric.Name, formatValue(metric.Value, m.cfg.Precision))
		}
		sb.WriteString(m.styles.Bold.Render(fmt.Sprintf("%d. %s", i+1, e.Result.Title)))
		sb.WriteString(m.styles.Muted.Render("  " + e.At.Format("15:04:05")))
		sb.WriteString("\n   " + strings.Join(metrics, "  ") + "\n")
	}
	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery; glamour can
// panic on pathological terminal widths.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

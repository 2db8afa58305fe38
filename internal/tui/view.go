package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avani/mathflow/internal/attempt"
	"github.com/avani/mathflow/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	switch {
	case m.errMsg != "":
		content = m.renderError()
	case m.screen == screenMenu:
		content = m.renderMenu()
	case m.screen == screenQuiz:
		content = m.renderQuiz()
	case m.screen == screenSummary:
		content = m.renderSummary()
	}

	v.SetContent(content)
	return v
}

func (m Model) renderMenu() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(m.width).Render("MathFlow"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(m.width).Render("Pick a lesson to practice"))
	b.WriteString("\n\n")
	b.WriteString(m.menu.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  ↑↓ navigate · Enter start · q quit"))
	return b.String()
}

func (m Model) renderQuiz() string {
	if m.machine == nil || m.machine.Phase() == attempt.PhaseLoading {
		return m.renderLoading()
	}

	var b strings.Builder
	lesson := m.machine.Lesson()
	index := m.machine.Index()
	total := len(m.machine.Questions())

	header := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", lesson.Title))
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", index+1, total))

	pad := m.width - lipgloss.Width(header) - lipgloss.Width(counter) - 4
	line := header
	if pad > 0 {
		line += strings.Repeat(" ", pad) + counter
	}
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.mc.View()))
	b.WriteString("\n")

	switch m.machine.Phase() {
	case attempt.PhaseInProgress:
		if m.mc.Submitted {
			b.WriteString(theme.Correct.Width(m.width).Align(lipgloss.Center).Render("Great job!"))
		} else {
			b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).
				Render("↑↓ or A-D to answer · Enter to confirm"))
		}

	case attempt.PhaseExplanation:
		b.WriteString(theme.Incorrect.Width(m.width).Align(lipgloss.Center).Render("Not quite"))
		b.WriteString("\n\n")
		if m.explanation == "" {
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
				m.spin.View()+" Thinking of a good way to explain..."))
		} else {
			expStyle := lipgloss.NewStyle().
				Width(min(m.width-8, 70)).
				Foreground(theme.Text)
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, expStyle.Render(m.explanation)))
			b.WriteString("\n\n")
			b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).Render("Press Enter to continue"))
		}
	}

	return b.String()
}

func (m Model) renderLoading() string {
	return "\n\n\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		m.spin.View()+" Making your questions...")
}

func (m Model) renderSummary() string {
	var b strings.Builder
	r := m.result

	b.WriteString("\n\n")
	if r.Passed {
		b.WriteString(theme.Encouragement.Width(m.width).Align(lipgloss.Center).Render("Lesson passed!"))
	} else {
		b.WriteString(theme.Body.Width(m.width).Align(lipgloss.Center).Bold(true).Render("Good effort!"))
	}
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Width(m.width).Align(lipgloss.Center).
		Render(fmt.Sprintf("You got %d out of %d right (%.0f%%)", r.Score, r.MaxScore, r.Percent())))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(m.width).
		Render(fmt.Sprintf("Attempt #%d · %ds", r.AttemptNumber, r.TimeSpentSecs)))
	b.WriteString("\n\n")

	if m.appendErr != nil {
		b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).
			Render("(couldn't save this attempt: " + m.appendErr.Error() + ")"))
		b.WriteString("\n\n")
	}

	if !r.Passed {
		b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).
			Render("R try again · Enter back to lessons"))
	} else {
		b.WriteString(theme.Hint.Width(m.width).Align(lipgloss.Center).
			Render("R practice again · Enter back to lessons"))
	}

	return b.String()
}

func (m Model) renderError() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", m.errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

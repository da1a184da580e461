package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.loadingMessage)))
	}
	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err)))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneScenarios:
		content = m.scenariosModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	contentHeight := max(1, m.height-4) // title (2) + status (1) + padding (1)
	container := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		container,
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("Retirement Finances")
	breadcrumb := m.currentScene.String()
	if m.selectedScenario != "" {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, m.selectedScenario)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(breadcrumb))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	statusText := m.help.ShortHelpView(keys.ShortHelp())
	if m.status != "" {
		note := InfoStyle.Render(m.status)
		spacer := strings.Repeat(" ", max(1, m.width-lipgloss.Width(statusText)-lipgloss.Width(note)-4))
		statusText = statusText + spacer + note
	}
	return StatusBarStyle.Width(m.width).Render(statusText)
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	text := `Retirement finances projection

Home shows the household and the latest recorded balances.
Scenarios lists the configured scenarios. Enter projects the highlighted
scenario, x compares it with every other scenario.
Results shows the monthly rows, the charts and the tax years of the last
projection. Tab switches view, left and right step through the charts,
e writes a CSV report and p writes a PDF report to the current directory.
Compare ticks scenarios with space. The first ticked is the base.`

	return BorderStyle.Render(text + "\n\n" + m.help.FullHelpView(keys.FullHelp()))
}

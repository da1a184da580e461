package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pjaos/retirement-finances-sub000/internal/compare"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuimsg"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// CompareModel represents the scenario comparison scene. The first ticked
// scenario is the base; the others are compared against it.
type CompareModel struct {
	names       []string
	selected    []int
	cursorIndex int
	results     *compare.ComparisonSet
	width       int
	height      int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel() *CompareModel {
	return &CompareModel{}
}

// SetScenarios updates the scenarios list and clears the selection
func (m *CompareModel) SetScenarios(names []string) {
	m.names = names
	m.selected = nil
	m.cursorIndex = 0
}

// SetResults stores comparison results
func (m *CompareModel) SetResults(results *compare.ComparisonSet) {
	m.results = results
}

// Results returns the last comparison
func (m *CompareModel) Results() *compare.ComparisonSet {
	return m.results
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursorIndex > 0 {
			m.cursorIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursorIndex < len(m.names)-1 {
			m.cursorIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "x"))):
		m.toggle(m.cursorIndex)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		names := m.SelectedScenarios()
		if len(names) < 2 {
			return m, nil
		}
		return m, func() tea.Msg {
			return tuimsg.CompareRequestedMsg{BaseName: names[0], AlternativeNames: names[1:]}
		}
	}
	return m, nil
}

func (m *CompareModel) toggle(index int) {
	if index < 0 || index >= len(m.names) {
		return
	}
	for i, s := range m.selected {
		if s == index {
			m.selected = append(m.selected[:i], m.selected[i+1:]...)
			return
		}
	}
	m.selected = append(m.selected, index)
}

// SelectedScenarios returns the ticked scenario names in the order they were ticked
func (m *CompareModel) SelectedScenarios() []string {
	names := make([]string, 0, len(m.selected))
	for _, i := range m.selected {
		names = append(names, m.names[i])
	}
	return names
}

// View renders the compare scene
func (m *CompareModel) View() string {
	if len(m.names) < 2 {
		return "At least two scenarios are needed for a comparison.\n\nPress ESC to go back."
	}

	selection := m.renderSelection()
	if m.results == nil {
		return selection
	}
	return lipgloss.JoinVertical(lipgloss.Left, selection, "", m.renderComparison())
}

func (m *CompareModel) renderSelection() string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("Select scenarios to compare"))
	b.WriteString("\n\n")
	for i, name := range m.names {
		mark := "[ ]"
		for pos, s := range m.selected {
			if s == i {
				mark = "[x]"
				if pos == 0 {
					mark = "[b]"
				}
			}
		}
		cursor := "  "
		style := tuistyles.UnselectedItemStyle
		if i == m.cursorIndex {
			cursor = "▸ "
			style = tuistyles.SelectedItemStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, mark, name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d selected • space/x toggle (first is the base) • enter compare • esc back", len(m.selected))))
	return b.String()
}

func (m *CompareModel) renderComparison() string {
	table := (&compare.TableFormatter{}).Format(m.results)
	return tuistyles.BorderStyle.Render(strings.TrimRight(table, "\n"))
}

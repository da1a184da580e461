package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/components"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuimsg"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// ScenariosModel represents the scenarios browsing scene
type ScenariosModel struct {
	cards         []*components.ScenarioCard
	selectedIndex int
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetScenarios rebuilds the cards from the configured scenarios
func (m *ScenariosModel) SetScenarios(scenarios []config.ScenarioConfig) {
	m.cards = make([]*components.ScenarioCard, 0, len(scenarios))
	for _, sc := range scenarios {
		m.cards = append(m.cards, components.NewScenarioCard(sc).WithWidth(60))
	}
	if m.selectedIndex >= len(m.cards) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the currently selected scenario name
func (m *ScenariosModel) SelectedScenario() string {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.cards) {
		return m.cards[m.selectedIndex].Name
	}
	return ""
}

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.cards)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G"))):
		m.selectedIndex = max(0, len(m.cards)-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		name := m.SelectedScenario()
		if name == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return tuimsg.ScenarioSelectedMsg{ScenarioName: name}
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("x"))):
		name := m.SelectedScenario()
		if name == "" {
			return m, nil
		}
		return m, func() tea.Msg {
			return tuimsg.CompareRequestedMsg{BaseName: name}
		}
	}
	return m, nil
}

// View renders the scenarios scene
func (m *ScenariosModel) View() string {
	if len(m.cards) == 0 {
		return "No scenarios available.\n\nAdd a scenario to the configuration file.\n\nPress ESC to return to home."
	}

	for i, card := range m.cards {
		card.SetSelected(i == m.selectedIndex)
	}

	listStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2).
		Width(36)
	list := listStyle.Render(tuistyles.TitleStyle.Render("Scenarios") + "\n\n" +
		components.ScenarioListCompact(m.cards, m.selectedIndex))

	content := lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", m.cards[m.selectedIndex].Render())

	help := strings.Join([]string{"↑/k up", "↓/j down", "enter calculate", "x compare with others", "g top", "G bottom", "esc back"}, " • ")
	return content + "\n\n" + tuistyles.SubtitleStyle.Render(help)
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// ScenarioCard displays a compact scenario overview
type ScenarioCard struct {
	Name       string
	Mode       string
	Highlights []string
	IsSelected bool
	Width      int
}

// NewScenarioCard creates a card from a configured scenario, listing its key settings.
func NewScenarioCard(sc config.ScenarioConfig) *ScenarioCard {
	card := &ScenarioCard{
		Name:  sc.Name,
		Mode:  sc.Mode,
		Width: 50,
	}
	card.AddHighlight("Report start " + sc.ReportStart)
	if sc.DrawdownStart != "" {
		card.AddHighlight("Drawdown start " + sc.DrawdownStart)
	}
	if sc.MonthlyBudget != nil {
		card.AddHighlight("Monthly budget " + tuistyles.FormatCurrency(*sc.MonthlyBudget))
	}
	if sc.OtherIncome != nil && !sc.OtherIncome.IsZero() {
		card.AddHighlight("Other income " + tuistyles.FormatCurrency(*sc.OtherIncome))
	}
	card.AddHighlight("Savings interest " + string(sc.Rates.SavingsInterest))
	card.AddHighlight("Pension growth " + string(sc.Rates.PensionGrowth))
	card.AddHighlight("State pension uprate " + string(sc.Rates.StatePensionUprate))
	if sc.Mode != "schedule" {
		card.AddHighlight("Budget increase " + string(sc.Rates.BudgetIncrease))
	}
	if n := len(sc.SavingsWithdrawals) + len(sc.PensionWithdrawals) + len(sc.OtherIncomeSchedule); n > 0 {
		card.AddHighlight(fmt.Sprintf("%d planned rows", n))
	}
	return card
}

// AddHighlight adds a key parameter
func (s *ScenarioCard) AddHighlight(highlight string) *ScenarioCard {
	s.Highlights = append(s.Highlights, highlight)
	return s
}

// SetSelected marks the card as selected
func (s *ScenarioCard) SetSelected(selected bool) *ScenarioCard {
	s.IsSelected = selected
	return s
}

// WithWidth sets the card width
func (s *ScenarioCard) WithWidth(width int) *ScenarioCard {
	s.Width = width
	return s
}

// Render returns the styled scenario card
func (s *ScenarioCard) Render() string {
	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(tuistyles.ColorPrimary)
	content.WriteString(titleStyle.Render(s.Name))
	content.WriteString("\n")

	if s.Mode != "" {
		modeStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(modeStyle.Render("→ " + s.Mode + " mode"))
		content.WriteString("\n")
	}

	if len(s.Highlights) > 0 {
		content.WriteString("\n")
		highlightStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground)
		for _, h := range s.Highlights {
			content.WriteString(highlightStyle.Render("• " + h))
			content.WriteString("\n")
		}
	}

	border := tuistyles.ColorBorder
	if s.IsSelected {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(s.Width)

	return cardStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// RenderCompact returns a compact single-line version
func (s *ScenarioCard) RenderCompact() string {
	parts := []string{s.Name}
	if s.Mode != "" {
		parts = append(parts, "("+s.Mode+")")
	}
	return strings.Join(parts, " ")
}

// ScenarioListCompact renders a compact list for selection menus
func ScenarioListCompact(cards []*ScenarioCard, selectedIndex int) string {
	if len(cards) == 0 {
		return tuistyles.InfoStyle.Render("No scenarios available")
	}

	rendered := make([]string, len(cards))
	for i, card := range cards {
		prefix := "  "
		style := tuistyles.UnselectedItemStyle

		if i == selectedIndex {
			prefix = "▸ "
			style = tuistyles.SelectedItemStyle
		}

		rendered[i] = style.Render(prefix + card.RenderCompact())
	}

	return strings.Join(rendered, "\n")
}

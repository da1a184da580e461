package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/components"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// HomeModel represents the home dashboard scene: the household and its latest recorded balances.
type HomeModel struct {
	file      *config.File
	totals    config.TotalsReport
	totalsErr error
	width     int
	height    int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetConfig updates the configuration and recomputes the totals
func (m *HomeModel) SetConfig(file *config.File) {
	m.file = file
	m.totals, m.totalsErr = file.Totals()
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the home dashboard
func (m *HomeModel) View() string {
	if m.file == nil {
		return tuistyles.BorderStyle.Render("Loading configuration...")
	}

	var content strings.Builder
	content.WriteString(tuistyles.TitleStyle.Render("Household"))
	content.WriteString("\n")
	content.WriteString(m.renderHousehold())
	content.WriteString("\n\n")

	if m.totalsErr != nil {
		content.WriteString(tuistyles.ErrorStyle.Render(m.totalsErr.Error()))
	} else {
		content.WriteString(components.MetricGrid(components.HoldingsCards(m.totals, 26), 3))
		content.WriteString("\n\n")
		content.WriteString(renderBalances("Accounts", m.totals.Accounts))
		content.WriteString("\n")
		content.WriteString(renderBalances("Pensions", m.totals.Pensions))
	}

	content.WriteString("\n\n")
	content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("%d scenarios configured. Press s to browse them.", len(m.file.Scenarios))))

	return tuistyles.BorderStyle.Render(content.String())
}

func (m *HomeModel) renderHousehold() string {
	h := m.file.Household
	lines := []string{fmt.Sprintf("Primary: %s (born %s, planning to age %d)", h.Primary.Name, h.Primary.BirthDate, h.Primary.MaxAge)}
	if h.Partner != nil {
		lines = append(lines, fmt.Sprintf("Partner: %s (born %s, planning to age %d)", h.Partner.Name, h.Partner.BirthDate, h.Partner.MaxAge))
	}
	return strings.Join(lines, "\n")
}

func renderBalances(title string, values []config.NamedValue) string {
	label := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Bold(true)
	var b strings.Builder
	b.WriteString(label.Render(title + ":"))
	b.WriteString("\n")
	if len(values) == 0 {
		b.WriteString("  none recorded\n")
		return b.String()
	}
	for _, v := range values {
		owner := ""
		if v.Owner != "" {
			owner = " [" + v.Owner + "]"
		}
		fmt.Fprintf(&b, "  • %s%s: %s on %s\n", v.Name, owner, tuistyles.FormatCurrency(v.Value), v.Date)
	}
	return b.String()
}

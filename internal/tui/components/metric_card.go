package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/pjaos/retirement-finances-sub000/internal/compare"
	"github.com/pjaos/retirement-finances-sub000/internal/config"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// MetricCard is a bordered box showing one headline figure.
type MetricCard struct {
	Label string
	Value string
	Note  *Note
	Width int
}

// Note is a short line under the value, coloured good or bad.
type Note struct {
	Good bool
	Text string // e.g. "runs out 01-03-2031"
}

// NewMetricCard creates a card with a preformatted value.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 24}
}

// NewMoneyCard creates a card showing a pound amount.
func NewMoneyCard(label string, amount decimal.Decimal) *MetricCard {
	return NewMetricCard(label, tuistyles.FormatCurrency(amount))
}

// WithNote adds the coloured line under the value.
func (m *MetricCard) WithNote(good bool, text string) *MetricCard {
	m.Note = &Note{Good: good, Text: text}
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) note(sep string) string {
	if m.Note == nil {
		return ""
	}
	style := tuistyles.MetricTrendStyle(m.Note.Good)
	return sep + style.Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Note.Good), m.Note.Text))
}

// Render returns the bordered card.
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(m.Value) +
		m.note("\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns "Label: value" on one line with the note appended.
func (m *MetricCard) RenderCompact() string {
	return tuistyles.MetricLabelStyle.Render(m.Label+":") + " " +
		tuistyles.MetricValueStyle.Render(m.Value) +
		m.note(" ")
}

// MetricGrid lays cards out left to right, wrapping after columns cards.
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	columns = max(1, columns)

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// HoldingsCards summarises the latest savings, pension and combined totals.
func HoldingsCards(t config.TotalsReport, width int) []*MetricCard {
	return []*MetricCard{
		NewMoneyCard("Savings", t.Savings).WithWidth(width),
		NewMoneyCard("Pensions", t.Pension).WithWidth(width),
		NewMoneyCard("Total", t.Total).WithWidth(width),
	}
}

// ProjectionCards summarises one projection. Schedule runs report net income and tax;
// budget runs report spending.
func ProjectionCards(r compare.ComparisonResult, width int) []*MetricCard {
	income := "spending"
	if r.Mode == domain.ModeSchedule {
		income = "net income"
	}

	funded := NewMetricCard("Money lasts", fmt.Sprintf("%d months", r.MonthsFunded))
	if r.MoneyRanOutDate != "" {
		funded.WithNote(false, "runs out "+r.MoneyRanOutDate)
	} else {
		funded.WithNote(true, "to end of plan")
	}

	cards := []*MetricCard{
		NewMoneyCard("First year "+income, r.FirstYearIncome),
		NewMoneyCard("Lifetime "+income, r.LifetimeIncome),
		NewMoneyCard("Final balance", r.FinalBalance),
		funded,
	}
	if r.Mode == domain.ModeSchedule {
		cards = append(cards, NewMoneyCard("Lifetime tax", r.LifetimeTaxes))
	}
	for _, c := range cards {
		c.WithWidth(width)
	}
	return cards
}

// Package tuistyles holds the colours and lipgloss styles shared by the
// terminal UI and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/pjaos/retirement-finances-sub000/internal/output"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#2E86AB")
	ColorSecondary = lipgloss.Color("#A23B72")
	ColorAccent    = lipgloss.Color("#F18F01")
	ColorSuccess   = lipgloss.Color("#3BB273")
	ColorDanger    = lipgloss.Color("#E84855")
	ColorInfo      = lipgloss.Color("#6C8EAD")

	ColorBackground = lipgloss.Color("#1B1B1E")
	ColorForeground = lipgloss.Color("#EEEEEE")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#444444")

	ColorChartLine1 = lipgloss.Color("#2E86AB")
	ColorChartLine2 = lipgloss.Color("#F18F01")
	ColorChartLine3 = lipgloss.Color("#3BB273")
	ColorChartLine4 = lipgloss.Color("#A23B72")
)

// ChartColors cycles through the chart line colours.
var ChartColors = []lipgloss.Color{ColorChartLine1, ColorChartLine2, ColorChartLine3, ColorChartLine4}

var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	TableCellStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorBackground).Background(ColorPrimary)
)

// MetricTrendStyle colours a change by its direction.
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for a change direction.
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders an amount in pounds.
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}

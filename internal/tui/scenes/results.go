package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pjaos/retirement-finances-sub000/internal/compare"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/components"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuimsg"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

// ResultsPane is one of the views of a projection
type ResultsPane int

const (
	PaneRows ResultsPane = iota
	PaneChart
	PaneTaxYears
)

// ResultsModel represents the results display scene
type ResultsModel struct {
	projection *domain.Projection
	metrics    compare.ComparisonResult
	pane       ResultsPane
	chartIndex int
	rows       table.Model
	taxYears   table.Model
	width      int
	height     int
}

const defaultTableHeight = 10

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	return &ResultsModel{
		rows:     newTable(nil, nil, defaultTableHeight),
		taxYears: newTable(nil, nil, defaultTableHeight),
		width:    80,
		height:   24,
	}
}

// newTable builds a fresh table so the columns and rows always agree in width.
func newTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = tuistyles.TableHeaderStyle
	styles.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(styles)
	return t
}

// SetResults updates the projection to display
func (m *ResultsModel) SetResults(p *domain.Projection) {
	m.projection = p
	m.chartIndex = 0
	if p == nil {
		return
	}
	m.metrics = compare.NewMetricsCalculator().CalculateMetrics(p)

	if p.Mode != domain.ModeSchedule && m.pane == PaneTaxYears {
		m.pane = PaneRows
	}

	height := m.tableHeight()
	if p.Mode == domain.ModeSchedule {
		m.rows = newTable(scheduleColumns, scheduleRows(p.ScheduleRows), height)
	} else {
		m.rows = newTable(budgetColumns, budgetRows(p.Rows), height)
	}
	m.taxYears = newTable(taxYearColumns, taxYearRows(p.TaxYears), height)
}

func (m *ResultsModel) tableHeight() int {
	return max(5, m.height-18)
}

// Projection returns the projection being displayed
func (m *ResultsModel) Projection() *domain.Projection {
	return m.projection
}

// Pane returns the active view
func (m *ResultsModel) Pane() ResultsPane {
	return m.pane
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.rows.SetHeight(m.tableHeight())
	m.taxYears.SetHeight(m.tableHeight())
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if m.projection == nil {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab"))):
			m.pane = (m.pane + 1) % 3
			if m.pane == PaneTaxYears && len(m.projection.TaxYears) == 0 {
				m.pane = PaneRows
			}
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right"))) && m.pane == PaneChart:
			if len(m.projection.Charts) > 0 {
				m.chartIndex = (m.chartIndex + 1) % len(m.projection.Charts)
			}
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left"))) && m.pane == PaneChart:
			if n := len(m.projection.Charts); n > 0 {
				m.chartIndex = (m.chartIndex + n - 1) % n
			}
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("e"))):
			return m, exportCmd("csv")
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("p"))):
			return m, exportCmd("pdf")
		}
	}

	var cmd tea.Cmd
	switch m.pane {
	case PaneRows:
		m.rows, cmd = m.rows.Update(msg)
	case PaneTaxYears:
		m.taxYears, cmd = m.taxYears.Update(msg)
	}
	return m, cmd
}

func exportCmd(format string) tea.Cmd {
	return func() tea.Msg {
		return tuimsg.ExportRequestedMsg{Format: format}
	}
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.projection == nil {
		return "No results to display.\n\nSelect a scenario and press Enter to calculate it.\n\nPress ESC to go back."
	}

	title := tuistyles.TitleStyle.Render("Projection: " + m.projection.Scenario)
	subtitle := tuistyles.SubtitleStyle.Render(fmt.Sprintf("%s mode, %d months", m.projection.Mode, m.projection.Len()))

	var body string
	switch m.pane {
	case PaneChart:
		body = m.renderChart()
	case PaneTaxYears:
		body = m.taxYears.View()
	default:
		body = m.rows.View()
	}

	help := tuistyles.SubtitleStyle.Render("tab rows/chart/tax years • ←/→ chart • ↑/↓ scroll • e export csv • p export pdf • esc back")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", m.renderMetrics(), "", body, "", help)
}

func (m *ResultsModel) renderMetrics() string {
	cards := components.ProjectionCards(m.metrics, 24)
	return components.MetricGrid(cards, len(cards))
}

func (m *ResultsModel) renderChart() string {
	if len(m.projection.Charts) == 0 {
		return tuistyles.InfoStyle.Render("No charts available")
	}
	chart := components.ChartFromTable(m.projection.Charts[m.chartIndex]).
		WithSize(max(40, m.width-4), max(8, m.height-22))
	return chart.Render()
}

var budgetColumns = []table.Column{
	{Title: "Date", Width: 10},
	{Title: "Total", Width: 12},
	{Title: "Pension", Width: 12},
	{Title: "Savings", Width: 12},
	{Title: "Budget", Width: 10},
	{Title: "State pension", Width: 13},
	{Title: "Interest", Width: 9},
	{Title: "Spending", Width: 10},
}

func budgetRows(rows []domain.MonthlyRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{
			domain.FormatDate(r.Date),
			r.Total.StringFixed(2),
			r.Pension.StringFixed(2),
			r.Savings.StringFixed(2),
			r.TargetIncome.StringFixed(2),
			r.StatePension.StringFixed(2),
			r.SavingsInterest.StringFixed(2),
			r.Spending.StringFixed(2),
		}
	}
	return out
}

var scheduleColumns = []table.Column{
	{Title: "Date", Width: 10},
	{Title: "Total", Width: 12},
	{Title: "Pension", Width: 12},
	{Title: "Savings", Width: 12},
	{Title: "State pension", Width: 13},
	{Title: "Pension w/d", Width: 11},
	{Title: "Savings w/d", Width: 11},
	{Title: "Other", Width: 9},
	{Title: "Tax", Width: 9},
	{Title: "Net income", Width: 10},
}

func scheduleRows(rows []domain.ScheduleRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		out[i] = table.Row{
			domain.FormatDate(r.Date),
			r.Total.StringFixed(2),
			r.Pension.StringFixed(2),
			r.Savings.StringFixed(2),
			r.StatePension.StringFixed(2),
			r.PensionWithdrawal.StringFixed(2),
			r.SavingsWithdrawal.StringFixed(2),
			r.OtherIncome.StringFixed(2),
			r.Tax.StringFixed(2),
			r.NetIncome.StringFixed(2),
		}
	}
	return out
}

var taxYearColumns = []table.Column{
	{Title: "Tax year", Width: 10},
	{Title: "Owner", Width: 8},
	{Title: "Taxable", Width: 12},
	{Title: "Tax", Width: 10},
	{Title: "NI", Width: 8},
	{Title: "Monthly tax", Width: 11},
}

func taxYearRows(summaries []domain.TaxYearSummary) []table.Row {
	out := make([]table.Row, len(summaries))
	for i, s := range summaries {
		out[i] = table.Row{
			s.TaxYear,
			string(s.Owner),
			s.Taxable.StringFixed(2),
			s.Tax.StringFixed(2),
			s.NI.StringFixed(2),
			s.MonthlyTax.StringFixed(2),
		}
	}
	return out
}

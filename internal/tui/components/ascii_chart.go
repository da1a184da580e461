package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/pjaos/retirement-finances-sub000/internal/tui/tuistyles"
)

const yAxisWidth = 10

var seriesMarks = []rune{'●', '■', '▲', '♦'}

// DataSeries is one plotted line.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more series on a character canvas with a pound-valued y axis.
type ASCIIChart struct {
	Title  string
	Series []*DataSeries
	Labels []string // one per point, shown sparsely under the x axis
	Width  int
	Height int
}

// NewASCIIChart creates an empty chart with a default size.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{Title: title, Width: 60, Height: 15}
}

// AddSeries appends a line.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// ChartFromTable builds a chart with one series per column of a projection chart table.
// Labels are the month of each point in MM-YYYY form.
func ChartFromTable(table domain.ChartTable) *ASCIIChart {
	chart := NewASCIIChart(table.Name)
	for i, name := range table.Columns {
		values := table.Column(name)
		points := make([]float64, len(values))
		for j, v := range values {
			points[j] = v.InexactFloat64()
		}
		chart.AddSeries(name, points, tuistyles.ChartColors[i%len(tuistyles.ChartColors)])
	}
	for _, p := range table.Points {
		chart.Labels = append(chart.Labels, p.Date.Format("01-2006"))
	}
	return chart
}

// WithSize sets the outer width (including the y axis) and the plot height in rows.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render draws the title, plot, axes and legend.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	cols := max(2, c.Width-yAxisWidth-3)
	rows := max(2, c.Height)
	s := c.scale()
	cv := newCanvas(cols, rows)

	for i, series := range c.Series {
		mark := seriesMarks[i%len(seriesMarks)]
		span := max(1, len(series.Points)-1)
		prevX, prevY := -1, -1
		for j, v := range series.Points {
			x := j * (cols - 1) / span
			y := s.row(v, rows)
			if prevX >= 0 {
				cv.line(prevX, prevY, x, y, mark)
			}
			cv.set(x, y, mark, true)
			prevX, prevY = x, y
		}
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	tick := axis.Width(yAxisWidth).Align(lipgloss.Right)

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		b.WriteString("\n\n")
	}
	for r, line := range cv.cells {
		label := ""
		if r%2 == 0 || r == rows-1 {
			label = formatChartValue(s.value(r, rows))
		}
		b.WriteString(tick.Render(label))
		b.WriteString(" │ ")
		b.WriteString(string(line))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", yAxisWidth) + " └" + strings.Repeat("─", cols+1) + "\n")
	if labels := c.axisLabels(cols); labels != "" {
		b.WriteString(strings.Repeat(" ", yAxisWidth+3))
		b.WriteString(axis.Render(labels))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(c.legend())
	return b.String()
}

// axisLabels places the first, middle and last labels under their columns.
func (c *ASCIIChart) axisLabels(cols int) string {
	n := len(c.Labels)
	if n == 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", cols+len(c.Labels[n-1])))
	place := func(idx int) {
		x := 0
		if n > 1 {
			x = idx * (cols - 1) / (n - 1)
		}
		copy(line[x:], []rune(c.Labels[idx]))
	}
	place(0)
	if n > 2 && cols > 3*len(c.Labels[0]) {
		place(n / 2)
	}
	if n > 1 && cols > 2*len(c.Labels[0]) {
		place(n - 1)
	}
	return strings.TrimRight(string(line), " ")
}

func (c *ASCIIChart) legend() string {
	items := make([]string, 0, len(c.Series))
	for i, series := range c.Series {
		mark := lipgloss.NewStyle().Foreground(series.Color).Render(string(seriesMarks[i%len(seriesMarks)]))
		items = append(items, mark+" "+series.Name)
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render("Legend: " + strings.Join(items, "   "))
}

// scale maps values onto rows with a little headroom above and below the data.
type scale struct{ lo, hi float64 }

func (c *ASCIIChart) scale() scale {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, series := range c.Series {
		for _, v := range series.Points {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	switch {
	case math.IsInf(lo, 1):
		return scale{0, 1}
	case lo == hi:
		return scale{lo - 1, hi + 1}
	}
	pad := (hi - lo) / 10
	return scale{lo - pad, hi + pad}
}

// row is 0 at the top.
func (s scale) row(v float64, rows int) int {
	frac := (v - s.lo) / (s.hi - s.lo)
	return rows - 1 - int(math.Round(frac*float64(rows-1)))
}

func (s scale) value(row, rows int) float64 {
	return s.hi - float64(row)/float64(rows-1)*(s.hi-s.lo)
}

type canvas struct {
	cells [][]rune
}

func newCanvas(cols, rows int) *canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{cells: cells}
}

// set writes mark at (x, y); out-of-range points are dropped and existing marks are kept unless overwrite.
func (cv *canvas) set(x, y int, mark rune, overwrite bool) {
	if y < 0 || y >= len(cv.cells) || x < 0 || x >= len(cv.cells[y]) {
		return
	}
	if overwrite || cv.cells[y][x] == ' ' {
		cv.cells[y][x] = mark
	}
}

// line joins two points with Bresenham's algorithm.
func (cv *canvas) line(x0, y0, x1, y1 int, mark rune) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		cv.set(x0, y0, mark, false)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// formatChartValue abbreviates a y axis value: £1.5M, £250K, £42.
func formatChartValue(value float64) string {
	switch a := math.Abs(value); {
	case a >= 1_000_000:
		return fmt.Sprintf("£%.1fM", value/1_000_000)
	case a >= 1_000:
		return fmt.Sprintf("£%.0fK", value/1_000)
	}
	return fmt.Sprintf("£%.0f", value)
}

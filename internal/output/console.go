package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
)

// ConsoleFormatter renders a projection as fixed width text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "RETIREMENT FINANCES PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	for _, line := range summaryLines(p) {
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintln(&buf)

	cols := rowColumns(p)
	rows := make([][]string, p.Len())
	for i := range rows {
		rows[i] = cells(cols, i)
	}
	writeTable(&buf, headers(cols), rows)

	if len(p.TaxYears) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "TAX YEARS")
		fmt.Fprintln(&buf, strings.Repeat("-", 80))
		buf.Write(TaxYearsTable(p.TaxYears))
	}
	return buf.Bytes(), nil
}

// TaxYearsTable renders tax year summaries as a text table.
func TaxYearsTable(summaries []domain.TaxYearSummary) []byte {
	var buf bytes.Buffer
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		sp := "no"
		if s.ReceivesStatePension {
			sp = "yes"
		}
		rows = append(rows, []string{s.TaxYear, string(s.Owner), money(s.Taxable), sp, money(s.Tax), money(s.NI), money(s.MonthlyTax)})
	}
	writeTable(&buf, []string{"Tax year", "Owner", "Taxable", "State pension", "Tax", "NI", "Monthly tax"}, rows)
	return buf.Bytes()
}

// TaxResultText renders a single net pay calculation.
func TaxResultText(r domain.TaxResult) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Period:                 %s\n", r.Period)
	fmt.Fprintf(&buf, "Receives state pension: %t\n", r.ReceivesStatePension)
	fmt.Fprintf(&buf, "Gross:                  %s\n", FormatCurrency(r.Gross))
	fmt.Fprintf(&buf, "Income tax:             %s\n", FormatCurrency(r.Tax))
	fmt.Fprintf(&buf, "National Insurance:     %s\n", FormatCurrency(r.NI))
	fmt.Fprintf(&buf, "Net:                    %s\n", FormatCurrency(r.Net))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Annual gross:           %s\n", FormatCurrency(r.AnnualGross))
	fmt.Fprintf(&buf, "Annual tax:             %s\n", FormatCurrency(r.AnnualTax))
	fmt.Fprintf(&buf, "Annual NI:              %s\n", FormatCurrency(r.AnnualNI))
	fmt.Fprintf(&buf, "Annual net:             %s\n", FormatCurrency(r.AnnualNet))
	return buf.Bytes()
}

// RealityTable renders the recorded pension, savings and total histories side by side.
func RealityTable(r *domain.RealityTables) []byte {
	var buf bytes.Buffer
	byDate := map[string][]string{}
	var order []string
	add := func(s domain.Series, col int) {
		for _, e := range s {
			key := domain.FormatDate(e.Date)
			row, ok := byDate[key]
			if !ok {
				row = []string{key, "", "", ""}
				order = append(order, key)
			}
			row[col] = money(e.Value)
			byDate[key] = row
		}
	}
	add(r.Total, 1)
	add(r.Pension, 2)
	add(r.Savings, 3)

	rows := make([][]string, 0, len(order))
	for _, key := range order {
		rows = append(rows, byDate[key])
	}
	writeTable(&buf, []string{"Date", "Total", "Pension", "Savings"}, rows)
	return buf.Bytes()
}

// writeTable pads every column to its widest cell; the first column is left aligned.
func writeTable(buf *bytes.Buffer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	line := func(row []string) {
		for i, cell := range row {
			if i > 0 {
				buf.WriteString("  ")
			}
			if i == 0 {
				fmt.Fprintf(buf, "%-*s", widths[i], cell)
			} else {
				fmt.Fprintf(buf, "%*s", widths[i], cell)
			}
		}
		buf.WriteString("\n")
	}
	line(header)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	buf.WriteString(strings.Repeat("-", total-2) + "\n")
	for _, row := range rows {
		line(row)
	}
}

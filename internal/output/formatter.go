package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a projection into bytes.
type Formatter interface {
	Name() string
	Format(p *domain.Projection) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(p *domain.Projection) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(p *domain.Projection) ([]byte, error) { return f.F(p) }

// GetFormatterByName returns the formatter for a --format value, or nil.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "", "console", "table":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "json-compact":
		return JSONFormatter{}
	case "pdf":
		return PDFFormatter{}
	default:
		return nil
	}
}

// FormatNames lists the accepted --format values.
func FormatNames() []string {
	return []string{"console", "csv", "json", "json-compact", "pdf"}
}

// WriteFormatted formats p and writes it to a timestamped file in the current directory.
func WriteFormatted(f Formatter, p *domain.Projection, ext string) (string, error) {
	data, err := f.Format(p)
	if err != nil {
		return "", fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("retirement_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// FormatCurrency formats a decimal as pounds and pence
func FormatCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-£" + amount.Neg().StringFixed(2)
	}
	return "£" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// column is one table column shared by the console, CSV and PDF renderers.
type column struct {
	header string
	value  func(i int) string
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// rowColumns describes the monthly rows of p in display order.
func rowColumns(p *domain.Projection) []column {
	if p.Mode == domain.ModeSchedule {
		r := p.ScheduleRows
		return []column{
			{"Date", func(i int) string { return domain.FormatDate(r[i].Date) }},
			{"Total", func(i int) string { return money(r[i].Total) }},
			{"Pension", func(i int) string { return money(r[i].Pension) }},
			{"Savings", func(i int) string { return money(r[i].Savings) }},
			{"State pension", func(i int) string { return money(r[i].StatePension) }},
			{"Pension w/d", func(i int) string { return money(r[i].PensionWithdrawal) }},
			{"Savings w/d", func(i int) string { return money(r[i].SavingsWithdrawal) }},
			{"Other income", func(i int) string { return money(r[i].OtherIncome) }},
			{"Tax", func(i int) string { return money(r[i].Tax) }},
			{"Net income", func(i int) string { return money(r[i].NetIncome) }},
			{"Tax year", func(i int) string { return r[i].TaxYear }},
		}
	}
	r := p.Rows
	return []column{
		{"Date", func(i int) string { return domain.FormatDate(r[i].Date) }},
		{"Total", func(i int) string { return money(r[i].Total) }},
		{"Pension", func(i int) string { return money(r[i].Pension) }},
		{"Savings", func(i int) string { return money(r[i].Savings) }},
		{"Target income", func(i int) string { return money(r[i].TargetIncome) }},
		{"State pension", func(i int) string { return money(r[i].StatePension) }},
		{"Savings interest", func(i int) string { return money(r[i].SavingsInterest) }},
		{"Savings w/d", func(i int) string { return money(r[i].SavingsWithdrawal) }},
		{"Pension w/d", func(i int) string { return money(r[i].PensionWithdrawal) }},
		{"Spending", func(i int) string { return money(r[i].Spending) }},
	}
}

func headers(cols []column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.header
	}
	return out
}

func cells(cols []column, row int) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.value(row)
	}
	return out
}

// summaryLines is the headline block printed above the row table.
func summaryLines(p *domain.Projection) []string {
	total, pension, savings := p.FinalBalances()
	lines := []string{
		fmt.Sprintf("Scenario:        %s", p.Scenario),
		fmt.Sprintf("Mode:            %s", p.Mode),
		fmt.Sprintf("Months:          %d", p.Len()),
		fmt.Sprintf("Final total:     %s", FormatCurrency(total)),
		fmt.Sprintf("Final pension:   %s", FormatCurrency(pension)),
		fmt.Sprintf("Final savings:   %s", FormatCurrency(savings)),
	}
	if p.MoneyRanOut && p.MoneyRanOutDate != nil {
		lines = append(lines, fmt.Sprintf("Money ran out:   %s", domain.FormatDate(*p.MoneyRanOutDate)))
	} else {
		lines = append(lines, "Money ran out:   no")
	}
	if p.Reality != nil {
		if last, ok := p.Reality.Total.Last(); ok {
			lines = append(lines, fmt.Sprintf("Recorded total:  %s on %s", FormatCurrency(last.Value), domain.FormatDate(last.Date)))
		}
	}
	return lines
}

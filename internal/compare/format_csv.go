package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Mode",
		"First Year Income",
		"Lifetime Income",
		"Months Funded",
		"Money Ran Out",
		"Final Balance",
		"Lifetime Taxes",
		"Income Diff from Base",
		"Income % Change",
		"Months Funded Diff",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		string(result.Mode),
		result.FirstYearIncome.StringFixed(2),
		result.LifetimeIncome.StringFixed(2),
		strconv.Itoa(result.MonthsFunded),
		result.MoneyRanOutDate,
		result.FinalBalance.StringFixed(2),
		result.LifetimeTaxes.StringFixed(2),
		result.IncomeDiffFromBase.StringFixed(2),
		result.IncomePctFromBase.StringFixed(2),
		strconv.Itoa(result.MonthsFundedDiff),
		result.TaxDiffFromBase.StringFixed(2),
	}
}

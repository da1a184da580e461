package calculation

import (
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. UK income tax bands for 2024/25 (England, Wales and Northern Ireland)
//    - Personal allowance 12,570, reduced by 1 for every 2 of income over 100,000
//    - Basic rate 20% on the first 37,700 of taxable income
//    - Higher rate 40% up to 125,140, additional rate 45% above
//
// 2. Class 1 National Insurance (employee) 2024/25
//    - 8% between 12,570 and 50,270, 2% above
//    - Not charged when the person receives the state pension
//
// 3. Rounding: half-up to 2 places on annual tax, annual NI, then each period value

// TaxBracket is one band of taxable income. A zero Max leaves the band open-ended.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// UKTaxCalculator computes UK income tax and National Insurance.
type UKTaxCalculator struct {
	TaxYear            string
	PersonalAllowance  decimal.Decimal
	TaperThreshold     decimal.Decimal
	Brackets           []TaxBracket
	NILowerThreshold   decimal.Decimal
	NIUpperThreshold   decimal.Decimal
	NIMainRate         decimal.Decimal
	NIUpperRate        decimal.Decimal
	ReportingPrecision int32
}

// NewUKTaxCalculator2024 creates a calculator with the 2024/25 bands.
func NewUKTaxCalculator2024() *UKTaxCalculator {
	return &UKTaxCalculator{
		TaxYear:           "2024-2025",
		PersonalAllowance: decimal.NewFromInt(12570),
		TaperThreshold:    decimal.NewFromInt(100000),
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(37700), decimal.NewFromFloat(0.20)},
			{decimal.NewFromInt(37700), decimal.NewFromInt(125140), decimal.NewFromFloat(0.40)},
			{decimal.NewFromInt(125140), decimal.Zero, decimal.NewFromFloat(0.45)},
		},
		NILowerThreshold:   decimal.NewFromInt(12570),
		NIUpperThreshold:   decimal.NewFromInt(50270),
		NIMainRate:         decimal.NewFromFloat(0.08),
		NIUpperRate:        decimal.NewFromFloat(0.02),
		ReportingPrecision: 2,
	}
}

// PersonalAllowanceFor returns the allowance left after the high income taper.
func (c *UKTaxCalculator) PersonalAllowanceFor(annualIncome decimal.Decimal) decimal.Decimal {
	if annualIncome.LessThanOrEqual(c.TaperThreshold) {
		return c.PersonalAllowance
	}
	reduction := annualIncome.Sub(c.TaperThreshold).Div(decimal.NewFromInt(2))
	allowance := c.PersonalAllowance.Sub(reduction)
	if allowance.IsNegative() {
		return decimal.Zero
	}
	return allowance
}

// IncomeTax returns the annual income tax, rounded.
func (c *UKTaxCalculator) IncomeTax(annualIncome decimal.Decimal) decimal.Decimal {
	taxableIncome := annualIncome.Sub(c.PersonalAllowanceFor(annualIncome))
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	var totalTax decimal.Decimal
	for _, bracket := range c.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := taxableIncome
		if !bracket.Max.IsZero() {
			upper = decimal.Min(taxableIncome, bracket.Max)
		}
		incomeInBracket := upper.Sub(bracket.Min)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInBracket.Mul(bracket.Rate))
		}
	}
	return totalTax.Round(c.ReportingPrecision)
}

// NationalInsurance returns annual NI, rounded. State pension recipients pay none.
func (c *UKTaxCalculator) NationalInsurance(annualIncome decimal.Decimal, receivesStatePension bool) decimal.Decimal {
	if receivesStatePension || annualIncome.LessThanOrEqual(c.NILowerThreshold) {
		return decimal.Zero
	}
	main := decimal.Min(annualIncome, c.NIUpperThreshold).Sub(c.NILowerThreshold)
	ni := main.Mul(c.NIMainRate)
	if annualIncome.GreaterThan(c.NIUpperThreshold) {
		ni = ni.Add(annualIncome.Sub(c.NIUpperThreshold).Mul(c.NIUpperRate))
	}
	return ni.Round(c.ReportingPrecision)
}

// CalcNetPay converts gross pay for a period into tax, NI and net pay for that period
// and for the whole year.
func (c *UKTaxCalculator) CalcNetPay(gross decimal.Decimal, receivesStatePension bool, period domain.TaxPeriod) domain.TaxResult {
	periods := decimal.NewFromInt(period.PeriodsPerYear())
	annualGross := gross.Mul(periods)
	annualTax := c.IncomeTax(annualGross)
	annualNI := c.NationalInsurance(annualGross, receivesStatePension)
	annualNet := annualGross.Sub(annualTax).Sub(annualNI)

	return domain.TaxResult{
		Period:               period,
		ReceivesStatePension: receivesStatePension,
		Gross:                gross,
		Tax:                  annualTax.Div(periods).Round(c.ReportingPrecision),
		NI:                   annualNI.Div(periods).Round(c.ReportingPrecision),
		Net:                  annualNet.Div(periods).Round(c.ReportingPrecision),
		AnnualGross:          annualGross,
		AnnualTax:            annualTax,
		AnnualNI:             annualNI,
		AnnualNet:            annualNet,
	}
}

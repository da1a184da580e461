package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pjaos/retirement-finances-sub000/internal/calculation"
	"github.com/pjaos/retirement-finances-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults applied to fields left out of a configuration file.
const (
	DefaultMaxAge             = 90
	DefaultRateList           = "4, 3.5, 3.2, 3, 3, 3, 3"
	DefaultBudgetIncrease     = "2.5, 2.5, 2.5, 2.5, 2.5, 2.5"
	DefaultStatePensionUprate = "2.5"
)

// DefaultMonthlyBudget is used by budget scenarios that do not set one.
var DefaultMonthlyBudget = decimal.NewFromInt(2850)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses, defaults and validates a YAML document.
func (ip *InputParser) LoadFromBytes(data []byte) (*File, error) {
	var config File
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Prepare(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Prepare applies defaults and validates a configuration built in memory, e.g. decoded from a request body.
func (ip *InputParser) Prepare(config *File) error {
	ApplyDefaults(config)
	if err := ip.ValidateConfiguration(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// ApplyDefaults fills in omitted ages, modes, budgets and rate schedules.
func ApplyDefaults(config *File) {
	if config.Household.Primary.MaxAge == 0 {
		config.Household.Primary.MaxAge = DefaultMaxAge
	}
	if p := config.Household.Partner; p != nil && p.BirthDate != "" && p.MaxAge == 0 {
		p.MaxAge = DefaultMaxAge
	}
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if s.Mode == "" {
			s.Mode = string(domain.ModeBudget)
		}
		if s.Mode == string(domain.ModeBudget) && s.MonthlyBudget == nil {
			budget := DefaultMonthlyBudget
			s.MonthlyBudget = &budget
		}
		if s.Rates.SavingsInterest == "" {
			s.Rates.SavingsInterest = DefaultRateList
		}
		if s.Rates.PensionGrowth == "" {
			s.Rates.PensionGrowth = DefaultRateList
		}
		if s.Rates.StatePensionUprate == "" {
			s.Rates.StatePensionUprate = DefaultStatePensionUprate
		}
		if s.Rates.BudgetIncrease == "" {
			s.Rates.BudgetIncrease = DefaultBudgetIncrease
		}
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *File) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return err
	}
	hasPartner := config.Household.HasPartner()
	for i, a := range config.Accounts {
		if err := ip.validateAccount(fmt.Sprintf("accounts[%d]", i), a, hasPartner); err != nil {
			return err
		}
	}
	for i, p := range config.Pensions {
		if err := ip.validateAccount(fmt.Sprintf("pensions[%d]", i), p, hasPartner); err != nil {
			return err
		}
	}
	for i, sp := range config.StatePensions {
		field := fmt.Sprintf("state_pensions[%d]", i)
		if _, err := parseDate(field+".start_date", sp.StartDate); err != nil {
			return err
		}
		if err := validateOwner(field+".owner", sp.Owner, hasPartner); err != nil {
			return err
		}
		if _, err := parseHistory(field, sp.History); err != nil {
			return err
		}
	}
	if len(config.Scenarios) == 0 {
		return &domain.ValidationError{Field: "scenarios", Message: "at least one scenario is required"}
	}
	seen := map[string]bool{}
	for i := range config.Scenarios {
		s := &config.Scenarios[i]
		if seen[s.Name] {
			return &domain.ValidationError{Field: fmt.Sprintf("scenarios[%d].name", i), Message: fmt.Sprintf("duplicate scenario name %q", s.Name)}
		}
		seen[s.Name] = true
		if err := ip.validateScenario(fmt.Sprintf("scenarios[%d]", i), s, hasPartner); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateHousehold(h *HouseholdConfig) error {
	if _, err := parseDate("household.primary.birth_date", h.Primary.BirthDate); err != nil {
		return err
	}
	if h.Primary.MaxAge <= 0 {
		return &domain.ValidationError{Field: "household.primary.max_age", Message: "max age must be positive"}
	}
	if h.Partner != nil && h.Partner.BirthDate != "" {
		if _, err := parseDate("household.partner.birth_date", h.Partner.BirthDate); err != nil {
			return err
		}
		if h.Partner.MaxAge <= 0 {
			return &domain.ValidationError{Field: "household.partner.max_age", Message: "max age must be positive"}
		}
	}
	return nil
}

func (ip *InputParser) validateAccount(field string, a AccountConfig, hasPartner bool) error {
	if err := validateOwner(field+".owner", a.Owner, hasPartner); err != nil {
		return err
	}
	_, err := parseHistory(field, a.History)
	return err
}

func (ip *InputParser) validateScenario(field string, s *ScenarioConfig, hasPartner bool) error {
	mode := domain.Mode(s.Mode)
	if mode != domain.ModeBudget && mode != domain.ModeSchedule {
		return &domain.ValidationError{Field: field + ".mode", Message: fmt.Sprintf("unknown mode %q (expected budget or schedule)", s.Mode)}
	}
	if _, err := parseDate(field+".report_start", s.ReportStart); err != nil {
		return err
	}
	if s.DrawdownStart != "" {
		if _, err := parseDate(field+".drawdown_start", s.DrawdownStart); err != nil {
			return err
		}
	}
	if mode == domain.ModeBudget && (s.MonthlyBudget == nil || !s.MonthlyBudget.IsPositive()) {
		return &domain.ValidationError{Field: field + ".monthly_budget", Message: "monthly budget must be greater than zero"}
	}
	if _, err := parseRates(field+".rates", s.Rates); err != nil {
		return err
	}
	schedules := []struct {
		name string
		rows []RowConfig
	}{
		{"savings_withdrawals", s.SavingsWithdrawals},
		{"pension_withdrawals", s.PensionWithdrawals},
		{"other_income_schedule", s.OtherIncomeSchedule},
	}
	for _, sch := range schedules {
		if _, err := expandRows(field+"."+sch.name, sch.rows); err != nil {
			return err
		}
		for i, r := range sch.rows {
			if err := validateOwner(fmt.Sprintf("%s.%s[%d].owner", field, sch.name, i), r.Owner, hasPartner); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, &domain.ValidationError{Field: field, Message: err.Error()}
	}
	return t, nil
}

// validateOwner rejects unknown owners and partner ownership in a single-person household.
func validateOwner(field, owner string, hasPartner bool) error {
	parsed, err := domain.ParseOwner(owner)
	if err != nil {
		return &domain.ValidationError{Field: field, Message: err.Error(), Err: err}
	}
	if parsed == domain.OwnerPartner && !hasPartner {
		return &domain.ValidationError{Field: field, Message: "owner is partner but household.partner has no birth date"}
	}
	return nil
}

func parseHistory(field string, entries []EntryConfig) (domain.Series, error) {
	series := make(domain.Series, 0, len(entries))
	seen := map[time.Time]bool{}
	for i, e := range entries {
		d, err := parseDate(fmt.Sprintf("%s.history[%d].date", field, i), e.Date)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			return nil, &domain.ValidationError{Field: fmt.Sprintf("%s.history[%d].date", field, i), Message: fmt.Sprintf("duplicate date %s", e.Date)}
		}
		seen[d] = true
		series = append(series, domain.DatedValue{Date: d, Value: e.Value})
	}
	return series.Sorted(), nil
}

func parseRates(field string, r RatesConfig) (domain.Rates, error) {
	var rates domain.Rates
	var err error
	if rates.SavingsInterest, err = calculation.ParseRateSchedule("savings interest", string(r.SavingsInterest)); err != nil {
		return rates, &domain.ValidationError{Field: field + ".savings_interest", Message: err.Error(), Err: err}
	}
	if rates.PensionGrowth, err = calculation.ParseRateSchedule("pension growth", string(r.PensionGrowth)); err != nil {
		return rates, &domain.ValidationError{Field: field + ".pension_growth", Message: err.Error(), Err: err}
	}
	if rates.StatePensionUprate, err = calculation.ParseRateSchedule("state pension uprate", string(r.StatePensionUprate)); err != nil {
		return rates, &domain.ValidationError{Field: field + ".state_pension_uprate", Message: err.Error(), Err: err}
	}
	if r.BudgetIncrease != "" {
		if rates.BudgetIncrease, err = calculation.ParseRateSchedule("budget increase", string(r.BudgetIncrease)); err != nil {
			return rates, &domain.ValidationError{Field: field + ".budget_increase", Message: err.Error(), Err: err}
		}
	}
	return rates, nil
}

// Holdings converts the recorded balances into engine holdings. Inactive accounts are left out.
func (f *File) Holdings() (domain.Holdings, error) {
	var h domain.Holdings
	for i, a := range f.Accounts {
		if !a.IsActive() {
			continue
		}
		s, err := parseHistory(fmt.Sprintf("accounts[%d]", i), a.History)
		if err != nil {
			return h, err
		}
		h.Savings = append(h.Savings, s)
	}
	for i, p := range f.Pensions {
		if !p.IsActive() {
			continue
		}
		s, err := parseHistory(fmt.Sprintf("pensions[%d]", i), p.History)
		if err != nil {
			return h, err
		}
		h.Pensions = append(h.Pensions, s)
	}
	for i, sp := range f.StatePensions {
		field := fmt.Sprintf("state_pensions[%d]", i)
		start, err := parseDate(field+".start_date", sp.StartDate)
		if err != nil {
			return h, err
		}
		owner, _ := domain.ParseOwner(sp.Owner)
		history, err := parseHistory(field, sp.History)
		if err != nil {
			return h, err
		}
		h.StatePensions = append(h.StatePensions, domain.StatePension{Name: sp.Name, Owner: owner, StartDate: start, History: history})
	}
	return h, nil
}

// ToInputs builds fresh engine inputs for the named scenario.
func (f *File) ToInputs(name string) (calculation.Inputs, error) {
	var in calculation.Inputs
	s, err := f.Scenario(name)
	if err != nil {
		return in, err
	}

	household, err := f.household()
	if err != nil {
		return in, err
	}
	start, err := parseDate("report_start", s.ReportStart)
	if err != nil {
		return in, err
	}
	rates, err := parseRates("rates", s.Rates)
	if err != nil {
		return in, err
	}
	params := domain.ScenarioParameters{
		Name:          s.Name,
		Mode:          domain.Mode(s.Mode),
		Household:     household,
		ReportStart:   start,
		MonthlyBudget: decimal.Zero,
		OtherIncome:   decimal.Zero,
		Rates:         rates,
	}
	if s.DrawdownStart != "" {
		drawdown, err := parseDate("drawdown_start", s.DrawdownStart)
		if err != nil {
			return in, err
		}
		params.DrawdownStart = &drawdown
	}
	if s.MonthlyBudget != nil {
		params.MonthlyBudget = *s.MonthlyBudget
	}
	if s.OtherIncome != nil {
		params.OtherIncome = *s.OtherIncome
	}

	holdings, err := f.Holdings()
	if err != nil {
		return in, err
	}
	var schedules domain.Schedules
	if schedules.SavingsWithdrawals, err = expandRows("savings_withdrawals", s.SavingsWithdrawals); err != nil {
		return in, err
	}
	if schedules.PensionWithdrawals, err = expandRows("pension_withdrawals", s.PensionWithdrawals); err != nil {
		return in, err
	}
	if schedules.OtherIncome, err = expandRows("other_income_schedule", s.OtherIncomeSchedule); err != nil {
		return in, err
	}

	return calculation.Inputs{Params: params, Holdings: holdings, Schedules: schedules}, nil
}

func (f *File) household() (domain.Household, error) {
	var h domain.Household
	birth, err := parseDate("household.primary.birth_date", f.Household.Primary.BirthDate)
	if err != nil {
		return h, err
	}
	h.Primary = domain.Person{Name: f.Household.Primary.Name, BirthDate: birth, MaxAge: f.Household.Primary.MaxAge}
	if p := f.Household.Partner; f.Household.HasPartner() {
		partnerBirth, err := parseDate("household.partner.birth_date", p.BirthDate)
		if err != nil {
			return h, err
		}
		h.Partner = &domain.Person{Name: p.Name, BirthDate: partnerBirth, MaxAge: p.MaxAge}
	}
	return h, nil
}

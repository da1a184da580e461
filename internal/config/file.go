package config

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration: recorded balances plus named scenarios.
// Dates are DD-MM-YYYY strings.
type File struct {
	Household     HouseholdConfig      `yaml:"household" json:"household"`
	Accounts      []AccountConfig      `yaml:"accounts" json:"accounts"`
	Pensions      []AccountConfig      `yaml:"pensions" json:"pensions"`
	StatePensions []StatePensionConfig `yaml:"state_pensions" json:"state_pensions"`
	Scenarios     []ScenarioConfig     `yaml:"scenarios" json:"scenarios"`
}

// PersonConfig describes a household member.
type PersonConfig struct {
	Name      string `yaml:"name" json:"name"`
	BirthDate string `yaml:"birth_date" json:"birth_date"`
	MaxAge    int    `yaml:"max_age" json:"max_age"`
}

// HouseholdConfig holds the primary person and an optional partner.
type HouseholdConfig struct {
	Primary PersonConfig  `yaml:"primary" json:"primary"`
	Partner *PersonConfig `yaml:"partner,omitempty" json:"partner,omitempty"`
}

// HasPartner reports whether a partner with a birth date is configured.
func (h HouseholdConfig) HasPartner() bool {
	return h.Partner != nil && h.Partner.BirthDate != ""
}

// EntryConfig is one recorded balance.
type EntryConfig struct {
	Date  string          `yaml:"date" json:"date"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// AccountConfig is a savings account or personal pension with its balance history.
type AccountConfig struct {
	Name    string        `yaml:"name" json:"name"`
	Owner   string        `yaml:"owner,omitempty" json:"owner,omitempty"`
	Active  *bool         `yaml:"active,omitempty" json:"active,omitempty"`
	Notes   string        `yaml:"notes,omitempty" json:"notes,omitempty"`
	History []EntryConfig `yaml:"history" json:"history"`
}

// IsActive reports whether the account counts towards totals. Accounts are active unless disabled.
func (a AccountConfig) IsActive() bool {
	return a.Active == nil || *a.Active
}

// StatePensionConfig is a state pension forecast: annual amounts and the date payments begin.
type StatePensionConfig struct {
	Name      string        `yaml:"name" json:"name"`
	Owner     string        `yaml:"owner,omitempty" json:"owner,omitempty"`
	StartDate string        `yaml:"start_date" json:"start_date"`
	History   []EntryConfig `yaml:"history" json:"history"`
}

// RowConfig is a planned withdrawal or income row, optionally repeated.
type RowConfig struct {
	Date        string          `yaml:"date" json:"date"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Note        string          `yaml:"note,omitempty" json:"note,omitempty"`
	Taxable     bool            `yaml:"taxable,omitempty" json:"taxable,omitempty"`
	Owner       string          `yaml:"owner,omitempty" json:"owner,omitempty"`
	Repeat      string          `yaml:"repeat,omitempty" json:"repeat,omitempty"`
	Occurrences int             `yaml:"occurrences,omitempty" json:"occurrences,omitempty"`
}

// RatesConfig holds the yearly rate schedules of a scenario.
type RatesConfig struct {
	SavingsInterest    RateText `yaml:"savings_interest" json:"savings_interest"`
	PensionGrowth      RateText `yaml:"pension_growth" json:"pension_growth"`
	StatePensionUprate RateText `yaml:"state_pension_uprate" json:"state_pension_uprate"`
	BudgetIncrease     RateText `yaml:"budget_increase" json:"budget_increase"`
}

// ScenarioConfig is one named set of projection settings.
type ScenarioConfig struct {
	Name                string           `yaml:"name" json:"name"`
	Mode                string           `yaml:"mode" json:"mode"`
	ReportStart         string           `yaml:"report_start" json:"report_start"`
	DrawdownStart       string           `yaml:"drawdown_start,omitempty" json:"drawdown_start,omitempty"`
	MonthlyBudget       *decimal.Decimal `yaml:"monthly_budget,omitempty" json:"monthly_budget,omitempty"`
	OtherIncome         *decimal.Decimal `yaml:"other_income,omitempty" json:"other_income,omitempty"`
	Rates               RatesConfig      `yaml:"rates" json:"rates"`
	SavingsWithdrawals  []RowConfig      `yaml:"savings_withdrawals" json:"savings_withdrawals"`
	PensionWithdrawals  []RowConfig      `yaml:"pension_withdrawals" json:"pension_withdrawals"`
	OtherIncomeSchedule []RowConfig      `yaml:"other_income_schedule" json:"other_income_schedule"`
}

// RateText is a rate schedule as written by the user: a number, a comma separated
// string, or a YAML list of numbers.
type RateText string

// UnmarshalYAML accepts scalars and sequences of scalars.
func (r *RateText) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*r = RateText(strings.TrimSpace(node.Value))
		return nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: rate list entries must be numbers", item.Line)
			}
			parts = append(parts, strings.TrimSpace(item.Value))
		}
		*r = RateText(strings.Join(parts, ", "))
		return nil
	default:
		return fmt.Errorf("line %d: rates must be a number, a comma separated string or a list", node.Line)
	}
}

// UnmarshalJSON accepts a string, a number or a list of numbers.
func (r *RateText) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*r = RateText(strings.TrimSpace(text))
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*r = RateText(number.String())
		return nil
	}
	var list []json.Number
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("rates must be a number, a comma separated string or a list")
	}
	parts := make([]string, len(list))
	for i, n := range list {
		parts[i] = n.String()
	}
	*r = RateText(strings.Join(parts, ", "))
	return nil
}

// Scenario returns the scenario called name; an empty name selects the first one.
func (f *File) Scenario(name string) (*ScenarioConfig, error) {
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios configured")
	}
	if name == "" {
		return &f.Scenarios[0], nil
	}
	for i := range f.Scenarios {
		if f.Scenarios[i].Name == name {
			return &f.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found", name)
}

// ScenarioNames lists the configured scenario names in file order.
func (f *File) ScenarioNames() []string {
	names := make([]string, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		names = append(names, s.Name)
	}
	return names
}

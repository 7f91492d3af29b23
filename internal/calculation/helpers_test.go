package calculation

import (
	"fmt"
	"testing"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !dec(want).Equal(got) {
		assert.Fail(t, fmt.Sprintf("want %s, got %s", want, got.String()), msgAndArgs...)
	}
}

func assertBalances(t *testing.T, want [4]string, got domain.AccountAmounts, label string) {
	t.Helper()
	for i, k := range domain.AllAccounts {
		assertDecimal(t, want[i], got.Get(k), "%s %s", label, k)
	}
}

// scenarioA is the hand-checked two-year scenario: no growth, no tax, RRSP room 1000.
func scenarioA() domain.SimulationParameters {
	return domain.SimulationParameters{
		InitialSalary:       decimal.NewFromInt(10000),
		Years:               2,
		InitialRRSPRoom:     decimal.NewFromInt(1000),
		PartialYearFraction: decimal.NewFromInt(1),
	}
}

// sampleParameters mirrors the example configuration shipped with the CLI.
func sampleParameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		InitialSalary:           decimal.NewFromInt(100000),
		SalaryGrowth:            dec("0.1"),
		InitialBonus:            decimal.NewFromInt(25000),
		BonusGrowth:             dec("0.25"),
		InitialExpenses:         decimal.NewFromInt(36000),
		ExpensesGrowth:          dec("0.05"),
		InvestmentYield:         dec("0.07"),
		TaxRate:                 dec("0.25"),
		Years:                   10,
		InitialFHSABalance:      decimal.NewFromInt(60000),
		InitialBrokerageBalance: decimal.NewFromInt(10000),
		InitialRRSPRoom:         decimal.NewFromInt(20000),
		InitialFHSARoom:         decimal.NewFromInt(8000),
		PartialYearFraction:     dec("0.5"),
	}
}

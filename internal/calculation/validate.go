package calculation

import (
	"fmt"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidateParameters checks input ranges before any simulation state exists and returns
// the validated copy. maxYears <= 0 means MaxProjectionYears.
func ValidateParameters(p domain.SimulationParameters, maxYears int) (domain.SimulationParameters, error) {
	if maxYears <= 0 || maxYears > MaxProjectionYears {
		maxYears = MaxProjectionYears
	}

	if err := checkPrecision(p); err != nil {
		return domain.SimulationParameters{}, err
	}

	if p.Years < 0 {
		return domain.SimulationParameters{}, invalid("years", "must not be negative, got %d", p.Years)
	}
	if p.Years > maxYears {
		return domain.SimulationParameters{}, invalid("years", "must not exceed %d, got %d", maxYears, p.Years)
	}
	if !inUnitInterval(p.TaxRate) {
		return domain.SimulationParameters{}, invalid("tax_rate", "must be between 0 and 1, got %s", p.TaxRate)
	}

	nonNegative := []decimalInput{
		{"initial_rrsp_balance", p.InitialRRSPBalance},
		{"initial_fhsa_balance", p.InitialFHSABalance},
		{"initial_tfsa_balance", p.InitialTFSABalance},
		{"initial_brokerage_balance", p.InitialBrokerageBalance},
		{"initial_rrsp_room", p.InitialRRSPRoom},
		{"initial_fhsa_room", p.InitialFHSARoom},
		{"initial_tfsa_room", p.InitialTFSARoom},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return domain.SimulationParameters{}, invalid(f.field, "cannot be negative, got %s", f.value)
		}
	}

	if !inUnitInterval(p.PartialYearFraction) {
		return domain.SimulationParameters{}, invalid("partial_year_fraction", "must be between 0 and 1, got %s", p.PartialYearFraction)
	}

	return p, nil
}

// Decimal inputs must stay within a fixed precision window so that every later
// multiplication and comparison works on small coefficients.
const (
	minInputExponent = -24
	maxInputExponent = 15
	maxInputDigits   = 40
)

// checkPrecision rejects decimals whose scale, digit count or magnitude would make a
// run's arithmetic unbounded. Only Exponent and NumDigits are consulted before the
// magnitude comparison, so oversized inputs are rejected without rescaling them.
func checkPrecision(p domain.SimulationParameters) error {
	for _, f := range decimalInputs(p) {
		exp := f.value.Exponent()
		if exp < minInputExponent || exp > maxInputExponent {
			return invalid(f.field, "precision outside the supported range (exponent %d)", exp)
		}
		if n := f.value.NumDigits(); n > maxInputDigits {
			return invalid(f.field, "has %d significant digits, at most %d allowed", n, maxInputDigits)
		}
		if f.value.Abs().GreaterThan(maxAmount) {
			return invalid(f.field, "magnitude exceeds %s", maxAmount)
		}
	}
	return nil
}

type decimalInput struct {
	field string
	value decimal.Decimal
}

// decimalInputs lists every decimal parameter under its wire name
func decimalInputs(p domain.SimulationParameters) []decimalInput {
	return []decimalInput{
		{"initial_salary", p.InitialSalary},
		{"salary_growth", p.SalaryGrowth},
		{"initial_bonus", p.InitialBonus},
		{"bonus_growth", p.BonusGrowth},
		{"initial_expenses", p.InitialExpenses},
		{"expenses_growth", p.ExpensesGrowth},
		{"investment_yield", p.InvestmentYield},
		{"tax_rate", p.TaxRate},
		{"initial_rrsp_balance", p.InitialRRSPBalance},
		{"initial_fhsa_balance", p.InitialFHSABalance},
		{"initial_tfsa_balance", p.InitialTFSABalance},
		{"initial_brokerage_balance", p.InitialBrokerageBalance},
		{"initial_rrsp_room", p.InitialRRSPRoom},
		{"initial_fhsa_room", p.InitialFHSARoom},
		{"initial_tfsa_room", p.InitialTFSARoom},
		{"partial_year_fraction", p.PartialYearFraction},
	}
}

func inUnitInterval(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

func invalid(field, format string, args ...any) error {
	return &domain.InvalidParameterError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

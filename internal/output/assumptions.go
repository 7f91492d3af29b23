package output

import (
	"fmt"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/domain"
)

// DefaultAssumptions lists the room and liquidation rules rendered in detailed outputs
// when a comparison carries none of its own.
var DefaultAssumptions = calculation.DefaultRoomPolicy().Describe()

// GenerateAssumptions lists the growth and tax inputs of one scenario
func GenerateAssumptions(p domain.SimulationParameters) []string {
	return []string{
		fmt.Sprintf("Salary growth: %s annually", FormatRate(p.SalaryGrowth)),
		fmt.Sprintf("Bonus growth: %s annually", FormatRate(p.BonusGrowth)),
		fmt.Sprintf("Expense growth: %s annually", FormatRate(p.ExpensesGrowth)),
		fmt.Sprintf("Investment yield: %s annually on every account", FormatRate(p.InvestmentYield)),
		fmt.Sprintf("Flat tax rate: %s", FormatRate(p.TaxRate)),
		fmt.Sprintf("First partial period: %s of a year", FormatRate(p.PartialYearFraction)),
	}
}

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}

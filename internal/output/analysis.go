package output

import (
	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalNetWorth    decimal.Decimal
	NetWorthChange   decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest final net worth and compares it
// against the first scenario in the comparison, which is treated as the baseline.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	name := results.BestScenarioForNetWorth
	if name == "" {
		name = calculation.BestScenarioForNetWorth(results.Scenarios)
	}
	if name == "" {
		return Recommendation{}
	}

	var best domain.ScenarioSummary
	for _, sc := range results.Scenarios {
		if sc.Name == name {
			best = sc
			break
		}
	}
	baseline := results.Scenarios[0].FinalNetWorth
	delta := best.FinalNetWorth.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{ScenarioName: best.Name, FinalNetWorth: best.FinalNetWorth, NetWorthChange: delta, PercentageChange: pct}
}

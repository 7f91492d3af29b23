package domain

import (
	"github.com/shopspring/decimal"
)

// Series keys, matching the response keys of the projection endpoint
const (
	SeriesRRSP      = "RRSP"
	SeriesFHSA      = "FHSA"
	SeriesTFSA      = "TFSA"
	SeriesBrokerage = "Brokerage"
	SeriesNetWorth  = "Net Worth"
)

// SeriesNames lists the five result series in display order
var SeriesNames = []string{SeriesRRSP, SeriesFHSA, SeriesTFSA, SeriesBrokerage, SeriesNetWorth}

// Allocation records one pass of the waterfall
type Allocation struct {
	// Cash entering the waterfall, after the zero clamp
	Cash decimal.Decimal `json:"cash"`
	// CashClamped is set when the unclamped cash flow was negative
	CashClamped   bool            `json:"cash_clamped"`
	TaxWithheld   decimal.Decimal `json:"tax_withheld"`
	Contributions AccountAmounts  `json:"contributions"`
}

// YearlySnapshot is the ending state of one simulated year
type YearlySnapshot struct {
	Year       int              `json:"year"`
	Balances   AccountAmounts   `json:"balances"`
	Room       ContributionRoom `json:"room"`
	NetWorth   decimal.Decimal  `json:"net_worth"`
	Allocation Allocation       `json:"allocation"`
}

// ProjectionResult is the output of one projection run. The five series are parallel
// and ordered by year; Snapshots carries the same years with full detail.
type ProjectionResult struct {
	RRSP      []decimal.Decimal `json:"rrsp"`
	FHSA      []decimal.Decimal `json:"fhsa"`
	TFSA      []decimal.Decimal `json:"tfsa"`
	Brokerage []decimal.Decimal `json:"brokerage"`
	NetWorth  []decimal.Decimal `json:"net_worth"`

	Snapshots []YearlySnapshot `json:"snapshots"`

	// InitialBalances are the balances before the partial period
	InitialBalances AccountAmounts `json:"initial_balances"`
	// Seed is the partial-period pass; it is not a simulated year
	Seed      Allocation   `json:"seed"`
	SeedState AccountState `json:"seed_state"`
}

// Years returns the number of simulated years in the result
func (r *ProjectionResult) Years() int {
	return len(r.Snapshots)
}

// Series returns the five result series keyed by their display names
func (r *ProjectionResult) Series() map[string][]decimal.Decimal {
	return map[string][]decimal.Decimal{
		SeriesRRSP:      r.RRSP,
		SeriesFHSA:      r.FHSA,
		SeriesTFSA:      r.TFSA,
		SeriesBrokerage: r.Brokerage,
		SeriesNetWorth:  r.NetWorth,
	}
}

// Final returns the last snapshot, or false when no years were simulated
func (r *ProjectionResult) Final() (YearlySnapshot, bool) {
	if len(r.Snapshots) == 0 {
		return YearlySnapshot{}, false
	}
	return r.Snapshots[len(r.Snapshots)-1], true
}

// ScenarioSummary provides a summary of key metrics for a projected scenario
type ScenarioSummary struct {
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	Parameters         SimulationParameters `json:"parameters"`
	Years              int                  `json:"years"`
	FinalBalances      AccountAmounts       `json:"final_balances"`
	FinalNetWorth      decimal.Decimal      `json:"final_net_worth"`
	TotalContributions AccountAmounts       `json:"total_contributions"`
	TotalTaxWithheld   decimal.Decimal      `json:"total_tax_withheld"`
	ClampedYears       []int                `json:"clamped_years,omitempty"`
	Result             *ProjectionResult    `json:"result"`
}

// ScenarioComparison collects the summaries of every scenario in a configuration
type ScenarioComparison struct {
	Scenarios               []ScenarioSummary `json:"scenarios"`
	BestScenarioForNetWorth string            `json:"best_scenario_for_net_worth"`
	Assumptions             []string          `json:"assumptions"`
}

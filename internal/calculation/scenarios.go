package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RunScenario projects a single named scenario and summarizes it
func (pe *ProjectionEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := pe.Project(scenario.Parameters)
	if err != nil {
		return nil, err
	}
	summary := Summarize(scenario.Name, result)
	summary.Description = scenario.Description
	summary.Parameters = scenario.Parameters
	return &summary, nil
}

// RunScenarios projects every scenario in the configuration in parallel. Results keep the
// configuration order; the first failure cancels the remaining scenarios.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	summaries := make([]domain.ScenarioSummary, len(config.Scenarios))

	g, gctx := errgroup.WithContext(ctx)
	limit := pe.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	g.SetLimit(limit)

	for i := range config.Scenarios {
		i := i
		scenario := &config.Scenarios[i]
		g.Go(func() error {
			summary, err := pe.RunScenario(gctx, scenario)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("RunScenarios failed: %w", err)
	}

	return &domain.ScenarioComparison{
		Scenarios:               summaries,
		BestScenarioForNetWorth: BestScenarioForNetWorth(summaries),
		Assumptions:             pe.Policy.Describe(),
	}, nil
}

// Summarize reduces a projection to its key metrics
func Summarize(name string, result *domain.ProjectionResult) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:             name,
		Years:            result.Years(),
		FinalBalances:    result.SeedState.Balances,
		TotalTaxWithheld: decimal.Zero,
		Result:           result,
	}
	if final, ok := result.Final(); ok {
		summary.FinalBalances = final.Balances
		summary.FinalNetWorth = final.NetWorth
	}
	for _, s := range result.Snapshots {
		summary.TotalContributions = summary.TotalContributions.Add(s.Allocation.Contributions)
		summary.TotalTaxWithheld = summary.TotalTaxWithheld.Add(s.Allocation.TaxWithheld)
		if s.Allocation.CashClamped {
			summary.ClampedYears = append(summary.ClampedYears, s.Year)
		}
	}
	return summary
}

// BestScenarioForNetWorth returns the scenario with the highest final net worth. Ties keep
// the earlier scenario; scenarios with no simulated years are skipped.
func BestScenarioForNetWorth(scenarios []domain.ScenarioSummary) string {
	var best string
	var bestNetWorth decimal.Decimal
	found := false
	for _, sc := range scenarios {
		if sc.Years == 0 {
			continue
		}
		if !found || sc.FinalNetWorth.GreaterThan(bestNetWorth) {
			best = sc.Name
			bestNetWorth = sc.FinalNetWorth
			found = true
		}
	}
	return best
}

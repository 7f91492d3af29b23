package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfiguration() *domain.Configuration {
	lowYield := sampleParameters()
	lowYield.InvestmentYield = dec("0.02")

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Low Yield", Parameters: lowYield},
			{Name: "Baseline", Description: "example configuration", Parameters: sampleParameters()},
			{Name: "Hand Checked", Parameters: scenarioA()},
		},
	}
}

func TestRunScenarios(t *testing.T) {
	engine := NewProjectionEngine()
	engine.Concurrency = 2

	comparison, err := engine.RunScenarios(context.Background(), testConfiguration())
	require.NoError(t, err)
	require.Len(t, comparison.Scenarios, 3)

	// results keep configuration order
	assert.Equal(t, "Low Yield", comparison.Scenarios[0].Name)
	assert.Equal(t, "Baseline", comparison.Scenarios[1].Name)
	assert.Equal(t, "example configuration", comparison.Scenarios[1].Description)
	assert.Equal(t, "Hand Checked", comparison.Scenarios[2].Name)

	assert.Equal(t, "Baseline", comparison.BestScenarioForNetWorth)
	assert.Equal(t, engine.Policy.Describe(), comparison.Assumptions)

	hand := comparison.Scenarios[2]
	assert.Equal(t, 2, hand.Years)
	assertDecimal(t, "30000", hand.FinalNetWorth)
	assertBalances(t, [4]string{"4600", "16000", "400", "9000"}, hand.FinalBalances, "final")
	// 10000 of cash per year, none withheld
	assertDecimal(t, "20000", hand.TotalContributions.Total())
	assertDecimal(t, "0", hand.TotalTaxWithheld)
	assert.Empty(t, hand.ClampedYears)
}

func TestRunScenarios_FailureNamesScenario(t *testing.T) {
	cfg := testConfiguration()
	cfg.Scenarios[1].Parameters.TaxRate = dec("2")

	comparison, err := NewProjectionEngine().RunScenarios(context.Background(), cfg)
	assert.Nil(t, comparison)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "Baseline"`)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestRunScenarios_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProjectionEngine().RunScenarios(ctx, testConfiguration())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSummarize_ClampedYears(t *testing.T) {
	p := scenarioA()
	p.InitialExpenses = dec("4000")
	p.ExpensesGrowth = dec("1")
	p.Years = 3

	result, err := NewProjectionEngine().Project(p)
	require.NoError(t, err)

	// expenses 4000, 8000, 16000 against a 10000 salary
	summary := Summarize("clamp", result)
	assert.Equal(t, []int{3}, summary.ClampedYears)
	assert.Equal(t, 3, summary.Years)
}

func TestBestScenarioForNetWorth(t *testing.T) {
	assert.Empty(t, BestScenarioForNetWorth(nil))

	scenarios := []domain.ScenarioSummary{
		{Name: "empty", Years: 0, FinalNetWorth: dec("999999")},
		{Name: "first", Years: 5, FinalNetWorth: dec("100")},
		{Name: "tie", Years: 5, FinalNetWorth: dec("100")},
		{Name: "lower", Years: 5, FinalNetWorth: dec("50")},
	}
	assert.Equal(t, "first", BestScenarioForNetWorth(scenarios))
}

package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultConcurrency limits how many scenarios RunScenarios projects at once
const defaultConcurrency = 8

// ProjectionEngine projects account balances year by year. It holds no state between
// calls, so one engine may serve concurrent projections.
type ProjectionEngine struct {
	Policy RoomPolicy
	// MaxYears caps the horizon; zero means MaxProjectionYears
	MaxYears int
	// Concurrency bounds parallel scenarios in RunScenarios
	Concurrency int
	Debug       bool // Log start-of-year balances for every simulated year
	Logger      Logger
}

// NewProjectionEngine creates an engine with the default room policy
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Policy:      DefaultRoomPolicy(),
		MaxYears:    MaxProjectionYears,
		Concurrency: defaultConcurrency,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project validates params, seeds the partial period, runs every annual step and values
// each year. On error no result is returned.
func (pe *ProjectionEngine) Project(params domain.SimulationParameters) (*domain.ProjectionResult, error) {
	p, err := ValidateParameters(params, pe.MaxYears)
	if err != nil {
		return nil, err
	}

	state, seed, err := Seed(&p)
	if err != nil {
		pe.Logger.Errorf("Error during partial-period seed: %v", err)
		return nil, err
	}
	seedState := state.Accounts

	snapshots := make([]domain.YearlySnapshot, 0, p.Years)
	for year := 1; year <= p.Years; year++ {
		if pe.Debug {
			b := state.Accounts.Balances
			pe.Logger.Debugf("Start of Year %d: RRSP: %s, FHSA: %s, TFSA: %s, Brokerage: %s",
				year, b.RRSP.StringFixed(2), b.FHSA.StringFixed(2), b.TFSA.StringFixed(2), b.Brokerage.StringFixed(2))
		}

		next, snapshot, err := AnnualStep(year, state, &p, pe.Policy)
		if err != nil {
			pe.Logger.Errorf("Error during year %d simulation: %v", year, err)
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
		state = next
	}

	initial := p.InitialBalances()
	result := &domain.ProjectionResult{
		RRSP:            make([]decimal.Decimal, 0, len(snapshots)),
		FHSA:            make([]decimal.Decimal, 0, len(snapshots)),
		TFSA:            make([]decimal.Decimal, 0, len(snapshots)),
		Brokerage:       make([]decimal.Decimal, 0, len(snapshots)),
		NetWorth:        AggregateNetWorth(snapshots, initial, p.TaxRate),
		Snapshots:       snapshots,
		InitialBalances: initial,
		Seed:            seed,
		SeedState:       seedState,
	}
	for _, s := range snapshots {
		result.RRSP = append(result.RRSP, s.Balances.RRSP)
		result.FHSA = append(result.FHSA, s.Balances.FHSA)
		result.TFSA = append(result.TFSA, s.Balances.TFSA)
		result.Brokerage = append(result.Brokerage, s.Balances.Brokerage)
	}
	return result, nil
}

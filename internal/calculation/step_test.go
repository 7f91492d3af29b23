package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_ScenarioA(t *testing.T) {
	p := scenarioA()
	state, alloc, err := Seed(&p)
	require.NoError(t, err)

	assertBalances(t, [4]string{"1000", "0", "0", "9000"}, state.Accounts.Balances, "seed")
	assertDecimal(t, "0", state.Accounts.Room.RRSP)
	assertDecimal(t, "10000", alloc.Cash)
	assert.False(t, alloc.CashClamped)

	// income is carried forward unchanged; growth starts after year 1
	assertDecimal(t, "10000", state.Income.Salary)
}

func TestSeed_UsesFractionAndInitialRoomOnly(t *testing.T) {
	p := domain.SimulationParameters{
		InitialSalary:       dec("10000"),
		InitialBonus:        dec("1000"),
		InitialExpenses:     dec("4000"),
		TaxRate:             dec("0.25"),
		InitialFHSARoom:     dec("1000"),
		InitialTFSARoom:     dec("2000"),
		PartialYearFraction: dec("0.5"),
		Years:               1,
	}
	state, alloc, err := Seed(&p)
	require.NoError(t, err)

	// cash = (10000 - 4000) * 0.5 + 1000 = 4000; RRSP has no room, 1000 withheld
	assertDecimal(t, "4000", alloc.Cash)
	assertDecimal(t, "1000", alloc.TaxWithheld)
	assertBalances(t, [4]string{"0", "1000", "2000", "0"}, state.Accounts.Balances, "seed")
	assertDecimal(t, "0", state.Accounts.Room.FHSA)
	assertDecimal(t, "0", state.Accounts.Room.TFSA)
}

func TestSeed_ZeroFractionStillAllocatesBonus(t *testing.T) {
	p := scenarioA()
	p.InitialBonus = dec("700")
	p.PartialYearFraction = decimal.Zero

	state, alloc, err := Seed(&p)
	require.NoError(t, err)
	assertDecimal(t, "700", alloc.Cash)
	assertBalances(t, [4]string{"700", "0", "0", "0"}, state.Accounts.Balances, "seed")
}

func TestAnnualStep_ScenarioAYearOne(t *testing.T) {
	p := scenarioA()
	seeded, _, err := Seed(&p)
	require.NoError(t, err)

	next, snapshot, err := AnnualStep(1, seeded, &p, DefaultRoomPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.Year)
	assertBalances(t, [4]string{"2800", "8000", "200", "9000"}, snapshot.Balances, "year 1")
	assertBalances(t, [4]string{"1800", "8000", "200", "0"}, snapshot.Allocation.Contributions, "year 1 contributions")
	assertDecimal(t, "0", snapshot.Room.RRSP)
	assertDecimal(t, "0", snapshot.Room.FHSA)
	assertDecimal(t, "5800", snapshot.Room.TFSA)
	assert.True(t, snapshot.NetWorth.IsZero(), "net worth is filled in by the aggregator")

	// the input state is left untouched
	assertBalances(t, [4]string{"1000", "0", "0", "9000"}, seeded.Accounts.Balances, "seed")
	assert.Equal(t, next.Accounts.Balances, snapshot.Balances)
}

func TestAnnualStep_GrowsIncomeAfterAllocation(t *testing.T) {
	p := scenarioA()
	p.InitialBonus = dec("1000")
	p.SalaryGrowth = dec("0.1")
	p.BonusGrowth = dec("0.5")
	p.ExpensesGrowth = dec("0.2")
	p.InitialExpenses = dec("2000")

	state := domain.ProjectionState{Income: p.InitialIncome()}
	next, snapshot, err := AnnualStep(1, state, &p, DefaultRoomPolicy())
	require.NoError(t, err)

	// this year's cash uses the ungrown values
	assertDecimal(t, "9000", snapshot.Allocation.Cash)
	// room accrual uses the ungrown salary and bonus: 0.18 * 11000
	assertDecimal(t, "1980", snapshot.Allocation.Contributions.RRSP)

	assertDecimal(t, "11000", next.Income.Salary)
	assertDecimal(t, "1500", next.Income.Bonus)
	assertDecimal(t, "2400", next.Income.Expenses)
}

func TestAnnualStep_RRSPAccrualCapped(t *testing.T) {
	p := scenarioA()
	state := domain.ProjectionState{Income: domain.IncomeState{Salary: dec("500000")}}
	_, snapshot, err := AnnualStep(1, state, &p, DefaultRoomPolicy())
	require.NoError(t, err)
	assertDecimal(t, "30000", snapshot.Allocation.Contributions.RRSP)
}

func TestAnnualStep_ClampedYearOnlyGrows(t *testing.T) {
	p := domain.SimulationParameters{
		InitialSalary:   dec("50000"),
		InitialExpenses: dec("80000"),
		InvestmentYield: dec("0.05"),
		Years:           1,
	}
	state := domain.ProjectionState{
		Accounts: domain.AccountState{
			Balances: domain.AccountAmounts{RRSP: dec("1000"), FHSA: dec("2000"), TFSA: dec("3000"), Brokerage: dec("4000")},
		},
		Income: p.InitialIncome(),
	}
	_, snapshot, err := AnnualStep(1, state, &p, DefaultRoomPolicy())
	require.NoError(t, err)

	assert.True(t, snapshot.Allocation.CashClamped)
	assertBalances(t, [4]string{"0", "0", "0", "0"}, snapshot.Allocation.Contributions, "contributions")
	assertBalances(t, [4]string{"1050", "2100", "3150", "4200"}, snapshot.Balances, "balances")
	// room still accrues in a clamped year
	assertDecimal(t, "9000", snapshot.Room.RRSP)
	assertDecimal(t, "8000", snapshot.Room.FHSA)
	assertDecimal(t, "6000", snapshot.Room.TFSA)
}

func TestAnnualStep_NegativeBalanceFails(t *testing.T) {
	p := scenarioA()
	p.InvestmentYield = dec("-1.5")
	state := domain.ProjectionState{
		Accounts: domain.AccountState{Balances: domain.AccountAmounts{TFSA: dec("100")}},
		Income:   p.InitialIncome(),
	}
	_, _, err := AnnualStep(4, state, &p, DefaultRoomPolicy())
	require.Error(t, err)

	var sfe *domain.SimulationFailureError
	require.True(t, errors.As(err, &sfe))
	assert.Equal(t, 4, sfe.Year)
	assert.Equal(t, "TFSA", sfe.Account)
	assert.True(t, errors.Is(err, domain.ErrSimulationFailure))
}

func TestRoomPolicy(t *testing.T) {
	policy := DefaultRoomPolicy()
	income := domain.IncomeState{Salary: dec("100000"), Bonus: dec("25000")}
	assertDecimal(t, "22500", policy.RRSPAccrual(income))

	room := policy.Accrue(domain.ContributionRoom{RRSP: dec("100"), FHSA: dec("0"), TFSA: dec("50")}, income)
	assertDecimal(t, "22600", room.RRSP)
	assertDecimal(t, "8000", room.FHSA)
	assertDecimal(t, "6050", room.TFSA)

	// a shrinking salary can never push room below zero
	negative := policy.Accrue(domain.ContributionRoom{}, domain.IncomeState{Salary: dec("-100000")})
	assertDecimal(t, "0", negative.RRSP)

	assert.Len(t, policy.Describe(), 5)
	assert.Contains(t, policy.Describe()[0], "18%")
}

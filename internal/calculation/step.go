package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	money "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SeedYear is the year index reported for faults in the partial-period pass
const SeedYear = 0

// Seed runs the partial-period pass: cash = (salary - expenses) * fraction + bonus goes
// through the waterfall against the initial room, without any room accrual or growth.
// The returned state is the starting point of year 1.
func Seed(p *domain.SimulationParameters) (domain.ProjectionState, domain.Allocation, error) {
	income := p.InitialIncome()
	if err := checkIncome(SeedYear, income); err != nil {
		return domain.ProjectionState{}, domain.Allocation{}, err
	}

	cash := income.Salary.Sub(income.Expenses).Mul(p.PartialYearFraction).Add(income.Bonus)
	accounts := domain.AccountState{Balances: p.InitialBalances(), Room: p.InitialRoom()}

	next, alloc := Allocate(cash, p.TaxRate, accounts)
	if err := checkBalances(SeedYear, next.Balances); err != nil {
		return domain.ProjectionState{}, domain.Allocation{}, err
	}
	return domain.ProjectionState{Accounts: next, Income: income}, alloc, nil
}

// AnnualStep advances state by one full year:
//  1. accrue room from the salary and bonus in effect this year
//  2. grow every balance by the investment yield
//  3. cash = salary - expenses + bonus
//  4. run the waterfall
//  5. grow salary, bonus and expenses for next year
//
// The returned snapshot has no net worth yet; see AggregateNetWorth.
func AnnualStep(year int, state domain.ProjectionState, p *domain.SimulationParameters, policy RoomPolicy) (domain.ProjectionState, domain.YearlySnapshot, error) {
	if err := checkIncome(year, state.Income); err != nil {
		return domain.ProjectionState{}, domain.YearlySnapshot{}, err
	}

	accounts := state.Accounts
	accounts.Room = policy.Accrue(accounts.Room, state.Income)

	accounts.Balances = GrowBalances(accounts.Balances, p.InvestmentYield)
	if err := checkBalances(year, accounts.Balances); err != nil {
		return domain.ProjectionState{}, domain.YearlySnapshot{}, err
	}

	income := state.Income
	cash := income.Salary.Sub(income.Expenses).Add(income.Bonus)

	accounts, alloc := Allocate(cash, p.TaxRate, accounts)
	if err := checkBalances(year, accounts.Balances); err != nil {
		return domain.ProjectionState{}, domain.YearlySnapshot{}, err
	}

	snapshot := domain.YearlySnapshot{
		Year:       year,
		Balances:   accounts.Balances,
		Room:       accounts.Room,
		Allocation: alloc,
	}

	next := domain.ProjectionState{
		Accounts: accounts,
		Income: domain.IncomeState{
			Salary:   money.NewMoneyFromDecimal(income.Salary).Grow(p.SalaryGrowth).Decimal,
			Bonus:    money.NewMoneyFromDecimal(income.Bonus).Grow(p.BonusGrowth).Decimal,
			Expenses: money.NewMoneyFromDecimal(income.Expenses).Grow(p.ExpensesGrowth).Decimal,
		},
	}
	return next, snapshot, nil
}

// GrowBalances compounds all four balances by one year of yield
func GrowBalances(b domain.AccountAmounts, yield decimal.Decimal) domain.AccountAmounts {
	return domain.AccountAmounts{
		RRSP:      money.NewMoneyFromDecimal(b.RRSP).Grow(yield).Decimal,
		FHSA:      money.NewMoneyFromDecimal(b.FHSA).Grow(yield).Decimal,
		TFSA:      money.NewMoneyFromDecimal(b.TFSA).Grow(yield).Decimal,
		Brokerage: money.NewMoneyFromDecimal(b.Brokerage).Grow(yield).Decimal,
	}
}

func checkBalances(year int, b domain.AccountAmounts) error {
	for _, k := range domain.AllAccounts {
		v := b.Get(k)
		switch {
		case v.IsNegative():
			return &domain.SimulationFailureError{Year: year, Account: k.String(), Reason: "balance became negative: " + v.StringFixed(2)}
		case v.GreaterThan(maxAmount):
			return &domain.SimulationFailureError{Year: year, Account: k.String(), Reason: "balance exceeds representable range"}
		}
	}
	return nil
}

func checkIncome(year int, income domain.IncomeState) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"salary", income.Salary},
		{"bonus", income.Bonus},
		{"expenses", income.Expenses},
	}
	for _, f := range fields {
		if f.value.Abs().GreaterThan(maxAmount) {
			return &domain.SimulationFailureError{Year: year, Reason: f.name + " exceeds representable range"}
		}
	}
	return nil
}

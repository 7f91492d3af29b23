package domain

import (
	"github.com/shopspring/decimal"
)

// SimulationParameters holds every input of a single projection run. All values are
// fixed for the duration of the run.
type SimulationParameters struct {
	InitialSalary   decimal.Decimal `yaml:"initial_salary" json:"initial_salary"`
	SalaryGrowth    decimal.Decimal `yaml:"salary_growth" json:"salary_growth"`
	InitialBonus    decimal.Decimal `yaml:"initial_bonus" json:"initial_bonus"`
	BonusGrowth     decimal.Decimal `yaml:"bonus_growth" json:"bonus_growth"`
	InitialExpenses decimal.Decimal `yaml:"initial_expenses" json:"initial_expenses"`
	ExpensesGrowth  decimal.Decimal `yaml:"expenses_growth" json:"expenses_growth"`
	InvestmentYield decimal.Decimal `yaml:"investment_yield" json:"investment_yield"`
	TaxRate         decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
	Years           int             `yaml:"years" json:"years"`

	InitialRRSPBalance      decimal.Decimal `yaml:"initial_rrsp_balance" json:"initial_rrsp_balance"`
	InitialFHSABalance      decimal.Decimal `yaml:"initial_fhsa_balance" json:"initial_fhsa_balance"`
	InitialTFSABalance      decimal.Decimal `yaml:"initial_tfsa_balance" json:"initial_tfsa_balance"`
	InitialBrokerageBalance decimal.Decimal `yaml:"initial_brokerage_balance" json:"initial_brokerage_balance"`

	InitialRRSPRoom decimal.Decimal `yaml:"initial_rrsp_room" json:"initial_rrsp_room"`
	InitialFHSARoom decimal.Decimal `yaml:"initial_fhsa_room" json:"initial_fhsa_room"`
	InitialTFSARoom decimal.Decimal `yaml:"initial_tfsa_room" json:"initial_tfsa_room"`

	// PartialYearFraction scales the seed pass cash flow; callers derive it from a date if needed.
	PartialYearFraction decimal.Decimal `yaml:"partial_year_fraction" json:"partial_year_fraction"`
}

// InitialBalances returns the four starting balances as an AccountAmounts
func (p *SimulationParameters) InitialBalances() AccountAmounts {
	return AccountAmounts{
		RRSP:      p.InitialRRSPBalance,
		FHSA:      p.InitialFHSABalance,
		TFSA:      p.InitialTFSABalance,
		Brokerage: p.InitialBrokerageBalance,
	}
}

// InitialRoom returns the starting contribution room of the three room-tracked accounts
func (p *SimulationParameters) InitialRoom() ContributionRoom {
	return ContributionRoom{
		RRSP: p.InitialRRSPRoom,
		FHSA: p.InitialFHSARoom,
		TFSA: p.InitialTFSARoom,
	}
}

// InitialIncome returns the salary, bonus and expenses in effect before any growth
func (p *SimulationParameters) InitialIncome() IncomeState {
	return IncomeState{
		Salary:   p.InitialSalary,
		Bonus:    p.InitialBonus,
		Expenses: p.InitialExpenses,
	}
}

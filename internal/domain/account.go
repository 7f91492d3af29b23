package domain

import (
	"github.com/shopspring/decimal"

	money "github.com/rpgo/savings-projector/pkg/decimal"
)

// AccountKind identifies one of the four modelled accounts
type AccountKind int

const (
	// AccountRRSP is the registered-growth account: contributions are deductible, growth is taxed on withdrawal
	AccountRRSP AccountKind = iota
	// AccountFHSA is tax-free savings account A
	AccountFHSA
	// AccountTFSA is tax-free savings account B
	AccountTFSA
	// AccountBrokerage is the taxable account with no contribution room
	AccountBrokerage
)

// AllAccounts lists the accounts in waterfall order
var AllAccounts = []AccountKind{AccountRRSP, AccountFHSA, AccountTFSA, AccountBrokerage}

func (k AccountKind) String() string {
	switch k {
	case AccountRRSP:
		return "RRSP"
	case AccountFHSA:
		return "FHSA"
	case AccountTFSA:
		return "TFSA"
	case AccountBrokerage:
		return "Brokerage"
	default:
		return "unknown"
	}
}

// HasRoom reports whether the account is capped by contribution room
func (k AccountKind) HasRoom() bool {
	return k != AccountBrokerage
}

// IsTaxSheltered reports whether gains in the account escape the flat tax at liquidation
func (k AccountKind) IsTaxSheltered() bool {
	return k == AccountFHSA || k == AccountTFSA
}

// AccountAmounts holds one amount per account (balances or contributions)
type AccountAmounts struct {
	RRSP      decimal.Decimal `yaml:"rrsp" json:"rrsp"`
	FHSA      decimal.Decimal `yaml:"fhsa" json:"fhsa"`
	TFSA      decimal.Decimal `yaml:"tfsa" json:"tfsa"`
	Brokerage decimal.Decimal `yaml:"brokerage" json:"brokerage"`
}

// Get returns the amount for one account
func (a AccountAmounts) Get(k AccountKind) decimal.Decimal {
	switch k {
	case AccountRRSP:
		return a.RRSP
	case AccountFHSA:
		return a.FHSA
	case AccountTFSA:
		return a.TFSA
	case AccountBrokerage:
		return a.Brokerage
	default:
		return decimal.Zero
	}
}

// Total sums all four accounts
func (a AccountAmounts) Total() decimal.Decimal {
	return money.Sum(
		money.NewMoneyFromDecimal(a.RRSP),
		money.NewMoneyFromDecimal(a.FHSA),
		money.NewMoneyFromDecimal(a.TFSA),
		money.NewMoneyFromDecimal(a.Brokerage),
	).Decimal
}

// Add returns the account-wise sum of two amounts
func (a AccountAmounts) Add(b AccountAmounts) AccountAmounts {
	return AccountAmounts{
		RRSP:      a.RRSP.Add(b.RRSP),
		FHSA:      a.FHSA.Add(b.FHSA),
		TFSA:      a.TFSA.Add(b.TFSA),
		Brokerage: a.Brokerage.Add(b.Brokerage),
	}
}

// ContributionRoom is the remaining room of the three room-tracked accounts
type ContributionRoom struct {
	RRSP decimal.Decimal `yaml:"rrsp" json:"rrsp"`
	FHSA decimal.Decimal `yaml:"fhsa" json:"fhsa"`
	TFSA decimal.Decimal `yaml:"tfsa" json:"tfsa"`
}

// Get returns the room of one account; the brokerage account has none
func (r ContributionRoom) Get(k AccountKind) decimal.Decimal {
	switch k {
	case AccountRRSP:
		return r.RRSP
	case AccountFHSA:
		return r.FHSA
	case AccountTFSA:
		return r.TFSA
	default:
		return decimal.Zero
	}
}

// AccountState is the balance and room of every account at a point in time
type AccountState struct {
	Balances AccountAmounts   `yaml:"balances" json:"balances"`
	Room     ContributionRoom `yaml:"room" json:"room"`
}

// IncomeState carries the salary, bonus and expenses that apply to the current year
type IncomeState struct {
	Salary   decimal.Decimal `yaml:"salary" json:"salary"`
	Bonus    decimal.Decimal `yaml:"bonus" json:"bonus"`
	Expenses decimal.Decimal `yaml:"expenses" json:"expenses"`
}

// ProjectionState is everything one annual step consumes from the previous one
type ProjectionState struct {
	Accounts AccountState `yaml:"accounts" json:"accounts"`
	Income   IncomeState  `yaml:"income" json:"income"`
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountKind(t *testing.T) {
	tests := []struct {
		kind      AccountKind
		name      string
		hasRoom   bool
		sheltered bool
	}{
		{AccountRRSP, "RRSP", true, false},
		{AccountFHSA, "FHSA", true, true},
		{AccountTFSA, "TFSA", true, true},
		{AccountBrokerage, "Brokerage", false, false},
		{AccountKind(99), "unknown", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.hasRoom, tt.kind.HasRoom())
			assert.Equal(t, tt.sheltered, tt.kind.IsTaxSheltered())
		})
	}
	assert.Equal(t, []AccountKind{AccountRRSP, AccountFHSA, AccountTFSA, AccountBrokerage}, AllAccounts)
}

func TestAccountAmounts(t *testing.T) {
	a := AccountAmounts{
		RRSP:      decimal.NewFromInt(100),
		FHSA:      decimal.NewFromInt(200),
		TFSA:      decimal.NewFromInt(300),
		Brokerage: decimal.NewFromFloat(400.5),
	}
	assert.True(t, a.Total().Equal(decimal.NewFromFloat(1000.5)))
	assert.True(t, a.Get(AccountTFSA).Equal(decimal.NewFromInt(300)))
	assert.True(t, a.Get(AccountKind(-1)).IsZero())

	sum := a.Add(a)
	assert.True(t, sum.RRSP.Equal(decimal.NewFromInt(200)))
	assert.True(t, sum.Brokerage.Equal(decimal.NewFromInt(801)))
	assert.True(t, sum.Total().Equal(a.Total().Mul(decimal.NewFromInt(2))))
}

func TestContributionRoomGet(t *testing.T) {
	r := ContributionRoom{RRSP: decimal.NewFromInt(1), FHSA: decimal.NewFromInt(2), TFSA: decimal.NewFromInt(3)}
	for i, k := range []AccountKind{AccountRRSP, AccountFHSA, AccountTFSA} {
		assert.True(t, r.Get(k).Equal(decimal.NewFromInt(int64(i+1))), k.String())
	}
	assert.True(t, r.Get(AccountBrokerage).IsZero())
}

func TestParameterViews(t *testing.T) {
	p := SimulationParameters{
		InitialSalary:           decimal.NewFromInt(100000),
		InitialBonus:            decimal.NewFromInt(25000),
		InitialExpenses:         decimal.NewFromInt(36000),
		InitialFHSABalance:      decimal.NewFromInt(60000),
		InitialBrokerageBalance: decimal.NewFromInt(10000),
		InitialRRSPRoom:         decimal.NewFromInt(20000),
		InitialFHSARoom:         decimal.NewFromInt(8000),
	}

	balances := p.InitialBalances()
	assert.True(t, balances.FHSA.Equal(decimal.NewFromInt(60000)))
	assert.True(t, balances.Total().Equal(decimal.NewFromInt(70000)))

	room := p.InitialRoom()
	assert.True(t, room.RRSP.Equal(decimal.NewFromInt(20000)))
	assert.True(t, room.TFSA.IsZero())

	income := p.InitialIncome()
	assert.True(t, income.Salary.Equal(decimal.NewFromInt(100000)))
	assert.True(t, income.Bonus.Equal(decimal.NewFromInt(25000)))
	assert.True(t, income.Expenses.Equal(decimal.NewFromInt(36000)))
}

func TestProjectionResultViews(t *testing.T) {
	var empty ProjectionResult
	_, ok := empty.Final()
	assert.False(t, ok)
	assert.Equal(t, 0, empty.Years())

	r := ProjectionResult{
		RRSP:      []decimal.Decimal{decimal.NewFromInt(1)},
		FHSA:      []decimal.Decimal{decimal.NewFromInt(2)},
		TFSA:      []decimal.Decimal{decimal.NewFromInt(3)},
		Brokerage: []decimal.Decimal{decimal.NewFromInt(4)},
		NetWorth:  []decimal.Decimal{decimal.NewFromInt(10)},
		Snapshots: []YearlySnapshot{{Year: 1, NetWorth: decimal.NewFromInt(10)}},
	}
	final, ok := r.Final()
	assert.True(t, ok)
	assert.Equal(t, 1, final.Year)

	series := r.Series()
	assert.Len(t, series, len(SeriesNames))
	for _, name := range SeriesNames {
		assert.Len(t, series[name], 1, name)
	}
	assert.True(t, series[SeriesNetWorth][0].Equal(decimal.NewFromInt(10)))
}

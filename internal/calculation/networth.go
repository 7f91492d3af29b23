package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	money "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// NetWorth values the balances as if liquidated: growth of the RRSP and brokerage over
// their run-start balances is taxed at the flat rate, FHSA and TFSA count in full.
func NetWorth(balances, initial domain.AccountAmounts, taxRate decimal.Decimal) decimal.Decimal {
	total := money.Zero()
	for _, k := range domain.AllAccounts {
		balance := money.NewMoneyFromDecimal(balances.Get(k))
		if k.IsTaxSheltered() {
			total = total.Add(balance)
			continue
		}
		gain := balance.Sub(money.NewMoneyFromDecimal(initial.Get(k)))
		total = total.Add(balance.Sub(gain.Mul(taxRate)))
	}
	return total.Decimal
}

// AggregateNetWorth fills in NetWorth on every snapshot and returns the series in year order
func AggregateNetWorth(snapshots []domain.YearlySnapshot, initial domain.AccountAmounts, taxRate decimal.Decimal) []decimal.Decimal {
	series := make([]decimal.Decimal, len(snapshots))
	for i := range snapshots {
		snapshots[i].NetWorth = NetWorth(snapshots[i].Balances, initial, taxRate)
		series[i] = snapshots[i].NetWorth
	}
	return series
}

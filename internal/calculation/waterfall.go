package calculation

import (
	"github.com/rpgo/savings-projector/internal/domain"
	money "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Allocate routes cash through the accounts in fixed order: RRSP, flat tax on the
// remainder, FHSA, TFSA, then brokerage for whatever is left. Each room-tracked account
// takes min(cash, room). Negative cash is clamped to zero so no step ever withdraws.
// Room is consumed here but never accrued.
func Allocate(cash, taxRate decimal.Decimal, accounts domain.AccountState) (domain.AccountState, domain.Allocation) {
	var alloc domain.Allocation
	next := accounts

	remaining := money.NewMoneyFromDecimal(cash)
	if remaining.IsNegative() {
		alloc.CashClamped = true
		remaining = money.Zero()
	}
	alloc.Cash = remaining.Decimal

	remaining, next.Room.RRSP, next.Balances.RRSP, alloc.Contributions.RRSP =
		contribute(remaining, next.Room.RRSP, next.Balances.RRSP)

	afterTax := remaining.ApplyTaxRate(taxRate)
	alloc.TaxWithheld = remaining.Sub(afterTax).Decimal
	remaining = afterTax

	remaining, next.Room.FHSA, next.Balances.FHSA, alloc.Contributions.FHSA =
		contribute(remaining, next.Room.FHSA, next.Balances.FHSA)

	remaining, next.Room.TFSA, next.Balances.TFSA, alloc.Contributions.TFSA =
		contribute(remaining, next.Room.TFSA, next.Balances.TFSA)

	next.Balances.Brokerage = next.Balances.Brokerage.Add(remaining.Decimal)
	alloc.Contributions.Brokerage = remaining.Decimal

	return next, alloc
}

// contribute moves min(cash, room) into one room-tracked account
func contribute(cash money.Money, room, balance decimal.Decimal) (money.Money, decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	r := money.NewMoneyFromDecimal(room)
	amount := money.Min(cash, r).ClampZero()
	return cash.Sub(amount),
		r.Sub(amount).ClampZero().Decimal,
		balance.Add(amount.Decimal),
		amount.Decimal
}

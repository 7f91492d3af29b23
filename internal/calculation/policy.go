package calculation

import (
	"fmt"

	"github.com/rpgo/savings-projector/internal/domain"
	money "github.com/rpgo/savings-projector/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MaxProjectionYears bounds the horizon accepted by the validator
const MaxProjectionYears = 100

// maxAmount is the largest cash, income or balance figure a run may reach before it is
// treated as a numeric fault.
var maxAmount = decimal.New(1, 15)

// RoomPolicy holds the annual contribution-room accrual rules
type RoomPolicy struct {
	// RRSPRate is the share of salary plus bonus that becomes RRSP room each year
	RRSPRate decimal.Decimal
	// RRSPCap limits a single year's RRSP accrual
	RRSPCap        decimal.Decimal
	FHSAAnnualRoom decimal.Decimal
	TFSAAnnualRoom decimal.Decimal
}

// DefaultRoomPolicy returns the current account rules: RRSP 18% of earned income up to
// 30 000, FHSA 8 000 and TFSA 6 000 per year.
func DefaultRoomPolicy() RoomPolicy {
	return RoomPolicy{
		RRSPRate:       decimal.NewFromFloat(0.18),
		RRSPCap:        decimal.NewFromInt(30000),
		FHSAAnnualRoom: decimal.NewFromInt(8000),
		TFSAAnnualRoom: decimal.NewFromInt(6000),
	}
}

// RRSPAccrual returns one year's RRSP room for the given income
func (p RoomPolicy) RRSPAccrual(income domain.IncomeState) decimal.Decimal {
	earned := money.NewMoneyFromDecimal(income.Salary.Add(income.Bonus))
	return money.Min(earned.Mul(p.RRSPRate), money.NewMoneyFromDecimal(p.RRSPCap)).Decimal
}

// Accrue adds one year of room to every room-tracked account. Room never goes below zero.
func (p RoomPolicy) Accrue(room domain.ContributionRoom, income domain.IncomeState) domain.ContributionRoom {
	return domain.ContributionRoom{
		RRSP: addRoom(room.RRSP, p.RRSPAccrual(income)),
		FHSA: addRoom(room.FHSA, p.FHSAAnnualRoom),
		TFSA: addRoom(room.TFSA, p.TFSAAnnualRoom),
	}
}

// Describe lists the policy as human-readable assumptions
func (p RoomPolicy) Describe() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("RRSP room: %s%% of salary plus bonus per year, capped at $%s",
			p.RRSPRate.Mul(hundred).StringFixed(0), p.RRSPCap.StringFixed(0)),
		fmt.Sprintf("FHSA room: $%s per year", p.FHSAAnnualRoom.StringFixed(0)),
		fmt.Sprintf("TFSA room: $%s per year", p.TFSAAnnualRoom.StringFixed(0)),
		"Waterfall order: RRSP, flat tax, FHSA, TFSA, brokerage",
		"Net worth taxes RRSP and brokerage gains at the flat rate; FHSA and TFSA are untaxed",
	}
}

func addRoom(room, accrual decimal.Decimal) decimal.Decimal {
	return money.NewMoneyFromDecimal(room.Add(accrual)).ClampZero().Decimal
}

package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/savings-projector/pkg/decimal"
)

// FormatCurrency formats a decimal as dollars with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal that is already a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate renders a fractional rate such as 0.07 as "7.00%".
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

var decimalHundred = decimal.NewFromInt(100)

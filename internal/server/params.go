package server

import (
	"bytes"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/rpgo/savings-projector/internal/domain"
)

const partialYearFractionParam = "partial_year_fraction"

// decimalFields binds every decimal query parameter to its field, in the order
// the projection endpoint has always listed them.
func decimalFields(p *domain.SimulationParameters) []struct {
	name   string
	target *decimal.Decimal
} {
	return []struct {
		name   string
		target *decimal.Decimal
	}{
		{"initial_salary", &p.InitialSalary},
		{"salary_growth", &p.SalaryGrowth},
		{"initial_bonus", &p.InitialBonus},
		{"bonus_growth", &p.BonusGrowth},
		{"initial_expenses", &p.InitialExpenses},
		{"expenses_growth", &p.ExpensesGrowth},
		{"investment_yield", &p.InvestmentYield},
		{"tax_rate", &p.TaxRate},
		{"initial_rrsp_balance", &p.InitialRRSPBalance},
		{"initial_fhsa_balance", &p.InitialFHSABalance},
		{"initial_tfsa_balance", &p.InitialTFSABalance},
		{"initial_brokerage_balance", &p.InitialBrokerageBalance},
		{"initial_rrsp_room", &p.InitialRRSPRoom},
		{"initial_fhsa_room", &p.InitialFHSARoom},
		{"initial_tfsa_room", &p.InitialTFSARoom},
	}
}

// parseQuery reads simulation parameters from query arguments. Every parameter is
// required except partial_year_fraction, which defaults to a whole year.
func parseQuery(args *fasthttp.Args) (domain.SimulationParameters, error) {
	p := domain.SimulationParameters{PartialYearFraction: decimal.NewFromInt(1)}

	for _, f := range decimalFields(&p) {
		if !args.Has(f.name) {
			return p, &domain.InvalidParameterError{Field: f.name, Reason: "is required"}
		}
		d, err := parseDecimal(f.name, args.Peek(f.name))
		if err != nil {
			return p, err
		}
		*f.target = d
	}

	if !args.Has("years") {
		return p, &domain.InvalidParameterError{Field: "years", Reason: "is required"}
	}
	raw := args.Peek("years")
	years, err := strconv.Atoi(string(raw))
	if err != nil {
		return p, &domain.InvalidParameterError{Field: "years", Reason: fmt.Sprintf("%q is not a whole number", raw)}
	}
	p.Years = years

	if args.Has(partialYearFractionParam) {
		d, err := parseDecimal(partialYearFractionParam, args.Peek(partialYearFractionParam))
		if err != nil {
			return p, err
		}
		p.PartialYearFraction = d
	}
	return p, nil
}

func parseDecimal(name string, raw []byte) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Zero, &domain.InvalidParameterError{Field: name, Reason: fmt.Sprintf("%q is not a finite number", raw)}
	}
	return d, nil
}

// parseBody decodes a JSON parameter document. Unknown fields are rejected and an
// absent partial_year_fraction defaults to a whole year.
func parseBody(body []byte) (domain.SimulationParameters, error) {
	p := domain.SimulationParameters{PartialYearFraction: decimal.NewFromInt(1)}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, &domain.InvalidParameterError{Field: "body", Reason: err.Error()}
	}
	return p, nil
}

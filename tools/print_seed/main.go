// print_seed shows how the partial first period allocates cash for every scenario in a
// configuration file, optionally with the fraction derived from a date.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/config"
	"github.com/rpgo/savings-projector/pkg/dateutil"
	money "github.com/rpgo/savings-projector/pkg/decimal"
)

func amount(d decimal.Decimal) string { return money.NewMoneyFromDecimal(d).Format() }

func main() {
	path := flag.String("config", "test/testdata/example_config.yaml", "scenario file")
	asOf := flag.String("as-of", "", "derive the partial year fraction from this date (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.NewInputParser().LoadFromFile(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *asOf != "" {
		t, err := dateutil.ParseDate(*asOf)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.ApplyPartialYearFraction(cfg, decimal.NewFromFloat(dateutil.YearFractionElapsed(t)))
	}

	for _, sc := range cfg.Scenarios {
		state, alloc, err := calculation.Seed(&sc.Parameters)
		if err != nil {
			fmt.Printf("%s: %v\n", sc.Name, err)
			continue
		}
		fmt.Printf("%s (fraction %s):\n", sc.Name, sc.Parameters.PartialYearFraction)
		fmt.Printf("  cash %s clamped=%t tax %s\n", amount(alloc.Cash), alloc.CashClamped, amount(alloc.TaxWithheld))
		c := alloc.Contributions
		fmt.Printf("  contributions RRSP %s FHSA %s TFSA %s Brokerage %s\n",
			amount(c.RRSP), amount(c.FHSA), amount(c.TFSA), amount(c.Brokerage))
		r := state.Accounts.Room
		fmt.Printf("  room left RRSP %s FHSA %s TFSA %s\n", amount(r.RRSP), amount(r.FHSA), amount(r.TFSA))
	}
}

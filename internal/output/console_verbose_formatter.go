package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/savings-projector/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed year-by-year console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 100))
	fmt.Fprintln(&buf, "SAVINGS PROJECTION BY ACCOUNT")
	fmt.Fprintln(&buf, strings.Repeat("=", 100))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if scenario.Description != "" {
			fmt.Fprintln(&buf, scenario.Description)
		}
		for _, a := range GenerateAssumptions(scenario.Parameters) {
			fmt.Fprintf(&buf, "  %s\n", a)
		}
		fmt.Fprintln(&buf)
		if scenario.Result != nil {
			writeSeedPass(&buf, scenario.Result)
			writeYearTable(&buf, scenario.Result)
		}

		fmt.Fprintln(&buf, "TOTALS:")
		fmt.Fprintln(&buf, "-------")
		fmt.Fprintf(&buf, "  Contributed to RRSP:      %s\n", FormatCurrency(scenario.TotalContributions.RRSP))
		fmt.Fprintf(&buf, "  Contributed to FHSA:      %s\n", FormatCurrency(scenario.TotalContributions.FHSA))
		fmt.Fprintf(&buf, "  Contributed to TFSA:      %s\n", FormatCurrency(scenario.TotalContributions.TFSA))
		fmt.Fprintf(&buf, "  Contributed to Brokerage: %s\n", FormatCurrency(scenario.TotalContributions.Brokerage))
		fmt.Fprintf(&buf, "  Tax withheld:             %s\n", FormatCurrency(scenario.TotalTaxWithheld))
		fmt.Fprintf(&buf, "  Final net worth:          %s\n", FormatCurrency(scenario.FinalNetWorth))
		if len(scenario.ClampedYears) > 0 {
			fmt.Fprintf(&buf, "  Expenses exceeded income in years %v; no contributions were made\n", scenario.ClampedYears)
		}
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Final net worth: %s\n", FormatCurrency(rec.FinalNetWorth))
		fmt.Fprintf(&buf, "Change vs %s: %s (%s)\n", results.Scenarios[0].Name, FormatCurrency(rec.NetWorthChange), FormatPercentage(rec.PercentageChange))
	}

	return buf.Bytes(), nil
}

func writeSeedPass(buf *bytes.Buffer, r *domain.ProjectionResult) {
	fmt.Fprintln(buf, "PARTIAL FIRST PERIOD:")
	fmt.Fprintf(buf, "  Cash available: %s", FormatCurrency(r.Seed.Cash))
	if r.Seed.CashClamped {
		fmt.Fprint(buf, " (expenses exceeded income)")
	}
	fmt.Fprintln(buf)
	b := r.SeedState.Balances
	fmt.Fprintf(buf, "  Balances after: RRSP %s, FHSA %s, TFSA %s, Brokerage %s\n",
		FormatCurrency(b.RRSP), FormatCurrency(b.FHSA), FormatCurrency(b.TFSA), FormatCurrency(b.Brokerage))
	fmt.Fprintln(buf)
}

func writeYearTable(buf *bytes.Buffer, r *domain.ProjectionResult) {
	if r.Years() == 0 {
		fmt.Fprintln(buf, "No years projected.")
		fmt.Fprintln(buf)
		return
	}
	fmt.Fprintf(buf, "%-5s %15s %15s %15s %15s %15s %13s %13s\n", "YEAR", "RRSP", "FHSA", "TFSA", "BROKERAGE", "NET WORTH", "CASH", "TAX")
	fmt.Fprintln(buf, strings.Repeat("-", 112))
	for _, s := range r.Snapshots {
		marker := ""
		if s.Allocation.CashClamped {
			marker = " *"
		}
		fmt.Fprintf(buf, "%-5d %15s %15s %15s %15s %15s %13s %13s%s\n",
			s.Year,
			FormatCurrency(s.Balances.RRSP),
			FormatCurrency(s.Balances.FHSA),
			FormatCurrency(s.Balances.TFSA),
			FormatCurrency(s.Balances.Brokerage),
			FormatCurrency(s.NetWorth),
			FormatCurrency(s.Allocation.Cash),
			FormatCurrency(s.Allocation.TaxWithheld),
			marker,
		)
	}
	fmt.Fprintln(buf)
}

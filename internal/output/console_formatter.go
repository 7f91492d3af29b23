package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/savings-projector/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "SAVINGS SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedScenarios(results) {
		fmt.Fprintf(&buf, "%s: Years=%d NetWorth=%s RRSP=%s FHSA=%s TFSA=%s Brokerage=%s\n",
			sc.Name,
			sc.Years,
			FormatCurrency(sc.FinalNetWorth),
			FormatCurrency(sc.FinalBalances.RRSP),
			FormatCurrency(sc.FinalBalances.FHSA),
			FormatCurrency(sc.FinalBalances.TFSA),
			FormatCurrency(sc.FinalBalances.Brokerage),
		)
		if len(sc.ClampedYears) > 0 {
			fmt.Fprintf(&buf, "  Expenses exceeded income in years %v\n", sc.ClampedYears)
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.NetWorthChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}

package output

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rpgo/savings-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Years", "FinalRRSP", "FinalFHSA", "FinalTFSA", "FinalBrokerage", "FinalNetWorth", "TotalContributions", "TotalTaxWithheld", "ClampedYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		clamped := make([]string, 0, len(sc.ClampedYears))
		for _, y := range sc.ClampedYears {
			clamped = append(clamped, intToString(y))
		}
		row := []string{
			sc.Name,
			intToString(sc.Years),
			sc.FinalBalances.RRSP.StringFixed(2),
			sc.FinalBalances.FHSA.StringFixed(2),
			sc.FinalBalances.TFSA.StringFixed(2),
			sc.FinalBalances.Brokerage.StringFixed(2),
			sc.FinalNetWorth.StringFixed(2),
			sc.TotalContributions.Total().StringFixed(2),
			sc.TotalTaxWithheld.StringFixed(2),
			strings.Join(clamped, ";"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/savings-projector/internal/domain"
)

// CSVDetailedExporter provides one row per scenario and projected year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Scenario", "Year",
		"RRSP", "FHSA", "TFSA", "Brokerage", "NetWorth",
		"Cash", "CashClamped", "TaxWithheld",
		"ContributionRRSP", "ContributionFHSA", "ContributionTFSA", "ContributionBrokerage",
		"RoomRRSP", "RoomFHSA", "RoomTFSA",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		if sc.Result == nil {
			continue
		}
		for _, s := range sc.Result.Snapshots {
			a := s.Allocation
			row := []string{
				sc.Name,
				intToString(s.Year),
				s.Balances.RRSP.StringFixed(2),
				s.Balances.FHSA.StringFixed(2),
				s.Balances.TFSA.StringFixed(2),
				s.Balances.Brokerage.StringFixed(2),
				s.NetWorth.StringFixed(2),
				a.Cash.StringFixed(2),
				boolToString(a.CashClamped),
				a.TaxWithheld.StringFixed(2),
				a.Contributions.RRSP.StringFixed(2),
				a.Contributions.FHSA.StringFixed(2),
				a.Contributions.TFSA.StringFixed(2),
				a.Contributions.Brokerage.StringFixed(2),
				s.Room.RRSP.StringFixed(2),
				s.Room.FHSA.StringFixed(2),
				s.Room.TFSA.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

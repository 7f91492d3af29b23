package output

import (
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/savings-projector/internal/domain"
	money "github.com/rpgo/savings-projector/pkg/decimal"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(NewComparisonDocument(results), "", "  ")
}

// ProjectionDocument is the wire shape of one projection: the five named series plus
// per-year detail. Amounts are rounded to cents and encoded as JSON numbers.
type ProjectionDocument struct {
	Years     int                      `json:"years"`
	Series    map[string][]json.Number `json:"series"`
	Snapshots []SnapshotDocument       `json:"snapshots"`
}

// SnapshotDocument is one projected year
type SnapshotDocument struct {
	Year          int                    `json:"year"`
	Balances      map[string]json.Number `json:"balances"`
	NetWorth      json.Number            `json:"net_worth"`
	Cash          json.Number            `json:"cash"`
	CashClamped   bool                   `json:"cash_clamped"`
	TaxWithheld   json.Number            `json:"tax_withheld"`
	Contributions map[string]json.Number `json:"contributions"`
	Room          map[string]json.Number `json:"room"`
}

// ScenarioDocument is one scenario of a comparison
type ScenarioDocument struct {
	Name          string             `json:"name"`
	Description   string             `json:"description,omitempty"`
	FinalNetWorth json.Number        `json:"final_net_worth"`
	ClampedYears  []int              `json:"clamped_years,omitempty"`
	Projection    ProjectionDocument `json:"projection"`
}

// ComparisonDocument is the wire shape of a scenario comparison
type ComparisonDocument struct {
	BestScenarioForNetWorth string             `json:"best_scenario_for_net_worth"`
	Assumptions             []string           `json:"assumptions"`
	Scenarios               []ScenarioDocument `json:"scenarios"`
}

// NewProjectionDocument converts a projection result into its wire shape
func NewProjectionDocument(r *domain.ProjectionResult) ProjectionDocument {
	doc := ProjectionDocument{
		Series:    make(map[string][]json.Number, len(domain.SeriesNames)),
		Snapshots: make([]SnapshotDocument, 0, r.Years()),
	}
	doc.Years = r.Years()
	for name, values := range r.Series() {
		doc.Series[name] = cents(values...)
	}
	for _, s := range r.Snapshots {
		a := s.Allocation
		doc.Snapshots = append(doc.Snapshots, SnapshotDocument{
			Year:          s.Year,
			Balances:      accountNumbers(s.Balances),
			NetWorth:      cent(s.NetWorth),
			Cash:          cent(a.Cash),
			CashClamped:   a.CashClamped,
			TaxWithheld:   cent(a.TaxWithheld),
			Contributions: accountNumbers(a.Contributions),
			Room:          roomNumbers(s.Room),
		})
	}
	return doc
}

// NewComparisonDocument converts a scenario comparison into its wire shape
func NewComparisonDocument(results *domain.ScenarioComparison) ComparisonDocument {
	doc := ComparisonDocument{
		BestScenarioForNetWorth: results.BestScenarioForNetWorth,
		Assumptions:             assumptionsFor(results),
		Scenarios:               make([]ScenarioDocument, 0, len(results.Scenarios)),
	}
	for _, sc := range results.Scenarios {
		sd := ScenarioDocument{
			Name:          sc.Name,
			Description:   sc.Description,
			FinalNetWorth: cent(sc.FinalNetWorth),
			ClampedYears:  sc.ClampedYears,
		}
		if sc.Result != nil {
			sd.Projection = NewProjectionDocument(sc.Result)
		}
		doc.Scenarios = append(doc.Scenarios, sd)
	}
	return doc
}

func roomNumbers(r domain.ContributionRoom) map[string]json.Number {
	out := make(map[string]json.Number, len(domain.AllAccounts)-1)
	for _, k := range domain.AllAccounts {
		if k.HasRoom() {
			out[k.String()] = cent(r.Get(k))
		}
	}
	return out
}

func accountNumbers(a domain.AccountAmounts) map[string]json.Number {
	out := make(map[string]json.Number, len(domain.AllAccounts))
	for _, k := range domain.AllAccounts {
		out[k.String()] = cent(a.Get(k))
	}
	return out
}

func cent(d decimal.Decimal) json.Number {
	return json.Number(money.NewMoneyFromDecimal(d).String())
}

func cents(values ...decimal.Decimal) []json.Number {
	out := make([]json.Number, len(values))
	for i, v := range values {
		out[i] = cent(v)
	}
	return out
}

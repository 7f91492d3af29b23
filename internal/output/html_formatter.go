package output

import (
	"bytes"
	_ "embed"
	"html/template"

	json "github.com/goccy/go-json"

	"github.com/rpgo/savings-projector/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":        FormatCurrency,
	"pct":         FormatPercentage,
	"add":         func(i, j int) int { return i + j },
	"assumptions": GenerateAssumptions,
	"json":        jsonScript,
}).Parse(htmlTemplateSource))

// jsonScript encodes v for an inline script block. Encode errors abort template execution.
func jsonScript(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(b), nil
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	series := make(map[string]ProjectionDocument, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		if sc.Result != nil {
			series[sc.Name] = NewProjectionDocument(sc.Result)
		}
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Series         map[string]ProjectionDocument
	}{results, AnalyzeScenarios(results), assumptionsFor(results), series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/savings-projector/internal/calculation"
	"github.com/rpgo/savings-projector/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct {
	// MaxYears caps every scenario's horizon; zero means calculation.MaxProjectionYears
	MaxYears int
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{MaxYears: calculation.MaxProjectionYears}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a scenario document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := applyDefaults(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// fractionFields records which scenarios set partial_year_fraction explicitly
type fractionFields struct {
	Scenarios []struct {
		Parameters struct {
			PartialYearFraction *decimal.Decimal `yaml:"partial_year_fraction"`
		} `yaml:"parameters"`
	} `yaml:"scenarios"`
}

// applyDefaults gives every scenario without a partial_year_fraction a whole first
// year, the same default the HTTP adapter uses.
func applyDefaults(data []byte, config *domain.Configuration) error {
	var fields fractionFields
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return err
	}
	for i := range config.Scenarios {
		if i >= len(fields.Scenarios) || fields.Scenarios[i].Parameters.PartialYearFraction == nil {
			config.Scenarios[i].Parameters.PartialYearFraction = decimal.NewFromInt(1)
		}
	}
	return nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i)
		}
		if prev, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, prev)
		}
		seen[scenario.Name] = i

		if _, err := calculation.ValidateParameters(scenario.Parameters, ip.MaxYears); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i, scenario.Name, err)
		}
	}

	return nil
}

// ApplyPartialYearFraction overrides the partial-year fraction of every scenario
func ApplyPartialYearFraction(config *domain.Configuration, fraction decimal.Decimal) {
	for i := range config.Scenarios {
		config.Scenarios[i].Parameters.PartialYearFraction = fraction
	}
}

// SaveConfiguration writes the configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	baseline := domain.SimulationParameters{
		InitialSalary:           decimal.NewFromInt(100000),
		SalaryGrowth:            decimal.NewFromFloat(0.1),
		InitialBonus:            decimal.NewFromInt(25000),
		BonusGrowth:             decimal.NewFromFloat(0.25),
		InitialExpenses:         decimal.NewFromInt(3000 * 12),
		ExpensesGrowth:          decimal.NewFromFloat(0.05),
		InvestmentYield:         decimal.NewFromFloat(0.07),
		TaxRate:                 decimal.NewFromFloat(0.25),
		Years:                   10,
		InitialRRSPBalance:      decimal.Zero,
		InitialFHSABalance:      decimal.NewFromInt(60000),
		InitialTFSABalance:      decimal.Zero,
		InitialBrokerageBalance: decimal.NewFromInt(10000),
		InitialRRSPRoom:         decimal.NewFromInt(20000),
		InitialFHSARoom:         decimal.NewFromInt(8000),
		InitialTFSARoom:         decimal.Zero,
		PartialYearFraction:     decimal.NewFromFloat(0.5),
	}

	conservative := baseline
	conservative.SalaryGrowth = decimal.NewFromFloat(0.03)
	conservative.BonusGrowth = decimal.Zero
	conservative.InvestmentYield = decimal.NewFromFloat(0.04)

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:        "Baseline",
				Description: "Fast salary and bonus growth with a 7% yield",
				Parameters:  baseline,
			},
			{
				Name:        "Conservative",
				Description: "Inflation-level raises, flat bonus and a 4% yield",
				Parameters:  conservative,
			},
		},
	}
}

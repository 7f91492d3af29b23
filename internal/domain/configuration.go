package domain

// Scenario is one named set of simulation parameters
type Scenario struct {
	Name        string               `yaml:"name" json:"name"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  SimulationParameters `yaml:"parameters" json:"parameters"`
}

// Configuration is the top-level structure of a scenario file
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// ScenarioNames returns the scenario names in file order
func (c *Configuration) ScenarioNames() []string {
	names := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		names = append(names, s.Name)
	}
	return names
}

package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one declarative query check.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Rows are CSV lines used as the data source.
	Rows []string `yaml:"rows,omitempty"`

	// Source is a CSV file path used instead of Rows.
	// Relative paths are resolved against the scenario file's directory.
	Source string `yaml:"source,omitempty"`

	Expect Expectations `yaml:"expect"`
}

// Expectations lists the checks applied to the query outcomes.
// Unset fields are not checked.
type Expectations struct {
	Records       []string `yaml:"records,omitempty"`
	RecordCount   *int     `yaml:"record_count,omitempty"`
	HighestDeaths string   `yaml:"highest_deaths,omitempty"`
	ActiveOrder   []string `yaml:"active_order,omitempty"`
	Error         string   `yaml:"error,omitempty"`
	Pearson       string   `yaml:"pearson,omitempty"`
}

func (e Expectations) empty() bool {
	return e.Records == nil && e.RecordCount == nil && e.HighestDeaths == "" &&
		e.ActiveOrder == nil && e.Error == "" && e.Pearson == ""
}

// LoadScenario reads, schema-checks and decodes a scenario YAML file.
// Returns an error if the file doesn't exist, fails the schema, contains
// unknown fields, or is internally inconsistent.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Source != "" && !filepath.IsAbs(scenario.Source) {
		scenario.Source = filepath.Join(filepath.Dir(path), scenario.Source)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks constraints the schema cannot express.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Source != "" && s.Rows != nil {
		return fmt.Errorf("rows and source are mutually exclusive")
	}
	if s.Source == "" && s.Rows == nil {
		return fmt.Errorf("one of rows or source is required")
	}

	if s.Expect.empty() {
		return fmt.Errorf("expect must contain at least one expectation")
	}
	if s.Expect.Error != "" && s.Expect.HighestDeaths != "" {
		return fmt.Errorf("expect.error and expect.highest_deaths are mutually exclusive")
	}

	return nil
}

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "round_trip.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "round_trip", scenario.Name)
	assert.Len(t, scenario.Rows, 3)
	assert.Equal(t, []string{"USA", "Chad"}, scenario.Expect.Records)
	assert.Equal(t, "USA", scenario.Expect.HighestDeaths)
	assert.Equal(t, "not_implemented", scenario.Expect.Pearson)
}

func TestLoadScenario_ResolvesSourceRelativeToFile(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "bundled.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "scenarios", "..", "..", "..", "dataset", "CovidLive.csv"), scenario.Source)
	require.NotNil(t, scenario.Expect.RecordCount)
	assert.Equal(t, 10, *scenario.Expect.RecordCount)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "missing name",
			content: `
description: "no name"
rows: []
expect:
  record_count: 0
`,
			want: "invalid scenario",
		},
		{
			name: "unknown field",
			content: `
name: typo
description: "expectation key misspelled"
rows: []
expect:
  record_count: 0
expectations: {}
`,
			want: "invalid scenario",
		},
		{
			name: "unknown expectation",
			content: `
name: typo
description: "expectation key misspelled"
rows: []
expect:
  highest_death: USA
`,
			want: "invalid scenario",
		},
		{
			name: "unknown error code",
			content: `
name: bad_code
description: "error code is not one of ours"
rows: []
expect:
  error: E_BOOM
`,
			want: "invalid scenario",
		},
		{
			name: "negative count",
			content: `
name: bad_count
description: "negative record count"
rows: []
expect:
  record_count: -1
`,
			want: "invalid scenario",
		},
		{
			name: "rows and source",
			content: `
name: both
description: "rows and source together"
rows: []
source: data.csv
expect:
  record_count: 0
`,
			want: "rows and source are mutually exclusive",
		},
		{
			name: "no data",
			content: `
name: neither
description: "no rows and no source"
expect:
  record_count: 0
`,
			want: "one of rows or source is required",
		},
		{
			name: "no expectations",
			content: `
name: idle
description: "nothing to check"
rows: []
expect: {}
`,
			want: "at least one expectation",
		},
		{
			name: "error with highest deaths",
			content: `
name: contradictory
description: "cannot fail and succeed"
rows: []
expect:
  error: E_EMPTY_DATASET
  highest_deaths: USA
`,
			want: "mutually exclusive",
		},
		{
			name: "not yaml",
			content: "name: [unterminated",
			want:    "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateSchema_AcceptsAllExpectations(t *testing.T) {
	err := ValidateSchema([]byte(`
name: full
description: "every expectation key"
source: data.csv
expect:
  records: [A]
  record_count: 1
  highest_deaths: A
  active_order: [A]
  pearson: not_implemented
`))
	require.NoError(t, err)
}

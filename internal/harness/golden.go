package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenDir is where golden files live, relative to the test's package.
const GoldenDir = "testdata/scenarios/golden"

// Snapshot builds the canonical form of a scenario trace.
// Data queries carry either "countries" or "error"; the Pearson query
// carries "status".
func Snapshot(scenarioName string, result *Result) map[string]any {
	trace := make([]any, len(result.Trace))
	for i, ev := range result.Trace {
		m := map[string]any{
			"seq":   ev.Seq,
			"query": ev.Query,
		}
		switch {
		case ev.Query == QueryPearson:
			m["status"] = ev.Status
		case ev.Error != "":
			m["error"] = ev.Error
		default:
			countries := ev.Countries
			if countries == nil {
				countries = []string{}
			}
			m["countries"] = countries
		}
		trace[i] = m
	}
	return map[string]any{
		"scenario_name": scenarioName,
		"trace":         trace,
	}
}

// MarshalSnapshot returns the canonical JSON bytes of Snapshot.
func MarshalSnapshot(scenarioName string, result *Result) ([]byte, error) {
	return MarshalCanonical(Snapshot(scenarioName, result))
}

// RunWithGolden executes a scenario and compares its trace against
// testdata/scenarios/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot be executed; a trace mismatch fails t
// through goldie. Expectation failures are returned in the Result.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	data, err := MarshalSnapshot(scenario.Name, result)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return result, nil
}

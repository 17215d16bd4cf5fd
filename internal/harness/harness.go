package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/covid19/internal/covid"
	"github.com/roach88/covid19/internal/logging"
)

// Harness executes scenario queries against one engine.
type Harness struct {
	engine *covid.Engine
	seq    int64
}

// SourceFor returns the data source described by the scenario.
func SourceFor(scenario *Scenario) covid.Source {
	if scenario.Source != "" {
		return covid.FileSource(scenario.Source)
	}
	data := ""
	if len(scenario.Rows) > 0 {
		data = strings.Join(scenario.Rows, "\n") + "\n"
	}
	return covid.MemorySource(scenario.Name+".csv", []byte(data))
}

// Run executes every query once and evaluates the scenario's expectations.
//
// Queries run in a fixed order (all_records, highest_deaths,
// ordered_by_active_cases, pearson_coefficient) with sequence numbers
// starting at 1, so traces are reproducible for golden comparison.
// Query failures are part of the trace, not errors of Run.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	h := &Harness{
		engine: covid.NewEngine(SourceFor(scenario),
			covid.WithLogger(logging.Discard())),
	}

	result := NewResult()
	h.runQueries(result)

	for _, msg := range EvaluateExpectations(result, scenario.Expect) {
		result.AddError(msg)
	}
	return result, nil
}

func (h *Harness) runQueries(result *Result) {
	records, err := h.engine.AllRecords()
	result.Trace = append(result.Trace, h.event(QueryAllRecords, records, err))

	top, err := h.engine.HighestDeaths()
	var topRecords []covid.Record
	if err == nil {
		topRecords = []covid.Record{top}
	}
	result.Trace = append(result.Trace, h.event(QueryHighestDeaths, topRecords, err))

	ordered, err := h.engine.OrderedByActiveCases()
	result.Trace = append(result.Trace, h.event(QueryActiveOrder, ordered, err))

	pearson := h.engine.PearsonCoefficient()
	h.seq++
	result.Trace = append(result.Trace, TraceEvent{
		Seq:    h.seq,
		Query:  QueryPearson,
		Status: string(pearson.Status),
	})
}

func (h *Harness) event(query string, records []covid.Record, err error) TraceEvent {
	h.seq++
	ev := TraceEvent{Seq: h.seq, Query: query}
	if err != nil {
		ev.Error = string(covid.CodeOf(err))
		if ev.Error == "" {
			ev.Error = err.Error()
		}
		return ev
	}
	ev.Countries = covid.Dataset(records).Countries()
	return ev
}

// EvaluateExpectations compares the trace against exp and returns one
// message per mismatch.
func EvaluateExpectations(result *Result, exp Expectations) []string {
	var errs []string

	all, _ := result.Event(QueryAllRecords)
	if exp.Records != nil {
		if all.Error != "" {
			errs = append(errs, fmt.Sprintf("records: query failed with %s", all.Error))
		} else if !slices.Equal(all.Countries, exp.Records) {
			errs = append(errs, fmt.Sprintf("records: expected %v, got %v", exp.Records, all.Countries))
		}
	}
	if exp.RecordCount != nil {
		if all.Error != "" {
			errs = append(errs, fmt.Sprintf("record_count: query failed with %s", all.Error))
		} else if len(all.Countries) != *exp.RecordCount {
			errs = append(errs, fmt.Sprintf("record_count: expected %d, got %d", *exp.RecordCount, len(all.Countries)))
		}
	}

	top, _ := result.Event(QueryHighestDeaths)
	if exp.HighestDeaths != "" {
		switch {
		case top.Error != "":
			errs = append(errs, fmt.Sprintf("highest_deaths: query failed with %s", top.Error))
		case len(top.Countries) != 1 || top.Countries[0] != exp.HighestDeaths:
			errs = append(errs, fmt.Sprintf("highest_deaths: expected %s, got %v", exp.HighestDeaths, top.Countries))
		}
	}
	if exp.Error != "" && top.Error != exp.Error {
		got := top.Error
		if got == "" {
			got = "no error"
		}
		errs = append(errs, fmt.Sprintf("error: expected %s, got %s", exp.Error, got))
	}

	ordered, _ := result.Event(QueryActiveOrder)
	if exp.ActiveOrder != nil {
		if ordered.Error != "" {
			errs = append(errs, fmt.Sprintf("active_order: query failed with %s", ordered.Error))
		} else if !slices.Equal(ordered.Countries, exp.ActiveOrder) {
			errs = append(errs, fmt.Sprintf("active_order: expected %v, got %v", exp.ActiveOrder, ordered.Countries))
		}
	}

	pearson, _ := result.Event(QueryPearson)
	if exp.Pearson != "" && pearson.Status != exp.Pearson {
		errs = append(errs, fmt.Sprintf("pearson: expected %s, got %s", exp.Pearson, pearson.Status))
	}

	return errs
}

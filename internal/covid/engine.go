package covid

import (
	"log/slog"
)

// PearsonStatus distinguishes the outcomes of a Pearson coefficient request.
type PearsonStatus string

// StatusNotImplemented is the only status currently produced.
const StatusNotImplemented PearsonStatus = "not_implemented"

// NotImplementedMessage is shown to users for the coefficient placeholder.
const NotImplementedMessage = "This feature is yet to be implemented"

// PearsonResult is the outcome of Engine.PearsonCoefficient.
type PearsonResult struct {
	Status  PearsonStatus `json:"status"`
	Message string        `json:"message"`
}

// Engine answers queries over a Source.
//
// The source is loaded again for every call and nothing is cached between
// calls, so an Engine holds no mutable state and calls may be repeated freely.
type Engine struct {
	src    Source
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an Engine reading from src.
func NewEngine(src Source, opts ...Option) *Engine {
	e := &Engine{src: src, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Source returns the configured source.
func (e *Engine) Source() Source {
	return e.src
}

// HighestDeaths returns the record with the most deaths, the first one in
// file order on ties. Returns *EmptyDatasetError when there are no records.
func (e *Engine) HighestDeaths() (Record, error) {
	ds, err := e.load("highest_deaths")
	if err != nil {
		return Record{}, err
	}
	rec, ok := MaxByDeaths(ds)
	if !ok {
		return Record{}, &EmptyDatasetError{Source: e.src.Name()}
	}
	return rec, nil
}

// OrderedByActiveCases returns all records sorted by active cases, highest
// first, with ties in file order.
func (e *Engine) OrderedByActiveCases() ([]Record, error) {
	ds, err := e.load("ordered_by_active_cases")
	if err != nil {
		return nil, err
	}
	return SortByActiveCases(ds), nil
}

// AllRecords returns every record in file order.
func (e *Engine) AllRecords() ([]Record, error) {
	ds, err := e.load("all_records")
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// PearsonCoefficient is a placeholder. It never reads the source and always
// reports StatusNotImplemented.
func (e *Engine) PearsonCoefficient() PearsonResult {
	return PearsonResult{Status: StatusNotImplemented, Message: NotImplementedMessage}
}

func (e *Engine) load(query string) (Dataset, error) {
	ds, skipped, err := load(e.src)
	if err != nil {
		e.logger.Debug("source load failed", "query", query, "source", e.src.Name(), "error", err)
		return nil, err
	}
	e.logger.Debug("source loaded", "query", query, "source", e.src.Name(), "records", len(ds), "skipped", skipped)
	return ds, nil
}

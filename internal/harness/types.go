package harness

// Query names, in the order Run executes them.
const (
	QueryAllRecords    = "all_records"
	QueryHighestDeaths = "highest_deaths"
	QueryActiveOrder   = "ordered_by_active_cases"
	QueryPearson       = "pearson_coefficient"
)

// TraceEvent records the outcome of one query.
type TraceEvent struct {
	Seq       int64    `json:"seq"`
	Query     string   `json:"query"`
	Countries []string `json:"countries,omitempty"`
	Error     string   `json:"error,omitempty"`
	Status    string   `json:"status,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation matched.
	Pass bool `json:"pass"`

	// Trace holds one event per executed query.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a mismatch and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Event returns the trace event for query, if it ran.
func (r *Result) Event(query string) (TraceEvent, bool) {
	for _, e := range r.Trace {
		if e.Query == query {
			return e, true
		}
	}
	return TraceEvent{}, false
}

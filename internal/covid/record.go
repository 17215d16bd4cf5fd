package covid

// Column positions of the fixed CSV layout (0-indexed).
const (
	ColMarker      = 0
	ColCountry     = 1
	ColTotalDeaths = 3
	ColActiveCases = 6
	ColTotalTests  = 10

	// MinFields is the shortest row that satisfies the layout.
	MinFields = ColTotalTests + 1
)

// CommentMarker in the first column marks a header or comment row.
const CommentMarker = "#"

// Record is one country's statistics from a single data row.
// Records are plain values; every copy is independent.
type Record struct {
	Country     string `json:"country"`
	TotalDeaths int64  `json:"total_deaths"`
	ActiveCases int64  `json:"active_cases"`
	TotalTests  int64  `json:"total_tests"`
}

// Dataset holds records in file order. Duplicate countries are kept as is.
type Dataset []Record

// Countries returns the country names in dataset order.
func (d Dataset) Countries() []string {
	names := make([]string, len(d))
	for i, r := range d {
		names[i] = r.Country
	}
	return names
}

// clone returns a copy that shares no backing array with d.
func (d Dataset) clone() Dataset {
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}

// recordFromFields builds a Record from a row that has at least MinFields fields.
func recordFromFields(fields []string) Record {
	return Record{
		Country:     fields[ColCountry],
		TotalDeaths: Coerce(fields[ColTotalDeaths]),
		ActiveCases: Coerce(fields[ColActiveCases]),
		TotalTests:  Coerce(fields[ColTotalTests]),
	}
}

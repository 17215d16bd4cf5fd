package covid

import (
	"cmp"
	"slices"
)

// MaxByDeaths returns the record with the largest TotalDeaths.
// Among equal maxima the earliest record wins. ok is false for an empty dataset.
func MaxByDeaths(ds Dataset) (rec Record, ok bool) {
	if len(ds) == 0 {
		return Record{}, false
	}
	rec = ds[0]
	for _, r := range ds[1:] {
		if r.TotalDeaths > rec.TotalDeaths {
			rec = r
		}
	}
	return rec, true
}

// SortByActiveCases returns a copy of ds ordered by ActiveCases, highest
// first. Records with equal counts keep their relative file order.
func SortByActiveCases(ds Dataset) Dataset {
	out := ds.clone()
	slices.SortStableFunc(out, func(a, b Record) int {
		return cmp.Compare(b.ActiveCases, a.ActiveCases)
	})
	return out
}

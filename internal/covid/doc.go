// Package covid parses per-country COVID-19 statistics from CSV and answers
// queries over them.
//
// # Input Layout
//
// Each data row is a comma separated line. Quoted fields may contain commas,
// which is how thousands separators appear in real exports:
//
//	#,"Country,Other","Total Cases","Total Deaths",...,"Total Tests",...
//	1,USA,"96,139,749","1,084,282",,"91,934,957","2,120,510",...
//
// Only four columns are used (0-indexed):
//   - 1: country
//   - 3: total deaths
//   - 6: active cases
//   - 10: total tests
//
// A row whose first field is "#" is a header or comment and is skipped. A data
// row with fewer than 11 fields fails the whole load with *MalformedRowError.
// Numeric fields go through Coerce, so "N/A" or an empty cell reads as 0.
//
// # Queries
//
// Engine re-reads its Source on every call:
//   - HighestDeaths: stable maximum by total deaths
//   - OrderedByActiveCases: stable descending sort by active cases
//   - AllRecords: file order
//   - PearsonCoefficient: placeholder, always StatusNotImplemented
//
// # Errors
//
// All errors carry an ErrorCode (see CodeOf): E_DATA_ACCESS, E_READ,
// E_MALFORMED_ROW and E_EMPTY_DATASET.
package covid

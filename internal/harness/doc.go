// Package harness runs declarative query scenarios against the covid engine.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: round_trip
//	description: "Header rows are skipped and file order is kept"
//	rows:
//	  - '1,USA,,1000,,,500,,,,9000'
//	  - '#,header,row,ignored'
//	  - '2,Chad,,50,,,10,,,,200'
//	expect:
//	  records: [USA, Chad]
//	  highest_deaths: USA
//	  active_order: [USA, Chad]
//
// Instead of inline rows a scenario may name a CSV file with source, resolved
// relative to the scenario file. Supported expectations:
//
//   - records: countries returned by AllRecords, in order
//   - record_count: number of records returned by AllRecords
//   - highest_deaths: country returned by HighestDeaths
//   - active_order: countries returned by OrderedByActiveCases, in order
//   - error: error code HighestDeaths must fail with
//   - pearson: status of PearsonCoefficient (only "not_implemented")
//
// Files are checked against the CUE schema in scenario.cue before they are
// decoded, so unknown keys and bad error codes are rejected up front.
//
// # Trace
//
// Run executes every query once, in a fixed order, and records a trace event
// per query. The trace is serialised as canonical JSON (sorted keys, NFC
// strings, no insignificant whitespace) for golden file comparison.
package harness

package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/roach88/covid19/internal/covid"
)

// countryTable describes a two-column country listing.
type countryTable struct {
	Title  string
	Header string
	Value  func(covid.Record) int64
}

var (
	activeCasesTable = countryTable{
		Title:  "Countries by highest number of active cases:",
		Header: "Number of active cases",
		Value:  func(r covid.Record) int64 { return r.ActiveCases },
	}
	testCountsTable = countryTable{
		Title:  "Number of tests per country:",
		Header: "Number of tests",
		Value:  func(r covid.Record) int64 { return r.TotalTests },
	}
)

func renderHighestDeaths(f *OutputFormatter, rec covid.Record) error {
	if f.Format == "json" {
		return f.Success(rec)
	}
	_, err := fmt.Fprintf(f.Writer, "Country with highest number of deaths is: %s\n", rec.Country)
	return err
}

// renderCountryTable prints records as a Country | value table in text mode
// and as a record list in JSON mode.
func renderCountryTable(f *OutputFormatter, t countryTable, records []covid.Record) error {
	if f.Format == "json" {
		if records == nil {
			records = []covid.Record{}
		}
		return f.Success(records)
	}

	if _, err := fmt.Fprintln(f.Writer, t.Title); err != nil {
		return err
	}
	table := tablewriter.NewWriter(f.Writer)
	table.SetHeader([]string{"Country", t.Header})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, rec := range records {
		table.Append([]string{rec.Country, strconv.FormatInt(t.Value(rec), 10)})
	}
	table.Render()
	return nil
}

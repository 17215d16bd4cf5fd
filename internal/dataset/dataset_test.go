package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/covid19/internal/covid"
)

func TestDefault_Parses(t *testing.T) {
	ds, err := covid.Load(Default())
	require.NoError(t, err)
	require.Len(t, ds, 10)

	assert.Equal(t, covid.Record{Country: "USA", TotalDeaths: 1084282, ActiveCases: 2120510, TotalTests: 1118158870}, ds[0])
	assert.Equal(t, covid.Record{Country: "India", TotalDeaths: 528629, ActiveCases: 39583, TotalTests: 894416853}, ds[1])
	assert.Equal(t, covid.Record{Country: "Western Sahara", TotalDeaths: 1}, ds[8])
	assert.Equal(t, covid.Record{Country: "MS Zaandam", TotalDeaths: 2}, ds[9])
}

func TestDefault_Queries(t *testing.T) {
	eng := covid.NewEngine(Default())

	top, err := eng.HighestDeaths()
	require.NoError(t, err)
	assert.Equal(t, "USA", top.Country)

	ordered, err := eng.OrderedByActiveCases()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"USA", "Germany", "France", "Brazil", "India",
		"El Salvador", "Fiji", "Chad", "Western Sahara", "MS Zaandam",
	}, covid.Dataset(ordered).Countries())
}

func TestSource_UnknownName(t *testing.T) {
	_, err := covid.Load(Source("INCORRECT_FILENAME"))
	require.Error(t, err)
	assert.True(t, covid.IsDataAccessError(err))
	assert.Equal(t, "File INCORRECT_FILENAME not found", err.Error())
}

package covid

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	data := csvLines(
		dataRow("USA", "1000", "500", "9000"),
		"#,header,row,ignored",
		dataRow("Chad", "50", "10", "200"),
	)

	ds, err := Parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, Record{Country: "USA", TotalDeaths: 1000, ActiveCases: 500, TotalTests: 9000}, ds[0])
	assert.Equal(t, Record{Country: "Chad", TotalDeaths: 50, ActiveCases: 10, TotalTests: 200}, ds[1])
}

func TestParse_SkipsCommentRows(t *testing.T) {
	data := csvLines(
		`#,"Country,Other","Total Cases","Total Deaths","New Deaths","Total Recovered","Active Cases","Serious,Critical","Tot Cases/1M pop","Deaths/1M pop","Total Tests"`,
		"#",
		dataRow("Fiji", "878", "1,062", "662,620"),
		"#,trailing comment",
	)

	ds, skipped, err := parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	assert.Equal(t, 3, skipped)
	assert.Equal(t, []string{"Fiji"}, ds.Countries())
}

func TestParse_MarkerMustBeExact(t *testing.T) {
	data := csvLines(dataRow("#1", "1", "1", "1"))
	// First field "1", country "#1": a data row.
	ds, err := Parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, "#1", ds[0].Country)

	_, err = Parse(bytes.NewReader(csvLines(" #,a,b")), "inline")
	require.Error(t, err)
	assert.True(t, IsMalformedRowError(err), "leading space is not the marker")
}

func TestParse_MalformedNumbersBecomeZero(t *testing.T) {
	data := csvLines(dataRow("Western Sahara", "1", "N/A", ""))

	ds, err := Parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, int64(1), ds[0].TotalDeaths)
	assert.Equal(t, int64(0), ds[0].ActiveCases)
	assert.Equal(t, int64(0), ds[0].TotalTests)
}

func TestParse_QuotedCommas(t *testing.T) {
	data := csvLines(`1,"Korea, South",x,"25,662",y,z,"1,234,567",a,b,c,"15,804,065"`)

	ds, err := Parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, Record{Country: "Korea, South", TotalDeaths: 25662, ActiveCases: 1234567, TotalTests: 15804065}, ds[0])
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	data := csvLines(dataRow("Chad", "50", "10", "200") + `,"16,914,985",extra`)

	ds, err := Parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, int64(200), ds[0].TotalTests)
}

func TestParse_ByteOrderMark(t *testing.T) {
	data := append([]byte("\ufeff"), csvLines("#,Country,header", dataRow("Chad", "50", "10", "200"))...)

	ds, err := Parse(bytes.NewReader(data), "inline")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chad"}, ds.Countries())
}

func TestParse_ShortRow(t *testing.T) {
	data := csvLines(
		"#,header",
		dataRow("USA", "1000", "500", "9000"),
		"2,India,1,2,3",
	)

	_, err := Parse(bytes.NewReader(data), "short.csv")
	require.Error(t, err)

	var rowErr *MalformedRowError
	require.True(t, errors.As(err, &rowErr))
	assert.Equal(t, "short.csv", rowErr.Source)
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, 5, rowErr.Fields)
	assert.Equal(t, ErrCodeMalformedRow, CodeOf(err))
	assert.Equal(t, "short.csv:3: row has 5 fields, need at least 11", err.Error())
}

func TestParse_TokenizationError(t *testing.T) {
	data := csvLines(`1,"bad"x,2,3,4,5,6,7,8,9,10`)

	_, err := Parse(bytes.NewReader(data), "broken.csv")
	require.Error(t, err)
	assert.True(t, IsReadError(err))

	var parseErr *csv.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParse_ReaderFault(t *testing.T) {
	r := &failingReader{data: csvLines(dataRow("USA", "1", "2", "3")), err: errDisk}

	_, err := Parse(r, "flaky.csv")
	require.Error(t, err)
	assert.True(t, IsReadError(err))
	assert.ErrorIs(t, err, errDisk)
	assert.Contains(t, err.Error(), "Unable to read source data file flaky.csv")
}

func TestParse_Empty(t *testing.T) {
	ds, err := Parse(bytes.NewReader(nil), "empty.csv")
	require.NoError(t, err)
	assert.Empty(t, ds)
}

func TestLoad_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, csvLines(dataRow("Chad", "50", "10", "200")), 0644))

	ds, err := Load(FileSource(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"Chad"}, ds.Countries())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(FileSource("INCORRECT_FILENAME"))
	require.Error(t, err)
	assert.True(t, IsDataAccessError(err))
	assert.Equal(t, ErrCodeDataAccess, CodeOf(err))
	assert.Equal(t, "File INCORRECT_FILENAME not found", err.Error())
}

func TestLoad_MissingResource(t *testing.T) {
	fsys := fstest.MapFS{"present.csv": &fstest.MapFile{Data: csvLines(dataRow("Chad", "1", "2", "3"))}}

	_, err := Load(FSSource(fsys, "absent.csv"))
	require.Error(t, err)
	assert.True(t, IsDataAccessError(err))
	assert.Contains(t, err.Error(), "absent.csv")

	ds, err := Load(FSSource(fsys, "present.csv"))
	require.NoError(t, err)
	assert.Len(t, ds, 1)
}

func TestLoad_ClosesOnEveryPath(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		src := &trackingSource{data: csvLines(dataRow("USA", "1", "2", "3"))}
		_, err := Load(src)
		require.NoError(t, err)
		assert.Equal(t, 1, src.closed)
	})

	t.Run("malformed row", func(t *testing.T) {
		src := &trackingSource{data: csvLines("1,USA")}
		_, err := Load(src)
		require.Error(t, err)
		assert.Equal(t, 1, src.closed)
	})

	t.Run("close error", func(t *testing.T) {
		src := &trackingSource{data: csvLines(dataRow("USA", "1", "2", "3")), closeErr: errDisk}
		ds, err := Load(src)
		require.Error(t, err)
		assert.Nil(t, ds)
		assert.True(t, IsReadError(err))
		assert.ErrorIs(t, err, errDisk)
		assert.Equal(t, 1, src.closed)
	})
}

func TestCodeOf_ForeignError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(errDisk))
	assert.Equal(t, ErrCodeEmptyDataset, CodeOf(&EmptyDatasetError{Source: "x"}))
}

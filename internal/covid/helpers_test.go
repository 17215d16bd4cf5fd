package covid

import (
	"errors"
	"io"
	"strings"
)

// dataRow renders an 11-field row in the fixed layout, quoting every field.
func dataRow(country, deaths, active, tests string) string {
	fields := make([]string, MinFields)
	fields[ColMarker] = "1"
	fields[ColCountry] = country
	fields[ColTotalDeaths] = deaths
	fields[ColActiveCases] = active
	fields[ColTotalTests] = tests
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(fields, ",")
}

func csvLines(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// trackingSource records how often its reader was closed.
type trackingSource struct {
	data     []byte
	closeErr error
	closed   int
}

func (s *trackingSource) Name() string { return "tracking.csv" }

func (s *trackingSource) Open() (io.ReadCloser, error) {
	return &trackingReader{Reader: strings.NewReader(string(s.data)), src: s}, nil
}

type trackingReader struct {
	io.Reader
	src *trackingSource
}

func (r *trackingReader) Close() error {
	r.src.closed++
	return r.src.closeErr
}

// failingReader returns its error after the first read.
type failingReader struct {
	data []byte
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}

var errDisk = errors.New("disk on fire")

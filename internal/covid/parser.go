package covid

import (
	"encoding/csv"
	"errors"
	"io"

	"golang.org/x/text/encoding/unicode"
)

// Load opens src, parses it and closes it again on every path.
//
// Open failures are reported as *DataAccessError. Faults raised while reading
// or tokenizing are reported as *ReadError, and rows shorter than MinFields as
// *MalformedRowError.
func Load(src Source) (Dataset, error) {
	ds, _, err := load(src)
	return ds, err
}

func load(src Source) (ds Dataset, skipped int, err error) {
	rc, err := src.Open()
	if err != nil {
		return nil, 0, &DataAccessError{Source: src.Name(), Err: err}
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			ds, skipped, err = nil, 0, &ReadError{Source: src.Name(), Err: closeErr}
		}
	}()

	return parse(rc, src.Name())
}

// Parse reads CSV rows from r and converts them into a Dataset.
// name identifies the input in error messages.
//
// Rows whose first field is CommentMarker are skipped. A leading UTF-8 byte
// order mark is ignored.
func Parse(r io.Reader, name string) (Dataset, error) {
	ds, _, err := parse(r, name)
	return ds, err
}

func parse(r io.Reader, name string) (Dataset, int, error) {
	reader := csv.NewReader(unicode.UTF8BOM.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	ds := Dataset{}
	skipped := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, &ReadError{Source: name, Err: err}
		}

		if fields[ColMarker] == CommentMarker {
			skipped++
			continue
		}
		if len(fields) < MinFields {
			line, _ := reader.FieldPos(0)
			return nil, 0, &MalformedRowError{Source: name, Line: line, Fields: len(fields)}
		}
		ds = append(ds, recordFromFields(fields))
	}

	return ds, skipped, nil
}

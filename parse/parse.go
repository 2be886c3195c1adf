package parse

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/spkg/bom"
)

// Reads a raw table from CSV. Each record is a table row and each
// field a cell. A cell holding several text fragments (e.g. a time
// followed by notes) has them on separate lines within the field.
func ReadRawTable(data io.Reader) (RawTable, error) {
	// LazyCSVReader required (at least) to survive sloppy use of
	// quotes. The BOM reader strips unicode BOMs if present.
	reader := gocsv.LazyCSVReader(bom.NewReader(data))

	// Rows of scraped tables are frequently short.
	if r, ok := reader.(*csv.Reader); ok {
		r.FieldsPerRecord = -1
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}

	raw := make(RawTable, 0, len(records))
	for _, record := range records {
		row := make([][]string, 0, len(record))
		for _, field := range record {
			cell := []string{}
			for _, line := range strings.Split(field, "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					cell = append(cell, line)
				}
			}
			row = append(row, cell)
		}
		raw = append(raw, row)
	}

	return raw, nil
}

// Reads a raw table from CSV and parses it into per train data.
func Parse(p Profile, data io.Reader) (*Table, error) {
	raw, err := ReadRawTable(data)
	if err != nil {
		return nil, errors.Wrap(err, "reading raw table")
	}

	table, err := ParseTable(p, raw)
	if err != nil {
		return nil, errors.Wrap(err, "parsing table")
	}

	return table, nil
}

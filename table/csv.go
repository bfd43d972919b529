package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV loads a delimited text file into a Table. The first row is read
// as column headers and subsequent rows as data. Cells that parse as
// numbers become numeric values; everything else stays textual, with
// empty and NA-style cells marked missing. Columns named in dateColumns
// are reparsed as calendar timestamps after loading.
func LoadCSV(path string, dateColumns ...string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, dateColumns...)
}

// LoadCSVFromReader loads delimited text from an io.Reader.
func LoadCSVFromReader(r io.Reader, dateColumns ...string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(strings.Trim(h, "\""))
	}

	t := New(names)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cells := make([]Value, len(record))
		for i, raw := range record {
			cells[i] = inferValue(raw)
		}
		t.AppendRow(cells)
	}

	if len(dateColumns) > 0 {
		t.ParseDates(dateColumns...)
	}
	return t, nil
}

// inferValue applies standard delimited-text typing to one raw cell.
func inferValue(raw string) Value {
	s := strings.TrimSpace(strings.Trim(raw, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return Value{}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return String(s)
}

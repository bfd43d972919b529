package table

import (
	"errors"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// LoadExcel loads one sheet of an Excel workbook into a Table, with the
// same header and typing rules as LoadCSV. An empty sheet name selects the
// workbook's first sheet.
func LoadExcel(path, sheet string, dateColumns ...string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	t := New(rows[0])
	for _, row := range rows[1:] {
		cells := make([]Value, len(row))
		for i, raw := range row {
			cells[i] = inferValue(raw)
		}
		t.AppendRow(cells)
	}

	if len(dateColumns) > 0 {
		t.ParseDates(dateColumns...)
	}
	return t, nil
}

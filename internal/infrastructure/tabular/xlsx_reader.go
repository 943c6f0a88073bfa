package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXReader parses Excel workbooks into rows keyed by normalized header
type XLSXReader struct{}

// NewXLSXReader creates a new XLSXReader
func NewXLSXReader() *XLSXReader {
	return &XLSXReader{}
}

// Read parses the given sheet of the workbook. An empty sheet name
// selects the first sheet. The first row is the header; the first data
// row is numbered 2.
func (r *XLSXReader) Read(src io.Reader, sheet string) ([]Row, error) {
	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheet = wb.GetSheetName(0)
		if sheet == "" {
			return nil, ErrEmptyFile
		}
	} else if idx, err := wb.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	records, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = normalizeHeader(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		row := buildRow(i+2, headers, record)
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

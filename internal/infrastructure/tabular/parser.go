package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Options controls how a file is parsed
type Options struct {
	// Sheet selects a worksheet for Excel files; empty means first sheet
	Sheet string
}

// Parse dispatches on the file extension and returns parsed data rows.
// Supported formats are .csv, .xlsx and .xls.
func Parse(src io.Reader, filename string, opts Options) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv":
		return NewCSVReader().Read(src)
	case ".xlsx", ".xls":
		return NewXLSXReader().Read(src, opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %q (expected .csv, .xlsx or .xls)", ErrUnsupportedFormat, ext)
	}
}

package importapp

import "github.com/shoply/backend/internal/infrastructure/tabular"

// Options controls a product import run
type Options struct {
	// Sheet selects a worksheet for Excel files; empty means first sheet
	Sheet string
	// DryRun validates and resolves every row without writing anything
	DryRun bool
	// Verbose logs a line per processed row
	Verbose bool
}

// Stats summarizes an import run. Rows with errors are counted and
// reported but never stop the run; every clean row before and after a
// bad one is persisted.
type Stats struct {
	Processed     int                 `json:"processed"`
	Created       int                 `json:"created"`
	Updated       int                 `json:"updated"`
	Skipped       int                 `json:"skipped"`
	StoresCreated int                 `json:"stores_created"`
	Errors        []tabular.RowError  `json:"errors,omitempty"`
	TotalErrors   int                 `json:"total_errors"`
	IsTruncated   bool                `json:"is_truncated,omitempty"`
}

// HasErrors reports whether any row failed
func (s *Stats) HasErrors() bool {
	return s.TotalErrors > 0
}

package tabular

import "strings"

// Row represents a parsed data row with its source row number.
// Row numbering accounts for the header: the first data row is row 2.
type Row struct {
	Number int
	Data   map[string]string
}

// Get returns the value for a column by normalized header name
func (r *Row) Get(header string) string {
	return r.Data[header]
}

// GetOrDefault returns the value for a column, or the default when absent
// or empty
func (r *Row) GetOrDefault(header, defaultVal string) string {
	if val, ok := r.Data[header]; ok && val != "" {
		return val
	}
	return defaultVal
}

// Has reports whether the column is present and non-empty
func (r *Row) Has(header string) bool {
	return r.Data[header] != ""
}

// IsEmpty returns true if the row has no non-empty values
func (r *Row) IsEmpty() bool {
	for _, v := range r.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// normalizeHeader lowercases a header and strips surrounding whitespace
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// buildRow maps a record onto the normalized headers, trimming values.
// Records shorter than the header list yield empty strings for the
// missing trailing columns.
func buildRow(number int, headers []string, record []string) Row {
	data := make(map[string]string, len(headers))
	for i, header := range headers {
		if header == "" {
			continue
		}
		if i < len(record) {
			data[header] = strings.TrimSpace(record[i])
		} else {
			data[header] = ""
		}
	}
	return Row{Number: number, Data: data}
}

package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// candidate delimiters probed on the header line
var csvDelimiters = []rune{',', ';', '\t', '|'}

// CSVReader parses delimiter-separated files into rows keyed by
// normalized header. Encoding and delimiter are detected from content,
// so exports from different office suites parse without flags.
type CSVReader struct{}

// NewCSVReader creates a new CSVReader
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read parses the full input and returns data rows. The first line is
// the header; the first data row is numbered 2.
func (r *CSVReader) Read(src io.Reader) ([]Row, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyFile
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrMissingHeader
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

// decodeText returns the input as UTF-8, stripping any BOM. Non-UTF-8
// input is tried as Windows-1251 and then Latin-1.
func decodeText(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	for _, cm := range []*charmap.Charmap{charmap.Windows1251, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err == nil && utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}
	return "", ErrEncoding
}

// detectDelimiter counts candidate delimiters on the header line outside
// quoted sections and picks the most frequent one, defaulting to comma.
func detectDelimiter(text string) rune {
	line := text
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		line = text[:idx]
	}

	best := ','
	bestCount := 0
	for _, d := range csvDelimiters {
		count := 0
		inQuotes := false
		for _, ch := range line {
			switch {
			case ch == '"':
				inQuotes = !inQuotes
			case ch == d && !inQuotes:
				count++
			}
		}
		if count > bestCount {
			best = d
			bestCount = count
		}
	}
	return best
}

package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// sniffSampleSize bounds how much of the file the delimiter sniffer looks at.
const sniffSampleSize = 1024

var candidateDelimiters = []rune{',', ';', '\t', '|'}

var errNoDelimiter = errors.New("could not detect delimiter")

// DetectDelimiter inspects a sample of the decoded file and infers the field
// delimiter: a candidate must appear in the first line and occur the same
// number of times on every sampled line. Callers fall back to comma on error.
func DetectDelimiter(data string) (rune, error) {
	if len(data) > sniffSampleSize {
		data = data[:sniffSampleSize]
	}

	var lines []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if len(lines) == 10 {
			break
		}
	}
	// The last sampled line may be cut mid-row; ignore it when possible
	if len(lines) > 1 && !strings.HasSuffix(data, "\n") {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return 0, errNoDelimiter
	}

	best := rune(0)
	bestCount := 0
	for _, delim := range candidateDelimiters {
		count := strings.Count(lines[0], string(delim))
		if count == 0 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if strings.Count(line, string(delim)) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = delim
			bestCount = count
		}
	}
	if best == 0 {
		return 0, errNoDelimiter
	}
	return best, nil
}

// RowReader yields CSV records while preserving physical line numbering:
// encoding/csv silently skips fully blank lines, which would shift every
// later row's number in diagnostics, so blank lines are detected against the
// raw text and come back as empty records instead.
type RowReader struct {
	inner   *csv.Reader
	data    string
	offset  int64
	pending int
	held    []string
}

// NewRowReader builds a row reader over decoded text. Ragged rows are
// tolerated; the extractor pads or clips them per field.
func NewRowReader(data string, delimiter rune) *RowReader {
	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &RowReader{inner: reader, data: data}
}

// Read returns the next record. A blank physical line yields an empty record
// rather than being skipped.
func (r *RowReader) Read() ([]string, error) {
	if r.pending > 0 {
		r.pending--
		return []string{}, nil
	}
	if r.held != nil {
		row := r.held
		r.held = nil
		return row, nil
	}

	row, err := r.inner.Read()
	if errors.Is(err, io.EOF) {
		blanks := countBlankLines(r.data[r.offset:])
		r.offset = int64(len(r.data))
		if blanks > 0 {
			r.pending = blanks - 1
			return []string{}, nil
		}
		return nil, io.EOF
	}
	if err != nil {
		r.offset = r.inner.InputOffset()
		return row, err
	}

	// Anything consumed before this record beyond the previous offset can
	// only be blank lines the csv reader swallowed
	consumed := r.inner.InputOffset()
	blanks := countBlankLines(r.data[r.offset:consumed])
	r.offset = consumed
	if blanks > 0 {
		r.held = row
		r.pending = blanks - 1
		return []string{}, nil
	}
	return row, nil
}

// countBlankLines counts the blank physical lines at the start of chunk,
// stopping at the first line with any content.
func countBlankLines(chunk string) int {
	count := 0
	for {
		line, rest, found := strings.Cut(chunk, "\n")
		if strings.TrimSuffix(line, "\r") != "" || !found {
			return count
		}
		count++
		chunk = rest
	}
}

// MapColumns maps each expected field to a header column index. No reliable
// name-based mapping exists for these feeds, so the contract is positional:
// expected field i reads header column i, clipped to the header width.
func MapColumns(header []string, expectedColumns []string) map[string]int {
	mapping := make(map[string]int)
	for i, expected := range expectedColumns {
		if i >= len(header) {
			break
		}
		mapping[expected] = i
	}
	return mapping
}

// ExtractRow pulls the expected fields out of a data row using the column
// mapping. Cells beyond the row's length come back as empty strings and every
// value is trimmed.
func ExtractRow(row []string, mapping map[string]int, expectedColumns []string) map[string]string {
	data := make(map[string]string, len(expectedColumns))
	for field, colIndex := range mapping {
		if colIndex < len(row) {
			data[field] = strings.TrimSpace(row[colIndex])
		} else {
			data[field] = ""
		}
	}
	for _, field := range expectedColumns {
		if _, ok := data[field]; !ok {
			data[field] = ""
		}
	}
	return data
}

// IsEmptyRow reports whether a row has no non-blank cells.
func IsEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

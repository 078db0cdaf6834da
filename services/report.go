package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	ModeAppend  = "APPEND"
	ModeReplace = "REPLACE"
)

// ImportReport accumulates everything one import run wants to say: counters,
// the capped error-detail list handed back to the caller, and the full
// per-row transcript that only ever lands in the log artifact.
type ImportReport struct {
	Entity          string
	Encoding        string
	Delimiter       rune
	Header          []string
	ExpectedColumns []string
	ColumnMapping   map[string]int
	Mode            string
	DeletedCount    int64

	TotalRows    int
	SuccessCount int
	ErrorCount   int

	details      []string
	transcript   []string
	extraSummary []string
}

func NewImportReport(entity, encoding string) *ImportReport {
	return &ImportReport{
		Entity:    entity,
		Encoding:  encoding,
		Delimiter: ',',
		Mode:      ModeAppend,
	}
}

// Transcript appends one line to the per-row log transcript.
func (r *ImportReport) Transcript(format string, args ...interface{}) {
	r.transcript = append(r.transcript, fmt.Sprintf(format, args...))
}

// Detail records a caller-visible error message (already row-prefixed).
func (r *ImportReport) Detail(message string) {
	r.details = append(r.details, message)
}

// Details returns at most limit error details; the full list stays in the log.
func (r *ImportReport) Details(limit int) []string {
	if len(r.details) <= limit {
		return r.details
	}
	return r.details[:limit]
}

// AddSummaryLine appends an entity-specific aggregate to the summary block.
func (r *ImportReport) AddSummaryLine(format string, args ...interface{}) {
	r.extraSummary = append(r.extraSummary, fmt.Sprintf(format, args...))
}

func (r *ImportReport) successRate() float64 {
	total := r.TotalRows
	if total < 1 {
		total = 1
	}
	return float64(r.SuccessCount) / float64(total) * 100
}

func (r *ImportReport) render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s Import Error Log - %s\n", r.Entity, time.Now().Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("=", 80) + "\n\n")
	fmt.Fprintf(&b, "Encoding: %s\n", r.Encoding)
	fmt.Fprintf(&b, "Delimiter: %s\n", strconv.QuoteRune(r.Delimiter))
	if r.Mode == ModeReplace {
		fmt.Fprintf(&b, "Import Mode: REPLACE (deleted %d existing records)\n", r.DeletedCount)
	} else {
		b.WriteString("Import Mode: APPEND\n")
	}
	fmt.Fprintf(&b, "Header: %v\n", r.Header)
	fmt.Fprintf(&b, "Column Mapping: %s\n", r.mappingString())
	b.WriteString(strings.Repeat("-", 80) + "\n\n")

	b.WriteString("IMPORT SUMMARY\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "Total rows processed: %d\n", r.TotalRows)
	fmt.Fprintf(&b, "Successful: %d\n", r.SuccessCount)
	fmt.Fprintf(&b, "Failed: %d\n", r.ErrorCount)
	fmt.Fprintf(&b, "Success rate: %.1f%%\n", r.successRate())
	b.WriteString("Duplicates handled: Update existing\n")
	for _, line := range r.extraSummary {
		b.WriteString(line + "\n")
	}
	b.WriteString(strings.Repeat("-", 80) + "\n\n")

	if len(r.details) > 0 {
		b.WriteString("ERROR DETAILS\n")
		for _, detail := range r.details {
			b.WriteString(detail + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("ROW TRANSCRIPT\n")
	for _, line := range r.transcript {
		b.WriteString(line + "\n")
	}

	return b.String()
}

func (r *ImportReport) mappingString() string {
	parts := make([]string, 0, len(r.ColumnMapping))
	for _, field := range r.ExpectedColumns {
		if idx, ok := r.ColumnMapping[field]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", field, idx))
		}
	}
	return strings.Join(parts, ", ")
}

// WriteFile writes the finished log artifact. The content is staged in a
// temp file and renamed so readers never see a half-written log.
func (r *ImportReport) WriteFile(path string) error {
	return writeLogAtomic(path, r.render())
}

// WriteFatalLog leaves a minimal log when an import dies outside the per-row
// loop.
func WriteFatalLog(path, message string, extra ...string) {
	content := message + "\n"
	for _, line := range extra {
		content += line + "\n"
	}
	// Best effort, the fatal error itself is already being reported
	_ = writeLogAtomic(path, content)
}

func writeLogAtomic(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".import-log-*")
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write log file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close log file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize log file: %w", err)
	}
	return nil
}

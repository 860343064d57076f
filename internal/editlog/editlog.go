package editlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Entry is one applied edit.
type Entry struct {
	Timestamp time.Time
	Session   string
	Action    string
	Section   string
	RowID     string
	Month     string
	Details   string
}

// Header is the CSV header for edit-log.csv.
const Header = "timestamp,session,action,section,row_id,month,details"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/edit-log.csv"
	colTimestamp = 0
	colSession   = 1
	colAction    = 2
	colSection   = 3
	colRowID     = 4
	colMonth     = 5
	colDetails   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSession] = e.Session
	row[colAction] = e.Action
	row[colSection] = e.Section
	row[colRowID] = e.RowID
	row[colMonth] = e.Month
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		Timestamp: ts,
		Session:   record[colSession],
		Action:    record[colAction],
		Section:   record[colSection],
		RowID:     record[colRowID],
		Month:     record[colMonth],
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to <dir>/logs/edit-log.csv, creating the file and header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Join(dir, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening edit log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <dir>/logs/edit-log.csv.
// Returns an empty slice if the file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening edit log: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries reads entries from a CSV stream that starts with a header.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading edit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries as CSV with a header, in the edit-log.csv layout.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filter selects entries. Empty fields match anything.
type Filter struct {
	Session string
	Action  string
	Section string
	RowID   string
	Month   string
	Since   time.Time // inclusive; zero means no lower bound
}

// Match reports whether e passes f.
func (f Filter) Match(e Entry) bool {
	switch {
	case f.Session != "" && e.Session != f.Session,
		f.Action != "" && e.Action != f.Action,
		f.Section != "" && e.Section != f.Section,
		f.RowID != "" && e.RowID != f.RowID,
		f.Month != "" && !strings.EqualFold(e.Month, f.Month),
		!f.Since.IsZero() && e.Timestamp.Before(f.Since):
		return false
	}
	return true
}

// Select returns the entries matching f, in their original order.
func Select(entries []Entry, f Filter) []Entry {
	var out []Entry
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Sessions returns the distinct session IDs in entries, in order of first use.
func Sessions(entries []Entry) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range entries {
		if !seen[e.Session] {
			seen[e.Session] = true
			out = append(out, e.Session)
		}
	}
	return out
}

package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatRowID returns a row ID like "cogs-3".
func FormatRowID(prefix string, seq int) string {
	return fmt.Sprintf("%s-%d", prefix, seq)
}

// ParseRowID parses "cogs-3" into its prefix and sequence number.
func ParseRowID(rowID string) (prefix string, seq int, err error) {
	i := strings.LastIndexByte(rowID, '-')
	if i <= 0 || i == len(rowID)-1 {
		return "", 0, fmt.Errorf("invalid row ID format: %q", rowID)
	}

	seq, err = strconv.Atoi(rowID[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in row ID %q: %w", rowID, err)
	}
	if seq < 1 {
		return "", 0, fmt.Errorf("invalid sequence in row ID %q: must be positive", rowID)
	}
	return rowID[:i], seq, nil
}

// NextRowID returns the next free ID for prefix given the IDs already in use.
// IDs with another prefix or an unparsable shape are ignored.
func NextRowID(prefix string, existing []string) string {
	maxSeq := 0
	for _, e := range existing {
		p, seq, err := ParseRowID(e)
		if err != nil || p != prefix {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return FormatRowID(prefix, maxSeq+1)
}

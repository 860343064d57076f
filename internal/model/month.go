package model

import (
	"fmt"
	"strings"
)

// Month indexes the twelve calendar months of the grid. Jan is 0.
type Month int

const (
	Jan Month = iota
	Feb
	Mar
	Apr
	May
	Jun
	Jul
	Aug
	Sep
	Oct
	Nov
	Dec
)

// NumMonths is the number of months every row carries.
const NumMonths = 12

var monthKeys = [NumMonths]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

var monthLabels = [NumMonths]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Months lists every month in calendar order.
func Months() []Month {
	ms := make([]Month, NumMonths)
	for i := range ms {
		ms[i] = Month(i)
	}
	return ms
}

// Key returns the lowercase month key ("jan".."dec").
func (m Month) Key() string {
	if !m.Valid() {
		return fmt.Sprintf("month(%d)", int(m))
	}
	return monthKeys[m]
}

// Label returns the display label ("Jan".."Dec").
func (m Month) Label() string {
	if !m.Valid() {
		return m.Key()
	}
	return monthLabels[m]
}

func (m Month) String() string { return m.Key() }

// Valid reports whether m is one of the twelve months.
func (m Month) Valid() bool {
	return m >= Jan && m <= Dec
}

// ParseMonth parses a month key, case-insensitively.
func ParseMonth(s string) (Month, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, k := range monthKeys {
		if k == key {
			return Month(i), nil
		}
	}
	return 0, fmt.Errorf("invalid month %q", s)
}

// Package calendar provides weekday arithmetic, time-of-day values and
// locale-aware repetition descriptions for weekday-recurring schedules.
package calendar

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekday is a day of the week numbered the way the host calendar numbers
// them: Sunday is 1 and Saturday is 7.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WeekdayOf returns the weekday of a date. Any date maps to exactly one
// weekday.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// IsValid reports whether d is one of the seven weekday values.
func (d Weekday) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

// DayNames provides locale day-name tables, indexed with Sunday first.
// locales.Translator from github.com/go-playground/locales satisfies it.
type DayNames interface {
	WeekdaysWide() []string
	WeekdaysAbbreviated() []string
	WeekdaysNarrow() []string
}

// FullName returns the locale full name of the weekday, e.g. "Wednesday".
func (d Weekday) FullName(names DayNames) string {
	return dayName(names.WeekdaysWide(), d)
}

// ShortName returns the locale abbreviated name, e.g. "Wed".
func (d Weekday) ShortName(names DayNames) string {
	return dayName(names.WeekdaysAbbreviated(), d)
}

// NarrowName returns the locale minimal (1-2 letter) name, e.g. "W".
func (d Weekday) NarrowName(names DayNames) string {
	return dayName(names.WeekdaysNarrow(), d)
}

func dayName(table []string, d Weekday) string {
	if !d.IsValid() || len(table) < int(Saturday) {
		return ""
	}
	return table[int(d)-1]
}

// WeekdaySet is a set of weekdays a routine recurs on. The empty set means
// "never scheduled".
type WeekdaySet []Weekday

// NewWeekdaySet builds a normalized set from the given days.
func NewWeekdaySet(days ...Weekday) WeekdaySet {
	return WeekdaySet(days).Normalize()
}

// EveryDay returns the set of all seven weekdays.
func EveryDay() WeekdaySet {
	return WeekdaySet{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Normalize returns the set sorted by calendar weekday number with
// duplicates and invalid values removed.
func (s WeekdaySet) Normalize() WeekdaySet {
	seen := make(map[Weekday]struct{}, len(s))
	normalized := make(WeekdaySet, 0, len(s))
	for _, d := range s {
		if !d.IsValid() {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		normalized = append(normalized, d)
	}
	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i] < normalized[j]
	})
	return normalized
}

// Contains reports whether the set includes the given weekday.
func (s WeekdaySet) Contains(d Weekday) bool {
	for _, day := range s {
		if day == d {
			return true
		}
	}
	return false
}

// Equal reports whether two sets contain the same weekdays, regardless of
// order or duplicates.
func (s WeekdaySet) Equal(other WeekdaySet) bool {
	a, b := s.Normalize(), other.Normalize()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer, storing the set as a comma-separated list
// of weekday numbers in calendar order.
func (s WeekdaySet) Value() (driver.Value, error) {
	normalized := s.Normalize()
	parts := make([]string, 0, len(normalized))
	for _, d := range normalized {
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ","), nil
}

// Scan implements sql.Scanner for the comma-separated representation.
func (s *WeekdaySet) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into WeekdaySet", src)
	}
	if raw == "" {
		*s = WeekdaySet{}
		return nil
	}

	parts := strings.Split(raw, ",")
	days := make(WeekdaySet, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid weekday %q: %w", part, err)
		}
		days = append(days, Weekday(n))
	}
	*s = days.Normalize()
	return nil
}

// StartOfDay returns midnight of the calendar day containing t, in t's
// location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

package calendar

import (
	"strings"
)

// Repetition descriptions for the special-cased sets. These are the fixed
// labels of the original application; day names themselves always come from
// the injected locale tables.
const (
	DescriptionNoRepetition = "No Repetition"
	DescriptionEveryDay     = "Every Day"
	DescriptionWeekdays     = "Weekdays"
	DescriptionWeekends     = "Weekends"
)

var (
	workWeek = WeekdaySet{Monday, Tuesday, Wednesday, Thursday, Friday}
	weekend  = WeekdaySet{Sunday, Saturday}
)

// Describe renders a weekday set as a human-readable repetition phrase.
// The checks are ordered and the first match wins: empty set, all seven
// days, the Monday-Friday work week, the Saturday-Sunday weekend, then the
// general listing. A single day uses its full name; two or more days use
// abbreviated names joined with an Oxford comma before the final "and".
func Describe(days WeekdaySet, names DayNames) string {
	sorted := days.Normalize()

	switch {
	case len(sorted) == 0:
		return DescriptionNoRepetition
	case len(sorted) == int(Saturday):
		return DescriptionEveryDay
	case sorted.Equal(workWeek):
		return DescriptionWeekdays
	case sorted.Equal(weekend):
		return DescriptionWeekends
	}

	parts := make([]string, 0, len(sorted))
	for _, day := range sorted {
		if len(sorted) == 1 {
			parts = append(parts, day.FullName(names))
		} else {
			parts = append(parts, day.ShortName(names))
		}
	}

	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

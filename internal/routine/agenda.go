package routine

import (
	"sort"
	"time"
)

// Agenda returns the routines scheduled on the weekday of date, ordered by
// ascending start time of day. The sort is stable, so routines sharing a
// start time keep their input order. The result is recomputed on every call
// and never cached.
func Agenda(routines []Routine, date time.Time) []Routine {
	agenda := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if r.IsScheduled(date) {
			agenda = append(agenda, r)
		}
	}
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].StartTime.Before(agenda[j].StartTime)
	})
	return agenda
}

package user

import (
	"time"

	"github.com/rutinas-app/rutinas/internal/calendar"
	"github.com/rutinas-app/rutinas/internal/routine"
)

// ResetStreakIfLapsed applies the streak reset rule. It runs when the daily
// agenda view is activated, not on a background timer: the streak drops to
// zero when the last streak day is neither today nor yesterday, or when no
// streak day was ever recorded. Otherwise the streak is left unchanged.
// Calling it repeatedly with the same now is idempotent.
func ResetStreakIfLapsed(u *User, now time.Time) {
	if u.LastStreakDate == nil {
		u.CurrentStreak = 0
		return
	}

	todayStart := calendar.StartOfDay(now)
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	lastStart := calendar.StartOfDay(*u.LastStreakDate)

	if !lastStart.Equal(todayStart) && !lastStart.Equal(yesterdayStart) {
		u.CurrentStreak = 0
	}
}

// RecordCompletion applies the reward rules for finishing the final
// flashcard of a routine's playback. The streak increments at most once per
// calendar day no matter how many routines complete that day; the coin
// reward and the routine's completion timestamp always apply.
func RecordCompletion(u *User, r *routine.Routine, now time.Time) {
	if !u.IsStreakRenewedToday(now) {
		u.CurrentStreak++
		streakedAt := now
		u.LastStreakDate = &streakedAt
	}

	u.CoinBalance += r.CoinReward
	completedAt := now
	r.LastCompletionDate = &completedAt
}

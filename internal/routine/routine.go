// Package routine holds the routine and flashcard entities and the pure
// scheduling logic around them: schedule membership, repetition
// descriptions, flashcard ordering and the daily agenda.
package routine

import (
	"time"

	"github.com/google/uuid"

	"github.com/rutinas-app/rutinas/internal/calendar"
)

// DefaultCoinReward is granted by newly created routines, matching the
// original application's default.
const DefaultCoinReward = 25

// DefaultDurationMinutes is the initial duration of a new routine.
const DefaultDurationMinutes = 30

// Routine is a named, weekday-recurring sequence of flashcards with a
// scheduled time window and a coin reward.
type Routine struct {
	ID                 uuid.UUID           `yaml:"id" db:"id"`
	Title              string              `yaml:"title" db:"title"`
	Weekdays           calendar.WeekdaySet `yaml:"weekdays" db:"weekdays"`
	StartTime          calendar.TimeOfDay  `yaml:"start_time" db:"start_time"`
	DurationMinutes    int                 `yaml:"duration_minutes" db:"duration_minutes"`
	LastCompletionDate *time.Time          `yaml:"last_completion_date,omitempty" db:"last_completion_date"`
	CoverImageURL      string              `yaml:"cover_image_url,omitempty" db:"cover_image_url"`
	CoinReward         int                 `yaml:"coin_reward" db:"coin_reward"`
	Flashcards         []Flashcard         `yaml:"flashcards,omitempty" db:"-"`

	CreatedAt time.Time `yaml:"-" db:"created_at"`
	UpdatedAt time.Time `yaml:"-" db:"updated_at"`
}

// Flashcard is one ordered step (image + text) within a routine. Cards are
// owned by exactly one routine and deleted with it.
type Flashcard struct {
	ID        uuid.UUID `yaml:"id" db:"id"`
	RoutineID uuid.UUID `yaml:"-" db:"routine_id"`
	Index     int       `yaml:"index" db:"position"`
	Text      string    `yaml:"text" db:"text"`
	ImageURL  string    `yaml:"image_url" db:"image_url"`

	CreatedAt time.Time `yaml:"-" db:"created_at"`
	UpdatedAt time.Time `yaml:"-" db:"updated_at"`
}

// New creates a routine with the application defaults.
func New(title string) *Routine {
	return &Routine{
		ID:              uuid.New(),
		Title:           title,
		Weekdays:        calendar.WeekdaySet{},
		DurationMinutes: DefaultDurationMinutes,
		CoinReward:      DefaultCoinReward,
	}
}

// IsScheduled reports whether the routine recurs on the weekday of date.
func (r *Routine) IsScheduled(date time.Time) bool {
	return r.Weekdays.Contains(calendar.WeekdayOf(date))
}

// IsCompletedToday reports whether the last full playback completion falls
// on the same calendar day as now.
func (r *Routine) IsCompletedToday(now time.Time) bool {
	if r.LastCompletionDate == nil {
		return false
	}
	return calendar.SameDay(*r.LastCompletionDate, now)
}

// EndTime is the start time plus the routine duration. A duration that
// cannot be applied degrades to the start time unchanged.
func (r *Routine) EndTime() calendar.TimeOfDay {
	if r.DurationMinutes <= 0 {
		return r.StartTime
	}
	return r.StartTime.AddMinutes(r.DurationMinutes)
}

// RepetitionDescription renders the weekday set as a human-readable phrase
// using the injected locale day names.
func (r *Routine) RepetitionDescription(names calendar.DayNames) string {
	return calendar.Describe(r.Weekdays, names)
}

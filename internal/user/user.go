// Package user holds the per-installation user record and the streak and
// coin reward rules applied when routines are completed.
package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/rutinas-app/rutinas/internal/calendar"
)

// FontDesign is the stored display-style preference. It is cosmetic only;
// the presentation layer interprets it.
type FontDesign string

const (
	FontDefault    FontDesign = "default"
	FontRounded    FontDesign = "rounded"
	FontSerif      FontDesign = "serif"
	FontMonospaced FontDesign = "monospaced"
)

// FontDesigns lists the selectable preferences.
func FontDesigns() []FontDesign {
	return []FontDesign{FontDefault, FontRounded, FontSerif, FontMonospaced}
}

// User is the singleton per-installation record carrying the streak state
// and the coin balance. It is created once at first launch and never
// deleted.
type User struct {
	ID                  uuid.UUID  `yaml:"id" db:"id"`
	CurrentStreak       int        `yaml:"current_streak" db:"current_streak"`
	LastStreakDate      *time.Time `yaml:"last_streak_date,omitempty" db:"last_streak_date"`
	CoinBalance         int        `yaml:"coin_balance" db:"coin_balance"`
	PreferredFontDesign FontDesign `yaml:"preferred_font_design" db:"preferred_font_design"`

	CreatedAt time.Time `yaml:"-" db:"created_at"`
	UpdatedAt time.Time `yaml:"-" db:"updated_at"`
}

// New creates a fresh user record with a zero streak and balance.
func New() *User {
	return &User{
		ID:                  uuid.New(),
		PreferredFontDesign: FontDefault,
	}
}

// IsStreakRenewedToday reports whether the streak was already incremented
// on the calendar day of now.
func (u *User) IsStreakRenewedToday(now time.Time) bool {
	if u.LastStreakDate == nil {
		return false
	}
	return calendar.SameDay(*u.LastStreakDate, now)
}

// CanSpend reports whether the amount is a valid spend against the current
// balance: positive and not more than the balance.
func (u *User) CanSpend(amount int) bool {
	return amount > 0 && amount <= u.CoinBalance
}

// Spend deducts the amount from the balance. An invalid spend is silently
// refused; callers gate their affordances with CanSpend. The balance can
// never go negative.
func (u *User) Spend(amount int) {
	if !u.CanSpend(amount) {
		return
	}
	u.CoinBalance -= amount
}

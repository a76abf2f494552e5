package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/user/mock_repository.go -package=mock_user Repository

// Repository persists the singleton user record. Load creates the record on
// first use so callers always receive a user.
type Repository interface {
	Load(ctx context.Context) (*User, error)
	Save(ctx context.Context, u *User) error
}

// DBRepository implements Repository using MySQL. The users table holds at
// most one row per installation.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Load returns the stored user, inserting a fresh record when none exists.
func (repo *DBRepository) Load(ctx context.Context) (*User, error) {
	var u User
	err := repo.db.GetContext(ctx, &u, "SELECT * FROM users LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		u := New()
		if err := repo.insert(ctx, u); err != nil {
			return nil, err
		}
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(user) > %w", err)
	}
	return &u, nil
}

// Save upserts the stored user record.
func (repo *DBRepository) Save(ctx context.Context, u *User) error {
	return repo.insert(ctx, u)
}

func (repo *DBRepository) insert(ctx context.Context, u *User) error {
	if _, err := repo.db.ExecContext(ctx,
		`INSERT INTO users (id, current_streak, last_streak_date, coin_balance, preferred_font_design)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			current_streak = VALUES(current_streak),
			last_streak_date = VALUES(last_streak_date),
			coin_balance = VALUES(coin_balance),
			preferred_font_design = VALUES(preferred_font_design)`,
		u.ID.String(), u.CurrentStreak, u.LastStreakDate, u.CoinBalance, u.PreferredFontDesign); err != nil {
		return fmt.Errorf("db.ExecContext(upsert user) > %w", err)
	}
	return nil
}

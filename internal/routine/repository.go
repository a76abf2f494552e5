package routine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SortOrder selects how listed routines are ordered.
type SortOrder string

const (
	SortByTitle     SortOrder = "title"
	SortByStartTime SortOrder = "start_time"
)

//go:generate mockgen -source=repository.go -destination=../mocks/routine/mock_repository.go -package=mock_routine Repository

// Repository defines persistence operations for routines and their
// flashcards. Deleting a routine cascades to its flashcards.
type Repository interface {
	FindAll(ctx context.Context) ([]Routine, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Routine, error)
	FindByTitle(ctx context.Context, titleFilter string, order SortOrder) ([]Routine, error)
	Create(ctx context.Context, r *Routine) error
	Update(ctx context.Context, r *Routine) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all routines with their flashcards, ordered by title.
func (repo *DBRepository) FindAll(ctx context.Context) ([]Routine, error) {
	return repo.FindByTitle(ctx, "", SortByTitle)
}

// FindByID returns a routine by id, or nil if not found.
func (repo *DBRepository) FindByID(ctx context.Context, id uuid.UUID) (*Routine, error) {
	var r Routine
	err := repo.db.GetContext(ctx, &r, "SELECT * FROM routines WHERE id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(routine) > %w", err)
	}
	routines := []Routine{r}
	if err := repo.loadFlashcards(ctx, routines); err != nil {
		return nil, err
	}
	return &routines[0], nil
}

// FindByTitle returns routines whose title contains titleFilter (all
// routines when empty), sorted by the requested order.
func (repo *DBRepository) FindByTitle(ctx context.Context, titleFilter string, order SortOrder) ([]Routine, error) {
	orderBy := "title"
	if order == SortByStartTime {
		orderBy = "start_time"
	}

	var routines []Routine
	query := fmt.Sprintf("SELECT * FROM routines WHERE title LIKE ? ORDER BY %s", orderBy)
	pattern := "%" + titleFilter + "%"
	if err := repo.db.SelectContext(ctx, &routines, query, pattern); err != nil {
		return nil, fmt.Errorf("db.SelectContext(routines) > %w", err)
	}
	if err := repo.loadFlashcards(ctx, routines); err != nil {
		return nil, err
	}
	return routines, nil
}

func (repo *DBRepository) loadFlashcards(ctx context.Context, routines []Routine) error {
	if len(routines) == 0 {
		return nil
	}

	ids := make([]interface{}, 0, len(routines))
	placeholders := make([]string, 0, len(routines))
	byID := make(map[uuid.UUID]*Routine, len(routines))
	for i := range routines {
		ids = append(ids, routines[i].ID.String())
		placeholders = append(placeholders, "?")
		byID[routines[i].ID] = &routines[i]
	}

	var cards []Flashcard
	query := fmt.Sprintf(
		"SELECT * FROM flashcards WHERE routine_id IN (%s) ORDER BY position",
		strings.Join(placeholders, ", "))
	if err := repo.db.SelectContext(ctx, &cards, query, ids...); err != nil {
		return fmt.Errorf("db.SelectContext(flashcards) > %w", err)
	}

	for _, card := range cards {
		if r, ok := byID[card.RoutineID]; ok {
			r.Flashcards = append(r.Flashcards, card)
		}
	}
	return nil
}

// Create inserts a routine with its flashcards in a transaction.
func (repo *DBRepository) Create(ctx context.Context, r *Routine) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO routines (id, title, weekdays, start_time, duration_minutes, last_completion_date, cover_image_url, coin_reward)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), r.Title, r.Weekdays, r.StartTime, r.DurationMinutes,
		r.LastCompletionDate, r.CoverImageURL, r.CoinReward); err != nil {
		return fmt.Errorf("db.ExecContext(insert routine) > %w", err)
	}

	if err := insertFlashcards(ctx, tx, r); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// Update rewrites a routine and replaces its flashcard sequence in a
// transaction, which keeps the stored indices contiguous.
func (repo *DBRepository) Update(ctx context.Context, r *Routine) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE routines
		SET title = ?, weekdays = ?, start_time = ?, duration_minutes = ?, last_completion_date = ?, cover_image_url = ?, coin_reward = ?
		WHERE id = ?`,
		r.Title, r.Weekdays, r.StartTime, r.DurationMinutes,
		r.LastCompletionDate, r.CoverImageURL, r.CoinReward, r.ID.String()); err != nil {
		return fmt.Errorf("db.ExecContext(update routine) > %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM flashcards WHERE routine_id = ?", r.ID.String()); err != nil {
		return fmt.Errorf("db.ExecContext(delete flashcards) > %w", err)
	}
	if err := insertFlashcards(ctx, tx, r); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// Delete removes a routine and, through the cascade, its flashcards.
func (repo *DBRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM flashcards WHERE routine_id = ?", id.String()); err != nil {
		return fmt.Errorf("db.ExecContext(delete flashcards) > %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", id.String()); err != nil {
		return fmt.Errorf("db.ExecContext(delete routine) > %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func insertFlashcards(ctx context.Context, tx *sqlx.Tx, r *Routine) error {
	for _, card := range r.SortedFlashcards() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO flashcards (id, routine_id, position, text, image_url) VALUES (?, ?, ?, ?, ?)",
			card.ID.String(), r.ID.String(), card.Index, card.Text, card.ImageURL); err != nil {
			return fmt.Errorf("db.ExecContext(insert flashcard) > %w", err)
		}
	}
	return nil
}

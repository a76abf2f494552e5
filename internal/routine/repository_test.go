package routine

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutinas-app/rutinas/internal/calendar"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func routineColumns() []string {
	return []string{
		"id", "title", "weekdays", "start_time", "duration_minutes",
		"last_completion_date", "cover_image_url", "coin_reward",
		"created_at", "updated_at",
	}
}

func flashcardColumns() []string {
	return []string{"id", "routine_id", "position", "text", "image_url", "created_at", "updated_at"}
}

func TestDBRepository_FindByTitle(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewDBRepository(sqlxDB)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	morningID := uuid.New()
	bedtimeID := uuid.New()

	routineRows := sqlmock.NewRows(routineColumns()).
		AddRow(bedtimeID.String(), "Bedtime Routine", "1,2,3,4,5,6,7", "20:00:00", 90, nil, "", 25, now, now).
		AddRow(morningID.String(), "Morning Routine", "2,3,5,6", "07:00:00", 30, now, "https://api.arasaac.org/v1/pictograms/16711", 25, now, now)

	mock.ExpectQuery("SELECT \\* FROM routines WHERE title LIKE \\? ORDER BY title").
		WithArgs("%Routine%").
		WillReturnRows(routineRows)

	cardRows := sqlmock.NewRows(flashcardColumns()).
		AddRow(uuid.New().String(), morningID.String(), 0, "Wake up", "https://api.arasaac.org/v1/pictograms/6027", now, now).
		AddRow(uuid.New().String(), morningID.String(), 1, "Get dressed", "https://api.arasaac.org/v1/pictograms/6627", now, now)

	mock.ExpectQuery("SELECT \\* FROM flashcards WHERE routine_id IN \\(\\?, \\?\\) ORDER BY position").
		WithArgs(bedtimeID.String(), morningID.String()).
		WillReturnRows(cardRows)

	got, err := repo.FindByTitle(ctx, "Routine", SortByTitle)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Bedtime Routine", got[0].Title)
	assert.Equal(t, calendar.EveryDay(), got[0].Weekdays)
	assert.Equal(t, calendar.TimeOfDay{Hour: 20}, got[0].StartTime)
	assert.Empty(t, got[0].Flashcards)

	assert.Equal(t, "Morning Routine", got[1].Title)
	require.Len(t, got[1].Flashcards, 2)
	assert.Equal(t, "Wake up", got[1].Flashcards[0].Text)
	assert.Equal(t, morningID, got[1].Flashcards[0].RoutineID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_FindByID_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewDBRepository(sqlxDB)

	id := uuid.New()
	mock.ExpectQuery("SELECT \\* FROM routines WHERE id = \\?").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(routineColumns()))

	got, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDBRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewDBRepository(sqlxDB)

	r := New("Morning Routine")
	r.Weekdays = calendar.NewWeekdaySet(calendar.Monday)
	r.StartTime = calendar.TimeOfDay{Hour: 7}
	r.AppendFlashcard("Wake up", "https://api.arasaac.org/v1/pictograms/6027")
	r.AppendFlashcard("Get dressed", "https://api.arasaac.org/v1/pictograms/6627")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO routines").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO flashcards").
		WithArgs(r.Flashcards[0].ID.String(), r.ID.String(), 0, "Wake up", "https://api.arasaac.org/v1/pictograms/6027").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO flashcards").
		WithArgs(r.Flashcards[1].ID.String(), r.ID.String(), 1, "Get dressed", "https://api.arasaac.org/v1/pictograms/6627").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), r))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Delete_CascadesFlashcards(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewDBRepository(sqlxDB)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM flashcards WHERE routine_id = \\?").
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM routines WHERE id = \\?").
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

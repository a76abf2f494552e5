package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{
		"id", "current_streak", "last_streak_date", "coin_balance",
		"preferred_font_design", "created_at", "updated_at",
	}
}

func TestDBRepository_Load_Existing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))

	id := uuid.New()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	streaked := time.Date(2025, 6, 13, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM users LIMIT 1").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(id.String(), 4, streaked, 120, "rounded", created, created))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 4, got.CurrentStreak)
	assert.Equal(t, 120, got.CoinBalance)
	assert.Equal(t, FontRounded, got.PreferredFontDesign)
	require.NotNil(t, got.LastStreakDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Load_CreatesFirstUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))

	mock.ExpectQuery("SELECT \\* FROM users LIMIT 1").
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, got.CurrentStreak)
	assert.Equal(t, 0, got.CoinBalance)
	assert.Equal(t, FontDefault, got.PreferredFontDesign)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))

	u := New()
	u.CurrentStreak = 7
	u.CoinBalance = 300

	mock.ExpectExec("INSERT INTO users").
		WithArgs(u.ID.String(), 7, nil, 300, FontDefault).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Save(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestYAMLRepository_LoadCreatesAndRoundTrips(t *testing.T) {
	path := t.TempDir() + "/user.yml"
	repo, err := NewYAMLRepository(path)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, created.CurrentStreak)

	created.CurrentStreak = 9
	created.CoinBalance = 250
	streaked := time.Date(2025, 6, 13, 8, 0, 0, 0, time.UTC)
	created.LastStreakDate = &streaked
	created.PreferredFontDesign = FontMonospaced
	require.NoError(t, repo.Save(ctx, created))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, 9, loaded.CurrentStreak)
	assert.Equal(t, 250, loaded.CoinBalance)
	assert.Equal(t, FontMonospaced, loaded.PreferredFontDesign)
	require.NotNil(t, loaded.LastStreakDate)
	assert.True(t, loaded.LastStreakDate.Equal(streaked))
}

package routine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutinas-app/rutinas/internal/calendar"
)

func TestYAMLRepository_RoundTrip(t *testing.T) {
	repo, err := NewYAMLRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	r := New("Morning Routine")
	r.Weekdays = calendar.NewWeekdaySet(calendar.Monday, calendar.Wednesday, calendar.Friday)
	r.StartTime = calendar.TimeOfDay{Hour: 7, Minute: 30}
	completed := time.Date(2025, 6, 13, 7, 45, 0, 0, time.UTC)
	r.LastCompletionDate = &completed
	r.AppendFlashcard("Wake up", "https://api.arasaac.org/v1/pictograms/6027")
	r.AppendFlashcard("Get dressed", "https://api.arasaac.org/v1/pictograms/6627")

	require.NoError(t, repo.Create(ctx, r))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "Morning Routine", got.Title)
	assert.Equal(t, calendar.WeekdaySet{calendar.Monday, calendar.Wednesday, calendar.Friday}, got.Weekdays)
	assert.Equal(t, calendar.TimeOfDay{Hour: 7, Minute: 30}, got.StartTime)
	require.NotNil(t, got.LastCompletionDate)
	assert.True(t, got.LastCompletionDate.Equal(completed))
	require.Len(t, got.Flashcards, 2)
	assert.Equal(t, []int{0, 1}, []int{got.Flashcards[0].Index, got.Flashcards[1].Index})
	assert.Equal(t, r.ID, got.Flashcards[0].RoutineID, "ownership restored on read")
}

func TestYAMLRepository_FindByID_Missing(t *testing.T) {
	repo, err := NewYAMLRepository(t.TempDir())
	require.NoError(t, err)

	got, err := repo.FindByID(context.Background(), New("x").ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestYAMLRepository_FindByTitle(t *testing.T) {
	repo, err := NewYAMLRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, title := range []string{"Bedtime Routine", "Morning Routine", "Homework"} {
		require.NoError(t, repo.Create(ctx, New(title)))
	}

	matched, err := repo.FindByTitle(ctx, "routine", SortByTitle)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Bedtime Routine", matched[0].Title)
	assert.Equal(t, "Morning Routine", matched[1].Title)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestYAMLRepository_FindByTitle_SortByStartTime(t *testing.T) {
	repo, err := NewYAMLRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	late := New("Late")
	late.StartTime = calendar.TimeOfDay{Hour: 20}
	early := New("Early")
	early.StartTime = calendar.TimeOfDay{Hour: 7}
	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, early))

	got, err := repo.FindByTitle(ctx, "", SortByStartTime)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Early", got[0].Title)
}

func TestYAMLRepository_Delete(t *testing.T) {
	repo, err := NewYAMLRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	r := New("Morning Routine")
	r.AppendFlashcard("Wake up", "https://api.arasaac.org/v1/pictograms/6027")
	require.NoError(t, repo.Create(ctx, r))

	require.NoError(t, repo.Delete(ctx, r.ID))

	got, err := repo.FindByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "routine and its flashcards are gone")

	require.NoError(t, repo.Delete(ctx, r.ID), "deleting a missing routine is a no-op")
}

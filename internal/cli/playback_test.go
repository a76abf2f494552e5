package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutinas-app/rutinas/internal/calendar"
	"github.com/rutinas-app/rutinas/internal/routine"
	"github.com/rutinas-app/rutinas/internal/user"
)

// Monday
var testNow = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func newPlaybackFixture(t *testing.T, input string, cards ...string) (*PlaybackCLI, *bytes.Buffer, *routine.MemoryRepository, *user.MemoryRepository) {
	t.Helper()
	color.NoColor = true

	r := routine.New("Morning Routine")
	r.Weekdays = calendar.NewWeekdaySet(calendar.Monday)
	for _, text := range cards {
		r.AppendFlashcard(text, "")
	}

	routines := routine.NewMemoryRepository()
	require.NoError(t, routines.Create(context.Background(), r))
	users := user.NewMemoryRepository()

	playback := NewPlaybackCLI(r, routines, users)
	output := &bytes.Buffer{}
	playback.stdinReader = bufio.NewReader(strings.NewReader(input))
	playback.stdoutWriter = output
	playback.now = func() time.Time { return testNow }
	return playback, output, routines, users
}

func TestPlaybackCLI_Session(t *testing.T) {
	t.Run("finishing the last card completes the routine", func(t *testing.T) {
		playback, output, routines, users := newPlaybackFixture(t, "\n\n", "Wake up", "Brush teeth")

		require.NoError(t, playback.Session(context.Background()))
		assert.Contains(t, output.String(), "Step 1 of 2")
		assert.Contains(t, output.String(), "Wake up")

		err := playback.Session(context.Background())
		require.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "Step 2 of 2")
		assert.Contains(t, output.String(), "You earned 25 coins")
		assert.Contains(t, output.String(), "Streak: 1 days in a row")

		saved, err := routines.FindByID(context.Background(), playback.routine.ID)
		require.NoError(t, err)
		require.NotNil(t, saved.LastCompletionDate)
		assert.True(t, calendar.SameDay(*saved.LastCompletionDate, testNow))

		u, err := users.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, u.CurrentStreak)
		assert.Equal(t, 25, u.CoinBalance)
	})

	t.Run("quitting mid-playback does not complete", func(t *testing.T) {
		playback, output, routines, users := newPlaybackFixture(t, "\nq\n", "Wake up", "Brush teeth")

		require.NoError(t, playback.Session(context.Background()))
		err := playback.Session(context.Background())
		require.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "not completed")

		saved, err := routines.FindByID(context.Background(), playback.routine.ID)
		require.NoError(t, err)
		assert.Nil(t, saved.LastCompletionDate)

		u, err := users.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, u.CoinBalance)
	})

	t.Run("back moves to the previous card", func(t *testing.T) {
		playback, output, _, _ := newPlaybackFixture(t, "\nb\n", "Wake up", "Brush teeth")

		require.NoError(t, playback.Session(context.Background()))
		require.NoError(t, playback.Session(context.Background()))
		assert.Equal(t, 0, playback.position)
		assert.Contains(t, output.String(), "Step 2 of 2")
	})

	t.Run("back on the first card stays put", func(t *testing.T) {
		playback, _, _, _ := newPlaybackFixture(t, "b\n", "Wake up")

		require.NoError(t, playback.Session(context.Background()))
		assert.Equal(t, 0, playback.position)
	})

	t.Run("a routine without steps ends immediately", func(t *testing.T) {
		playback, output, _, users := newPlaybackFixture(t, "")

		err := playback.Session(context.Background())
		require.ErrorIs(t, err, errEnd)
		assert.Contains(t, output.String(), "no steps")

		u, err := users.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, u.CoinBalance)
	})

	t.Run("completing two routines the same day keeps the streak at one", func(t *testing.T) {
		first, _, _, users := newPlaybackFixture(t, "\n", "Wake up")
		err := first.Session(context.Background())
		require.ErrorIs(t, err, errEnd)

		lunch := routine.New("Lunch")
		lunch.AppendFlashcard("Eat", "")
		second := NewPlaybackCLI(lunch, routine.NewMemoryRepository(), users)
		second.stdinReader = bufio.NewReader(strings.NewReader("\n"))
		second.stdoutWriter = &bytes.Buffer{}
		second.now = func() time.Time { return testNow }
		require.NoError(t, second.routines.Create(context.Background(), second.routine))

		err = second.Session(context.Background())
		require.ErrorIs(t, err, errEnd)

		u, err := users.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, u.CurrentStreak)
		assert.Equal(t, 50, u.CoinBalance)
	})
}

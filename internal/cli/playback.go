package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/rutinas-app/rutinas/internal/routine"
	"github.com/rutinas-app/rutinas/internal/user"
)

// PlaybackCLI steps through the flashcards of one routine. Finishing the
// final card completes the routine: the coin reward is paid out and the
// streak advances if it has not already today.
type PlaybackCLI struct {
	*InteractiveCLI
	routine  *routine.Routine
	cards    []routine.Flashcard
	position int
	routines routine.Repository
	users    user.Repository
	now      func() time.Time
}

func NewPlaybackCLI(r *routine.Routine, routines routine.Repository, users user.Repository) *PlaybackCLI {
	return &PlaybackCLI{
		InteractiveCLI: newInteractiveCLI(),
		routine:        r,
		cards:          r.SortedFlashcards(),
		routines:       routines,
		users:          users,
		now:            time.Now,
	}
}

func (cli *PlaybackCLI) Session(ctx context.Context) error {
	if len(cli.cards) == 0 {
		cli.println("This routine has no steps yet.")
		return errEnd
	}

	card := cli.cards[cli.position]
	cli.printf("\nStep %d of %d\n", cli.position+1, len(cli.cards))
	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s\n", card.Text)
	if card.ImageURL != "" {
		_, _ = cli.italic.Fprintf(cli.stdoutWriter, "%s\n", card.ImageURL)
	}

	if cli.position == len(cli.cards)-1 {
		cli.printf("[enter] finish  [b] back  [q] quit: ")
	} else {
		cli.printf("[enter] next  [b] back  [q] quit: ")
	}
	input, err := cli.readLine()
	if err != nil {
		return err
	}

	switch input {
	case "q":
		cli.println("Playback stopped. The routine is not completed.")
		return errEnd
	case "b":
		if cli.position > 0 {
			cli.position--
		}
		return nil
	case "":
		if cli.position < len(cli.cards)-1 {
			cli.position++
			return nil
		}
		return cli.complete(ctx)
	default:
		return nil
	}
}

func (cli *PlaybackCLI) complete(ctx context.Context) error {
	u, err := cli.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("users.Load > %w", err)
	}

	now := cli.now()
	user.ResetStreakIfLapsed(u, now)
	streakBefore := u.CurrentStreak
	user.RecordCompletion(u, cli.routine, now)

	if err := cli.routines.Update(ctx, cli.routine); err != nil {
		return fmt.Errorf("routines.Update > %w", err)
	}
	if err := cli.users.Save(ctx, u); err != nil {
		return fmt.Errorf("users.Save > %w", err)
	}

	cli.println()
	_, _ = color.New(color.FgGreen).Fprintf(cli.stdoutWriter,
		"Routine %s completed! You earned %d coins.\n",
		cli.bold.Sprintf("%s", cli.routine.Title),
		cli.routine.CoinReward,
	)
	if u.CurrentStreak > streakBefore {
		cli.printf("Streak: %d days in a row.\n", u.CurrentStreak)
	}
	cli.printf("Coin balance: %d\n", u.CoinBalance)
	return errEnd
}

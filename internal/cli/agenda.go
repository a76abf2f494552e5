package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/rutinas-app/rutinas/internal/calendar"
	"github.com/rutinas-app/rutinas/internal/routine"
	"github.com/rutinas-app/rutinas/internal/user"
)

// AgendaCLI prints the routines scheduled for one day. Opening the agenda
// is the moment the streak reset rule runs.
type AgendaCLI struct {
	*InteractiveCLI
	routines routine.Repository
	users    user.Repository
	names    calendar.DayNames
	now      func() time.Time
}

func NewAgendaCLI(routines routine.Repository, users user.Repository, names calendar.DayNames) *AgendaCLI {
	return &AgendaCLI{
		InteractiveCLI: newInteractiveCLI(),
		routines:       routines,
		users:          users,
		names:          names,
		now:            time.Now,
	}
}

// Show prints the agenda for date and settles the user's streak.
func (cli *AgendaCLI) Show(ctx context.Context, date time.Time) error {
	u, err := cli.users.Load(ctx)
	if err != nil {
		return fmt.Errorf("users.Load > %w", err)
	}

	streakBefore := u.CurrentStreak
	user.ResetStreakIfLapsed(u, cli.now())
	if u.CurrentStreak != streakBefore {
		if err := cli.users.Save(ctx, u); err != nil {
			return fmt.Errorf("users.Save > %w", err)
		}
	}

	all, err := cli.routines.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("routines.FindAll > %w", err)
	}
	scheduled := routine.Agenda(all, date)

	_, _ = cli.bold.Fprintf(cli.stdoutWriter, "%s %s\n",
		calendar.WeekdayOf(date).FullName(cli.names),
		date.Format("2006-01-02"),
	)
	cli.printf("Streak: %d days, Coins: %d\n\n", u.CurrentStreak, u.CoinBalance)

	if len(scheduled) == 0 {
		cli.println("Nothing scheduled for this day.")
		return nil
	}

	now := cli.now()
	for _, r := range scheduled {
		line := fmt.Sprintf("%s - %s  %s (%s)",
			r.StartTime, r.EndTime(), r.Title, r.RepetitionDescription(cli.names))
		if r.IsCompletedToday(now) && calendar.SameDay(date, now) {
			_, _ = color.New(color.FgGreen).Fprintf(cli.stdoutWriter, "✓ %s\n", line)
		} else {
			cli.printf("  %s\n", line)
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rutinas-app/rutinas/internal/cli"
	"github.com/rutinas-app/rutinas/internal/routine"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play <routine title>",
		Short: "Step through a routine's picture cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = store.close()
			}()

			r, err := findRoutineByTitle(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Playing %s (%d steps)\n", r.Title, len(r.Flashcards))
			playback := cli.NewPlaybackCLI(r, store.routines, store.users)
			return playback.Run(context.Background(), playback)
		},
	}
}

func findRoutineByTitle(ctx context.Context, store *storage, title string) (*routine.Routine, error) {
	matches, err := store.routines.FindByTitle(ctx, title, routine.SortByTitle)
	if err != nil {
		return nil, fmt.Errorf("routines.FindByTitle > %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no routine matches %q", title)
	}
	if len(matches) > 1 {
		titles := make([]string, 0, len(matches))
		for _, m := range matches {
			titles = append(titles, m.Title)
		}
		return nil, fmt.Errorf("%q matches multiple routines: %v", title, titles)
	}
	return &matches[0], nil
}

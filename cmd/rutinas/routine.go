package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rutinas-app/rutinas/internal/calendar"
	"github.com/rutinas-app/rutinas/internal/cli"
	"github.com/rutinas-app/rutinas/internal/config"
	"github.com/rutinas-app/rutinas/internal/export"
	"github.com/rutinas-app/rutinas/internal/pdf"
	"github.com/rutinas-app/rutinas/internal/routine"
)

func newRoutineCommand() *cobra.Command {
	routineCommand := &cobra.Command{
		Use:   "routine",
		Short: "Manage routines and their picture steps",
	}

	routineCommand.AddCommand(
		newRoutineListCommand(),
		newRoutineShowCommand(),
		newRoutineCreateCommand(),
		newRoutineDeleteCommand(),
		newRoutineExportCommand(),
		newRoutineAddStepCommand(),
		newRoutineRemoveStepCommand(),
		newRoutineMoveStepCommand(),
	)
	return routineCommand
}

func newRoutineListCommand() *cobra.Command {
	var titleFilter string
	var sortBy string
	command := &cobra.Command{
		Use:   "list",
		Short: "List routines",
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

			order := routine.SortByStartTime
			if sortBy == "title" {
				order = routine.SortByTitle
			}
			routines, err := store.routines.FindByTitle(cmd.Context(), titleFilter, order)
			if err != nil {
				return fmt.Errorf("routines.FindByTitle > %w", err)
			}

			if len(routines) == 0 {
				fmt.Println("No routines found.")
				return nil
			}

			names := dayNames(cfg)
			bold := color.New(color.Bold)
			for _, r := range routines {
				_, _ = bold.Printf("%s\n", r.Title)
				fmt.Printf("  %s - %s, %s, %d steps, %d coins\n",
					r.StartTime, r.EndTime(),
					r.RepetitionDescription(names),
					len(r.Flashcards), r.CoinReward,
				)
			}
			return nil
		},
	}
	command.Flags().StringVar(&titleFilter, "title", "", "filter by title substring")
	command.Flags().StringVar(&sortBy, "sort", "start_time", "sort order: start_time or title")
	return command
}

func newRoutineShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <routine title>",
		Short: "Show a routine and its steps",
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

			names := dayNames(cfg)
			_, _ = color.New(color.Bold).Printf("%s\n", r.Title)
			fmt.Printf("Repeats: %s\n", r.RepetitionDescription(names))
			fmt.Printf("Time: %s - %s\n", r.StartTime, r.EndTime())
			fmt.Printf("Reward: %d coins\n", r.CoinReward)
			if r.LastCompletionDate != nil {
				fmt.Printf("Last completed: %s\n", r.LastCompletionDate.Format("2006-01-02"))
			}
			fmt.Println()
			for _, card := range r.SortedFlashcards() {
				fmt.Printf("%d. %s\n", card.Index+1, card.Text)
				if card.ImageURL != "" {
					fmt.Printf("   %s\n", card.ImageURL)
				}
			}
			return nil
		},
	}
}

func newRoutineCreateCommand() *cobra.Command {
	var days []string
	var startAt string
	var durationMinutes int
	var coinReward int
	command := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a routine",
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

			r := routine.New(args[0])
			if startAt != "" {
				r.StartTime, err = calendar.ParseTimeOfDay(startAt)
				if err != nil {
					return fmt.Errorf("invalid --start-at: %w", err)
				}
			}
			if durationMinutes > 0 {
				r.DurationMinutes = durationMinutes
			}
			if coinReward > 0 {
				r.CoinReward = coinReward
			}
			r.Weekdays, err = parseWeekdays(days)
			if err != nil {
				return err
			}

			if err := store.routines.Create(cmd.Context(), r); err != nil {
				return fmt.Errorf("routines.Create > %w", err)
			}
			fmt.Printf("Created routine %s (%s)\n", r.Title, r.ID)
			return nil
		},
	}
	command.Flags().StringSliceVar(&days, "on", nil, "weekdays, e.g. --on mon,wed,fri or --on weekdays")
	command.Flags().StringVar(&startAt, "start-at", "", "start time, e.g. 07:30")
	command.Flags().IntVar(&durationMinutes, "duration", 0, "duration in minutes")
	command.Flags().IntVar(&coinReward, "reward", 0, "coin reward for completing the routine")
	return command
}

var weekdayAliases = map[string]calendar.Weekday{
	"sun": calendar.Sunday,
	"mon": calendar.Monday,
	"tue": calendar.Tuesday,
	"wed": calendar.Wednesday,
	"thu": calendar.Thursday,
	"fri": calendar.Friday,
	"sat": calendar.Saturday,
}

func parseWeekdays(days []string) (calendar.WeekdaySet, error) {
	if len(days) == 0 {
		return calendar.WeekdaySet{}, nil
	}

	var set calendar.WeekdaySet
	for _, raw := range days {
		name := strings.ToLower(strings.TrimSpace(raw))
		switch name {
		case "everyday":
			return calendar.EveryDay(), nil
		case "weekdays":
			set = append(set, calendar.Monday, calendar.Tuesday, calendar.Wednesday, calendar.Thursday, calendar.Friday)
		case "weekends":
			set = append(set, calendar.Saturday, calendar.Sunday)
		default:
			day, ok := weekdayAliases[name]
			if !ok && len(name) >= 3 {
				day, ok = weekdayAliases[name[:3]]
			}
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q", raw)
			}
			set = append(set, day)
		}
	}
	return set.Normalize(), nil
}

func newRoutineDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <routine title>",
		Short: "Delete a routine and its steps",
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
			if err := store.routines.Delete(cmd.Context(), r.ID); err != nil {
				return fmt.Errorf("routines.Delete > %w", err)
			}
			fmt.Printf("Deleted routine %s\n", r.Title)
			return nil
		},
	}
}

func newRoutineExportCommand() *cobra.Command {
	var toPDF bool
	command := &cobra.Command{
		Use:   "export <routine title>",
		Short: "Export a routine as a printable markdown document",
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

			exporter := export.NewExporter(cfg.Outputs.ExportDirectory, "", dayNames(cfg))
			markdownPath, err := exporter.Markdown(r)
			if err != nil {
				return fmt.Errorf("exporter.Markdown > %w", err)
			}
			fmt.Printf("Exported %s\n", markdownPath)

			if toPDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
				}
				fmt.Printf("Exported %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the export to PDF")
	return command
}

func newRoutineAddStepCommand() *cobra.Command {
	var imageURL string
	var pick bool
	command := &cobra.Command{
		Use:   "add-step <routine title> <text>",
		Short: "Append a picture step to a routine",
		Args:  cobra.ExactArgs(2),
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

			if pick {
				imageURL, err = pickPictogram(cmd.Context(), cfg)
				if err != nil {
					return err
				}
			}

			card := r.AppendFlashcard(args[1], imageURL)
			if err := store.routines.Update(cmd.Context(), r); err != nil {
				return fmt.Errorf("routines.Update > %w", err)
			}
			fmt.Printf("Added step %d to %s\n", card.Index+1, r.Title)
			return nil
		},
	}
	command.Flags().StringVar(&imageURL, "image-url", "", "pictogram image URL for the step")
	command.Flags().BoolVar(&pick, "pick", false, "search the pictogram catalog interactively")
	return command
}

func pickPictogram(ctx context.Context, cfg *config.Config) (string, error) {
	picker := cli.NewPickerCLI(
		newSearcher(cfg),
		newDebouncer(cfg),
		pictogramLanguage(cfg),
	)
	if err := picker.Run(ctx, picker); err != nil {
		return "", fmt.Errorf("picker.Run > %w", err)
	}
	return picker.Picked, nil
}

func newRoutineRemoveStepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-step <routine title> <step number>",
		Short: "Remove a picture step from a routine",
		Args:  cobra.ExactArgs(2),
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

			step, err := parseStepNumber(args[1], len(r.Flashcards))
			if err != nil {
				return err
			}
			cards := r.SortedFlashcards()
			r.RemoveFlashcards(cards[step-1].ID)

			if err := store.routines.Update(cmd.Context(), r); err != nil {
				return fmt.Errorf("routines.Update > %w", err)
			}
			fmt.Printf("Removed step %d from %s\n", step, r.Title)
			return nil
		},
	}
}

func newRoutineMoveStepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move-step <routine title> <from> <to>",
		Short: "Move a picture step to a new position",
		Args:  cobra.ExactArgs(3),
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

			from, err := parseStepNumber(args[1], len(r.Flashcards))
			if err != nil {
				return err
			}
			to, err := parseStepNumber(args[2], len(r.Flashcards))
			if err != nil {
				return err
			}
			r.MoveFlashcard(from-1, to-1)

			if err := store.routines.Update(cmd.Context(), r); err != nil {
				return fmt.Errorf("routines.Update > %w", err)
			}
			fmt.Printf("Moved step %d to %d in %s\n", from, to, r.Title)
			return nil
		},
	}
}

func parseStepNumber(raw string, total int) (int, error) {
	var step int
	if _, err := fmt.Sscanf(raw, "%d", &step); err != nil {
		return 0, fmt.Errorf("invalid step number %q", raw)
	}
	if step < 1 || step > total {
		return 0, fmt.Errorf("step %d is out of range, routine has %d steps", step, total)
	}
	return step, nil
}

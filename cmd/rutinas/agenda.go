package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rutinas-app/rutinas/internal/cli"
)

func newAgendaCommand() *cobra.Command {
	var dateFlag string
	command := &cobra.Command{
		Use:   "agenda",
		Short: "Show the routines scheduled for a day",
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

			date := time.Now()
			if dateFlag != "" {
				date, err = time.Parse("2006-01-02", dateFlag)
				if err != nil {
					return fmt.Errorf("invalid --date, expected YYYY-MM-DD: %w", err)
				}
			}

			agendaCLI := cli.NewAgendaCLI(store.routines, store.users, dayNames(cfg))
			return agendaCLI.Show(cmd.Context(), date)
		},
	}
	command.Flags().StringVar(&dateFlag, "date", "", "day to show (YYYY-MM-DD), defaults to today")
	return command
}

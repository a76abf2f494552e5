package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rutinas-app/rutinas/internal/user"
)

func newCoinsCommand() *cobra.Command {
	coinsCommand := &cobra.Command{
		Use:   "coins",
		Short: "Check and spend the coin balance",
	}

	coinsCommand.AddCommand(
		newCoinsBalanceCommand(),
		newCoinsSpendCommand(),
	)
	return coinsCommand
}

func newCoinsBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the coin balance and streak",
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

			u, err := store.users.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("users.Load > %w", err)
			}

			streakBefore := u.CurrentStreak
			user.ResetStreakIfLapsed(u, time.Now())
			if u.CurrentStreak != streakBefore {
				if err := store.users.Save(cmd.Context(), u); err != nil {
					return fmt.Errorf("users.Save > %w", err)
				}
			}

			fmt.Printf("Coins: %d\n", u.CoinBalance)
			fmt.Printf("Streak: %d days\n", u.CurrentStreak)
			return nil
		},
	}
}

func newCoinsSpendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "spend <amount>",
		Short: "Spend coins from the balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}

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

			u, err := store.users.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("users.Load > %w", err)
			}
			if !u.CanSpend(amount) {
				return fmt.Errorf("cannot spend %d coins, balance is %d", amount, u.CoinBalance)
			}
			u.Spend(amount)
			if err := store.users.Save(cmd.Context(), u); err != nil {
				return fmt.Errorf("users.Save > %w", err)
			}

			fmt.Printf("Spent %d coins, %d remaining\n", amount, u.CoinBalance)
			return nil
		},
	}
}

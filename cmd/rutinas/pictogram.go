package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rutinas-app/rutinas/internal/pictogram"
)

func newPictogramCommand() *cobra.Command {
	pictogramCommand := &cobra.Command{
		Use:   "pictogram",
		Short: "Search the ARASAAC pictogram catalog",
	}

	pictogramCommand.AddCommand(
		newPictogramSearchCommand(),
		newPictogramNewestCommand(),
		newPictogramImageURLCommand(),
	)
	return pictogramCommand
}

func newPictogramSearchCommand() *cobra.Command {
	var best bool
	command := &cobra.Command{
		Use:   "search <text>",
		Short: "Search pictograms by text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			mode := pictogram.SearchModeStandard
			if best {
				mode = pictogram.SearchModeBest
			}
			results, err := newSearcher(cfg).Search(cmd.Context(), pictogramLanguage(cfg), args[0], mode)
			if err != nil {
				return fmt.Errorf("search > %w", err)
			}

			if len(results) == 0 {
				fmt.Println("No pictograms found.")
				return nil
			}
			for _, p := range results {
				fmt.Printf("%d\t%s\n", p.ID, p.URL())
			}
			return nil
		},
	}
	command.Flags().BoolVar(&best, "best", false, "use the best-match search endpoint")
	return command
}

func newPictogramNewestCommand() *cobra.Command {
	var count int
	command := &cobra.Command{
		Use:   "newest",
		Short: "List the most recently published pictograms",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			results, err := newSearcher(cfg).Newest(cmd.Context(), pictogramLanguage(cfg), count)
			if err != nil {
				return fmt.Errorf("newest > %w", err)
			}
			for _, p := range results {
				fmt.Printf("%d\t%s\n", p.ID, p.URL())
			}
			return nil
		},
	}
	command.Flags().IntVar(&count, "count", 48, "number of pictograms to list")
	return command
}

func newPictogramImageURLCommand() *cobra.Command {
	options := pictogram.DefaultRenderOptions()
	command := &cobra.Command{
		Use:   "image-url <pictogram id>",
		Short: "Build an image URL with render options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid pictogram id %q", args[0])
			}
			fmt.Println(pictogram.ImageURL(id, options))
			return nil
		},
	}
	bindRenderOptionFlags(command.Flags(), &options)
	return command
}

// bindRenderOptionFlags registers the pictogram render options on a flag
// set, shared by every command that outputs image URLs.
func bindRenderOptionFlags(flags *pflag.FlagSet, options *pictogram.RenderOptions) {
	flags.IntVar(&options.Resolution, "resolution", options.Resolution, "image resolution in pixels")
	flags.BoolVar(&options.Plural, "plural", false, "render the plural variant")
	flags.BoolVar(&options.Color, "color", true, "render in color, disable for black and white")
	flags.StringVar((*string)(&options.Action), "action", "", "tense tint: past or future")
	flags.StringVar((*string)(&options.Skin), "skin", "", "skin tone variant")
	flags.StringVar((*string)(&options.Hair), "hair", "", "hair color variant")
	flags.StringVar((*string)(&options.Identifier), "identifier", "", "context badge: classroom, health, library or office")
	flags.StringVar((*string)(&options.IdentifierPosition), "identifier-position", string(options.IdentifierPosition), "badge position: left or right")
}

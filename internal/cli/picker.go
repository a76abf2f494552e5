package cli

import (
	"context"
	"strconv"
	"sync"

	"github.com/rutinas-app/rutinas/internal/pictogram"
)

// PickerCLI is the interactive pictogram search. Typed queries are
// debounced the way the touch UI debounces keystrokes, so a quick
// correction does not fire a request per character.
type PickerCLI struct {
	*InteractiveCLI
	searcher  pictogram.Searcher
	debouncer *pictogram.Debouncer
	language  pictogram.Language
	mode      pictogram.SearchMode
	options   pictogram.RenderOptions

	mu      sync.Mutex
	results []pictogram.Pictogram

	// Picked receives the image URL of the selected pictogram.
	Picked string
}

func NewPickerCLI(searcher pictogram.Searcher, debouncer *pictogram.Debouncer, language pictogram.Language) *PickerCLI {
	return &PickerCLI{
		InteractiveCLI: newInteractiveCLI(),
		searcher:       searcher,
		debouncer:      debouncer,
		language:       language,
		mode:           pictogram.SearchModeStandard,
		options:        pictogram.DefaultRenderOptions(),
	}
}

func (cli *PickerCLI) Session(ctx context.Context) error {
	cli.printf("Search (number to pick, 'best' toggles search mode, 'q' quits): ")
	input, err := cli.readLine()
	if err != nil {
		return err
	}

	switch input {
	case "q":
		cli.debouncer.Stop()
		return errEnd
	case "best":
		if cli.mode == pictogram.SearchModeBest {
			cli.mode = pictogram.SearchModeStandard
		} else {
			cli.mode = pictogram.SearchModeBest
		}
		cli.printf("Mode: %s\n", cli.mode.DisplayName())
		return nil
	case "":
		return cli.showNewest(ctx)
	}

	if index, err := strconv.Atoi(input); err == nil {
		return cli.pick(index)
	}

	done := make(chan struct{})
	cli.debouncer.Trigger(ctx, func(searchCtx context.Context) {
		defer close(done)

		results, err := cli.searcher.Search(searchCtx, cli.language, input, cli.mode)
		if searchCtx.Err() != nil {
			// Superseded by a newer query; drop the result.
			return
		}
		if err != nil {
			// An unreachable catalog degrades to an empty result list.
			results = nil
		}
		cli.setResults(results)
	})
	<-done

	cli.showResults()
	return nil
}

func (cli *PickerCLI) showNewest(ctx context.Context) error {
	results, err := cli.searcher.Newest(ctx, cli.language, 48)
	if err != nil {
		results = nil
	}
	cli.setResults(results)
	cli.showResults()
	return nil
}

func (cli *PickerCLI) setResults(results []pictogram.Pictogram) {
	cli.mu.Lock()
	defer cli.mu.Unlock()
	cli.results = results
}

func (cli *PickerCLI) showResults() {
	cli.mu.Lock()
	defer cli.mu.Unlock()

	if len(cli.results) == 0 {
		cli.println("No pictograms found.")
		return
	}
	for i, p := range cli.results {
		cli.printf("%d: %s\n", i+1, pictogram.ImageURL(p.ID, cli.options))
	}
}

func (cli *PickerCLI) pick(index int) error {
	cli.mu.Lock()
	defer cli.mu.Unlock()

	if index < 1 || index > len(cli.results) {
		cli.println("No pictogram with that number.")
		return nil
	}
	picked := cli.results[index-1]
	cli.Picked = pictogram.ImageURL(picked.ID, cli.options)
	cli.printf("Picked: %s\n", cli.Picked)
	cli.debouncer.Stop()
	return errEnd
}

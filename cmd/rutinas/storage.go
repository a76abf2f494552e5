package main

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"

	"github.com/rutinas-app/rutinas/internal/config"
	"github.com/rutinas-app/rutinas/internal/database"
	"github.com/rutinas-app/rutinas/internal/pictogram"
	"github.com/rutinas-app/rutinas/internal/routine"
	"github.com/rutinas-app/rutinas/internal/user"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// storage bundles the repositories for the configured backend, with a
// cleanup for the database connection when one was opened.
type storage struct {
	routines routine.Repository
	users    user.Repository
	close    func() error
}

func openStorage(cfg *config.Config) (*storage, error) {
	if cfg.Storage.Backend == config.BackendMySQL {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		return &storage{
			routines: routine.NewDBRepository(db),
			users:    user.NewDBRepository(db),
			close:    db.Close,
		}, nil
	}

	routines, err := routine.NewYAMLRepository(cfg.Storage.RoutinesDirectory)
	if err != nil {
		return nil, fmt.Errorf("routine.NewYAMLRepository > %w", err)
	}
	users, err := user.NewYAMLRepository(cfg.Storage.UserFile)
	if err != nil {
		return nil, fmt.Errorf("user.NewYAMLRepository > %w", err)
	}
	return &storage{
		routines: routines,
		users:    users,
		close:    func() error { return nil },
	}, nil
}

func newSearcher(cfg *config.Config) *pictogram.Client {
	return pictogram.NewClient(
		cfg.Pictograms.Host,
		cfg.Pictograms.CacheDirectory,
		cfg.Pictograms.RetryAttempts,
	)
}

func newDebouncer(cfg *config.Config) *pictogram.Debouncer {
	return pictogram.NewDebouncer(
		time.Duration(cfg.Pictograms.SearchDebounceMillis) * time.Millisecond,
	)
}

func pictogramLanguage(cfg *config.Config) pictogram.Language {
	if language := pictogram.Language(cfg.Pictograms.Language); language.IsValid() {
		return language
	}
	return pictogram.LanguageSpanish
}

// dayNames picks the locale for repetition phrases and agenda headers from
// the configured pictogram language, defaulting to English.
func dayNames(cfg *config.Config) locales.Translator {
	if cfg.Pictograms.Language == string(pictogram.LanguageSpanish) {
		return es.New()
	}
	return en.New()
}

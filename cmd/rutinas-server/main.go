package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rutinas-app/rutinas/internal/config"
	"github.com/rutinas-app/rutinas/internal/database"
	"github.com/rutinas-app/rutinas/internal/pictogram"
	"github.com/rutinas-app/rutinas/internal/routine"
	"github.com/rutinas-app/rutinas/internal/server"
	"github.com/rutinas-app/rutinas/internal/user"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	)

	var routines routine.Repository
	var users user.Repository
	if cfg.Storage.Backend == config.BackendMySQL {
		db, err := database.Open(cfg.Database)
		if err != nil {
			return fmt.Errorf("database.Open > %w", err)
		}
		defer func() {
			_ = db.Close()
		}()
		routines = routine.NewDBRepository(db)
		users = user.NewDBRepository(db)
	} else {
		yamlRoutines, err := routine.NewYAMLRepository(cfg.Storage.RoutinesDirectory)
		if err != nil {
			return fmt.Errorf("routine.NewYAMLRepository > %w", err)
		}
		yamlUsers, err := user.NewYAMLRepository(cfg.Storage.UserFile)
		if err != nil {
			return fmt.Errorf("user.NewYAMLRepository > %w", err)
		}
		routines = yamlRoutines
		users = yamlUsers
	}

	searcher := pictogram.NewClient(
		cfg.Pictograms.Host,
		cfg.Pictograms.CacheDirectory,
		cfg.Pictograms.RetryAttempts,
	)
	language := pictogram.Language(cfg.Pictograms.Language)
	if !language.IsValid() {
		language = pictogram.LanguageSpanish
	}

	handler := server.NewHandler(routines, users, searcher, dayNames(cfg), language)
	mux := handler.Routes()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Default().Info("Starting server", slog.String("addr", addr))
	return http.ListenAndServe(addr, server.CORSMiddleware(
		cfg.Server.AllowedOrigins,
		h2c.NewHandler(mux, &http2.Server{}),
	))
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("RUTINAS_CONFIG")
	return config.Load(configFile)
}

func dayNames(cfg *config.Config) locales.Translator {
	if cfg.Pictograms.Language == string(pictogram.LanguageSpanish) {
		return es.New()
	}
	return en.New()
}

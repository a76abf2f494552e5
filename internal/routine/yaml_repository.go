package routine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// YAMLRepository implements Repository on a directory of YAML files, one
// file per routine named <id>.yml. This is the local, serverless storage
// backend.
type YAMLRepository struct {
	directory string
}

// NewYAMLRepository creates the repository, making the directory if needed.
func NewYAMLRepository(directory string) (*YAMLRepository, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", directory, err)
	}
	return &YAMLRepository{directory: directory}, nil
}

func (repo *YAMLRepository) filePath(id uuid.UUID) string {
	return filepath.Join(repo.directory, id.String()+".yml")
}

// FindAll returns all routines ordered by title.
func (repo *YAMLRepository) FindAll(ctx context.Context) ([]Routine, error) {
	return repo.FindByTitle(ctx, "", SortByTitle)
}

// FindByID returns a routine by id, or nil if no file exists for it.
func (repo *YAMLRepository) FindByID(_ context.Context, id uuid.UUID) (*Routine, error) {
	contents, err := os.ReadFile(repo.filePath(id))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var r Routine
	if err := yaml.Unmarshal(contents, &r); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", repo.filePath(id), err)
	}
	restoreOwnership(&r)
	return &r, nil
}

// FindByTitle returns routines whose title contains titleFilter
// (case-insensitive; all routines when empty), sorted as requested.
func (repo *YAMLRepository) FindByTitle(_ context.Context, titleFilter string, order SortOrder) ([]Routine, error) {
	entries, err := os.ReadDir(repo.directory)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", repo.directory, err)
	}

	filter := strings.ToLower(titleFilter)
	routines := make([]Routine, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yml" {
			continue
		}

		contents, err := os.ReadFile(filepath.Join(repo.directory, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", entry.Name(), err)
		}
		var r Routine
		if err := yaml.Unmarshal(contents, &r); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", entry.Name(), err)
		}
		if filter != "" && !strings.Contains(strings.ToLower(r.Title), filter) {
			continue
		}
		restoreOwnership(&r)
		routines = append(routines, r)
	}

	sort.SliceStable(routines, func(i, j int) bool {
		if order == SortByStartTime {
			return routines[i].StartTime.Before(routines[j].StartTime)
		}
		return routines[i].Title < routines[j].Title
	})
	return routines, nil
}

// Create writes the routine file. Creating an existing routine overwrites
// it, which keeps create and update symmetric for this backend.
func (repo *YAMLRepository) Create(ctx context.Context, r *Routine) error {
	return repo.write(r)
}

// Update rewrites the routine file.
func (repo *YAMLRepository) Update(ctx context.Context, r *Routine) error {
	return repo.write(r)
}

// Delete removes the routine file; the owned flashcards live inside it, so
// the cascade is implicit. Deleting a missing routine is a no-op.
func (repo *YAMLRepository) Delete(_ context.Context, id uuid.UUID) error {
	if err := os.Remove(repo.filePath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}

func (repo *YAMLRepository) write(r *Routine) error {
	contents, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.WriteFile(repo.filePath(r.ID), contents, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}

// restoreOwnership rebuilds the flashcard back-references dropped by the
// YAML form.
func restoreOwnership(r *Routine) {
	for i := range r.Flashcards {
		r.Flashcards[i].RoutineID = r.ID
	}
}

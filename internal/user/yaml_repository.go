package user

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAMLRepository implements Repository on a single YAML file, the local,
// serverless storage backend.
type YAMLRepository struct {
	path string
}

// NewYAMLRepository creates the repository, making the parent directory if
// needed.
func NewYAMLRepository(path string) (*YAMLRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	return &YAMLRepository{path: path}, nil
}

// Load reads the user file, creating and persisting a fresh record when the
// file does not exist yet.
func (repo *YAMLRepository) Load(ctx context.Context) (*User, error) {
	contents, err := os.ReadFile(repo.path)
	if os.IsNotExist(err) {
		u := New()
		if err := repo.Save(ctx, u); err != nil {
			return nil, err
		}
		return u, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", repo.path, err)
	}

	var u User
	if err := yaml.Unmarshal(contents, &u); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", repo.path, err)
	}
	return &u, nil
}

// Save writes the user file.
func (repo *YAMLRepository) Save(_ context.Context, u *User) error {
	contents, err := yaml.Marshal(u)
	if err != nil {
		return fmt.Errorf("yaml.Marshal > %w", err)
	}
	if err := os.WriteFile(repo.path, contents, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", repo.path, err)
	}
	return nil
}

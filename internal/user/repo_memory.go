package user

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu   sync.Mutex
	user *User
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (repo *MemoryRepository) Load(_ context.Context) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.user == nil {
		repo.user = New()
	}
	u := *repo.user
	return &u, nil
}

func (repo *MemoryRepository) Save(_ context.Context, u *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	saved := *u
	repo.user = &saved
	return nil
}

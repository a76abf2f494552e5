package routine

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and by callers
// that need a throwaway backend.
type MemoryRepository struct {
	mu       sync.RWMutex
	routines map[uuid.UUID]Routine
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{routines: make(map[uuid.UUID]Routine)}
}

func (repo *MemoryRepository) FindAll(ctx context.Context) ([]Routine, error) {
	return repo.FindByTitle(ctx, "", SortByTitle)
}

func (repo *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*Routine, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	r, ok := repo.routines[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (repo *MemoryRepository) FindByTitle(_ context.Context, titleFilter string, order SortOrder) ([]Routine, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	filter := strings.ToLower(titleFilter)
	routines := make([]Routine, 0, len(repo.routines))
	for _, r := range repo.routines {
		if filter != "" && !strings.Contains(strings.ToLower(r.Title), filter) {
			continue
		}
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

func (repo *MemoryRepository) Create(_ context.Context, r *Routine) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.routines[r.ID] = *r
	return nil
}

func (repo *MemoryRepository) Update(_ context.Context, r *Routine) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.routines[r.ID] = *r
	return nil
}

func (repo *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	delete(repo.routines, id)
	return nil
}

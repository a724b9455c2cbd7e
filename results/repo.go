package results

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohae/deepcopy"
)

type memoryRepository struct {
	mu      sync.Mutex
	entries []*WorkoutResult
}

var _ Repository = &memoryRepository{}

// NewMemoryRepository returns the volatile, append-only log used by the demo.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Append(ctx context.Context, result WorkoutResult) (*WorkoutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if result.Id == "" {
		result.Id = uuid.NewString()
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now()
	}

	entry := &result
	r.entries = append(r.entries, entry)

	return deepcopy.Copy(entry).(*WorkoutResult), nil
}

func (r *memoryRepository) ListByPatient(ctx context.Context, patientId string) ([]*WorkoutResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []*WorkoutResult
	for _, entry := range r.entries {
		if entry.PatientId == patientId {
			list = append(list, deepcopy.Copy(entry).(*WorkoutResult))
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CompletedAt.After(list[j].CompletedAt)
	})

	return list, nil
}

func (r *memoryRepository) CountByPatient(ctx context.Context, patientId string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, entry := range r.entries {
		if entry.PatientId == patientId {
			count++
		}
	}
	return count, nil
}

package patients

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mohae/deepcopy"
)

type Repository interface {
	Service
}

type memoryRepository struct {
	mu      sync.Mutex
	records []*Patient
	byId    map[string]*Patient
}

var _ Repository = &memoryRepository{}

// NewMemoryRepository returns the volatile registry used by the demo. State
// is reset on process restart.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		byId: map[string]*Patient{},
	}
}

func (r *memoryRepository) Create(ctx context.Context, patient Patient) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byId[patient.Id]; ok {
		return nil, ErrDuplicate
	}

	patient.Status = StatusPendingPayment
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = time.Now()
	}

	record := &patient
	r.records = append(r.records, record)
	r.byId[record.Id] = record

	return deepcopy.Copy(record).(*Patient), nil
}

func (r *memoryRepository) Get(ctx context.Context, id string) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byId[id]
	if !ok {
		return nil, ErrNotFound
	}
	return deepcopy.Copy(record).(*Patient), nil
}

func (r *memoryRepository) MarkPaid(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byId[id]
	if !ok || record.Status != StatusPendingPayment {
		return false, nil
	}

	now := time.Now()
	record.Status = StatusPaid
	record.PaidAt = &now
	return true, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Storage keeps insertion order; the display convention is
	// most-recent-first, applied at read time.
	list := make([]*Patient, 0, len(r.records))
	for _, record := range r.records {
		list = append(list, deepcopy.Copy(record).(*Patient))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	return list, nil
}

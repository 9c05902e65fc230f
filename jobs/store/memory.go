package store

import (
	"context"
	"fmt"
	"sync"
)

// Compile-time check to ensure MemoryJobStore implements JobStore interface
var _ JobStore = (*MemoryJobStore)(nil)

// MemoryJobStore provides an in-memory implementation of the job-metadata
// persistence layer.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]*JobRecord
}

// NewMemoryJobStore creates and initializes a new MemoryJobStore.
func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{
		jobs: make(map[string]*JobRecord),
	}
}

// Save adds a new job record to the store.
// It ensures job ID uniqueness to prevent accidental overwrites or state corruption.
func (s *MemoryJobStore) Save(ctx context.Context, record *JobRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[record.ID]; exists {
		return fmt.Errorf("job with ID %s already exists", record.ID)
	}

	s.jobs[record.ID] = record
	return nil
}

// Get retrieves a job record by its ID.
// It returns a copy to prevent external callers from unintentionally
// modifying the state of the record stored within the map.
func (s *MemoryJobStore) Get(ctx context.Context, id string) (*JobRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.jobs[id]
	if !ok {
		return nil, fmt.Errorf("job with ID %s not found", id)
	}

	copied := *record
	copied.TaskARNs = append([]string(nil), record.TaskARNs...)
	return &copied, nil
}

// UpdateStatus modifies the last-observed composite status of an existing job.
func (s *MemoryJobStore) UpdateStatus(ctx context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.jobs[id]
	if !ok {
		return fmt.Errorf("job with ID %s not found", id)
	}

	record.Status = status
	return nil
}

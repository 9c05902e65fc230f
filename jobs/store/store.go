package store

import "context"

// JobRecord is the persisted metadata of a submitted composite job. It is
// what a caller needs to re-attach to a job after a restart: the task ARNs
// are enough to rebuild the vendor handles and the rest labels the job.
type JobRecord struct {
	ID          string   `json:"id"`
	BackendName string   `json:"backend_name"`
	Shots       int      `json:"shots"`
	TaskARNs    []string `json:"task_arns"`
	Status      string   `json:"status"`
}

// JobStore defines the contract for job-metadata persistence
type JobStore interface {
	Save(ctx context.Context, record *JobRecord) error
	Get(ctx context.Context, id string) (*JobRecord, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

package jobs

import (
	"context"

	"github.com/WingCode/qiskit-braket-provider/joberrors"
	"github.com/WingCode/qiskit-braket-provider/jobs/store"
	"github.com/WingCode/qiskit-braket-provider/logger"
)

// Manager defines the contract for composite-job lifecycle services.
type Manager interface {
	// SubmitJob builds a composite job over already-submitted tasks and
	// persists its metadata so the job can be recovered later by id.
	SubmitJob(ctx context.Context, backend Backend, jobID string, shots int, tasks []TaskHandle) (*QuantumJob, error)

	// GetJob re-attaches to a previously submitted job by id, rebuilding its
	// backend and task handles from the persisted record.
	GetJob(ctx context.Context, jobID string) (*QuantumJob, error)

	// GetJobStatus returns the live composite status of a job by id and
	// refreshes the persisted record with it.
	GetJobStatus(ctx context.Context, jobID string) (JobStatus, error)
}

// HandleResolver rebuilds the collaborator objects named by a persisted job
// record. This is where the vendor SDK (or a test fake) plugs in: the
// aggregation layer knows ARNs and backend names, not how to dial them.
type HandleResolver interface {
	ResolveBackend(name string) (Backend, error)
	ResolveTasks(ctx context.Context, record *store.JobRecord) ([]TaskHandle, error)
}

// manager is the single implementation, parameterized by the injected
// store, retriever and resolver.
type manager struct {
	store     store.JobStore
	retriever BatchRetriever
	resolver  HandleResolver
	logger    *logger.Logger
}

var _ Manager = (*manager)(nil)

// NewManager constructs a job-lifecycle manager around a metadata store,
// a batch-result retriever and a handle resolver.
func NewManager(st store.JobStore, retriever BatchRetriever, resolver HandleResolver, lg *logger.Logger) Manager {
	if lg == nil {
		lg = logger.New("INFO", nil)
	}
	return &manager{
		store:     st,
		retriever: retriever,
		resolver:  resolver,
		logger:    lg,
	}
}

// RecordOf snapshots a job's persistable metadata: its identity, the ARNs
// of the handles that expose one, and the composite status at snapshot time.
func RecordOf(ctx context.Context, job *QuantumJob) *store.JobRecord {
	arns := make([]string, 0, len(job.tasks))
	for _, task := range job.tasks {
		if identified, ok := task.(IdentifiedTask); ok {
			arns = append(arns, identified.ARN())
		}
	}

	return &store.JobRecord{
		ID:          job.id,
		BackendName: job.backend.Name(),
		Shots:       job.shots,
		TaskARNs:    arns,
		Status:      job.Status(ctx).String(),
	}
}

// SubmitJob creates the composite job and persists its initial record.
func (m *manager) SubmitJob(ctx context.Context, backend Backend, jobID string, shots int, tasks []TaskHandle) (*QuantumJob, error) {
	job, err := NewQuantumJob(backend, jobID, shots, tasks, m.retriever, m.logger)
	if err != nil {
		return nil, err
	}

	if err := m.store.Save(ctx, RecordOf(ctx, job)); err != nil {
		m.logger.Job(job.ID(), "failed to save job record", map[string]any{
			"error": err.Error(),
		})
		return job, joberrors.NewPersistenceError("failed to save job record", map[string]any{
			"job_id": job.ID(),
		}).WithCause(err)
	}

	m.logger.Job(job.ID(), "job submitted", map[string]any{
		"backend":    backend.Name(),
		"shots":      shots,
		"task_count": len(tasks),
	})

	return job, nil
}

// GetJob rebuilds a job from its persisted record.
func (m *manager) GetJob(ctx context.Context, jobID string) (*QuantumJob, error) {
	record, err := m.store.Get(ctx, jobID)
	if err != nil {
		return nil, joberrors.NewNotFoundError("job "+jobID+" not found").WithCause(err)
	}

	backend, err := m.resolver.ResolveBackend(record.BackendName)
	if err != nil {
		return nil, joberrors.NewNotFoundError("backend "+record.BackendName+" not found", map[string]any{
			"job_id": jobID,
		}).WithCause(err)
	}

	tasks, err := m.resolver.ResolveTasks(ctx, record)
	if err != nil {
		return nil, joberrors.NewRetrievalError("failed to rebuild task handles", map[string]any{
			"job_id": jobID,
		}).WithCause(err)
	}

	return NewQuantumJob(backend, record.ID, record.Shots, tasks, m.retriever, m.logger)
}

// GetJobStatus computes the live composite status and refreshes the record.
// Record-refresh failures are logged but never mask a successful query.
func (m *manager) GetJobStatus(ctx context.Context, jobID string) (JobStatus, error) {
	job, err := m.GetJob(ctx, jobID)
	if err != nil {
		return "", err
	}

	status := job.Status(ctx)

	if err := m.store.UpdateStatus(ctx, jobID, status.String()); err != nil {
		m.logger.Job(jobID, "failed to refresh persisted job status", map[string]any{
			"status": status.String(),
			"error":  err.Error(),
		})
	}

	return status, nil
}

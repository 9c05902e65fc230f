package jobs

import (
	"context"

	"github.com/google/uuid"

	"github.com/WingCode/qiskit-braket-provider/joberrors"
	"github.com/WingCode/qiskit-braket-provider/logger"
)

// QuantumJob aggregates one or more quantum tasks that were submitted
// together as a single logical job. It owns no execution: the tasks are
// already running (or finished) when the job is constructed, and the job
// only reads their state and collects their results.
//
// The task list is fixed at construction. It is never reordered or resized,
// which is what makes the submission-order guarantee on results hold.
type QuantumJob struct {
	id        string
	shots     int
	tasks     []TaskHandle
	backend   Backend
	retriever BatchRetriever
	logger    *logger.Logger
}

// NewQuantumJob constructs a composite job over already-submitted tasks.
// jobID may be empty, in which case a fresh UUID is assigned. The retriever
// is the batch-result collaborator; tests substitute a fake here instead of
// patching internals.
func NewQuantumJob(backend Backend, jobID string, shots int, tasks []TaskHandle, retriever BatchRetriever, lg *logger.Logger) (*QuantumJob, error) {
	if backend == nil {
		return nil, joberrors.NewValidationError("backend cannot be nil")
	}
	if shots <= 0 {
		return nil, joberrors.NewValidationError("shots must be positive", map[string]any{
			"shots": shots,
		})
	}
	if len(tasks) == 0 {
		return nil, joberrors.NewValidationError("job requires at least one task")
	}
	if retriever == nil {
		return nil, joberrors.NewValidationError("batch retriever cannot be nil")
	}
	if jobID == "" {
		jobID = uuid.New().String()
	}
	if lg == nil {
		lg = logger.New("INFO", nil)
	}

	owned := make([]TaskHandle, len(tasks))
	copy(owned, tasks)

	return &QuantumJob{
		id:        jobID,
		shots:     shots,
		tasks:     owned,
		backend:   backend,
		retriever: retriever,
		logger:    lg,
	}, nil
}

// ID returns the job identifier assigned at submission.
func (j *QuantumJob) ID() string {
	return j.id
}

// Shots returns the per-task shot count requested at submission.
func (j *QuantumJob) Shots() int {
	return j.shots
}

// Backend returns the backend the job's tasks were submitted to.
func (j *QuantumJob) Backend() Backend {
	return j.backend
}

// TaskCount returns the number of tasks making up the job.
func (j *QuantumJob) TaskCount() int {
	return len(j.tasks)
}

// Submit is a structural hook for the job-lifecycle interface. The tasks
// backing a composite job are already submitted when the job is built, so
// there is nothing to do here.
func (j *QuantumJob) Submit() {}

// Status queries every task's current state and folds them into one
// composite status. The result is computed fresh on every call: underlying
// tasks progress independently between polls, so caching here would lie.
func (j *QuantumJob) Status(ctx context.Context) JobStatus {
	states := make([]TaskState, len(j.tasks))
	for i, task := range j.tasks {
		states[i] = task.State(ctx)
	}

	status := AggregateStates(states)
	j.logger.Debug("job status computed", map[string]any{
		"job_id":     j.id,
		"status":     status.String(),
		"task_count": len(j.tasks),
	})
	return status
}

// Result collects the per-task results into one aggregate. The batch
// retriever is invoked exactly once; any entry still absent after its
// retry budget is exhausted is skipped rather than failing the aggregate,
// since partial completion is expected in concurrent batch execution.
// Surviving entries keep submission order.
//
// A FAILED sub-task is not an error here either: callers detect failures
// through Status(), and Result() hands back whatever did complete.
func (j *QuantumJob) Result(ctx context.Context) (*JobResult, error) {
	entries, err := j.retriever.RetrieveResults(ctx, j.tasks)
	if err != nil {
		return nil, joberrors.NewRetrievalError("batch result retrieval failed", map[string]any{
			"job_id": j.id,
		}).WithCause(err)
	}

	results := make([]TaskResult, 0, len(entries))
	for i, entry := range entries {
		if RetryIfResultNone(entry) {
			j.logger.Job(j.id, "task result unavailable, skipping entry", map[string]any{
				"task_index": i,
			})
			continue
		}
		results = append(results, *entry)
	}

	return &JobResult{JobID: j.id, Results: results}, nil
}

// QueuePosition reports the job's position in the backend's device queue.
// Local execution never queues, so for local backends this is an
// unsupported operation rather than a zero.
func (j *QuantumJob) QueuePosition() (int, error) {
	if j.backend.Local() {
		return 0, joberrors.NewUnsupportedError("queue information is unavailable for local execution", map[string]any{
			"backend": j.backend.Name(),
		})
	}
	return 0, joberrors.NewUnsupportedError("queue position is owned by the remote execution service", map[string]any{
		"backend": j.backend.Name(),
	})
}

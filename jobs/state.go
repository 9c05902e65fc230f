package jobs

import "fmt"

// TaskState is the vendor-side lifecycle state of a single quantum task,
// as reported by the Braket execution service.
type TaskState string

const (
	StateCreated    TaskState = "CREATED"
	StateQueued     TaskState = "QUEUED"
	StateRunning    TaskState = "RUNNING"
	StateCompleted  TaskState = "COMPLETED"
	StateFailed     TaskState = "FAILED"
	StateCancelling TaskState = "CANCELLING"
	StateCancelled  TaskState = "CANCELLED"
)

func (s TaskState) String() string {
	return string(s)
}

// IsTerminal reports whether the task can no longer change state.
func (s TaskState) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// ParseTaskState validates a raw state string from the vendor API.
func ParseTaskState(raw string) (TaskState, error) {
	switch TaskState(raw) {
	case StateCreated, StateQueued, StateRunning, StateCompleted,
		StateFailed, StateCancelling, StateCancelled:
		return TaskState(raw), nil
	}
	return "", fmt.Errorf("unknown task state %q", raw)
}

// JobStatus is the standardized composite status exposed to job-lifecycle
// callers. It is computed fresh from the underlying task states on every
// query and never cached.
type JobStatus string

const (
	StatusCreated    JobStatus = "CREATED"
	StatusQueued     JobStatus = "QUEUED"
	StatusValidating JobStatus = "VALIDATING"
	StatusRunning    JobStatus = "RUNNING"
	StatusDone       JobStatus = "DONE"
	StatusError      JobStatus = "ERROR"
	StatusCancelled  JobStatus = "CANCELLED"
)

func (s JobStatus) String() string {
	return string(s)
}

// IsFinal reports whether the composite job has reached a terminal status.
func (s JobStatus) IsFinal() bool {
	return s == StatusDone || s == StatusError || s == StatusCancelled
}

// IsActive reports whether the composite job is currently progressing.
func (s JobStatus) IsActive() bool {
	return s == StatusRunning || s == StatusValidating
}

// AggregateStates folds the states of the tasks that make up one job into
// a single composite status. Rules are evaluated in priority order:
//
//  1. any FAILED                -> ERROR
//  2. any CANCELLED/CANCELLING  -> CANCELLED
//  3. all COMPLETED             -> DONE
//  4. all RUNNING               -> RUNNING
//  5. all QUEUED                -> QUEUED
//  6. all CREATED               -> CREATED
//  7. anything else (mixed)     -> RUNNING
//
// Mixed progress (e.g. some COMPLETED, some RUNNING) resolves to RUNNING:
// as long as no task failed or was cancelled, at least one task still in
// flight means the job as a whole is in flight.
func AggregateStates(states []TaskState) JobStatus {
	// An empty batch has started nothing; report CREATED instead of letting
	// the all-X checks below pass vacuously at length zero.
	if len(states) == 0 {
		return StatusCreated
	}

	var cancelled bool
	tally := make(map[TaskState]int, len(states))
	for _, s := range states {
		if s == StateFailed {
			return StatusError
		}
		if s == StateCancelled || s == StateCancelling {
			cancelled = true
		}
		tally[s]++
	}
	if cancelled {
		return StatusCancelled
	}

	switch {
	case tally[StateCompleted] == len(states):
		return StatusDone
	case tally[StateRunning] == len(states):
		return StatusRunning
	case tally[StateQueued] == len(states):
		return StatusQueued
	case tally[StateCreated] == len(states):
		return StatusCreated
	}

	return StatusRunning
}

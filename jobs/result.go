package jobs

import "github.com/WingCode/qiskit-braket-provider/joberrors"

// TaskResult is the measurement payload of one completed task. Counts and
// Memory are passed through verbatim from the vendor payload; this layer
// never reinterprets bitstrings.
type TaskResult struct {
	// Status is the vendor state string the task finished with.
	Status string `json:"status"`
	// Shots is the number of repeated executions the task performed.
	Shots int `json:"shots"`
	// Counts maps an outcome bitstring to the number of shots producing it.
	Counts map[string]int `json:"counts"`
	// Memory holds the per-shot outcome bitstrings in execution order.
	Memory []string `json:"memory"`
}

// JobResult is the aggregate result of a composite job. Results holds the
// surviving per-task entries in submission order; tasks whose result never
// became available contribute no entry.
type JobResult struct {
	JobID   string       `json:"job_id"`
	Results []TaskResult `json:"results"`
}

// GetMemory returns the memory view of the job: the first result entry's
// per-shot bitstrings. Single-task jobs always have exactly one entry.
func (r *JobResult) GetMemory() ([]string, error) {
	if len(r.Results) == 0 {
		return nil, joberrors.NewNotFoundError("job has no result entries")
	}
	return r.Results[0].Memory, nil
}

// Clone returns a deep copy of the result. Counts and Memory get fresh
// backing storage, so mutating the copy never reaches the original payload.
func (r *TaskResult) Clone() *TaskResult {
	if r == nil {
		return nil
	}

	copied := *r
	if r.Counts != nil {
		copied.Counts = make(map[string]int, len(r.Counts))
		for bitstring, occurrences := range r.Counts {
			copied.Counts[bitstring] = occurrences
		}
	}
	if r.Memory != nil {
		copied.Memory = append([]string(nil), r.Memory...)
	}
	return &copied
}

// RetryIfResultNone is the retry predicate handed to the batch-retrieval
// mechanism: true exactly when the fetched entry is the not-ready sentinel
// (nil). A present-but-zero-valued result (empty counts, zero shots) is a
// settled value and must not retry.
func RetryIfResultNone(result *TaskResult) bool {
	return result == nil
}

package jobs

import "context"

// TaskHandle is an opaque reference to one remotely-executing computation.
// Concrete implementations wrap the vendor SDK's task object (or a local
// simulator task); this layer only ever reads through them.
type TaskHandle interface {
	// State returns the task's current vendor state. It must succeed for
	// any valid handle; transient lookup problems are the implementation's
	// concern.
	State(ctx context.Context) TaskState

	// Result returns the task's result payload, or nil while the result is
	// not yet available.
	Result(ctx context.Context) *TaskResult
}

// IdentifiedTask is implemented by handles that carry a durable vendor
// identifier (a Braket task ARN). Handles exposing one can be persisted and
// later rebuilt; purely in-process handles (local simulator) have none.
type IdentifiedTask interface {
	ARN() string
}

// BatchRetriever fetches results for an ordered set of task handles.
// Entry i of the returned slice corresponds to handle i; entries that never
// settled within the retriever's budget are nil. Implementations own the
// retry/backoff policy.
type BatchRetriever interface {
	RetrieveResults(ctx context.Context, handles []TaskHandle) ([]*TaskResult, error)
}

// Backend describes the execution backend a job was submitted to. The
// aggregation layer uses it only to label outputs and to decide whether
// queue information can exist, never to dispatch work.
type Backend interface {
	// Name returns the backend's display name.
	Name() string

	// Local reports whether the backend executes synchronously in-process
	// (simulator) rather than on a remote queued device.
	Local() bool
}

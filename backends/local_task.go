package backends

import (
	"context"

	"github.com/WingCode/qiskit-braket-provider/jobs"
)

// LocalTask is the task handle for locally-executed computations. Local
// execution completes synchronously at submission, so the handle is built
// from its final result and is COMPLETED from the start.
type LocalTask struct {
	result jobs.TaskResult
}

var _ jobs.TaskHandle = (*LocalTask)(nil)

// NewLocalTask wraps the finished result of a local execution.
func NewLocalTask(result jobs.TaskResult) *LocalTask {
	return &LocalTask{result: result}
}

func (t *LocalTask) State(ctx context.Context) jobs.TaskState {
	return jobs.StateCompleted
}

// Result returns a deep copy so callers cannot mutate the stored payload,
// not even through the counts map or memory slice.
func (t *LocalTask) Result(ctx context.Context) *jobs.TaskResult {
	return t.result.Clone()
}

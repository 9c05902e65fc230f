package backends_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WingCode/qiskit-braket-provider/backends"
	"github.com/WingCode/qiskit-braket-provider/jobs"
)

func TestLocalBackend(t *testing.T) {
	backend := backends.NewLocalBackend("default")

	assert.Equal(t, "default", backend.Name())
	assert.True(t, backend.Local())
}

func TestLocalTask_State(t *testing.T) {
	task := backends.NewLocalTask(jobs.TaskResult{Status: "COMPLETED", Shots: 3})

	// local execution finishes at submission, so the handle is born COMPLETED
	assert.Equal(t, jobs.StateCompleted, task.State(context.Background()))
}

func TestLocalTask_Result(t *testing.T) {
	payload := jobs.TaskResult{
		Status: "COMPLETED",
		Shots:  3,
		Counts: map[string]int{"01": 1, "10": 2},
		Memory: []string{"10", "10", "01"},
	}
	task := backends.NewLocalTask(payload)

	result := task.Result(context.Background())
	require.NotNil(t, result)
	assert.Equal(t, "COMPLETED", result.Status)
	assert.Equal(t, 3, result.Shots)
	assert.Equal(t, map[string]int{"01": 1, "10": 2}, result.Counts)
	assert.Equal(t, []string{"10", "10", "01"}, result.Memory)
	assert.False(t, jobs.RetryIfResultNone(result))
}

func TestLocalTask_ResultIsCopied(t *testing.T) {
	task := backends.NewLocalTask(jobs.TaskResult{
		Status: "COMPLETED",
		Shots:  3,
		Counts: map[string]int{"01": 1, "10": 2},
		Memory: []string{"10", "10", "01"},
	})

	first := task.Result(context.Background())
	first.Shots = 99
	first.Status = "FAILED"
	first.Counts["01"] = 42
	first.Memory[0] = "corrupted"

	second := task.Result(context.Background())
	assert.Equal(t, 3, second.Shots)
	assert.Equal(t, "COMPLETED", second.Status)
	assert.Equal(t, map[string]int{"01": 1, "10": 2}, second.Counts)
	assert.Equal(t, []string{"10", "10", "01"}, second.Memory)
}

package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WingCode/qiskit-braket-provider/joberrors"
)

func TestRetryIfResultNone(t *testing.T) {
	t.Run("nil result retries", func(t *testing.T) {
		assert.True(t, RetryIfResultNone(nil))
	})

	t.Run("present zero-valued result does not retry", func(t *testing.T) {
		// zero shots, nil counts, nil memory: still a settled value
		assert.False(t, RetryIfResultNone(&TaskResult{}))
	})

	t.Run("present result does not retry", func(t *testing.T) {
		assert.False(t, RetryIfResultNone(&TaskResult{
			Status: "COMPLETED",
			Shots:  3,
			Counts: map[string]int{"01": 1, "10": 2},
			Memory: []string{"10", "10", "01"},
		}))
	})
}

func TestTaskResult_Clone(t *testing.T) {
	original := &TaskResult{
		Status: "COMPLETED",
		Shots:  3,
		Counts: map[string]int{"01": 1, "10": 2},
		Memory: []string{"10", "10", "01"},
	}

	cloned := original.Clone()
	require.NotNil(t, cloned)
	assert.Equal(t, original, cloned)

	// fresh backing storage: mutations must not travel either direction
	cloned.Counts["01"] = 42
	cloned.Memory[0] = "corrupted"
	assert.Equal(t, 1, original.Counts["01"])
	assert.Equal(t, "10", original.Memory[0])
}

func TestTaskResult_Clone_Nil(t *testing.T) {
	var result *TaskResult
	assert.Nil(t, result.Clone())
}

func TestJobResult_GetMemory(t *testing.T) {
	result := &JobResult{
		JobID: "AwesomeId",
		Results: []TaskResult{
			{Status: "COMPLETED", Shots: 3, Memory: []string{"10", "10", "01"}},
			{Status: "COMPLETED", Shots: 3, Memory: []string{"11", "00", "11"}},
		},
	}

	memory, err := result.GetMemory()
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "10", "01"}, memory)
}

func TestJobResult_GetMemory_NoEntries(t *testing.T) {
	result := &JobResult{JobID: "AwesomeId"}

	_, err := result.GetMemory()
	require.Error(t, err)

	jobErr, ok := joberrors.IsJobError(err)
	require.True(t, ok)
	assert.Equal(t, joberrors.NotFound, jobErr.Kind)
}

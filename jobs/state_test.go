package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskState_IsTerminal(t *testing.T) {
	testCases := []struct {
		state    TaskState
		expected bool
	}{
		{StateCreated, false},
		{StateQueued, false},
		{StateRunning, false},
		{StateCompleted, true},
		{StateFailed, true},
		{StateCancelling, false},
		{StateCancelled, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.state), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.state.IsTerminal())
		})
	}
}

func TestParseTaskState(t *testing.T) {
	for _, raw := range []string{
		"CREATED", "QUEUED", "RUNNING", "COMPLETED", "FAILED", "CANCELLING", "CANCELLED",
	} {
		t.Run(raw, func(t *testing.T) {
			state, err := ParseTaskState(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, state.String())
		})
	}
}

func TestParseTaskState_Unknown(t *testing.T) {
	_, err := ParseTaskState("EXPLODED")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown task state")
}

func TestJobStatus_IsFinal(t *testing.T) {
	testCases := []struct {
		status   JobStatus
		expected bool
	}{
		{StatusCreated, false},
		{StatusQueued, false},
		{StatusValidating, false},
		{StatusRunning, false},
		{StatusDone, true},
		{StatusError, true},
		{StatusCancelled, true},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsFinal())
		})
	}
}

func TestJobStatus_IsActive(t *testing.T) {
	testCases := []struct {
		status   JobStatus
		expected bool
	}{
		{StatusCreated, false},
		{StatusQueued, false},
		{StatusValidating, true},
		{StatusRunning, true},
		{StatusDone, false},
		{StatusError, false},
		{StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsActive())
		})
	}
}

func TestAggregateStates(t *testing.T) {
	testCases := []struct {
		name     string
		states   []TaskState
		expected JobStatus
	}{
		{"completed and failed", []TaskState{StateCompleted, StateFailed}, StatusError},
		{"completed and cancelled", []TaskState{StateCompleted, StateCancelled}, StatusCancelled},
		{"all completed", []TaskState{StateCompleted, StateCompleted}, StatusDone},
		{"all running", []TaskState{StateRunning, StateRunning}, StatusRunning},
		{"all queued", []TaskState{StateQueued, StateQueued}, StatusQueued},

		// failure outranks cancellation regardless of position
		{"cancelled before failed", []TaskState{StateCancelled, StateFailed}, StatusError},
		{"cancelling before failed", []TaskState{StateCancelling, StateRunning, StateFailed}, StatusError},
		{"failed alone", []TaskState{StateFailed}, StatusError},

		// cancelling counts as cancelled
		{"cancelling and running", []TaskState{StateCancelling, StateRunning}, StatusCancelled},
		{"cancelled alone", []TaskState{StateCancelled}, StatusCancelled},

		// mixed progress resolves to running
		{"completed and running", []TaskState{StateCompleted, StateRunning}, StatusRunning},
		{"queued and running", []TaskState{StateQueued, StateRunning}, StatusRunning},
		{"created and queued", []TaskState{StateCreated, StateQueued}, StatusRunning},
		{"completed and queued and running", []TaskState{StateCompleted, StateQueued, StateRunning}, StatusRunning},

		{"all created", []TaskState{StateCreated, StateCreated}, StatusCreated},
		{"single completed", []TaskState{StateCompleted}, StatusDone},

		// an empty batch must not look finished
		{"no states", nil, StatusCreated},
		{"empty slice", []TaskState{}, StatusCreated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AggregateStates(tc.states))
		})
	}
}

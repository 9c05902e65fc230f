package retrieval

import (
	"context"
	"math"
	"time"

	"github.com/WingCode/qiskit-braket-provider/config"
	"github.com/WingCode/qiskit-braket-provider/jobs"
	"github.com/WingCode/qiskit-braket-provider/logger"
)

// PollingRetriever is the default batch-result collaborator. It polls each
// handle's result, retrying entries for which jobs.RetryIfResultNone holds
// with exponential backoff between rounds. Entries that never settle within
// the attempt budget stay nil; that is not an error, only context
// cancellation aborts a batch.
type PollingRetriever struct {
	interval    time.Duration
	maxAttempts int
	backoffBase float64
	maxBackoff  time.Duration
	logger      *logger.Logger
}

var _ jobs.BatchRetriever = (*PollingRetriever)(nil)

// NewPollingRetriever constructs a retriever with an explicit retry policy.
func NewPollingRetriever(interval time.Duration, maxAttempts int, backoffBase float64, maxBackoff time.Duration, lg *logger.Logger) *PollingRetriever {
	if lg == nil {
		lg = logger.New("INFO", nil)
	}
	return &PollingRetriever{
		interval:    interval,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
		maxBackoff:  maxBackoff,
		logger:      lg,
	}
}

// NewPollingRetrieverFromConfig constructs a retriever from the adapter
// configuration.
func NewPollingRetrieverFromConfig(cfg *config.Config, lg *logger.Logger) *PollingRetriever {
	return NewPollingRetriever(
		cfg.ResultPollInterval,
		cfg.ResultMaxAttempts,
		cfg.ResultBackoffBase,
		cfg.ResultMaxBackoff,
		lg,
	)
}

// RetrieveResults fetches results for all handles. Entry i of the returned
// slice corresponds to handle i; ordering is never disturbed by retries.
func (r *PollingRetriever) RetrieveResults(ctx context.Context, handles []jobs.TaskHandle) ([]*jobs.TaskResult, error) {
	results := make([]*jobs.TaskResult, len(handles))

	pending := make([]int, len(handles))
	for i := range handles {
		pending[i] = i
	}

	for attempt := 0; attempt < r.maxAttempts && len(pending) > 0; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}

		var unsettled []int
		for _, i := range pending {
			res := handles[i].Result(ctx)
			if jobs.RetryIfResultNone(res) {
				unsettled = append(unsettled, i)
				continue
			}
			results[i] = res
		}
		pending = unsettled
	}

	if len(pending) > 0 {
		r.logger.Warn("result retrieval budget exhausted", map[string]any{
			"unsettled_count": len(pending),
			"task_count":      len(handles),
			"max_attempts":    r.maxAttempts,
		})
	}

	return results, nil
}

// backoff returns the wait before the given retry round, growing
// exponentially from the base interval and capped at maxBackoff.
func (r *PollingRetriever) backoff(attempt int) time.Duration {
	d := time.Duration(math.Pow(r.backoffBase, float64(attempt-1)) * float64(r.interval))
	if d > r.maxBackoff {
		d = r.maxBackoff
	}
	return d
}

package store

import "github.com/WingCode/qiskit-braket-provider/config"

const redisKeyPrefix = "braket:jobs"

// NewFromConfig selects the job-store implementation named by the
// configuration: in-memory by default, Redis when configured for it.
func NewFromConfig(cfg *config.Config) (JobStore, error) {
	if cfg.JobStore == "redis" {
		return NewRedisJobStore(cfg.RedisURL, redisKeyPrefix)
	}
	return NewMemoryJobStore(), nil
}

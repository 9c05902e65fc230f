//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisTestcontainer(t *testing.T) (*RedisJobStore, func()) {
	ctx := context.Background()

	uniquePrefix := fmt.Sprintf("test_jobs_%s_%d", t.Name(), time.Now().UnixNano())

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("6379/tcp").WithStartupTimeout(30*time.Second),
			wait.ForLog("Ready to accept connections").WithOccurrence(1).WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("Failed to start Redis testcontainer: %v", err)
	}

	connStr, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		redisContainer.Terminate(ctx)
		t.Fatalf("Failed to get Redis connection string: %v", err)
	}
	redisURL := connStr + "/1"

	t.Logf("Redis container started at: %s (prefix: %s)", redisURL, uniquePrefix)

	var jobStore *RedisJobStore
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		jobStore, err = NewRedisJobStore(redisURL, uniquePrefix)
		if err == nil {
			break
		}
		if i < maxRetries-1 {
			t.Logf("Failed to connect to Redis, retrying... (%d/%d): %v", i+1, maxRetries, err)
			time.Sleep(time.Duration(i+1) * 500 * time.Millisecond)
		}
	}

	if jobStore == nil {
		redisContainer.Terminate(ctx)
		t.Fatalf("Failed to create working Redis job store after %d retries: %v", maxRetries, err)
	}

	cleanup := func() {
		ctx := context.Background()
		if jobStore != nil {
			jobStore.Close()
		}
		if terminateErr := redisContainer.Terminate(ctx); terminateErr != nil {
			t.Logf("Failed to terminate container: %v", terminateErr)
		}
	}

	return jobStore, cleanup
}

package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kfaist/baroque-print-api/repository"
)

// imageStoreContract exercises the behavior every ImageStore implementation
// must share: round trip, not-found on missing or deleted keys, idempotent
// delete.
func imageStoreContract(t *testing.T, store repository.ImageStore) {
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "contract-1", "payload-1"))

	data, err := store.Get(ctx, "contract-1")
	assert.NoError(t, err)
	assert.Equal(t, "payload-1", data)

	_, err = store.Get(ctx, "contract-missing")
	assert.ErrorIs(t, err, repository.ErrImageNotFound)

	assert.NoError(t, store.Delete(ctx, "contract-1"))
	_, err = store.Get(ctx, "contract-1")
	assert.ErrorIs(t, err, repository.ErrImageNotFound)

	assert.NoError(t, store.Delete(ctx, "contract-1"))
}

func TestMemoryImageStoreContract(t *testing.T) {
	imageStoreContract(t, repository.NewMemoryImageStore(time.Hour))
}

// Runs only when a Redis server is available, e.g.
// TEST_REDIS_URL=redis://localhost:6379/15 go test ./repository/...
func TestRedisImageStoreContract(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	client, err := repository.NewRedisClient(redisURL)
	if err != nil {
		t.Fatalf("connect to redis: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	imageStoreContract(t, repository.NewRedisImageStore(client, time.Minute))
}

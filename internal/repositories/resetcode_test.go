package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, client.Ping(ctx).Err())
	return client
}

func TestResetCodeRepository(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	t.Run("Consume matches and invalidates", func(t *testing.T) {
		repo := NewResetCodeRepository(client, time.Minute)

		assert.NoError(t, repo.Set(ctx, "ada@example.com", "482913"))

		matched, err := repo.Consume(ctx, "ada@example.com", "482913")
		assert.NoError(t, err)
		assert.True(t, matched)

		// single use: the same code cannot be consumed twice
		matched, err = repo.Consume(ctx, "ada@example.com", "482913")
		assert.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("mismatch leaves the code in place", func(t *testing.T) {
		repo := NewResetCodeRepository(client, time.Minute)

		assert.NoError(t, repo.Set(ctx, "bayo@example.com", "111111"))

		matched, err := repo.Consume(ctx, "bayo@example.com", "222222")
		assert.NoError(t, err)
		assert.False(t, matched)

		matched, err = repo.Consume(ctx, "bayo@example.com", "111111")
		assert.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("Set replaces a previous code", func(t *testing.T) {
		repo := NewResetCodeRepository(client, time.Minute)

		assert.NoError(t, repo.Set(ctx, "chi@example.com", "333333"))
		assert.NoError(t, repo.Set(ctx, "chi@example.com", "444444"))

		matched, err := repo.Consume(ctx, "chi@example.com", "333333")
		assert.NoError(t, err)
		assert.False(t, matched)

		matched, err = repo.Consume(ctx, "chi@example.com", "444444")
		assert.NoError(t, err)
		assert.True(t, matched)
	})

	t.Run("code expires with the TTL", func(t *testing.T) {
		repo := NewResetCodeRepository(client, 2*time.Second)

		assert.NoError(t, repo.Set(ctx, "dele@example.com", "555555"))

		time.Sleep(3 * time.Second)

		matched, err := repo.Consume(ctx, "dele@example.com", "555555")
		assert.NoError(t, err)
		assert.False(t, matched)
	})

	t.Run("missing code never matches", func(t *testing.T) {
		repo := NewResetCodeRepository(client, time.Minute)

		matched, err := repo.Consume(ctx, "nobody@example.com", "000000")
		assert.NoError(t, err)
		assert.False(t, matched)
	})
}

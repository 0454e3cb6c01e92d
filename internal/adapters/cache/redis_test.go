package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisClient_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	addr := getEnv("REDIS_ADDR", "localhost:6379")
	pass := getEnv("REDIS_PASSWORD", "")

	rdb, err := NewRedisClient(addr, pass, 1)

	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()

	require.NoError(t, rdb.FlushDB(ctx).Err(), "Failed to flush test DB")

	t.Run("Connection Ping", func(t *testing.T) {
		pong, err := rdb.Ping(ctx).Result()
		assert.NoError(t, err)
		assert.Equal(t, "PONG", pong)
	})

	t.Run("Profile Round Trip", func(t *testing.T) {
		key := "user_profile:user_123"
		profile := map[string]string{"id": "user_123", "first_name": "Amina"}

		data, err := json.Marshal(profile)
		require.NoError(t, err)
		require.NoError(t, rdb.Set(ctx, key, data, 30*time.Minute).Err())

		raw, err := rdb.Get(ctx, key).Result()
		require.NoError(t, err)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(raw), &got))
		assert.Equal(t, profile, got)

		rdb.Del(ctx, key)
	})

	t.Run("Expire Check", func(t *testing.T) {
		key := "prayers:user_expire"
		err := rdb.Set(ctx, key, "[]", 1*time.Second).Err()
		require.NoError(t, err)

		time.Sleep(1100 * time.Millisecond)

		_, err = rdb.Get(ctx, key).Result()

		assert.Error(t, err)
		assert.ErrorIs(t, err, redis.Nil, "Errors need to be of type 'redis.Nil'")
	})

	t.Run("Concurrent Access", func(t *testing.T) {
		concurrency := 20
		done := make(chan bool)

		for i := 0; i < concurrency; i++ {
			go func(id int) {
				key := fmt.Sprintf("prayers:concurrent_%d", id)
				err := rdb.Set(ctx, key, "[]", 10*time.Second).Err()
				assert.NoError(t, err)

				_, err = rdb.Get(ctx, key).Result()
				assert.NoError(t, err)

				done <- true
			}(i)
		}

		for i := 0; i < concurrency; i++ {
			<-done
		}
	})
}

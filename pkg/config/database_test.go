package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingWithRetry(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := pingWithRetry(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("no reachable servers")
			}
			return nil
		}, 3, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := pingWithRetry(context.Background(), func(context.Context) error {
			calls++
			return errors.New("no reachable servers")
		}, 3, time.Millisecond)
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := pingWithRetry(ctx, func(context.Context) error {
			calls++
			cancel()
			return errors.New("down")
		}, 3, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := initRedis("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = initRedis("not-a-url")
	assert.Error(t, err)
}

func TestInitDBKeepsServingWhenMongoIsDown(t *testing.T) {
	attempts, delay, timeout := mongoPingAttempts, mongoPingDelay, mongoPingTimeout
	mongoPingAttempts, mongoPingDelay, mongoPingTimeout = 2, time.Millisecond, 50*time.Millisecond
	t.Cleanup(func() {
		mongoPingAttempts, mongoPingDelay, mongoPingTimeout = attempts, delay, timeout
	})

	db, err := InitDB(&Config{
		MongoURI:        "mongodb://127.0.0.1:1",
		MongoDatabase:   "cookingapp_test",
		SequenceBackend: SequenceBackendMongo,
	})
	require.NoError(t, err)
	defer db.CloseDB()

	assert.False(t, db.Connected)
	require.NotNil(t, db.Database)
	assert.Equal(t, "cookingapp_test", db.Database.Name())
}

func TestInitDBRejectsInvalidURI(t *testing.T) {
	_, err := InitDB(&Config{MongoURI: "not-a-uri", MongoDatabase: "x"})
	assert.Error(t, err)
}

package sequence

import (
	"context"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Runs against a real server when MONGODB_URI is set.
func TestMongoGenerator_ConcurrentCallers(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	db := client.Database("sequence_test")
	gen := NewMongoGenerator(db)
	name := "test_" + uuid.NewString()
	defer db.Collection(CountersCollection).DeleteOne(context.Background(), bson.M{"_id": name})

	const workers, perWorker = 16, 25
	var (
		mu     sync.Mutex
		values []int64
		wg     sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				v, err := gen.Next(ctx, name)
				if !assert.NoError(t, err) {
					return
				}
				mu.Lock()
				values = append(values, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, values, workers*perWorker)
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	for i, v := range values {
		assert.Equal(t, int64(i+1), v)
	}
}

func TestMongoGenerator_SequentialPosts(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	db := client.Database("sequence_test")
	gen := NewMongoGenerator(db)
	name := "test_" + uuid.NewString()
	defer db.Collection(CountersCollection).DeleteOne(ctx, bson.M{"_id": name})

	first, err := gen.Next(ctx, name)
	require.NoError(t, err)
	second, err := gen.Next(ctx, name)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoFollowRepository_Follow(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Upserts", func(mt *mtest.T) {
		repo := NewMongoFollowRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(t, repo.Follow(context.Background(), primitive.NewObjectID(), primitive.NewObjectID()))

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		updates, err := started.Command.Lookup("updates").Array().Values()
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.True(t, updates[0].Document().Lookup("upsert").Boolean())
	})

	mt.Run("Lost upsert race", func(mt *mtest.T) {
		repo := NewMongoFollowRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "dup"}))

		assert.NoError(t, repo.Follow(context.Background(), primitive.NewObjectID(), primitive.NewObjectID()))
	})
}

func TestMongoFollowRepository_GetFollowCounts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Counts both directions", func(mt *mtest.T) {
		repo := NewMongoFollowRepository(mt.DB)
		ns := mt.DB.Name() + ".follows"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(5)}}),
		)

		counts, err := repo.GetFollowCounts(context.Background(), primitive.NewObjectID())
		require.NoError(t, err)
		assert.Equal(t, int64(3), counts.Followers)
		assert.Equal(t, int64(5), counts.Following)
	})
}

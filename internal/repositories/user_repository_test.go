package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSearchFilter(t *testing.T) {
	assert.Nil(t, searchFilter(""))
	assert.Nil(t, searchFilter("   \t "))

	filter := searchFilter("pasta  c++")
	and, ok := filter["$and"].(bson.A)
	require.True(t, ok)
	require.Len(t, and, 2)

	second := and[1].(bson.M)["$or"].(bson.A)
	require.Len(t, second, 4)
	re := second[0].(bson.M)["username"].(primitive.Regex)
	assert.Equal(t, `c\+\+`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestMongoUserRepository_SearchUsers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Blank query", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		users, err := repo.SearchUsers(context.Background(), "  ")
		require.NoError(t, err)
		assert.Empty(t, users)
		assert.Nil(t, mt.GetStartedEvent())
	})

	mt.Run("Matches", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "username", Value: "pastaqueen"}},
		))

		users, err := repo.SearchUsers(context.Background(), "pasta")
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "pastaqueen", users[0].Username)
	})
}

func TestMongoUserRepository_CreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "dup"}))

		err := repo.CreateUser(context.Background(), &models.User{Email: "a@b.c", Username: "a"})
		assert.True(t, errors.Is(err, models.ErrAlreadyExists))
	})
}

func TestMongoUserRepository_UpdateProfile(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Keeps picture when empty", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "fullName", Value: "New Name"},
			{Key: "profilePicture", Value: "old.jpg"},
		}}))

		user, err := repo.UpdateProfile(context.Background(), id, "New Name", "", "")
		require.NoError(t, err)
		assert.Equal(t, "old.jpg", user.ProfilePicture)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		_, err = started.Command.Lookup("update", "$set").Document().LookupErr("profilePicture")
		assert.Error(t, err)
	})

	mt.Run("Unknown user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateProfile(context.Background(), primitive.NewObjectID(), "x", "", "")
		assert.True(t, errors.Is(err, models.ErrNotFound))
	})
}

package repositories

import (
	"context"
	"time"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID primitive.ObjectID) error
	Unfollow(ctx context.Context, followerID, followingID primitive.ObjectID) error
	IsFollowing(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error)
	GetFollowCounts(ctx context.Context, userID primitive.ObjectID) (*models.FollowCounts, error)
}

// MongoFollowRepository implements FollowRepository for MongoDB
type MongoFollowRepository struct {
	collection *mongo.Collection
}

// NewMongoFollowRepository creates a new MongoFollowRepository
func NewMongoFollowRepository(db *mongo.Database) *MongoFollowRepository {
	return &MongoFollowRepository{collection: db.Collection(FollowsCollection)}
}

// Follow upserts the relationship, so repeating it is a no-op
func (r *MongoFollowRepository) Follow(ctx context.Context, followerID, followingID primitive.ObjectID) error {
	filter := bson.M{"followerId": followerID, "followingId": followingID}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":       primitive.NewObjectID(),
		"createdAt": time.Now().UTC(),
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// lost an upsert race against an identical request
		return nil
	}
	return err
}

func (r *MongoFollowRepository) Unfollow(ctx context.Context, followerID, followingID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"followerId": followerID, "followingId": followingID})
	return err
}

func (r *MongoFollowRepository) IsFollowing(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	n, err := r.collection.CountDocuments(ctx,
		bson.M{"followerId": followerID, "followingId": followingID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *MongoFollowRepository) GetFollowCounts(ctx context.Context, userID primitive.ObjectID) (*models.FollowCounts, error) {
	followers, err := r.collection.CountDocuments(ctx, bson.M{"followingId": userID})
	if err != nil {
		return nil, err
	}
	following, err := r.collection.CountDocuments(ctx, bson.M{"followerId": userID})
	if err != nil {
		return nil, err
	}
	return &models.FollowCounts{Followers: followers, Following: following}, nil
}

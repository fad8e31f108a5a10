package repositories

import (
	"context"
	"fmt"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on for uniqueness and ordering
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
		},
		PostsCollection: {
			{Keys: bson.D{{Key: "postId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_post_id")},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("user_created")},
		},
		InteractionsCollection: {
			{
				Keys: bson.D{{Key: "postId", Value: 1}, {Key: "userId", Value: 1}, {Key: "type", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetName("uniq_like").
					SetPartialFilterExpression(bson.M{"type": models.InteractionLike}),
			},
			{Keys: bson.D{{Key: "postOwnerId", Value: 1}, {Key: "read", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_read_created")},
			{Keys: bson.D{{Key: "postId", Value: 1}, {Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("post_type_created")},
		},
		FollowsCollection: {
			{Keys: bson.D{{Key: "followerId", Value: 1}, {Key: "followingId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_follow")},
			{Keys: bson.D{{Key: "followingId", Value: 1}}, Options: options.Index().SetName("following")},
		},
		LearningPlanCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("user")},
		},
		LearningProgressCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("user")},
		},
	}

	for name, indexes := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InteractionRepository stores likes and comments. Notifications are read from the same collection.
type InteractionRepository interface {
	CreateInteraction(ctx context.Context, interaction *models.Interaction) error
	GetInteractionByID(ctx context.Context, id primitive.ObjectID) (*models.Interaction, error)
	FindLike(ctx context.Context, postID int64, userID primitive.ObjectID) (*models.Interaction, error)
	DeleteLike(ctx context.Context, postID int64, userID primitive.ObjectID) error
	CountLikes(ctx context.Context, postID int64) (int64, error)
	GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Interaction, error)
	UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Interaction, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
	FindNotifications(ctx context.Context, q models.NotificationQuery) ([]models.Interaction, error)
	CountUnreadNotifications(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	MarkAllRead(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	MarkNotificationRead(ctx context.Context, id primitive.ObjectID) error
}

// MongoInteractionRepository implements InteractionRepository for MongoDB
type MongoInteractionRepository struct {
	collection *mongo.Collection
}

// NewMongoInteractionRepository creates a new MongoInteractionRepository
func NewMongoInteractionRepository(db *mongo.Database) *MongoInteractionRepository {
	return &MongoInteractionRepository{collection: db.Collection(InteractionsCollection)}
}

// CreateInteraction inserts a like or comment. A second like by the same user
// on the same post trips the unique partial index and yields ErrAlreadyExists.
func (r *MongoInteractionRepository) CreateInteraction(ctx context.Context, interaction *models.Interaction) error {
	if interaction.ID.IsZero() {
		interaction.ID = primitive.NewObjectID()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = now()
	}
	_, err := r.collection.InsertOne(ctx, interaction)
	return mapError(err, "interaction")
}

func (r *MongoInteractionRepository) GetInteractionByID(ctx context.Context, id primitive.ObjectID) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&interaction); err != nil {
		return nil, mapError(err, "interaction")
	}
	return &interaction, nil
}

func likeFilter(postID int64, userID primitive.ObjectID) bson.M {
	return bson.M{"postId": postID, "userId": userID, "type": models.InteractionLike}
}

// FindLike returns the user's like on a post, or ErrNotFound
func (r *MongoInteractionRepository) FindLike(ctx context.Context, postID int64, userID primitive.ObjectID) (*models.Interaction, error) {
	var like models.Interaction
	if err := r.collection.FindOne(ctx, likeFilter(postID, userID)).Decode(&like); err != nil {
		return nil, mapError(err, "like")
	}
	return &like, nil
}

func (r *MongoInteractionRepository) DeleteLike(ctx context.Context, postID int64, userID primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, likeFilter(postID, userID))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "like")
	}
	return nil
}

func (r *MongoInteractionRepository) CountLikes(ctx context.Context, postID int64) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"postId": postID, "type": models.InteractionLike})
}

// GetCommentsByPostID returns a post's comments, newest first
func (r *MongoInteractionRepository) GetCommentsByPostID(ctx context.Context, postID int64) ([]models.Interaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"postId": postID, "type": models.InteractionComment}, opts)
}

// UpdateCommentContent rewrites a comment's text. Likes are never matched.
func (r *MongoInteractionRepository) UpdateCommentContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Interaction, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Interaction
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "type": models.InteractionComment},
		bson.M{"$set": bson.M{"content": content}},
		opts,
	).Decode(&comment)
	if err != nil {
		return nil, mapError(err, "comment")
	}
	return &comment, nil
}

func (r *MongoInteractionRepository) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "type": models.InteractionComment})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "comment")
	}
	return nil
}

// notificationFilter matches likes and comments on the owner's posts made by other users
func notificationFilter(ownerID primitive.ObjectID, unreadOnly bool) bson.M {
	filter := bson.M{
		"postOwnerId": ownerID,
		"userId":      bson.M{"$ne": ownerID},
		"type":        bson.M{"$in": bson.A{models.InteractionLike, models.InteractionComment}},
	}
	if unreadOnly {
		filter["read"] = false
	}
	return filter
}

// FindNotifications returns one page of notifications, newest first
func (r *MongoInteractionRepository) FindNotifications(ctx context.Context, q models.NotificationQuery) ([]models.Interaction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(q.Page * q.Size).
		SetLimit(q.Size)
	return r.find(ctx, notificationFilter(q.UserID, q.UnreadOnly), opts)
}

func (r *MongoInteractionRepository) CountUnreadNotifications(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, notificationFilter(ownerID, true))
}

// MarkAllRead marks every unread notification of the owner as read
func (r *MongoInteractionRepository) MarkAllRead(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	res, err := r.collection.UpdateMany(ctx,
		notificationFilter(ownerID, true),
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoInteractionRepository) MarkNotificationRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "notification")
	}
	return nil
}

func (r *MongoInteractionRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Interaction, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	interactions := []models.Interaction{}
	if err = cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}

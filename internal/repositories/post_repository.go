package repositories

import (
	"context"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository defines the interface for post data operations.
// Posts are addressed by their numeric postId.
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByPostID(ctx context.Context, postID int64) (*models.Post, error)
	GetAllPosts(ctx context.Context, skip, limit int64) ([]models.PostWithAuthor, error)
	GetPostsByUserID(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.PostWithAuthor, error)
	GetPostsByPostIDs(ctx context.Context, postIDs []int64) ([]models.Post, error)
	UpdatePostContent(ctx context.Context, postID int64, title, description string) (*models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection(PostsCollection)}
}

// CreatePost inserts a post whose PostID has already been assigned
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, post)
	return mapError(err, "post")
}

// GetPostByPostID retrieves a post by its numeric id
func (r *MongoPostRepository) GetPostByPostID(ctx context.Context, postID int64) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"postId": postID}).Decode(&post)
	if err != nil {
		return nil, mapError(err, "post")
	}
	return &post, nil
}

// GetAllPosts returns every post joined with its author, newest first
func (r *MongoPostRepository) GetAllPosts(ctx context.Context, skip, limit int64) ([]models.PostWithAuthor, error) {
	return r.aggregateWithAuthor(ctx, bson.M{}, skip, limit)
}

// GetPostsByUserID returns the posts of one author, newest first
func (r *MongoPostRepository) GetPostsByUserID(ctx context.Context, userID primitive.ObjectID, skip, limit int64) ([]models.PostWithAuthor, error) {
	return r.aggregateWithAuthor(ctx, bson.M{"userId": userID}, skip, limit)
}

func (r *MongoPostRepository) aggregateWithAuthor(ctx context.Context, match bson.M, skip, limit int64) ([]models.PostWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "postId", Value: -1}}}},
	}
	if skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: skip}})
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "author",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{"path": "$author", "preserveNullAndEmptyArrays": true}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"user": bson.M{"$cond": bson.A{
				bson.M{"$ifNull": bson.A{"$author._id", false}},
				bson.M{
					"id":             "$author._id",
					"username":       "$author.username",
					"fullName":       "$author.fullName",
					"profilePicture": "$author.profilePicture",
				},
				"$$REMOVE",
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"author": 0}}},
	)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.PostWithAuthor{}
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPostsByPostIDs fetches the posts with the given numeric ids, in no particular order
func (r *MongoPostRepository) GetPostsByPostIDs(ctx context.Context, postIDs []int64) ([]models.Post, error) {
	posts := []models.Post{}
	if len(postIDs) == 0 {
		return posts, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"postId": bson.M{"$in": postIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePostContent overwrites title and description. postId is never part of the update.
func (r *MongoPostRepository) UpdatePostContent(ctx context.Context, postID int64, title, description string) (*models.Post, error) {
	update := bson.M{
		"$set": bson.M{
			"title":       title,
			"description": description,
			"updatedAt":   now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"postId": postID}, update, opts).Decode(&post)
	if err != nil {
		return nil, mapError(err, "post")
	}
	return &post, nil
}

// DeletePost deletes a post by numeric id. Its interactions are kept.
func (r *MongoPostRepository) DeletePost(ctx context.Context, postID int64) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"postId": postID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "post")
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LearningProgressRepository defines the interface for learning progress data operations
type LearningProgressRepository interface {
	CreateProgress(ctx context.Context, p *models.LearningProgress) error
	GetProgressEntries(ctx context.Context) ([]models.LearningProgress, error)
	GetProgressByID(ctx context.Context, id primitive.ObjectID) (*models.LearningProgress, error)
	GetProgressByUserID(ctx context.Context, userID string) ([]models.LearningProgress, error)
	ReplaceProgress(ctx context.Context, p *models.LearningProgress) error
	DeleteProgress(ctx context.Context, id primitive.ObjectID) error
}

// MongoLearningProgressRepository implements LearningProgressRepository for MongoDB
type MongoLearningProgressRepository struct {
	collection *mongo.Collection
}

// NewMongoLearningProgressRepository creates a new MongoLearningProgressRepository
func NewMongoLearningProgressRepository(db *mongo.Database) *MongoLearningProgressRepository {
	return &MongoLearningProgressRepository{collection: db.Collection(LearningProgressCollection)}
}

func (r *MongoLearningProgressRepository) CreateProgress(ctx context.Context, p *models.LearningProgress) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, p)
	return err
}

func (r *MongoLearningProgressRepository) GetProgressEntries(ctx context.Context) ([]models.LearningProgress, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoLearningProgressRepository) GetProgressByID(ctx context.Context, id primitive.ObjectID) (*models.LearningProgress, error) {
	var p models.LearningProgress
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapError(err, "learning progress")
	}
	return &p, nil
}

func (r *MongoLearningProgressRepository) GetProgressByUserID(ctx context.Context, userID string) ([]models.LearningProgress, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ReplaceProgress writes the whole document back
func (r *MongoLearningProgressRepository) ReplaceProgress(ctx context.Context, p *models.LearningProgress) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "learning progress")
	}
	return nil
}

func (r *MongoLearningProgressRepository) DeleteProgress(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "learning progress")
	}
	return nil
}

func (r *MongoLearningProgressRepository) find(ctx context.Context, filter bson.M) ([]models.LearningProgress, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastModified", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.LearningProgress{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

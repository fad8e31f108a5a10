package repositories

import (
	"context"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LearningPlanRepository defines the interface for learning plan data operations
type LearningPlanRepository interface {
	CreatePlan(ctx context.Context, plan *models.LearningPlan) error
	GetPlans(ctx context.Context) ([]models.LearningPlan, error)
	GetPlanByID(ctx context.Context, id primitive.ObjectID) (*models.LearningPlan, error)
	GetPlansByUserID(ctx context.Context, userID string) ([]models.LearningPlan, error)
	ReplacePlan(ctx context.Context, plan *models.LearningPlan) error
	DeletePlan(ctx context.Context, id primitive.ObjectID) error
}

// MongoLearningPlanRepository implements LearningPlanRepository for MongoDB
type MongoLearningPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoLearningPlanRepository creates a new MongoLearningPlanRepository
func NewMongoLearningPlanRepository(db *mongo.Database) *MongoLearningPlanRepository {
	return &MongoLearningPlanRepository{collection: db.Collection(LearningPlanCollection)}
}

func (r *MongoLearningPlanRepository) CreatePlan(ctx context.Context, plan *models.LearningPlan) error {
	if plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

func (r *MongoLearningPlanRepository) GetPlans(ctx context.Context) ([]models.LearningPlan, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoLearningPlanRepository) GetPlanByID(ctx context.Context, id primitive.ObjectID) (*models.LearningPlan, error) {
	var plan models.LearningPlan
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		return nil, mapError(err, "learning plan")
	}
	return &plan, nil
}

func (r *MongoLearningPlanRepository) GetPlansByUserID(ctx context.Context, userID string) ([]models.LearningPlan, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ReplacePlan writes the whole document back
func (r *MongoLearningPlanRepository) ReplacePlan(ctx context.Context, plan *models.LearningPlan) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, plan)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "learning plan")
	}
	return nil
}

func (r *MongoLearningPlanRepository) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapError(mongo.ErrNoDocuments, "learning plan")
	}
	return nil
}

func (r *MongoLearningPlanRepository) find(ctx context.Context, filter bson.M) ([]models.LearningPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastModified", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	plans := []models.LearningPlan{}
	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

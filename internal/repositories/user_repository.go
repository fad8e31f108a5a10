package repositories

import (
	"context"
	"regexp"
	"strings"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchLimit caps user search results
const searchLimit = 50

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByEmailOrUsername(ctx context.Context, login string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName, bio, profilePicture string) (*models.User, error)
	SearchUsers(ctx context.Context, query string) ([]models.User, error)
}

// MongoUserRepository implements UserRepository for MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(UsersCollection)}
}

// CreateUser inserts a user. A unique index collision yields ErrAlreadyExists.
func (r *MongoUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now()
	}
	_, err := r.collection.InsertOne(ctx, user)
	return mapError(err, "user")
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetUserByEmailOrUsername resolves a login name that may be either
func (r *MongoUserRepository) GetUserByEmailOrUsername(ctx context.Context, login string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": login},
		bson.M{"username": login},
	}})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}

// GetUsersByIDs loads several users at once; unknown ids are ignored
func (r *MongoUserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProfile overwrites fullName and bio; profilePicture only when given
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, fullName, bio, profilePicture string) (*models.User, error) {
	set := bson.M{
		"fullName": fullName,
		"bio":      bio,
	}
	if profilePicture != "" {
		set["profilePicture"] = profilePicture
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		return nil, mapError(err, "user")
	}
	return &user, nil
}

// SearchUsers matches users for which every whitespace separated term appears,
// case-insensitively, in the username, full name, email or bio.
// Terms are matched literally.
func (r *MongoUserRepository) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	users := []models.User{}
	filter := searchFilter(query)
	if filter == nil {
		return users, nil
	}

	opts := options.Find().SetLimit(searchLimit).SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func searchFilter(query string) bson.M {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return nil
	}
	and := make(bson.A, 0, len(terms))
	for _, term := range terms {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
		and = append(and, bson.M{"$or": bson.A{
			bson.M{"username": re},
			bson.M{"fullName": re},
			bson.M{"email": re},
			bson.M{"bio": re},
		}})
	}
	return bson.M{"$and": and}
}

package sequence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountersCollection holds one {_id: name, value} document per sequence
const CountersCollection = "database_sequences"

type counterDoc struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"value"`
}

// MongoGenerator implements Generator with findAndModify
type MongoGenerator struct {
	collection *mongo.Collection
}

// NewMongoGenerator creates a new MongoGenerator
func NewMongoGenerator(db *mongo.Database) *MongoGenerator {
	return &MongoGenerator{collection: db.Collection(CountersCollection)}
}

// Next increments the named counter, creating it when missing, and returns the new value
func (g *MongoGenerator) Next(ctx context.Context, name string) (int64, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := g.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": int64(1)}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence %q: %w", name, err)
	}

	issued(name)
	return doc.Value, nil
}

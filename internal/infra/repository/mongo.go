package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository[T any] struct {
	mongo *mongo.Database
}

func NewMongoRepository[T any](mongo *mongo.Database) *MongoRepository[T] {
	return &MongoRepository[T]{mongo: mongo}
}

func (r *MongoRepository[T]) Create(ctx context.Context, collectionName string, entity T) (T, error) {
	collection := r.mongo.Collection(collectionName)
	_, err := collection.InsertOne(ctx, entity)
	return entity, err
}

func (r *MongoRepository[T]) FindBy(ctx context.Context, collectionName string, field string, value string, sortField string, limit int64) ([]T, error) {
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{field: value}

	cursor, err := collection.Find(ctx, filter, findOptions(sortField, limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entities := []T{}
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, cursor.Err()
}

// findOptions sorts by sortField descending; limit <= 0 leaves the result unbounded.
func findOptions(sortField string, limit int64) *options.FindOptions {
	opts := options.Find()
	if sortField != "" {
		opts.SetSort(bson.D{{Key: sortField, Value: -1}})
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}

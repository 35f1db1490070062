package profile

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	GetActive(ctx context.Context) (Profile, error)
	Upsert(ctx context.Context, set, setOnInsert bson.M) (Profile, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetActive(ctx context.Context) (Profile, error) {
	var item Profile
	if err := r.col.FindOne(ctx, bson.M{"is_active": true}).Decode(&item); err != nil {
		return Profile{}, err
	}
	return item, nil
}

// Upsert targets the active singleton in one atomic operation: when it exists
// the $set replaces its fields, otherwise the $setOnInsert seeds a new one.
// Racing upserts converge on the same document thanks to the partial unique
// index on is_active.
func (r *MongoRepository) Upsert(ctx context.Context, set, setOnInsert bson.M) (Profile, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}

	var updated Profile
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"is_active": true}, update, opts).Decode(&updated); err != nil {
		return Profile{}, err
	}
	return updated, nil
}

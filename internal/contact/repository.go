package contact

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, msg ContactMessage) error
	Update(ctx context.Context, id string, set bson.M) (ContactMessage, error)
	List(ctx context.Context, limit, offset int64) ([]ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, msg ContactMessage) error {
	_, err := r.col.InsertOne(ctx, msg)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (ContactMessage, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated ContactMessage
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return ContactMessage{}, err
	}
	return updated, nil
}

func (r *MongoRepository) List(ctx context.Context, limit, offset int64) ([]ContactMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]ContactMessage, 0)
	for cursor.Next(ctx) {
		var msg ContactMessage
		if err := cursor.Decode(&msg); err != nil {
			return nil, err
		}
		items = append(items, msg)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

package skills

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Skill) error
	Update(ctx context.Context, id string, set bson.M) (Skill, error)
	ListPublic(ctx context.Context) ([]Skill, error)
	ListAdmin(ctx context.Context) ([]Skill, error)
	CountActive(ctx context.Context) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Skill) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Skill, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated Skill
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Skill{}, err
	}
	return updated, nil
}

func (r *MongoRepository) ListPublic(ctx context.Context) ([]Skill, error) {
	return r.list(ctx, bson.M{"is_active": true})
}

func (r *MongoRepository) ListAdmin(ctx context.Context) ([]Skill, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoRepository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"is_active": true})
}

func (r *MongoRepository) list(ctx context.Context, query bson.M) ([]Skill, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "sort_order", Value: 1},
	})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Skill, 0)
	for cursor.Next(ctx) {
		var item Skill
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

package projects

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Project) error
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, id string, set bson.M) (Project, error)
	ListPublic(ctx context.Context, featuredOnly bool) ([]Project, error)
	ListAdmin(ctx context.Context) ([]Project, error)
	CountActive(ctx context.Context) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Project) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Project, error) {
	var item Project
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return Project{}, err
	}
	return item, nil
}

// Update applies a single atomic $set so concurrent edits cannot resurrect
// stale fields through a read-modify-write cycle.
func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Project, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set}

	var updated Project
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		return Project{}, err
	}
	return updated, nil
}

func (r *MongoRepository) ListPublic(ctx context.Context, featuredOnly bool) ([]Project, error) {
	query := bson.M{"is_active": true}
	if featuredOnly {
		query["featured"] = true
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "created_at", Value: -1},
	})

	return r.list(ctx, query, opts)
}

func (r *MongoRepository) ListAdmin(ctx context.Context) ([]Project, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "created_at", Value: -1},
	})
	return r.list(ctx, bson.M{}, opts)
}

func (r *MongoRepository) CountActive(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"is_active": true})
}

func (r *MongoRepository) list(ctx context.Context, query bson.M, opts *options.FindOptions) ([]Project, error) {
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Project, 0)
	for cursor.Next(ctx) {
		var item Project
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

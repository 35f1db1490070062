package admins

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository interface {
	Create(ctx context.Context, admin Admin) error
	GetByEmail(ctx context.Context, email string) (Admin, error)
	GetByID(ctx context.Context, id string) (Admin, error)
	Count(ctx context.Context) (int64, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, admin Admin) error {
	_, err := r.col.InsertOne(ctx, admin)
	return err
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (Admin, error) {
	var admin Admin
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&admin); err != nil {
		return Admin{}, err
	}
	return admin, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (Admin, error) {
	var admin Admin
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		return Admin{}, err
	}
	return admin, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Admins          *mongo.Collection
	Profiles        *mongo.Collection
	Projects        *mongo.Collection
	Experiences     *mongo.Collection
	Skills          *mongo.Collection
	ContactMessages *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Admins:          db.Collection("admins"),
		Profiles:        db.Collection("profiles"),
		Projects:        db.Collection("projects"),
		Experiences:     db.Collection("experiences"),
		Skills:          db.Collection("skills"),
		ContactMessages: db.Collection("contact_messages"),
	}

	return client, cols, nil
}

// EnsureIndexes creates the indexes the services rely on. The unique index on
// the constant admin role field caps the system at a single admin account, and
// the partial unique index on profiles caps it at one active singleton; both
// hold even when two requests race on the check-then-create path.
func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.Admins.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "role", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Profiles.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_active", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Projects.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "featured", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Experiences.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "sort_order", Value: 1}, {Key: "start_date", Value: -1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.Skills.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "category", Value: 1}, {Key: "sort_order", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = cols.ContactMessages.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "is_read", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	return nil
}

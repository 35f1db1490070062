package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"portfolio-backend/internal/admins"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the admin account from ADMIN_NAME/ADMIN_EMAIL/ADMIN_PASSWORD. Safe to
// run repeatedly: the upsert refreshes the credential without duplicating the
// account.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	name := strings.TrimSpace(envOrDefault("ADMIN_NAME", "Admin"))
	email := admins.NormalizeEmail(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("seed admin: ADMIN_EMAIL or ADMIN_PASSWORD missing, skipping")
		log.Println("seed completed")
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now().UTC()
	filter := bson.M{"role": admins.RoleAdmin}
	update := bson.M{
		"$set": bson.M{
			"name":          name,
			"email":         email,
			"password_hash": hash,
			"is_active":     true,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"role":       admins.RoleAdmin,
			"created_at": now,
		},
	}

	if _, err := cols.Admins.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		log.Fatalf("seed admin error: %v", err)
	}

	log.Println("seed completed")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

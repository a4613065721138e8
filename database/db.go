package database

import (
	"context"
	"log"
	"time"

	"routinely/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client. Repositories pick their
// collections off it after InitDB has run.
var MongoClient *mongo.Client

// InitDB connects to MongoDB using the configured URL and verifies the
// connection with a ping. The process cannot serve anything without its
// database, so failure here is fatal.
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := config.AppConfig.DatabaseURL
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	log.Println("Connected to MongoDB")
}

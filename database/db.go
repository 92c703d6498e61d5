package database

import (
	"context"
	"fmt"
	"time"

	"letsheal/config"
	"letsheal/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// SessionsCollection holds stored sessions when SESSION_BACKEND is mongo.
const SessionsCollection = "sessions"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection.
func InitDB(ctx context.Context) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	utils.GetLogger().Info("Connected to MongoDB", zap.String("database", config.AppConfig.DatabaseName))
	return client.Database(config.AppConfig.DatabaseName), nil
}

// CloseDB disconnects the global client, if any.
func CloseDB(ctx context.Context) error {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Disconnect(ctx)
}

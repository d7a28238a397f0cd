package client

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reserbot/pkg/logger"
)

type MongoClient struct {
	Client *mongo.Client
}

// NewMongoClient builds the store client. The driver connects lazily, and
// neither a rejected URI nor a failed startup ping stops the process: bad
// store configuration surfaces as store-call failures on the request path,
// not as a startup failure.
func NewMongoClient(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) *MongoClient {
	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Warn("Invalid MongoDB client options, store calls will fail until configuration is fixed",
			"error", err,
		)
		return &MongoClient{}
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Warn("MongoDB not reachable at startup, store calls will fail until it is",
			"error", err,
		)
		return &MongoClient{Client: client}
	}

	log.Info("Successfully connected to MongoDB")
	return &MongoClient{Client: client}
}

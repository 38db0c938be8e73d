// Package data owns the MongoDB client used by the repositories.
//
// A Data value is created once at startup and released with Close at
// shutdown:
//
//	d, err := data.New(ctx, cfg.Data.MongoDB, log)
//	if err != nil {
//	    return err
//	}
//	defer d.Close(context.Background())
//
//	repo := repository.NewBlogPostRepository(d.Collection(), log)
package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ncobase/blogpost/config"
	"github.com/ncobase/blogpost/logging/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabase is used when the connection URI names no database.
const DefaultDatabase = "blog-app"

// DefaultCollection holds blog post documents.
const DefaultCollection = "blogPosts"

// Data encapsulates the data layer dependencies.
type Data struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *logger.Logger
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, cfg *config.MongoDB, log *logger.Logger) (*Data, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongodb: uri is empty")
	}

	dbName, err := DatabaseName(cfg)
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	collName := cfg.Collection
	if collName == "" {
		collName = DefaultCollection
	}

	db := client.Database(dbName)
	log.Info(ctx, "connected to MongoDB", "database", dbName, "collection", collName)

	return &Data{
		client:     client,
		collection: db.Collection(collName),
		logger:     log,
	}, nil
}

// DatabaseName resolves the database: the explicit setting first, then the
// path of the connection URI, then DefaultDatabase.
func DatabaseName(cfg *config.MongoDB) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb uri: %w", err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultDatabase, nil
}

// Ping checks that the primary is reachable.
func (d *Data) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Collection returns the blog post collection.
func (d *Data) Collection() *mongo.Collection {
	return d.collection
}

// Close closes the MongoDB connection.
func (d *Data) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	d.logger.Info(ctx, "disconnected from MongoDB")
	return nil
}

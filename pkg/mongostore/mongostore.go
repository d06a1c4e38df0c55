package mongostore

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// Client holds the MongoDB connection and the database handle. A nil *Client
// is a valid "store unavailable" state; repositories check for it.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Config holds MongoDB connection details.
type Config struct {
	URI      string
	Database string
}

// NewClient connects to MongoDB and pings it to verify the connection.
// Callers may tolerate the returned error and run without a store.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("no MongoDB URI configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort: release the half-open connection before bailing.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("MongoDB client connected, using database %q", cfg.Database)

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Close disconnects the underlying MongoDB client.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// Collection returns a handle to the named collection.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// DatabaseName returns the name of the configured database.
func (c *Client) DatabaseName() string {
	return c.db.Name()
}

// Ping verifies the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("MongoDB client is not available")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists the collection names present in the database.
func (c *Client) CollectionNames(ctx context.Context) ([]string, error) {
	if c == nil || c.db == nil {
		return nil, fmt.Errorf("MongoDB client is not available")
	}
	names, err := c.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

package client

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stlucia/pkg/logger"
)

var ErrStoreUnavailable = errors.New("document store is not available")

// CollectionProvider resolves a collection on the shared store connection.
// Repositories depend on it instead of *MongoClient so tests can substitute
// fakes. It fails with ErrStoreUnavailable when the store is not configured.
type CollectionProvider interface {
	Collection(name string) (*mongo.Collection, error)
}

var _ CollectionProvider = (*MongoClient)(nil)

// MongoClient holds the process-wide store connection. A MongoClient whose
// Client is nil represents a store that could not be configured; every
// operation on it returns ErrStoreUnavailable.
type MongoClient struct {
	Client   *mongo.Client
	database string
}

// NewMongoClient connects to uri. An empty uri or a failed connect yields an
// unconfigured client; an unreachable server is only logged so the diagnostic
// endpoints can still report it.
func NewMongoClient(log *logger.Logger, uri, database string, connTimeout time.Duration) *MongoClient {
	if uri == "" {
		log.Warn("MongoDB URI not configured, store operations will fail")
		return &MongoClient{database: database}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	opts := options.Client().
		SetServerSelectionTimeout(connTimeout).
		ApplyURI(uri)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Error("Failed to connect to MongoDB, store operations will fail", "error", err)
		return &MongoClient{database: database}
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Warn("MongoDB ping failed, continuing without a verified connection", "error", err)
	} else {
		log.Info("Successfully connected to MongoDB", "database", database)
	}

	return &MongoClient{Client: client, database: database}
}

// NewMongoClientFrom wraps an already connected driver client.
func NewMongoClientFrom(client *mongo.Client, database string) *MongoClient {
	return &MongoClient{Client: client, database: database}
}

func (c *MongoClient) Connected() bool {
	return c != nil && c.Client != nil
}

func (c *MongoClient) DatabaseName() string {
	return c.database
}

func (c *MongoClient) Database() (*mongo.Database, error) {
	if !c.Connected() {
		return nil, ErrStoreUnavailable
	}
	return c.Client.Database(c.database), nil
}

func (c *MongoClient) Collection(name string) (*mongo.Collection, error) {
	db, err := c.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

func (c *MongoClient) ListCollectionNames(ctx context.Context) ([]string, error) {
	db, err := c.Database()
	if err != nil {
		return nil, err
	}
	return db.ListCollectionNames(ctx, bson.D{})
}

func (c *MongoClient) Ping(ctx context.Context) error {
	if !c.Connected() {
		return ErrStoreUnavailable
	}
	return c.Client.Ping(ctx, nil)
}

func (c *MongoClient) Disconnect(ctx context.Context) error {
	if !c.Connected() {
		return nil
	}
	return c.Client.Disconnect(ctx)
}

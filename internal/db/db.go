package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo wraps the client and database handles. It is created once at
// startup and passed explicitly to every repository constructor.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect initializes the MongoDB connection using the provided URI and
// verifies it with a ping.
func Connect(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &Mongo{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Collection returns a collection handle from the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the client (call in main defer).
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

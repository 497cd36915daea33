package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CatalogCollections lists the read-mostly catalog collections.
var CatalogCollections = []string{"themes", "decorations", "food", "drinks", "activities"}

const usersCollection = "users"

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the indexes the application relies on. The unique
// index on users.email is what turns a signup race into a duplicate-key
// failure instead of two records; the accessToken index backs the
// per-request token lookup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(usersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "accessToken", Value: 1}},
		},
	})
	return err
}

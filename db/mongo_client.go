package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"nearby-restaurants/logging"
)

const mongoConnectTimeout = 10 * time.Second

// ConnectMongo opens a client for uri, pings the primary and returns the
// named database.
func ConnectMongo(ctx context.Context, uri, database string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "could not create mongo client")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "could not connect to mongo")
	}

	logger := logging.For("MongoClient")
	logger.Info().Str("database", database).Msg("connected to mongo")
	return client.Database(database), nil
}

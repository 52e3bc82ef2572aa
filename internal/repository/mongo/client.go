package mongo

import (
	"context"
	"time"

	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/config"
	ierr "github.com/KwameBrempong/bvester-aws-platform-sub004/internal/errors"
	"github.com/KwameBrempong/bvester-aws-platform-sub004/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second
	maxPoolSize    = 100
)

// NewClient connects to the configured MongoDB deployment and verifies the
// connection with a ping
func NewClient(cfg *config.Configuration, log *logger.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetMaxPoolSize(maxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Unable to connect to the profile store").
			Mark(ierr.ErrDatabase)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Profile store did not respond to ping").
			Mark(ierr.ErrDatabase)
	}

	log.Infow("connected to mongodb", "database", cfg.Mongo.Database)
	return client, nil
}

// NewDatabase returns the configured database handle
func NewDatabase(client *mongo.Client, cfg *config.Configuration) *mongo.Database {
	return client.Database(cfg.Mongo.Database)
}

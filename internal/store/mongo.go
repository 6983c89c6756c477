package store

import (
	"context"
	"fmt"

	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB wraps the document store client and the database handle holding
// the projects collection. Like [DB], it is constructed once at startup and
// handed by reference to every component that needs it.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to the document store described by cfg, verifies
// the connection with a ping, and ensures the unique indexes that back the
// per-user uniqueness invariants:
//
//   - {userId, name} unique — one user cannot hold two projects with the
//     same name;
//   - {userId, githubPath} unique, partial on documents that carry a
//     githubPath — one user cannot import the same repository twice.
//
// Enforcing uniqueness at the index level (instead of check-then-insert in
// application code) keeps the invariant under concurrent requests.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during document store connection")
		return nil, fmt.Errorf("error occured during document store connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting document store (ping)")
		return nil, err
	}

	db := &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}

	if err = db.ensureProjectIndexes(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating project indexes")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to document store successfully")

	return db, nil
}

const (
	projectNameIndex = "userId_1_name_1"
	projectPathIndex = "userId_1_githubPath_1"
)

func (m *MongoDB) ensureProjectIndexes(ctx context.Context) error {
	collection := m.database.Collection("projects")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "name", Value: 1}},
			Options: options.Index().SetName(projectNameIndex).SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "githubPath", Value: 1}},
			Options: options.Index().
				SetName(projectPathIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "githubPath", Value: bson.D{{Key: "$exists", Value: true}}}}),
		},
	})
	if err != nil {
		return fmt.Errorf("error ensuring project indexes: %w", err)
	}

	return nil
}

// Collection returns a handle to the named collection within the configured
// database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// Ping reports document store reachability for the health endpoint.
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client. Part of the
// init → serve → shutdown lifecycle driven from cmd/server.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

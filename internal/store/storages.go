package store

import (
	"context"

	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/migrations"
)

// Storages aggregates all repositories together with the raw datastore
// handles needed for the shutdown sequence.
type Storages struct {
	UserRepository    UserRepository
	ProjectRepository ProjectRepository

	db    *DB
	mongo *MongoDB
}

// NewStorages connects both datastores, runs relational migrations, and
// wires the repositories. The returned aggregate owns the connection
// handles; callers drive their lifecycle through [Storages.Close].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, err
	}

	mongoDB, err := NewConnectMongo(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProjectRepository: NewProjectRepository(mongoDB, log),
		db:                db,
		mongo:             mongoDB,
	}, nil
}

// Close releases both datastore handles. Called once during shutdown after
// the HTTP server has drained.
func (s *Storages) Close(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
	}
	if s.mongo != nil {
		if err := s.mongo.Close(ctx); err != nil {
			return err
		}
	}
	return nil
}

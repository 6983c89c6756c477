package service

import (
	"context"
	"time"

	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/store"
	"github.com/dkorolev/repoboard/models"
)

// healthPingTimeout bounds each datastore ping so that a dead store cannot
// stall the health endpoint.
const healthPingTimeout = 2 * time.Second

// healthService reports per-datastore reachability. The endpoint built on
// top of it always answers 200; only the booleans in the payload change.
type healthService struct {
	userRepository    store.UserRepository
	projectRepository store.ProjectRepository
	logger            *logger.Logger
}

// NewHealthService constructs a HealthService probing both repositories.
func NewHealthService(userRepository store.UserRepository, projectRepository store.ProjectRepository, logger *logger.Logger) HealthService {
	return &healthService{
		userRepository:    userRepository,
		projectRepository: projectRepository,
		logger:            logger,
	}
}

// Check pings both datastores and reports their reachability together with
// an overall status string: "healthy" only when both answer.
func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	log := logger.FromContext(ctx)

	pgAlive := h.ping(ctx, h.userRepository.Ping)
	mongoAlive := h.ping(ctx, h.projectRepository.Ping)

	status := "healthy"
	if !pgAlive || !mongoAlive {
		status = "unhealthy"
		log.Warn().Bool("postgresql", pgAlive).Bool("mongodb", mongoAlive).Msg("datastore unreachable")
	}

	return models.HealthResponse{
		Status:     status,
		PostgreSQL: pgAlive,
		MongoDB:    mongoAlive,
		Timestamp:  time.Now().UTC(),
	}
}

func (h *healthService) ping(ctx context.Context, probe func(context.Context) error) bool {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	return probe(ctx) == nil
}

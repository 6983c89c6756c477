package service

import (
	"github.com/dkorolev/repoboard/internal/adapter"
	"github.com/dkorolev/repoboard/internal/config"
	"github.com/dkorolev/repoboard/internal/logger"
	"github.com/dkorolev/repoboard/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProjectService ProjectService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	repoProvider := adapter.NewGitHubProvider(cfg.GitHub, logger)
	commentProvider := adapter.NewCommentProvider(cfg.AI, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ProjectService: NewProjectService(storages.ProjectRepository, repoProvider, commentProvider, logger),
		HealthService:  NewHealthService(storages.UserRepository, storages.ProjectRepository, logger),
	}
}

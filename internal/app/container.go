// Package app provides the dependency injection container for the application.
package app

import (
	"context"

	"github.com/croftworks/prsync/internal/domain"
	"github.com/croftworks/prsync/internal/infra/githubapi"
	"github.com/croftworks/prsync/internal/infra/projects"
	"github.com/croftworks/prsync/internal/usecase"
	"go.uber.org/zap"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Issues   domain.IssueService
	Projects domain.ProjectService
	Logger   *zap.Logger
	Config   domain.Config
}

// New creates a new Container with live API clients.
func New(ctx context.Context, cfg domain.Config, logger *zap.Logger) *Container {
	return &Container{
		Issues:   githubapi.NewClient(ctx, cfg),
		Projects: projects.NewClient(cfg, logger),
		Logger:   logger,
		Config:   cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg domain.Config, issues domain.IssueService, projectsSvc domain.ProjectService, logger *zap.Logger) *Container {
	return &Container{
		Issues:   issues,
		Projects: projectsSvc,
		Logger:   logger,
		Config:   cfg,
	}
}

// SyncPRUseCase returns a new SyncPR use case.
func (c *Container) SyncPRUseCase() *usecase.SyncPR {
	return usecase.NewSyncPR(c.Issues, c.Projects, c.Logger)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Issues, c.Projects)
}

// ListFieldsUseCase returns a new ListFields use case.
func (c *Container) ListFieldsUseCase() *usecase.ListFields {
	return usecase.NewListFields(c.Projects)
}

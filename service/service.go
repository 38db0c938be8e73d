// Package service contains the request rules of the blog post API.
package service

import (
	"context"

	"github.com/ncobase/blogpost/data/repository"
	"github.com/ncobase/blogpost/logging/logger"
)

// Pinger reports whether the datastore is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Service aggregates all business logic services.
type Service struct {
	BlogPost *BlogPostService
	Health   *HealthService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(repo repository.BlogPostRepository, pinger Pinger, logger *logger.Logger) *Service {
	return &Service{
		BlogPost: NewBlogPostService(repo, logger),
		Health:   NewHealthService(pinger),
	}
}

// HealthService checks datastore connectivity.
type HealthService struct {
	pinger Pinger
}

// NewHealthService creates a new health service.
func NewHealthService(pinger Pinger) *HealthService {
	return &HealthService{pinger: pinger}
}

// Check pings the datastore.
func (s *HealthService) Check(ctx context.Context) error {
	return s.pinger.Ping(ctx)
}

package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/party-planner/internal/domain/entity"
	repo "github.com/oksasatya/party-planner/internal/domain/repository"
)

var ErrUnknownCatalog = errors.New("unknown catalog")

// CatalogService serves the read-only catalog collections. All five
// collections share one document shape, so a single service fronts them
// keyed by collection name.
type CatalogService struct {
	Repos  map[string]repo.CatalogRepository
	Logger *logrus.Logger
}

func NewCatalogService(repos map[string]repo.CatalogRepository, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repos: repos, Logger: logger}
}

func (s *CatalogService) repo(catalog string) (repo.CatalogRepository, error) {
	r, ok := s.Repos[catalog]
	if !ok {
		return nil, ErrUnknownCatalog
	}
	return r, nil
}

func (s *CatalogService) List(ctx context.Context, catalog string) ([]entity.CatalogItem, error) {
	r, err := s.repo(catalog)
	if err != nil {
		return nil, err
	}
	return r.All(ctx)
}

func (s *CatalogService) Get(ctx context.Context, catalog, id string) (*entity.CatalogItem, error) {
	r, err := s.repo(catalog)
	if err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}

func (s *CatalogService) ListByType(ctx context.Context, catalog, typeTag string) ([]entity.CatalogItem, error) {
	r, err := s.repo(catalog)
	if err != nil {
		return nil, err
	}
	return r.ByType(ctx, typeTag)
}

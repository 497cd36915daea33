package repository

import (
	"context"

	"github.com/oksasatya/party-planner/internal/domain/entity"
)

// CatalogRepository reads one catalog collection (themes, decorations,
// food, drinks or activities).
type CatalogRepository interface {
	All(ctx context.Context) ([]entity.CatalogItem, error)
	ByID(ctx context.Context, id string) (*entity.CatalogItem, error)
	// ByType returns items whose type array contains the given tag,
	// e.g. "kids" or "grownup".
	ByType(ctx context.Context, typeTag string) ([]entity.CatalogItem, error)
}

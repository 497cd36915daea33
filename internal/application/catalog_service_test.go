package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/party-planner/internal/domain/entity"
	repo "github.com/oksasatya/party-planner/internal/domain/repository"
)

type fakeCatalogRepo struct {
	items []entity.CatalogItem
}

func (f *fakeCatalogRepo) All(_ context.Context) ([]entity.CatalogItem, error) {
	return f.items, nil
}

func (f *fakeCatalogRepo) ByID(_ context.Context, id string) (*entity.CatalogItem, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			return &f.items[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeCatalogRepo) ByType(_ context.Context, typeTag string) ([]entity.CatalogItem, error) {
	out := []entity.CatalogItem{}
	for _, it := range f.items {
		for _, tag := range it.Type {
			if tag == typeTag {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

var _ repo.CatalogRepository = (*fakeCatalogRepo)(nil)

func newCatalogService() *CatalogService {
	themes := &fakeCatalogRepo{items: []entity.CatalogItem{
		{ID: primitive.NewObjectID(), Name: "Dinosaur World", Type: []string{"kids"}},
		{ID: primitive.NewObjectID(), Name: "Casino Night", Type: []string{"grownup"}},
		{ID: primitive.NewObjectID(), Name: "Garden Party", Type: []string{"kids", "grownup"}},
	}}
	return NewCatalogService(map[string]repo.CatalogRepository{"themes": themes}, nil)
}

func TestCatalogList(t *testing.T) {
	svc := newCatalogService()

	items, err := svc.List(context.Background(), "themes")
	require.NoError(t, err)
	assert.Len(t, items, 3)

	_, err = svc.List(context.Background(), "balloons")
	assert.ErrorIs(t, err, ErrUnknownCatalog)
}

func TestCatalogGet(t *testing.T) {
	svc := newCatalogService()

	all, err := svc.List(context.Background(), "themes")
	require.NoError(t, err)

	item, err := svc.Get(context.Background(), "themes", all[0].ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, all[0].Name, item.Name)

	_, err = svc.Get(context.Background(), "themes", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCatalogListByType(t *testing.T) {
	svc := newCatalogService()

	kids, err := svc.ListByType(context.Background(), "themes", "kids")
	require.NoError(t, err)
	require.Len(t, kids, 2)
	for _, it := range kids {
		assert.Contains(t, it.Type, "kids")
	}
}

package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/party-planner/internal/domain/entity"
	"github.com/oksasatya/party-planner/internal/domain/repository"
)

// CatalogRepository reads one catalog collection by name.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database, collection string) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collection)}
}

func (r *CatalogRepository) All(ctx context.Context) ([]entity.CatalogItem, error) {
	return r.find(ctx, bson.M{})
}

func (r *CatalogRepository) ByID(ctx context.Context, id string) (*entity.CatalogItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	item := &entity.CatalogItem{}
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *CatalogRepository) ByType(ctx context.Context, typeTag string) ([]entity.CatalogItem, error) {
	// type is an array field; equality matches any element.
	return r.find(ctx, bson.M{"type": typeTag})
}

func (r *CatalogRepository) find(ctx context.Context, filter bson.M) ([]entity.CatalogItem, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []entity.CatalogItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

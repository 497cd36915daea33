package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/party-planner/internal/domain/entity"
	"github.com/oksasatya/party-planner/internal/domain/repository"
)

const projectsCollection = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(projectsCollection)}
}

func (r *ProjectRepository) All(ctx context.Context) ([]entity.Project, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []entity.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) ByID(ctx context.Context, id string) (*entity.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	p := &entity.Project{}
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Insert(ctx context.Context, p *entity.Project) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *ProjectRepository) Update(ctx context.Context, id string, upd repository.ProjectUpdate) (*entity.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.DueDate != nil {
		set["due_date"] = *upd.DueDate
	}
	if upd.Themes != nil {
		set["themes"] = *upd.Themes
	}
	if upd.Decorations != nil {
		set["decorations"] = *upd.Decorations
	}
	if upd.Food != nil {
		set["food"] = *upd.Food
	}
	if upd.Drinks != nil {
		set["drinks"] = *upd.Drinks
	}
	if upd.Activities != nil {
		set["activities"] = *upd.Activities
	}
	if len(set) == 0 {
		return r.ByID(ctx, id)
	}

	after := options.After
	p := &entity.Project{}
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(after)).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) AddGuest(ctx context.Context, id string, g entity.Guest) (*entity.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	after := options.After
	p := &entity.Project{}
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"guestList": g}},
		options.FindOneAndUpdate().SetReturnDocument(after)).Decode(p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)

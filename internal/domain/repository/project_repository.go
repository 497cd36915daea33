package repository

import (
	"context"

	"github.com/oksasatya/party-planner/internal/domain/entity"
)

// ProjectUpdate carries a partial project update; nil fields are left
// untouched.
type ProjectUpdate struct {
	Name        *string
	DueDate     *string
	Themes      *[]string
	Decorations *[]string
	Food        *[]string
	Drinks      *[]string
	Activities  *[]string
}

// ProjectRepository stores project-board documents.
type ProjectRepository interface {
	All(ctx context.Context) ([]entity.Project, error)
	ByID(ctx context.Context, id string) (*entity.Project, error)
	Insert(ctx context.Context, p *entity.Project) error
	Update(ctx context.Context, id string, upd ProjectUpdate) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
	AddGuest(ctx context.Context, id string, g entity.Guest) (*entity.Project, error)
}

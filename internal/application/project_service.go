package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/party-planner/internal/domain/entity"
	repo "github.com/oksasatya/party-planner/internal/domain/repository"
)

const (
	minProjectNameLength = 5
	maxProjectNameLength = 30
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectName = errors.New("project name must be 5 to 30 characters")
)

// ProjectService handles project-board CRUD and guest-list mutation.
type ProjectService struct {
	Repo   repo.ProjectRepository
	Logger *logrus.Logger
}

func NewProjectService(r repo.ProjectRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Repo: r, Logger: logger}
}

// CreateProjectInput carries a new project; catalog picks are optional.
type CreateProjectInput struct {
	Name        string
	DueDate     string
	GuestList   []entity.Guest
	Themes      []string
	Decorations []string
	Food        []string
	Drinks      []string
	Activities  []string
}

func validProjectName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	n := len(name)
	return name, n >= minProjectNameLength && n <= maxProjectNameLength
}

func (s *ProjectService) List(ctx context.Context) ([]entity.Project, error) {
	return s.Repo.All(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*entity.Project, error) {
	p, err := s.Repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*entity.Project, error) {
	name, ok := validProjectName(in.Name)
	if !ok {
		return nil, ErrInvalidProjectName
	}
	p := &entity.Project{
		Name:        name,
		DueDate:     in.DueDate,
		CreatedAt:   time.Now().UTC(),
		GuestList:   in.GuestList,
		Themes:      in.Themes,
		Decorations: in.Decorations,
		Food:        in.Food,
		Drinks:      in.Drinks,
		Activities:  in.Activities,
	}
	if p.GuestList == nil {
		p.GuestList = []entity.Guest{}
	}
	if err := s.Repo.Insert(ctx, p); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("create project failed")
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, upd repo.ProjectUpdate) (*entity.Project, error) {
	if upd.Name != nil {
		name, ok := validProjectName(*upd.Name)
		if !ok {
			return nil, ErrInvalidProjectName
		}
		upd.Name = &name
	}
	p, err := s.Repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return nil
}

func (s *ProjectService) AddGuest(ctx context.Context, id string, g entity.Guest) (*entity.Project, error) {
	p, err := s.Repo.AddGuest(ctx, id, g)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/internal/domain/entity"
	"github.com/oksasatya/party-planner/internal/domain/repository"
	"github.com/oksasatya/party-planner/pkg/response"
	"github.com/oksasatya/party-planner/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type guestPayload struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type createProjectRequest struct {
	Name        string         `json:"name" binding:"required,min=5,max=30"`
	DueDate     string         `json:"due_date"`
	GuestList   []guestPayload `json:"guestList"`
	Themes      []string       `json:"themes"`
	Decorations []string       `json:"decorations"`
	Food        []string       `json:"food"`
	Drinks      []string       `json:"drinks"`
	Activities  []string       `json:"activities"`
}

type updateProjectRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=5,max=30"`
	DueDate     *string   `json:"due_date"`
	Themes      *[]string `json:"themes"`
	Decorations *[]string `json:"decorations"`
	Food        *[]string `json:"food"`
	Drinks      *[]string `json:"drinks"`
	Activities  *[]string `json:"activities"`
}

func toGuests(in []guestPayload) []entity.Guest {
	out := make([]entity.Guest, 0, len(in))
	for _, g := range in {
		out = append(out, entity.Guest{Name: g.Name, Phone: g.Phone})
	}
	return out
}

// List GET /api/project-board/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		return
	}
	response.Success(c, http.StatusOK, projects, "projects", nil)
}

// Get GET /api/project-board/projects/:projectId
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "project", nil)
}

// Create POST /api/project-board/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), application.CreateProjectInput{
		Name:        req.Name,
		DueDate:     req.DueDate,
		GuestList:   toGuests(req.GuestList),
		Themes:      req.Themes,
		Decorations: req.Decorations,
		Food:        req.Food,
		Drinks:      req.Drinks,
		Activities:  req.Activities,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "project created", nil)
}

// Update PATCH /api/project-board/projects/:projectId
func (h *ProjectHandler) Update(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), c.Param("projectId"), repository.ProjectUpdate{
		Name:        req.Name,
		DueDate:     req.DueDate,
		Themes:      req.Themes,
		Decorations: req.Decorations,
		Food:        req.Food,
		Drinks:      req.Drinks,
		Activities:  req.Activities,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "project updated", nil)
}

// Delete DELETE /api/project-board/projects/:projectId
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("projectId")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "project removed", nil)
}

// AddGuest POST /api/project-board/projects/:projectId/guests
func (h *ProjectHandler) AddGuest(c *gin.Context) {
	var req guestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.AddGuest(c.Request.Context(), c.Param("projectId"), entity.Guest{Name: req.Name, Phone: req.Phone})
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "guest added", nil)
}

func (h *ProjectHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound):
		response.Error[any](c, http.StatusNotFound, "project not found", nil)
	case errors.Is(err, application.ErrInvalidProjectName):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).Error("project operation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
	}
}

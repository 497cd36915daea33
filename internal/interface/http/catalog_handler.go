package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/internal/domain/repository"
	"github.com/oksasatya/party-planner/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// List GET /api/{catalog}
func (h *CatalogHandler) List(catalog string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Svc.List(c.Request.Context(), catalog)
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
			return
		}
		response.Success(c, http.StatusOK, items, catalog, nil)
	}
}

// Get GET /api/{catalog}/:id
func (h *CatalogHandler) Get(catalog string) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := h.Svc.Get(c.Request.Context(), catalog, c.Param("id"))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Error[any](c, http.StatusNotFound, "id not found, try another", nil)
			} else {
				response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
			}
			return
		}
		response.Success(c, http.StatusOK, item, catalog, nil)
	}
}

// ListByType GET /api/{catalog}/type/:type
func (h *CatalogHandler) ListByType(catalog string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.Svc.ListByType(c.Request.Context(), catalog, c.Param("type"))
		if err != nil {
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
			return
		}
		response.Success(c, http.StatusOK, items, catalog, nil)
	}
}

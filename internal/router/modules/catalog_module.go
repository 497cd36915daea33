package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/party-planner/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/party-planner/internal/interface/http"
)

// CatalogModule registers the public read-only catalog routes for every
// catalog collection:
// GET /api/{catalog}, GET /api/{catalog}/:id, GET /api/{catalog}/type/:type
type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	for _, name := range mongodb.CatalogCollections {
		g := rg.Group("/" + name)
		g.GET("", m.Handler.List(name))
		g.GET("/type/:type", m.Handler.ListByType(name))
		g.GET("/:id", m.Handler.Get(name))
	}
}

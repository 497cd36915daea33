package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/internal/container"
	handlers "github.com/oksasatya/party-planner/internal/interface/http"
	"github.com/oksasatya/party-planner/internal/interface/middleware"
)

// ProjectModule wires the project board. Every route sits behind the
// token gate, reads included.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	Svc     *application.AuthService
}

func NewProjectModule(h *handlers.ProjectHandler, svc *application.AuthService) *ProjectModule {
	return &ProjectModule{Handler: h, Svc: svc}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	board := rg.Group("/project-board")
	board.Use(middleware.Auth(m.Svc))
	board.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		board.GET("/projects", m.Handler.List)
		board.POST("/projects", m.Handler.Create)
		board.GET("/projects/:projectId", m.Handler.Get)
		board.PATCH("/projects/:projectId", m.Handler.Update)
		board.DELETE("/projects/:projectId", m.Handler.Delete)
		board.POST("/projects/:projectId/guests", m.Handler.AddGuest)
	}
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/internal/container"
	handlers "github.com/oksasatya/party-planner/internal/interface/http"
	"github.com/oksasatya/party-planner/internal/interface/middleware"
)

// AuthModule wires signup/signin and the token-gated account admin routes.
// Public: POST /api/signup, POST /api/signin
// Protected: DELETE /api/users/:userId, PATCH /api/users/:userId/password
type AuthModule struct {
	Handler *handlers.AuthHandler
	Svc     *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, svc *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Svc: svc}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight per-IP limits.
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/signin", signinLimiter, m.Handler.Signin)

	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Svc))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.DELETE("/:userId", m.Handler.DeleteAccount)
		auth.PATCH("/:userId/password", m.Handler.ChangePassword)
	}
}

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/oksasatya/party-planner/pkg/response"
)

type HealthHandler struct {
	Client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{Client: client}
}

// Check GET /api/health reports liveness plus store reachability. The
// original service answered 503 on a dead database connection; the same
// signal lives here.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if h.Client != nil {
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			response.Error[any](c, http.StatusServiceUnavailable, "server unavailable", nil)
			return
		}
	}
	response.Success[any](c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/pkg/response"
)

// Auth gates protected routes on a valid bearer token. The Authorization
// header carries the raw token value; a "Bearer " prefix is tolerated.
// On success it sets userID and userEmail in the Gin context; otherwise
// the request is aborted before any downstream handler runs.
func Auth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader("Authorization"))
		token = strings.TrimPrefix(token, "Bearer ")

		u, err := svc.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, application.ErrInvalidToken) {
				response.Error[any](c, http.StatusUnauthorized, "please log in", nil)
			} else {
				response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
			}
			c.Abort()
			return
		}

		c.Set("userID", u.ID.Hex())
		c.Set("userEmail", u.Email)
		c.Next()
	}
}

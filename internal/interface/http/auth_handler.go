package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/pkg/response"
	"github.com/oksasatya/party-planner/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	Password string `json:"password" binding:"required,pwd"`
}

// Signup POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserExists):
			response.Error[any](c, http.StatusBadRequest, "user already exists", nil)
		case errors.Is(err, application.ErrPasswordTooShort), errors.Is(err, application.ErrEmailRequired):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"userId":      u.ID.Hex(),
		"email":       u.Email,
		"accessToken": u.AccessToken,
	}, "user created", nil)
}

// Signin POST /api/signin
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusBadRequest, "credentials did not match", nil)
		} else {
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"userId":      u.ID.Hex(),
		"email":       u.Email,
		"accessToken": u.AccessToken,
	}, "signed in", nil)
}

// ChangePassword PATCH /api/users/:userId/password (token gated)
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.ChangePassword(c.Request.Context(), c.Param("userId"), req.Password); err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error[any](c, http.StatusBadRequest, "user not found", nil)
		case errors.Is(err, application.ErrPasswordTooShort):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}

	response.Success[any](c, http.StatusOK, gin.H{"changed": true}, "password changed", nil)
}

// DeleteAccount DELETE /api/users/:userId (token gated)
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	if err := h.Svc.DeleteAccount(c.Request.Context(), c.Param("userId")); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Error[any](c, http.StatusBadRequest, "user not found", nil)
		} else {
			response.Error[any](c, http.StatusInternalServerError, "something went wrong", nil)
		}
		return
	}

	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "account removed", nil)
}

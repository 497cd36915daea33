package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/party-planner/internal/application"
	"github.com/oksasatya/party-planner/internal/domain/entity"
	repo "github.com/oksasatya/party-planner/internal/domain/repository"
	"github.com/oksasatya/party-planner/internal/interface/middleware"
	"github.com/oksasatya/party-planner/pkg/validation"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (f *memUserRepo) Create(_ context.Context, email, passwordHash, accessToken string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return nil, repo.ErrDuplicateEmail
		}
	}
	u := &entity.User{
		ID:          primitive.NewObjectID(),
		Email:       email,
		Password:    passwordHash,
		AccessToken: accessToken,
		CreatedAt:   time.Now().UTC(),
	}
	f.users[u.ID.Hex()] = u
	return u, nil
}

func (f *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) GetByToken(_ context.Context, token string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.AccessToken == token {
			return u, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) UpdatePasswordHash(_ context.Context, id, newHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	u.Password = newHash
	return nil
}

func (f *memUserRepo) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

var _ repo.UserRepository = (*memUserRepo)(nil)

type envelope struct {
	Status  int            `json:"status"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Error   any            `json:"error"`
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	svc := application.NewAuthService(newMemUserRepo(), nil, bcrypt.MinCost, 16)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/signup", h.Signup)
	api.POST("/signin", h.Signin)

	users := api.Group("/users")
	users.Use(middleware.Auth(svc))
	users.DELETE("/:userId", h.DeleteAccount)
	users.PATCH("/:userId/password", h.ChangePassword)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSignupValidation(t *testing.T) {
	r := newAuthRouter(t)

	// short password rejected regardless of email validity
	w, env := doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "a@b.com", "password": "short12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	w, _ = doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "not-an-email", "password": "short12"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"password": "password1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newAuthRouter(t)

	w, _ := doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "a@b.com", "password": "password1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "A@B.COM", "password": "password1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user already exists", env.Message)
}

// Walks the full account lifecycle over the wire: signup, case-insensitive
// signin with the same token, uniform credential failures, an authorized
// delete, and the token dying with the account.
func TestAccountLifecycle(t *testing.T) {
	r := newAuthRouter(t)

	w, env := doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "a@b.com", "password": "password1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := env.Data["accessToken"].(string)
	userID, _ := env.Data["userId"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, userID)
	assert.Equal(t, "a@b.com", env.Data["email"])

	// signin with different casing returns the same identity and token
	w, env = doJSON(r, http.MethodPost, "/api/signin", "", gin.H{"email": "A@B.com", "password": "password1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, env.Data["userId"])
	assert.Equal(t, token, env.Data["accessToken"])

	// wrong password and unknown email fail identically
	w1, env1 := doJSON(r, http.MethodPost, "/api/signin", "", gin.H{"email": "a@b.com", "password": "wrong-password"})
	w2, env2 := doJSON(r, http.MethodPost, "/api/signin", "", gin.H{"email": "nobody@b.com", "password": "password1"})
	assert.Equal(t, http.StatusBadRequest, w1.Code)
	assert.Equal(t, w1.Code, w2.Code)
	assert.Equal(t, env1.Message, env2.Message)
	assert.Equal(t, "credentials did not match", env1.Message)

	// delete under the token succeeds, then the token stops authorizing
	w, _ = doJSON(r, http.MethodDelete, "/api/users/"+userID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(r, http.MethodDelete, "/api/users/"+userID, token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePasswordFlow(t *testing.T) {
	r := newAuthRouter(t)

	w, env := doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "a@b.com", "password": "password1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := env.Data["accessToken"].(string)
	userID, _ := env.Data["userId"].(string)

	// unauthorized without a token
	w, _ = doJSON(r, http.MethodPatch, "/api/users/"+userID+"/password", "", gin.H{"password": "password2"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(r, http.MethodPatch, "/api/users/"+userID+"/password", token, gin.H{"password": "password2"})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(r, http.MethodPost, "/api/signin", "", gin.H{"email": "a@b.com", "password": "password1"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "old password must stop working")

	w, env = doJSON(r, http.MethodPost, "/api/signin", "", gin.H{"email": "a@b.com", "password": "password2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, token, env.Data["accessToken"], "token survives the password change")
}

func TestAdminOpsOnUnknownUser(t *testing.T) {
	r := newAuthRouter(t)

	w, env := doJSON(r, http.MethodPost, "/api/signup", "", gin.H{"email": "a@b.com", "password": "password1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := env.Data["accessToken"].(string)

	ghost := primitive.NewObjectID().Hex()
	w, env = doJSON(r, http.MethodDelete, "/api/users/"+ghost, token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user not found", env.Message)

	w, env = doJSON(r, http.MethodPatch, "/api/users/"+ghost+"/password", token, gin.H{"password": "password2"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user not found", env.Message)
}

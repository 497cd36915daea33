package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/party-planner/internal/domain/entity"
	repo "github.com/oksasatya/party-planner/internal/domain/repository"
	"github.com/oksasatya/party-planner/pkg/helpers"
)

// MinPasswordLength is the signup/change-password minimum.
const MinPasswordLength = 8

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so responses never reveal which one failed.
	ErrInvalidCredentials = errors.New("credentials did not match")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailRequired      = errors.New("email is required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService turns raw credentials into verified identity and gates
// protected operations by validated bearer token.
type AuthService struct {
	Repo       repo.UserRepository
	Logger     *logrus.Logger
	BcryptCost int
	TokenBytes int
}

func NewAuthService(r repo.UserRepository, logger *logrus.Logger, bcryptCost, tokenBytes int) *AuthService {
	return &AuthService{Repo: r, Logger: logger, BcryptCost: bcryptCost, TokenBytes: tokenBytes}
}

// NormalizeEmail lowers an email to its canonical form. Signup and signin
// share it, so the same human account can never exist twice under
// different casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates the credentials, hashes the password and creates the
// user with a freshly generated access token.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	token, err := helpers.NewAccessToken(s.TokenBytes)
	if err != nil {
		return nil, err
	}

	u, err := s.Repo.Create(ctx, email, hash, token)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("signup: create user failed")
		}
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID.Hex()).Info("user signed up")
	}
	return u, nil
}

// Signin verifies email/password and returns the user with the access
// token issued at signup. An unknown email and a wrong password produce
// the identical ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("signin: lookup failed")
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Authorize resolves a bearer token to its owning user. The decision is
// final before any protected handler runs: missing, unknown and
// previously-deleted tokens all yield ErrInvalidToken.
func (s *AuthService) Authorize(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	u, err := s.Repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("authorize: token lookup failed")
		}
		return nil, err
	}
	return u, nil
}

// ChangePassword re-hashes with the same policy as signup and stores the
// new hash. The access token is left untouched.
func (s *AuthService) ChangePassword(ctx context.Context, userID, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := helpers.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", userID).Info("password changed")
	}
	return nil
}

// DeleteAccount removes the user record; the account token stops
// authorizing requests as soon as the delete lands.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Repo.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", userID).Info("account deleted")
	}
	return nil
}

package services

import (
	"errors"
	"fmt"

	"estoque_facil_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// --- DTOs ---
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
}

// AuthService authenticates the single configured dashboard account.
// The dashboard is single-user: there is no registration, no roles and
// no user storage beyond the credentials given at startup.
type AuthService interface {
	Login(req LoginRequest) (*AuthResponse, error)
}

type authService struct {
	username     string
	passwordHash []byte
}

// NewAuthService hashes the configured password and returns the
// single-account authenticator.
func NewAuthService(username, password string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{username: username, passwordHash: hash}, nil
}

func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	if req.Username != s.username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &AuthResponse{AccessToken: token, Username: req.Username}, nil
}

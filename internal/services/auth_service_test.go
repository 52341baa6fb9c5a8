package services

import (
	"testing"
	"time"

	"estoque_facil_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesValidToken(t *testing.T) {
	utils.InitJWT("test-secret", time.Hour)

	svc, err := NewAuthService("admin", "s3nha-forte")
	require.NoError(t, err)

	resp, err := svc.Login(LoginRequest{Username: "admin", Password: "s3nha-forte"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Username)

	claims, err := utils.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	utils.InitJWT("test-secret", time.Hour)

	svc, err := NewAuthService("admin", "s3nha-forte")
	require.NoError(t, err)

	_, err = svc.Login(LoginRequest{Username: "admin", Password: "errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{Username: "outro", Password: "s3nha-forte"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

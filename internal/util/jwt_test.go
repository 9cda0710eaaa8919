package util

import (
	"testing"
	"time"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		BaseModel: model.BaseModel{ID: 5},
		Role:      model.Student,
		Email:     "s@example.com",
	}

	token, err := GenerateJWT(user, "access-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "access-secret")
	require.NoError(t, err)
	require.Equal(t, uint(5), claims.UserID)
	require.Equal(t, model.Student, claims.Role)
}

// A token signed with one secret must not verify under another; this is what
// keeps refresh tokens from being replayed as access tokens.
func TestJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 5}}

	token, err := GenerateJWT(user, "refresh-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "access-secret")
	require.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	user := &model.User{BaseModel: model.BaseModel{ID: 5}}

	token, err := GenerateJWT(user, "access-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "access-secret")
	require.Error(t, err)
}

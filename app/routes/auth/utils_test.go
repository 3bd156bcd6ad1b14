package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillcrest-academy/app/models"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{
		ID:        "0b26c0f0-15ab-4af0-9eb8-2f6f2d9d3af9",
		Email:     "j.okello@hillcrest.sch.uk",
		FirstName: "James",
		LastName:  "Okello",
		Role:      models.RoleTeacher,
	}

	token, err := GenerateJWT(user, "4f9c6d2a-8a31-4cf6-9a07-6a5a3f5f2c11")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "4f9c6d2a-8a31-4cf6-9a07-6a5a3f5f2c11", claims.SessionID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleTeacher, claims.Role)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

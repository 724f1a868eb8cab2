package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestJWTRoundTrip(t *testing.T) {
	jwtKey = []byte("test-secret")
	user := &User{
		ID:    primitive.NewObjectID(),
		Email: "a@example.com",
		Name:  "A",
		Role:  RoleAdmin,
	}

	token, err := GenerateJWT(user, time.Hour)
	assert.NoError(t, err)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestValidateJWTExpired(t *testing.T) {
	jwtKey = []byte("test-secret")
	user := &User{ID: primitive.NewObjectID(), Email: "a@example.com", Role: RoleStudent}

	token, err := GenerateJWT(user, -time.Minute)
	assert.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	jwtKey = []byte("test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}

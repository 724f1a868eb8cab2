package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User is the profile document stored in the "users" collection. The push
// token is written by the device after registering with the push gateway.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"`
	Class        string             `bson:"class,omitempty" json:"class,omitempty"`
	PushToken    string             `bson:"push_token,omitempty" json:"-"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Class    string `json:"class"`
}

type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrInvalidCredentials deliberately covers unknown email and wrong
	// password alike.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrForbidden          = errors.New("Forbidden: insufficient permissions")
	ErrNotFound           = errors.New("Student not found")
)

// UserStore is the persistence boundary for profile documents.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	SavePushToken(ctx context.Context, id, token string) error
	FindStudents(ctx context.Context) ([]*User, error)
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Register creates a student profile. Admin accounts are provisioned
// directly in the database, never through this endpoint.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("Email already registered")
	}

	hashPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &User{
		ID:           primitive.NewObjectID(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         RoleStudent,
		Class:        req.Class,
		PasswordHash: hashPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, cred Credential) (string, error) {
	user, err := s.store.FindByEmail(ctx, cred.Email)
	if err != nil || user == nil || !CheckPasswordHash(cred.Password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(user, time.Hour*24)
	if err != nil {
		return "", errors.New("Token not generated")
	}
	return token, nil
}

// ResolveSession maps an authenticated identity to its profile document.
// No profile, a malformed id, or a fetch failure all resolve to a nil user;
// downstream treats nil as "signed out".
func (s *Service) ResolveSession(ctx context.Context, userID string) (*User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		log.Println("Failed to resolve session profile:", err)
		return nil, nil
	}
	return user, nil
}

func (s *Service) RegisterPushToken(ctx context.Context, userID, token string) error {
	return s.store.SavePushToken(ctx, userID, token)
}

func (s *Service) Students(ctx context.Context, actorRole string) ([]*User, error) {
	if actorRole != RoleAdmin {
		return nil, ErrForbidden
	}
	return s.store.FindStudents(ctx)
}

func (s *Service) Student(ctx context.Context, actorRole, id string) (*User, error) {
	if actorRole != RoleAdmin {
		return nil, ErrForbidden
	}
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

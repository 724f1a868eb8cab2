package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserStore struct {
	users   []*User
	findErr error
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) SavePushToken(ctx context.Context, id, token string) error {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.PushToken = token
			return nil
		}
	}
	return errors.New("user not found")
}

func (f *fakeUserStore) FindStudents(ctx context.Context) ([]*User, error) {
	var out []*User
	for _, u := range f.users {
		if u.Role == RoleStudent {
			out = append(out, u)
		}
	}
	return out, nil
}

func createUser(t *testing.T, store *fakeUserStore, email, password, role string) *User {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	user := &User{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Name:         "Test User",
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	store.users = append(store.users, user)
	return user
}

func TestRegisterCreatesStudent(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@example.com",
		Name:     "A",
		Password: "secret1",
		Class:    "3B",
	})

	assert.NoError(t, err)
	assert.Equal(t, RoleStudent, user.Role)
	assert.Equal(t, "3B", user.Class)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)
	createUser(t, store, "a@example.com", "secret1", RoleStudent)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "a@example.com",
		Name:     "A",
		Password: "secret1",
	})

	assert.Error(t, err)
	assert.Len(t, store.users, 1)
}

func TestAuthenticateGenericFailure(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)
	createUser(t, store, "a@example.com", "secret1", RoleStudent)

	// Unknown email and wrong password must be indistinguishable.
	_, err := svc.Authenticate(context.Background(), Credential{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), Credential{Email: "a@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateIssuesToken(t *testing.T) {
	jwtKey = []byte("test-secret")
	store := &fakeUserStore{}
	svc := NewService(store)
	user := createUser(t, store, "a@example.com", "secret1", RoleStudent)

	token, err := svc.Authenticate(context.Background(), Credential{Email: "a@example.com", Password: "secret1"})
	assert.NoError(t, err)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, RoleStudent, claims.Role)
}

func TestResolveSessionNoProfile(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)

	user, err := svc.ResolveSession(context.Background(), primitive.NewObjectID().Hex())

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolveSessionFetchFailureIsNull(t *testing.T) {
	store := &fakeUserStore{findErr: errors.New("backend down")}
	svc := NewService(store)

	user, err := svc.ResolveSession(context.Background(), primitive.NewObjectID().Hex())

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestResolveSessionFindsProfile(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)
	user := createUser(t, store, "a@example.com", "secret1", RoleStudent)

	resolved, err := svc.ResolveSession(context.Background(), user.ID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, user, resolved)
}

func TestStudentsRequiresAdmin(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)
	createUser(t, store, "a@example.com", "secret1", RoleStudent)
	createUser(t, store, "b@example.com", "secret1", RoleAdmin)

	_, err := svc.Students(context.Background(), RoleStudent)
	assert.ErrorIs(t, err, ErrForbidden)

	students, err := svc.Students(context.Background(), RoleAdmin)
	assert.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestStudentNotFound(t *testing.T) {
	store := &fakeUserStore{}
	svc := NewService(store)

	_, err := svc.Student(context.Background(), RoleAdmin, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

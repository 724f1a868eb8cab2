package announcement

import (
	"context"
	"errors"
	"log"
	"time"

	"JainPathshala/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrForbidden = errors.New("Forbidden: insufficient permissions")

type Store interface {
	Insert(ctx context.Context, a *Announcement) error
	FindAll(ctx context.Context) ([]*Announcement, error)
}

// Notifier queues an in-app notification; "all" targets every student.
type Notifier interface {
	Notify(ctx context.Context, studentID, title, message, notificationType string) error
}

type Service struct {
	store    Store
	notifier Notifier
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

func (s *Service) List(ctx context.Context) ([]*Announcement, error) {
	return s.store.FindAll(ctx)
}

// Create stores an announcement and queues the matching broadcast
// notification. A failed notification is logged, not rolled back.
func (s *Service) Create(ctx context.Context, actorRole, actorID string, req CreateRequest) (*Announcement, error) {
	if actorRole != auth.RoleAdmin {
		return nil, ErrForbidden
	}

	a := &Announcement{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		Content:   req.Content,
		Priority:  req.Priority,
		CreatedBy: actorID,
		CreatedAt: time.Now(),
	}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, err
	}

	if err := s.notifier.Notify(ctx, "all", a.Title, a.Content, "announcement"); err != nil {
		log.Println("Failed to queue announcement notification:", err)
	}
	return a, nil
}

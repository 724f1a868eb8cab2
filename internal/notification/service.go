package notification

import (
	"context"
	"errors"
	"log"
	"time"

	"JainPathshala/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrForbidden = errors.New("Forbidden: insufficient permissions")

// Store is the persistence boundary for notification documents.
type Store interface {
	Insert(ctx context.Context, n *Notification) error
	FindForStudent(ctx context.Context, studentID string) ([]*Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, studentID string) error
	FindQueued(ctx context.Context) ([]*Notification, error)
	MarkDelivered(ctx context.Context, id primitive.ObjectID) error
}

// UserDirectory resolves push targets from the users collection.
type UserDirectory interface {
	FindByID(ctx context.Context, id string) (*auth.User, error)
	FindStudents(ctx context.Context) ([]*auth.User, error)
}

// Pusher delivers one message to one device token.
type Pusher interface {
	Send(ctx context.Context, token, title, body string) error
}

type Service struct {
	store Store
	users UserDirectory
	push  Pusher
}

func NewService(store Store, users UserDirectory, push Pusher) *Service {
	return &Service{store: store, users: users, push: push}
}

// Send queues notifications on behalf of an admin. An empty target list means
// broadcast: a single document addressed to the "all" sentinel. Otherwise one
// document is written per target student.
func (s *Service) Send(ctx context.Context, actorRole string, req SendRequest) error {
	if actorRole != auth.RoleAdmin {
		return ErrForbidden
	}

	if len(req.StudentIDs) == 0 {
		return s.Notify(ctx, BroadcastTarget, req.Title, req.Message, req.Type)
	}
	for _, studentID := range req.StudentIDs {
		if err := s.Notify(ctx, studentID, req.Title, req.Message, req.Type); err != nil {
			return err
		}
	}
	return nil
}

// Notify queues a single notification document. Other modules use this to
// fan out attendance, gatha and announcement events.
func (s *Service) Notify(ctx context.Context, studentID, title, message, notificationType string) error {
	n := &Notification{
		ID:        primitive.NewObjectID(),
		StudentID: studentID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Read:      false,
		Delivery:  DeliveryQueued,
		CreatedAt: time.Now(),
	}
	return s.store.Insert(ctx, n)
}

func (s *Service) ListForStudent(ctx context.Context, studentID string) ([]*Notification, error) {
	return s.store.FindForStudent(ctx, studentID)
}

func (s *Service) MarkRead(ctx context.Context, id primitive.ObjectID, studentID string) error {
	return s.store.MarkRead(ctx, id, studentID)
}

// DeliverQueued pushes every queued notification to its device tokens and
// marks it delivered. A failed target lookup leaves the document queued for
// the next tick; individual token failures are logged and skipped.
func (s *Service) DeliverQueued(ctx context.Context) {
	notifications, err := s.store.FindQueued(ctx)
	if err != nil {
		log.Println("Failed to fetch queued notifications:", err)
		return
	}
	for _, n := range notifications {
		tokens, err := s.resolveTokens(ctx, n.StudentID)
		if err != nil {
			log.Printf("Failed to resolve push targets for notification %s: %v", n.ID.Hex(), err)
			continue
		}
		for _, token := range tokens {
			if err := s.push.Send(ctx, token, n.Title, n.Message); err != nil {
				log.Printf("Failed to push notification %s: %v", n.ID.Hex(), err)
			}
		}
		if err := s.store.MarkDelivered(ctx, n.ID); err != nil {
			log.Printf("Failed to mark notification %s delivered: %v", n.ID.Hex(), err)
		}
	}
}

func (s *Service) resolveTokens(ctx context.Context, studentID string) ([]string, error) {
	if studentID == BroadcastTarget {
		students, err := s.users.FindStudents(ctx)
		if err != nil {
			return nil, err
		}
		var tokens []string
		for _, student := range students {
			if student.PushToken != "" {
				tokens = append(tokens, student.PushToken)
			}
		}
		return tokens, nil
	}

	user, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PushToken == "" {
		return nil, nil
	}
	return []string{user.PushToken}, nil
}

package gatha

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"JainPathshala/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrForbidden = errors.New("Forbidden: insufficient permissions")

type Store interface {
	Insert(ctx context.Context, record *Record) error
	FindByStudent(ctx context.Context, studentID string) ([]*Record, error)
}

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

func (s *Service) ListForStudent(ctx context.Context, studentID string) ([]*Record, error) {
	return s.store.FindByStudent(ctx, studentID)
}

func (s *Service) ListStudent(ctx context.Context, actorRole, studentID string) ([]*Record, error) {
	if actorRole != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.store.FindByStudent(ctx, studentID)
}

// RecordCompletion stores a graded recitation and notifies the student.
func (s *Service) RecordCompletion(ctx context.Context, actorRole string, req RecordRequest) (*Record, error) {
	if actorRole != auth.RoleAdmin {
		return nil, ErrForbidden
	}

	record := &Record{
		ID:            primitive.NewObjectID(),
		StudentID:     req.StudentID,
		GathaName:     req.GathaName,
		CompletedDate: time.Now(),
		Grade:         req.Grade,
		Notes:         req.Notes,
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("%s was recorded with grade %s", record.GathaName, record.Grade)
	if err := s.notifier.Notify(ctx, record.StudentID, "New gatha recorded", message, "gatha"); err != nil {
		log.Println("Failed to queue gatha notification:", err)
	}
	return record, nil
}

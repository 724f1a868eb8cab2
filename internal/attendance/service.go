package attendance

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"JainPathshala/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAlreadyMarked = errors.New("Attendance already marked for today")
	ErrNotPending    = errors.New("No pending review request for this record")
	ErrForbidden     = errors.New("Forbidden: insufficient permissions")
)

const reviewReason = "Attendance marked by student, pending admin review"

// Store is the persistence boundary for attendance records.
type Store interface {
	FindByStudent(ctx context.Context, studentID string) ([]Record, error)
	ExistsForDay(ctx context.Context, studentID string, dayStart, dayEnd time.Time) (bool, error)
	Insert(ctx context.Context, record *Record) error
	FindPendingReviews(ctx context.Context) ([]Record, error)
	ResolveReview(ctx context.Context, id primitive.ObjectID, status, reviewStatus string) (*Record, error)
}

// Notifier queues an in-app notification for a student.
type Notifier interface {
	Notify(ctx context.Context, studentID, title, message, notificationType string) error
}

type Service struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier, now: time.Now}
}

// Overview returns a student's records newest-first together with their
// streak and rate statistics.
func (s *Service) Overview(ctx context.Context, studentID string) ([]Record, Stats, error) {
	records, err := s.store.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := ComputeStats(records)
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, stats, nil
}

// MarkToday creates today's record in the under_review state with a pending
// review request. The day boundary is local midnight; a second attempt on the
// same calendar day is a no-op returning ErrAlreadyMarked.
func (s *Service) MarkToday(ctx context.Context, studentID string) (*Record, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	exists, err := s.store.ExistsForDay(ctx, studentID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyMarked
	}

	record := &Record{
		ID:        primitive.NewObjectID(),
		StudentID: studentID,
		Date:      now,
		Status:    StatusUnderReview,
		ReviewRequest: &ReviewRequest{
			Reason:      reviewReason,
			RequestedAt: now,
			Status:      ReviewPending,
		},
	}
	if err := s.store.Insert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) PendingReviews(ctx context.Context, actorRole string) ([]Record, error) {
	if actorRole != auth.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.store.FindPendingReviews(ctx)
}

// Approve resolves a pending review request to present.
func (s *Service) Approve(ctx context.Context, actorRole string, id primitive.ObjectID) error {
	return s.resolve(ctx, actorRole, id, StatusPresent, ReviewApproved)
}

// Reject resolves a pending review request to absent.
func (s *Service) Reject(ctx context.Context, actorRole string, id primitive.ObjectID) error {
	return s.resolve(ctx, actorRole, id, StatusAbsent, ReviewRejected)
}

func (s *Service) resolve(ctx context.Context, actorRole string, id primitive.ObjectID, status, reviewStatus string) error {
	if actorRole != auth.RoleAdmin {
		return ErrForbidden
	}
	record, err := s.store.ResolveReview(ctx, id, status, reviewStatus)
	if err != nil {
		return err
	}

	message := "Your attendance request was approved"
	if reviewStatus == ReviewRejected {
		message = "Your attendance request was rejected"
	}
	if err := s.notifier.Notify(ctx, record.StudentID, "Attendance reviewed", message, "attendance"); err != nil {
		log.Println("Failed to queue attendance notification:", err)
	}
	return nil
}

// StudentOverview is the admin view of a single student's history.
func (s *Service) StudentOverview(ctx context.Context, actorRole, studentID string) ([]Record, Stats, error) {
	if actorRole != auth.RoleAdmin {
		return nil, Stats{}, ErrForbidden
	}
	return s.Overview(ctx, studentID)
}

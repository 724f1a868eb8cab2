package announcement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	announcements []*Announcement
}

func (f *fakeStore) Insert(ctx context.Context, a *Announcement) error {
	f.announcements = append(f.announcements, a)
	return nil
}

func (f *fakeStore) FindAll(ctx context.Context) ([]*Announcement, error) {
	return f.announcements, nil
}

type fakeNotifier struct {
	targets []string
	types   []string
}

func (f *fakeNotifier) Notify(ctx context.Context, studentID, title, message, notificationType string) error {
	f.targets = append(f.targets, studentID)
	f.types = append(f.types, notificationType)
	return nil
}

func TestCreateRequiresAdmin(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, &fakeNotifier{})

	_, err := svc.Create(context.Background(), "student", "u1", CreateRequest{
		Title: "t", Content: "c", Priority: PriorityHigh,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, store.announcements)
}

func TestCreateQueuesBroadcastNotification(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	a, err := svc.Create(context.Background(), "admin", "u1", CreateRequest{
		Title: "Paryushan schedule", Content: "Details inside", Priority: PriorityHigh,
	})

	assert.NoError(t, err)
	assert.Equal(t, "u1", a.CreatedBy)
	assert.Equal(t, PriorityHigh, a.Priority)
	assert.Len(t, store.announcements, 1)
	assert.Equal(t, []string{"all"}, notifier.targets)
	assert.Equal(t, []string{"announcement"}, notifier.types)
}

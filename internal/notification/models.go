package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BroadcastTarget is the sentinel student id meaning "every student".
const BroadcastTarget = "all"

const (
	TypeAnnouncement = "announcement"
	TypeAttendance   = "attendance"
	TypeGatha        = "gatha"
)

const (
	DeliveryQueued    = "queued"
	DeliveryDelivered = "delivered"
)

// Notification is an in-app message for one student or a broadcast. Delivery
// tracks whether the background scheduler has pushed it to devices yet; the
// document itself stays visible in the feed either way.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"student_id" json:"student_id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Type      string             `bson:"type" json:"type"`
	Read      bool               `bson:"read" json:"read"`
	Delivery  string             `bson:"delivery" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

type SendRequest struct {
	Title      string   `json:"title" validate:"required"`
	Message    string   `json:"message" validate:"required"`
	Type       string   `json:"type" validate:"required,oneof=announcement attendance gatha"`
	StudentIDs []string `json:"student_ids"`
}

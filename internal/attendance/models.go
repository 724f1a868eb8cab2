package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent     = "present"
	StatusAbsent      = "absent"
	StatusUnderReview = "under_review"
)

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

// ReviewRequest is embedded in its attendance record, never stored on its
// own. It stays on the record after resolution as an audit trail.
type ReviewRequest struct {
	Reason      string    `bson:"reason" json:"reason"`
	RequestedAt time.Time `bson:"requested_at" json:"requested_at"`
	Status      string    `bson:"status" json:"status"`
}

type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     string             `bson:"student_id" json:"student_id"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status"`
	ReviewRequest *ReviewRequest     `bson:"review_request,omitempty" json:"review_request,omitempty"`
}

// Stats summarizes a student's attendance history. Rate is a whole percent;
// under_review records count toward Total but toward neither Present, Absent
// nor the rate denominator.
type Stats struct {
	Total         int `json:"total"`
	Present       int `json:"present"`
	Absent        int `json:"absent"`
	Rate          int `json:"rate"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

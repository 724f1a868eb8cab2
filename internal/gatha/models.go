package gatha

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GradeExcellent        = "excellent"
	GradeGood             = "good"
	GradeNeedsImprovement = "needs_improvement"
)

// Record is one completed gatha recitation. Students only read these;
// admins record them.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     string             `bson:"student_id" json:"student_id"`
	GathaName     string             `bson:"gatha_name" json:"gatha_name"`
	CompletedDate time.Time          `bson:"completed_date" json:"completed_date"`
	Grade         string             `bson:"grade" json:"grade"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

type RecordRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	GathaName string `json:"gatha_name" validate:"required"`
	Grade     string `json:"grade" validate:"required,oneof=excellent good needs_improvement"`
	Notes     string `json:"notes"`
}

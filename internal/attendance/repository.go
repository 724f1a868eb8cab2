package attendance

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("attendance")}
}

func (r *Repository) FindByStudent(ctx context.Context, studentID string) ([]Record, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) ExistsForDay(ctx context.Context, studentID string, dayStart, dayEnd time.Time) (bool, error) {
	filter := bson.M{
		"student_id": studentID,
		"date":       bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) Insert(ctx context.Context, record *Record) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *Repository) FindPendingReviews(ctx context.Context) ([]Record, error) {
	filter := bson.M{
		"status":                StatusUnderReview,
		"review_request.status": ReviewPending,
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ResolveReview flips the record status and the embedded review status in a
// single document write. The filter pins the pending state, so a concurrent
// resolution matches zero documents instead of overwriting the decision.
func (r *Repository) ResolveReview(ctx context.Context, id primitive.ObjectID, status, reviewStatus string) (*Record, error) {
	filter := bson.M{
		"_id":                   id,
		"status":                StatusUnderReview,
		"review_request.status": ReviewPending,
	}
	update := bson.M{"$set": bson.M{
		"status":                status,
		"review_request.status": reviewStatus,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record Record
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotPending
		}
		return nil, err
	}
	return &record, nil
}

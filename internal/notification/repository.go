package notification

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("notifications")}
}

func (r *Repository) Insert(ctx context.Context, n *Notification) error {
	_, err := r.collection.InsertOne(ctx, n)
	return err
}

// FindForStudent returns the student's own notifications plus broadcasts,
// newest first.
func (r *Repository) FindForStudent(ctx context.Context, studentID string) ([]*Notification, error) {
	filter := bson.M{"student_id": bson.M{"$in": []string{studentID, BroadcastTarget}}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var notifications []*Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets the read flag. The filter keeps students from flipping
// notifications addressed to someone else.
func (r *Repository) MarkRead(ctx context.Context, id primitive.ObjectID, studentID string) error {
	filter := bson.M{
		"_id":        id,
		"student_id": bson.M{"$in": []string{studentID, BroadcastTarget}},
	}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}

func (r *Repository) FindQueued(ctx context.Context) ([]*Notification, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"delivery": DeliveryQueued})
	if err != nil {
		return nil, err
	}
	var notifications []*Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *Repository) MarkDelivered(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"delivery": DeliveryDelivered}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}

package gatha

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("gathas")}
}

func (r *Repository) Insert(ctx context.Context, record *Record) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *Repository) FindByStudent(ctx context.Context, studentID string) ([]*Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completed_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, err
	}
	var records []*Record
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

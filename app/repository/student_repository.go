package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"careerguide/app/model"
)

// StudentRepository defines the profile document store contract.
// FindByID returns (nil, nil) when no document matches; the service layer
// maps that to its not-found error kind.
type StudentRepository interface {
	Insert(ctx context.Context, profile *model.StudentProfile) error
	FindByID(ctx context.Context, id string) (*model.StudentProfile, error)
	// UpdateByID applies the given fields with $set and reports how many
	// documents matched.
	UpdateByID(ctx context.Context, id string, fields bson.M) (int64, error)
}

type mongoStudentRepo struct {
	collection *mongo.Collection
}

func NewStudentRepository(coll *mongo.Collection) StudentRepository {
	return &mongoStudentRepo{collection: coll}
}

func (r *mongoStudentRepo) Insert(ctx context.Context, profile *model.StudentProfile) error {
	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("mongo insert student failed: %w", err)
	}
	return nil
}

func (r *mongoStudentRepo) FindByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("mongo find student failed: %w", err)
	}
	return &profile, nil
}

func (r *mongoStudentRepo) UpdateByID(ctx context.Context, id string, fields bson.M) (int64, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, fmt.Errorf("mongo update student failed: %w", err)
	}
	return res.MatchedCount, nil
}

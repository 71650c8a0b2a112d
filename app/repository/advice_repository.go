package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careerguide/app/model"
)

// ChatRepository is the append-only chat log.
type ChatRepository interface {
	Insert(ctx context.Context, message *model.ChatMessage) error
	// ListByStudent returns the student's messages newest first, capped at
	// limit.
	ListByStudent(ctx context.Context, studentID string, limit int64) ([]model.ChatMessage, error)
}

// RecommendationRepository persists generated recommendation records.
type RecommendationRepository interface {
	Insert(ctx context.Context, rec *model.CareerRecommendation) error
}

type mongoChatRepo struct {
	collection *mongo.Collection
}

func NewChatRepository(coll *mongo.Collection) ChatRepository {
	return &mongoChatRepo{collection: coll}
}

func (r *mongoChatRepo) Insert(ctx context.Context, message *model.ChatMessage) error {
	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("mongo insert chat message failed: %w", err)
	}
	return nil
}

func (r *mongoChatRepo) ListByStudent(ctx context.Context, studentID string, limit int64) ([]model.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find chat messages failed: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []model.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("mongo cursor decode failed: %w", err)
	}
	return messages, nil
}

type mongoRecommendationRepo struct {
	collection *mongo.Collection
}

func NewRecommendationRepository(coll *mongo.Collection) RecommendationRepository {
	return &mongoRecommendationRepo{collection: coll}
}

func (r *mongoRecommendationRepo) Insert(ctx context.Context, rec *model.CareerRecommendation) error {
	if _, err := r.collection.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongo insert recommendation failed: %w", err)
	}
	return nil
}

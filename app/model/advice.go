package model

import "time"

// ChatMessage is one advisor chat turn, append-only.
type ChatMessage struct {
	ID        string    `json:"id" bson:"id"`
	StudentID string    `json:"student_id" bson:"student_id"`
	Message   string    `json:"message" bson:"message"`
	Response  string    `json:"response" bson:"response"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// CareerRecommendation is one generated recommendation record.
//
// Recommendations holds whatever structured data the model returned (or the
// fallback payload); AcceptanceProbabilities holds the deterministic
// formula's output. The two are stored side by side and never reconciled.
type CareerRecommendation struct {
	ID                      string             `json:"id" bson:"id"`
	StudentID               string             `json:"student_id" bson:"student_id"`
	Recommendations         map[string]any     `json:"recommendations" bson:"recommendations"`
	AcceptanceProbabilities map[string]float64 `json:"acceptance_probabilities" bson:"acceptance_probabilities"`
	SuggestedImprovements   []string           `json:"suggested_improvements" bson:"suggested_improvements"`
	GeneratedAt             time.Time          `json:"generated_at" bson:"generated_at"`
}

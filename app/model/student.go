package model

import "time"

// Financial situation values accepted on a profile.
const (
	FinancialExcellent        = "excellent"
	FinancialGood             = "good"
	FinancialNeedsScholarship = "needs_scholarship"
	FinancialLimited          = "limited"
)

// StudentProfile is the main student document. The id is an opaque UUID
// string assigned at creation, never a Mongo ObjectID.
type StudentProfile struct {
	ID                 string    `json:"id" bson:"id"`
	Name               string    `json:"name" bson:"name"`
	Email              string    `json:"email" bson:"email"`
	University         string    `json:"university" bson:"university"`
	Faculty            string    `json:"faculty" bson:"faculty"`
	GPA                float64   `json:"gpa" bson:"gpa"`
	TotalCredits       int       `json:"total_credits" bson:"total_credits"`
	CompletedCredits   int       `json:"completed_credits" bson:"completed_credits"`
	Achievements       []string  `json:"achievements" bson:"achievements"`
	Extracurriculars   []string  `json:"extracurriculars" bson:"extracurriculars"`
	PreferredCountries []string  `json:"preferred_countries" bson:"preferred_countries"`
	FinancialSituation string    `json:"financial_situation" bson:"financial_situation"`
	CareerGoals        string    `json:"career_goals" bson:"career_goals"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// StudentProfileRequest is the create payload.
type StudentProfileRequest struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	University         string   `json:"university" validate:"required"`
	Faculty            string   `json:"faculty" validate:"required"`
	GPA                *float64 `json:"gpa" validate:"required,gte=0,lte=4"`
	TotalCredits       *int     `json:"total_credits" validate:"required,gte=0"`
	CompletedCredits   *int     `json:"completed_credits" validate:"required,gte=0"`
	Achievements       []string `json:"achievements"`
	Extracurriculars   []string `json:"extracurriculars"`
	PreferredCountries []string `json:"preferred_countries"`
	FinancialSituation string   `json:"financial_situation" validate:"required,oneof=excellent good needs_scholarship limited"`
	CareerGoals        string   `json:"career_goals" validate:"required"`
}

// StudentProfileUpdate is the partial update payload. Only non-nil fields are
// applied. Email is not listed: it is immutable after creation.
type StudentProfileUpdate struct {
	Name               *string   `json:"name"`
	University         *string   `json:"university"`
	Faculty            *string   `json:"faculty"`
	GPA                *float64  `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	TotalCredits       *int      `json:"total_credits" validate:"omitempty,gte=0"`
	CompletedCredits   *int      `json:"completed_credits" validate:"omitempty,gte=0"`
	Achievements       *[]string `json:"achievements"`
	Extracurriculars   *[]string `json:"extracurriculars"`
	PreferredCountries *[]string `json:"preferred_countries"`
	FinancialSituation *string   `json:"financial_situation" validate:"omitempty,oneof=excellent good needs_scholarship limited"`
	CareerGoals        *string   `json:"career_goals"`
}

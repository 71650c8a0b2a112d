package service

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"careerguide/app/llm"
	"careerguide/app/model"
	"careerguide/app/repository"
)

const (
	chatHistoryLimit = 50
	// Probability formula caps at 95 regardless of profile strength.
	probabilityCap = 95
	scoredMax      = 5
)

// suggestedImprovements is the fixed advice list attached to every
// recommendation record.
var suggestedImprovements = []string{
	"Increase GPA through focused study",
	"Gain research experience in your field",
	"Develop leadership skills through extracurriculars",
	"Improve language proficiency",
	"Build professional network",
}

// AdvisorService brokers LLM-backed chat and recommendations. Each call is
// fetch profile, build prompt, call model, persist, return; a model or store
// failure is terminal and leaves nothing written.
type AdvisorService interface {
	Chat(ctx context.Context, req model.ChatRequest) (*model.ChatMessage, error)
	History(ctx context.Context, studentID string) ([]model.ChatMessage, error)
	Recommend(ctx context.Context, studentID string) (*model.CareerRecommendation, error)
}

type AdvisorServiceImpl struct {
	Students        repository.StudentRepository
	Catalog         CatalogService
	Chats           repository.ChatRepository
	Recommendations repository.RecommendationRepository
	Generator       llm.TextGenerator
	Log             *zap.Logger
}

func NewAdvisorService(
	students repository.StudentRepository,
	catalog CatalogService,
	chats repository.ChatRepository,
	recommendations repository.RecommendationRepository,
	generator llm.TextGenerator,
	log *zap.Logger,
) AdvisorService {
	return &AdvisorServiceImpl{
		Students:        students,
		Catalog:         catalog,
		Chats:           chats,
		Recommendations: recommendations,
		Generator:       generator,
		Log:             log,
	}
}

func (s *AdvisorServiceImpl) Chat(ctx context.Context, req model.ChatRequest) (*model.ChatMessage, error) {
	student, err := s.Students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}

	response, err := s.Generator.Generate(ctx, "student_"+req.StudentID, CounselorSystemPrompt(student), req.Message)
	if err != nil {
		s.Log.Error("chat generation failed", zap.Error(err))
		return nil, err
	}

	message := &model.ChatMessage{
		ID:        uuid.NewString(),
		StudentID: req.StudentID,
		Message:   req.Message,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}
	if err := s.Chats.Insert(ctx, message); err != nil {
		s.Log.Error("chat persist failed", zap.Error(err))
		return nil, err
	}
	return message, nil
}

func (s *AdvisorServiceImpl) History(ctx context.Context, studentID string) ([]model.ChatMessage, error) {
	return s.Chats.ListByStudent(ctx, studentID, chatHistoryLimit)
}

func (s *AdvisorServiceImpl) Recommend(ctx context.Context, studentID string) (*model.CareerRecommendation, error) {
	student, err := s.Students.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}

	universities, err := s.Catalog.MatchUniversities(ctx, student.PreferredCountries, student.GPA)
	if err != nil {
		return nil, err
	}
	scholarships, err := s.Catalog.MatchScholarships(ctx, student.PreferredCountries)
	if err != nil {
		return nil, err
	}

	prompt := RecommendationPrompt(student, universities, scholarships)
	output, err := s.Generator.Generate(ctx, "recommendations_"+studentID, recommendationSystemPrompt, prompt)
	if err != nil {
		s.Log.Error("recommendation generation failed", zap.Error(err))
		return nil, err
	}

	recommendations, ok := parseRecommendationJSON(output)
	if !ok {
		// Availability over accuracy: an unparseable model reply degrades to
		// a fixed-shape payload instead of failing the request.
		s.Log.Warn("model output not parseable as JSON, using fallback payload",
			zap.String("student_id", studentID))
		recommendations = fallbackRecommendations(universities, scholarships)
	}

	rec := &model.CareerRecommendation{
		ID:                      uuid.NewString(),
		StudentID:               studentID,
		Recommendations:         recommendations,
		AcceptanceProbabilities: acceptanceProbabilities(student, universities),
		SuggestedImprovements:   suggestedImprovements,
		GeneratedAt:             time.Now().UTC(),
	}
	if err := s.Recommendations.Insert(ctx, rec); err != nil {
		s.Log.Error("recommendation persist failed", zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// acceptanceProbabilities scores the first 5 matched universities:
// published rate plus 10 points per GPA point above the bar plus 2 per
// achievement, capped at 95, one decimal. Independent of the model output.
func acceptanceProbabilities(student *model.StudentProfile, universities []model.University) map[string]float64 {
	probabilities := make(map[string]float64)
	for i, u := range universities {
		if i >= scoredMax {
			break
		}
		base := u.AcceptanceRate * 100
		gpaBonus := math.Max(0, (student.GPA-u.MinGPA)*10)
		achievementBonus := float64(len(student.Achievements)) * 2
		prob := math.Min(probabilityCap, base+gpaBonus+achievementBonus)
		probabilities[u.Name] = math.Round(prob*10) / 10
	}
	return probabilities
}

// parseRecommendationJSON strips markdown fences and tries to decode the
// model output as a JSON object.
func parseRecommendationJSON(output string) (map[string]any, bool) {
	cleaned := cleanJSON(output)
	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}

func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// fallbackRecommendations is the fixed-shape substitute payload.
func fallbackRecommendations(universities []model.University, scholarships []model.Scholarship) map[string]any {
	uniNames := []string{}
	for i, u := range universities {
		if i >= 3 {
			break
		}
		uniNames = append(uniNames, u.Name)
	}
	schNames := []string{}
	for i, sch := range scholarships {
		if i >= 3 {
			break
		}
		schNames = append(schNames, sch.Name)
	}
	return map[string]any{
		"universities": uniNames,
		"scholarships": schNames,
		"improvements": []string{"Improve GPA", "Gain research experience", "Learn new language"},
		"timeline":     "Start applications 6 months before deadline",
		"probabilities": map[string]any{
			"MIT":       15,
			"Oxford":    25,
			"TU Munich": 60,
		},
	}
}

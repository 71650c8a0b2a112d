package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"careerguide/app/model"
	"careerguide/app/repository"
)

// StudentService owns profile creation, lookup and partial update.
type StudentService interface {
	Create(ctx context.Context, req model.StudentProfileRequest) (*model.StudentProfile, error)
	Get(ctx context.Context, id string) (*model.StudentProfile, error)
	Update(ctx context.Context, id string, req model.StudentProfileUpdate) (*model.StudentProfile, error)
}

type StudentServiceImpl struct {
	Repo    repository.StudentRepository
	Catalog CatalogService
	Log     *zap.Logger
}

func NewStudentService(repo repository.StudentRepository, catalog CatalogService, log *zap.Logger) StudentService {
	return &StudentServiceImpl{Repo: repo, Catalog: catalog, Log: log}
}

func (s *StudentServiceImpl) Create(ctx context.Context, req model.StudentProfileRequest) (*model.StudentProfile, error) {
	now := time.Now().UTC()
	profile := &model.StudentProfile{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Email:              req.Email,
		University:         req.University,
		Faculty:            req.Faculty,
		GPA:                *req.GPA,
		TotalCredits:       *req.TotalCredits,
		CompletedCredits:   *req.CompletedCredits,
		Achievements:       orEmpty(req.Achievements),
		Extracurriculars:   orEmpty(req.Extracurriculars),
		PreferredCountries: orEmpty(req.PreferredCountries),
		FinancialSituation: req.FinancialSituation,
		CareerGoals:        req.CareerGoals,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Repo.Insert(ctx, profile); err != nil {
		return nil, err
	}

	// Bootstrap the catalog once student data exists. The check is cheap and
	// idempotent, so it runs on every creation.
	if err := s.Catalog.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}

	s.Log.Info("student profile created", zap.String("id", profile.ID))
	return profile, nil
}

func (s *StudentServiceImpl) Get(ctx context.Context, id string) (*model.StudentProfile, error) {
	profile, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (s *StudentServiceImpl) Update(ctx context.Context, id string, req model.StudentProfileUpdate) (*model.StudentProfile, error) {
	fields := updateFields(req)
	fields["updated_at"] = time.Now().UTC()

	matched, err := s.Repo.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// updateFields maps the non-nil request fields to their document keys.
func updateFields(req model.StudentProfileUpdate) bson.M {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.University != nil {
		fields["university"] = *req.University
	}
	if req.Faculty != nil {
		fields["faculty"] = *req.Faculty
	}
	if req.GPA != nil {
		fields["gpa"] = *req.GPA
	}
	if req.TotalCredits != nil {
		fields["total_credits"] = *req.TotalCredits
	}
	if req.CompletedCredits != nil {
		fields["completed_credits"] = *req.CompletedCredits
	}
	if req.Achievements != nil {
		fields["achievements"] = *req.Achievements
	}
	if req.Extracurriculars != nil {
		fields["extracurriculars"] = *req.Extracurriculars
	}
	if req.PreferredCountries != nil {
		fields["preferred_countries"] = *req.PreferredCountries
	}
	if req.FinancialSituation != nil {
		fields["financial_situation"] = *req.FinancialSituation
	}
	if req.CareerGoals != nil {
		fields["career_goals"] = *req.CareerGoals
	}
	return fields
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

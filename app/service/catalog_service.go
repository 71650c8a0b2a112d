package service

import (
	"context"

	"go.uber.org/zap"

	"careerguide/app/model"
	"careerguide/app/repository"
)

const (
	catalogListLimit  = 100
	catalogMatchLimit = 10
)

// CatalogService is read-only access to the reference collections plus the
// one-time bootstrap.
type CatalogService interface {
	ListUniversities(ctx context.Context, country, program string) ([]model.University, error)
	ListScholarships(ctx context.Context, country, field string) ([]model.Scholarship, error)

	// SeedIfEmpty inserts the bootstrap dataset into each collection that is
	// currently empty. Safe to call repeatedly; a concurrent double-seed is a
	// tolerated benign race.
	SeedIfEmpty(ctx context.Context) error

	// MatchUniversities returns up to 10 universities in one of the preferred
	// countries whose min_gpa the student meets.
	MatchUniversities(ctx context.Context, countries []string, gpa float64) ([]model.University, error)
	MatchScholarships(ctx context.Context, countries []string) ([]model.Scholarship, error)
}

type CatalogServiceImpl struct {
	Repo repository.CatalogRepository
	Log  *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, log *zap.Logger) CatalogService {
	return &CatalogServiceImpl{Repo: repo, Log: log}
}

func (s *CatalogServiceImpl) ListUniversities(ctx context.Context, country, program string) ([]model.University, error) {
	return s.Repo.ListUniversities(ctx, country, program, catalogListLimit)
}

func (s *CatalogServiceImpl) ListScholarships(ctx context.Context, country, field string) ([]model.Scholarship, error) {
	return s.Repo.ListScholarships(ctx, country, field, catalogListLimit)
}

func (s *CatalogServiceImpl) SeedIfEmpty(ctx context.Context) error {
	universityCount, err := s.Repo.CountUniversities(ctx)
	if err != nil {
		return err
	}
	if universityCount == 0 {
		if err := s.Repo.InsertUniversities(ctx, seedUniversities()); err != nil {
			return err
		}
		s.Log.Info("seeded university catalog")
	}

	scholarshipCount, err := s.Repo.CountScholarships(ctx)
	if err != nil {
		return err
	}
	if scholarshipCount == 0 {
		if err := s.Repo.InsertScholarships(ctx, seedScholarships()); err != nil {
			return err
		}
		s.Log.Info("seeded scholarship catalog")
	}
	return nil
}

func (s *CatalogServiceImpl) MatchUniversities(ctx context.Context, countries []string, gpa float64) ([]model.University, error) {
	return s.Repo.UniversitiesForStudent(ctx, countries, gpa, catalogMatchLimit)
}

func (s *CatalogServiceImpl) MatchScholarships(ctx context.Context, countries []string) ([]model.Scholarship, error) {
	return s.Repo.ScholarshipsForCountries(ctx, countries, catalogMatchLimit)
}

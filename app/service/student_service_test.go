package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"careerguide/app/model"
)

func validProfileRequest() model.StudentProfileRequest {
	return model.StudentProfileRequest{
		Name:               "Amira Hassan",
		Email:              "amira@example.com",
		University:         "Cairo University",
		Faculty:            "Computer Science",
		GPA:                ptr(3.8),
		TotalCredits:       ptr(140),
		CompletedCredits:   ptr(100),
		Achievements:       []string{"Dean's List", "Hackathon winner"},
		PreferredCountries: []string{"USA", "Germany"},
		FinancialSituation: model.FinancialNeedsScholarship,
		CareerGoals:        "Machine learning research",
	}
}

func newStudentFixture() (*mockStudentRepo, *mockCatalogRepo, StudentService) {
	studentRepo := newMockStudentRepo()
	catalogRepo := &mockCatalogRepo{}
	catalog := NewCatalogService(catalogRepo, zap.NewNop())
	svc := NewStudentService(studentRepo, catalog, zap.NewNop())
	return studentRepo, catalogRepo, svc
}

func TestCreateProfile(t *testing.T) {
	_, catalogRepo, svc := newStudentFixture()

	profile, err := svc.Create(context.Background(), validProfileRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
	assert.Equal(t, "Amira Hassan", profile.Name)

	// Omitted list fields come back as empty lists, not null.
	assert.NotNil(t, profile.Extracurriculars)
	assert.Empty(t, profile.Extracurriculars)

	// First creation bootstraps the catalog.
	assert.Len(t, catalogRepo.universities, 4)
	assert.Len(t, catalogRepo.scholarships, 3)
}

func TestCreateProfileSeedsOnlyOnce(t *testing.T) {
	_, catalogRepo, svc := newStudentFixture()

	_, err := svc.Create(context.Background(), validProfileRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validProfileRequest())
	require.NoError(t, err)

	assert.Len(t, catalogRepo.universities, 4)
	assert.Len(t, catalogRepo.scholarships, 3)
}

func TestGetProfileNotFound(t *testing.T) {
	_, _, svc := newStudentFixture()

	_, err := svc.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)

	// Still not found after unrelated activity.
	_, createErr := svc.Create(context.Background(), validProfileRequest())
	require.NoError(t, createErr)
	_, err = svc.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	studentRepo, _, svc := newStudentFixture()

	created, err := svc.Create(context.Background(), validProfileRequest())
	require.NoError(t, err)

	// Age the stored timestamps so the refresh is observable.
	past := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)
	stored := studentRepo.profiles[created.ID]
	stored.CreatedAt = past
	stored.UpdatedAt = past

	gpa := 3.9
	updated, err := svc.Update(context.Background(), created.ID, model.StudentProfileUpdate{GPA: &gpa})
	require.NoError(t, err)

	assert.Equal(t, 3.9, updated.GPA)
	assert.True(t, updated.UpdatedAt.After(past), "updated_at must advance")

	// Everything else is untouched.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Faculty, updated.Faculty)
	assert.Equal(t, created.TotalCredits, updated.TotalCredits)
	assert.Equal(t, created.Achievements, updated.Achievements)
	assert.Equal(t, created.FinancialSituation, updated.FinancialSituation)
}

func TestUpdateProfileNotFound(t *testing.T) {
	_, _, svc := newStudentFixture()

	name := "New Name"
	_, err := svc.Update(context.Background(), "missing", model.StudentProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalogFixture(t *testing.T) (*mockCatalogRepo, CatalogService) {
	t.Helper()
	repo := &mockCatalogRepo{}
	svc := NewCatalogService(repo, zap.NewNop())
	require.NoError(t, svc.SeedIfEmpty(context.Background()))
	return repo, svc
}

func TestSeedIfEmptyIdempotent(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	require.NoError(t, svc.SeedIfEmpty(context.Background()))
	require.NoError(t, svc.SeedIfEmpty(context.Background()))

	assert.Len(t, repo.universities, 4)
	assert.Len(t, repo.scholarships, 3)
}

func TestSeedAssignsUniqueIDs(t *testing.T) {
	repo, _ := newCatalogFixture(t)

	seen := map[string]bool{}
	for _, u := range repo.universities {
		assert.NotEmpty(t, u.ID)
		assert.False(t, seen[u.ID], "duplicate id %s", u.ID)
		seen[u.ID] = true
	}
}

func TestListUniversitiesCountryCaseInsensitive(t *testing.T) {
	_, svc := newCatalogFixture(t)

	lower, err := svc.ListUniversities(context.Background(), "usa", "")
	require.NoError(t, err)
	upper, err := svc.ListUniversities(context.Background(), "USA", "")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 1)
	assert.Equal(t, "MIT", lower[0].Name)
}

func TestListUniversitiesProgramSubstring(t *testing.T) {
	_, svc := newCatalogFixture(t)

	matches, err := svc.ListUniversities(context.Background(), "", "computer")
	require.NoError(t, err)
	assert.Len(t, matches, 4)

	matches, err = svc.ListUniversities(context.Background(), "", "medicine")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestListUniversitiesUnfiltered(t *testing.T) {
	_, svc := newCatalogFixture(t)

	all, err := svc.ListUniversities(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	// Insertion order preserved.
	assert.Equal(t, "MIT", all[0].Name)
	assert.Equal(t, "University of Toronto", all[3].Name)
}

func TestListScholarshipsFieldFilter(t *testing.T) {
	_, svc := newCatalogFixture(t)

	matches, err := svc.ListScholarships(context.Background(), "", "engineering")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "DAAD Scholarship", matches[0].Name)
}

func TestMatchUniversities(t *testing.T) {
	_, svc := newCatalogFixture(t)

	// GPA 3.6 clears Toronto (3.6) and TU Munich (3.5) but not MIT (3.8).
	matches, err := svc.MatchUniversities(context.Background(), []string{"USA", "Germany", "Canada"}, 3.6)
	require.NoError(t, err)

	names := []string{}
	for _, u := range matches {
		names = append(names, u.Name)
	}
	assert.ElementsMatch(t, []string{"TU Munich", "University of Toronto"}, names)
}

func TestMatchScholarships(t *testing.T) {
	_, svc := newCatalogFixture(t)

	matches, err := svc.MatchScholarships(context.Background(), []string{"UK"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Rhodes Scholarship", matches[0].Name)
}

package service

import (
	"context"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"careerguide/app/model"
)

func ptr[T any](v T) *T { return &v }

// Map-backed repository fakes standing in for the Mongo implementations.

type mockStudentRepo struct {
	profiles map[string]*model.StudentProfile
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{profiles: make(map[string]*model.StudentProfile)}
}

func (m *mockStudentRepo) Insert(_ context.Context, profile *model.StudentProfile) error {
	clone := *profile
	m.profiles[profile.ID] = &clone
	return nil
}

func (m *mockStudentRepo) FindByID(_ context.Context, id string) (*model.StudentProfile, error) {
	profile, ok := m.profiles[id]
	if !ok {
		return nil, nil
	}
	clone := *profile
	return &clone, nil
}

// UpdateByID applies the $set fields the way Mongo would: through the BSON
// layer, so document keys rather than struct fields are matched.
func (m *mockStudentRepo) UpdateByID(_ context.Context, id string, fields bson.M) (int64, error) {
	profile, ok := m.profiles[id]
	if !ok {
		return 0, nil
	}

	raw, err := bson.Marshal(profile)
	if err != nil {
		return 0, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return 0, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	merged, err := bson.Marshal(doc)
	if err != nil {
		return 0, err
	}
	var updated model.StudentProfile
	if err := bson.Unmarshal(merged, &updated); err != nil {
		return 0, err
	}
	m.profiles[id] = &updated
	return 1, nil
}

type mockCatalogRepo struct {
	universities []model.University
	scholarships []model.Scholarship
}

func (m *mockCatalogRepo) CountUniversities(_ context.Context) (int64, error) {
	return int64(len(m.universities)), nil
}

func (m *mockCatalogRepo) CountScholarships(_ context.Context) (int64, error) {
	return int64(len(m.scholarships)), nil
}

func (m *mockCatalogRepo) InsertUniversities(_ context.Context, universities []model.University) error {
	m.universities = append(m.universities, universities...)
	return nil
}

func (m *mockCatalogRepo) InsertScholarships(_ context.Context, scholarships []model.Scholarship) error {
	m.scholarships = append(m.scholarships, scholarships...)
	return nil
}

func containsFold(value, sub string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(sub))
}

func anyContainsFold(values []string, sub string) bool {
	for _, v := range values {
		if containsFold(v, sub) {
			return true
		}
	}
	return false
}

func (m *mockCatalogRepo) ListUniversities(_ context.Context, country, program string, limit int64) ([]model.University, error) {
	matches := []model.University{}
	for _, u := range m.universities {
		if country != "" && !containsFold(u.Country, country) {
			continue
		}
		if program != "" && !anyContainsFold(u.Programs, program) {
			continue
		}
		matches = append(matches, u)
		if int64(len(matches)) == limit {
			break
		}
	}
	return matches, nil
}

func (m *mockCatalogRepo) ListScholarships(_ context.Context, country, field string, limit int64) ([]model.Scholarship, error) {
	matches := []model.Scholarship{}
	for _, sch := range m.scholarships {
		if country != "" && !anyContainsFold(sch.Countries, country) {
			continue
		}
		if field != "" && !anyContainsFold(sch.Fields, field) {
			continue
		}
		matches = append(matches, sch)
		if int64(len(matches)) == limit {
			break
		}
	}
	return matches, nil
}

func (m *mockCatalogRepo) UniversitiesForStudent(_ context.Context, countries []string, gpa float64, limit int64) ([]model.University, error) {
	matches := []model.University{}
	for _, u := range m.universities {
		inCountry := false
		for _, c := range countries {
			if u.Country == c {
				inCountry = true
				break
			}
		}
		if !inCountry || u.MinGPA > gpa {
			continue
		}
		matches = append(matches, u)
		if int64(len(matches)) == limit {
			break
		}
	}
	return matches, nil
}

func (m *mockCatalogRepo) ScholarshipsForCountries(_ context.Context, countries []string, limit int64) ([]model.Scholarship, error) {
	matches := []model.Scholarship{}
	for _, sch := range m.scholarships {
		found := false
		for _, c := range countries {
			for _, sc := range sch.Countries {
				if sc == c {
					found = true
				}
			}
		}
		if !found {
			continue
		}
		matches = append(matches, sch)
		if int64(len(matches)) == limit {
			break
		}
	}
	return matches, nil
}

type mockChatRepo struct {
	messages  []model.ChatMessage
	lastLimit int64
}

func (m *mockChatRepo) Insert(_ context.Context, message *model.ChatMessage) error {
	m.messages = append(m.messages, *message)
	return nil
}

func (m *mockChatRepo) ListByStudent(_ context.Context, studentID string, limit int64) ([]model.ChatMessage, error) {
	m.lastLimit = limit
	matches := []model.ChatMessage{}
	for _, msg := range m.messages {
		if msg.StudentID == studentID {
			matches = append(matches, msg)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Timestamp.After(matches[j].Timestamp)
	})
	if int64(len(matches)) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

type mockRecommendationRepo struct {
	records []model.CareerRecommendation
}

func (m *mockRecommendationRepo) Insert(_ context.Context, rec *model.CareerRecommendation) error {
	m.records = append(m.records, *rec)
	return nil
}

// fakeGenerator is a canned TextGenerator recording every call.

type generateCall struct {
	sessionID string
	system    string
	message   string
}

type fakeGenerator struct {
	response string
	err      error
	calls    []generateCall
}

func (f *fakeGenerator) Generate(_ context.Context, sessionID, system, message string) (string, error) {
	f.calls = append(f.calls, generateCall{sessionID: sessionID, system: system, message: message})
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

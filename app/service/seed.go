package service

import (
	"github.com/google/uuid"

	"careerguide/app/model"
)

// Bootstrap catalog inserted once on first profile creation.

func seedUniversities() []model.University {
	return []model.University{
		{
			ID:                   uuid.NewString(),
			Name:                 "MIT",
			Country:              "USA",
			Ranking:              1,
			Programs:             []string{"Computer Science", "Engineering", "Business"},
			AcceptanceRate:       0.07,
			TuitionFee:           55000,
			ScholarshipsAvail:    true,
			LanguageRequirements: []string{"English"},
			MinGPA:               3.8,
			ApplicationDeadline:  "January 1",
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "Oxford University",
			Country:              "UK",
			Ranking:              2,
			Programs:             []string{"Computer Science", "Engineering", "Medicine", "Law"},
			AcceptanceRate:       0.15,
			TuitionFee:           45000,
			ScholarshipsAvail:    true,
			LanguageRequirements: []string{"English"},
			MinGPA:               3.7,
			ApplicationDeadline:  "October 15",
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "TU Munich",
			Country:              "Germany",
			Ranking:              15,
			Programs:             []string{"Engineering", "Computer Science", "Physics"},
			AcceptanceRate:       0.30,
			TuitionFee:           0,
			ScholarshipsAvail:    true,
			LanguageRequirements: []string{"German", "English"},
			MinGPA:               3.5,
			ApplicationDeadline:  "March 15",
		},
		{
			ID:                   uuid.NewString(),
			Name:                 "University of Toronto",
			Country:              "Canada",
			Ranking:              20,
			Programs:             []string{"Computer Science", "Engineering", "Business", "Medicine"},
			AcceptanceRate:       0.25,
			TuitionFee:           30000,
			ScholarshipsAvail:    true,
			LanguageRequirements: []string{"English"},
			MinGPA:               3.6,
			ApplicationDeadline:  "January 15",
		},
	}
}

func seedScholarships() []model.Scholarship {
	return []model.Scholarship{
		{
			ID:           uuid.NewString(),
			Name:         "Fulbright Scholarship",
			Provider:     "US Government",
			Countries:    []string{"USA"},
			Fields:       []string{"All"},
			Amount:       50000,
			Requirements: []string{"GPA > 3.5", "English Proficiency", "Leadership Experience"},
			Deadline:     "October 1",
			Description:  "Full scholarship for graduate studies in the USA",
		},
		{
			ID:           uuid.NewString(),
			Name:         "DAAD Scholarship",
			Provider:     "German Government",
			Countries:    []string{"Germany"},
			Fields:       []string{"Engineering", "Science", "Technology"},
			Amount:       25000,
			Requirements: []string{"GPA > 3.0", "German or English Proficiency"},
			Deadline:     "January 31",
			Description:  "Scholarship for international students in Germany",
		},
		{
			ID:           uuid.NewString(),
			Name:         "Rhodes Scholarship",
			Provider:     "Rhodes Trust",
			Countries:    []string{"UK"},
			Fields:       []string{"All"},
			Amount:       70000,
			Requirements: []string{"Exceptional Academic Record", "Leadership", "Character"},
			Deadline:     "September 1",
			Description:  "Prestigious scholarship for Oxford University",
		},
	}
}

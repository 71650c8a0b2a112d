package service

import (
	"fmt"
	"strings"

	"careerguide/app/model"
)

// Prompt builders are pure functions so they can be tested without calling
// the model.

const recommendationSystemPrompt = "You are an expert career counselor. Provide detailed, realistic recommendations in JSON format."

// CounselorSystemPrompt embeds the full profile into the chat system prompt.
func CounselorSystemPrompt(s *model.StudentProfile) string {
	return fmt.Sprintf(`You are an expert career guidance counselor specializing in helping university students with graduate school applications, scholarships, and career planning.

Student Profile:
- Name: %s
- University: %s
- Faculty: %s
- GPA: %g
- Credits: %d/%d
- Achievements: %s
- Extracurriculars: %s
- Preferred Countries: %s
- Financial Situation: %s
- Career Goals: %s

Provide personalized, actionable advice. Be encouraging but realistic. Focus on:
1. University and program recommendations
2. Scholarship opportunities
3. Application strategies
4. Profile improvement suggestions
5. Timeline planning

Keep responses concise but comprehensive.`,
		s.Name,
		s.University,
		s.Faculty,
		s.GPA,
		s.CompletedCredits, s.TotalCredits,
		strings.Join(s.Achievements, ", "),
		strings.Join(s.Extracurriculars, ", "),
		strings.Join(s.PreferredCountries, ", "),
		s.FinancialSituation,
		s.CareerGoals,
	)
}

// RecommendationPrompt asks the model for a JSON object keyed
// universities, scholarships, improvements, timeline, probabilities.
func RecommendationPrompt(s *model.StudentProfile, universities []model.University, scholarships []model.Scholarship) string {
	uniNames := make([]string, len(universities))
	for i, u := range universities {
		uniNames[i] = fmt.Sprintf("%s (%s)", u.Name, u.Country)
	}
	schNames := make([]string, len(scholarships))
	for i, sch := range scholarships {
		schNames[i] = sch.Name
	}

	return fmt.Sprintf(`Generate comprehensive career recommendations for this student:

Student Profile:
- GPA: %g
- Field: %s
- Progress: %d/%d credits
- Achievements: %s
- Extracurriculars: %s
- Preferred Countries: %s
- Financial Situation: %s
- Career Goals: %s

Available Universities: %s
Available Scholarships: %s

Please provide:
1. Top 3 university recommendations with acceptance probability (%%)
2. Top 3 scholarship opportunities with success probability (%%)
3. 5 specific profile improvement suggestions
4. Application timeline with key deadlines

Format as JSON with keys: universities, scholarships, improvements, timeline, probabilities`,
		s.GPA,
		s.Faculty,
		s.CompletedCredits, s.TotalCredits,
		strings.Join(s.Achievements, ", "),
		strings.Join(s.Extracurriculars, ", "),
		strings.Join(s.PreferredCountries, ", "),
		s.FinancialSituation,
		s.CareerGoals,
		strings.Join(uniNames, ", "),
		strings.Join(schNames, ", "),
	)
}

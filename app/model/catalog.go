package model

// University is immutable reference data seeded on first profile creation.
type University struct {
	ID                   string   `json:"id" bson:"id"`
	Name                 string   `json:"name" bson:"name"`
	Country              string   `json:"country" bson:"country"`
	Ranking              int      `json:"ranking" bson:"ranking"`
	Programs             []string `json:"programs" bson:"programs"`
	AcceptanceRate       float64  `json:"acceptance_rate" bson:"acceptance_rate"`
	TuitionFee           float64  `json:"tuition_fee" bson:"tuition_fee"`
	ScholarshipsAvail    bool     `json:"scholarships_available" bson:"scholarships_available"`
	LanguageRequirements []string `json:"language_requirements" bson:"language_requirements"`
	MinGPA               float64  `json:"min_gpa" bson:"min_gpa"`
	ApplicationDeadline  string   `json:"application_deadline" bson:"application_deadline"`
}

// Scholarship is immutable reference data seeded on first profile creation.
type Scholarship struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Provider     string   `json:"provider" bson:"provider"`
	Countries    []string `json:"countries" bson:"countries"`
	Fields       []string `json:"fields" bson:"fields"`
	Amount       float64  `json:"amount" bson:"amount"`
	Requirements []string `json:"requirements" bson:"requirements"`
	Deadline     string   `json:"deadline" bson:"deadline"`
	Description  string   `json:"description" bson:"description"`
}

package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careerguide/app/model"
)

// CatalogRepository is read-mostly access to the two reference collections.
// Writes happen only through the seed path.
type CatalogRepository interface {
	CountUniversities(ctx context.Context) (int64, error)
	CountScholarships(ctx context.Context) (int64, error)
	InsertUniversities(ctx context.Context, universities []model.University) error
	InsertScholarships(ctx context.Context, scholarships []model.Scholarship) error

	// ListUniversities filters on country and program as case-insensitive
	// substrings; empty filters match everything. Results keep insertion
	// order, capped at limit.
	ListUniversities(ctx context.Context, country, program string, limit int64) ([]model.University, error)
	ListScholarships(ctx context.Context, country, field string, limit int64) ([]model.Scholarship, error)

	// UniversitiesForStudent returns universities whose country is one of the
	// given countries and whose min_gpa does not exceed gpa.
	UniversitiesForStudent(ctx context.Context, countries []string, gpa float64, limit int64) ([]model.University, error)
	ScholarshipsForCountries(ctx context.Context, countries []string, limit int64) ([]model.Scholarship, error)
}

type mongoCatalogRepo struct {
	universities *mongo.Collection
	scholarships *mongo.Collection
}

func NewCatalogRepository(universities, scholarships *mongo.Collection) CatalogRepository {
	return &mongoCatalogRepo{universities: universities, scholarships: scholarships}
}

func (r *mongoCatalogRepo) CountUniversities(ctx context.Context) (int64, error) {
	n, err := r.universities.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongo count universities failed: %w", err)
	}
	return n, nil
}

func (r *mongoCatalogRepo) CountScholarships(ctx context.Context) (int64, error) {
	n, err := r.scholarships.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("mongo count scholarships failed: %w", err)
	}
	return n, nil
}

func (r *mongoCatalogRepo) InsertUniversities(ctx context.Context, universities []model.University) error {
	docs := make([]interface{}, len(universities))
	for i := range universities {
		docs[i] = universities[i]
	}
	if _, err := r.universities.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo insert universities failed: %w", err)
	}
	return nil
}

func (r *mongoCatalogRepo) InsertScholarships(ctx context.Context, scholarships []model.Scholarship) error {
	docs := make([]interface{}, len(scholarships))
	for i := range scholarships {
		docs[i] = scholarships[i]
	}
	if _, err := r.scholarships.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo insert scholarships failed: %w", err)
	}
	return nil
}

// containsRegex builds a case-insensitive substring match. Against an array
// field it matches when any element contains the substring.
func containsRegex(value string) primitive.Regex {
	return primitive.Regex{Pattern: value, Options: "i"}
}

func universityFilter(country, program string) bson.M {
	filter := bson.M{}
	if country != "" {
		filter["country"] = containsRegex(country)
	}
	if program != "" {
		filter["programs"] = containsRegex(program)
	}
	return filter
}

func scholarshipFilter(country, field string) bson.M {
	filter := bson.M{}
	if country != "" {
		filter["countries"] = containsRegex(country)
	}
	if field != "" {
		filter["fields"] = containsRegex(field)
	}
	return filter
}

func (r *mongoCatalogRepo) ListUniversities(ctx context.Context, country, program string, limit int64) ([]model.University, error) {
	return findUniversities(ctx, r.universities, universityFilter(country, program), limit)
}

func (r *mongoCatalogRepo) ListScholarships(ctx context.Context, country, field string, limit int64) ([]model.Scholarship, error) {
	return findScholarships(ctx, r.scholarships, scholarshipFilter(country, field), limit)
}

func (r *mongoCatalogRepo) UniversitiesForStudent(ctx context.Context, countries []string, gpa float64, limit int64) ([]model.University, error) {
	filter := bson.M{
		"country": bson.M{"$in": countries},
		"min_gpa": bson.M{"$lte": gpa},
	}
	return findUniversities(ctx, r.universities, filter, limit)
}

func (r *mongoCatalogRepo) ScholarshipsForCountries(ctx context.Context, countries []string, limit int64) ([]model.Scholarship, error) {
	filter := bson.M{"countries": bson.M{"$in": countries}}
	return findScholarships(ctx, r.scholarships, filter, limit)
}

func findUniversities(ctx context.Context, coll *mongo.Collection, filter bson.M, limit int64) ([]model.University, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongo find universities failed: %w", err)
	}
	defer cursor.Close(ctx)

	universities := []model.University{}
	if err := cursor.All(ctx, &universities); err != nil {
		return nil, fmt.Errorf("mongo cursor decode failed: %w", err)
	}
	return universities, nil
}

func findScholarships(ctx context.Context, coll *mongo.Collection, filter bson.M, limit int64) ([]model.Scholarship, error) {
	cursor, err := coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongo find scholarships failed: %w", err)
	}
	defer cursor.Close(ctx)

	scholarships := []model.Scholarship{}
	if err := cursor.All(ctx, &scholarships); err != nil {
		return nil, fmt.Errorf("mongo cursor decode failed: %w", err)
	}
	return scholarships, nil
}

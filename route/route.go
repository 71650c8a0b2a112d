package route

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"careerguide/app/llm"
	"careerguide/app/repository"
	"careerguide/app/service"
)

// RegisterRoutes wires repositories and services onto the /api group.
func RegisterRoutes(app *fiber.App, db *mongo.Database, generator llm.TextGenerator, log *zap.Logger) {
	api := app.Group("/api")

	studentRepo := repository.NewStudentRepository(db.Collection("students"))
	catalogRepo := repository.NewCatalogRepository(db.Collection("universities"), db.Collection("scholarships"))
	chatRepo := repository.NewChatRepository(db.Collection("chat_messages"))
	recommendationRepo := repository.NewRecommendationRepository(db.Collection("recommendations"))

	catalogService := service.NewCatalogService(catalogRepo, log)
	studentService := service.NewStudentService(studentRepo, catalogService, log)
	advisorService := service.NewAdvisorService(studentRepo, catalogService, chatRepo, recommendationRepo, generator, log)

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Career Guidance Platform API"})
	})

	StudentRoutes(api, studentService)
	CatalogRoutes(api, catalogService)
	AdvisorRoutes(api, advisorService)
}

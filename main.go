package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"careerguide/app/llm"
	"careerguide/config"
	"careerguide/database"
	"careerguide/route"
)

func main() {
	envErr := config.LoadEnv()

	logger := config.NewLogger(config.GetEnv("LOG_LEVEL", "info"))
	defer logger.Sync()

	if envErr != nil {
		logger.Fatal("environment load failed", zap.Error(envErr))
	}

	db, err := database.Connect(
		config.GetEnv("MONGO_URL", "mongodb://localhost:27017"),
		config.GetEnv("DB_NAME", "careerguide"),
	)
	if err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer database.Disconnect(db)

	generator, err := llm.NewGeminiClient(
		context.Background(),
		config.GetEnv("GEMINI_API_KEY", ""),
		config.GetEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	)
	if err != nil {
		logger.Fatal("Gemini client init failed", zap.Error(err))
	}

	app := config.NewFiberApp(config.GetEnv("CORS_ORIGINS", "*"))
	route.RegisterRoutes(app, db, generator, logger)

	// Shut down cleanly on SIGINT/SIGTERM so the Mongo client gets closed.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	port := config.GetEnv("PORT", "8080")
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

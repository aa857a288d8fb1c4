// @title         experts API
// @version       1.0
// @description   Ask one of two experts (baseball, cooking). The question is sent to an LLM together with the expert's system prompt.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/swagger"

	_ "github.com/artem13815/experts/docs"

	// internal imports
	"github.com/artem13815/experts/api/http"
	"github.com/artem13815/experts/api/http/handlers"
	"github.com/artem13815/experts/pkg/answer"
	"github.com/artem13815/experts/pkg/config"
	"github.com/artem13815/experts/pkg/expert"
	"github.com/artem13815/experts/pkg/health"
	"github.com/artem13815/experts/pkg/health/checkers"
	"github.com/artem13815/experts/pkg/llm/factory"
	"github.com/artem13815/experts/pkg/logger"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	settings := cfg.LLMSettings()
	experts := expert.Default()

	// The API key is not validated here; a missing key surfaces per submission
	// and on /ready.
	answerUC := answer.NewService(experts, factory.New, settings)

	readiness := health.NewService(checkers.NewLLMChecker(factory.New, settings))

	app := http.NewApp(lg)
	http.Register(app,
		handlers.NewPageHandler(answerUC, experts, lg),
		handlers.NewAskHandler(answerUC, experts, settings.Model, lg),
		handlers.NewHealthHandler(readiness),
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	lg.Info("HTTP server listening",
		"port", cfg.Port,
		"provider", settings.Provider,
		"model", settings.Model,
		"temperature", settings.Temperature,
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", "error", err)
	}
}

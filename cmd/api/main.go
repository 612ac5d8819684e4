package main

import (
	"log"

	_ "agencyops/docs"
	"agencyops/internal/adapter/http/routes"
	"agencyops/internal/infrastructure/config"
	"agencyops/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Agency Operations API
// @version         1.0
// @description     Quotes, service requests, leads and project tracking for the agency backend.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := routes.Run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

package main

import (
	"log"

	_ "po_tracker/docs"
	"po_tracker/internal/adapter/http/routes"
	"po_tracker/internal/config"
	"po_tracker/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Vendor Performance Tracker API
// @version         1.0
// @description     Purchase orders and vendor performance metrics backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	l, sync, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer sync()

	if err := routes.Run(cfg); err != nil {
		l.Fatal("Failed to startup the application", zap.Error(err))
	}
}

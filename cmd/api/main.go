package main

import (
	_ "github.com/joho/godotenv/autoload"

	_ "eprinter/docs"
	"eprinter/internal/adapter/http/routes"
	"eprinter/internal/config"
	"eprinter/internal/logger"
)

// @title           E-Printer API
// @version         1.0
// @description     Campus print shop service: document upload, page-range estimates, jobs, payments and pickup. Backed by DynamoDB, S3 and Redis.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.FromEnv()
	if err := logger.Init(cfg.Logging); err != nil {
		panic(err)
	}

	routes.Run(cfg)
}

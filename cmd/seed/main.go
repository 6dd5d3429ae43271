package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"

	"eprinter/internal/adapter/persistence/repository"
	"eprinter/internal/config"
	"eprinter/internal/infrastructure/database"
	"eprinter/internal/logger"
	"eprinter/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	if err := logger.Init(cfg.Logging); err != nil {
		panic(err)
	}

	ctx := context.Background()
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create aws config")
	}
	ddb := database.NewDynamoDBClient(awsCfg, cfg.AWS)

	admins := repository.NewAdminDynamoRepository(ddb)
	settings := repository.NewSettingsDynamoRepository(ddb)

	stats, err := seed.Run(ctx, admins, settings, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("inserts", stats.Inserts).Msg("seed completed")
}

package main

import (
	"os"
	"path/filepath"

	"school-inventory/config"
	"school-inventory/controllers/idgen"
	"school-inventory/database"
	"school-inventory/pkg/logger"
	"school-inventory/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	log := logger.New(logger.Config{
		Env:   config.APP_ENV,
		Level: config.LOG_LEVEL,
	})

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to auto migrate")
	}

	database.RunSeeders(db)

	idgen.Init()

	if err := os.MkdirAll(filepath.Join(config.UploadDir, "transformations"), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	app := fiber.New()

	routes.SetupRoutes(app, db)

	log.Info().Str("port", config.APP_PORT).Msg("Server listening")

	if err := app.Listen(":" + config.APP_PORT); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

package main

import (
	"log"

	"reviews/config"
	"reviews/database"
	"reviews/ingest"
	reviewRoutes "reviews/routers/reviewRoutes"
	reviewerRoutes "reviews/routers/reviewerRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// First boot: create the schema and load the initial dataset exactly once
	if !database.HasTables() {
		database.Migrate()
		if _, err := ingest.LoadFromCSV(config.AppConfig.CSVPath); err != nil {
			log.Fatalf("Initial ingestion failed: %v", err)
		}
	} else {
		log.Println("Database tables already exist")
	}

	app := fiber.New(fiber.Config{
		AppName: config.AppConfig.ProjectName + "-" + config.AppConfig.Environment,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE",
		AllowHeaders: "Content-Type,X-API-Key",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	reviewerRoutes.SetupReviewerRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

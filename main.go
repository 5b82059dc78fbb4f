package main

import (
	"log"

	"park_manager/config"
	"park_manager/database"
	"park_manager/handler"
	"park_manager/helper"
	"park_manager/router"
	"park_manager/system"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	if err := system.Init(database.DB); err != nil {
		// A collection that exists but does not decode is corruption, not a
		// first run; refusing to start beats silently serving empty state.
		log.Fatalf("failed to load state: %v", err)
	}
	if err := system.Auth.SeedAdmin(); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	helper.StartBackupScheduler()
	defer helper.StopBackupScheduler()
	handler.StartStatsLogger()
	defer handler.StopStatsLogger()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}

package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vta-edu/schedule-back/internal/api"
	"github.com/vta-edu/schedule-back/internal/config"
	"github.com/vta-edu/schedule-back/internal/cron"
	"github.com/vta-edu/schedule-back/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system env")
	}

	cfg := config.Load()

	db.InitDB(cfg.DBUrl)

	r := api.SetupRouter()

	// Start cron jobs
	cron.StartJobs()

	log.Println("Server running on :" + cfg.Port)
	r.Run(":" + cfg.Port)
}

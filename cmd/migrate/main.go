package main

import (
	"flag"
	"log"

	"mentorloop/internal/config"
	"mentorloop/internal/database"
	"mentorloop/internal/logger"
)

func main() {
	dir := flag.String("dir", "database/migrations", "directory containing *.up.sql migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer l.Sync()

	db, err := database.NewMigrateOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, *dir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}

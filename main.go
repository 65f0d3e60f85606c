package main

import (
	"context"
	"log"

	"wolfboard/adapters/postgres"
	"wolfboard/app"
	"wolfboard/internal/config"
	"wolfboard/internal/errors"
	"wolfboard/internal/migration"
	"wolfboard/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	// Run migrations
	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	gin.SetMode(appConfig.Server.GinMode)

	// Wire repositories and services
	ratings := postgres.NewRatingRepository(db)
	ledger := postgres.NewResultRepository(db)
	scorer := app.NewScoreService(ratings, ledger)
	leaderboard := app.NewLeaderboardService(ledger, ratings)

	// Start the server
	server := ui.NewServer(scorer, leaderboard, ledger)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}

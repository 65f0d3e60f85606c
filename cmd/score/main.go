// Batch scorer: reads finalized game-record JSON files from the results
// directory and folds each unscored game into rating state, printing the
// rating transitions per participant.
package main

import (
	"context"
	"errors"
	"log"

	"wolfboard/adapters/file"
	"wolfboard/adapters/postgres"
	"wolfboard/app"
	"wolfboard/domain/core"
	"wolfboard/internal/config"
	"wolfboard/internal/migration"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := migration.NewRunner().Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ratings := postgres.NewRatingRepository(db)
	ledger := postgres.NewResultRepository(db)
	scorer := app.NewScoreService(ratings, ledger)
	source := file.NewResultsReader(appConfig.Paths.ResultsDir)

	games, err := source.ListGames(ctx)
	if err != nil {
		log.Fatalf("Failed to load game records: %v", err)
	}
	log.Printf("Found %d game records in %s", len(games), appConfig.Paths.ResultsDir)

	var scored, skipped, rejected int
	for _, rec := range games {
		result, err := scorer.ScoreAndPersist(ctx, rec)
		if err != nil {
			if errors.Is(err, core.ErrGameAlreadyScored) {
				skipped++
				continue
			}
			if core.IsRejectionError(err) {
				rejected++
				log.Printf("Rejected game %s: %v", rec.GameID, err)
				continue
			}
			log.Fatalf("Scoring game %s failed: %v", rec.GameID, err)
		}

		scored++
		log.Printf("Scored game %s (winner: %s)", result.GameID, result.Winner)
		for _, u := range result.RatingUpdates {
			sign := "+"
			if u.Delta < 0 {
				sign = ""
			}
			log.Printf("  %s [%s]: %.0f -> %.0f (%s%d)",
				u.AgentID, u.Class, u.Before, u.After, sign, u.Delta)
		}
	}

	log.Printf("Summary: %d scored, %d skipped, %d rejected", scored, skipped, rejected)
}

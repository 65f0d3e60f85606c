// Leaderboard export: builds the current standings and writes the Excel
// workbook plus the markdown/HTML report into the export directory.
package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"wolfboard/adapters/excel"
	"wolfboard/adapters/postgres"
	"wolfboard/app"
	"wolfboard/internal/config"
	"wolfboard/internal/report"

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

	ratings := postgres.NewRatingRepository(db)
	ledger := postgres.NewResultRepository(db)
	leaderboard := app.NewLeaderboardService(ledger, ratings)

	board, err := leaderboard.Build(context.Background())
	if err != nil {
		log.Fatalf("Failed to build leaderboard: %v", err)
	}

	if err := os.MkdirAll(appConfig.Paths.ExportDir, 0o755); err != nil {
		log.Fatalf("Failed to create export directory: %v", err)
	}

	xlsxPath := filepath.Join(appConfig.Paths.ExportDir, "leaderboard.xlsx")
	if err := excel.NewExporter().Export(board, xlsxPath); err != nil {
		log.Fatalf("Excel export failed: %v", err)
	}

	gen := report.NewGenerator()
	mdPath := filepath.Join(appConfig.Paths.ExportDir, "standings.md")
	if err := os.WriteFile(mdPath, []byte(gen.Markdown(board)), 0o644); err != nil {
		log.Fatalf("Writing markdown report failed: %v", err)
	}
	htmlPath := filepath.Join(appConfig.Paths.ExportDir, "standings.html")
	if err := os.WriteFile(htmlPath, gen.HTML(board), 0o644); err != nil {
		log.Fatalf("Writing HTML report failed: %v", err)
	}

	log.Printf("Exported %d rankings to %s", len(board.Rankings), appConfig.Paths.ExportDir)
}

package excel

import (
	"fmt"
	"log"
	"time"

	"wolfboard/app"
	"wolfboard/domain/scoring"

	"github.com/xuri/excelize/v2"
)

const leaderboardSheet = "Leaderboard"

// Exporter writes a leaderboard to an Excel workbook for offline analysis
type Exporter struct{}

// NewExporter creates a leaderboard exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the leaderboard rankings to an .xlsx file
func (e *Exporter) Export(board *app.Leaderboard, filePath string) error {
	startTime := time.Now()
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(leaderboardSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Rank", "Agent", "General ELO", "Werewolf ELO", "Villager ELO",
		"Games", "Wins", "Losses", "Win Rate %",
		"Games as Werewolf", "Games as Villager", "Mean Aggregate",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(leaderboardSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, r := range board.Rankings {
		row := i + 2
		values := []interface{}{
			r.Rank, r.AgentID.String(), r.GeneralRating,
			r.PoolRatings[scoring.ClassWerewolf], r.PoolRatings[scoring.ClassVillager],
			r.GamesPlayed, r.Wins, r.Losses, r.WinRate,
			r.GamesAsWolf, r.GamesAsVillage, r.MeanAggregate,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(leaderboardSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("[Exporter] wrote %d rankings to %s in %v", len(board.Rankings), filePath, time.Since(startTime))
	return nil
}

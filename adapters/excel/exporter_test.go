package excel

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"wolfboard/app"
	"wolfboard/domain/core"
	"wolfboard/domain/scoring"
)

func TestExport_RoundTrip(t *testing.T) {
	board := &app.Leaderboard{
		GeneratedAt: core.Now(),
		Rankings: []app.AgentSummary{
			{
				AgentID:       "agent-a",
				Rank:          1,
				GeneralRating: 1032,
				PoolRatings: map[scoring.RoleClass]float64{
					scoring.ClassWerewolf: 1016,
					scoring.ClassVillager: 1048,
				},
				GamesPlayed: 4, Wins: 3, Losses: 1, WinRate: 75,
				GamesAsWolf: 2, GamesAsVillage: 2, MeanAggregate: 0.58,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "leaderboard.xlsx")
	if err := NewExporter().Export(board, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(leaderboardSheet)
	if err != nil {
		t.Fatalf("Failed to read sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 ranking row, got %d rows", len(rows))
	}
	if rows[0][0] != "Rank" || rows[0][1] != "Agent" {
		t.Errorf("Unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "agent-a" {
		t.Errorf("Expected agent-a in first ranking row, got %v", rows[1])
	}
}

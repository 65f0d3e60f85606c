package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"wolfboard/app"
	"wolfboard/domain/game"
	"wolfboard/internal/testkit"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	ratings := testkit.NewInMemoryRatingRepository()
	ledger := testkit.NewInMemoryResultLedger()
	scorer := app.NewScoreService(ratings, ledger)
	leaderboard := app.NewLeaderboardService(ledger, ratings)
	return NewServer(scorer, leaderboard, ledger)
}

func doJSON(t *testing.T, s *Server, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func postFixtureGame(t *testing.T, s *Server, gameID string) *httptest.ResponseRecorder {
	t.Helper()
	rec := testkit.NewGameRecord(gameID, game.TeamVillagers)
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}
	return doJSON(t, s, http.MethodPost, "/api/games", data)
}

func TestScoreGameEndpoint(t *testing.T) {
	s := newTestServer()

	w := postFixtureGame(t, s, "game-api-1")
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		GameID  string `json:"game_id"`
		Players []any  `json:"players"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.GameID != "game-api-1" || len(result.Players) != game.PlayerCount {
		t.Errorf("Unexpected result payload: %+v", result)
	}
}

func TestScoreGameEndpoint_Conflict(t *testing.T) {
	s := newTestServer()

	if w := postFixtureGame(t, s, "game-api-2"); w.Code != http.StatusCreated {
		t.Fatalf("First submission should succeed, got %d", w.Code)
	}
	if w := postFixtureGame(t, s, "game-api-2"); w.Code != http.StatusConflict {
		t.Errorf("Resubmission should return 409, got %d", w.Code)
	}
}

func TestScoreGameEndpoint_RejectsMalformed(t *testing.T) {
	s := newTestServer()

	rec := testkit.NewGameRecord("game-api-3", game.TeamVillagers)
	delete(rec.Participants, "Player_8")
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	if w := doJSON(t, s, http.MethodPost, "/api/games", data); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Malformed composition should return 422, got %d: %s", w.Code, w.Body.String())
	}

	if w := doJSON(t, s, http.MethodPost, "/api/games", []byte("{not json")); w.Code != http.StatusBadRequest {
		t.Errorf("Unparseable body should return 400, got %d", w.Code)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	s := newTestServer()
	postFixtureGame(t, s, "game-api-4")

	w := doJSON(t, s, http.MethodGet, "/api/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var board struct {
		Rankings []struct {
			AgentID string  `json:"agent_id"`
			Rank    int     `json:"rank"`
			Rating  float64 `json:"general_elo"`
		} `json:"rankings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &board); err != nil {
		t.Fatalf("Failed to parse leaderboard: %v", err)
	}
	if len(board.Rankings) != game.PlayerCount {
		t.Errorf("Expected %d ranked agents, got %d", game.PlayerCount, len(board.Rankings))
	}
}

func TestAgentHistoryEndpoint(t *testing.T) {
	s := newTestServer()
	postFixtureGame(t, s, "game-api-5")

	if w := doJSON(t, s, http.MethodGet, "/api/agents/agent-3", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for known agent, got %d", w.Code)
	}
	if w := doJSON(t, s, http.MethodGet, "/api/agents/agent-nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown agent, got %d", w.Code)
	}
}

func TestGameEndpoints(t *testing.T) {
	s := newTestServer()
	postFixtureGame(t, s, "game-api-6")

	w := doJSON(t, s, http.MethodGet, "/api/games", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 listing games, got %d", w.Code)
	}
	var listing struct {
		TotalGames int `json:"total_games"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("Failed to parse listing: %v", err)
	}
	if listing.TotalGames != 1 {
		t.Errorf("Expected 1 game listed, got %d", listing.TotalGames)
	}

	if w := doJSON(t, s, http.MethodGet, "/api/games/game-api-6", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for stored game, got %d", w.Code)
	}
	if w := doJSON(t, s, http.MethodGet, "/api/games/game-missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown game, got %d", w.Code)
	}
}

func TestReportEndpoint(t *testing.T) {
	s := newTestServer()
	postFixtureGame(t, s, "game-api-7")

	w := doJSON(t, s, http.MethodGet, "/report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Report should be HTML, got %s", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "<table>") {
		t.Error("Report should render the standings table")
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer()
	if w := doJSON(t, s, http.MethodGet, "/healthz", nil); w.Code != http.StatusOK {
		t.Errorf("Expected 200 from healthz, got %d", w.Code)
	}
}

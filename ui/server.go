package ui

import (
	"errors"
	"log"
	"net/http"

	"wolfboard/app"
	"wolfboard/domain/core"
	"wolfboard/domain/game"
	"wolfboard/internal/report"
	"wolfboard/ports"

	"github.com/gin-gonic/gin"
)

// Server exposes the scoring engine and leaderboard over HTTP
type Server struct {
	router      *gin.Engine
	scorer      *app.ScoreService
	leaderboard *app.LeaderboardService
	ledger      ports.ResultReaderPort
	reports     *report.Generator
}

// NewServer creates the API server
func NewServer(scorer *app.ScoreService, leaderboard *app.LeaderboardService, ledger ports.ResultReaderPort) *Server {
	s := &Server{
		router:      gin.Default(),
		scorer:      scorer,
		leaderboard: leaderboard,
		ledger:      ledger,
		reports:     report.NewGenerator(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/leaderboard", s.handleLeaderboard)
		api.GET("/agents/:id", s.handleAgentHistory)
		api.GET("/games", s.handleListGames)
		api.GET("/games/:id", s.handleGetGame)
		api.POST("/games", s.handleScoreGame)
	}
	s.router.GET("/report", s.handleReport)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Start runs the HTTP server
func (s *Server) Start(addr string) error {
	log.Printf("Starting wolfboard server on %s", addr)
	return s.router.Run(addr)
}

// handleScoreGame accepts a finalized game record, scores it, and folds it
// into rating state. Rejected games return 422; resubmission of a scored
// game returns 409.
func (s *Server) handleScoreGame(c *gin.Context) {
	var rec game.GameRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game record: " + err.Error()})
		return
	}

	result, err := s.scorer.ScoreAndPersist(c.Request.Context(), &rec)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrGameAlreadyScored):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case core.IsRejectionError(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (s *Server) handleLeaderboard(c *gin.Context) {
	board, err := s.leaderboard.Build(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, board)
}

func (s *Server) handleAgentHistory(c *gin.Context) {
	agentID, err := core.ParseAgentID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := s.leaderboard.History(c.Request.Context(), agentID)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (s *Server) handleListGames(c *gin.Context) {
	filters := ports.ResultFilters{Limit: 100}
	if winner := c.Query("winner"); winner != "" {
		filters.Winner = &winner
	}

	results, err := s.ledger.ListResults(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_games": len(results), "games": results})
}

func (s *Server) handleGetGame(c *gin.Context) {
	gameID, err := core.ParseGameID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.ledger.GetResult(c.Request.Context(), gameID)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleReport(c *gin.Context) {
	board, err := s.leaderboard.Build(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.reports.HTML(board))
}

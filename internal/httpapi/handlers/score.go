// Package handlers implements the scoreboard's three HTTP routes:
// POST /score credits points to a user, GET /score/{userId}/position
// looks up a user's current score and rank, and GET /highscorelist
// returns the ranked leaderboard.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/scorestack/rankboard-server/internal/httpapi/dto"
	"github.com/scorestack/rankboard-server/internal/jsonx"
	"github.com/scorestack/rankboard-server/internal/rankcell"
	"github.com/scorestack/rankboard-server/internal/ranking"
	"go.uber.org/zap"
)

// MaxHighScoreListLen caps the number of rows GET /highscorelist ever
// returns, regardless of how large the ranking grows.
const MaxHighScoreListLen = 20000

// ScoreHandler serves the scoreboard's three logical operations against
// a single rankcell.Cell.
type ScoreHandler struct {
	cell         *rankcell.Cell
	log          *zap.Logger
	maxBodyBytes int64
}

// New returns a ScoreHandler bound to cell.
func New(cell *rankcell.Cell, log *zap.Logger, maxBodyBytes int64) *ScoreHandler {
	return &ScoreHandler{cell: cell, log: log.Named("score"), maxBodyBytes: maxBodyBytes}
}

// AddScore handles POST /score.
func (h *ScoreHandler) AddScore(c *gin.Context) {
	var req dto.AddScoreRequest
	if err := jsonx.ParseStrictJSONBody(c.Request, h.maxBodyBytes, &req); err != nil {
		c.Error(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
		return
	}

	userID, points, ok := req.Valid()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "userId and points are required and must not be null"})
		return
	}

	if err := h.cell.Add(userID, points); err != nil {
		if errors.Is(err, ranking.ErrCapacityExceeded) {
			c.Error(err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
			return
		}
		// Anything else is an invariant violation inside the ranking
		// engine, not a recoverable request-level condition.
		h.log.Fatal("ranking invariant violated", zap.Error(err))
	}

	c.Status(http.StatusOK)
}

// GetPosition handles GET /score/{userId}/position.
func (h *ScoreHandler) GetPosition(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		c.Error(err)
		c.Status(http.StatusNotFound)
		return
	}

	entry, ok := h.cell.Find(userID)
	if !ok {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, dto.ScoreEntry{UserID: entry.UserID, Points: entry.Score, Position: entry.Position})
}

// HighScoreList handles GET /highscorelist.
func (h *ScoreHandler) HighScoreList(c *gin.Context) {
	entries := h.cell.Top(MaxHighScoreListLen)
	list := make([]dto.ScoreEntry, 0, len(entries))
	for _, e := range entries {
		list = append(list, dto.ScoreEntry{UserID: e.UserID, Points: e.Score, Position: e.Position})
	}
	c.JSON(http.StatusOK, dto.HighScoreList{HighScores: list})
}

// Package dto holds the wire-level request/response shapes for the
// scoreboard HTTP surface.
package dto

import "github.com/scorestack/rankboard-server/internal/jsonx"

// AddScoreRequest is the strictly-decoded body of POST /score. Both
// fields are required and must not be JSON null; userId/points being
// unsigned means a negative literal fails decoding before validation
// even runs.
type AddScoreRequest struct {
	UserID jsonx.Field[uint64] `json:"userId"`
	Points jsonx.Field[uint64] `json:"points"`
}

// Valid reports whether both fields were supplied and non-null,
// returning their values when it does.
func (r AddScoreRequest) Valid() (userID, points uint64, ok bool) {
	userID, okUser := r.UserID.Value()
	points, okPoints := r.Points.Value()
	return userID, points, okUser && okPoints
}

// ScoreEntry is the wire shape for a single ranked user, shared by the
// position lookup and the high-score list.
type ScoreEntry struct {
	UserID   uint64 `json:"userId"`
	Points   uint64 `json:"points"`
	Position uint32 `json:"position"`
}

// HighScoreList is the body of GET /highscorelist.
type HighScoreList struct {
	HighScores []ScoreEntry `json:"highscores"`
}

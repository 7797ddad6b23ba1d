package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/scorestack/rankboard-server/internal/env"
	"github.com/scorestack/rankboard-server/internal/rankcell"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRouter(t *testing.T) (http.Handler, *rankcell.Cell) {
	t.Helper()
	cfg := env.Config{Addr: ":0", Env: "test", MaxConcurrentRequests: 64, RequestBodyLimitBytes: 1 << 20}
	cell := rankcell.New()
	r := NewRouter(cfg, cell, zap.NewNop())
	return r, cell
}

func postScore(t *testing.T, r http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostScoreHappyPath(t *testing.T) {
	r, _ := testRouter(t)
	w := postScore(t, r, `{"userId":1,"points":70}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}

func TestPostScoreMalformedJSON(t *testing.T) {
	r, _ := testRouter(t)
	w := postScore(t, r, `{"userId":1,`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostScoreUnknownField(t *testing.T) {
	r, _ := testRouter(t)
	w := postScore(t, r, `{"userId":1,"points":1,"bonus":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostScoreDuplicateKey(t *testing.T) {
	r, _ := testRouter(t)
	w := postScore(t, r, `{"userId":1,"userId":2,"points":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostScoreNullPrimitive(t *testing.T) {
	r, _ := testRouter(t)
	w := postScore(t, r, `{"userId":null,"points":1}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPostScoreNegativeValue(t *testing.T) {
	r, _ := testRouter(t)
	w := postScore(t, r, `{"userId":1,"points":-1}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetPositionNotParseable(t *testing.T) {
	r, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/score/not-a-number/position", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPositionAbsentUser(t *testing.T) {
	r, _ := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/score/9999/position", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}

// A mixed sequence of POST /score calls, including a repeat update to
// an existing user, is reflected correctly by both GET endpoints.
func TestMixedAddsReflectedByPositionAndHighScoreList(t *testing.T) {
	r, _ := testRouter(t)

	for _, add := range []string{
		`{"userId":555,"points":70}`,
		`{"userId":777,"points":80}`,
		`{"userId":555,"points":90}`,
		`{"userId":888,"points":80}`,
		`{"userId":333,"points":20}`,
	} {
		w := postScore(t, r, add)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/score/777/position", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		UserID   uint64 `json:"userId"`
		Points   uint64 `json:"points"`
		Position uint32 `json:"position"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, uint64(777), got.UserID)
	require.Equal(t, uint64(80), got.Points)
	require.Equal(t, uint32(2), got.Position)

	req = httptest.NewRequest(http.MethodGet, "/highscorelist", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		HighScores []struct {
			UserID   uint64 `json:"userId"`
			Points   uint64 `json:"points"`
			Position uint32 `json:"position"`
		} `json:"highscores"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.HighScores, 4)
	require.Equal(t, uint64(555), list.HighScores[0].UserID)
	require.Equal(t, uint32(1), list.HighScores[0].Position)
	require.Equal(t, uint32(4), list.HighScores[3].Position)
}

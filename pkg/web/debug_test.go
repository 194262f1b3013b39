package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func newTestServer(t *testing.T) (*game.Game, http.Handler) {
	t.Helper()

	g := game.NewGame(game.NewManualClock(time.Unix(0, 0)), nil, nil)
	g.Start(99)

	return g, NewDebugServer(g, nil)
}

func TestState(t *testing.T) {
	g, h := newTestServer(t)

	req := httptest.NewRequest("GET", "/state", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body struct {
		Session string         `json:"session"`
		Seed    int64          `json:"seed"`
		State   string         `json:"state"`
		Next    []string       `json:"next"`
		Playing bool           `json:"playing"`
		Stats   map[string]int `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	s := g.Snapshot()
	assert.Equal(t, s.Session.String(), body.Session)
	assert.Equal(t, int64(99), body.Seed)
	assert.Equal(t, "Falling", body.State)
	assert.True(t, body.Playing)
	assert.Len(t, body.Next, game.PreviewSize)
	assert.Equal(t, 1, body.Stats[s.Piece.Type.String()])
}

func TestBoard(t *testing.T) {
	g, h := newTestServer(t)

	req := httptest.NewRequest("GET", "/state/board", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	s := g.Snapshot()
	lines := strings.Split(strings.TrimSuffix(rr.Body.String(), "\n"), "\n")
	require.Len(t, lines, mino.MatrixHeight)
	assert.Contains(t, lines[s.Piece.Y+1], "█")
	assert.Contains(t, lines[mino.MatrixHeight-1], "▓")
}

func TestRenderBoardClearing(t *testing.T) {
	var s game.Snapshot
	s.Clearing = []int{19}

	lines := strings.Split(RenderBoard(&s), "\n")
	assert.Equal(t, "|==========|", lines[19])
	assert.Equal(t, "|          |", lines[18])
}

func TestProfiler(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest("GET", "/debug/pprof/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNotFound(t *testing.T) {
	_, h := newTestServer(t)

	req := httptest.NewRequest("GET", "/nope", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

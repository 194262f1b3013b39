package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// StateSource is anything that can produce a session snapshot.
type StateSource interface {
	Snapshot() game.Snapshot
}

type handlers struct {
	src    StateSource
	logger *zap.Logger
}

// NewDebugServer wires the debug routes: the session state as JSON or as a
// text board, and the runtime profiler.
func NewDebugServer(src StateSource, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	h := &handlers{src: src, logger: logger}
	r.Route("/state", func(r chi.Router) {
		r.Get("/", h.state)
		r.Get("/board", h.board)
	})
	r.Mount("/debug", middleware.Profiler())

	return r
}

func (h *handlers) state(w http.ResponseWriter, r *http.Request) {
	s := h.src.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Warn("failed to encode state", zap.Error(err))
	}
}

func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	s := h.src.Snapshot()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(RenderBoard(&s)))
}

// RenderBoard draws the snapshot as plain text, one line per row, with the
// active piece and its ghost.
func RenderBoard(s *game.Snapshot) string {
	board := s.Board()

	var b strings.Builder
	for y, row := range strings.Split(board.Render(), "\n") {
		if s.IsClearing(y) {
			row = strings.Repeat("=", mino.MatrixWidth)
		}

		b.WriteString("|" + row + "|\n")
	}

	return b.String()
}

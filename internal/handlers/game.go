package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type GameHandler struct {
	logger *logrus.Logger
	store  *game.Store
	rnd    *rand.Rand
}

func NewGameHandler(
	logger *logrus.Logger,
	store *game.Store,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		store:  store,
		rnd:    rnd,
	}
}

func (g *GameHandler) AddRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/status", g.Status)
	mux.HandleFunc("POST /v1/game", g.NewGame)
	mux.HandleFunc("GET /v1/game/{id}", g.Fetch)
	mux.HandleFunc("POST /v1/game/{id}/set", g.SetCell)
	mux.HandleFunc("POST /v1/game/{id}/clear", g.ClearCell)
	mux.HandleFunc("POST /v1/game/{id}/undo", g.Undo)
	mux.HandleFunc("POST /v1/game/{id}/restart", g.Restart)
	mux.HandleFunc("POST /v1/game/{id}/forfeit", g.Forfeit)
	mux.HandleFunc("GET /v1/game/{id}/hints", g.Hints)
}

// fetchSession resolves the {id} path value, writing the error response
// itself when the id is malformed or unknown.
func (g *GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (int64, *game.Session, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return 0, nil, false
	}
	session, err := g.store.Get(id)
	if errors.Is(err, game.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return 0, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithField("error", err).Error("unable to fetch session")
		return 0, nil, false
	}
	return id, session, true
}

// moveStatus maps a rejected move to its HTTP status: bad input is the
// client's mistake, while poking a clue or a finished game is a conflict
// with the session's state.
func moveStatus(err error) int {
	switch {
	case errors.Is(err, sudoku.ErrOutOfRange),
		errors.Is(err, sudoku.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, sudoku.ErrFixedCell),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrNothingToUndo):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (g *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	sendJSONOrLog(w, g.logger, map[string]string{"status": "ok"})
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	difficulty, err := sudoku.ParseDifficulty(dto.Difficulty)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, err := game.NewSession(difficulty, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.WithField("error", err).Error("unable to generate a new puzzle")
		return
	}

	id := g.store.Add(session)
	sendJSONOrLog(w, g.logger, NewGameStateDTO(id, session.Snapshot()))
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameStateDTO(id, session.Snapshot()))
}

func (g *GameHandler) SetCell(w http.ResponseWriter, r *http.Request) {
	id, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	dto, err := ParseSetCellDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	valid, err := session.SetCell(dto.Row, dto.Col, dto.Value)
	if err != nil {
		w.WriteHeader(moveStatus(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	sendJSONOrLog(w, g.logger, NewMoveResultDTO(id, session.Snapshot(), valid))
}

func (g *GameHandler) ClearCell(w http.ResponseWriter, r *http.Request) {
	id, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	dto, err := ParseClearCellDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if err := session.ClearCell(dto.Row, dto.Col); err != nil {
		w.WriteHeader(moveStatus(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	sendJSONOrLog(w, g.logger, NewGameStateDTO(id, session.Snapshot()))
}

func (g *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if err := session.Undo(); err != nil {
		w.WriteHeader(moveStatus(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	sendJSONOrLog(w, g.logger, NewGameStateDTO(id, session.Snapshot()))
}

func (g *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	session.Restart()
	sendJSONOrLog(w, g.logger, NewGameStateDTO(id, session.Snapshot()))
}

func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	id, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if err := session.Forfeit(); err != nil {
		w.WriteHeader(moveStatus(err))
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	sendJSONOrLog(w, g.logger, NewGameStateDTO(id, session.Snapshot()))
}

func (g *GameHandler) Hints(w http.ResponseWriter, r *http.Request) {
	_, session, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewHintsDTO(session.Hints()))
}

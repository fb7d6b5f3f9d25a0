package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/game"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewGameHandler(logger, game.NewStore(), rand.New(rand.NewPCG(1, 2)))
	mux := http.NewServeMux()
	handler.AddRoutes(mux)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func createGame(t *testing.T, mux *http.ServeMux) GameStateDTO {
	t.Helper()
	rec := do(t, mux, http.MethodPost, "/v1/game?difficulty=easy")
	require.Equal(t, http.StatusOK, rec.Code)
	var state GameStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	return state
}

// emptyCell picks an empty cell off a state DTO.
func emptyCell(t *testing.T, state GameStateDTO) (int, int) {
	t.Helper()
	for r := range state.Grid {
		for c := range state.Grid[r] {
			if state.Grid[r][c] == 0 {
				return r, c
			}
		}
	}
	t.Fatal("no empty cell in state")
	return 0, 0
}

// fixedCell picks a clue cell off a state DTO.
func fixedCell(t *testing.T, state GameStateDTO) (int, int) {
	t.Helper()
	for r := range state.Fixed {
		for c := range state.Fixed[r] {
			if state.Fixed[r][c] {
				return r, c
			}
		}
	}
	t.Fatal("no fixed cell in state")
	return 0, 0
}

func TestStatusEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := do(t, mux, http.MethodGet, "/v1/status")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewGame(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)

	assert.NotEmpty(t, state.GameSessionId)
	assert.Equal(t, "easy", state.Difficulty)
	assert.Equal(t, "playing", state.Status)
	assert.Empty(t, state.Conflicts)
	assert.Nil(t, state.EndedAt)

	for r := range state.Grid {
		for c := range state.Grid[r] {
			assert.Equal(t, state.Grid[r][c] != 0, state.Fixed[r][c],
				"at game start every filled cell is a clue")
		}
	}
}

func TestNewGameBadRequest(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/v1/game")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "difficulty is required")

	rec = do(t, mux, http.MethodPost, "/v1/game?difficulty=nightmare")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetch(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)

	rec := do(t, mux, http.MethodGet, "/v1/game/"+state.GameSessionId)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched GameStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, state, fetched)

	rec = do(t, mux, http.MethodGet, "/v1/game/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, mux, http.MethodGet, "/v1/game/not-a-number")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetAndClearCell(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)
	row, col := emptyCell(t, state)

	target := fmt.Sprintf("/v1/game/%s/set?row=%d&col=%d&value=%d",
		state.GameSessionId, row, col, 5)
	rec := do(t, mux, http.MethodPost, target)
	require.Equal(t, http.StatusOK, rec.Code)

	var result MoveResultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 5, result.Grid[row][col])
	assert.False(t, result.Fixed[row][col])
	assert.False(t, result.Solved)
	if result.Valid {
		assert.Empty(t, result.Conflicts)
	} else {
		assert.Contains(t, result.Conflicts, game.Coord{Row: row, Col: col})
	}

	target = fmt.Sprintf("/v1/game/%s/clear?row=%d&col=%d",
		state.GameSessionId, row, col)
	rec = do(t, mux, http.MethodPost, target)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared GameStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cleared))
	assert.Equal(t, 0, cleared.Grid[row][col])
	assert.Empty(t, cleared.Conflicts)
}

func TestSetCellRejections(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)

	fr, fc := fixedCell(t, state)
	er, ec := emptyCell(t, state)

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{
			name: "fixed cell",
			target: fmt.Sprintf("/v1/game/%s/set?row=%d&col=%d&value=1",
				state.GameSessionId, fr, fc),
			code: http.StatusConflict,
		},
		{
			name: "row out of range",
			target: fmt.Sprintf("/v1/game/%s/set?row=9&col=0&value=1",
				state.GameSessionId),
			code: http.StatusBadRequest,
		},
		{
			name: "value out of range",
			target: fmt.Sprintf("/v1/game/%s/set?row=%d&col=%d&value=10",
				state.GameSessionId, er, ec),
			code: http.StatusBadRequest,
		},
		{
			name:   "missing params",
			target: fmt.Sprintf("/v1/game/%s/set?row=1", state.GameSessionId),
			code:   http.StatusBadRequest,
		},
		{
			name: "unknown session",
			target: fmt.Sprintf("/v1/game/12345/set?row=%d&col=%d&value=1",
				er, ec),
			code: http.StatusNotFound,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, test.target)
			assert.Equal(t, test.code, rec.Code)
		})
	}
}

func TestClearFixedCell(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)
	row, col := fixedCell(t, state)

	target := fmt.Sprintf("/v1/game/%s/clear?row=%d&col=%d",
		state.GameSessionId, row, col)
	rec := do(t, mux, http.MethodPost, target)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUndo(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)

	rec := do(t, mux, http.MethodPost, "/v1/game/"+state.GameSessionId+"/undo")
	assert.Equal(t, http.StatusConflict, rec.Code, "nothing to undo yet")

	row, col := emptyCell(t, state)
	target := fmt.Sprintf("/v1/game/%s/set?row=%d&col=%d&value=5",
		state.GameSessionId, row, col)
	rec = do(t, mux, http.MethodPost, target)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodPost, "/v1/game/"+state.GameSessionId+"/undo")
	require.Equal(t, http.StatusOK, rec.Code)

	var undone GameStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &undone))
	assert.Equal(t, state.Grid, undone.Grid)
}

func TestForfeitAndRestart(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)

	rec := do(t, mux, http.MethodPost, "/v1/game/"+state.GameSessionId+"/forfeit")
	require.Equal(t, http.StatusOK, rec.Code)

	var forfeited GameStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &forfeited))
	assert.Equal(t, "forfeited", forfeited.Status)
	assert.NotNil(t, forfeited.EndedAt)
	for r := range forfeited.Grid {
		for c := range forfeited.Grid[r] {
			assert.NotZero(t, forfeited.Grid[r][c], "forfeit reveals the full solution")
		}
	}

	row, col := emptyCell(t, state)
	target := fmt.Sprintf("/v1/game/%s/set?row=%d&col=%d&value=5",
		state.GameSessionId, row, col)
	rec = do(t, mux, http.MethodPost, target)
	assert.Equal(t, http.StatusConflict, rec.Code, "no moves after the game ends")

	rec = do(t, mux, http.MethodPost, "/v1/game/"+state.GameSessionId+"/restart")
	require.Equal(t, http.StatusOK, rec.Code)

	var restarted GameStateDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restarted))
	assert.Equal(t, "playing", restarted.Status)
	assert.Equal(t, state.Grid, restarted.Grid)
}

func TestHints(t *testing.T) {
	mux := newTestMux(t)
	state := createGame(t, mux)

	rec := do(t, mux, http.MethodGet, "/v1/game/"+state.GameSessionId+"/hints")
	require.Equal(t, http.StatusOK, rec.Code)

	var hints HintsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hints))
	for r := range state.Grid {
		for c := range state.Grid[r] {
			if state.Grid[r][c] != 0 {
				assert.Empty(t, hints.Candidates[r][c])
			} else {
				assert.NotEmpty(t, hints.Candidates[r][c],
					"a generated puzzle leaves at least one candidate per empty cell")
			}
		}
	}
}

package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type NewGameDTO struct {
	Difficulty string `schema:"difficulty,required"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type SetCellDTO struct {
	Row   int `schema:"row,required"`
	Col   int `schema:"col,required"`
	Value int `schema:"value,required"`
}

func ParseSetCellDTO(src map[string][]string) (SetCellDTO, error) {
	var dto SetCellDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type ClearCellDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParseClearCellDTO(src map[string][]string) (ClearCellDTO, error) {
	var dto ClearCellDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// GameStateDTO carries the rendered session state: the board as plain
// integers (0 = empty), which cells are immutable clues, which cells hold
// a rule-breaking digit, and where the game stands.
type GameStateDTO struct {
	GameSessionId string                         `json:"game_session_id"`
	Difficulty    string                         `json:"difficulty"`
	Grid          [sudoku.Size][sudoku.Size]int  `json:"grid"`
	Fixed         [sudoku.Size][sudoku.Size]bool `json:"fixed"`
	Conflicts     []game.Coord                   `json:"conflicts"`
	Status        string                         `json:"status"`
	StartedAt     int64                          `json:"started_at"`
	EndedAt       *int64                         `json:"ended_at,omitempty"`
}

func NewGameStateDTO(id int64, st game.State) *GameStateDTO {
	var endedAt *int64
	if st.EndedAt != nil {
		e := st.EndedAt.UnixMilli()
		endedAt = &e
	}
	return &GameStateDTO{
		GameSessionId: strconv.FormatInt(id, 10),
		Difficulty:    st.Difficulty.String(),
		Grid:          st.Grid.Ints(),
		Fixed:         st.Grid.FixedMask(),
		Conflicts:     st.Conflicts,
		Status:        st.Status.String(),
		StartedAt:     st.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}

// MoveResultDTO extends the state with the verdict of the move that
// produced it. Solved doubles as the completion signal.
type MoveResultDTO struct {
	Valid  bool `json:"valid"`
	Solved bool `json:"solved"`
	*GameStateDTO
}

func NewMoveResultDTO(id int64, st game.State, valid bool) *MoveResultDTO {
	return &MoveResultDTO{
		Valid:        valid,
		Solved:       st.Status == game.StatusSolved,
		GameStateDTO: NewGameStateDTO(id, st),
	}
}

// HintsDTO lists the legal digits per empty cell; filled cells get an
// empty list.
type HintsDTO struct {
	Candidates [sudoku.Size][sudoku.Size][]int `json:"candidates"`
}

func NewHintsDTO(all [sudoku.Size][sudoku.Size]sudoku.CandidateSet) *HintsDTO {
	var dto HintsDTO
	for r := range sudoku.Size {
		for c := range sudoku.Size {
			dto.Candidates[r][c] = all[r][c].Values()
		}
	}
	return &dto
}

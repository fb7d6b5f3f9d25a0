// Package game owns the state of a single sudoku game in play: the current
// grid, the set of cells whose last write broke a constraint, an undo
// history and the game status. The sudoku core treats grids as values and
// reports validity one move at a time; everything a UI needs to remember
// between moves lives here.
package game

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var (
	ErrGameOver      = errors.New("game has ended")
	ErrNothingToUndo = errors.New("nothing to undo")
)

type Status int8

const (
	StatusPlaying Status = iota
	StatusSolved
	StatusForfeited
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusSolved:
		return "solved"
	case StatusForfeited:
		return "forfeited"
	}
	return "unknown"
}

// Coord addresses one cell of the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// snapshot captures everything Undo needs to restore.
type snapshot struct {
	grid      sudoku.Grid
	conflicts map[Coord]struct{}
}

// Session is one game in progress. All methods are safe for concurrent
// use; the zero value is not usable, create sessions with NewSession.
type Session struct {
	mu        sync.Mutex
	puzzle    *sudoku.Puzzle
	grid      sudoku.Grid
	conflicts map[Coord]struct{}
	history   []snapshot
	status    Status
	startedAt time.Time
	endedAt   *time.Time
}

// NewSession generates a fresh puzzle at the given difficulty and wraps it
// in a playable session.
func NewSession(d sudoku.Difficulty, rnd *rand.Rand) (*Session, error) {
	puzzle, err := sudoku.NewPuzzle(d, rnd)
	if err != nil {
		return nil, err
	}
	return &Session{
		puzzle:    puzzle,
		grid:      puzzle.Grid,
		conflicts: map[Coord]struct{}{},
		startedAt: time.Now(),
	}, nil
}

// SetCell applies a player's set intent. The returned flag is the core's
// placement-legality verdict; an illegal digit is still written so it can
// be rendered, and its cell joins the conflict set until overwritten or
// cleared. A legal write that completes the board ends the game as solved.
// Core rejections (bad coordinates, bad value, fixed-clue target) pass
// through unchanged.
func (s *Session) SetCell(row, col, value int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying {
		return false, ErrGameOver
	}
	next, valid, err := s.grid.SetCell(row, col, value)
	if err != nil {
		return false, err
	}
	s.pushHistory()
	s.grid = next

	pos := Coord{row, col}
	if valid {
		delete(s.conflicts, pos)
	} else {
		s.conflicts[pos] = struct{}{}
	}

	if valid && s.grid.IsSolved() {
		s.end(StatusSolved)
	}
	return valid, nil
}

// ClearCell applies a player's clear intent.
func (s *Session) ClearCell(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying {
		return ErrGameOver
	}
	next, err := s.grid.ClearCell(row, col)
	if err != nil {
		return err
	}
	s.pushHistory()
	s.grid = next
	delete(s.conflicts, Coord{row, col})
	return nil
}

// Undo restores the board and conflict set from before the latest move.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying {
		return ErrGameOver
	}
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.grid = last.grid
	s.conflicts = last.conflicts
	return nil
}

// Restart throws away all player progress and returns the session to the
// original clues. Allowed even after the game has ended.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = s.puzzle.Grid
	s.conflicts = map[Coord]struct{}{}
	s.history = nil
	s.status = StatusPlaying
	s.startedAt = time.Now()
	s.endedAt = nil
}

// Forfeit reveals the full solution and ends the game.
func (s *Session) Forfeit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPlaying {
		return ErrGameOver
	}
	s.grid = s.puzzle.Solution
	s.conflicts = map[Coord]struct{}{}
	s.end(StatusForfeited)
	return nil
}

// Hints computes the legal candidate digits for every empty cell of the
// current board.
func (s *Session) Hints() [sudoku.Size][sudoku.Size]sudoku.CandidateSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.AllCandidates()
}

// State is a point-in-time copy of a session, safe to read after the
// session moves on.
type State struct {
	Grid       sudoku.Grid
	Difficulty sudoku.Difficulty
	Conflicts  []Coord
	Status     Status
	StartedAt  time.Time
	EndedAt    *time.Time
}

// Snapshot returns the current state for DTO building.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	conflicts := make([]Coord, 0, len(s.conflicts))
	for pos := range s.conflicts {
		conflicts = append(conflicts, pos)
	}
	return State{
		Grid:       s.grid,
		Difficulty: s.puzzle.Difficulty,
		Conflicts:  conflicts,
		Status:     s.status,
		StartedAt:  s.startedAt,
		EndedAt:    s.endedAt,
	}
}

// pushHistory and end expect s.mu to be held.

func (s *Session) pushHistory() {
	saved := make(map[Coord]struct{}, len(s.conflicts))
	for pos := range s.conflicts {
		saved[pos] = struct{}{}
	}
	s.history = append(s.history, snapshot{grid: s.grid, conflicts: saved})
}

func (s *Session) end(status Status) {
	now := time.Now()
	s.status = status
	s.endedAt = &now
}

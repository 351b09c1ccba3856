// Package solver finds a sequence placing every currently-held piece. It is
// an exhaustive depth-first search over board value copies, using only the
// session's non-mutating query and simulate operations, and it returns the
// first full sequence found under a fixed exploration order: held-list
// order for pieces, row-major order for positions.
package solver

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/csasdwwewadwa/Blockblast/board"
	"github.com/csasdwwewadwa/Blockblast/game"
	"github.com/csasdwwewadwa/Blockblast/move"
	"github.com/csasdwwewadwa/Blockblast/piece"
)

// ErrNoSolution means the held set cannot be placed in full, in any order,
// at any positions. This is stronger than the game's per-move terminal
// check, which only needs one placeable piece.
var ErrNoSolution = errors.New("no solution: held set cannot be fully placed")

// Solver serves moves from a cached solution one at a time and recomputes
// only when the cache runs dry. The cache stays coherent across committed
// moves because the game evolves exactly as the simulated boards predicted.
type Solver struct {
	g        *game.Session
	solution []move.Move
}

func New(g *game.Session) *Solver {
	return &Solver{g: g}
}

// frame is one level of the explicit search stack. Each frame owns a board
// value and a remaining-set copy, so backtracking is just a pop; no state
// is shared across branches.
type frame struct {
	b         board.Bits
	remaining []piece.ID
	chosen    move.Move

	// cursor over the candidates still to try at this level
	idx  int
	x, y int
}

// next advances the frame's cursor to its next legal candidate move, if
// any. The cursor order fixes which solution the search finds first.
func (f *frame) next(geom *board.Geometry) (move.Move, bool) {
	for f.idx < len(f.remaining) {
		id := f.remaining[f.idx]
		for f.y < geom.Height() {
			for f.x < geom.Width() {
				pos := move.Pos{X: f.x, Y: f.y}
				f.x++
				if geom.IsValidPlacement(f.b, id, pos) {
					return move.Move{Piece: id, Pos: pos}, true
				}
			}
			f.x = 0
			f.y++
		}
		f.idx++
		f.x, f.y = 0, 0
	}
	return move.Move{}, false
}

func removeAt(ids []piece.ID, i int) []piece.ID {
	out := make([]piece.ID, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

// Solve searches for a full placement sequence for the live board and held
// set. It does not consume the solver's cache; NextMove does.
func (s *Solver) Solve() ([]move.Move, error) {
	geom := s.g.Geometry()
	held := s.g.HeldIDs()
	if len(held) == 0 {
		return nil, ErrNoSolution
	}

	stack := []*frame{{b: s.g.Board(), remaining: held}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if len(f.remaining) == 0 {
			seq := make([]move.Move, 0, len(stack)-1)
			for _, fr := range stack[1:] {
				seq = append(seq, fr.chosen)
			}
			return seq, nil
		}
		m, ok := f.next(geom)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		nb, _, err := s.g.TryMove(f.b, m.Piece, m.Pos)
		if err != nil {
			// next() only yields validated placements.
			return nil, err
		}
		stack = append(stack, &frame{
			b:         nb,
			remaining: removeAt(f.remaining, f.idx),
			chosen:    m,
		})
	}
	log.Debug().Strs("held", s.g.HeldPieces()).Msg("search exhausted with no full sequence")
	return nil, ErrNoSolution
}

// NextMove returns the next move of the cached solution, recomputing the
// solution first if the cache is exhausted.
func (s *Solver) NextMove() (move.Move, error) {
	if len(s.solution) == 0 {
		sol, err := s.Solve()
		if err != nil {
			return move.Move{}, err
		}
		s.solution = sol
	}
	m := s.solution[0]
	s.solution = s.solution[1:]
	return m, nil
}

// Reset drops any cached solution, forcing the next NextMove to re-search.
// Call it if moves were committed from outside the solver.
func (s *Solver) Reset() {
	s.solution = nil
}

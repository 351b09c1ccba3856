// Package game encapsulates the main mechanics for a Block Blast session:
// the live board, the held piece set, scoring, dealing, and the game-over
// flag. A Session is the only owner of mutable state; everything else in
// this module works on board value copies.
package game

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/csasdwwewadwa/Blockblast/board"
	"github.com/csasdwwewadwa/Blockblast/dealer"
	"github.com/csasdwwewadwa/Blockblast/move"
	"github.com/csasdwwewadwa/Blockblast/piece"
	"github.com/csasdwwewadwa/Blockblast/scoring"
)

var (
	// ErrGameOver rejects any move after the session became terminal.
	ErrGameOver = errors.New("game is over")
	// ErrPieceNotHeld rejects a move naming a piece outside the held set.
	ErrPieceNotHeld = errors.New("piece is not in the current held set")
	// ErrIllegalPlacement rejects an out-of-bounds or colliding placement.
	ErrIllegalPlacement = errors.New("illegal placement")
)

func seededRNG() (int64, *frand.RNG) {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed RNG with cryptographically secure random number generator")
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	return seed, rngFromSeed(seed)
}

func rngFromSeed(seed int64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return frand.NewCustom(key[:], 1024, 12)
}

// Session is one game in progress. It is not safe for concurrent use; run
// concurrent games on separate sessions, each of which owns its RNG.
type Session struct {
	geom    *board.Geometry
	b       board.Bits
	tracker *scoring.Tracker
	dealer  *dealer.Dealer
	held    []piece.ID

	guaranteedDeals bool
	gameOver        bool

	randSeed int64
	rng      *frand.RNG
}

// MoveResult reports the outcome of a committed move.
type MoveResult struct {
	Board        board.Bits
	Score        int
	MovePoints   int
	LinesCleared int
	GameOver     bool
}

// NewSession creates a session with a randomly seeded RNG. guaranteedDeals
// selects whether re-deals must be provably placeable.
func NewSession(width, height int, guaranteedDeals bool) (*Session, error) {
	seed, rng := seededRNG()
	return newSession(width, height, guaranteedDeals, seed, rng)
}

// NewSessionWithSeed creates a reproducible session: two sessions built
// with the same size and seed, fed the same move sequence, end bit-identical.
func NewSessionWithSeed(width, height int, guaranteedDeals bool, seed int64) (*Session, error) {
	return newSession(width, height, guaranteedDeals, seed, rngFromSeed(seed))
}

func newSession(width, height int, guaranteedDeals bool, seed int64, rng *frand.RNG) (*Session, error) {
	geom, err := board.NewGeometry(width, height)
	if err != nil {
		return nil, err
	}
	s := &Session{
		geom:            geom,
		tracker:         scoring.NewTracker(),
		guaranteedDeals: guaranteedDeals,
		randSeed:        seed,
		rng:             rng,
	}
	s.dealer = dealer.New(geom, rng)

	// The opening deal is uniform even in guaranteed mode: the board is
	// empty, so any set is placeable in sequence on all but degenerate
	// board sizes, which the terminal check below catches.
	s.held = s.dealer.DealUniform()
	s.gameOver = !geom.AnyFits(s.b, s.held)
	return s, nil
}

// MakeMove places a held piece with its top-left corner at pos, clears any
// completed lines, scores the move, consumes the held instance, re-deals
// once the held set empties, and re-checks for game over. Session state is
// unchanged when an error is returned.
func (s *Session) MakeMove(pieceName string, pos move.Pos) (*MoveResult, error) {
	if s.gameOver {
		return nil, ErrGameOver
	}
	id, err := piece.FromName(pieceName)
	if err != nil {
		return nil, ErrPieceNotHeld
	}
	heldIdx := -1
	for i, h := range s.held {
		if h == id {
			heldIdx = i
			break
		}
	}
	if heldIdx == -1 {
		return nil, ErrPieceNotHeld
	}
	if !s.geom.IsValidPlacement(s.b, id, pos) {
		return nil, ErrIllegalPlacement
	}

	s.b = s.geom.Place(s.b, id, pos)
	var lines int
	s.b, lines = s.geom.ClearLines(s.b)
	points := s.tracker.ApplyMove(piece.Get(id).NumCells(), lines)

	s.held = append(s.held[:heldIdx], s.held[heldIdx+1:]...)
	if len(s.held) == 0 {
		s.redeal()
	}

	if !s.geom.AnyFits(s.b, s.held) {
		s.gameOver = true
		log.Debug().Int("score", s.tracker.Score()).Msg("no held piece fits; game over")
	}

	return &MoveResult{
		Board:        s.b,
		Score:        s.tracker.Score(),
		MovePoints:   points,
		LinesCleared: lines,
		GameOver:     s.gameOver,
	}, nil
}

func (s *Session) redeal() {
	if !s.guaranteedDeals {
		s.held = s.dealer.DealUniform()
		return
	}
	held, err := s.dealer.DealGuaranteed(s.b)
	if err != nil {
		// Nothing in the catalog fits anywhere; the terminal check after
		// the deal will end the game on the empty held set.
		log.Debug().Err(err).Msg("guaranteed deal failed")
		s.held = nil
		return
	}
	s.held = held
}

// TryMove simulates placing a piece on a caller-supplied board value:
// identical placement and clearing logic, no session state touched. The
// dealer and solver use it to explore hypothetical futures.
func (s *Session) TryMove(b board.Bits, id piece.ID, pos move.Pos) (board.Bits, int, error) {
	if !s.geom.IsValidPlacement(b, id, pos) {
		return b, 0, ErrIllegalPlacement
	}
	b = s.geom.Place(b, id, pos)
	b, lines := s.geom.ClearLines(b)
	return b, lines, nil
}

// PossibleMoves maps each held piece name to its legal positions on the
// live board in row-major order. Pieces with no legal position are omitted;
// duplicate held names collapse to one key.
func (s *Session) PossibleMoves() map[string][]move.Pos {
	out := make(map[string][]move.Pos)
	for _, id := range s.held {
		name := piece.Get(id).Name()
		if _, seen := out[name]; seen {
			continue
		}
		if ps := s.geom.ValidPlacements(s.b, id); len(ps) > 0 {
			out[name] = ps
		}
	}
	return out
}

// Board returns the current occupancy bits, as a value.
func (s *Session) Board() board.Bits { return s.b }

// Geometry exposes the immutable mask tables for read-only sharing.
func (s *Session) Geometry() *board.Geometry { return s.geom }

// Score is the cumulative score.
func (s *Session) Score() int { return s.tracker.Score() }

// Combo is the current combo level (-1 when no combo is active).
func (s *Session) Combo() int { return s.tracker.Combo() }

// GameOver reports whether the session is terminal.
func (s *Session) GameOver() bool { return s.gameOver }

// RandSeed returns the seed this session's RNG was built from.
func (s *Session) RandSeed() int64 { return s.randSeed }

// HeldIDs returns a copy of the held set in order.
func (s *Session) HeldIDs() []piece.ID {
	return append([]piece.ID(nil), s.held...)
}

// HeldPieces returns the held piece names in order.
func (s *Session) HeldPieces() []string {
	return lo.Map(s.held, func(id piece.ID, _ int) string {
		return piece.Get(id).Name()
	})
}

// SetHeld overrides the held set and re-checks for game over. Useful for
// analysis of fixed positions and for tests; normal play never needs it.
func (s *Session) SetHeld(names []string) error {
	held := make([]piece.ID, len(names))
	for i, n := range names {
		id, err := piece.FromName(n)
		if err != nil {
			return err
		}
		held[i] = id
	}
	s.held = held
	s.gameOver = !s.geom.AnyFits(s.b, s.held)
	return nil
}

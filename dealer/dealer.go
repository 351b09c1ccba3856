// Package dealer chooses each new set of held pieces. It can deal uniformly
// at random, or deal with a solvability guarantee: the dealt set is only
// committed once a greedy simulation has placed all of it, in order, on a
// scratch copy of the live board.
package dealer

import (
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/csasdwwewadwa/Blockblast/board"
	"github.com/csasdwwewadwa/Blockblast/piece"
)

// HeldSetSize is how many pieces a deal produces.
const HeldSetSize = 3

// maxDealPasses bounds the guaranteed-deal shuffle loop. A pass that places
// at least one piece makes progress, so the cap is only ever reached when
// the scratch board admits no placement at all.
const maxDealPasses = 64

// ErrNoGuaranteedDeal is returned when the guaranteed-deal loop exhausts
// its pass budget without collecting a full set. It means the board is so
// congested that no catalog shape fits.
var ErrNoGuaranteedDeal = errors.New("no guaranteed deal found; no catalog piece fits the board")

// Dealer draws held sets using the session's RNG. It never touches the live
// board; guaranteed dealing works on a value copy.
type Dealer struct {
	geom *board.Geometry
	rng  *frand.RNG
}

// New creates a dealer sharing the session's geometry and RNG.
func New(geom *board.Geometry, rng *frand.RNG) *Dealer {
	return &Dealer{geom: geom, rng: rng}
}

// DealUniform samples HeldSetSize distinct pieces uniformly from the
// catalog, without replacement and with no placeability check.
func (d *Dealer) DealUniform() []piece.ID {
	perm := d.rng.Perm(piece.CatalogSize)
	held := make([]piece.ID, HeldSetSize)
	for i := range held {
		held[i] = piece.ID(perm[i])
	}
	return held
}

// DealGuaranteed deals HeldSetSize pieces (repeats allowed) such that a
// sequence exists placing all of them, in the returned order, on the given
// board. It walks the shuffled catalog greedily, simulating each placement
// at its first row-major fit (including line clears) on a scratch board,
// and reshuffles for another pass whenever a full scan comes up short.
// Already-collected pieces survive a reshuffle; only the scan restarts.
func (d *Dealer) DealGuaranteed(b board.Bits) ([]piece.ID, error) {
	ids := piece.AllIDs()
	scratch := b
	held := make([]piece.ID, 0, HeldSetSize)

	for pass := 0; pass < maxDealPasses && len(held) < HeldSetSize; pass++ {
		d.rng.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
		for _, id := range ids {
			pos, ok := d.geom.FirstFit(scratch, id)
			if !ok {
				continue
			}
			scratch = d.geom.Place(scratch, id, pos)
			scratch, _ = d.geom.ClearLines(scratch)
			held = append(held, id)
			if len(held) == HeldSetSize {
				break
			}
		}
	}
	if len(held) < HeldSetSize {
		log.Debug().Int("collected", len(held)).Msg("guaranteed deal exhausted its passes")
		return nil, ErrNoGuaranteedDeal
	}

	// Shuffle the final set so held order carries no positional bias from
	// the greedy walk.
	d.rng.Shuffle(len(held), func(i, j int) {
		held[i], held[j] = held[j], held[i]
	})
	return held, nil
}

// Package move defines the (piece, position) pair passed between the game,
// dealer, and solver. A move is a parameter/result value, never a stored
// entity.
package move

import (
	"fmt"

	"github.com/csasdwwewadwa/Blockblast/piece"
)

// Pos is a board coordinate. (0, 0) is the top-left cell; x grows rightward
// and y grows downward.
type Pos struct {
	X int
	Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move places one catalog piece with its bounding box's top-left corner at
// Pos.
type Move struct {
	Piece piece.ID
	Pos   Pos
}

func (m Move) String() string {
	return fmt.Sprintf("<%s at %v>", piece.Get(m.Piece).Name(), m.Pos)
}

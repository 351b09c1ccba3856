// Package board implements the bit-packed occupancy grid and the placement
// geometry derived from a board size: per-piece masks rescaled to the board
// stride, full-row and full-column masks, placement validation, and
// simultaneous line clearing.
package board

import (
	"errors"

	"github.com/csasdwwewadwa/Blockblast/move"
	"github.com/csasdwwewadwa/Blockblast/piece"
)

// MaxDim is the per-axis board size limit.
const MaxDim = 64

// ErrInvalidBoardSize is returned by NewGeometry when either dimension is
// out of range. It is fatal to construction only.
var ErrInvalidBoardSize = errors.New("board dimensions must be between 1 and 64")

// Geometry holds everything derivable from a board size. All of it is
// computed once and immutable afterward, so a single Geometry may be shared
// read-only across dealer and solver exploration branches.
type Geometry struct {
	width  int
	height int

	// scaled[id] is the piece's interior mask re-packed so each interior
	// row occupies width bits. A placement mask is then a single shift.
	scaled [piece.CatalogSize]Bits

	rowMasks []Bits
	colMasks []Bits
}

// NewGeometry precomputes the mask tables for a board of the given size.
func NewGeometry(width, height int) (*Geometry, error) {
	if width < 1 || width > MaxDim || height < 1 || height > MaxDim {
		return nil, ErrInvalidBoardSize
	}
	g := &Geometry{width: width, height: height}

	for _, id := range piece.AllIDs() {
		p := piece.Get(id)
		var scaled Bits
		for r := 0; r < p.Height(); r++ {
			var row Bits
			row[0] = p.RowBits(r)
			scaled = scaled.Or(row.Shl(r * width))
		}
		g.scaled[id] = scaled
	}

	g.rowMasks = make([]Bits, height)
	for r := 0; r < height; r++ {
		var row Bits
		row[0] = ^uint64(0) >> (64 - uint(width))
		g.rowMasks[r] = row.Shl(r * width)
	}

	g.colMasks = make([]Bits, width)
	for c := 0; c < width; c++ {
		var col Bits
		for r := 0; r < height; r++ {
			col.Set(r*width + c)
		}
		g.colMasks[c] = col
	}

	return g, nil
}

func (g *Geometry) Width() int  { return g.width }
func (g *Geometry) Height() int { return g.height }

// ScaledMask returns the board-stride mask for a piece anchored at (0, 0).
func (g *Geometry) ScaledMask(id piece.ID) Bits {
	return g.scaled[id]
}

// PlacementMask returns the board mask for placing a piece with its top-left
// corner at pos. The caller must have bounds-checked pos first; out-of-board
// shifts silently drop bits.
func (g *Geometry) PlacementMask(id piece.ID, pos move.Pos) Bits {
	return g.scaled[id].Shl(pos.Y*g.width + pos.X)
}

// IsValidPlacement reports whether the piece fits entirely on the board at
// pos without overlapping an occupied cell. No side effects.
func (g *Geometry) IsValidPlacement(b Bits, id piece.ID, pos move.Pos) bool {
	p := piece.Get(id)
	if pos.X < 0 || pos.Y < 0 || pos.X+p.Width() > g.width || pos.Y+p.Height() > g.height {
		return false
	}
	return !b.Intersects(g.PlacementMask(id, pos))
}

// Place ORs the placement mask into the board. The caller is responsible
// for validating first; Place does not re-check.
func (g *Geometry) Place(b Bits, id piece.ID, pos move.Pos) Bits {
	return b.Or(g.PlacementMask(id, pos))
}

// ClearLines detects every full row and full column of b against the same
// snapshot, clears their union in one pass, and returns the cleared board
// and the line count. Rows and columns are counted independently: a clear
// that completes both a row and a column counts 2 even though they share a
// cell.
func (g *Geometry) ClearLines(b Bits) (Bits, int) {
	lines := 0
	var cleared Bits
	for _, rm := range g.rowMasks {
		if b.Contains(rm) {
			lines++
			cleared = cleared.Or(rm)
		}
	}
	for _, cm := range g.colMasks {
		if b.Contains(cm) {
			lines++
			cleared = cleared.Or(cm)
		}
	}
	if lines > 0 {
		b = b.AndNot(cleared)
	}
	return b, lines
}

// FirstFit scans positions in row-major order (y outer, x inner) and
// returns the first legal placement for the piece, if any.
func (g *Geometry) FirstFit(b Bits, id piece.ID) (move.Pos, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			pos := move.Pos{X: x, Y: y}
			if g.IsValidPlacement(b, id, pos) {
				return pos, true
			}
		}
	}
	return move.Pos{}, false
}

// ValidPlacements lists every legal position for the piece in row-major
// order. Returns nil when nothing fits.
func (g *Geometry) ValidPlacements(b Bits, id piece.ID) []move.Pos {
	var out []move.Pos
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			pos := move.Pos{X: x, Y: y}
			if g.IsValidPlacement(b, id, pos) {
				out = append(out, pos)
			}
		}
	}
	return out
}

// AnyFits reports whether at least one of the given pieces has a legal
// placement on b. It short-circuits, unlike ValidPlacements.
func (g *Geometry) AnyFits(b Bits, ids []piece.ID) bool {
	for _, id := range ids {
		if _, ok := g.FirstFit(b, id); ok {
			return true
		}
	}
	return false
}

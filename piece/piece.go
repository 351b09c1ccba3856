// Package piece holds the static catalog of polyomino shapes used by the
// game. Shapes are defined once at load time and never change; mirrored and
// rotated variants are separate named entries rather than being derived at
// runtime.
package piece

import (
	"fmt"
	"math/bits"
)

// ID indexes a piece in the catalog. Hot paths (placement validation, line
// clearing, solver search) work with IDs; names only appear at the API edge.
type ID uint8

// Piece is an immutable shape record. The interior mask is packed row-major
// within the piece's own bounding box: bit x of row y lives at y*width+x,
// with row 0 being the lowest group of bits.
type Piece struct {
	name   string
	width  int
	height int
	mask   uint64
}

func (p Piece) Name() string { return p.name }
func (p Piece) Width() int   { return p.width }
func (p Piece) Height() int  { return p.height }

// Mask returns the interior occupancy mask, packed at the piece's own width.
func (p Piece) Mask() uint64 { return p.mask }

// NumCells counts the occupied cells of the shape. This is the flat score a
// placement of the piece always earns.
func (p Piece) NumCells() int { return bits.OnesCount64(p.mask) }

// RowBits returns the bits of interior row r, right-aligned.
func (p Piece) RowBits(r int) uint64 {
	return (p.mask >> (r * p.width)) & ((1 << p.width) - 1)
}

func (p Piece) String() string {
	return fmt.Sprintf("<%s %dx%d>", p.name, p.width, p.height)
}

// The shape table. Masks and bounding boxes are the classic Block Blast set:
// squares, lines in both orientations, diagonals, small and large Ls, Ts,
// Ss, and the 2x2 corner pieces, with mirrored variants under their own
// names.
var catalog = []Piece{
	{"sq1", 1, 1, 0b1},
	{"sq2", 2, 2, 0b11_11},
	{"sq3", 3, 3, 0b111_111_111},
	{"line2h", 2, 1, 0b11},
	{"line3h", 3, 1, 0b111},
	{"line4h", 4, 1, 0b1111},
	{"line5h", 5, 1, 0b11111},
	{"line2v", 1, 2, 0b1_1},
	{"line3v", 1, 3, 0b1_1_1},
	{"line4v", 1, 4, 0b1_1_1_1},
	{"line5v", 1, 5, 0b1_1_1_1_1},
	{"diag2", 2, 2, 0b01_10},
	{"diag3", 3, 3, 0b001_010_100},
	{"diag2f", 2, 2, 0b10_01},
	{"diag3f", 3, 3, 0b100_010_001},
	{"l1", 2, 3, 0b10_10_11},
	{"l2", 3, 2, 0b111_100},
	{"l3", 2, 3, 0b11_01_01},
	{"l4", 3, 2, 0b001_111},
	{"l1f", 2, 3, 0b01_01_11},
	{"l2f", 3, 2, 0b100_111},
	{"l3f", 2, 3, 0b11_10_10},
	{"l4f", 3, 2, 0b111_001},
	{"t1", 3, 2, 0b010_111},
	{"t2", 2, 3, 0b01_11_01},
	{"t3", 3, 2, 0b111_010},
	{"t4", 2, 3, 0b10_11_10},
	{"s1", 3, 2, 0b011_110},
	{"s2", 2, 3, 0b10_11_01},
	{"s1f", 3, 2, 0b110_011},
	{"s2f", 2, 3, 0b01_11_10},
	{"L1", 3, 3, 0b100_100_111},
	{"L2", 3, 3, 0b111_100_100},
	{"L3", 3, 3, 0b111_001_001},
	{"L4", 3, 3, 0b001_001_111},
	{"sL1", 2, 2, 0b10_11},
	{"sL2", 2, 2, 0b11_10},
	{"sL3", 2, 2, 0b11_01},
	{"sL4", 2, 2, 0b01_11},
}

// CatalogSize is the number of distinct named shapes.
const CatalogSize = 39

var nameToID map[string]ID

func init() {
	if len(catalog) != CatalogSize {
		panic("piece catalog size mismatch")
	}
	nameToID = make(map[string]ID, len(catalog))
	for i, p := range catalog {
		nameToID[p.name] = ID(i)
	}
}

// Get returns the piece record for an ID. IDs come from FromName or from
// iterating the catalog, so they are always in range.
func Get(id ID) Piece {
	return catalog[id]
}

// FromName looks up a piece by its catalog name.
func FromName(name string) (ID, error) {
	id, ok := nameToID[name]
	if !ok {
		return 0, fmt.Errorf("no piece named %q in catalog", name)
	}
	return id, nil
}

// AllIDs returns every catalog ID in definition order. The returned slice is
// freshly allocated; callers may shuffle it.
func AllIDs() []ID {
	ids := make([]ID, CatalogSize)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Names returns every catalog name in definition order.
func Names() []string {
	names := make([]string, CatalogSize)
	for i, p := range catalog {
		names[i] = p.name
	}
	return names
}

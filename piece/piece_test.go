package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogIntegrity(t *testing.T) {
	for _, id := range AllIDs() {
		p := Get(id)
		assert.NotEmpty(t, p.Name())
		assert.True(t, p.Width() >= 1 && p.Width() <= 5, p.Name())
		assert.True(t, p.Height() >= 1 && p.Height() <= 5, p.Name())
		// the mask must fit the bounding box exactly
		assert.True(t, p.Mask() != 0, p.Name())
		assert.True(t, p.Mask() < 1<<(p.Width()*p.Height()), p.Name())
		// no interior row sticks out past the bounding width, and the top
		// row is never empty (the box would not be tight otherwise)
		for r := 0; r < p.Height(); r++ {
			assert.True(t, p.RowBits(r) < 1<<p.Width(), p.Name())
		}
		assert.True(t, p.RowBits(p.Height()-1) != 0, p.Name())
	}
}

func TestCatalogSize(t *testing.T) {
	// CatalogSize must track the shape table exactly: every ID minted by
	// AllIDs (and by uniform dealing) indexes the table.
	assert.Len(t, AllIDs(), CatalogSize)
	assert.Len(t, Names(), CatalogSize)

	wantNames := []string{
		"sq1", "sq2", "sq3",
		"line2h", "line3h", "line4h", "line5h",
		"line2v", "line3v", "line4v", "line5v",
		"diag2", "diag3", "diag2f", "diag3f",
		"l1", "l2", "l3", "l4", "l1f", "l2f", "l3f", "l4f",
		"t1", "t2", "t3", "t4",
		"s1", "s2", "s1f", "s2f",
		"L1", "L2", "L3", "L4",
		"sL1", "sL2", "sL3", "sL4",
	}
	assert.Equal(t, wantNames, Names())
	for _, id := range AllIDs() {
		assert.Equal(t, Get(id).Name(), Names()[id])
	}
}

func TestNumCells(t *testing.T) {
	type cellCase struct {
		name  string
		cells int
	}
	testCases := []cellCase{
		{"sq1", 1},
		{"sq2", 4},
		{"sq3", 9},
		{"line5h", 5},
		{"line4v", 4},
		{"diag3", 3},
		{"t1", 4},
		{"L1", 5},
		{"sL4", 3},
	}
	for _, tc := range testCases {
		id, err := FromName(tc.name)
		assert.NoError(t, err)
		assert.Equal(t, tc.cells, Get(id).NumCells(), tc.name)
	}
}

func TestFromName(t *testing.T) {
	id, err := FromName("line4h")
	assert.NoError(t, err)
	p := Get(id)
	assert.Equal(t, "line4h", p.Name())
	assert.Equal(t, 4, p.Width())
	assert.Equal(t, 1, p.Height())

	_, err = FromName("hexomino")
	assert.Error(t, err)
}

func TestMirroredVariantsAreDistinct(t *testing.T) {
	s1, err := FromName("s1")
	assert.NoError(t, err)
	s1f, err := FromName("s1f")
	assert.NoError(t, err)
	assert.NotEqual(t, Get(s1).Mask(), Get(s1f).Mask())
	assert.Equal(t, Get(s1).NumCells(), Get(s1f).NumCells())
}

func TestRowBits(t *testing.T) {
	// l1 is a 2x3 L: row 0 holds both cells, rows 1 and 2 hold the stem
	// cell at x=1.
	id, err := FromName("l1")
	assert.NoError(t, err)
	p := Get(id)
	assert.Equal(t, uint64(0b11), p.RowBits(0))
	assert.Equal(t, uint64(0b10), p.RowBits(1))
	assert.Equal(t, uint64(0b10), p.RowBits(2))
}

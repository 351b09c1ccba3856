package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShlWithinWord(t *testing.T) {
	var b Bits
	b[0] = 0b1011
	s := b.Shl(4)
	assert.Equal(t, uint64(0b1011_0000), s[0])
	assert.Equal(t, 3, s.OnesCount())
}

func TestShlAcrossWords(t *testing.T) {
	var b Bits
	b.Set(3)
	b.Set(60)
	s := b.Shl(70)
	assert.True(t, s.Get(73))
	assert.True(t, s.Get(130))
	assert.Equal(t, 2, s.OnesCount())
}

func TestShlByZero(t *testing.T) {
	var b Bits
	b.Set(0)
	b.Set(100)
	assert.Equal(t, b, b.Shl(0))
}

func TestShlByWordMultiple(t *testing.T) {
	var b Bits
	b.Set(1)
	s := b.Shl(128)
	assert.True(t, s.Get(129))
	assert.Equal(t, 1, s.OnesCount())
}

func TestBitwiseOps(t *testing.T) {
	var a, b Bits
	a.Set(0)
	a.Set(65)
	b.Set(65)
	b.Set(200)

	assert.Equal(t, 3, a.Or(b).OnesCount())
	assert.Equal(t, 1, a.And(b).OnesCount())
	assert.True(t, a.And(b).Get(65))
	assert.True(t, a.Intersects(b))
	assert.False(t, a.AndNot(b).Get(65))
	assert.True(t, a.AndNot(b).Get(0))

	var empty Bits
	assert.True(t, empty.IsZero())
	assert.False(t, a.IsZero())
	assert.False(t, a.Intersects(empty))
	assert.True(t, a.Contains(empty))
	assert.False(t, b.Contains(a))
	assert.True(t, a.Or(b).Contains(a))
}

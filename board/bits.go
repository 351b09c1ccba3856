package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// bitsWords is sized for the largest legal board (64x64 = 4096 cells).
const bitsWords = 64

// Bits is a board-sized bit field. Bit y*width+x encodes occupancy of cell
// (x, y). It is a plain array so that assignment copies the whole value;
// solver and dealer branches each get an independent copy for free, and ==
// compares boards bit for bit.
type Bits [bitsWords]uint64

// IsZero reports whether no bit is set.
func (b Bits) IsZero() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

// Or returns the union of b and o.
func (b Bits) Or(o Bits) Bits {
	for i := range b {
		b[i] |= o[i]
	}
	return b
}

// And returns the intersection of b and o.
func (b Bits) And(o Bits) Bits {
	for i := range b {
		b[i] &= o[i]
	}
	return b
}

// AndNot returns b with every bit of o cleared.
func (b Bits) AndNot(o Bits) Bits {
	for i := range b {
		b[i] &^= o[i]
	}
	return b
}

// Contains reports whether every bit of o is also set in b.
func (b Bits) Contains(o Bits) bool {
	for i := range b {
		if b[i]&o[i] != o[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o share any set bit.
func (b Bits) Intersects(o Bits) bool {
	for i := range b {
		if b[i]&o[i] != 0 {
			return true
		}
	}
	return false
}

// Shl returns b shifted left by n bit positions. Bits shifted past the top
// of the array are dropped; callers bounds-check placements so that never
// happens for in-board masks.
func (b Bits) Shl(n int) Bits {
	var out Bits
	wordShift, bitShift := n/64, uint(n%64)
	for i := bitsWords - 1; i >= wordShift; i-- {
		w := b[i-wordShift] << bitShift
		if bitShift > 0 && i-wordShift-1 >= 0 {
			w |= b[i-wordShift-1] >> (64 - bitShift)
		}
		out[i] = w
	}
	return out
}

// OnesCount counts the set bits.
func (b Bits) OnesCount() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// Get reports whether bit i is set.
func (b Bits) Get(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}

// Set sets bit i.
func (b *Bits) Set(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

// String dumps the nonzero words as hex, high word first. Debugging only.
func (b Bits) String() string {
	top := 0
	for i := bitsWords - 1; i > 0; i-- {
		if b[i] != 0 {
			top = i
			break
		}
	}
	var sb strings.Builder
	sb.WriteString("0x")
	for i := top; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", b[i])
	}
	return sb.String()
}

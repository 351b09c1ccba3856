package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatPlacementScoreOnly(t *testing.T) {
	tr := NewTracker()
	points := tr.ApplyMove(9, 0)
	assert.Equal(t, 9, points)
	assert.Equal(t, 9, tr.Score())
	assert.Equal(t, -1, tr.Combo())
}

func TestFirstClearStartsCombo(t *testing.T) {
	tr := NewTracker()
	// floor(34.2 * 1) = 34 on top of the 4 placed cells
	points := tr.ApplyMove(4, 1)
	assert.Equal(t, 38, points)
	assert.Equal(t, 38, tr.Score())
	assert.Equal(t, 0, tr.Combo())
}

func TestSecondClearAccumulates(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(4, 1)
	// accumulator 34.2 + 34.2 = 68.4, floored to 68
	points := tr.ApplyMove(5, 1)
	assert.Equal(t, 5+68, points)
	assert.Equal(t, 1, tr.Combo())
}

func TestMultiLineMultiplier(t *testing.T) {
	tr := NewTracker()
	// two lines double the bonus: floor(34.2 * 2) = 68
	points := tr.ApplyMove(8, 2)
	assert.Equal(t, 8+68, points)
	assert.Equal(t, 0, tr.Combo())
}

func TestMultiplierClampsAboveSix(t *testing.T) {
	assert.Equal(t, 30.0, multiplier(6))
	assert.Equal(t, 30.0, multiplier(7))
	assert.Equal(t, 30.0, multiplier(12))
	assert.Equal(t, 1.0, multiplier(1))
}

// The combo-break check reads the pre-reset counter: a single-line clear
// only breaks a running combo when the counter has already been driven to
// zero or below by clear-less moves. This pins the original transition
// order, quirk included.
func TestComboBreakUsesPreResetCounter(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(4, 1) // combo 0, counter resets to 3
	assert.Equal(t, 0, tr.Combo())

	tr.ApplyMove(4, 0) // counter 2
	tr.ApplyMove(4, 0) // counter 1
	tr.ApplyMove(4, 0) // counter 0

	// counterBefore (0) + lines (1) <= 1 so the combo breaks and restarts
	// at level 0 with a fresh accumulator.
	points := tr.ApplyMove(4, 1)
	assert.Equal(t, 0, tr.Combo())
	assert.Equal(t, 4+34, points)
}

func TestComboSurvivesTwoClearlessMoves(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(4, 1) // combo 0
	tr.ApplyMove(4, 0) // counter 2
	tr.ApplyMove(4, 0) // counter 1

	// counterBefore (1) + lines (1) = 2 > 1: the combo continues.
	tr.ApplyMove(4, 1)
	assert.Equal(t, 1, tr.Combo())
}

func TestDoubleClearBreakThreshold(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(4, 1)
	for i := 0; i < 5; i++ {
		tr.ApplyMove(4, 0) // counter down to -2
	}
	// counterBefore (-2) + lines (2) = 0 <= 1: even a double clear breaks
	// here.
	tr.ApplyMove(4, 2)
	assert.Equal(t, 0, tr.Combo())

	tr2 := NewTracker()
	tr2.ApplyMove(4, 1)
	tr2.ApplyMove(4, 0) // counter 2
	tr2.ApplyMove(4, 2) // 2 + 2 > 1, combo continues
	assert.Equal(t, 1, tr2.Combo())
}

// Replays a long clearing run against an independent computation of the
// acceleration schedule, checking the one-time threshold events at combo
// levels 0, 5, 6, 10, and 11.
func TestAccelerationSchedule(t *testing.T) {
	tr := NewTracker()
	acc, inc := 0.0, 0.0
	total := 0
	for i := 0; i < 14; i++ {
		combo := i
		switch combo {
		case 0:
			acc = 34.2
		case 5:
			acc *= 4
		case 6:
			acc *= 0.375
		case 10:
			acc *= 4.6666
		case 11:
			acc *= 0.2857
		}
		inc += acc
		want := 1 + int(math.Floor(inc*1.0))
		points := tr.ApplyMove(1, 1)
		assert.Equal(t, want, points, "combo level %d", combo)
		assert.Equal(t, combo, tr.Combo())
		total += points
	}
	assert.Equal(t, total, tr.Score())
}

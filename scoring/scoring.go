// Package scoring tracks cumulative score and the combo state machine. It
// is driven once per committed move with that move's line-clear count and
// the placed piece's cell count; its only observable outputs are the score
// and the combo level.
package scoring

import "math"

// baseAcceleration seeds the score-increment acceleration when a combo
// starts (combo level 0).
const baseAcceleration = 34.2

// lineMultipliers maps a move's cleared-line count (1-6) to the bonus
// multiplier. Counts above 6 clamp to the last entry.
var lineMultipliers = [...]float64{1, 2, 6, 12, 20, 30}

func multiplier(linesCleared int) float64 {
	if linesCleared > len(lineMultipliers) {
		return lineMultipliers[len(lineMultipliers)-1]
	}
	return lineMultipliers[linesCleared-1]
}

// Tracker is the scoring state for one session. The zero value is not
// usable; construct with NewTracker.
type Tracker struct {
	score int
	combo int
	// notComboCounter counts down on clear-less moves and resets to 3 on
	// any clearing move. It may go negative.
	notComboCounter int
	increment       float64
	acceleration    float64
}

// NewTracker returns a tracker in its initial state: no score, no active
// combo (-1), counter at 3.
func NewTracker() *Tracker {
	return &Tracker{combo: -1, notComboCounter: 3}
}

// Score is the cumulative score so far.
func (t *Tracker) Score() int { return t.score }

// Combo is the current combo level; -1 means no active combo.
func (t *Tracker) Combo() int { return t.combo }

// ApplyMove advances the state machine for one committed move and returns
// the points it added. pieceCells is the popcount of the placed piece's
// interior mask; it is scored flat on every move, cleared lines or not.
func (t *Tracker) ApplyMove(pieceCells, linesCleared int) int {
	points := pieceCells

	if linesCleared == 0 {
		t.notComboCounter--
		t.score += points
		return points
	}

	// The combo-break check reads the counter value from before this
	// move's reset. That mirrors the original game's transition order
	// exactly, quirk included: the combo only breaks when the player has
	// burned through the whole non-clearing allowance (counter at 0 or
	// below) and then clears a single line.
	counterBefore := t.notComboCounter
	t.notComboCounter = 3
	if counterBefore+linesCleared <= 1 {
		t.combo = -1
		t.increment = 0
	}

	t.combo++

	// Acceleration thresholds fire once, exactly at these combo levels.
	switch t.combo {
	case 0:
		t.acceleration = baseAcceleration
	case 5:
		t.acceleration *= 4
	case 6:
		t.acceleration *= 0.375
	case 10:
		t.acceleration *= 4.6666
	case 11:
		t.acceleration *= 0.2857
	}

	t.increment += t.acceleration
	points += int(math.Floor(t.increment * multiplier(linesCleared)))

	t.score += points
	return points
}

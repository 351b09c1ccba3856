package game

import (
	"fmt"
	"strings"
)

// DisplayText renders the session as text for shells and logs: score and
// combo header, the occupancy grid, and the held pieces (or a game-over
// marker).
func (s *Session) DisplayText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d   Combo: %d\n", s.Score(), s.Combo())
	sb.WriteString(strings.Repeat("_", s.geom.Width()*2+1))
	sb.WriteString("\n")
	for y := 0; y < s.geom.Height(); y++ {
		row := "|"
		for x := 0; x < s.geom.Width(); x++ {
			if s.b.Get(y*s.geom.Width() + x) {
				row += "■ "
			} else {
				row += ". "
			}
		}
		// drop the last cell's padding so the border hugs the grid
		sb.WriteString(strings.TrimRight(row, " "))
		sb.WriteString("|\n")
	}
	sb.WriteString(strings.Repeat("-", s.geom.Width()*2+1))
	sb.WriteString("\n")
	if s.gameOver {
		sb.WriteString("GAME OVER\n")
	} else {
		fmt.Fprintf(&sb, "Available pieces: %s\n", strings.Join(s.HeldPieces(), " "))
	}
	return sb.String()
}

package chrooma

import (
	"fmt"
	"strings"
)

// Render draws one ball grid as rows of '.' (empty) and ball digits, for
// the solution trace printed by cmd/chrooma-solver.
func (b *Board) Render(s *State) string {
	var sb strings.Builder
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			v := s.Balls[b.Index(r, c)]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatTrace renders a solved Result: "SUCCESS !"
// followed by the trace bottom-up (deepest state first, each annotated
// with the direction that produced it) and a final Steps: line listing
// the directions in the order they were played.
func FormatTrace(board *Board, result Result) string {
	var sb strings.Builder
	sb.WriteString("SUCCESS !\n")

	for i := len(result.Trace) - 1; i >= 0; i-- {
		step := result.Trace[i]
		if i == 0 {
			sb.WriteString("(initial)\n")
		} else {
			fmt.Fprintf(&sb, "(%c)\n", step.Direction.Char())
		}
		sb.WriteString(board.Render(step.Board))
	}

	sb.WriteString("Steps: ")
	for i := 1; i < len(result.Trace); i++ {
		sb.WriteByte(result.Trace[i].Direction.Char())
	}
	sb.WriteByte('\n')
	return sb.String()
}

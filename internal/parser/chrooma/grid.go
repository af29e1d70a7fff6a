// Package chrooma parses the stdin grid format into a *chrooma.Board,
// a thin boundary deliberately kept separate from the mechanic itself.
package chrooma

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	domain "svw.info/puzzles/internal/chrooma"
)

// ReadBoard reads one rectangular grid, one row per line, blank lines
// and a trailing newline tolerated, and builds the board.
func ReadBoard(r io.Reader) (*domain.Board, error) {
	scanner := bufio.NewScanner(r)
	var rows []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "chrooma: reading grid")
	}
	if len(rows) == 0 {
		return nil, errors.New("chrooma: empty grid")
	}
	return domain.NewBoard(rows)
}

// Command chrooma-solver reads a board grid from stdin, searches for a
// clearing move sequence, and prints the solution trace.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"svw.info/puzzles/internal/chrooma"
	"svw.info/puzzles/internal/cliutil"
	parser "svw.info/puzzles/internal/parser/chrooma"
)

func main() {
	stepLimit := flag.Int("step-limit", chrooma.DefaultStepLimit, "maximum number of user moves to search")
	levelName := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	log := cliutil.NewLogger(*levelName)
	entry := log.WithField("solver", "chrooma")

	board, err := parser.ReadBoard(os.Stdin)
	if err != nil {
		entry.WithError(err).Error("reading board")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	result, err := chrooma.Solve(context.Background(), board, *stepLimit, entry)
	if err != nil {
		entry.WithError(err).Error("search failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	switch result.Status {
	case chrooma.StatusSuccess:
		fmt.Print(chrooma.FormatTrace(board, result))
		entry.WithFields(logrus.Fields{
			"nodes": humanize.Comma(int64(result.Nodes)),
			"depth": result.Depth,
		}).Info("solved")
		os.Exit(0)
	case chrooma.StatusStepLimitExceeded:
		fmt.Println("STEP LIMIT EXCEEDED")
		os.Exit(1)
	default:
		fmt.Println("NO SOLUTION")
		os.Exit(2)
	}
}

// Command transmission-solver solves one or more level files,
// attempting each objective present in a level individually unless
// ALLOBJ is set, in which case every objective is attempted at once.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"svw.info/puzzles/internal/cliutil"
	parser "svw.info/puzzles/internal/parser/transmission"
	"svw.info/puzzles/internal/transmission"
)

func main() {
	maxDepth := flag.Int("max-depth", 0, "search depth bound (0 = unbounded, still capped by any ObjSignalCount)")
	levelName := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	log := cliutil.NewLogger(*levelName)
	entry := log.WithField("solver", "transmission")
	allObj := os.Getenv("ALLOBJ") != ""

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: transmission-solver [flags] <level-file>...")
		os.Exit(2)
	}

	unsolved := 0
	for _, path := range paths {
		unsolved += solveFile(entry, path, allObj, *maxDepth)
	}
	os.Exit(unsolved)
}

func solveFile(log *logrus.Entry, path string, allObj bool, maxDepth int) (unsolvedCount int) {
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("opening level")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer f.Close()

	desc, err := parser.ReadLevel(f)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("parsing level")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	lvl, err := transmission.BuildLevel(desc)
	if err != nil {
		log.WithError(err).WithField("path", path).Error("building level")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	combos := transmission.AllObjectiveCombinations(lvl, allObj)
	for i, obj := range combos {
		res, err := transmission.Solve(context.Background(), lvl, obj, maxDepth, log)
		if err != nil {
			log.WithError(err).WithField("path", path).Error("search failed")
			fmt.Fprintln(os.Stderr, err)
			unsolvedCount++
			continue
		}

		fmt.Printf("=== %s (objective set %d/%d) ===\n", path, i+1, len(combos))
		fmt.Print(transmission.FormatTrace(res))
		if res.Status != transmission.StatusSuccess {
			unsolvedCount++
			continue
		}
		log.WithFields(logrus.Fields{
			"nodes": humanize.Comma(int64(res.Nodes)),
			"depth": res.Depth,
			"path":  path,
		}).Info("solved")
	}
	return unsolvedCount
}

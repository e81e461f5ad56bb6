package main

import (
	"fmt"
	"io"
	"log/slog"

	"tst"
	"tst/internal/tokenize"
)

// indexer feeds words to a tree: a word that is not found is inserted.
type indexer struct {
	tree    tst.Tree
	out     io.Writer
	verbose bool
	log     *slog.Logger
}

type indexStats struct {
	Words int
	Found int
	Added int
}

func (ix *indexer) run(scanner *tokenize.Scanner) (indexStats, error) {
	var stats indexStats
	for scanner.Scan() {
		key := scanner.Key()
		stats.Words++

		if ix.tree.Search(key) {
			stats.Found++
			if ix.verbose {
				fmt.Fprintf(ix.out, " Found: %s\n", string(key))
			}
			continue
		}

		if ix.verbose {
			fmt.Fprintf(ix.out, "Adding: %s\n", string(key))
		}
		ix.tree.Insert(key)
		stats.Added++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}

	ix.log.Debug("indexed input", "words", stats.Words, "found", stats.Found, "added", stats.Added, "nodes", ix.tree.Nodes())
	return stats, nil
}

func printSummary(w io.Writer, tree tst.Tree) {
	allocated := uint64(tree.Nodes()) * uint64(tst.NodeSize())
	fmt.Fprintf(w, "Allocated %s for %d words (%d nodes).\n", prettyBytes(allocated), tree.Size(), tree.Nodes())
}

var byteSuffixes = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// prettyBytes formats a byte count with binary suffixes, keeping one
// decimal unless the value is whole.
func prettyBytes(bytes uint64) string {
	count := float64(bytes)
	s := 0
	for count >= 1024 && s+1 < len(byteSuffixes) {
		s++
		count /= 1024
	}
	if count == float64(int64(count)) {
		return fmt.Sprintf("%d %s", int64(count), byteSuffixes[s])
	}
	return fmt.Sprintf("%.1f %s", count, byteSuffixes[s])
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tst"
	"tst/internal/tokenize"
)

func TestPrettyBytes(t *testing.T) {
	var testData = []struct {
		bytes    uint64
		expected string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1 KiB"},
		{1536, "1.5 KiB"},
		{1100, "1.1 KiB"},
		{5 << 20, "5 MiB"},
		{3 << 30, "3 GiB"},
		{1 << 60, "1024 PiB"},
	}

	for _, data := range testData {
		assert.Equal(t, data.expected, prettyBytes(data.bytes), data.bytes)
	}
}

func TestIndexer(t *testing.T) {
	tree := tst.New()
	out := new(bytes.Buffer)
	ix := &indexer{
		tree:    tree,
		out:     out,
		verbose: true,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	stats, err := ix.run(tokenize.New(strings.NewReader("the cat, and the dog; and the bird.")))
	require.NoError(t, err)

	assert.Equal(t, indexStats{Words: 8, Found: 3, Added: 5}, stats)
	assert.Equal(t, 5, tree.Size())
	assert.Equal(t, 16, tree.Nodes())
	assert.Equal(t, strings.Join([]string{
		"Adding: the",
		"Adding: cat",
		"Adding: and",
		" Found: the",
		"Adding: dog",
		" Found: and",
		" Found: the",
		"Adding: bird",
	}, "\n")+"\n", out.String())
}

func TestIndexerQuiet(t *testing.T) {
	tree := tst.New()
	out := new(bytes.Buffer)
	ix := &indexer{tree: tree, out: out, log: slog.New(slog.NewTextHandler(io.Discard, nil))}

	stats, err := ix.run(tokenize.New(strings.NewReader("a a a b")))
	require.NoError(t, err)

	assert.Equal(t, indexStats{Words: 4, Found: 2, Added: 2}, stats)
	assert.Empty(t, out.String())
}

func TestPrintSummary(t *testing.T) {
	tree := tst.New()
	tree.Insert(tst.Key("cat"))
	tree.Insert(tst.Key("car"))

	out := new(bytes.Buffer)
	printSummary(out, tree)

	expected := fmt.Sprintf("Allocated %s for 2 words (4 nodes).\n", prettyBytes(4*uint64(tst.NodeSize())))
	assert.Equal(t, expected, out.String())
}

func TestAppRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("the cat and the dog\nand the bird\n"), 0o644))

	out := new(bytes.Buffer)
	app := newApp()
	app.Writer = out
	app.ErrWriter = io.Discard

	err := app.Run([]string{"tstwords", "--verbose=false", "--list-keys", path})
	require.NoError(t, err)

	expected := "and\nbird\ncat\ndog\nthe\n" +
		fmt.Sprintf("Allocated %s for 5 words (16 nodes).\n", prettyBytes(16*uint64(tst.NodeSize())))
	assert.Equal(t, expected, out.String())
}

func TestAppRunPrintTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("ab ab"), 0o644))

	out := new(bytes.Buffer)
	app := newApp()
	app.Writer = out
	app.ErrWriter = io.Discard

	require.NoError(t, app.Run([]string{"tstwords", "--verbose", "--print-tree", path}))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Adding: ab\n Found: ab\n"), got)
	assert.Contains(t, got, "size(1), nodes(2)")
	assert.Contains(t, got, "'b' 1 ·")
	assert.Contains(t, got, "for 1 words (2 nodes).")
}

func TestAppRunMissingFile(t *testing.T) {
	app := newApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard

	err := app.Run([]string{"tstwords", filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

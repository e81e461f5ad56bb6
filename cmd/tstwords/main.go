package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"tst"
	"tst/internal/tokenize"
)

const stdIOPath = "-"

func main() {
	if err := run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "tstwords",
		Usage:     "index the words of a text in a self-adjusting ternary search tree",
		ArgsUsage: "[file]",
		Version:   versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "info",
				EnvVars: []string{"TSTWORDS_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print every word as it is found or added (default: on when stdin is a terminal)",
			},
			&cli.IntFlag{
				Name:    "max-word-length",
				Usage:   "truncate longer words to this many symbols, 0 to keep whole words",
				Value:   tokenize.DefaultMaxLength,
				EnvVars: []string{"TSTWORDS_MAX_WORD_LENGTH"},
			},
			&cli.BoolFlag{
				Name:  "print-tree",
				Usage: "print the shape of the tree after indexing",
			},
			&cli.BoolFlag{
				Name:  "list-keys",
				Usage: "print every distinct word in order after indexing",
			},
		},
		Action: runIndex,
	}
}

func runIndex(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)
	out := cctx.App.Writer

	path := stdIOPath
	if cctx.Args().Len() > 0 {
		path = cctx.Args().First()
	}
	in, err := getFileOrStdin(path)
	if err != nil {
		return err
	}
	defer in.Close()

	verbose := path == stdIOPath && (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	if cctx.IsSet("verbose") {
		verbose = cctx.Bool("verbose")
	}

	tree := tst.New()
	defer tree.Destroy()

	ix := &indexer{
		tree:    tree,
		out:     out,
		verbose: verbose,
		log:     logger.With("input", path),
	}
	scanner := tokenize.New(in, tokenize.WithMaxLength(cctx.Int("max-word-length")))
	if _, err := ix.run(scanner); err != nil {
		return err
	}

	if cctx.Bool("list-keys") {
		tree.Each(func(key tst.Key) {
			fmt.Fprintln(out, string(key))
		})
	}
	if cctx.Bool("print-tree") {
		if err := tree.Dump(out); err != nil {
			return fmt.Errorf("printing tree: %w", err)
		}
	}

	printSummary(out, tree)
	return nil
}

func getFileOrStdin(path string) (io.ReadCloser, error) {
	if path == stdIOPath {
		return os.Stdin, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return file, nil
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

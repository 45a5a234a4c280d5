package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/aglyzov/go-pathtree/internal/yamltree"
	"github.com/aglyzov/go-pathtree/pathtree"
)

const stdIOPath = "-"

var fileFlags = []cli.Flag{
	&cli.StringSliceFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "YAML or JSON document to load (repeatable, - for stdin)",
		Required: true,
		EnvVars:  []string{"PATHTREE_FILE"},
	},
	&cli.StringFlag{
		Name:    "prefer",
		Usage:   "value kept when several files set the same path: first or last",
		Value:   "last",
		EnvVars: []string{"PATHTREE_PREFER"},
	},
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})).With("system", "pathtree")
	slog.SetDefault(logger)
	return logger
}

// splitPath turns a path argument into segments. The empty string is the root path.
func splitPath(cctx *cli.Context, arg string) []string {
	if arg == "" {
		return nil
	}
	return strings.Split(arg, cctx.String("sep"))
}

func resolver(prefer string) (pathtree.Resolver[string], error) {
	switch strings.ToLower(prefer) {
	case "first":
		return pathtree.KeepFirst[string], nil
	case "last":
		return pathtree.KeepLast[string], nil
	}
	return nil, fmt.Errorf("unknown --prefer value %q (want first or last)", prefer)
}

// loadTree merges all the --file documents in the order given.
func loadTree(cctx *cli.Context) (*pathtree.Tree[string], error) {
	resolve, err := resolver(cctx.String("prefer"))
	if err != nil {
		return nil, err
	}

	var trees []*pathtree.Tree[string]

	for _, path := range cctx.StringSlice("file") {
		tree, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading documents: %w", err)
		}
		slog.Debug("loaded file", "path", path, "values", tree.Len())
		trees = append(trees, tree)
	}

	return pathtree.MergeAll(trees, resolve), nil
}

func loadFile(path string) (*pathtree.Tree[string], error) {
	if path == stdIOPath {
		return yamltree.Load(os.Stdin)
	}
	return yamltree.LoadFile(path)
}

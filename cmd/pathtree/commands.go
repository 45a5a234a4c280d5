package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"
)

var cmdDump = &cli.Command{
	Name:    "dump",
	Aliases: []string{"merge"},
	Usage:   "merge the documents and print the resulting tree",
	Flags:   fileFlags,
	Action:  runDump,
}

var cmdGet = &cli.Command{
	Name:      "get",
	Usage:     "print the value stored at a path",
	ArgsUsage: `<path>`,
	Flags:     fileFlags,
	Action:    runGet,
}

var cmdChildren = &cli.Command{
	Name:      "children",
	Usage:     "print the first-level keys and their leading characters below a path",
	ArgsUsage: `[<path>]`,
	Flags:     fileFlags,
	Action:    runChildren,
}

var cmdAlong = &cli.Command{
	Name:      "along",
	Usage:     "print the first-level keys the target string starts with",
	ArgsUsage: `<target>`,
	Flags:     fileFlags,
	Action:    runAlong,
}

func runDump(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, tree.String())
	return nil
}

func runGet(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	arg := cctx.Args().First()

	val, ok := tree.Get(splitPath(cctx, arg))
	if !ok {
		return fmt.Errorf("path %q not found", arg)
	}
	fmt.Fprintln(cctx.App.Writer, val)
	return nil
}

func runChildren(cctx *cli.Context) error {
	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	arg := cctx.Args().First()

	sub, ok := tree.Traverse(splitPath(cctx, arg))
	if !ok {
		return fmt.Errorf("path %q not found", arg)
	}

	var chars []string
	for _, r := range sub.AllChildCharacters() {
		chars = append(chars, string(r))
	}

	slog.Debug("traversed", "path", arg, "values", sub.Len())

	fmt.Fprintf(cctx.App.Writer, "keys: %q\n", sub.AllChildKeys())
	fmt.Fprintf(cctx.App.Writer, "characters: %q\n", chars)
	return nil
}

func runAlong(cctx *cli.Context) error {
	target := cctx.Args().First()
	if target == "" {
		return fmt.Errorf("need to provide a target string as argument")
	}

	tree, err := loadTree(cctx)
	if err != nil {
		return err
	}

	for _, along := range tree.ValuesAlongPath(target) {
		fmt.Fprintf(cctx.App.Writer, "%s = %s (%d below)\n", along.Key, along.Val, along.Tree.Len())
	}
	return nil
}

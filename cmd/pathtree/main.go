package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "pathtree",
		Usage:     "inspect and merge YAML documents as path-compressed trees",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "sep",
				Usage:   "separator splitting path arguments into segments",
				Value:   "/",
				EnvVars: []string{"PATHTREE_SEP"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug messages to stderr",
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, cctx.App.ErrWriter)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDump,
		cmdGet,
		cmdChildren,
		cmdAlong,
	}
	return app
}
